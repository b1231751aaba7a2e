package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/turing-nlp/internal/storage/factory"
	"github.com/DjordjeVuckovic/turing-nlp/internal/tagging"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/config/env"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/logging"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type TuringAPIConfig struct {
	StorageConfig factory.StorageConfig
	Logging       logging.Config
	LexiconPath   string
}

func (as *AppConfig) Load() (*TuringAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/tm_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &TuringAPIConfig{
		StorageConfig: *storageCfg,
		Logging:       logging.LoadEnv(),
		LexiconPath:   os.Getenv("LEXICON_PATH"),
	}, nil
}

// Lexicon returns the lexicon at LexiconPath, or the embedded one.
func (c *TuringAPIConfig) Lexicon() (*tagging.Lexicon, error) {
	if c.LexiconPath == "" {
		return tagging.DefaultLexicon(), nil
	}
	return tagging.LoadLexicon(c.LexiconPath)
}
