// Package main Turing NLP API
// @title Turing NLP API
// @version 1.0
// @description Step-wise Turing machine sessions, a scanning tokenizer with POS and entity tagging, and recorded run history
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/turing-nlp/internal/api/docs"
	"github.com/DjordjeVuckovic/turing-nlp/internal/api/router"
	"github.com/DjordjeVuckovic/turing-nlp/internal/api/server"
	"github.com/DjordjeVuckovic/turing-nlp/internal/session"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage/factory"
	"github.com/DjordjeVuckovic/turing-nlp/internal/tagging"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/logging"
	"github.com/labstack/echo/v4"
)

const storageConnectTimeout = 30 * time.Second

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	_, closeLog, err := logging.Setup(cfg.Logging, os.Stderr)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	lex, err := cfg.Lexicon()
	if err != nil {
		slog.Error("Failed to load lexicon", "error", err, "path", cfg.LexiconPath)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
	store, healthChecker, err := factory.NewStore(ctx, &cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create run history storage", "error", err, "type", cfg.StorageConfig.Type)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Run history storage ready", "type", cfg.StorageConfig.Type)

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Turing NLP API is running")
	})

	router.NewMachineRouter(s.Echo, session.NewInMemStore(), store).Bind()
	router.NewTokenizeRouter(s.Echo, tagging.NewTagger(lex), store).Bind()
	router.NewRunRouter(s.Echo, store).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
