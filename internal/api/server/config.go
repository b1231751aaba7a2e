package server

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/turing-nlp/pkg/config/env"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/utils"
)

const defaultPort = 8080

type Config struct {
	Port        int
	UseHttp2    bool
	CorsOrigins []string
}

// Addr is the listen address for Port on all interfaces.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// LoadConfig reads PORT, USE_HTTP2 and CORS_ORIGINS after loading the
// optional .env file.
func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/tm_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	port, err := env.Int("PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	useHttp2, err := env.Bool("USE_HTTP2", false)
	if err != nil {
		return nil, err
	}

	origins := utils.SplitTrim(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        port,
		UseHttp2:    useHttp2,
		CorsOrigins: origins,
	}, nil
}
