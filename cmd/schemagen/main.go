package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/turing-nlp/internal/definition"
	"github.com/DjordjeVuckovic/turing-nlp/internal/suite"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/schema"
)

const baseURL = "https://schemas.turing-nlp.dev/v1"

type target struct {
	file        string
	value       any
	title       string
	description string
}

var targets = []target{
	{"definition-v1.json", definition.Definition{}, "Definition", "Turing machine definition file"},
	{"suite-v1.json", suite.Suite{}, "Suite", "Acceptance suite for a machine definition"},
}

func main() {
	outputDir := flag.String("output", "api", "Output directory for generated schemas")
	flag.Parse()

	if err := generate(*outputDir); err != nil {
		slog.Error("Schema generation failed", "error", err)
		os.Exit(1)
	}
}

func generate(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	g := schema.NewGenerator("yaml", baseURL)
	for _, t := range targets {
		data, err := g.GenerateJSON(t.value, t.title, t.description)
		if err != nil {
			return fmt.Errorf("%s: %w", t.title, err)
		}
		path := filepath.Join(dir, t.file)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		slog.Info("Generated JSON schema", "path", path)
	}
	return nil
}
