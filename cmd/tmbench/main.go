package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/turing-nlp/internal/suite"
	"github.com/DjordjeVuckovic/turing-nlp/internal/suite/report"
	"github.com/DjordjeVuckovic/turing-nlp/internal/suite/runner"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/logging"
)

var errCasesFailed = errors.New("one or more cases failed")

func main() {
	cfg := parseFlags()

	_, closeLog, err := logging.Setup(logging.LoadEnv(), os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		slog.Error("Suite run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig, w io.Writer) error {
	if len(cfg.Suites) == 0 {
		return errors.New("no suites given")
	}

	r := runner.New(cfg.runnerConfig())
	failed := false

	for _, path := range cfg.Suites {
		loaded, err := suite.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("load suite %s: %w", path, err)
		}

		res, err := r.Run(ctx, loaded)
		if err != nil {
			return fmt.Errorf("run suite %s: %w", path, err)
		}
		report.WriteTable(res, w)

		if cfg.Output != "" {
			out := outputPath(cfg.Output, res.Name, len(cfg.Suites))
			if err := report.WriteJSON(res, out); err != nil {
				return err
			}
			slog.Info("Results written", "path", out)
		}
		failed = failed || !res.OK()
	}

	if failed {
		return errCasesFailed
	}
	return nil
}

func outputPath(base, name string, suites int) string {
	if suites == 1 {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + name + ext
}
