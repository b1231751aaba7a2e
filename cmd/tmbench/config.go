package main

import (
	"flag"

	"github.com/DjordjeVuckovic/turing-nlp/internal/suite/runner"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/utils"
)

type cliConfig struct {
	Suites   []string
	MaxSteps int
	Warmup   int
	Runs     int
	Output   string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}
	var suites string

	flag.StringVar(&suites, "suite", "configs/suites/parity.yaml,configs/suites/increment.yaml", "Suite YAML files, comma-separated")
	flag.IntVar(&cfg.MaxSteps, "max-steps", runner.DefaultMaxSteps, "Step limit for cases that do not set one")
	flag.IntVar(&cfg.Warmup, "warmup", runner.DefaultWarmupRuns, "Number of warmup runs before measurement")
	flag.IntVar(&cfg.Runs, "runs", runner.DefaultRuns, "Number of measured runs per case")
	flag.StringVar(&cfg.Output, "output", "", "Write JSON results to this path; one file per suite gets the suite name appended")

	flag.Parse()
	cfg.Suites = utils.SplitTrim(suites, ",")
	return cfg
}

func (c cliConfig) runnerConfig() runner.Config {
	return runner.Config{
		MaxSteps:   c.MaxSteps,
		WarmupRuns: c.Warmup,
		Runs:       max(c.Runs, 1),
	}
}
