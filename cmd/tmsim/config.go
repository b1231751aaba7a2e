package main

import (
	"flag"
	"time"
)

type cliConfig struct {
	DefPath  string
	Input    string
	InputSet bool
	MaxSteps int
	Delay    time.Duration
	Dot      bool
	Dump     bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.DefPath, "def", "", "Path to machine definition YAML (default: built-in parity machine)")
	flag.StringVar(&cfg.Input, "input", "", "Input string, one symbol per character (default: the definition's input)")
	flag.IntVar(&cfg.MaxSteps, "max-steps", 10_000, "Stop after this many steps")
	flag.DurationVar(&cfg.Delay, "delay", 0, "Pause between steps, e.g. 500ms")
	flag.BoolVar(&cfg.Dot, "dot", false, "Print the machine as a Graphviz DOT digraph and exit")
	flag.BoolVar(&cfg.Dump, "dump", false, "Dump the final snapshot")

	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "input" {
			cfg.InputSet = true
		}
	})
	return cfg
}
