package main

import (
	"flag"
	"time"
)

type cliConfig struct {
	Text        string
	Delay       time.Duration
	Dot         bool
	LexiconPath string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Text, "text", "Alice walks in Paris with Google", "Text to tokenize")
	flag.DurationVar(&cfg.Delay, "delay", 0, "Pause between replayed steps, e.g. 300ms")
	flag.BoolVar(&cfg.Dot, "dot", false, "Print the tokenizer state diagram as DOT and exit")
	flag.StringVar(&cfg.LexiconPath, "lexicon", "", "Path to a lexicon YAML (default: embedded lexicon)")

	flag.Parse()
	return cfg
}
