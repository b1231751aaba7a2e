package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/diagram"
	"github.com/DjordjeVuckovic/turing-nlp/internal/tagging"
	"github.com/DjordjeVuckovic/turing-nlp/internal/tokenizer"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/logging"
)

func main() {
	cfg := parseFlags()

	_, closeLog, err := logging.Setup(logging.LoadEnv(), os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("Tokenization failed", "error", err)
		os.Exit(1)
	}
}

func loadLexicon(path string) (*tagging.Lexicon, error) {
	if path == "" {
		return tagging.DefaultLexicon(), nil
	}
	return tagging.LoadLexicon(path)
}

func run(cfg cliConfig, w io.Writer) error {
	if cfg.Dot {
		_, err := io.WriteString(w, diagram.Tokenizer())
		return err
	}

	lex, err := loadLexicon(cfg.LexiconPath)
	if err != nil {
		return err
	}

	scanner := tokenizer.New(cfg.Text)
	steps := scanner.Run()
	tokens := scanner.Tokenize()
	slog.Debug("Text scanned", "runes", len(scanner.Tape()), "steps", len(steps), "tokens", len(tokens))

	fmt.Fprintf(w, "text : %q\n", cfg.Text)
	fmt.Fprintln(w, "== REPLAY ==")
	for i, st := range steps {
		fmt.Fprintf(w, "%-4d %-13s read=%-3q tape: %s | current=%q tokens=%v\n",
			i+1,
			st.State,
			st.Symbol,
			scanner.RenderTape(st.Head),
			st.Current,
			st.Tokens,
		)
		if cfg.Delay > 0 {
			time.Sleep(cfg.Delay)
		}
	}

	tagger := tagging.NewTagger(lex)
	pos := tagger.POS(tokens)
	entities := tagger.Entities(tokens)

	fmt.Fprintf(w, "\nTokens: %s\n\n", strings.Join(tokens, ", "))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"Token", "POS", "Entity"}, "\t"))
	fmt.Fprintln(tw, strings.Join([]string{"---", "---", "---"}, "\t"))
	for i, tok := range tokens {
		fmt.Fprintln(tw, strings.Join([]string{tok, pos[i].Tag, entities[i].Tag}, "\t"))
	}
	return tw.Flush()
}
