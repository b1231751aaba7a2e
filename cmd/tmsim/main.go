package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/definition"
	"github.com/DjordjeVuckovic/turing-nlp/internal/diagram"
	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/logging"
	"github.com/davecgh/go-spew/spew"
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
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func loadDefinition(path string) (*definition.Definition, error) {
	if path == "" {
		return definition.Parity(), nil
	}
	return definition.LoadFromFile(path)
}

func run(cfg cliConfig, w io.Writer) error {
	def, err := loadDefinition(cfg.DefPath)
	if err != nil {
		return err
	}
	if cfg.InputSet {
		def.Input = cfg.Input
	}

	if cfg.Dot {
		mcfg, err := def.Config()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, diagram.Machine(def.Name, mcfg))
		return err
	}

	m, err := def.Build()
	if err != nil {
		return err
	}
	slog.Debug("Machine loaded", "definition", def.Name, "input", def.Input, "max_steps", cfg.MaxSteps)

	fmt.Fprintf(w, "machine : %s\n", def.Name)
	fmt.Fprintf(w, "input   : %q\n", def.Input)
	fmt.Fprintln(w, "== TRACE START ==")
	fmt.Fprintf(w, "%-5s %-12s  %-4s  %-12s  %-4s  %s\n", "step", "state", "read", "next", "head", "window")

	status := machine.Continue
	for m.Steps() < cfg.MaxSteps {
		before := m.Snapshot()
		status = m.Step()
		if status.Halted() {
			break
		}

		after := m.Snapshot()
		fmt.Fprintf(w, "%-5d %-12s  %-4s  %-12s  %-4d  %s\n",
			after.Steps,
			before.State,
			before.Tape[before.Head],
			after.State,
			after.Head,
			markHead(after.Tape, after.Head),
		)

		if cfg.Delay > 0 {
			time.Sleep(cfg.Delay)
		}
	}
	fmt.Fprintln(w, "== TRACE END ==")

	final := m.Snapshot()
	fmt.Fprintf(w, "Final tape : %s\n", strings.Join(final.Tape, ""))
	fmt.Fprintf(w, "Steps      : %d\n", final.Steps)
	fmt.Fprintf(w, "Result     : %s\n", resultLabel(status))

	if cfg.Dump {
		spew.Fdump(w, final)
	}
	return nil
}

func resultLabel(status machine.Status) string {
	switch status {
	case machine.Accepted:
		return "ACCEPT"
	case machine.Rejected:
		return "REJECT"
	default:
		return "STEP LIMIT REACHED"
	}
}

// markHead renders the cells around head with the head cell bracketed.
func markHead(tape []string, head int) string {
	left := max(0, head-machine.WindowRadius)
	right := min(len(tape), head+machine.WindowRadius+1)

	var sb strings.Builder
	for i := left; i < right; i++ {
		if i == head {
			sb.WriteString("[" + tape[i] + "]")
			continue
		}
		sb.WriteString(tape[i])
	}
	return sb.String()
}
