package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/DjordjeVuckovic/turing-nlp/internal/suite"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	cfg.Runs = max(cfg.Runs, 1)
	cfg.WarmupRuns = max(cfg.WarmupRuns, 0)
	return &Runner{config: cfg}
}

// Run executes every case of the suite on a fresh machine. A case that fails
// is recorded in the result; the returned error is reserved for a definition
// that does not build or a cancelled context.
func (r *Runner) Run(ctx context.Context, loaded *suite.LoadedSuite) (*SuiteResult, error) {
	cfg, err := loaded.Definition.Config()
	if err != nil {
		return nil, err
	}
	if _, err := machine.New(cfg); err != nil {
		return nil, fmt.Errorf("definition %q: %w", loaded.Definition.Name, err)
	}

	sr := &SuiteResult{
		Name:    loaded.Suite.Name,
		Machine: loaded.Definition.Name,
		Config:  r.config,
	}

	stats := make([]LatencyStats, 0, len(loaded.Suite.Cases))
	for i := range loaded.Suite.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := &loaded.Suite.Cases[i]
		cr := r.runCase(cfg, loaded.Suite, c)
		if !cr.Passed {
			slog.Warn("case failed", "suite", sr.Name, "case", c.ID, "reason", cr.Reason)
		}
		sr.Cases = append(sr.Cases, cr)
		stats = append(stats, cr.Latency)
	}
	sr.Latency = AggregateLatencyStats(stats)

	slog.Info("suite finished", "suite", sr.Name, "passed", sr.Passed(), "failed", sr.Failed())
	return sr, nil
}

type outcome struct {
	status machine.Status
	steps  int
	tape   string
}

func (r *Runner) runCase(cfg machine.Config, s *suite.Suite, c *suite.Case) CaseResult {
	limit := c.Limit(s, r.config.MaxSteps)

	for range r.config.WarmupRuns {
		_, _ = execute(cfg, c.Input, limit)
	}

	var (
		last      outcome
		latencies = make([]time.Duration, 0, r.config.Runs)
	)
	for range r.config.Runs {
		start := time.Now()
		out, err := execute(cfg, c.Input, limit)
		if err != nil {
			return CaseResult{ID: c.ID, Input: c.Input, Expected: c.Expect, Reason: err.Error()}
		}
		latencies = append(latencies, time.Since(start))
		last = out
	}

	cr := CaseResult{
		ID:       c.ID,
		Input:    c.Input,
		Expected: c.Expect,
		Got:      last.status,
		Steps:    last.steps,
		Tape:     last.tape,
		Latency:  ComputeLatencyStats(latencies),
	}

	switch {
	case last.status != c.Expect:
		cr.Reason = fmt.Sprintf("expected %s, got %s after %d steps", c.Expect, last.status, last.steps)
	case c.Tape != nil && *c.Tape != last.tape:
		cr.Reason = fmt.Sprintf("expected tape %q, got %q", *c.Tape, last.tape)
	default:
		cr.Passed = true
	}
	return cr
}

func execute(cfg machine.Config, input string, limit int) (outcome, error) {
	m, err := machine.New(cfg)
	if err != nil {
		return outcome{}, err
	}
	m.LoadString(input)
	status, steps := m.Run(limit)
	return outcome{
		status: status,
		steps:  steps,
		tape:   trimBlank(m.Tape(), m.Config().Blank),
	}, nil
}

// trimBlank joins the tape and drops blank cells at both ends.
func trimBlank(cells []string, blank string) string {
	lo, hi := 0, len(cells)
	for lo < hi && cells[lo] == blank {
		lo++
	}
	for hi > lo && cells[hi-1] == blank {
		hi--
	}
	return strings.Join(cells[lo:hi], "")
}
