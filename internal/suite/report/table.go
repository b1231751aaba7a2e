package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/suite/runner"
)

func WriteTable(r *runner.SuiteResult, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Acceptance Suite: %s (machine %s) ===\n\n", r.Name, r.Machine)
	writeCaseTable(tw, r)
	writeLatencySummary(tw, r)
	fmt.Fprintf(tw, "Passed %d/%d\n", r.Passed(), len(r.Cases))

	tw.Flush()
}

func writeCaseTable(tw *tabwriter.Writer, r *runner.SuiteResult) {
	header := []string{"Case", "Input", "Expected", "Got", "Steps", "p50", "Result"}
	writeRow(tw, header)
	writeRow(tw, separator(len(header)))

	for _, c := range r.Cases {
		result := "PASS"
		if !c.Passed {
			result = "FAIL: " + c.Reason
		}
		writeRow(tw, []string{
			c.ID,
			quoteInput(c.Input),
			c.Expected.String(),
			c.Got.String(),
			fmt.Sprintf("%d", c.Steps),
			fmtDuration(c.Latency.P50()),
			result,
		})
	}
	fmt.Fprintln(tw)
}

func writeLatencySummary(tw *tabwriter.Writer, r *runner.SuiteResult) {
	fmt.Fprintf(tw, "Latency (all cases, %d runs each)\n\n", r.Config.Runs)

	header := []string{"Min", "p50", "p90", "p99", "Max", "Mean", "Stddev", "Samples"}
	writeRow(tw, header)
	writeRow(tw, separator(len(header)))

	s := r.Latency
	writeRow(tw, []string{
		fmtDuration(s.Min),
		fmtDuration(s.P50()),
		fmtDuration(s.P90()),
		fmtDuration(s.P99()),
		fmtDuration(s.Max),
		fmtDuration(s.Mean),
		fmtDuration(s.Stddev),
		fmt.Sprintf("%d", s.SampleCount),
	})
	fmt.Fprintln(tw)
}

func writeRow(tw *tabwriter.Writer, cols []string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func separator(n int) []string {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	return sep
}

func quoteInput(s string) string {
	if s == "" {
		return `""`
	}
	return s
}

func fmtDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	}
}
