package diagram

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
)

type edge struct {
	from, to string
	labels   []string
}

// Machine renders cfg as a Graphviz digraph. Rules sharing a source and target
// state are merged into one edge with one label line per rule.
func Machine(name string, cfg machine.Config) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", strconv.Quote(name))
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("  __start [shape=point, label=\"\"];\n")

	for _, s := range cfg.States {
		shape := "circle"
		if slices.Contains(cfg.Accept, s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "  %s [shape=%s];\n", strconv.Quote(s), shape)
	}
	fmt.Fprintf(&sb, "  __start -> %s;\n", strconv.Quote(cfg.Start))

	var edges []*edge
	byPair := make(map[[2]string]*edge)
	for _, r := range cfg.Rules {
		pair := [2]string{r.State, r.Next}
		e, ok := byPair[pair]
		if !ok {
			e = &edge{from: r.State, to: r.Next}
			byPair[pair] = e
			edges = append(edges, e)
		}
		e.labels = append(e.labels, fmt.Sprintf("%s/%s,%s", r.Read, r.Write, r.Move))
	}

	order := stateOrder(cfg.States)
	slices.SortStableFunc(edges, func(a, b *edge) int {
		if c := order[a.from] - order[b.from]; c != 0 {
			return c
		}
		return order[a.to] - order[b.to]
	})

	for _, e := range edges {
		fmt.Fprintf(&sb, "  %s -> %s [label=%s];\n",
			strconv.Quote(e.from), strconv.Quote(e.to), strconv.Quote(strings.Join(e.labels, "\n")))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Tokenizer renders the illustrative automaton of the scanning tokenizer.
func Tokenizer() string {
	return `digraph "tokenizer" {
  rankdir=LR;
  node [shape=circle];
  q0 [label="START"];
  q1 [label="READING_TOKEN"];
  q2 [label="TOKEN_COMPLETE", shape=doublecircle];
  q0 -> q1 [label="alphanumeric"];
  q1 -> q1 [label="alphanumeric"];
  q1 -> q0 [label="space"];
  q0 -> q2 [label="blank"];
}
`
}

func stateOrder(states []string) map[string]int {
	order := make(map[string]int, len(states))
	for i, s := range states {
		order[s] = i
	}
	return order
}
