package diagram

import (
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/stretchr/testify/assert"
)

func TestMachine(t *testing.T) {
	out := Machine("parity", machine.ParityConfig())

	assert.True(t, strings.HasPrefix(out, `digraph "parity" {`))
	assert.Contains(t, out, `"q_accept" [shape=doublecircle];`)
	assert.Contains(t, out, `"q_odd" [shape=circle];`)
	assert.Contains(t, out, `__start -> "q_start";`)
	assert.Contains(t, out, `"q_even" -> "q_accept" [label="_/_,R"];`)
	assert.Contains(t, out, `"q_even" -> "q_even" [label="0/0,R"];`)
	assert.True(t, strings.HasSuffix(out, "}\n"))

	t.Run("rules between the same states are merged", func(t *testing.T) {
		cfg := machine.Config{
			States: []string{"a"},
			Start:  "a",
			Rules: []machine.Rule{
				{State: "a", Read: "0", Next: "a", Write: "1", Move: machine.Right},
				{State: "a", Read: "1", Next: "a", Write: "0", Move: machine.Left},
			},
		}
		out := Machine("flip", cfg)
		assert.Equal(t, 1, strings.Count(out, `"a" -> "a"`))
		assert.Contains(t, out, `[label="0/1,R\n1/0,L"]`)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, out, Machine("parity", machine.ParityConfig()))
	})

	t.Run("edges follow state order", func(t *testing.T) {
		start := strings.Index(out, `"q_start" -> "q_odd"`)
		odd := strings.Index(out, `"q_odd" -> "q_odd"`)
		even := strings.Index(out, `"q_even" -> "q_odd"`)
		assert.Less(t, start, odd)
		assert.Less(t, odd, even)
	})
}

func TestTokenizer(t *testing.T) {
	out := Tokenizer()
	assert.Contains(t, out, `q0 [label="START"];`)
	assert.Contains(t, out, `q1 -> q0 [label="space"];`)
	assert.Equal(t, 4, strings.Count(out, "->"))
}
