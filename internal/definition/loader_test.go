package definition

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parityYAML = `
name: parity
states: [q_start, q_odd, q_even, q_accept, q_reject]
input_symbols: [0, 1]
tape_symbols: [0, 1, _]
start: q_start
accept: [q_accept]
input: "011"
transitions:
  - q_start,0 -> q_even,0,R
  - q_start,1 -> q_odd,1,R
  - q_even,0 -> q_even,0,R
  - q_even,1 -> q_odd,1,R
  - q_even,_ -> q_accept,_,R
  - q_odd,0 -> q_odd,0,R
  - q_odd,1 -> q_even,1,R
  - q_odd,_ -> q_reject,_,R
`

func TestParse(t *testing.T) {
	t.Run("valid definition", func(t *testing.T) {
		d, err := Parse([]byte(parityYAML))
		require.NoError(t, err)
		assert.Equal(t, "parity", d.Name)
		assert.Equal(t, []string{"0", "1"}, d.InputSymbols)
		assert.Len(t, d.Transitions, 8)

		cfg, err := d.Config()
		require.NoError(t, err)
		assert.Equal(t, machine.ParityConfig().Rules, cfg.Rules)
	})

	t.Run("defaults applied", func(t *testing.T) {
		d, err := Parse([]byte(`
name: loop
states: [" a ", b]
input_symbols: [x]
transitions:
  - "a,x -> b,x,R"
`))
		require.NoError(t, err)
		assert.Equal(t, "_", d.Blank)
		assert.Equal(t, "a", d.Start)
		assert.Equal(t, []string{"a", "b"}, d.States)
		assert.Equal(t, []string{"x", "_"}, d.TapeSymbols)
	})

	errorCases := []struct {
		name string
		yaml string
		want string
	}{
		{name: "no name", yaml: "states: [a]\ntransitions: [\"a,_ -> a,_,R\"]", want: "no name"},
		{name: "no states", yaml: "name: x\ntransitions: [\"a,_ -> a,_,R\"]", want: "no states"},
		{name: "no transitions", yaml: "name: x\nstates: [a]", want: "no transitions"},
		{name: "bad yaml", yaml: "name: [", want: "parse definition YAML"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuild(t *testing.T) {
	t.Run("loads default input", func(t *testing.T) {
		d, err := Parse([]byte(parityYAML))
		require.NoError(t, err)

		m, err := d.Build()
		require.NoError(t, err)
		status, _ := m.Run(50)
		assert.Equal(t, machine.Accepted, status)
	})

	t.Run("bad rule line reports line number", func(t *testing.T) {
		d := Parity()
		d.Transitions[3] = "q_even,1 -> q_odd,1"
		_, err := d.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `definition "parity"`)
		assert.Contains(t, err.Error(), "line 4")
	})

	t.Run("machine validation surfaces", func(t *testing.T) {
		d := Parity()
		d.Accept = []string{"q_done"}
		_, err := d.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown accept state")
	})
}

func TestParity(t *testing.T) {
	cfg, err := Parity().Config()
	require.NoError(t, err)
	assert.Equal(t, machine.ParityConfig(), cfg)

	t.Run("leading ones with even count accept", func(t *testing.T) {
		m, err := Parity().Build()
		require.NoError(t, err)

		m.LoadString("11")
		status, _ := m.Run(100)
		assert.Equal(t, machine.Accepted, status)
		assert.Equal(t, "accepts non-empty binary inputs with an even number of 1s", Parity().Description)
	})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parity.yaml")
	require.NoError(t, os.WriteFile(path, []byte(parityYAML), 0o644))

	d, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "011", d.Input)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestExampleDefinitions(t *testing.T) {
	tests := []struct {
		file  string
		input string
		want  machine.Status
		tape  string
	}{
		{file: "parity.yaml", input: "0110", want: machine.Accepted, tape: "0110"},
		{file: "increment.yaml", input: "1011", want: machine.Accepted, tape: "1100"},
		{file: "increment.yaml", input: "11", want: machine.Accepted, tape: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.file+" "+tt.input, func(t *testing.T) {
			d, err := LoadFromFile(filepath.Join("..", "..", "configs", "machines", tt.file))
			require.NoError(t, err)

			m, err := d.Build()
			require.NoError(t, err)
			m.LoadString(tt.input)

			status, _ := m.Run(100)
			assert.Equal(t, tt.want, status)

			var sb strings.Builder
			for _, c := range m.Tape() {
				if c != "_" {
					sb.WriteString(c)
				}
			}
			assert.Equal(t, tt.tape, sb.String())
		})
	}
}
