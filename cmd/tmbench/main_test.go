package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoFile(parts ...string) string {
	return filepath.Join(append([]string{"..", ".."}, parts...)...)
}

func TestRun(t *testing.T) {
	t.Run("bundled suites pass", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := cliConfig{
			Suites:   []string{repoFile("configs", "suites", "parity.yaml"), repoFile("configs", "suites", "increment.yaml")},
			MaxSteps: 1000,
			Runs:     2,
		}
		require.NoError(t, run(t.Context(), cfg, &buf))

		out := buf.String()
		assert.Contains(t, out, "Acceptance Suite: parity")
		assert.Contains(t, out, "Acceptance Suite: increment")
		assert.NotContains(t, out, "FAIL")
	})

	t.Run("failing case is reported", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		data := `
machine:
  name: only-zero
  states: [s, ok]
  input_symbols: ["0"]
  accept: [ok]
  transitions: ["s,0 -> ok,0,R"]
cases:
  - {id: zero, input: "0", expect: Accepted}
  - {id: one, input: "1", expect: Accepted}
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		out := filepath.Join(dir, "result.json")
		var buf bytes.Buffer
		err := run(t.Context(), cliConfig{Suites: []string{path}, Runs: 1, Output: out}, &buf)
		require.ErrorIs(t, err, errCasesFailed)
		assert.Contains(t, buf.String(), "Passed 1/2")
		assert.FileExists(t, out)
	})

	t.Run("missing suite", func(t *testing.T) {
		err := run(t.Context(), cliConfig{Suites: []string{"does-not-exist.yaml"}}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load suite")
	})

	t.Run("no suites", func(t *testing.T) {
		require.Error(t, run(t.Context(), cliConfig{}, &bytes.Buffer{}))
	})
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "out.json", outputPath("out.json", "parity", 1))
	assert.Equal(t, "out-parity.json", outputPath("out.json", "parity", 2))
	assert.Equal(t, "out-parity", outputPath("out", "parity", 3))
}
