package runner

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/DjordjeVuckovic/turing-nlp/internal/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const incrementSuite = `
name: increment
machine:
  name: increment
  states: [right, carry, done]
  input_symbols: ["0", "1"]
  accept: [done]
  transitions:
    - right,0 -> right,0,R
    - right,1 -> right,1,R
    - right,_ -> carry,_,L
    - carry,1 -> carry,0,L
    - carry,0 -> done,1,L
    - carry,_ -> done,1,L
cases:
  - id: no-carry
    input: "1010"
    expect: Accepted
    tape: "1011"
  - id: carry
    input: "1011"
    expect: Accepted
    tape: "1100"
  - id: overflow
    input: "111"
    expect: Accepted
    tape: "1000"
  - id: wrong-tape
    input: "1"
    expect: Accepted
    tape: "11"
  - id: stray-symbol
    input: "2"
    expect: Accepted
  - id: too-short
    input: "1111"
    expect: Accepted
    max_steps: 2
`

func load(t *testing.T, data string) *suite.LoadedSuite {
	t.Helper()
	loaded, err := suite.Parse([]byte(data))
	require.NoError(t, err)
	return loaded
}

func TestRunner_Run(t *testing.T) {
	r := New(Config{Runs: 3, WarmupRuns: 1})
	res, err := r.Run(context.Background(), load(t, incrementSuite))
	require.NoError(t, err)

	assert.Equal(t, "increment", res.Name)
	assert.Equal(t, "increment", res.Machine)
	require.Len(t, res.Cases, 6)

	byID := make(map[string]CaseResult, len(res.Cases))
	for _, c := range res.Cases {
		byID[c.ID] = c
	}

	t.Run("passing cases", func(t *testing.T) {
		for _, id := range []string{"no-carry", "carry", "overflow"} {
			c := byID[id]
			assert.True(t, c.Passed, "%s: %s", id, c.Reason)
			assert.Equal(t, machine.Accepted, c.Got)
			assert.Equal(t, 3, c.Latency.SampleCount)
		}
		assert.Equal(t, "1000", byID["overflow"].Tape)
	})

	t.Run("tape mismatch", func(t *testing.T) {
		c := byID["wrong-tape"]
		assert.False(t, c.Passed)
		assert.Equal(t, machine.Accepted, c.Got)
		assert.Equal(t, "10", c.Tape)
		assert.Contains(t, c.Reason, "expected tape")
	})

	t.Run("status mismatch", func(t *testing.T) {
		c := byID["stray-symbol"]
		assert.False(t, c.Passed)
		assert.Equal(t, machine.Rejected, c.Got)
		assert.Contains(t, c.Reason, "expected Accepted, got Rejected")
	})

	t.Run("step limit", func(t *testing.T) {
		c := byID["too-short"]
		assert.False(t, c.Passed)
		assert.Equal(t, machine.Continue, c.Got)
		assert.Equal(t, 2, c.Steps)
	})

	assert.Equal(t, 3, res.Passed())
	assert.Equal(t, 3, res.Failed())
	assert.False(t, res.OK())
	assert.Equal(t, 18, res.Latency.SampleCount)
}

func TestRunner_Defaults(t *testing.T) {
	r := New(Config{})
	assert.Equal(t, DefaultMaxSteps, r.config.MaxSteps)
	assert.Equal(t, 1, r.config.Runs)
	assert.Zero(t, r.config.WarmupRuns)
}

func TestRunner_InvalidMachine(t *testing.T) {
	data := `
machine:
  name: broken
  states: [a]
  accept: [a]
  transitions: ["a,_ -> nowhere,_,R"]
cases:
  - {id: c, expect: Accepted}
`
	_, err := New(DefaultConfig()).Run(context.Background(), load(t, data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultConfig()).Run(ctx, load(t, incrementSuite))
	require.ErrorIs(t, err, context.Canceled)
}

func TestTrimBlank(t *testing.T) {
	assert.Equal(t, "1_0", trimBlank([]string{"_", "1", "_", "0", "_"}, "_"))
	assert.Equal(t, "", trimBlank([]string{"_", "_"}, "_"))
	assert.Equal(t, "", trimBlank(nil, "_"))
}
