package machine

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("parity is valid", func(t *testing.T) {
		table, err := ParityConfig().Validate()
		require.NoError(t, err)
		assert.Len(t, table, 8)

		tr, ok := table.Lookup("q_even", "_")
		assert.True(t, ok)
		assert.Equal(t, Transition{Next: "q_accept", Write: "_", Move: Right}, tr)

		_, ok = table.Lookup("q_accept", "_")
		assert.False(t, ok)
	})

	t.Run("blank defaults to underscore", func(t *testing.T) {
		cfg := ParityConfig()
		cfg.Blank = ""
		m, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, "_", m.Config().Blank)
	})

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "no states", mutate: func(c *Config) { c.States = nil }, want: "state set is empty"},
		{name: "no tape symbols", mutate: func(c *Config) { c.TapeSymbols = nil }, want: "tape alphabet is empty"},
		{name: "duplicate state", mutate: func(c *Config) { c.States = append(c.States, "q_odd") }, want: "duplicate state"},
		{name: "blank not in alphabet", mutate: func(c *Config) { c.Blank = "B" }, want: "blank symbol"},
		{name: "missing start", mutate: func(c *Config) { c.Start = "" }, want: "start state is required"},
		{name: "unknown start with hint", mutate: func(c *Config) { c.Start = "q_strt" }, want: `did you mean "q_start"`},
		{name: "unknown accept", mutate: func(c *Config) { c.Accept = []string{"done"} }, want: "unknown accept state"},
		{name: "input symbol outside alphabet", mutate: func(c *Config) { c.InputSymbols = []string{"0", "2"} }, want: "unknown input symbol"},
		{name: "rule with unknown next state", mutate: func(c *Config) { c.Rules[2].Next = "q_evn" }, want: "rule 3"},
		{name: "rule with unknown write symbol", mutate: func(c *Config) { c.Rules[0].Write = "x" }, want: "unknown write symbol"},
		{name: "rule with zero direction", mutate: func(c *Config) { c.Rules[0].Move = 0 }, want: "invalid direction"},
		{
			name: "conflicting rules",
			mutate: func(c *Config) {
				c.Rules = append(c.Rules, Rule{State: "q_start", Read: "0", Next: "q_odd", Write: "0", Move: Right})
			},
			want: "conflicts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ParityConfig()
			tt.mutate(&cfg)

			_, err := New(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var ve *apperr.ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}

	t.Run("identical duplicate rule is allowed", func(t *testing.T) {
		cfg := ParityConfig()
		cfg.Rules = append(cfg.Rules, cfg.Rules[0])
		_, err := New(cfg)
		assert.NoError(t, err)
	})
}

func TestStatus_Text(t *testing.T) {
	for _, s := range []Status{Continue, Accepted, Rejected} {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var got Status
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, s, got)
	}
	assert.True(t, Accepted.Halted())
	assert.False(t, Continue.Halted())
}
