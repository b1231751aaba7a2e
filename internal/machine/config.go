package machine

import (
	"fmt"
	"slices"
	"sort"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	DefaultBlank = "_"
	// InputPadding is the number of blank cells appended to the input on Load.
	InputPadding = 10
)

// Config is the immutable description of a machine.
type Config struct {
	States       []string `json:"states"`
	InputSymbols []string `json:"input_symbols"`
	TapeSymbols  []string `json:"tape_symbols"`
	Blank        string   `json:"blank"`
	Start        string   `json:"start"`
	Accept       []string `json:"accept"`
	Rules        []Rule   `json:"rules"`
}

func (c Config) clone() Config {
	return Config{
		States:       slices.Clone(c.States),
		InputSymbols: slices.Clone(c.InputSymbols),
		TapeSymbols:  slices.Clone(c.TapeSymbols),
		Blank:        c.Blank,
		Start:        c.Start,
		Accept:       slices.Clone(c.Accept),
		Rules:        slices.Clone(c.Rules),
	}
}

// Validate checks the configuration and builds the transition table from its rules.
// The first problem found is returned as an *apperr.ValidationError.
func (c Config) Validate() (Table, error) {
	if len(c.States) == 0 {
		return nil, apperr.NewValidation("state set is empty")
	}
	if len(c.TapeSymbols) == 0 {
		return nil, apperr.NewValidation("tape alphabet is empty")
	}

	states, err := toSet("state", c.States)
	if err != nil {
		return nil, err
	}
	symbols, err := toSet("tape symbol", c.TapeSymbols)
	if err != nil {
		return nil, err
	}

	blank := c.Blank
	if blank == "" {
		blank = DefaultBlank
	}
	if _, ok := symbols[blank]; !ok {
		return nil, apperr.NewValidation(fmt.Sprintf("blank symbol %q is not in the tape alphabet", blank))
	}

	if c.Start == "" {
		return nil, apperr.NewValidation("start state is required")
	}
	if err := checkMember("start state", c.Start, states, c.States); err != nil {
		return nil, err
	}
	for _, a := range c.Accept {
		if err := checkMember("accept state", a, states, c.States); err != nil {
			return nil, err
		}
	}
	for _, s := range c.InputSymbols {
		if err := checkMember("input symbol", s, symbols, c.TapeSymbols); err != nil {
			return nil, err
		}
	}

	table := make(Table, len(c.Rules))
	for i, r := range c.Rules {
		if err := validateRule(r, states, symbols, c); err != nil {
			return nil, apperr.NewValidationWrap(fmt.Sprintf("rule %d (%s)", i+1, r), err)
		}
		if prev, ok := table[r.Key()]; ok && prev != r.Transition() {
			return nil, apperr.NewValidation(fmt.Sprintf("rule %d (%s) conflicts with an earlier rule for (%s, %s)", i+1, r, r.State, r.Read))
		}
		table[r.Key()] = r.Transition()
	}

	return table, nil
}

func validateRule(r Rule, states, symbols map[string]struct{}, c Config) error {
	if err := checkMember("state", r.State, states, c.States); err != nil {
		return err
	}
	if err := checkMember("next state", r.Next, states, c.States); err != nil {
		return err
	}
	if err := checkMember("read symbol", r.Read, symbols, c.TapeSymbols); err != nil {
		return err
	}
	if err := checkMember("write symbol", r.Write, symbols, c.TapeSymbols); err != nil {
		return err
	}
	if !r.Move.Valid() {
		return fmt.Errorf("invalid direction %d, must be L or R", r.Move)
	}
	return nil
}

func toSet(kind string, items []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it == "" {
			return nil, apperr.NewValidation(fmt.Sprintf("empty %s", kind))
		}
		if _, dup := set[it]; dup {
			return nil, apperr.NewValidation(fmt.Sprintf("duplicate %s %q", kind, it))
		}
		set[it] = struct{}{}
	}
	return set, nil
}

func checkMember(kind, name string, set map[string]struct{}, known []string) error {
	if _, ok := set[name]; ok {
		return nil
	}
	if hint := suggest(name, known); hint != "" {
		return apperr.NewValidation(fmt.Sprintf("unknown %s %q, did you mean %q?", kind, name, hint))
	}
	return apperr.NewValidation(fmt.Sprintf("unknown %s %q", kind, name))
}

// suggest returns the closest known name, or "" when nothing is close.
func suggest(name string, known []string) string {
	if name == "" {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, known)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
