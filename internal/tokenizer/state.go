package tokenizer

import "fmt"

// State is the scanner's automaton state.
type State int

const (
	Outside State = iota
	InsideToken
)

func (s State) String() string {
	switch s {
	case Outside:
		return "START"
	case InsideToken:
		return "READING_TOKEN"
	default:
		return "UNKNOWN"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "START":
		*s = Outside
	case "READING_TOKEN":
		*s = InsideToken
	default:
		return fmt.Errorf("unknown scanner state %q", text)
	}
	return nil
}
