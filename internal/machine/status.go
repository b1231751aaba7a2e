package machine

import "fmt"

// Status is the outcome of a single Step.
type Status int

const (
	Continue Status = iota
	Accepted
	Rejected
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "Continue"
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Halted reports whether the status is terminal.
func (s Status) Halted() bool {
	return s == Accepted || s == Rejected
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Continue":
		*s = Continue
	case "Accepted":
		*s = Accepted
	case "Rejected":
		*s = Rejected
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}
