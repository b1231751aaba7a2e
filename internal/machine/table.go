package machine

import "fmt"

// Key identifies a rule by the state the machine is in and the symbol under the head.
type Key struct {
	State  string
	Symbol string
}

// Transition is the action taken for a Key.
type Transition struct {
	Next  string    `json:"next" yaml:"next"`
	Write string    `json:"write" yaml:"write"`
	Move  Direction `json:"move" yaml:"move"`
}

// Rule is a single transition table entry.
type Rule struct {
	State string    `json:"state" yaml:"state"`
	Read  string    `json:"read" yaml:"read"`
	Next  string    `json:"next" yaml:"next"`
	Write string    `json:"write" yaml:"write"`
	Move  Direction `json:"move" yaml:"move"`
}

func (r Rule) Key() Key {
	return Key{State: r.State, Symbol: r.Read}
}

func (r Rule) Transition() Transition {
	return Transition{Next: r.Next, Write: r.Write, Move: r.Move}
}

func (r Rule) String() string {
	return fmt.Sprintf("%s,%s -> %s,%s,%s", r.State, r.Read, r.Next, r.Write, r.Move)
}

// Table is a partial transition function. A missing key means no rule applies.
type Table map[Key]Transition

func (t Table) Lookup(state, symbol string) (Transition, bool) {
	tr, ok := t[Key{State: state, Symbol: symbol}]
	return tr, ok
}
