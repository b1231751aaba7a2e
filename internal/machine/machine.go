package machine

import (
	"strings"
)

// WindowRadius is the number of cells shown on each side of the head by Window.
const WindowRadius = 5

// Machine is a deterministic single-tape Turing machine. It is not safe for
// concurrent use; callers own a Machine and drive it one Step at a time.
type Machine struct {
	cfg    Config
	table  Table
	accept map[string]struct{}

	tape  *Tape
	head  int
	state string
	steps int
	last  Status
}

// Snapshot is an observable copy of the machine after a Load or Step.
type Snapshot struct {
	Status     Status   `json:"status"`
	State      string   `json:"state"`
	Head       int      `json:"head"`
	Tape       []string `json:"tape"`
	Window     string   `json:"window"`
	WindowHead int      `json:"window_head"`
	Steps      int      `json:"steps"`
}

// New validates cfg and returns a machine loaded with the empty input.
func New(cfg Config) (*Machine, error) {
	table, err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	cfg = cfg.clone()
	if cfg.Blank == "" {
		cfg.Blank = DefaultBlank
	}

	accept := make(map[string]struct{}, len(cfg.Accept))
	for _, a := range cfg.Accept {
		accept[a] = struct{}{}
	}

	m := &Machine{
		cfg:    cfg,
		table:  table,
		accept: accept,
	}
	m.Load(nil)
	return m, nil
}

// Load resets the machine for a fresh run over input. Symbols are not checked
// against the alphabet; a symbol without a rule simply rejects when read.
func (m *Machine) Load(input []string) {
	cells := make([]string, 0, len(input)+InputPadding)
	cells = append(cells, input...)
	for range InputPadding {
		cells = append(cells, m.cfg.Blank)
	}

	m.tape = NewTape(m.cfg.Blank, cells)
	m.head = 0
	m.state = m.cfg.Start
	m.steps = 0
	m.last = Continue
}

// LoadString loads input split into one symbol per rune.
func (m *Machine) LoadString(input string) {
	m.Load(SplitSymbols(input))
}

// Step performs at most one transition.
func (m *Machine) Step() Status {
	if _, ok := m.accept[m.state]; ok {
		m.last = Accepted
		return Accepted
	}

	symbol := m.tape.Read(m.head)
	tr, ok := m.table.Lookup(m.state, symbol)
	if !ok {
		m.last = Rejected
		return Rejected
	}

	m.tape.Write(m.head, tr.Write)
	m.state = tr.Next
	m.head += int(tr.Move)

	switch {
	case m.head < 0:
		m.tape.GrowLeft()
		m.head = 0
	case m.head >= m.tape.Len():
		m.tape.GrowRight()
	}

	m.steps++
	m.last = Continue
	return Continue
}

// Run steps until the machine halts or limit steps have been attempted. It
// returns the last status and the number of Step calls made.
func (m *Machine) Run(limit int) (Status, int) {
	status := m.last
	n := 0
	for n < limit {
		status = m.Step()
		n++
		if status.Halted() {
			break
		}
	}
	return status, n
}

// Window returns up to WindowRadius cells on each side of the head joined
// together, and the head offset inside that string's cells.
func (m *Machine) Window() (string, int) {
	left := max(0, m.head-WindowRadius)
	right := min(m.tape.Len(), m.head+WindowRadius+1)
	return strings.Join(m.tape.Slice(left, right), ""), m.head - left
}

func (m *Machine) Snapshot() Snapshot {
	window, offset := m.Window()
	return Snapshot{
		Status:     m.last,
		State:      m.state,
		Head:       m.head,
		Tape:       m.tape.Cells(),
		Window:     window,
		WindowHead: offset,
		Steps:      m.steps,
	}
}

func (m *Machine) State() string { return m.state }

func (m *Machine) Head() int { return m.head }

func (m *Machine) Steps() int { return m.steps }

func (m *Machine) Tape() []string { return m.tape.Cells() }

func (m *Machine) TapeLen() int { return m.tape.Len() }

// Config returns the configuration the machine was built from.
func (m *Machine) Config() Config { return m.cfg.clone() }

// SplitSymbols splits s into single-rune symbols.
func SplitSymbols(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
