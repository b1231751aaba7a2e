package tokenizer

import (
	"slices"
	"strings"
	"unicode"
)

// Sentinel is the blank cell appended after the input.
const Sentinel = '_'

// Snapshot is the scanner's observable state after processing one symbol.
// Head is the cursor position after the move.
type Snapshot struct {
	Head    int      `json:"head"`
	State   State    `json:"state"`
	Symbol  string   `json:"symbol"`
	Current string   `json:"current_token"`
	Tokens  []string `json:"tokens"`
}

// Scanner walks a fixed tape once, splitting it into tokens. A Scanner is
// single use: once Run has drained the tape, later calls do nothing.
type Scanner struct {
	tape    []rune
	head    int
	state   State
	current []rune
	tokens  []string
	done    bool
}

func New(text string) *Scanner {
	tape := make([]rune, 0, len(text)+1)
	tape = append(tape, []rune(text)...)
	tape = append(tape, Sentinel)

	return &Scanner{tape: tape, state: Outside}
}

// IsTokenRune reports whether r extends a token.
func IsTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' || r == '-'
}

// Run drains the tape and returns one snapshot per processed symbol.
//
// A non-token rune read while Outside advances the head by two cells, so the
// rune right after it is never read.
func (s *Scanner) Run() []Snapshot {
	if s.done {
		return nil
	}

	var steps []Snapshot
	for s.head < len(s.tape) {
		sym := s.tape[s.head]

		switch s.state {
		case Outside:
			if IsTokenRune(sym) {
				s.state = InsideToken
				s.current = append(s.current, sym)
			} else {
				s.head++
			}
			s.head++
		case InsideToken:
			if IsTokenRune(sym) {
				s.current = append(s.current, sym)
			} else {
				s.flush()
				s.state = Outside
			}
			s.head++
		}

		steps = append(steps, s.snapshot(sym))
	}

	if s.state == InsideToken {
		s.flush()
		s.state = Outside
	}
	s.done = true

	return steps
}

// Tokenize runs the scan if it has not run yet and returns the completed tokens.
func (s *Scanner) Tokenize() []string {
	s.Run()
	return slices.Clone(s.tokens)
}

func (s *Scanner) flush() {
	if len(s.current) == 0 {
		return
	}
	s.tokens = append(s.tokens, string(s.current))
	s.current = s.current[:0]
}

func (s *Scanner) snapshot(sym rune) Snapshot {
	return Snapshot{
		Head:    s.head,
		State:   s.state,
		Symbol:  string(sym),
		Current: string(s.current),
		Tokens:  slices.Clone(s.tokens),
	}
}

// Tape returns a copy of the scanned runes, sentinel included.
func (s *Scanner) Tape() []rune {
	return slices.Clone(s.tape)
}

// RenderTape joins the tape cells with spaces and shows the cell at head as
// the blank marker.
func (s *Scanner) RenderTape(head int) string {
	cells := make([]string, len(s.tape))
	for i, r := range s.tape {
		if i == head {
			cells[i] = string(Sentinel)
			continue
		}
		cells[i] = string(r)
	}
	return strings.Join(cells, " ")
}
