package machine

import "slices"

// Tape is a bidirectionally growable run of cells. Cells materialized to the left
// of the loaded input live in left, nearest first, so extending either end is an
// append. Positions are window indices in [0, Len()).
type Tape struct {
	blank string
	left  []string
	right []string
}

func NewTape(blank string, cells []string) *Tape {
	return &Tape{
		blank: blank,
		right: slices.Clone(cells),
	}
}

func (t *Tape) Len() int {
	return len(t.left) + len(t.right)
}

func (t *Tape) Blank() string {
	return t.blank
}

func (t *Tape) Read(pos int) string {
	if pos < len(t.left) {
		return t.left[len(t.left)-1-pos]
	}
	return t.right[pos-len(t.left)]
}

func (t *Tape) Write(pos int, symbol string) {
	if pos < len(t.left) {
		t.left[len(t.left)-1-pos] = symbol
		return
	}
	t.right[pos-len(t.left)] = symbol
}

// GrowLeft materializes one blank cell at index 0. Every existing cell moves one
// index to the right.
func (t *Tape) GrowLeft() {
	t.left = append(t.left, t.blank)
}

// GrowRight materializes one blank cell at index Len().
func (t *Tape) GrowRight() {
	t.right = append(t.right, t.blank)
}

// Slice copies the cells in [from, to).
func (t *Tape) Slice(from, to int) []string {
	out := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, t.Read(i))
	}
	return out
}

func (t *Tape) Cells() []string {
	return t.Slice(0, t.Len())
}
