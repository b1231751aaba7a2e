package tokenizer

// Tokenizer splits input text into tokens.
type Tokenizer interface {
	Tokenize(input string) []string
}

// TapeTokenizer tokenizes each input with a fresh Scanner.
type TapeTokenizer struct{}

func NewTapeTokenizer() *TapeTokenizer {
	return &TapeTokenizer{}
}

func (TapeTokenizer) Tokenize(input string) []string {
	return New(input).Tokenize()
}

// Trace tokenizes input and also returns every intermediate snapshot.
func (TapeTokenizer) Trace(input string) ([]Snapshot, []string) {
	s := New(input)
	steps := s.Run()
	return steps, s.Tokenize()
}
