package tagging

// Tagged pairs a token with its tag.
type Tagged struct {
	Token string `json:"token"`
	Tag   string `json:"tag"`
}

type Tagger struct {
	lex *Lexicon
}

func NewTagger(lex *Lexicon) *Tagger {
	return &Tagger{lex: lex}
}

// POS tags each token with a part-of-speech tag, NN when unknown.
func (t *Tagger) POS(tokens []string) []Tagged {
	return tagAll(tokens, &t.lex.POS)
}

// Entities tags each token with an entity class, O when none.
func (t *Tagger) Entities(tokens []string) []Tagged {
	return tagAll(tokens, &t.lex.Entities)
}

func tagAll(tokens []string, ts *TagSet) []Tagged {
	out := make([]Tagged, len(tokens))
	for i, tok := range tokens {
		out[i] = Tagged{Token: tok, Tag: ts.Lookup(tok)}
	}
	return out
}
