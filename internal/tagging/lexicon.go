package tagging

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

type Lexicon struct {
	POS      TagSet `yaml:"pos"`
	Entities TagSet `yaml:"entities"`
}

// TagSet is an ordered list of word lists. Lookup returns the first tag whose
// list contains the word, or Default.
type TagSet struct {
	Default  string     `yaml:"default"`
	FoldCase bool       `yaml:"fold_case"`
	Tags     []WordList `yaml:"tags"`

	index map[string]string
}

type WordList struct {
	Tag   string   `yaml:"tag"`
	Words []string `yaml:"words"`
}

func (ts *TagSet) build() {
	ts.index = make(map[string]string)
	for _, wl := range ts.Tags {
		for _, w := range wl.Words {
			key := ts.key(w)
			if _, seen := ts.index[key]; !seen {
				ts.index[key] = wl.Tag
			}
		}
	}
}

func (ts *TagSet) key(word string) string {
	if ts.FoldCase {
		return strings.ToLower(word)
	}
	return word
}

func (ts *TagSet) Lookup(word string) string {
	if tag, ok := ts.index[ts.key(word)]; ok {
		return tag
	}
	return ts.Default
}

// DefaultLexicon returns the built-in word lists.
func DefaultLexicon() *Lexicon {
	lex, err := ParseLexicon(defaultLexicon)
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon is invalid: %v", err))
	}
	return lex
}

func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	return ParseLexicon(data)
}

func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, apperr.NewValidationWrap("parse lexicon YAML", err)
	}
	if err := validateTagSet("pos", &lex.POS); err != nil {
		return nil, err
	}
	if err := validateTagSet("entities", &lex.Entities); err != nil {
		return nil, err
	}

	lex.POS.build()
	lex.Entities.build()
	return &lex, nil
}

func validateTagSet(name string, ts *TagSet) error {
	if ts.Default == "" {
		return apperr.NewValidation(fmt.Sprintf("%s: default tag is required", name))
	}
	for i, wl := range ts.Tags {
		if wl.Tag == "" {
			return apperr.NewValidation(fmt.Sprintf("%s: word list at index %d has no tag", name, i))
		}
	}
	return nil
}
