package suite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/turing-nlp/internal/definition"
	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite      *Suite
	Definition *definition.Definition
	Dir        string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	dir := filepath.Dir(path)
	loaded, err := parse(data, dir)
	if err != nil {
		return nil, err
	}
	loaded.Dir = dir
	return loaded, nil
}

// Parse reads a suite with an inline machine. Suites that reference a
// definition file need LoadFromFile so the path can be resolved.
func Parse(data []byte) (*LoadedSuite, error) {
	return parse(data, "")
}

func parse(data []byte, dir string) (*LoadedSuite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, errors.New("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
		if c.MaxSteps < 0 {
			return nil, fmt.Errorf("case %q has negative max_steps", c.ID)
		}
	}

	def, err := resolveDefinition(&s, dir)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = def.Name
	}

	return &LoadedSuite{Suite: &s, Definition: def}, nil
}

func resolveDefinition(s *Suite, dir string) (*definition.Definition, error) {
	switch {
	case s.Machine != nil && s.Definition != "":
		return nil, errors.New("suite sets both definition and machine")
	case s.Machine != nil:
		// round trip through the definition parser to get its validation
		raw, err := yaml.Marshal(s.Machine)
		if err != nil {
			return nil, fmt.Errorf("encode inline machine: %w", err)
		}
		return definition.Parse(raw)
	case s.Definition != "":
		if dir == "" {
			return nil, fmt.Errorf("definition %q needs a suite file to resolve against", s.Definition)
		}
		path := s.Definition
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return definition.LoadFromFile(path)
	default:
		return nil, errors.New("suite has neither definition nor machine")
	}
}
