package definition

import (
	"fmt"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, apperr.NewValidationWrap("parse definition YAML", err)
	}
	if err := validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func validate(d *Definition) error {
	d.States = trimAll(d.States)
	d.InputSymbols = trimAll(d.InputSymbols)
	d.TapeSymbols = trimAll(d.TapeSymbols)
	d.Accept = trimAll(d.Accept)

	if d.Name == "" {
		return apperr.NewValidation("definition has no name")
	}
	if len(d.States) == 0 {
		return apperr.NewValidation(fmt.Sprintf("definition %q has no states", d.Name))
	}
	if len(d.Transitions) == 0 {
		return apperr.NewValidation(fmt.Sprintf("definition %q has no transitions", d.Name))
	}

	if d.Blank == "" {
		d.Blank = machine.DefaultBlank
	}
	if d.Start == "" {
		d.Start = d.States[0]
	}
	if len(d.TapeSymbols) == 0 {
		d.TapeSymbols = append(append([]string{}, d.InputSymbols...), d.Blank)
	}
	return nil
}

// Config converts the definition into a machine configuration. Rule lines are
// parsed here; alphabet and state checks happen in machine.New.
func (d *Definition) Config() (machine.Config, error) {
	rules, err := machine.ParseRules(strings.Join(d.Transitions, "\n"))
	if err != nil {
		return machine.Config{}, fmt.Errorf("definition %q: %w", d.Name, err)
	}

	return machine.Config{
		States:       d.States,
		InputSymbols: d.InputSymbols,
		TapeSymbols:  d.TapeSymbols,
		Blank:        d.Blank,
		Start:        d.Start,
		Accept:       d.Accept,
		Rules:        rules,
	}, nil
}

// Build parses the rules and constructs a machine loaded with the default input.
func (d *Definition) Build() (*machine.Machine, error) {
	cfg, err := d.Config()
	if err != nil {
		return nil, err
	}
	m, err := machine.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("definition %q: %w", d.Name, err)
	}
	m.LoadString(d.Input)
	return m, nil
}

// FromConfig builds a definition that round-trips to cfg.
func FromConfig(name string, cfg machine.Config) *Definition {
	transitions := make([]string, len(cfg.Rules))
	for i, r := range cfg.Rules {
		transitions[i] = r.String()
	}
	return &Definition{
		Name:         name,
		States:       cfg.States,
		InputSymbols: cfg.InputSymbols,
		TapeSymbols:  cfg.TapeSymbols,
		Blank:        cfg.Blank,
		Start:        cfg.Start,
		Accept:       cfg.Accept,
		Transitions:  transitions,
	}
}

// Parity is the built-in parity-checking definition.
func Parity() *Definition {
	d := FromConfig("parity", machine.ParityConfig())
	d.Description = "accepts non-empty binary inputs with an even number of 1s"
	d.Input = "0"
	return d
}

func trimAll(items []string) []string {
	out := items[:0:0]
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
