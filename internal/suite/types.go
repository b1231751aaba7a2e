package suite

import (
	"github.com/DjordjeVuckovic/turing-nlp/internal/definition"
	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
)

// Suite is a set of acceptance cases for one machine definition.
type Suite struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Definition  string                 `yaml:"definition,omitempty" description:"definition file relative to the suite"`
	Machine     *definition.Definition `yaml:"machine,omitempty"`
	MaxSteps    int                    `yaml:"max_steps,omitempty" schema:"minimum=1"`
	Cases       []Case                 `yaml:"cases" schema:"required,minItems=1"`
}

type Case struct {
	ID       string         `yaml:"id" schema:"required,minLength=1"`
	Input    string         `yaml:"input"`
	Expect   machine.Status `yaml:"expect" schema:"required,enum=Accepted|Rejected|Continue"`
	Tape     *string        `yaml:"tape,omitempty" description:"expected tape without leading or trailing blanks"`
	MaxSteps int            `yaml:"max_steps,omitempty"`
}

// Limit returns the step limit for the case, falling back to the suite's and then def.
func (c *Case) Limit(s *Suite, def int) int {
	switch {
	case c.MaxSteps > 0:
		return c.MaxSteps
	case s.MaxSteps > 0:
		return s.MaxSteps
	default:
		return def
	}
}
