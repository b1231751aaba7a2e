package definition

// Definition is a machine description as written in YAML files.
type Definition struct {
	Name         string   `yaml:"name" json:"name" schema:"required,minLength=1"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	States       []string `yaml:"states" json:"states" schema:"required,minItems=1"`
	InputSymbols []string `yaml:"input_symbols" json:"input_symbols"`
	TapeSymbols  []string `yaml:"tape_symbols" json:"tape_symbols"`
	Blank        string   `yaml:"blank,omitempty" json:"blank,omitempty" schema:"default=_"`
	Start        string   `yaml:"start,omitempty" json:"start,omitempty" description:"defaults to the first state"`
	Accept       []string `yaml:"accept" json:"accept"`
	Transitions  []string `yaml:"transitions" json:"transitions" schema:"required,minItems=1" description:"rules as state,symbol -> next,write,L|R"`
	Input        string   `yaml:"input,omitempty" json:"input,omitempty"`
}
