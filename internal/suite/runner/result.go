package runner

import "github.com/DjordjeVuckovic/turing-nlp/internal/machine"

type CaseResult struct {
	ID       string         `json:"id"`
	Input    string         `json:"input"`
	Expected machine.Status `json:"expected"`
	Got      machine.Status `json:"got"`
	Steps    int            `json:"steps"`
	Tape     string         `json:"tape"`
	Passed   bool           `json:"passed"`
	Reason   string         `json:"reason,omitempty"`
	Latency  LatencyStats   `json:"latency"`
}

type SuiteResult struct {
	Name    string       `json:"name"`
	Machine string       `json:"machine"`
	Cases   []CaseResult `json:"cases"`
	Latency LatencyStats `json:"latency"`
	Config  Config       `json:"config"`
}

func (r *SuiteResult) Passed() int {
	n := 0
	for _, c := range r.Cases {
		if c.Passed {
			n++
		}
	}
	return n
}

func (r *SuiteResult) Failed() int {
	return len(r.Cases) - r.Passed()
}

func (r *SuiteResult) OK() bool {
	return r.Failed() == 0
}
