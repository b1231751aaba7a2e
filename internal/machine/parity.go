package machine

// ParityConfig is the parity-checking example machine. It accepts non-empty
// binary inputs with an even number of 1s. The empty input has no rule for
// (q_start, _) and rejects.
func ParityConfig() Config {
	return Config{
		States:       []string{"q_start", "q_odd", "q_even", "q_accept", "q_reject"},
		InputSymbols: []string{"0", "1"},
		TapeSymbols:  []string{"0", "1", DefaultBlank},
		Blank:        DefaultBlank,
		Start:        "q_start",
		Accept:       []string{"q_accept"},
		Rules: []Rule{
			{State: "q_start", Read: "0", Next: "q_even", Write: "0", Move: Right},
			{State: "q_start", Read: "1", Next: "q_odd", Write: "1", Move: Right},
			{State: "q_even", Read: "0", Next: "q_even", Write: "0", Move: Right},
			{State: "q_even", Read: "1", Next: "q_odd", Write: "1", Move: Right},
			{State: "q_even", Read: DefaultBlank, Next: "q_accept", Write: DefaultBlank, Move: Right},
			{State: "q_odd", Read: "0", Next: "q_odd", Write: "0", Move: Right},
			{State: "q_odd", Read: "1", Next: "q_even", Write: "1", Move: Right},
			{State: "q_odd", Read: DefaultBlank, Next: "q_reject", Write: DefaultBlank, Move: Right},
		},
	}
}
