package machine

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
)

const ruleFormat = "current_state,current_symbol -> next_state,write_symbol,direction"

// ParseRule parses a single rule line, e.g. "q_even,_ -> q_accept,_,R".
func ParseRule(line string) (Rule, error) {
	parts := strings.Split(line, "->")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("invalid transition format %q, expected %s", line, ruleFormat)
	}

	lhs := splitTrim(parts[0])
	rhs := splitTrim(parts[1])
	if len(lhs) != 2 || len(rhs) != 3 {
		return Rule{}, fmt.Errorf("invalid transition format %q, expected %s", line, ruleFormat)
	}
	for _, f := range append(lhs, rhs...) {
		if f == "" {
			return Rule{}, errors.New("transition has an empty field")
		}
	}

	move, err := ParseDirection(rhs[2])
	if err != nil {
		return Rule{}, err
	}

	return Rule{
		State: lhs[0],
		Read:  lhs[1],
		Next:  rhs[0],
		Write: rhs[1],
		Move:  move,
	}, nil
}

// ParseRules parses one rule per line. Blank lines and lines starting with "#"
// or "//" are ignored. The first malformed line fails the whole table.
func ParseRules(text string) ([]Rule, error) {
	var rules []Rule
	sc := bufio.NewScanner(strings.NewReader(text))
	ln := 0

	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		r, err := ParseRule(line)
		if err != nil {
			return nil, apperr.NewValidationWrap(fmt.Sprintf("line %d", ln), err)
		}
		rules = append(rules, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}

	return rules, nil
}

// FormatRules renders rules in the format accepted by ParseRules.
func FormatRules(rules []Rule) string {
	var sb strings.Builder
	for _, r := range rules {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func splitTrim(s string) []string {
	fields := strings.Split(s, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
