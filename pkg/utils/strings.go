package utils

import (
	"slices"
	"strings"
)

// SplitTrim splits s on sep, trims each part and drops the empty ones. An
// empty or all-separator input yields nil.
func SplitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	parts = slices.DeleteFunc(parts, func(p string) bool { return p == "" })
	if len(parts) == 0 {
		return nil
	}
	return parts
}
