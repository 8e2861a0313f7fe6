package flow

import (
	"fmt"
	"strconv"
	"strings"
)

// resolveSelection parses free-text 1-based indices against the displayed
// snapshot. The snapshot is never re-queried between display and
// resolution, so a concurrent inventory change cannot shift indices.
// Tokens that are not valid indices are dropped with a warning; the
// remaining tokens still resolve. Duplicate indices collapse.
func resolveSelection(input string, listed []string) (units []string, warnings []string) {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	seen := make(map[int]bool, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > len(listed) {
			warnings = append(warnings, fmt.Sprintf("invalid selection %q dropped (valid: 1-%d)", tok, len(listed)))
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		units = append(units, listed[n-1])
	}
	return units, warnings
}
