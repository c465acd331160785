// Package candidates loads autocomplete suggestions for the tag input from
// YAML files and SQLite databases.
package candidates

import "strings"

// Static is an ordered, de-duplicated candidate list. It satisfies
// taginput.CandidateSource.
type Static []string

// NewStatic trims values and drops blanks and duplicates, keeping first-seen
// order.
func NewStatic(values ...string) Static {
	seen := make(map[string]struct{}, len(values))
	out := make(Static, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Candidates implements taginput.CandidateSource.
func (s Static) Candidates() []string {
	return s
}

// Merge concatenates lists in order, dropping duplicates.
func Merge(lists ...Static) Static {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	return NewStatic(all...)
}
