package taginput

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// DropdownState is the autocomplete dropdown's state.
type DropdownState int

const (
	DropdownHidden DropdownState = iota
	// DropdownVisibleEmpty - open with nothing to offer (buffer empty and
	// show-if-empty enabled).
	DropdownVisibleEmpty
	// DropdownVisibleMatching - open with matches, none highlighted.
	DropdownVisibleMatching
	// DropdownItemHighlighted - open with a highlighted match.
	DropdownItemHighlighted
)

func (s DropdownState) String() string {
	switch s {
	case DropdownVisibleEmpty:
		return "visible-empty"
	case DropdownVisibleMatching:
		return "visible-matching"
	case DropdownItemHighlighted:
		return "item-highlighted"
	default:
		return "hidden"
	}
}

// Matcher filters candidates against the query, returning matches in display
// order.
type Matcher func(candidates []string, query string) []string

// SubstringMatcher keeps candidates containing query, case-insensitively.
func SubstringMatcher(candidates []string, query string) []string {
	q := strings.ToLower(query)
	var out []string
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), q) {
			out = append(out, c)
		}
	}
	return out
}

// PrefixMatcher keeps candidates starting with query, case-insensitively.
func PrefixMatcher(candidates []string, query string) []string {
	q := strings.ToLower(query)
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), q) {
			out = append(out, c)
		}
	}
	return out
}

// FuzzyMatcher keeps candidates fuzzily matching query, best match first.
// An empty query returns candidates unchanged.
func FuzzyMatcher(candidates []string, query string) []string {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return append([]string(nil), candidates...)
	}
	targets := make([]string, len(candidates))
	for i, c := range candidates {
		targets[i] = strings.ToLower(c)
	}
	matches := fuzzy.Find(q, targets)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Index >= 0 && m.Index < len(candidates) {
			out = append(out, candidates[m.Index])
		}
	}
	return out
}

// Autocomplete coordinates the buffer, the candidate source and dropdown
// selections. It holds only the transient match set and highlight; the
// collection and buffer belong to the controller.
type Autocomplete struct {
	ctrl        *Controller
	source      CandidateSource
	match       Matcher
	showIfEmpty bool

	state     DropdownState
	matches   []string
	highlight int // -1 when nothing is highlighted
}

func newAutocomplete(ctrl *Controller) *Autocomplete {
	return &Autocomplete{
		ctrl:        ctrl,
		source:      ctrl.opts.Candidates,
		match:       ctrl.opts.Matcher,
		showIfEmpty: ctrl.opts.ShowDropdownIfEmpty,
		highlight:   -1,
	}
}

// Enabled reports whether a candidate source is configured.
func (a *Autocomplete) Enabled() bool {
	return a.source != nil
}

// State returns the dropdown state.
func (a *Autocomplete) State() DropdownState {
	return a.state
}

// Visible reports whether the dropdown is shown.
func (a *Autocomplete) Visible() bool {
	return a.state != DropdownHidden
}

// Matches returns a copy of the current match set.
func (a *Autocomplete) Matches() []string {
	return append([]string(nil), a.matches...)
}

// HighlightIndex returns the highlighted match index, or -1.
func (a *Autocomplete) HighlightIndex() int {
	return a.highlight
}

// Highlighted returns the highlighted match, if any.
func (a *Autocomplete) Highlighted() (string, bool) {
	if a.state != DropdownItemHighlighted || a.highlight < 0 || a.highlight >= len(a.matches) {
		return "", false
	}
	return a.matches[a.highlight], true
}

// Refresh recomputes the match set from the current buffer and moves the
// dropdown to the matching state.
func (a *Autocomplete) Refresh() {
	if !a.Enabled() {
		return
	}
	query := a.ctrl.buffer
	if query == "" && !a.showIfEmpty {
		a.Hide()
		return
	}
	a.matches = a.filter(query)
	a.highlight = -1
	switch {
	case len(a.matches) > 0:
		a.state = DropdownVisibleMatching
	case query == "" && a.showIfEmpty:
		a.state = DropdownVisibleEmpty
	default:
		a.Hide()
	}
}

func (a *Autocomplete) filter(query string) []string {
	var out []string
	for _, m := range a.match(a.source.Candidates(), query) {
		if a.ctrl.tags.Contains(a.ctrl.transform(m)) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// HighlightNext moves the highlight down. On a hidden dropdown it opens the
// full match set for the current buffer, ignoring show-if-empty.
func (a *Autocomplete) HighlightNext() {
	if !a.Enabled() {
		return
	}
	if a.state == DropdownHidden {
		a.matches = a.filter(a.ctrl.buffer)
		a.highlight = -1
		if len(a.matches) == 0 {
			a.matches = nil
			return
		}
	}
	if len(a.matches) == 0 {
		return
	}
	if a.highlight < len(a.matches)-1 {
		a.highlight++
	}
	a.state = DropdownItemHighlighted
}

// HighlightPrev moves the highlight up; moving above the first match clears it.
func (a *Autocomplete) HighlightPrev() {
	if a.state != DropdownItemHighlighted {
		return
	}
	if a.highlight <= 0 {
		a.ClearHighlight()
		return
	}
	a.highlight--
}

// ClearHighlight drops the highlight, keeping the dropdown open.
func (a *Autocomplete) ClearHighlight() {
	if a.state != DropdownItemHighlighted {
		return
	}
	a.highlight = -1
	a.state = DropdownVisibleMatching
}

// Commit adds value as an autocomplete-origin tag and hides the dropdown.
func (a *Autocomplete) Commit(value string) bool {
	a.Hide()
	return a.ctrl.Append(value, true)
}

// CommitHighlighted commits the highlighted match. It reports false when
// nothing is highlighted.
func (a *Autocomplete) CommitHighlighted() bool {
	value, ok := a.Highlighted()
	if !ok {
		return false
	}
	a.Commit(value)
	return true
}

// Hide clears the match set and closes the dropdown.
func (a *Autocomplete) Hide() {
	a.matches = nil
	a.highlight = -1
	a.state = DropdownHidden
}

// Reposition asks the renderer to move a visible dropdown. It never changes
// state.
func (a *Autocomplete) Reposition() {
	if a.Visible() {
		a.ctrl.renderer.RepositionDropdown()
	}
}
