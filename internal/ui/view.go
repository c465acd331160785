package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"taginput/internal/taginput"
	"taginput/internal/ui/theme"
)

// Powerline glyphs for the pill edges.
const (
	pillLeft  = "\ue0b6"
	pillRight = "\ue0b4"
)

const (
	maxPillLabel     = 24
	noSuggestionsMsg = "No suggestions"
	moreAboveMsg     = "▲ more above"
	moreBelowMsg     = "▼ more below"
)

type pillState int

const (
	pillNormal pillState = iota
	pillSelected
	pillBlink
)

// renderPill draws a tag as a rounded pill.
func renderPill(label string, state pillState) string {
	t := theme.Current()
	bg := t.Tag()
	switch state {
	case pillSelected:
		bg = t.TagSelected()
	case pillBlink:
		bg = t.TagBlink()
	}

	label = ansi.Truncate(label, maxPillLabel, "…")
	body := lipgloss.NewStyle().
		Foreground(t.TagText()).
		Background(bg).
		Bold(state != pillNormal).
		Render(label)

	edge := lipgloss.NewStyle().Foreground(bg)
	return edge.Render(pillLeft) + body + edge.Render(pillRight)
}

func (t *TagInput) pillState(tag taginput.Tag) pillState {
	switch {
	case t.blinkValue != "" && tag.Value() == t.blinkValue:
		return pillBlink
	case t.ctrl.Collection().IsSelected(tag):
		return pillSelected
	default:
		return pillNormal
	}
}

// View implements tea.Model.
func (t *TagInput) View() string {
	inner := t.width - 4
	var elems []string
	for _, tag := range t.ctrl.Value() {
		elems = append(elems, renderPill(tag.Display(), t.pillState(tag)))
	}
	if !t.ctrl.ReadOnly() && !t.ctrl.InputHidden() {
		t.input.Width = inputWidth(inner)
		t.input.TextStyle = styleText()
		elems = append(elems, t.input.View())
	}
	if len(elems) == 0 {
		elems = append(elems, styleMuted().Render(t.ctrl.Placeholder()))
	}

	box := styleInputBox(t.focused).Width(t.width - 2).Render(wrapElements(elems, inner))
	parts := []string{box}
	if t.focused && t.DropdownVisible() && !t.ctrl.InputHidden() {
		parts = append(parts, t.renderDropdown())
	}
	for _, msg := range t.ctrl.Errors() {
		parts = append(parts, styleError().Render("✗ "+msg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// inputWidth leaves the text field a third of the row, never less than 10.
func inputWidth(inner int) int {
	w := inner / 3
	if w < 10 {
		w = 10
	}
	return w
}

// wrapElements lays out rendered elements left to right, breaking lines at
// width.
func wrapElements(elems []string, width int) string {
	if width <= 0 {
		return strings.Join(elems, " ")
	}

	var lines []string
	var line []string
	lineWidth := 0
	for _, el := range elems {
		w := lipgloss.Width(el)
		need := w
		if len(line) > 0 {
			need++
		}
		if lineWidth+need > width && len(line) > 0 {
			lines = append(lines, strings.Join(line, " "))
			line = []string{el}
			lineWidth = w
			continue
		}
		line = append(line, el)
		lineWidth += need
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return strings.Join(lines, "\n")
}

func (t *TagInput) renderDropdown() string {
	ac := t.ctrl.Autocomplete()
	width := t.dropdownWidth
	if ac.State() == taginput.DropdownVisibleEmpty {
		return styleDropdownBox().Width(width).Render(styleMuted().Render(noSuggestionsMsg))
	}

	matches := ac.Matches()
	start, end := visibleWindow(len(matches), ac.HighlightIndex(), t.maxVisible)
	var rows []string
	if start > 0 {
		rows = append(rows, styleMuted().Render(moreAboveMsg))
	}
	for i := start; i < end; i++ {
		label := truncate.StringWithTail(matches[i], uint(width-2), "…")
		highlighted := i == ac.HighlightIndex()
		prefix := "  "
		if highlighted {
			prefix = "▸ "
		}
		rows = append(rows, styleDropdownItem(highlighted).Render(prefix+label))
	}
	if end < len(matches) {
		rows = append(rows, styleMuted().Render(fmt.Sprintf("%s (%d)", moreBelowMsg, len(matches)-end)))
	}
	return styleDropdownBox().Width(width).Render(strings.Join(rows, "\n"))
}

// visibleWindow returns the [start, end) slice of n rows to show so that the
// highlighted row stays in view.
func visibleWindow(n, highlight, limit int) (int, int) {
	if n <= limit {
		return 0, n
	}
	start := 0
	if highlight >= limit {
		start = highlight - limit + 1
	}
	return start, start + limit
}
