package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// HelpSection is a titled group of bindings for the help overlay.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpSections returns the widget's own help, suitable for appending
// application sections to.
func (k KeyMap) HelpSections() []HelpSection {
	return []HelpSection{
		{Title: "SUGGESTIONS", Bindings: k.Bindings()},
		{Title: "TAGS", Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("enter", ","), key.WithHelp("⏎ / ,", "Add typed tag")),
			key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "Select last tag, again to delete")),
			key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "Move between tags")),
		}},
	}
}

// RenderHelp draws the help box. intro is rendered as markdown above the key
// tables, wrapped to fit width.
func RenderHelp(sections []HelpSection, intro, markdownStyle string, width int) string {
	var blocks []string
	blocks = append(blocks, styleHelpTitle().Render("✦ TAG INPUT HELP ✦"))
	if strings.TrimSpace(intro) != "" {
		wrap := width - 10
		if wrap < 20 {
			wrap = 20
		}
		blocks = append(blocks, buildMarkdownRenderer(markdownStyle, wrap)(intro))
	}
	for _, s := range sections {
		blocks = append(blocks, "", renderHelpSection(s))
	}
	blocks = append(blocks, "", styleMuted().Render("Press F1 or Esc to close"))

	return styleHelpOverlay().Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func renderHelpSection(section HelpSection) string {
	rows := make([][]string, 0, len(section.Bindings))
	for _, b := range section.Bindings {
		h := b.Help()
		rows = append(rows, []string{h.Key, h.Desc})
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleHelpKey().Width(12)
			}
			return styleHelpDesc()
		}).
		Rows(rows...)

	// hidden border adds an empty top row
	tableStr := strings.TrimPrefix(t.String(), "\n")
	return lipgloss.JoinVertical(lipgloss.Left,
		styleHelpKey().Render(section.Title),
		styleMuted().Render(strings.Repeat("─", len(section.Title))),
		tableStr,
	)
}
