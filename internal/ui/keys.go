package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taginput/internal/taginput"
)

// KeyMap defines the widget's own shortcuts. Everything else is normalized
// and handed to the controller.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Accept  key.Binding
	Dismiss key.Binding
	Paste   key.Binding
}

// DefaultKeyMap returns the default widget bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↑/↓", "Browse suggestions"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "Browse suggestions"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("⏎/Tab", "Add highlighted suggestion"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close suggestions"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "Paste tags from clipboard"),
		),
	}
}

// Bindings lists the bindings for help rendering, one per row.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Next, k.Accept, k.Dismiss, k.Paste}
}

// keyEventFor maps a Bubble Tea key message to the controller's numeric key
// codes.
func keyEventFor(msg tea.KeyMsg) taginput.KeyEvent {
	switch msg.Type {
	case tea.KeyBackspace:
		return taginput.KeyEvent{Code: taginput.KeyBackspace}
	case tea.KeyDelete:
		return taginput.KeyEvent{Code: taginput.KeyDelete}
	case tea.KeyTab:
		return taginput.KeyEvent{Code: taginput.KeyTab}
	case tea.KeyEnter:
		return taginput.KeyEvent{Code: taginput.KeyEnter}
	case tea.KeyEsc:
		return taginput.KeyEvent{Code: taginput.KeyEscape}
	case tea.KeySpace:
		return taginput.KeyEvent{Code: taginput.KeySpace, Rune: ' '}
	case tea.KeyLeft:
		return taginput.KeyEvent{Code: taginput.KeyLeft}
	case tea.KeyRight:
		return taginput.KeyEvent{Code: taginput.KeyRight}
	case tea.KeyUp:
		return taginput.KeyEvent{Code: taginput.KeyUp}
	case tea.KeyDown:
		return taginput.KeyEvent{Code: taginput.KeyDown}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			r := msg.Runes[0]
			return taginput.KeyEvent{Code: codeForRune(r), Rune: r}
		}
	}
	return taginput.KeyEvent{Code: taginput.KeyUnknown}
}

func codeForRune(r rune) taginput.KeyCode {
	switch {
	case r == ',':
		return taginput.KeyComma
	case r == ';':
		return taginput.KeySemicolon
	case r == ' ':
		return taginput.KeySpace
	case r >= 'a' && r <= 'z':
		return taginput.KeyCode(unicode.ToUpper(r))
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return taginput.KeyCode(r)
	}
	return taginput.KeyUnknown
}
