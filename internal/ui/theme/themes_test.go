package theme

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// TestAllThemesRegistered verifies that all expected themes are registered.
func TestAllThemesRegistered(t *testing.T) {
	expected := []string{"catppuccin", "dracula", "gruvbox", "nord", "tokyonight"}
	if got := Available(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Available() = %v, want %v", got, expected)
	}
}

func TestDefaultThemeIsCurrent(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })
	SetTheme(DefaultName)
	if CurrentName() != DefaultName {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), DefaultName)
	}
}

// TestSetTheme verifies that theme switching works.
func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })
	for _, name := range []string{"dracula", "nord", "gruvbox"} {
		if !SetTheme(name) {
			t.Errorf("SetTheme(%q) returned false, expected true", name)
			continue
		}
		if CurrentName() != name {
			t.Errorf("CurrentName() = %q, expected %q", CurrentName(), name)
		}
	}
	if SetTheme("nonexistent-theme") {
		t.Error("SetTheme(\"nonexistent-theme\") returned true, expected false")
	}
}

// TestCycleTheme verifies that cycling visits every theme and wraps around.
func TestCycleTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })
	SetTheme("catppuccin")

	names := Available()
	seen := map[string]bool{}
	for i := 0; i < len(names); i++ {
		seen[CycleTheme()] = true
	}
	if len(seen) != len(names) {
		t.Errorf("cycled through %d themes, want %d", len(seen), len(names))
	}
	if CurrentName() != "catppuccin" {
		t.Errorf("full cycle should wrap back, got %q", CurrentName())
	}
}

// TestThemeColorsNotEmpty verifies that every theme defines every color.
func TestThemeColorsNotEmpty(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })
	for _, name := range Available() {
		SetTheme(name)
		th := Current()

		checkColor := func(colorName string, c lipgloss.AdaptiveColor) {
			if c.Dark == "" || c.Light == "" {
				t.Errorf("theme %q: %s is missing a Dark or Light value", name, colorName)
			}
		}
		checkColor("Tag", th.Tag())
		checkColor("TagText", th.TagText())
		checkColor("TagSelected", th.TagSelected())
		checkColor("TagBlink", th.TagBlink())
		checkColor("Text", th.Text())
		checkColor("TextMuted", th.TextMuted())
		checkColor("Highlight", th.Highlight())
		checkColor("Error", th.Error())
		checkColor("Border", th.Border())
		checkColor("BorderFocused", th.BorderFocused())
	}
}
