package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"taginput/internal/taginput"
	"taginput/internal/ui/theme"
)

func newTestApp(t *testing.T, opts ...taginput.Option) *app {
	t.Helper()
	opts = append([]taginput.Option{taginput.WithSeparatorKeys(taginput.KeyEnter, taginput.KeyComma)}, opts...)
	a := newApp(opts...)
	a.saveTheme = func(string) error { return nil }
	a.Init()
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return a
}

func TestApp_Toasts(t *testing.T) {
	a := newTestApp(t, taginput.WithItems(taginput.Tags("go")...))

	typeKeys(a, "rust,")
	if a.toast != "added rust" {
		t.Fatalf("expected add toast, got %q", a.toast)
	}
	typeKeys(a, "go,")
	if a.toast != `rejected "go"` {
		t.Fatalf("expected rejection toast, got %q", a.toast)
	}

	view := ansi.Strip(a.View())
	if !strings.Contains(view, `rejected "go"`) {
		t.Errorf("expected toast in view:\n%s", view)
	}

	a.Update(toastClearMsg{seq: a.toastSeq - 1})
	if a.toast == "" {
		t.Error("stale clear removed the current toast")
	}
	a.Update(toastClearMsg{seq: a.toastSeq})
	if a.toast != "" {
		t.Errorf("expected toast cleared, got %q", a.toast)
	}
}

func TestApp_Help(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 60})

	pressKey(a, tea.KeyF1)
	if !a.showHelp {
		t.Fatal("expected F1 to open help")
	}
	view := ansi.Strip(a.View())
	for _, want := range []string{"TAG INPUT HELP", "APP", "Submit tags"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in help view:\n%s", want, view)
		}
	}

	// keys do not reach the input while help is open
	typeKeys(a, "x")
	if a.input.Controller().Text() != "" {
		t.Errorf("expected input untouched, got %q", a.input.Controller().Text())
	}

	pressKey(a, tea.KeyEsc)
	if a.showHelp {
		t.Error("expected Esc to close help")
	}
	if a.quitting {
		t.Error("closing help should not quit")
	}
}

func TestApp_EscClosesDropdownBeforeQuitting(t *testing.T) {
	a := newTestApp(t, taginput.WithCandidates(taginput.StaticCandidates{"golang"}))

	typeKeys(a, "go")
	if !a.input.DropdownVisible() {
		t.Fatal("expected dropdown open")
	}
	pressKey(a, tea.KeyEsc)
	if a.quitting {
		t.Fatal("first Esc should only close the dropdown")
	}
	pressKey(a, tea.KeyEsc)
	if !a.quitting || a.submitted {
		t.Errorf("expected cancel, got quitting=%v submitted=%v", a.quitting, a.submitted)
	}
}

func TestApp_SubmitAddsPendingTextOnBlur(t *testing.T) {
	a := newTestApp(t, taginput.WithAddOnBlur(true))

	typeKeys(a, "late")
	pressKey(a, tea.KeyCtrlS)
	if !a.submitted || !a.quitting {
		t.Fatal("expected submit to quit")
	}
	if len(a.tags) != 1 || a.tags[0] != "late" {
		t.Errorf("expected [late], got %v", a.tags)
	}
	if a.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestApp_CycleTheme(t *testing.T) {
	prev := theme.CurrentName()
	t.Cleanup(func() { theme.SetTheme(prev) })

	t.Run("Saves", func(t *testing.T) {
		a := newTestApp(t)
		var saved string
		a.saveTheme = func(name string) error {
			saved = name
			return nil
		}
		pressKey(a, tea.KeyCtrlT)
		if saved == "" || saved != theme.CurrentName() {
			t.Errorf("expected current theme %q saved, got %q", theme.CurrentName(), saved)
		}
		if a.toast != "theme "+saved {
			t.Errorf("unexpected toast %q", a.toast)
		}
	})

	t.Run("SaveFailure", func(t *testing.T) {
		a := newTestApp(t)
		a.saveTheme = func(string) error { return errors.New("read-only home") }
		pressKey(a, tea.KeyCtrlT)
		if !strings.HasSuffix(a.toast, "(not saved)") {
			t.Errorf("expected unsaved toast, got %q", a.toast)
		}
	})
}

func TestApp_ViewShowsCapacity(t *testing.T) {
	a := newTestApp(t, taginput.WithMaxItems(3), taginput.WithItems(taginput.Tags("a")...))
	view := ansi.Strip(a.View())
	if !strings.Contains(view, "1 / 3 tags") {
		t.Errorf("expected capacity in footer:\n%s", view)
	}
}
