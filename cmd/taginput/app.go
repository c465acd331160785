package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taginput/internal/config"
	"taginput/internal/debug"
	"taginput/internal/taginput"
	"taginput/internal/ui"
	"taginput/internal/ui/theme"
)

const toastDuration = 3 * time.Second

const helpIntro = "Type a tag and press **Enter** or **,** to add it. " +
	"Pasted text is split into separate tags. " +
	"Suggestions come from the configured candidate file or database."

type appKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
	Help   key.Binding
	Theme  key.Binding
}

func defaultAppKeys() appKeyMap {
	return appKeyMap{
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "Submit tags")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Cancel")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "Quit without saving")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "Toggle help")),
		Theme:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "Next theme")),
	}
}

type toastClearMsg struct {
	seq int
}

// app hosts the tag input full screen and reports the result on exit.
type app struct {
	input *ui.TagInput
	keys  appKeyMap

	width    int
	height   int
	showHelp bool

	toast    string
	toastSeq int
	pending  []tea.Cmd

	quitting  bool
	submitted bool
	tags      []string

	saveTheme     func(string) error
	markdownStyle string
}

func newApp(opts ...taginput.Option) *app {
	a := &app{
		input:         ui.NewTagInput(opts...),
		keys:          defaultAppKeys(),
		saveTheme:     config.SaveTheme,
		markdownStyle: "dark",
	}
	if !lipgloss.HasDarkBackground() {
		a.markdownStyle = "light"
	}

	events := a.input.Controller().Events()
	events.OnAdd(func(t taginput.Tag) {
		a.notify("added " + t.Display())
	})
	events.OnRemove(func(t taginput.Tag) {
		a.notify("removed " + t.Display())
	})
	events.OnValidationError(func(value string) {
		a.notify(fmt.Sprintf("rejected %q", value))
	})
	events.OnPaste(func(raw string) {
		debug.App.Logf("pasted %d bytes", len(raw))
	})
	events.OnTextChange(func(text string) {
		debug.App.Logf("text settled at %q", text)
	})
	events.OnChange(func(tags []taginput.Tag) {
		debug.App.Logf("%d tag(s)", len(tags))
	})
	return a
}

// notify shows msg as a toast until toastDuration passes or a newer toast
// replaces it.
func (a *app) notify(msg string) {
	a.toastSeq++
	seq := a.toastSeq
	a.toast = msg
	a.pending = append(a.pending, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastClearMsg{seq: seq}
	}))
}

func (a *app) Init() tea.Cmd {
	return tea.Batch(a.input.Init(), a.input.Focus())
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case toastClearMsg:
		if msg.seq == a.toastSeq {
			a.toast = ""
		}
		return a, nil
	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, a.flush(cmd)
		}
	}
	_, cmd := a.input.Update(msg)
	return a, a.flush(cmd)
}

func (a *app) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if a.showHelp {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a.quit(), true
		case key.Matches(msg, a.keys.Help, a.keys.Cancel):
			a.showHelp = false
		}
		return nil, true
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit(), true
	case key.Matches(msg, a.keys.Submit):
		return a.submit(), true
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return nil, true
	case key.Matches(msg, a.keys.Theme):
		a.cycleTheme()
		return nil, true
	case key.Matches(msg, a.keys.Cancel) && !a.input.DropdownVisible():
		return a.quit(), true
	}
	return nil, false
}

func (a *app) quit() tea.Cmd {
	a.quitting = true
	return tea.Quit
}

// submit blurs the input, so add-on-blur can commit pending text, and quits.
func (a *app) submit() tea.Cmd {
	a.input.Blur()
	a.submitted = true
	a.tags = taginput.Values(a.input.Controller().Value())
	return a.quit()
}

func (a *app) cycleTheme() {
	name := theme.CycleTheme()
	if err := a.saveTheme(name); err != nil {
		debug.App.Logf("save theme %q: %v", name, err)
		a.notify("theme " + name + " (not saved)")
		return
	}
	a.notify("theme " + name)
}

func (a *app) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, a.pending...)
	a.pending = nil
	return tea.Batch(cmds...)
}

func (a *app) helpSections() []ui.HelpSection {
	sections := a.input.Keys().HelpSections()
	return append(sections, ui.HelpSection{
		Title:    "APP",
		Bindings: []key.Binding{a.keys.Submit, a.keys.Cancel, a.keys.Quit, a.keys.Help, a.keys.Theme},
	})
}

func (a *app) View() string {
	if a.quitting {
		return ""
	}
	t := theme.Current()
	title := lipgloss.NewStyle().Foreground(t.BorderFocused()).Bold(true).Render("taginput")
	muted := lipgloss.NewStyle().Foreground(t.TextMuted())

	ctrl := a.input.Controller()
	count := fmt.Sprintf("%d tag(s)", ctrl.Collection().Len())
	if capacity := ctrl.Collection().Capacity(); capacity != taginput.Unlimited {
		count = fmt.Sprintf("%d / %d tags", ctrl.Collection().Len(), capacity)
	}
	footer := muted.Render(fmt.Sprintf("%s • ctrl+s submit • esc cancel • F1 help • ctrl+t theme (%s)", count, theme.CurrentName()))

	base := lipgloss.JoinVertical(lipgloss.Left, title, "", a.input.View(), "", footer)
	if a.width <= 0 || a.height <= 0 || (!a.showHelp && a.toast == "") {
		return base
	}

	canvas := ui.NewCanvas(a.width, a.height)
	canvas.DrawStringAt(0, 0, base)
	if a.showHelp {
		canvas.CenterOverlay(ui.RenderHelp(a.helpSections(), helpIntro, a.markdownStyle, a.width-8))
	}
	if a.toast != "" {
		toast := lipgloss.NewStyle().
			Foreground(t.TagText()).
			Background(t.Tag()).
			Padding(0, 1).
			Render(a.toast)
		canvas.BottomRightOverlay(toast, 1)
	}
	return canvas.Render()
}
