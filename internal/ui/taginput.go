// Package ui renders a taginput.Controller as a Bubble Tea component.
package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taginput/internal/debug"
	"taginput/internal/taginput"
)

const (
	defaultWidth      = 60
	defaultMaxVisible = 6
	minDropdownWidth  = 16
	blinkDuration     = 150 * time.Millisecond
)

// blinkClearMsg ends the duplicate pulse started by Blink.
type blinkClearMsg struct {
	seq int
}

// TagInput is the Bubble Tea side of the widget. It owns the text field and
// the presentation state, and implements taginput.Renderer so the controller
// can ask for focus, blinks and dropdown placement.
type TagInput struct {
	ctrl  *taginput.Controller
	sched *TickScheduler
	input textinput.Model
	keys  KeyMap

	width         int
	dropdownWidth int
	maxVisible    int
	focused       bool

	blinkValue string
	blinkSeq   int

	pending       []tea.Cmd
	readClipboard func() (string, error)
}

// NewTagInput builds a controller from opts, wired to a tick scheduler and to
// the returned component.
func NewTagInput(opts ...taginput.Option) *TagInput {
	sched := NewTickScheduler()
	all := append(append([]taginput.Option(nil), opts...), taginput.WithScheduler(sched))
	ctrl := taginput.New(all...)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ctrl.Placeholder()

	t := &TagInput{
		ctrl:          ctrl,
		sched:         sched,
		input:         ti,
		keys:          DefaultKeyMap(),
		maxVisible:    defaultMaxVisible,
		readClipboard: clipboard.ReadAll,
	}
	t.SetWidth(defaultWidth)
	ctrl.SetRenderer(t)
	return t
}

// Controller exposes the underlying controller.
func (t *TagInput) Controller() *taginput.Controller {
	return t.ctrl
}

// Keys returns the widget bindings.
func (t *TagInput) Keys() KeyMap {
	return t.keys
}

// SetWidth sets the outer width, including the border.
func (t *TagInput) SetWidth(w int) {
	if w < minDropdownWidth+4 {
		w = minDropdownWidth + 4
	}
	t.width = w
	t.RepositionDropdown()
}

// SetMaxVisible caps the number of dropdown rows.
func (t *TagInput) SetMaxVisible(n int) {
	if n < 1 {
		n = 1
	}
	t.maxVisible = n
}

// DropdownVisible reports whether suggestions are showing.
func (t *TagInput) DropdownVisible() bool {
	return t.ctrl.Autocomplete().Visible()
}

// Focused reports whether the component has focus.
func (t *TagInput) Focused() bool {
	return t.focused
}

// Focus gives the component focus.
func (t *TagInput) Focus() tea.Cmd {
	t.focused = true
	t.ctrl.Focus()
	cmd := t.input.Focus()
	t.syncInput()
	return t.flush(cmd)
}

// Blur removes focus; add-on-blur and clear-on-blur run here.
func (t *TagInput) Blur() tea.Cmd {
	t.focused = false
	t.input.Blur()
	t.ctrl.Blur()
	t.syncInput()
	return t.flush()
}

// RequestFocus implements taginput.Renderer.
func (t *TagInput) RequestFocus() {
	t.focused = true
	t.pending = append(t.pending, t.input.Focus())
}

// Blink implements taginput.Renderer.
func (t *TagInput) Blink(tag taginput.Tag) {
	t.blinkSeq++
	seq := t.blinkSeq
	t.blinkValue = tag.Value()
	t.pending = append(t.pending, tea.Tick(blinkDuration, func(time.Time) tea.Msg {
		return blinkClearMsg{seq: seq}
	}))
}

// RepositionDropdown implements taginput.Renderer. The dropdown is anchored
// under the input, so only its width follows the viewport.
func (t *TagInput) RepositionDropdown() {
	w := t.width - 4
	if w < minDropdownWidth {
		w = minDropdownWidth
	}
	t.dropdownWidth = w
}

// Init implements tea.Model.
func (t *TagInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (t *TagInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.sched.Handle(msg) {
		t.syncInput()
		return t, t.flush()
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.SetWidth(msg.Width)
		t.ctrl.Autocomplete().Reposition()
	case blinkClearMsg:
		if msg.seq == t.blinkSeq {
			t.blinkValue = ""
		}
	case tea.KeyMsg:
		if t.focused {
			cmd = t.handleKey(msg)
		}
	default:
		t.input, cmd = t.input.Update(msg)
	}

	t.syncInput()
	return t, t.flush(cmd)
}

func (t *TagInput) handleKey(msg tea.KeyMsg) tea.Cmd {
	if t.ctrl.InputHidden() {
		t.handleTagOnlyKey(msg)
		return nil
	}
	if msg.Paste && t.ctrl.Paste(string(msg.Runes)) {
		return nil
	}
	if key.Matches(msg, t.keys.Paste) {
		t.pasteFromClipboard()
		return nil
	}
	if t.handleDropdownKey(msg) {
		return nil
	}

	ev := keyEventFor(msg)
	if selected, ok := t.ctrl.Selected(); ok && t.ctrl.Text() == "" {
		if t.ctrl.HandleTagKey(&ev, selected) {
			return nil
		}
		// any other key returns to the text field
		t.ctrl.Focus()
	}
	if t.ctrl.KeyDown(&ev) || t.ctrl.ReadOnly() {
		return nil
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	t.ctrl.SetText(t.input.Value())
	t.ctrl.KeyUp(&ev)
	return cmd
}

// handleTagOnlyKey serves a hidden text field: only tag selection and
// removal keys apply.
func (t *TagInput) handleTagOnlyKey(msg tea.KeyMsg) {
	ev := keyEventFor(msg)
	if selected, ok := t.ctrl.Selected(); ok {
		t.ctrl.HandleTagKey(&ev, selected)
		return
	}
	t.ctrl.KeyDown(&ev)
}

// handleDropdownKey routes navigation keys to autocomplete. It reports
// whether the key was consumed.
func (t *TagInput) handleDropdownKey(msg tea.KeyMsg) bool {
	ac := t.ctrl.Autocomplete()
	if !ac.Enabled() || t.ctrl.ReadOnly() {
		return false
	}
	switch {
	case key.Matches(msg, t.keys.Next):
		ac.HighlightNext()
		return true
	case !ac.Visible():
		return false
	case key.Matches(msg, t.keys.Prev):
		ac.HighlightPrev()
		return true
	case key.Matches(msg, t.keys.Dismiss):
		ac.Hide()
		return true
	case key.Matches(msg, t.keys.Accept):
		return ac.CommitHighlighted()
	}
	return false
}

func (t *TagInput) pasteFromClipboard() {
	text, err := t.readClipboard()
	if err != nil {
		debug.UI.Logf("read clipboard: %v", err)
		return
	}
	if t.ctrl.Paste(text) || t.ctrl.ReadOnly() {
		return
	}
	t.input.SetValue(t.input.Value() + text)
	t.input.CursorEnd()
	t.ctrl.SetText(t.input.Value())
	t.ctrl.Autocomplete().Refresh()
}

// syncInput mirrors controller state into the text field.
func (t *TagInput) syncInput() {
	if t.input.Value() != t.ctrl.Text() {
		t.input.SetValue(t.ctrl.Text())
		t.input.CursorEnd()
	}
	t.input.Placeholder = t.ctrl.Placeholder()
}

// flush collects commands queued by renderer callbacks and the scheduler.
func (t *TagInput) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, t.pending...)
	t.pending = nil
	cmds = append(cmds, t.sched.Flush())
	return tea.Batch(cmds...)
}
