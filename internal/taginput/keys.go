package taginput

import (
	"strconv"
	"strings"
)

// KeyCode is a layout-independent numeric key code. Values follow the DOM
// keyCode numbering so separator sets can be configured as plain integers.
type KeyCode int

const (
	KeyUnknown   KeyCode = 0
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyEnter     KeyCode = 13
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = 32
	KeyLeft      KeyCode = 37
	KeyUp        KeyCode = 38
	KeyRight     KeyCode = 39
	KeyDown      KeyCode = 40
	KeyDelete    KeyCode = 46
	KeySemicolon KeyCode = 186
	KeyComma     KeyCode = 188
)

// KeyEvent is a normalized key press delivered by the rendering collaborator.
type KeyEvent struct {
	Code KeyCode
	Rune rune // printable character, if any

	defaultPrevented bool
}

// PreventDefault marks the event as consumed; the collaborator must not apply
// its own handling (e.g. inserting the character into the buffer).
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler consumed the event.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Action is a named operation bound to a key while a tag has focus.
type Action int

const (
	ActionNone Action = iota
	ActionDelete
	ActionSelectPrev
	ActionSelectNext
)

func (a Action) String() string {
	switch a {
	case ActionDelete:
		return "delete"
	case ActionSelectPrev:
		return "select-prev"
	case ActionSelectNext:
		return "select-next"
	default:
		return "none"
	}
}

// tagKeyActions is the fixed table consulted when a tag has focus.
var tagKeyActions = map[KeyCode]Action{
	KeyBackspace: ActionDelete,
	KeyDelete:    ActionDelete,
	KeyLeft:      ActionSelectPrev,
	KeyRight:     ActionSelectNext,
	KeyTab:       ActionSelectNext,
}

// ActionFor returns the action bound to code, or ActionNone.
func ActionFor(code KeyCode) Action {
	return tagKeyActions[code]
}

// EventKind keys the listener registry.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventChange
)

// listener handles one event kind. ev is nil for EventChange.
type listener func(ev *KeyEvent)

// registerListeners populates the registry once, in a fixed order, based on
// configuration.
func (c *Controller) registerListeners() {
	c.listeners = map[EventKind][]listener{}
	c.addListener(EventKeyDown, c.backspaceListener, true)
	c.addListener(EventKeyDown, c.separatorListener, len(c.opts.SeparatorKeys) > 0)
	c.addListener(EventKeyUp, c.autocompleteListener, c.complete.Enabled())
	c.addListener(EventChange, c.changeListener, true)
}

func (c *Controller) addListener(kind EventKind, l listener, condition bool) {
	if !condition {
		return
	}
	c.listeners[kind] = append(c.listeners[kind], l)
}

func (c *Controller) fireEvents(kind EventKind, ev *KeyEvent) {
	for _, l := range c.listeners[kind] {
		l(ev)
	}
}

// HandleTagKey runs the action bound to ev.Code against the focused tag.
// It returns false, leaving ev untouched, for unbound codes.
func (c *Controller) HandleTagKey(ev *KeyEvent, focused Tag) bool {
	action := ActionFor(ev.Code)
	if action == ActionNone || c.destroyed {
		return false
	}
	c.runAction(action, focused)
	ev.PreventDefault()
	return true
}

func (c *Controller) runAction(action Action, focused Tag) {
	switch action {
	case ActionDelete:
		c.Remove(focused)
	case ActionSelectPrev:
		if i := c.tags.IndexOf(focused.value); i > 0 {
			c.Select(c.tags.At(i - 1))
		}
	case ActionSelectNext:
		i := c.tags.IndexOf(focused.value)
		if i < 0 {
			return
		}
		if i == c.tags.Len()-1 {
			// past the last tag: hand focus back to the input
			c.focus(true)
			return
		}
		c.Select(c.tags.At(i + 1))
	}
}

// backspaceListener implements the two-step delete: with an empty buffer the
// first press selects the last tag, a press with a tag selected deletes it.
// Left arrow with an empty buffer also enters the tag list.
func (c *Controller) backspaceListener(ev *KeyEvent) {
	if ev.Code != KeyBackspace && ev.Code != KeyLeft {
		return
	}
	if c.opts.ReadOnly || c.buffer != "" || c.tags.Len() == 0 {
		return
	}
	if selected, ok := c.tags.Selected(); ok {
		c.HandleTagKey(ev, selected)
		return
	}
	last, _ := c.tags.Last()
	c.Select(last)
	ev.PreventDefault()
}

func (c *Controller) separatorListener(ev *KeyEvent) {
	if !c.isSeparator(ev.Code) || c.opts.ReadOnly {
		return
	}
	if strings.TrimSpace(c.buffer) == "" {
		return
	}
	ev.PreventDefault()
	c.Append(c.buffer, false)
}

func (c *Controller) autocompleteListener(ev *KeyEvent) {
	switch ev.Code {
	case KeyUp, KeyDown, KeyEnter, KeyEscape:
		// dropdown navigation keys never re-filter
		return
	}
	c.complete.Refresh()
}

func (c *Controller) changeListener(*KeyEvent) {
	c.events.emitChange(c.tags.items)
}

func (c *Controller) isSeparator(code KeyCode) bool {
	for _, k := range c.opts.SeparatorKeys {
		if k == code {
			return true
		}
	}
	return false
}

var keyNames = map[string]KeyCode{
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"enter":     KeyEnter,
	"escape":    KeyEscape,
	"space":     KeySpace,
	"left":      KeyLeft,
	"up":        KeyUp,
	"right":     KeyRight,
	"down":      KeyDown,
	"delete":    KeyDelete,
	"semicolon": KeySemicolon,
	"comma":     KeyComma,
}

// ParseKeyCode resolves a key name ("enter", "comma", ...) or a decimal key
// code ("188") to a KeyCode.
func ParseKeyCode(s string) (KeyCode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if code, ok := keyNames[s]; ok {
		return code, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return KeyUnknown, false
	}
	return KeyCode(n), true
}
