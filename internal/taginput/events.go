package taginput

// Notifier fans controller events out to subscribers, in subscription order.
// Subscribe before driving the controller; handlers run synchronously.
type Notifier struct {
	add             []func(Tag)
	remove          []func(Tag)
	selected        []func(Tag)
	focus           []func(string)
	blur            []func(string)
	textChange      []func(string)
	paste           []func(string)
	validationError []func(string)
	change          []func([]Tag)
}

// OnAdd subscribes to tag additions.
func (n *Notifier) OnAdd(fn func(Tag)) { n.add = append(n.add, fn) }

// OnRemove subscribes to tag removals.
func (n *Notifier) OnRemove(fn func(Tag)) { n.remove = append(n.remove, fn) }

// OnSelect subscribes to selection changes.
func (n *Notifier) OnSelect(fn func(Tag)) { n.selected = append(n.selected, fn) }

// OnFocus subscribes to input focus; the handler receives the buffer text.
func (n *Notifier) OnFocus(fn func(string)) { n.focus = append(n.focus, fn) }

// OnBlur subscribes to input blur; the handler receives the buffer text.
func (n *Notifier) OnBlur(fn func(string)) { n.blur = append(n.blur, fn) }

// OnTextChange subscribes to debounced buffer changes.
func (n *Notifier) OnTextChange(fn func(string)) { n.textChange = append(n.textChange, fn) }

// OnPaste subscribes to pastes; the handler receives the raw pasted text.
func (n *Notifier) OnPaste(fn func(string)) { n.paste = append(n.paste, fn) }

// OnValidationError subscribes to rejected candidates.
func (n *Notifier) OnValidationError(fn func(string)) {
	n.validationError = append(n.validationError, fn)
}

// OnChange subscribes to collection changes. This is the form-binding hook:
// the handler receives a copy of the full ordered collection.
func (n *Notifier) OnChange(fn func([]Tag)) { n.change = append(n.change, fn) }

func (n *Notifier) hasTextChange() bool {
	return len(n.textChange) > 0
}

func emitTag(handlers []func(Tag), t Tag) {
	for _, h := range handlers {
		h(t)
	}
}

func emitText(handlers []func(string), s string) {
	for _, h := range handlers {
		h(s)
	}
}

func (n *Notifier) emitAdd(t Tag)                { emitTag(n.add, t) }
func (n *Notifier) emitRemove(t Tag)             { emitTag(n.remove, t) }
func (n *Notifier) emitSelect(t Tag)             { emitTag(n.selected, t) }
func (n *Notifier) emitFocus(s string)           { emitText(n.focus, s) }
func (n *Notifier) emitBlur(s string)            { emitText(n.blur, s) }
func (n *Notifier) emitTextChange(s string)      { emitText(n.textChange, s) }
func (n *Notifier) emitPaste(s string)           { emitText(n.paste, s) }
func (n *Notifier) emitValidationError(s string) { emitText(n.validationError, s) }

func (n *Notifier) emitChange(tags []Tag) {
	for _, h := range n.change {
		h(append([]Tag(nil), tags...))
	}
}
