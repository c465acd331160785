package taginput

import (
	"fmt"
	"strings"

	"taginput/internal/debug"
)

// Renderer is the rendering collaborator. The controller calls it for side
// effects it cannot express as state.
type Renderer interface {
	// RequestFocus moves input focus to the text field.
	RequestFocus()
	// Blink pulses an existing tag, e.g. when a duplicate was entered.
	Blink(tag Tag)
	// RepositionDropdown re-anchors a visible dropdown after the viewport moved.
	RepositionDropdown()
}

type nopRenderer struct{}

func (nopRenderer) RequestFocus() {}

func (nopRenderer) Blink(Tag) {}

func (nopRenderer) RepositionDropdown() {}

// Controller is the tag collection controller. It is not safe for concurrent
// use: every method, and every Scheduler callback, must run on one goroutine.
type Controller struct {
	opts      Options
	tags      *Collection
	buffer    string
	events    *Notifier
	renderer  Renderer
	scheduler Scheduler

	check      *pipeline
	complete   *Autocomplete
	textChange *debouncer
	listeners  map[EventKind][]listener

	deferred  map[int]func()
	nextTask  int
	destroyed bool
}

// New builds and initializes a controller.
//
// Without WithScheduler the controller queues its timed work on a
// QueueScheduler; the host drains it with RunDue from its own loop.
//
// If the seeded items exceed MaxItems, MaxItems is raised to the seeded size
// and a warning is written to the debug log. This happens once, here.
func New(opts ...Option) *Controller {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Transform == nil {
		o.Transform = Identity
	}
	if o.Matcher == nil {
		o.Matcher = SubstringMatcher
	}
	if o.Scheduler == nil {
		o.Scheduler = NewQueueScheduler()
	}

	c := &Controller{
		opts:      o,
		tags:      newCollection(o.MaxItems),
		events:    &Notifier{},
		renderer:  o.Renderer,
		scheduler: o.Scheduler,
		deferred:  map[int]func(){},
	}
	if c.renderer == nil {
		c.renderer = nopRenderer{}
	}
	c.complete = newAutocomplete(c)
	c.check = &pipeline{tags: c.tags, opts: &c.opts}
	c.check.blink = func(t Tag) { c.renderer.Blink(t) }
	c.check.highlight = func() bool {
		_, ok := c.complete.Highlighted()
		return ok
	}
	c.textChange = newDebouncer(c.scheduler, o.TextChangeDebounce, func() {
		if !c.destroyed {
			c.events.emitTextChange(c.buffer)
		}
	})

	if dropped := c.tags.replace(o.Items); dropped > 0 {
		debug.Controller.Logf("dropped %d duplicate seeded item(s)", dropped)
	}
	if c.tags.capacity != Unlimited && c.tags.Len() > c.tags.capacity {
		debug.Controller.Warnf("%s (max-items %d, items %d)", MaxItemsWarning, c.tags.capacity, c.tags.Len())
		c.tags.capacity = c.tags.Len()
	}
	c.registerListeners()
	return c
}

// Scheduler returns the scheduler the controller queues timed work on.
func (c *Controller) Scheduler() Scheduler {
	return c.scheduler
}

// RunDue runs the debounce and deferred callbacks that are due when the
// controller owns a QueueScheduler, and returns how many ran. It is a no-op
// for injected schedulers, which deliver callbacks themselves.
func (c *Controller) RunDue() int {
	q, ok := c.scheduler.(*QueueScheduler)
	if !ok {
		return 0
	}
	return q.RunDue()
}

// Events returns the notifier to subscribe to.
func (c *Controller) Events() *Notifier {
	return c.events
}

// SetRenderer replaces the rendering collaborator. nil installs a no-op.
func (c *Controller) SetRenderer(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	c.renderer = r
}

// Autocomplete returns the autocomplete coordinator.
func (c *Controller) Autocomplete() *Autocomplete {
	return c.complete
}

// Collection exposes the tag collection for inspection.
func (c *Controller) Collection() *Collection {
	return c.tags
}

// Options returns the effective configuration.
func (c *Controller) Options() Options {
	return c.opts
}

// ReadOnly reports whether user mutation is locked.
func (c *Controller) ReadOnly() bool {
	return c.opts.ReadOnly
}

// InputHidden reports whether the text field is hidden.
func (c *Controller) InputHidden() bool {
	return c.opts.HideInput
}

// Append transforms and validates raw and, if accepted, appends it as a tag.
// Accepted candidates emit OnAdd, rejected ones OnValidationError; either way
// the buffer is cleared and focus requested. A Blocked verdict (a dropdown item
// is highlighted) leaves everything untouched.
func (c *Controller) Append(raw string, fromAutocomplete bool) bool {
	return c.appendItem(raw, fromAutocomplete, true)
}

func (c *Controller) appendItem(raw string, fromAutocomplete, refocus bool) bool {
	if c.destroyed || c.opts.ReadOnly {
		return false
	}
	verdict := c.commit(raw, fromAutocomplete)
	if verdict == Blocked {
		return false
	}
	c.setBuffer("")
	if refocus {
		c.focus(true)
	}
	return verdict == Accept
}

// commit runs one candidate through transform, pipeline and store, emitting
// the domain event. It does not touch the buffer.
func (c *Controller) commit(raw string, fromAutocomplete bool) Verdict {
	value := c.transform(raw)
	verdict := c.check.validate(value, fromAutocomplete)
	switch verdict {
	case Accept:
		tag := NewTag(value)
		c.tags.append(tag)
		c.events.emitAdd(tag)
		c.fireEvents(EventChange, nil)
	case Reject:
		attempted := value
		if attempted == "" {
			attempted = raw
		}
		c.events.emitValidationError(attempted)
	}
	return verdict
}

func (c *Controller) transform(raw string) string {
	if raw == "" {
		return ""
	}
	return c.opts.Transform(raw)
}

// Validate runs value through the pipeline without mutating anything, apart
// from the duplicate blink side signal.
func (c *Controller) Validate(value string, fromAutocomplete bool) Verdict {
	return c.check.validate(value, fromAutocomplete)
}

// IsValid is the boolean form of Validate.
func (c *Controller) IsValid(value string, fromAutocomplete bool) bool {
	return c.check.isValid(value, fromAutocomplete)
}

// Remove deletes the tag with t's value. Removing the selected tag clears the
// selection. No-op when read-only or absent.
func (c *Controller) Remove(t Tag) {
	if c.destroyed || c.opts.ReadOnly {
		return
	}
	// remove re-validates the selection, so a removed selected tag is
	// deselected here
	removed, ok := c.tags.remove(t.value)
	if !ok {
		return
	}
	c.focus(true)
	c.events.emitRemove(removed)
	c.fireEvents(EventChange, nil)
}

// Select marks t as selected. No-op when read-only, when t is not in the
// collection, or when it is already selected.
func (c *Controller) Select(t Tag) {
	if c.destroyed || c.opts.ReadOnly || t.IsZero() {
		return
	}
	current, ok := c.tags.Find(t.value)
	if !ok || c.tags.IsSelected(current) {
		return
	}
	c.tags.selectValue(current.value)
	c.events.emitSelect(current)
}

// Selected returns the selected tag, if any.
func (c *Controller) Selected() (Tag, bool) {
	return c.tags.Selected()
}

// Find looks a tag up by canonical value.
func (c *Controller) Find(value string) (Tag, bool) {
	return c.tags.Find(value)
}

// MaxItemsReached reports whether the collection is full.
func (c *Controller) MaxItemsReached() bool {
	return c.tags.MaxItemsReached()
}

// Value returns the ordered collection (form-binding getter).
func (c *Controller) Value() []Tag {
	return c.tags.Items()
}

// SetValue replaces the collection (form-binding setter). Duplicates are
// dropped. A value above capacity is kept whole and a warning is logged;
// MaxItemsReached then holds, so further additions are rejected until tags
// are removed. Capacity itself is not changed.
func (c *Controller) SetValue(tags []Tag) {
	if c.destroyed {
		return
	}
	c.tags.replace(tags)
	if c.tags.capacity != Unlimited && c.tags.Len() > c.tags.capacity {
		debug.Controller.Warnf("%s (max-items %d, items %d); refusing additions", MaxItemsWarning, c.tags.capacity, c.tags.Len())
	}
	c.fireEvents(EventChange, nil)
}

// Text returns the buffer.
func (c *Controller) Text() string {
	return c.buffer
}

// SetText replaces the buffer, as typed by the user.
func (c *Controller) SetText(s string) {
	if c.destroyed {
		return
	}
	c.setBuffer(s)
}

func (c *Controller) setBuffer(s string) {
	if s == c.buffer {
		return
	}
	c.buffer = s
	if c.events.hasTextChange() {
		c.textChange.trigger()
	}
}

// Errors returns the messages of custom validators rejecting the current
// buffer. An empty buffer has no errors.
func (c *Controller) Errors() []string {
	if c.buffer == "" {
		return nil
	}
	var msgs []string
	for _, name := range c.check.failing(c.transform(c.buffer)) {
		msg, ok := c.opts.ErrorMessages[name]
		if !ok {
			msg = fmt.Sprintf("invalid value (%s)", name)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// Valid reports whether the buffer satisfies every custom validator.
func (c *Controller) Valid() bool {
	return len(c.Errors()) == 0
}

// Placeholder returns the placeholder the input should show.
func (c *Controller) Placeholder() string {
	if c.tags.Len() == 0 && c.opts.SecondaryPlaceholder != "" {
		return c.opts.SecondaryPlaceholder
	}
	return c.opts.Placeholder
}

// KeyDown dispatches a key press to the keydown listeners. It reports whether
// a listener consumed the event.
func (c *Controller) KeyDown(ev *KeyEvent) bool {
	if c.destroyed {
		return false
	}
	c.fireEvents(EventKeyDown, ev)
	return ev.DefaultPrevented()
}

// KeyUp dispatches a key release; call it after the buffer reflects the key.
func (c *Controller) KeyUp(ev *KeyEvent) {
	if c.destroyed {
		return
	}
	c.fireEvents(EventKeyUp, ev)
}

// Focus reports that the input gained focus.
func (c *Controller) Focus() {
	c.focus(false)
}

// focus refreshes autocomplete, clears the selection and emits OnFocus. With
// apply set it also asks the renderer to move focus to the input.
func (c *Controller) focus(apply bool) {
	if c.destroyed || c.opts.ReadOnly {
		return
	}
	c.complete.Refresh()
	c.tags.clearSelection()
	c.events.emitFocus(c.buffer)
	if apply {
		c.renderer.RequestFocus()
	}
}

// Blur reports that the input lost focus. With AddOnBlur the buffer is
// committed; with AddOnBlur or ClearOnBlur it is then cleared.
func (c *Controller) Blur() {
	if c.destroyed {
		return
	}
	c.complete.Hide()
	c.events.emitBlur(c.buffer)
	if c.opts.AddOnBlur && strings.TrimSpace(c.buffer) != "" {
		c.appendItem(c.buffer, false, false)
	}
	if c.opts.AddOnBlur || c.opts.ClearOnBlur {
		c.setBuffer("")
	}
}

// deferTask runs fn at the scheduler's next opportunity unless the controller
// is destroyed first.
func (c *Controller) deferTask(fn func()) {
	c.nextTask++
	id := c.nextTask
	c.deferred[id] = c.scheduler.Schedule(0, func() {
		delete(c.deferred, id)
		if !c.destroyed {
			fn()
		}
	})
}

// Destroy tears the controller down. Pending debounce and deferred callbacks
// are cancelled and every later call becomes a no-op.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.textChange.stop()
	for id, cancel := range c.deferred {
		cancel()
		delete(c.deferred, id)
	}
	c.complete.Hide()
}

// Destroyed reports whether Destroy was called.
func (c *Controller) Destroyed() bool {
	return c.destroyed
}
