// Package taginput implements the state machine behind a tag input widget.
//
// A Controller owns an ordered, de-duplicated collection of tags and the
// in-progress text buffer. Keystrokes, pastes and autocomplete selections are
// funneled through a single validation pipeline before they can mutate the
// collection, and every mutation is fanned out through a Notifier. Nothing in
// this package paints to a terminal; rendering is delegated to a Renderer.
package taginput

// Tag is a committed entry in the collection. Value is the canonical key used
// for de-duplication; Display is what gets rendered.
type Tag struct {
	value   string
	display string
}

// NewTag creates a tag whose display text equals its value.
func NewTag(value string) Tag {
	return Tag{value: value, display: value}
}

// NewTagWithDisplay creates a tag with a display text distinct from its value.
// An empty display falls back to the value.
func NewTagWithDisplay(value, display string) Tag {
	if display == "" {
		display = value
	}
	return Tag{value: value, display: display}
}

// Tags builds a slice of tags from raw values.
func Tags(values ...string) []Tag {
	out := make([]Tag, 0, len(values))
	for _, v := range values {
		out = append(out, NewTag(v))
	}
	return out
}

// Values returns the canonical values of tags, in order.
func Values(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.value
	}
	return out
}

// Value returns the canonical value.
func (t Tag) Value() string {
	return t.value
}

// Display returns the rendered text.
func (t Tag) Display() string {
	return t.display
}

// Equal reports whether both tags share the same canonical value.
func (t Tag) Equal(other Tag) bool {
	return t.value == other.value
}

// IsZero reports whether t is the zero Tag.
func (t Tag) IsZero() bool {
	return t.value == "" && t.display == ""
}

func (t Tag) String() string {
	return t.display
}
