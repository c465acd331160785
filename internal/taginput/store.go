package taginput

// Collection is the ordered, unique-by-value tag list plus selection state and
// capacity. It is owned by a Controller; the exported methods are read-only.
type Collection struct {
	items    []Tag
	capacity int // Unlimited when 0

	// selection is held by canonical value, never by position, and is
	// re-validated after every mutation.
	selected    string
	hasSelected bool
}

func newCollection(capacity int) *Collection {
	return &Collection{capacity: capacity}
}

// Len returns the number of tags.
func (c *Collection) Len() int {
	return len(c.items)
}

// Items returns a copy of the tags in insertion order.
func (c *Collection) Items() []Tag {
	out := make([]Tag, len(c.items))
	copy(out, c.items)
	return out
}

// At returns the tag at index i.
func (c *Collection) At(i int) Tag {
	return c.items[i]
}

// Last returns the last tag, if any.
func (c *Collection) Last() (Tag, bool) {
	if len(c.items) == 0 {
		return Tag{}, false
	}
	return c.items[len(c.items)-1], true
}

// Find looks a tag up by canonical value.
func (c *Collection) Find(value string) (Tag, bool) {
	if i := c.IndexOf(value); i >= 0 {
		return c.items[i], true
	}
	return Tag{}, false
}

// IndexOf returns the position of value, or -1.
func (c *Collection) IndexOf(value string) int {
	for i, t := range c.items {
		if t.value == value {
			return i
		}
	}
	return -1
}

// Contains reports whether a tag with value exists.
func (c *Collection) Contains(value string) bool {
	return c.IndexOf(value) >= 0
}

// Capacity returns the max-items ceiling, or Unlimited.
func (c *Collection) Capacity() int {
	return c.capacity
}

// MaxItemsReached reports whether no further tag may be appended.
func (c *Collection) MaxItemsReached() bool {
	return c.capacity != Unlimited && len(c.items) >= c.capacity
}

// Selected returns the selected tag, if any.
func (c *Collection) Selected() (Tag, bool) {
	if !c.hasSelected {
		return Tag{}, false
	}
	return c.Find(c.selected)
}

// IsSelected reports whether t is the selected tag.
func (c *Collection) IsSelected(t Tag) bool {
	return c.hasSelected && c.selected == t.value
}

func (c *Collection) append(t Tag) {
	c.items = append(c.items, t)
}

// remove deletes the tag with value and reports the removed tag.
func (c *Collection) remove(value string) (Tag, bool) {
	i := c.IndexOf(value)
	if i < 0 {
		return Tag{}, false
	}
	removed := c.items[i]
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.revalidateSelection()
	return removed, true
}

func (c *Collection) selectValue(value string) {
	c.selected = value
	c.hasSelected = true
}

func (c *Collection) clearSelection() {
	c.selected = ""
	c.hasSelected = false
}

// replace swaps the whole list, dropping later duplicates. It returns the
// number of duplicates dropped.
func (c *Collection) replace(tags []Tag) int {
	seen := make(map[string]struct{}, len(tags))
	items := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, dup := seen[t.value]; dup {
			continue
		}
		seen[t.value] = struct{}{}
		items = append(items, t)
	}
	c.items = items
	c.revalidateSelection()
	return len(tags) - len(items)
}

func (c *Collection) revalidateSelection() {
	if c.hasSelected && !c.Contains(c.selected) {
		c.clearSelection()
	}
}
