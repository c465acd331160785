package taginput

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Paste splits raw into candidates and commits each one independently, as a
// non-autocomplete addition. Rejected pieces emit their own validation error
// without aborting the rest. OnPaste fires once with raw, then the buffer is
// cleared and focus requested on the next tick.
//
// Paste reports false when the paste handler is not enabled (AddOnPaste), in
// which case the caller should treat the text as ordinary typing.
func (c *Controller) Paste(raw string) bool {
	if c.destroyed || !c.opts.AddOnPaste {
		return false
	}
	if c.opts.ReadOnly {
		return true
	}
	for _, piece := range c.splitPaste(raw) {
		c.commit(piece, false)
	}
	c.events.emitPaste(raw)
	c.deferTask(func() {
		c.setBuffer("")
		c.focus(true)
	})
	return true
}

// splitPaste breaks raw on the configured separator. Terminal escape
// sequences are stripped from each piece; odd or empty pieces are kept so they
// fail validation individually.
func (c *Controller) splitPaste(raw string) []string {
	var pieces []string
	switch {
	case c.opts.PasteSplitRegexp != nil:
		pieces = c.opts.PasteSplitRegexp.Split(raw, -1)
	case c.opts.PasteSplitPattern != "":
		pieces = strings.Split(raw, c.opts.PasteSplitPattern)
	default:
		pieces = []string{raw}
	}
	for i, p := range pieces {
		pieces[i] = ansi.Strip(p)
	}
	return pieces
}
