package taginput

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// manualScheduler runs callbacks only when the test advances its clock.
type manualScheduler struct {
	now   time.Duration
	seq   int
	tasks []*scheduledTask
}

type scheduledTask struct {
	due       time.Duration
	seq       int
	fn        func()
	cancelled bool
}

func (s *manualScheduler) Schedule(d time.Duration, fn func()) func() {
	s.seq++
	task := &scheduledTask{due: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.cancelled = true }
}

// Advance moves the clock forward, running due callbacks in schedule order.
func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := -1
		for i, task := range s.tasks {
			if task.cancelled || task.due > target {
				continue
			}
			if next < 0 || task.due < s.tasks[next].due ||
				(task.due == s.tasks[next].due && task.seq < s.tasks[next].seq) {
				next = i
			}
		}
		if next < 0 {
			break
		}
		task := s.tasks[next]
		s.tasks = append(s.tasks[:next], s.tasks[next+1:]...)
		s.now = task.due
		task.fn()
	}
	s.now = target
}

// RunPending runs everything scheduled for the current instant.
func (s *manualScheduler) RunPending() {
	s.Advance(0)
}

func (s *manualScheduler) pending() int {
	n := 0
	for _, task := range s.tasks {
		if !task.cancelled {
			n++
		}
	}
	return n
}

type recordingRenderer struct {
	focusRequests int
	blinks        []Tag
	repositions   int
}

func (r *recordingRenderer) RequestFocus() { r.focusRequests++ }

func (r *recordingRenderer) Blink(t Tag) { r.blinks = append(r.blinks, t) }

func (r *recordingRenderer) RepositionDropdown() { r.repositions++ }

// eventLog subscribes to every notifier channel and records "kind:payload".
type eventLog struct {
	entries []string
}

func record(c *Controller) *eventLog {
	l := &eventLog{}
	ev := c.Events()
	ev.OnAdd(func(t Tag) { l.add("add", t.Value()) })
	ev.OnRemove(func(t Tag) { l.add("remove", t.Value()) })
	ev.OnSelect(func(t Tag) { l.add("select", t.Value()) })
	ev.OnFocus(func(s string) { l.add("focus", s) })
	ev.OnBlur(func(s string) { l.add("blur", s) })
	ev.OnPaste(func(s string) { l.add("paste", s) })
	ev.OnValidationError(func(s string) { l.add("error", s) })
	ev.OnChange(func(tags []Tag) { l.add("change", strings.Join(Values(tags), "|")) })
	return l
}

func (l *eventLog) add(kind, payload string) {
	l.entries = append(l.entries, fmt.Sprintf("%s:%s", kind, payload))
}

func (l *eventLog) count(kind string) int {
	n := 0
	for _, e := range l.entries {
		if strings.HasPrefix(e, kind+":") {
			n++
		}
	}
	return n
}

func (l *eventLog) reset() {
	l.entries = nil
}

// newTestController builds a controller wired to a manual scheduler and a
// recording renderer.
func newTestController(t *testing.T, opts ...Option) (*Controller, *manualScheduler, *recordingRenderer) {
	t.Helper()
	sched := &manualScheduler{}
	r := &recordingRenderer{}
	all := append([]Option{WithScheduler(sched), WithRenderer(r)}, opts...)
	c := New(all...)
	t.Cleanup(c.Destroy)
	return c, sched, r
}

func assertValues(t *testing.T, c *Controller, want ...string) {
	t.Helper()
	got := Values(c.Value())
	if strings.Join(got, "|") != strings.Join(want, "|") || len(got) != len(want) {
		t.Fatalf("collection = %v, want %v", got, want)
	}
}

func assertEntries(t *testing.T, l *eventLog, want ...string) {
	t.Helper()
	if strings.Join(l.entries, "\n") != strings.Join(want, "\n") {
		t.Fatalf("events:\n  got  %q\n  want %q", l.entries, want)
	}
}

func key(code KeyCode) *KeyEvent {
	return &KeyEvent{Code: code}
}
