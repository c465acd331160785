package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scheduledMsg is delivered when a TickScheduler callback is due.
type scheduledMsg struct {
	owner *TickScheduler
	id    int
}

// TickScheduler implements taginput.Scheduler on top of tea.Tick. Callbacks
// are queued as commands and run from Update when their message comes back,
// so the controller only ever runs on the Bubble Tea goroutine.
type TickScheduler struct {
	nextID  int
	tasks   map[int]func()
	pending []tea.Cmd
}

// NewTickScheduler creates an empty scheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{tasks: map[int]func(){}}
}

// Schedule records fn and queues a tick command for it. The command is
// returned by the next Flush.
func (s *TickScheduler) Schedule(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	s.tasks[id] = fn
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return scheduledMsg{owner: s, id: id}
	}))
	return func() { delete(s.tasks, id) }
}

// Flush returns the tick commands queued since the last call.
func (s *TickScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Handle runs the callback behind msg. It reports whether msg belonged to
// this scheduler; cancelled callbacks are swallowed.
func (s *TickScheduler) Handle(msg tea.Msg) bool {
	m, ok := msg.(scheduledMsg)
	if !ok || m.owner != s {
		return false
	}
	if fn, ok := s.tasks[m.id]; ok {
		delete(s.tasks, m.id)
		fn()
	}
	return true
}

// Pending returns the number of callbacks not yet run or cancelled.
func (s *TickScheduler) Pending() int {
	return len(s.tasks)
}
