package taginput

import "time"

// Scheduler runs fn once after d elapses. The returned function cancels the
// call if it has not run yet. A zero d means "at the next opportunity".
//
// The controller is single-threaded, so fn must be invoked on the goroutine
// that drives the controller. The Bubble Tea scheduler in internal/ui does this
// by routing ticks back through Update.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// QueueScheduler holds callbacks until the owner drains them with RunDue. It
// never starts goroutines, so callbacks run on the goroutine that drains it.
// New uses it when no scheduler is configured.
type QueueScheduler struct {
	now   func() time.Time
	seq   int
	tasks []queuedTask
}

type queuedTask struct {
	id  int
	due time.Time
	fn  func()
}

// NewQueueScheduler returns an empty queue on the wall clock.
func NewQueueScheduler() *QueueScheduler {
	return &QueueScheduler{now: time.Now}
}

// Schedule implements Scheduler.
func (q *QueueScheduler) Schedule(d time.Duration, fn func()) func() {
	q.seq++
	id := q.seq
	q.tasks = append(q.tasks, queuedTask{id: id, due: q.now().Add(d), fn: fn})
	return func() { q.drop(id) }
}

// RunDue runs every callback whose delay has elapsed, earliest first, and
// returns how many ran. Callbacks scheduled while draining wait for the next
// call.
func (q *QueueScheduler) RunDue() int {
	now, limit := q.now(), q.seq
	ran := 0
	for {
		i := q.nextDue(now, limit)
		if i < 0 {
			return ran
		}
		task := q.tasks[i]
		q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
		task.fn()
		ran++
	}
}

// NextDue reports when the earliest pending callback becomes due, so a host
// loop knows when to wake up.
func (q *QueueScheduler) NextDue() (time.Time, bool) {
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	next := q.tasks[0].due
	for _, task := range q.tasks[1:] {
		if task.due.Before(next) {
			next = task.due
		}
	}
	return next, true
}

// Pending returns the number of callbacks waiting to run.
func (q *QueueScheduler) Pending() int {
	return len(q.tasks)
}

func (q *QueueScheduler) nextDue(now time.Time, limit int) int {
	next := -1
	for i, task := range q.tasks {
		if task.id > limit || task.due.After(now) {
			continue
		}
		if next < 0 || task.due.Before(q.tasks[next].due) {
			next = i
		}
	}
	return next
}

func (q *QueueScheduler) drop(id int) {
	for i, task := range q.tasks {
		if task.id == id {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return
		}
	}
}

// debouncer coalesces bursts of trigger calls into one fire after a quiet
// period. fire reads whatever state is current when it runs.
type debouncer struct {
	scheduler Scheduler
	delay     time.Duration
	fire      func()
	cancel    func()
}

func newDebouncer(s Scheduler, delay time.Duration, fire func()) *debouncer {
	return &debouncer{scheduler: s, delay: delay, fire: fire}
}

// trigger cancels any pending fire and schedules a new one.
func (d *debouncer) trigger() {
	d.stop()
	d.cancel = d.scheduler.Schedule(d.delay, func() {
		d.cancel = nil
		d.fire()
	})
}

func (d *debouncer) stop() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *debouncer) pending() bool {
	return d.cancel != nil
}
