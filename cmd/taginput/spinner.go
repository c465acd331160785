package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	defaultSpinnerInterval = 120 * time.Millisecond
	defaultSpinnerDelay    = 250 * time.Millisecond
)

// loadReporter receives progress while candidate sources load.
type loadReporter interface {
	Source(path string)
	Stop()
}

// loadSpinner draws a one-line spinner on w. Nothing is drawn until delay has
// passed, so fast loads leave the terminal untouched.
type loadSpinner struct {
	writer        io.Writer
	delay         time.Duration
	frameInterval time.Duration
	frames        []rune

	events chan string
	stopCh chan struct{}
	doneCh chan struct{}
	once   sync.Once

	mu       sync.Mutex
	frameIdx int
}

func newLoadSpinner(w io.Writer, delay time.Duration) *loadSpinner {
	return newCustomLoadSpinner(w, delay, defaultSpinnerInterval)
}

func newCustomLoadSpinner(w io.Writer, delay, frameInterval time.Duration) *loadSpinner {
	if w == nil {
		w = io.Discard
	}
	sp := &loadSpinner{
		writer:        w,
		delay:         delay,
		frameInterval: frameInterval,
		frames:        []rune{'|', '/', '-', '\\'},
		events:        make(chan string, 8),
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
	go sp.loop()
	return sp
}

func (s *loadSpinner) Source(path string) {
	if s == nil {
		return
	}
	select {
	case <-s.stopCh:
		return
	default:
	}
	select {
	case s.events <- path:
	default:
	}
}

func (s *loadSpinner) Stop() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		close(s.stopCh)
		<-s.doneCh
	})
}

func (s *loadSpinner) loop() {
	defer close(s.doneCh)

	var delayCh <-chan time.Time
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		delayCh = timer.C
	}

	ticker := time.NewTicker(s.frameInterval)
	defer ticker.Stop()

	var current string
	hasSource := false
	visible := s.delay == 0

	for {
		select {
		case <-s.stopCh:
			if visible {
				s.clearLine()
			}
			return
		case src := <-s.events:
			current = src
			hasSource = true
			if visible {
				s.render(current)
			}
		case <-ticker.C:
			if visible && hasSource {
				s.render(current)
			}
		case <-delayCh:
			delayCh = nil
			visible = true
			if hasSource {
				s.render(current)
			}
		}
	}
}

func (s *loadSpinner) render(source string) {
	_, _ = fmt.Fprintf(s.writer, "\r\033[2K%c %s", s.nextFrame(), formatSourceMessage(source))
}

func (s *loadSpinner) clearLine() {
	_, _ = fmt.Fprint(s.writer, "\r\033[2K")
}

func (s *loadSpinner) nextFrame() rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := s.frames[s.frameIdx%len(s.frames)]
	s.frameIdx++
	return frame
}

func formatSourceMessage(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return "Loading suggestions..."
	}
	return fmt.Sprintf("Loading suggestions - %s", filepath.Base(source))
}
