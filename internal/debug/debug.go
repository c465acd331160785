// Package debug is the diagnostics log of a taginput session.
//
// Nothing is recorded unless the session was started with --debug. Each
// session starts a fresh ~/.taginput/debug.log. Lines carry a level and the
// scope that wrote them:
//
//	15:04:05.000000 WARN  [controller] seeded items exceed max-items
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// LogFileName is the name of the session log file.
	LogFileName = "debug.log"
	// LogDirName is the per-user directory holding the log.
	LogDirName = ".taginput"
)

// Scope names the part of taginput writing a line.
type Scope string

const (
	Controller Scope = "controller"
	UI         Scope = "ui"
	App        Scope = "app"
	Candidates Scope = "candidates"
)

// Logf records an informational line under s.
func (s Scope) Logf(format string, v ...any) {
	write("INFO", s, format, v...)
}

// Warnf records a warning under s.
func (s Scope) Warnf(format string, v ...any) {
	write("WARN", s, format, v...)
}

// session is the active log destination. A nil out means logging is off.
type session struct {
	mu   sync.Mutex
	out  *log.Logger
	file *os.File
	path string
}

var (
	current session

	// getLogPath is replaced in tests.
	getLogPath = defaultGetLogPath
)

// Init starts the session log. With enable false every write is dropped.
func Init(enable bool) error {
	current.mu.Lock()
	defer current.mu.Unlock()

	current.closeLocked()
	if !enable {
		return nil
	}

	path, err := getLogPath()
	if err != nil {
		return fmt.Errorf("locate session log: %w", err)
	}
	//nolint:gosec // G301: per-user directory
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	//nolint:gosec // G304: path derives from the user's home directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}

	current.file, current.path = f, path
	current.out = log.New(f, "", log.Ltime|log.Lmicroseconds)
	current.out.Printf("taginput session started %s (pid %d)", time.Now().Format(time.RFC3339), os.Getpid())
	return nil
}

// SetOutput sends log lines to w, without timestamps, until the returned
// restore function runs. Tests use it to assert on warnings.
func SetOutput(w io.Writer) (restore func()) {
	current.mu.Lock()
	defer current.mu.Unlock()

	prevOut, prevFile, prevPath := current.out, current.file, current.path
	current.out, current.file, current.path = log.New(w, "", 0), nil, ""
	return func() {
		current.mu.Lock()
		defer current.mu.Unlock()
		current.out, current.file, current.path = prevOut, prevFile, prevPath
	}
}

// Close ends the session log. Calling it again, or without Init, is harmless.
func Close() {
	current.mu.Lock()
	defer current.mu.Unlock()
	if current.file != nil {
		current.out.Printf("taginput session closed")
	}
	current.closeLocked()
}

func (s *session) closeLocked() {
	if s.file != nil {
		_ = s.file.Close()
	}
	s.out, s.file, s.path = nil, nil, ""
}

// Enabled reports whether lines are being recorded.
func Enabled() bool {
	current.mu.Lock()
	defer current.mu.Unlock()
	return current.out != nil
}

// Path returns the file of the running session log, or "" when lines are not
// going to a file.
func Path() string {
	current.mu.Lock()
	defer current.mu.Unlock()
	return current.path
}

func write(level string, scope Scope, format string, v ...any) {
	current.mu.Lock()
	defer current.mu.Unlock()
	if current.out == nil {
		return
	}
	current.out.Printf("%-5s [%s] %s", level, scope, fmt.Sprintf(format, v...))
}

func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}
