// Package testutil provides logging helpers for tests.
package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// NewTestLogger returns a debug logger that writes through t.Log, so output
// only shows for failing tests or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(tbWriter{tb: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// LogCapture records log output for assertions.
type LogCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewCaptureLogger returns a logger whose records are both sent to t.Log and
// kept in the returned capture.
func NewCaptureLogger(t testing.TB) (*slog.Logger, *LogCapture) {
	t.Helper()
	c := &LogCapture{}
	h := slog.NewTextHandler(tbWriter{tb: t, also: c}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(h), c
}

// String returns everything logged so far.
func (c *LogCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Contains reports whether any record contains substr.
func (c *LogCapture) Contains(substr string) bool {
	return strings.Contains(c.String(), substr)
}

// Lines returns the captured records at the given level, e.g. "WARN".
func (c *LogCapture) Lines(level string) []string {
	var out []string
	for _, line := range strings.Split(c.String(), "\n") {
		if strings.Contains(line, "level="+level) {
			out = append(out, line)
		}
	}
	return out
}

func (c *LogCapture) write(p []byte) {
	c.mu.Lock()
	c.buf.Write(p)
	c.mu.Unlock()
}

type tbWriter struct {
	tb   testing.TB
	also *LogCapture
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	if w.also != nil {
		w.also.write(p)
	}
	w.tb.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
