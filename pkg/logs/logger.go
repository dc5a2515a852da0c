package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes JSON lines with a timestamp and event fields. A nil or
// disabled Logger discards everything.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	c       io.Closer
	enabled bool
	now     func() time.Time
}

// NewFromEnv returns a logger if SIMPLEEDITOR_LOG is set to a truthy value
// or if SIMPLEEDITOR_LOG_FILE is provided. Otherwise it returns a disabled
// logger. When enabled and no file is specified, it writes to
// ./simpleeditor.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("SIMPLEEDITOR_LOG_FILE")
	enabled := false
	if v := os.Getenv("SIMPLEEDITOR_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if lf != "" {
		enabled = true
	}
	if !enabled {
		return &Logger{}
	}
	if lf == "" {
		lf = filepath.Join(".", "simpleeditor.log")
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// The screen belongs to the editor; there is nowhere to report this.
		return &Logger{}
	}
	return &Logger{w: bufio.NewWriter(f), c: f, enabled: true}
}

// New returns a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: bufio.NewWriter(w), enabled: true}
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Close flushes and closes the underlying file if enabled.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, rune, modifiers, action, cursor, buffer_len, file.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	rec := map[string]any{
		"time":  now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.w).Encode(rec)
	_ = l.w.Flush()
}

// Error writes an event carrying err under the "error" field.
func (l *Logger) Error(event string, err error, fields map[string]any) {
	if !l.Enabled() || err == nil {
		return
	}
	rec := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		rec[k] = v
	}
	rec["error"] = err.Error()
	l.Event(event, rec)
}
