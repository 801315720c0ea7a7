// Package audit appends activity records to a plain-text log file.
package audit

import (
	"fmt"
	"os"
	"time"
)

// Log writes one "<timestamp>: <message>" line per recorded event to an
// append-only file. It is constructed explicitly and passed to the
// components that need it; the file handle is opened and released per
// write rather than held open. Write failures are swallowed: the activity
// log is best-effort and must never disturb the operation it describes.
type Log struct {
	path  string
	nowFn func() time.Time
}

// New returns a Log appending to the given path. An empty path disables
// recording.
func New(path string) *Log {
	return &Log{path: path, nowFn: time.Now}
}

// SetClock overrides the timestamp source. Intended for tests.
func (l *Log) SetClock(nowFn func() time.Time) {
	l.nowFn = nowFn
}

// Record appends a single line for the message. Errors are deliberately
// dropped.
func (l *Log) Record(message string) {
	if l == nil || l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	_, _ = fmt.Fprintf(f, "%s: %s\n", l.nowFn().Format(time.RFC3339), message)
}

// Eventf records a formatted message.
func (l *Log) Eventf(format string, args ...interface{}) {
	l.Record(fmt.Sprintf(format, args...))
}
