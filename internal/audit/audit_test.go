package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLog_Record(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	log := New(path)

	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	log.SetClock(func() time.Time { return fixed })

	log.Record("task #1 added")
	log.Eventf("task #%d status set to %s", 1, "done")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	want := fixed.Format(time.RFC3339) + ": task #1 added"
	if lines[0] != want {
		t.Errorf("line 1 = %q, want %q", lines[0], want)
	}
	if !strings.HasSuffix(lines[1], ": task #1 status set to done") {
		t.Errorf("line 2 = %q, want timestamp-prefixed status message", lines[1])
	}
}

func TestLog_AppendsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")

	New(path).Record("first run")
	New(path).Record("second run")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("got %d lines, want 2 (log must append, not truncate)", got)
	}
}

func TestLog_WriteFailureIsSilent(t *testing.T) {
	// Point at a path whose parent does not exist; Record must not panic
	// and must not surface an error.
	log := New(filepath.Join(t.TempDir(), "missing", "nested", "activity.log"))
	log.Record("dropped on the floor")

	var nilLog *Log
	nilLog.Record("no-op on nil receiver")
}
