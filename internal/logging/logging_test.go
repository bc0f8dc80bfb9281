package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func configureTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "picker.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})
	return path
}

func TestTraceWritesTaggedEntries(t *testing.T) {
	path := configureTempLog(t)
	SetTraceEnabled(true)

	Trace("search.fire", map[string]interface{}{"query": "cat"})
	Trace("nav.focus", nil)

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 trace lines, got %d", len(lines))
	}

	var first, second traceEntry
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("parse first entry: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("parse second entry: %v", err)
	}
	if first.Event != "search.fire" || first.Component != "search" {
		t.Fatalf("unexpected first entry %+v", first)
	}
	if second.Component != "nav" {
		t.Fatalf("unexpected component %q", second.Component)
	}
	if first.Session == "" || first.Session != second.Session {
		t.Fatalf("expected a shared session id, got %q and %q", first.Session, second.Session)
	}
	if second.Seq != first.Seq+1 {
		t.Fatalf("expected consecutive seq numbers, got %d then %d", first.Seq, second.Seq)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := configureTempLog(t)

	Trace("search.fire", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is off")
	}
}

func TestErrorTaggedWithSession(t *testing.T) {
	path := configureTempLog(t)

	Error(errors.New("boom"))
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, "ERROR boom") {
		t.Fatalf("unexpected error line %q", line)
	}
	if !strings.Contains(line, sessionID) {
		t.Fatalf("expected session id in %q", line)
	}
}
