// Package logging writes the picker's shared log file: plain error lines and,
// when tracing is on, newline-delimited JSON entries tagged with the panel
// component they came from. Several panel instances can share one file, so
// every entry carries a per-process session id.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "emoji-popup-picker.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	traceSeq     uint64
	logPath      = defaultLogFile
	sessionID    = fmt.Sprintf("%d-%d", os.Getpid(), time.Now().Unix())
)

// traceEntry is one line of the trace stream. Component is derived from the
// event name ("search.fire" traces as component "search") so a tail of the
// log can be filtered per panel subsystem. Seq orders entries within a
// session even when two land in the same millisecond.
type traceEntry struct {
	Time      time.Time   `json:"time"`
	Session   string      `json:"session"`
	Seq       uint64      `json:"seq"`
	Component string      `json:"component"`
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Error writes errors to the shared log file, tagged with the session id.
func Error(err error) {
	if err == nil {
		return
	}

	f, ferr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "%s [%s] ERROR %v\n", time.Now().UTC().Format(time.RFC3339), sessionID, err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	traceMu.Lock()
	if !traceEnabled {
		traceMu.Unlock()
		return
	}
	traceSeq++
	seq := traceSeq
	traceMu.Unlock()

	entry := traceEntry{
		Time:      time.Now().UTC(),
		Session:   sessionID,
		Seq:       seq,
		Component: eventComponent(event),
		Event:     event,
		Payload:   payload,
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// eventComponent extracts the subsystem prefix from a dotted event name.
func eventComponent(event string) string {
	if i := strings.IndexByte(event, '.'); i > 0 {
		return event[:i]
	}
	return event
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
