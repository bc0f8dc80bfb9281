package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/emoji-popup-picker/internal/testutil"
	uistate "github.com/atomicstack/emoji-popup-picker/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// pipelineCalls returns the calls recorded after the startup query.
func pipelineCalls(gw *testutil.FakeGateway) []string {
	calls := gw.CallLog()
	filtered := make([]string, 0, len(calls))
	for _, call := range calls {
		if strings.HasPrefix(call, "query:") || strings.HasPrefix(call, "describe:") {
			continue
		}
		filtered = append(filtered, call)
	}
	return filtered
}

func TestSelectionRunsHideOutputRecordInOrder(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 5)...)
	h, _ := startPicker(t, gw)

	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyRight))
	h.Send(key(tea.KeyEnter))

	want := []string{"hide", "output:a01", "record:a01"}
	got := pipelineCalls(gw)
	if len(got) != len(want) {
		t.Fatalf("unexpected pipeline calls %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected call %d to be %q, got %v", i, want[i], got)
		}
	}
}

func TestSpaceActivatesFocusedCell(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 5)...)
	h, _ := startPicker(t, gw)

	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeySpace))
	if len(gw.Outputs) != 1 || gw.Outputs[0] != "a00" {
		t.Fatalf("expected space to send focused symbol, got %v", gw.Outputs)
	}
}

func TestOutputFailureStillRecordsUsageAndResets(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 15)...)
	gw.OutputErr = errors.New("clipboard gone")
	h, m := startPicker(t, gw)

	typeRunes(h, "a1")
	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyEnter))

	if !strings.Contains(m.errMsg, "output action") {
		t.Fatalf("expected output step error surfaced, got %q", m.errMsg)
	}
	if len(gw.Recorded) != 1 || gw.Recorded[0] != "a10" {
		t.Fatalf("expected usage recorded despite output failure, got %v", gw.Recorded)
	}
	if m.query.Text != "" {
		t.Fatalf("expected query cleared by reset, got %q", m.query.Text)
	}
	if m.focus.Current != uistate.FocusSearch {
		t.Fatal("expected search focused after reset")
	}
	if m.grid.RenderedCount() != 15 {
		t.Fatalf("expected unfiltered set after reset, got %d", m.grid.RenderedCount())
	}
	if h.Quit() {
		t.Fatal("expected pipeline failure to be non-fatal")
	}
}

func TestHideFailureStillOutputs(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 5)...)
	gw.HideErr = errors.New("no host window")
	h, m := startPicker(t, gw)

	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyEnter))

	if !strings.Contains(m.errMsg, "hide panel") {
		t.Fatalf("expected hide step error surfaced, got %q", m.errMsg)
	}
	if len(gw.Outputs) != 1 {
		t.Fatalf("expected output despite hide failure, got %v", gw.Outputs)
	}
}

func TestOneShotQuitsAfterSelection(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 3)...)
	m := NewModel(gw, nil, nil, nil, 40, 12, false, false, true)
	m.searchCursor.SetMode(cursor.CursorStatic)
	h := NewHarness(m)
	h.Start()

	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyEnter))
	if !h.Quit() {
		t.Fatal("expected one-shot run to quit after selection")
	}
	if len(gw.Outputs) != 1 {
		t.Fatalf("expected symbol sent before quitting, got %v", gw.Outputs)
	}
}

func TestEscapeHidesAndResets(t *testing.T) {
	gw := testutil.NewFakeGateway(append(fakeItems("a", 4), fakeItems("b", 2)...)...)
	h, m := startPicker(t, gw)

	typeRunes(h, "b")
	h.Send(key(tea.KeyEsc))

	if countCalls(gw.CallLog(), "hide") != 1 {
		t.Fatalf("expected hide call, got %v", gw.CallLog())
	}
	if m.query.Text != "" {
		t.Fatalf("expected query cleared, got %q", m.query.Text)
	}
	if m.grid.RenderedCount() != 6 {
		t.Fatalf("expected unfiltered set after reset, got %d", m.grid.RenderedCount())
	}
	if h.Quit() {
		t.Fatal("expected panel process to stay alive")
	}
}

func TestEscapeQuitsInOneShotMode(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 3)...)
	m := NewModel(gw, nil, nil, nil, 40, 12, false, false, true)
	m.searchCursor.SetMode(cursor.CursorStatic)
	h := NewHarness(m)
	h.Start()

	h.Send(key(tea.KeyEsc))
	if !h.Quit() {
		t.Fatal("expected escape to quit in one-shot mode")
	}
}
