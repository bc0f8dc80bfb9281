package ui

import (
	"testing"

	"github.com/atomicstack/emoji-popup-picker/internal/testutil"
	uistate "github.com/atomicstack/emoji-popup-picker/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestArrowKeysMoveByRenderedGeometry(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 25)...)
	h, m := startPicker(t, gw)

	// 40 columns wide, 4 per cell: ten cells per row.
	h.Send(key(tea.KeyDown))
	if m.focus.Current != uistate.FocusGrid || m.focus.GridIndex != 0 {
		t.Fatalf("expected grid focus at 0, got %v/%d", m.focus.Current, m.focus.GridIndex)
	}
	h.Send(key(tea.KeyRight))
	h.Send(key(tea.KeyRight))
	if m.focus.GridIndex != 2 {
		t.Fatalf("expected index 2, got %d", m.focus.GridIndex)
	}
	h.Send(key(tea.KeyDown))
	if m.focus.GridIndex != 12 {
		t.Fatalf("expected one row down (10 columns), got %d", m.focus.GridIndex)
	}
	h.Send(key(tea.KeyUp))
	if m.focus.GridIndex != 2 {
		t.Fatalf("expected back to 2, got %d", m.focus.GridIndex)
	}
}

func TestUpFromTopRowFocusesSearchAndDownRestores(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 25)...)
	h, m := startPicker(t, gw)

	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyRight))
	h.Send(key(tea.KeyRight))
	h.Send(key(tea.KeyUp))
	if m.focus.Current != uistate.FocusSearch {
		t.Fatal("expected up from row 0 to focus search")
	}
	h.Send(key(tea.KeyDown))
	if m.focus.Current != uistate.FocusGrid || m.focus.GridIndex != 2 {
		t.Fatalf("expected remembered index restored, got %v/%d", m.focus.Current, m.focus.GridIndex)
	}
}

func TestRememberedIndexClampedAfterResultsShrink(t *testing.T) {
	gw := testutil.NewFakeGateway(append(fakeItems("a", 20), fakeItems("b", 5)...)...)
	h, m := startPicker(t, gw)

	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyEnd))
	if m.focus.GridIndex != 24 {
		t.Fatalf("expected end of grid, got %d", m.focus.GridIndex)
	}

	// Typing routes back into the search field and remembers position 24.
	typeRunes(h, "b")
	if m.focus.Current != uistate.FocusSearch {
		t.Fatal("expected typing to refocus search")
	}
	if m.query.Text != "b" {
		t.Fatalf("expected rune inserted into query, got %q", m.query.Text)
	}
	if m.grid.RenderedCount() != 5 {
		t.Fatalf("expected 5 matches, got %d", m.grid.RenderedCount())
	}

	h.Send(key(tea.KeyDown))
	if m.focus.GridIndex != 4 {
		t.Fatalf("expected remembered index clamped to last cell, got %d", m.focus.GridIndex)
	}
}

func TestDownWithNoResultsKeepsSearchFocus(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 4)...)
	h, m := startPicker(t, gw)

	typeRunes(h, "zz")
	h.Send(key(tea.KeyDown))
	if m.focus.Current != uistate.FocusSearch {
		t.Fatal("expected focus to stay on search with no results")
	}
}

func TestHomeAndEnd(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 25)...)
	h, m := startPicker(t, gw)

	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyEnd))
	if m.focus.GridIndex != 24 {
		t.Fatalf("expected last cell, got %d", m.focus.GridIndex)
	}
	h.Send(key(tea.KeyHome))
	if m.focus.GridIndex != 0 {
		t.Fatalf("expected first cell, got %d", m.focus.GridIndex)
	}
}

func TestArrowsClampAtEdges(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 25)...)
	h, m := startPicker(t, gw)

	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyLeft))
	if m.focus.GridIndex != 0 {
		t.Fatalf("expected left at start to stay, got %d", m.focus.GridIndex)
	}
	h.Send(key(tea.KeyEnd))
	h.Send(key(tea.KeyDown))
	if m.focus.GridIndex != 24 {
		t.Fatalf("expected down on last row to clamp, got %d", m.focus.GridIndex)
	}
	h.Send(key(tea.KeyRight))
	if m.focus.GridIndex != 24 {
		t.Fatalf("expected right at end to stay, got %d", m.focus.GridIndex)
	}
}

func TestBackspaceInGridEditsQuery(t *testing.T) {
	gw := testutil.NewFakeGateway(append(fakeItems("a", 20), fakeItems("b", 5)...)...)
	h, m := startPicker(t, gw)

	typeRunes(h, "b")
	h.Send(key(tea.KeyDown))
	if m.focus.Current != uistate.FocusGrid {
		t.Fatal("expected grid focus")
	}
	h.Send(key(tea.KeyBackspace))
	if m.focus.Current != uistate.FocusSearch {
		t.Fatal("expected backspace to refocus search")
	}
	if m.query.Text != "" {
		t.Fatalf("expected rune deleted, got %q", m.query.Text)
	}
	if m.grid.RenderedCount() != 25 {
		t.Fatalf("expected full set restored, got %d", m.grid.RenderedCount())
	}
}

func TestPasteInGridRoutesToSearchWithSpaces(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 20)...)
	h, m := startPicker(t, gw)

	h.Send(key(tea.KeyDown))
	if m.focus.Current != uistate.FocusGrid {
		t.Fatal("expected grid focus")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("th up")})
	if m.focus.Current != uistate.FocusSearch {
		t.Fatal("expected paste to refocus search")
	}
	if m.query.Text != "th up" {
		t.Fatalf("expected pasted text inserted, got %q", m.query.Text)
	}
}

func TestColumnCountFollowsReflow(t *testing.T) {
	gw := testutil.NewFakeGateway(fakeItems("a", 25)...)
	h, m := startPicker(t, gw)

	h.Send(tea.WindowSizeMsg{Width: 20, Height: 12})
	if m.grid.InferColumns() != 5 {
		t.Fatalf("expected 5 columns after reflow, got %d", m.grid.InferColumns())
	}
	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyDown))
	if m.focus.GridIndex != 5 {
		t.Fatalf("expected stride of 5 after reflow, got %d", m.focus.GridIndex)
	}
}
