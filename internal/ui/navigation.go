package ui

import (
	"github.com/atomicstack/emoji-popup-picker/internal/logging/events"
	uistate "github.com/atomicstack/emoji-popup-picker/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// handleGridKey drives focus movement across the rendered cells. The column
// count is inferred from the cell geometry on every event rather than cached,
// so navigation stays correct mid-render and right after a reflow.
func (m *Model) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.activateCell(m.focus.GridIndex)
	case "up":
		if cell, ok := m.grid.Cell(m.focus.GridIndex); ok && cell.Y == 0 {
			return m.focusSearch()
		}
		return m.moveGridFocus(-m.grid.InferColumns())
	case "down":
		return m.moveGridFocus(m.grid.InferColumns())
	case "left":
		return m.moveGridFocus(-1)
	case "right":
		return m.moveGridFocus(1)
	case "home":
		return m.setGridFocus(0)
	case "end":
		return m.setGridFocus(m.grid.RenderedCount() - 1)
	}
	switch msg.Type {
	case tea.KeySpace:
		return m.activateCell(m.focus.GridIndex)
	case tea.KeyBackspace, tea.KeyCtrlH:
		focusCmd := m.focusSearch()
		return tea.Batch(focusCmd, m.removeSearchRune())
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		text := printableRunes(msg.Runes)
		if text == "" {
			return nil
		}
		// Typing anywhere routes back into the search field.
		focusCmd := m.focusSearch()
		return tea.Batch(focusCmd, m.insertIntoSearch(text))
	}
	return nil
}

// focusSearch hands key input back to the search field, remembering the grid
// position for the next ArrowDown.
func (m *Model) focusSearch() tea.Cmd {
	if m.focus.Current == uistate.FocusSearch {
		return nil
	}
	events.Nav.ToSearch(m.focus.GridIndex)
	m.focus.ToSearch(m.focus.GridIndex)
	m.searchCursorDirty = true
	m.clearPreview()
	return nil
}

// focusGrid moves key input into the grid, restoring the remembered index.
func (m *Model) focusGrid() tea.Cmd {
	if m.grid.RenderedCount() == 0 {
		return nil
	}
	idx := m.focus.ToGrid(m.grid.RenderedCount())
	events.Nav.ToGrid(idx)
	m.ensureGridVisible()
	return m.ensurePreview()
}

func (m *Model) moveGridFocus(delta int) tea.Cmd {
	if delta == 0 {
		return nil
	}
	return m.setGridFocus(m.focus.GridIndex + delta)
}

func (m *Model) setGridFocus(idx int) tea.Cmd {
	rendered := m.grid.RenderedCount()
	if rendered == 0 {
		return nil
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= rendered {
		idx = rendered - 1
	}
	if idx == m.focus.GridIndex {
		return nil
	}
	m.focus.GridIndex = idx
	events.Nav.Focus(idx, m.grid.InferColumns())
	m.ensureGridVisible()
	return m.ensurePreview()
}

func (m *Model) clampGridFocus() {
	m.focus.ClampGrid(m.grid.RenderedCount())
}

// ensureGridVisible scrolls the grid viewport so the focused row stays on
// screen.
func (m *Model) ensureGridVisible() {
	if m.focus.Current != uistate.FocusGrid {
		return
	}
	cell, ok := m.grid.Cell(m.focus.GridIndex)
	if !ok {
		m.gridOffset = 0
		return
	}
	visible := m.gridRowBudget()
	if visible <= 0 {
		return
	}
	if cell.Y < m.gridOffset {
		m.gridOffset = cell.Y
	}
	if cell.Y > m.gridOffset+visible-1 {
		m.gridOffset = cell.Y - visible + 1
	}
	if m.gridOffset < 0 {
		m.gridOffset = 0
	}
}

// focusedSymbol returns the symbol under the grid cursor, or "" when the
// grid has no focus or nothing rendered.
func (m *Model) focusedSymbol() string {
	if m.focus.Current != uistate.FocusGrid {
		return ""
	}
	cell, ok := m.grid.Cell(m.focus.GridIndex)
	if !ok {
		return ""
	}
	return cell.Symbol
}
