package ui

import (
	"context"
	"fmt"

	"github.com/atomicstack/emoji-popup-picker/internal/gateway"
	"github.com/atomicstack/emoji-popup-picker/internal/logging/events"
	"github.com/atomicstack/emoji-popup-picker/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// selectionDoneMsg reports the outcome of the activation pipeline. Each step
// carries its own error so one failing step never hides what the others did.
type selectionDoneMsg struct {
	symbol    string
	hideErr   error
	outputErr error
	recordErr error
}

// activateCell runs the selection pipeline for a rendered cell: hide the
// panel, perform the output action, record usage. Hiding comes first so the
// panel has released input focus by the time the symbol is typed into the
// target application. Later steps still run when an earlier one fails.
func (m *Model) activateCell(index int) tea.Cmd {
	cell, ok := m.grid.Cell(index)
	if !ok {
		return nil
	}
	symbol := cell.Symbol
	events.Selection.Pick(symbol, index)
	return m.bus.Execute(command.Request{
		ID:    "select-item",
		Label: symbol,
		Run: func(ctx context.Context, gw gateway.Client) tea.Msg {
			done := selectionDoneMsg{symbol: symbol}
			done.hideErr = gw.HidePanel(ctx)
			events.Selection.StepError("hide", done.hideErr)
			done.outputErr = gw.OutputAction(ctx, symbol)
			events.Selection.StepError("output", done.outputErr)
			done.recordErr = gw.RecordUsage(ctx, symbol)
			events.Selection.StepError("record", done.recordErr)
			return done
		},
	})
}

func (m *Model) handleSelectionDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(selectionDoneMsg)
	if !ok {
		return nil
	}
	if err := firstSelectionErr(done); err != nil {
		m.errMsg = err.Error()
	} else {
		events.Selection.Done(done.symbol)
		if m.verbose {
			m.setInfo(fmt.Sprintf("sent %s", done.symbol))
		}
	}
	// The panel resets no matter how the pipeline went.
	cmd := m.resetPanel()
	if m.oneShot {
		return tea.Quit
	}
	return cmd
}

// resetPanel returns the picker to its initial state: query cleared, search
// focused, grid repopulated with the unfiltered set.
func (m *Model) resetPanel() tea.Cmd {
	m.query.Clear()
	m.focus.Reset()
	m.searchCursorDirty = true
	m.clearPreview()
	m.gridOffset = 0
	m.searchSeq++
	return m.queryCmd(m.query.Text, m.searchSeq)
}

func firstSelectionErr(done selectionDoneMsg) error {
	if done.hideErr != nil {
		return fmt.Errorf("hide panel: %w", done.hideErr)
	}
	if done.outputErr != nil {
		return fmt.Errorf("output action: %w", done.outputErr)
	}
	if done.recordErr != nil {
		return fmt.Errorf("record usage: %w", done.recordErr)
	}
	return nil
}
