package ui

import (
	"github.com/atomicstack/emoji-popup-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// renderBatchSize caps how many cells are appended per pass so huge result
// sets never block the event loop.
const renderBatchSize = 100

// renderBatchMsg asks for the next batch of cells. It carries the grid
// generation it was scheduled for; a mismatch means the model was replaced
// while the message was in flight and the batch must not run.
type renderBatchMsg struct {
	generation int
}

func renderBatchCmd(generation int) tea.Cmd {
	return func() tea.Msg {
		return renderBatchMsg{generation: generation}
	}
}

// replaceResults swaps in a new result set. The first batch renders
// synchronously so the grid never flashes empty between results; the rest
// streams in through renderBatchMsg continuations.
func (m *Model) replaceResults(symbols []string) tea.Cmd {
	m.grid.Replace(symbols)
	events.Grid.Reset(m.grid.Generation, len(symbols))
	m.grid.AppendBatch(renderBatchSize)
	events.Grid.Batch(m.grid.Generation, m.grid.RenderedCount())
	m.status = countStatus(len(symbols))
	m.clampGridFocus()
	m.gridOffset = 0
	m.ensureGridVisible()
	previewCmd := m.ensurePreview()
	if m.grid.Done() {
		return previewCmd
	}
	return tea.Batch(previewCmd, renderBatchCmd(m.grid.Generation))
}

func (m *Model) handleRenderBatchMsg(msg tea.Msg) tea.Cmd {
	batch, ok := msg.(renderBatchMsg)
	if !ok {
		return nil
	}
	if batch.generation != m.grid.Generation {
		events.Grid.Drop(batch.generation, m.grid.Generation)
		return nil
	}
	if m.grid.Done() {
		return nil
	}
	m.grid.AppendBatch(renderBatchSize)
	events.Grid.Batch(m.grid.Generation, m.grid.RenderedCount())
	if m.grid.Done() {
		return nil
	}
	return renderBatchCmd(m.grid.Generation)
}
