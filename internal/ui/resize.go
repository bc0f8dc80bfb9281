package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/atomicstack/emoji-popup-picker/internal/format/grid"
	"github.com/atomicstack/emoji-popup-picker/internal/gateway"
	"github.com/atomicstack/emoji-popup-picker/internal/logging"
	"github.com/atomicstack/emoji-popup-picker/internal/logging/events"
	"github.com/atomicstack/emoji-popup-picker/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// resizePersistDelay is the trailing-edge quiet period before a new panel
// size is reported to the gateway. Reflow happens immediately on every size
// event; only the persisted value is debounced.
const resizePersistDelay = 500 * time.Millisecond

const (
	minPanelWidth  = 20
	minPanelHeight = 6
)

// resizeFlushMsg fires when the resize debounce expires.
type resizeFlushMsg struct {
	seq int
}

// sizeReportedMsg carries the report-window-size outcome.
type sizeReportedMsg struct {
	err error
}

// dragState tracks an in-progress mouse resize from the corner handle.
type dragState struct {
	originX    int
	originY    int
	baseWidth  int
	baseHeight int
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if resize.Width > 0 {
		m.width = resize.Width
	}
	if resize.Height > 0 {
		m.height = resize.Height
	}
	m.reflow()
	return m.scheduleSizePersist()
}

// reflow recomputes the column count for the current width and re-lays the
// rendered cells out; the rendered count is untouched.
func (m *Model) reflow() {
	m.grid.SetColumns(gridColumnsForWidth(m.width))
	m.clampGridFocus()
	m.ensureGridVisible()
}

func gridColumnsForWidth(width int) int {
	return grid.FitColumns(width, grid.DefaultCellWidth)
}

// scheduleSizePersist arms the trailing edge of the resize debounce. Only
// the newest timer reports, so a burst of resize events persists once.
func (m *Model) scheduleSizePersist() tea.Cmd {
	m.resizeSeq++
	seq := m.resizeSeq
	return tea.Tick(resizePersistDelay, func(time.Time) tea.Msg {
		return resizeFlushMsg{seq: seq}
	})
}

func (m *Model) handleResizeFlushMsg(msg tea.Msg) tea.Cmd {
	flush, ok := msg.(resizeFlushMsg)
	if !ok {
		return nil
	}
	if flush.seq != m.resizeSeq {
		return nil
	}
	if m.drag != nil {
		// Mid-drag; the drag cleanup re-arms the report.
		return nil
	}
	width, height := m.width, m.height
	events.Settings.Resize(width, height)
	return m.bus.Execute(command.Request{
		ID:    "report-window-size",
		Label: fmt.Sprintf("%dx%d", width, height),
		Run: func(ctx context.Context, gw gateway.Client) tea.Msg {
			return sizeReportedMsg{err: gw.ReportWindowSize(ctx, width, height)}
		},
	})
}

func (m *Model) handleSizeReportedMsg(msg tea.Msg) tea.Cmd {
	report, ok := msg.(sizeReportedMsg)
	if !ok {
		return nil
	}
	if report.err != nil {
		// Size persistence is best effort; the panel stays interactive.
		logging.Error(report.err)
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button == tea.MouseButtonLeft && m.drag == nil && m.onResizeHandle(mouse.X, mouse.Y) {
			m.drag = &dragState{originX: mouse.X, originY: mouse.Y, baseWidth: m.width, baseHeight: m.height}
		}
	case tea.MouseActionMotion:
		if m.drag != nil {
			m.width = clampDimension(m.drag.baseWidth+mouse.X-m.drag.originX, minPanelWidth)
			m.height = clampDimension(m.drag.baseHeight+mouse.Y-m.drag.originY, minPanelHeight)
			m.reflow()
		}
	case tea.MouseActionRelease:
		if m.drag != nil {
			return m.finishResizeDrag()
		}
	}
	return nil
}

// finishResizeDrag is the single exit from a drag session, shared by the
// release and abort paths: drop the session and arm the persist timer.
func (m *Model) finishResizeDrag() tea.Cmd {
	m.drag = nil
	return m.scheduleSizePersist()
}

func (m *Model) onResizeHandle(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= m.width-2 && y >= m.height-1
}

func clampDimension(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
