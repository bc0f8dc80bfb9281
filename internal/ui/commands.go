package ui

import (
	"context"

	"github.com/atomicstack/emoji-popup-picker/internal/gateway"
	"github.com/atomicstack/emoji-popup-picker/internal/logging"
	"github.com/atomicstack/emoji-popup-picker/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// hideDoneMsg reports the hide-panel operation outcome.
type hideDoneMsg struct {
	err error
}

// hideCmd dismisses the panel. The gateway owns the mechanics; in a popup
// terminal the host closes the window when the process exits, so the call
// mostly matters for tracing and for embedding front ends.
func (m *Model) hideCmd() tea.Cmd {
	return m.bus.Execute(command.Request{
		ID:    "hide-panel",
		Label: "escape",
		Run: func(ctx context.Context, gw gateway.Client) tea.Msg {
			return hideDoneMsg{err: gw.HidePanel(ctx)}
		},
	})
}

func (m *Model) handleHideDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(hideDoneMsg)
	if !ok {
		return nil
	}
	if done.err != nil {
		logging.Error(done.err)
		m.errMsg = done.err.Error()
	}
	cmd := m.resetPanel()
	if m.oneShot {
		return tea.Quit
	}
	return cmd
}
