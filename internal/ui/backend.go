package ui

import (
	"github.com/atomicstack/emoji-popup-picker/internal/backend"
	"github.com/atomicstack/emoji-popup-picker/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	evtMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(evtMsg.event)
	return tea.Batch(cmd, waitForBackendEvent(m.backend))
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	return nil
}

// applyBackendEvent feeds a watcher event through the dispatcher and reacts
// to whichever snapshots it refreshed. A changed settings file can alter the
// top-results ordering budget, and changed ranks reorder the unfiltered set,
// so either one re-runs the current query.
func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if m.backendState == nil {
		m.backendState = map[backend.Kind]error{}
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		logging.Error(evt.Err)
		return nil
	}
	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
	if m.dispatcher == nil {
		return nil
	}
	res := m.dispatcher.Handle(evt)
	if !res.SettingsUpdated && !res.RanksUpdated {
		return nil
	}
	if res.RanksUpdated && m.preview.symbol != "" && m.usage != nil {
		m.preview.uses = m.usage.Count(m.preview.symbol)
	}
	if res.SettingsUpdated && m.form != nil {
		m.form.syncPersisted(m.settings.Current())
	}
	return m.requeryCmd()
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
