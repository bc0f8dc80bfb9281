package ui

import (
	"context"

	"github.com/atomicstack/emoji-popup-picker/internal/gateway"
	"github.com/atomicstack/emoji-popup-picker/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// previewData holds the describe-item details for the focused cell.
type previewData struct {
	symbol   string
	keywords []string
	uses     int
	err      error
	loading  bool
	seq      int
}

// previewLoadedMsg carries a completed describe-item lookup. The sequence
// and symbol are checked on arrival; responses for anything but the current
// request are dropped.
type previewLoadedMsg struct {
	symbol string
	seq    int
	info   gateway.ItemInfo
	err    error
}

// ensurePreview requests details for the focused cell. Every focus change
// bumps the sequence so a slow lookup cannot overwrite a newer preview.
func (m *Model) ensurePreview() tea.Cmd {
	symbol := m.focusedSymbol()
	if symbol == "" {
		m.clearPreview()
		return nil
	}
	if m.preview.symbol == symbol && !m.preview.loading {
		return nil
	}
	m.previewSeq++
	seq := m.previewSeq
	m.preview = previewData{symbol: symbol, loading: true, seq: seq}
	return m.bus.Execute(command.Request{
		ID:    "describe-item",
		Label: symbol,
		Run: func(ctx context.Context, gw gateway.Client) tea.Msg {
			info, err := gw.DescribeItem(ctx, symbol)
			return previewLoadedMsg{symbol: symbol, seq: seq, info: info, err: err}
		},
	})
}

func (m *Model) handlePreviewLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(previewLoadedMsg)
	if !ok {
		return nil
	}
	if update.seq != m.previewSeq || update.symbol != m.preview.symbol {
		return nil
	}
	m.preview.loading = false
	m.preview.err = update.err
	m.preview.keywords = update.info.Keywords
	if m.usage != nil {
		m.preview.uses = m.usage.Count(update.symbol)
	}
	return nil
}

func (m *Model) clearPreview() {
	m.preview = previewData{}
}

