package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/emoji-popup-picker/internal/gateway"
	"github.com/atomicstack/emoji-popup-picker/internal/logging/events"
	"github.com/atomicstack/emoji-popup-picker/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// searchDebounce is the quiet period after the last keystroke before a
	// query goes to the gateway.
	searchDebounce = 150 * time.Millisecond
	// firstResultDelay gives a just-fired query time to land before Enter in
	// the search field activates the top result.
	firstResultDelay = 100 * time.Millisecond
)

// searchTickMsg fires when a debounce timer expires. The sequence pins it to
// the keystroke that armed it; older timers are ignored.
type searchTickMsg struct {
	seq int
}

// searchResultMsg carries a completed gateway query. Both the sequence and
// the query text are checked on arrival so a slow response for an old query
// can never replace newer results.
type searchResultMsg struct {
	query   string
	seq     int
	symbols []string
	err     error
}

// activateFirstMsg fires after Enter in the search field.
type activateFirstMsg struct {
	seq int
}

// noteQueryEdit bumps the search sequence after an edit and arms the
// trailing-edge debounce timer for it.
func (m *Model) noteQueryEdit() tea.Cmd {
	m.searchSeq++
	seq := m.searchSeq
	events.Search.Input(m.query.Text, seq)
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})
}

func (m *Model) handleSearchTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(searchTickMsg)
	if !ok {
		return nil
	}
	if tick.seq != m.searchSeq {
		return nil
	}
	return m.queryCmd(m.query.Text, tick.seq)
}

func (m *Model) queryCmd(query string, seq int) tea.Cmd {
	m.searching = true
	events.Search.Fire(query, seq)
	return m.bus.Execute(command.Request{
		ID:    "query-items",
		Label: fmt.Sprintf("query %q", query),
		Run: func(ctx context.Context, gw gateway.Client) tea.Msg {
			symbols, err := gw.QueryItems(ctx, query)
			return searchResultMsg{query: query, seq: seq, symbols: symbols, err: err}
		},
	})
}

// requeryCmd refreshes the current query without touching the debounce. Used
// when the backing data changed underneath an unchanged filter.
func (m *Model) requeryCmd() tea.Cmd {
	return m.queryCmd(m.query.Text, m.searchSeq)
}

func (m *Model) handleSearchResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(searchResultMsg)
	if !ok {
		return nil
	}
	if res.seq != m.searchSeq || res.query != m.query.Text {
		events.Search.Stale(res.query, m.query.Text)
		return nil
	}
	m.searching = false
	if res.err != nil {
		events.Search.Error(res.query, res.err)
		m.errMsg = res.err.Error()
		cmd := m.replaceResults(nil)
		m.status = "search failed"
		return cmd
	}
	m.errMsg = ""
	symbols := compactSymbols(res.symbols)
	events.Search.Results(res.query, len(symbols))
	return m.replaceResults(symbols)
}

// compactSymbols drops empty and whitespace-only entries before they reach
// the grid; a blank symbol would render as an invisible yet focusable cell.
func compactSymbols(symbols []string) []string {
	kept := symbols[:0:0]
	for _, s := range symbols {
		if strings.TrimSpace(s) == "" {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func (m *Model) handleActivateFirstMsg(msg tea.Msg) tea.Cmd {
	act, ok := msg.(activateFirstMsg)
	if !ok {
		return nil
	}
	if act.seq != m.searchSeq {
		return nil
	}
	if m.grid.RenderedCount() == 0 {
		return nil
	}
	return m.activateCell(0)
}

func countStatus(n int) string {
	switch n {
	case 0:
		return "no results"
	case 1:
		return "1 result"
	default:
		return fmt.Sprintf("%d results", n)
	}
}
