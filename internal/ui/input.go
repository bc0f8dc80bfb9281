package ui

import (
	"time"
	"unicode"

	"github.com/atomicstack/emoji-popup-picker/internal/logging/events"
	uistate "github.com/atomicstack/emoji-popup-picker/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateSearchCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

func (m *Model) noteSearchCursorChange(before int) {
	if before != m.query.CursorPos() {
		m.searchCursorDirty = true
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		if m.drag != nil {
			// Abort the drag before anything else; the panel stays up.
			m.width = m.drag.baseWidth
			m.height = m.drag.baseHeight
			m.reflow()
			return m.finishResizeDrag()
		}
		return m.hideCmd()
	case "alt+,":
		return m.openSettings()
	}
	if m.focus.Current == uistate.FocusGrid {
		return m.handleGridKey(key)
	}
	return m.handleSearchKey(key)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		seq := m.searchSeq
		return tea.Tick(firstResultDelay, func(time.Time) tea.Msg {
			return activateFirstMsg{seq: seq}
		})
	case "down":
		return m.focusGrid()
	case "ctrl+u":
		if m.query.Text == "" {
			return nil
		}
		before := m.query.CursorPos()
		m.query.Clear()
		m.noteSearchCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Query.Cleared()
		return m.noteQueryEdit()
	case "ctrl+w":
		before := m.query.CursorPos()
		if !m.query.DeleteWordBackward() {
			return nil
		}
		m.noteSearchCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Query.WordBackspace(m.query.Text)
		return m.noteQueryEdit()
	case "ctrl+a":
		before := m.query.CursorPos()
		if !m.query.MoveCursorStart() {
			return nil
		}
		m.noteSearchCursorChange(before)
		events.Query.Cursor(m.query.Cursor)
		return nil
	case "ctrl+e":
		before := m.query.CursorPos()
		if !m.query.MoveCursorEnd() {
			return nil
		}
		m.noteSearchCursorChange(before)
		events.Query.Cursor(m.query.Cursor)
		return nil
	case "alt+b":
		before := m.query.CursorPos()
		if !m.query.MoveCursorWordBackward() {
			return nil
		}
		m.noteSearchCursorChange(before)
		events.Query.CursorWord(m.query.Cursor)
		return nil
	case "alt+f":
		before := m.query.CursorPos()
		if !m.query.MoveCursorWordForward() {
			return nil
		}
		m.noteSearchCursorChange(before)
		events.Query.CursorWord(m.query.Cursor)
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeSearchRune()
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return m.insertIntoSearch(printableRunes(msg.Runes))
	case tea.KeySpace:
		return m.insertIntoSearch(" ")
	case tea.KeyLeft:
		before := m.query.CursorPos()
		if !m.query.MoveCursorRuneBackward() {
			return nil
		}
		m.noteSearchCursorChange(before)
		events.Query.Cursor(m.query.Cursor)
		return nil
	case tea.KeyRight:
		before := m.query.CursorPos()
		if !m.query.MoveCursorRuneForward() {
			return nil
		}
		m.noteSearchCursorChange(before)
		events.Query.Cursor(m.query.Cursor)
		return nil
	}
	return nil
}

// printableRunes strips control characters from a key batch. Spaces stay,
// so a pasted multi-word query survives intact.
func printableRunes(runes []rune) string {
	kept := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsControl(r) {
			continue
		}
		kept = append(kept, r)
	}
	return string(kept)
}

func (m *Model) insertIntoSearch(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	before := m.query.CursorPos()
	if !m.query.InsertText(text) {
		return nil
	}
	m.noteSearchCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Query.Append(m.query.Text)
	return m.noteQueryEdit()
}

func (m *Model) removeSearchRune() tea.Cmd {
	before := m.query.CursorPos()
	if !m.query.DeleteRuneBackward() {
		return nil
	}
	m.noteSearchCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Query.Backspace(m.query.Text)
	return m.noteQueryEdit()
}

func (m *Model) searchPrompt() (string, *lipgloss.Style) {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if styles.SearchPrompt != nil {
		prompt = styles.SearchPrompt.Render(prompt)
	}
	// No caret while the grid owns key input.
	if m.focus.Current == uistate.FocusGrid {
		if m.query.Text == "" {
			return prompt + render(styles.SearchPlaceholder, "(type to search)"), nil
		}
		return prompt + render(styles.Search, m.query.Text), nil
	}
	if styles.Cursor != nil {
		m.searchCursor.Style = styles.Cursor.Copy()
	}
	if styles.Search != nil {
		m.searchCursor.TextStyle = styles.Search.Copy()
	} else {
		m.searchCursor.TextStyle = lipgloss.Style{}
	}
	text := m.query.Text
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.SearchPlaceholder != nil {
			m.searchCursor.TextStyle = styles.SearchPlaceholder.Copy()
		}
		caret := m.renderSearchCursor(caretRune)
		return prompt + caret + render(styles.SearchPlaceholder, rest), nil
	}
	runes := []rune(text)
	pos := m.query.CursorPos()
	before := render(styles.Search, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderSearchCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Search, string(runes[pos+1:]))
	}
	return prompt + before + caret + after, nil
}

func (m *Model) renderSearchCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.searchCursor.SetChar(char)

	base := m.searchCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.searchCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
