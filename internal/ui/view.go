package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/emoji-popup-picker/internal/format/grid"
	"github.com/atomicstack/emoji-popup-picker/internal/store"
	uistate "github.com/atomicstack/emoji-popup-picker/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeSettings && m.form != nil {
		return m.viewSettings()
	}
	return m.viewPicker()
}

func (m *Model) viewPicker() string {
	lines := make([]styledLine, 0, 16)
	promptText, _ := m.searchPrompt()
	lines = append(lines, styledLine{text: promptText, raw: true})
	lines = append(lines, styledLine{})

	rows := m.grid.Rows()
	if len(rows) == 0 {
		placeholder := "(no results)"
		if m.searching && m.grid.RenderedCount() == 0 {
			placeholder = "searching…"
		}
		lines = append(lines, styledLine{text: placeholder, style: styles.Info})
	} else {
		start := m.gridOffset
		if start > len(rows)-1 {
			start = len(rows) - 1
		}
		if start < 0 {
			start = 0
		}
		end := len(rows)
		if budget := m.gridRowBudget(); budget > 0 && end-start > budget {
			end = start + budget
		}
		for _, row := range rows[start:end] {
			lines = append(lines, styledLine{text: m.renderGridRow(row), raw: true})
		}
	}

	if preview, ok := m.previewRow(); ok {
		lines = append(lines, styledLine{})
		lines = append(lines, preview)
	}

	lines = append(lines, styledLine{})
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, styledLine{text: m.footerText(), style: styles.Footer})
	}

	// Reserve the last row for the resize handle.
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)
	rendered := renderLines(lines)
	return rendered + "\n" + m.handleLine()
}

// previewRow renders the describe-item line shown under the grid.
func (m *Model) previewRow() (styledLine, bool) {
	p := m.preview
	if p.symbol == "" {
		return styledLine{}, false
	}
	title := p.symbol
	if styles.PreviewTitle != nil {
		title = styles.PreviewTitle.Render(title)
	}
	var body string
	bodyStyle := styles.PreviewBody
	switch {
	case p.loading:
		body = "…"
	case p.err != nil:
		body = p.err.Error()
		bodyStyle = styles.PreviewError
	default:
		parts := make([]string, 0, 2)
		if len(p.keywords) > 0 {
			parts = append(parts, strings.Join(p.keywords, ", "))
		}
		if p.uses > 0 {
			parts = append(parts, fmt.Sprintf("used %d times", p.uses))
		}
		body = strings.Join(parts, "  ")
	}
	if bodyStyle != nil && body != "" {
		body = bodyStyle.Render(body)
	}
	text := title
	if body != "" {
		text += "  " + body
	}
	return styledLine{text: text, raw: true}, true
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	if m.searching {
		return styledLine{text: "searching…", style: styles.Loading}
	}
	return styledLine{text: m.status, style: styles.Info}
}

func (m *Model) footerText() string {
	parts := []string{"↑/↓/←/→ move", "enter send", "esc hide", "alt+, settings"}
	if hk := m.settings.Current().GlobalHotkey; hk != "" {
		parts = append(parts, "hotkey "+hk)
	}
	return strings.Join(parts, "  ")
}

// handleLine renders the bottom row with the resize grip in the corner.
func (m *Model) handleLine() string {
	handle := "◢"
	if styles.ResizeHandle != nil {
		handle = styles.ResizeHandle.Render(handle)
	}
	if m.width > 1 {
		return strings.Repeat(" ", m.width-1) + handle
	}
	return handle
}

func (m *Model) renderGridRow(row []grid.Cell) string {
	var b strings.Builder
	for _, cell := range row {
		text := cell.Symbol
		pad := m.grid.CellWidth - lipgloss.Width(text)
		if pad < 0 {
			pad = 0
		}
		padded := text + strings.Repeat(" ", pad)
		if m.focus.Current == uistate.FocusGrid && cell.Index == m.focus.GridIndex {
			if styles.FocusedCell != nil {
				padded = styles.FocusedCell.Render(padded)
			}
		} else if styles.Cell != nil {
			padded = styles.Cell.Render(padded)
		}
		b.WriteString(padded)
	}
	return b.String()
}

// gridRowBudget reports how many grid rows fit between the search line and
// the bottom chrome. Negative means no limit is known yet.
func (m *Model) gridRowBudget() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // search line + blank
	used += 2 // blank + status line
	used++    // resize handle row
	if m.focus.Current == uistate.FocusGrid {
		used += 2 // blank + preview line
	}
	if m.showFooter {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) viewSettings() string {
	f := m.form
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: "settings", style: styles.Header})
	lines = append(lines, styledLine{})

	hotkeyValue := f.hotkey.String()
	if f.capture.Active() {
		hotkeyValue = "press shortcut… (esc cancels)"
	}
	lines = append(lines, m.formRow(fieldHotkey, "global hotkey", hotkeyValue, f.capture.Active()))
	lines = append(lines, m.formRow(fieldPlacement, "place under mouse", yesNo(f.placeUnderMouse), false))
	lines = append(lines, m.formRow(fieldOutputMode, "output mode", outputModeLabel(f.outputMode), false))
	lines = append(lines, m.formRow(fieldWidth, "window width", f.width.View(), false))
	lines = append(lines, m.formRow(fieldHeight, "window height", f.height.View(), false))
	lines = append(lines, m.formRow(fieldMaxTop, "top results", f.maxTop.View(), false))
	resetLabel := "reset usage statistics"
	if f.confirmReset {
		resetLabel = "reset usage statistics (enter again to confirm)"
	}
	lines = append(lines, m.formRow(fieldResetStats, resetLabel, "", false))

	if f.err != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: f.err, style: styles.Error})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	lines = append(lines, styledLine{})
	help := "↑/↓ move  enter record/save  space toggle  r reset hotkey  esc back"
	lines = append(lines, styledLine{text: help, style: styles.Footer})

	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) formRow(field settingsField, label, value string, capturing bool) styledLine {
	marker := "  "
	if m.form.focus == field {
		marker = "> "
	}
	labelText := label
	if styles.FormLabel != nil {
		labelText = styles.FormLabel.Render(labelText)
	}
	valueText := value
	switch {
	case capturing && styles.CaptureActive != nil:
		valueText = styles.CaptureActive.Render(valueText)
	case m.form.focus == field && styles.FormFocused != nil && value != "":
		valueText = styles.FormFocused.Render(valueText)
	case styles.FormValue != nil && value != "":
		valueText = styles.FormValue.Render(valueText)
	}
	text := fmt.Sprintf("%s%-22s %s", marker, labelText, valueText)
	return styledLine{text: text, raw: true}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func outputModeLabel(mode store.OutputMode) string {
	switch mode {
	case store.OutputPasteOnly:
		return "paste only"
	case store.OutputCopyOnly:
		return "copy only"
	case store.OutputPasteAndCopy:
		return "paste and copy"
	default:
		return string(mode)
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
