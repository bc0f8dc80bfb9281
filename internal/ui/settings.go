package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/emoji-popup-picker/internal/gateway"
	"github.com/atomicstack/emoji-popup-picker/internal/hotkey"
	"github.com/atomicstack/emoji-popup-picker/internal/logging"
	"github.com/atomicstack/emoji-popup-picker/internal/logging/events"
	"github.com/atomicstack/emoji-popup-picker/internal/store"
	"github.com/atomicstack/emoji-popup-picker/internal/ui/command"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// settingsField enumerates the rows of the settings form in display order.
type settingsField int

const (
	fieldHotkey settingsField = iota
	fieldPlacement
	fieldOutputMode
	fieldWidth
	fieldHeight
	fieldMaxTop
	fieldResetStats
	fieldCount
)

// outputModeOrder fixes the cycle order for the output mode row.
var outputModeOrder = []store.OutputMode{
	store.OutputPasteOnly,
	store.OutputCopyOnly,
	store.OutputPasteAndCopy,
}

// settingsForm holds the editable copy of the persisted settings plus the
// hotkey capture session. Recording only runs while the hotkey row is in
// edit mode; committing persists the combination immediately, everything
// else persists on save.
type settingsForm struct {
	focus           settingsField
	capture         *hotkey.Capture
	hotkey          hotkey.Combination
	placeUnderMouse bool
	outputMode      store.OutputMode
	width           textinput.Model
	height          textinput.Model
	maxTop          textinput.Model
	confirmReset    bool
	err             string
	persisted       store.Settings
}

// settingsSavedMsg reports a full form save.
type settingsSavedMsg struct {
	settings store.Settings
	err      error
}

// hotkeySavedMsg reports a hotkey-only persist (commit or reset).
type hotkeySavedMsg struct {
	settings store.Settings
	err      error
}

// hotkeyRevertMsg carries the re-fetched persisted settings after an
// abandoned capture.
type hotkeyRevertMsg struct {
	settings store.Settings
	err      error
}

// statsResetMsg reports the reset-usage-stats operation.
type statsResetMsg struct {
	err error
}

func newSettingsForm(current store.Settings) *settingsForm {
	combo, err := hotkey.Parse(current.GlobalHotkey)
	if err != nil {
		combo = hotkey.Default()
	}
	f := &settingsForm{
		capture:         hotkey.NewCapture(),
		hotkey:          combo,
		placeUnderMouse: current.PlaceUnderMouse,
		outputMode:      current.OutputMode,
		width:           numericInput(current.WindowWidth),
		height:          numericInput(current.WindowHeight),
		maxTop:          numericInput(current.MaxTopResults),
		persisted:       current,
	}
	return f
}

func numericInput(value int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 4
	in.Width = 6
	in.SetValue(strconv.Itoa(value))
	return in
}

// syncPersisted refreshes the revert target when the settings file changed
// underneath an open form. In-progress edits are left alone.
func (f *settingsForm) syncPersisted(s store.Settings) {
	f.persisted = s
}

// updateInputs forwards non-key messages (cursor blinks) to the numeric
// inputs.
func (f *settingsForm) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.width, cmd = f.width.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	f.height, cmd = f.height.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	f.maxTop, cmd = f.maxTop.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (f *settingsForm) focusedInput() *textinput.Model {
	switch f.focus {
	case fieldWidth:
		return &f.width
	case fieldHeight:
		return &f.height
	case fieldMaxTop:
		return &f.maxTop
	default:
		return nil
	}
}

func (f *settingsForm) setFocus(field settingsField) tea.Cmd {
	if field < 0 {
		field = fieldCount - 1
	}
	if field >= fieldCount {
		field = 0
	}
	f.focus = field
	f.confirmReset = false
	f.width.Blur()
	f.height.Blur()
	f.maxTop.Blur()
	if in := f.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

func (f *settingsForm) cycleOutputMode(delta int) {
	idx := 0
	for i, mode := range outputModeOrder {
		if mode == f.outputMode {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(outputModeOrder)) % len(outputModeOrder)
	f.outputMode = outputModeOrder[idx]
}

// openSettings switches to the settings form, seeded from the current
// snapshot. The gateway call is a hook for embedding front ends; errors from
// it are logged and otherwise ignored.
func (m *Model) openSettings() tea.Cmd {
	if m.mode == ModeSettings {
		return nil
	}
	events.Settings.Open()
	m.form = newSettingsForm(m.settings.Current())
	m.mode = ModeSettings
	return m.bus.Execute(command.Request{
		ID:    "open-settings",
		Label: "panel",
		Run: func(ctx context.Context, gw gateway.Client) tea.Msg {
			if err := gw.OpenSettings(ctx); err != nil {
				logging.Error(err)
			}
			return nil
		},
	})
}

func (m *Model) closeSettings() {
	m.form = nil
	m.mode = ModePicker
	m.searchCursorDirty = true
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	f := m.form
	if f == nil {
		return nil
	}
	if f.capture.Active() {
		return m.handleCaptureKey(msg)
	}
	switch msg.String() {
	case "esc", "alt+,":
		events.Settings.Cancel(events.SettingsReasonEscape)
		m.closeSettings()
		return nil
	case "ctrl+c":
		return tea.Quit
	case "up", "shift+tab":
		return f.setFocus(f.focus - 1)
	case "down", "tab":
		return f.setFocus(f.focus + 1)
	case "enter":
		return m.handleSettingsEnter()
	}
	if f.focus == fieldResetStats {
		f.confirmReset = false
	}
	switch f.focus {
	case fieldHotkey:
		if msg.String() == "r" {
			return m.resetHotkeyCmd()
		}
		return nil
	case fieldPlacement:
		if msg.String() == " " || msg.Type == tea.KeySpace {
			f.placeUnderMouse = !f.placeUnderMouse
		}
		return nil
	case fieldOutputMode:
		switch msg.String() {
		case " ", "right":
			f.cycleOutputMode(1)
		case "left":
			f.cycleOutputMode(-1)
		}
		return nil
	}
	if in := f.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleSettingsEnter() tea.Cmd {
	f := m.form
	switch f.focus {
	case fieldHotkey:
		events.Capture.Start(f.hotkey.String())
		f.capture.Begin(f.hotkey)
		return nil
	case fieldResetStats:
		if !f.confirmReset {
			f.confirmReset = true
			return nil
		}
		f.confirmReset = false
		return m.resetStatsCmd()
	default:
		return m.submitSettings()
	}
}

// handleCaptureKey feeds keydowns into the recording session. Escape is the
// blur path: the session is abandoned and the persisted value re-fetched
// from the gateway rather than trusted from memory.
func (m *Model) handleCaptureKey(msg tea.KeyMsg) tea.Cmd {
	f := m.form
	if msg.Type == tea.KeyEsc {
		f.capture.Abandon()
		events.Capture.Revert(f.persisted.GlobalHotkey, events.CaptureReasonEscape)
		return m.revertHotkeyCmd()
	}
	ev, ok := hotkey.FromKeyMsg(msg)
	if !ok {
		events.Capture.Ignore(msg.String())
		return nil
	}
	events.Capture.Candidate(ev.Combination().String())
	if f.capture.Offer(ev) != hotkey.OutcomeCommitted {
		events.Capture.Ignore(msg.String())
		return nil
	}
	committed := f.capture.Finish()
	f.hotkey = committed
	events.Capture.Commit(committed.String())
	return m.persistHotkeyCmd(committed, false)
}

// persistHotkeyCmd writes just the hotkey through the gateway so a committed
// combination survives even if the rest of the form is never saved.
func (m *Model) persistHotkeyCmd(combo hotkey.Combination, isReset bool) tea.Cmd {
	next := m.settings.Current()
	next.GlobalHotkey = combo.String()
	if isReset {
		events.Capture.Reset(next.GlobalHotkey)
	}
	return m.bus.Execute(command.Request{
		ID:    "update-settings",
		Label: "hotkey " + next.GlobalHotkey,
		Run: func(ctx context.Context, gw gateway.Client) tea.Msg {
			err := gw.UpdateSettings(ctx, next)
			return hotkeySavedMsg{settings: next, err: err}
		},
	})
}

func (m *Model) resetHotkeyCmd() tea.Cmd {
	combo := hotkey.Default()
	if m.form != nil {
		m.form.hotkey = combo
	}
	return m.persistHotkeyCmd(combo, true)
}

func (m *Model) revertHotkeyCmd() tea.Cmd {
	return m.bus.Execute(command.Request{
		ID:    "get-settings",
		Label: "revert hotkey",
		Run: func(ctx context.Context, gw gateway.Client) tea.Msg {
			settings, err := gw.Settings(ctx)
			return hotkeyRevertMsg{settings: settings, err: err}
		},
	})
}

func (m *Model) resetStatsCmd() tea.Cmd {
	events.Settings.ResetStats()
	return m.bus.Execute(command.Request{
		ID:    "reset-usage-stats",
		Label: "clear ranks",
		Run: func(ctx context.Context, gw gateway.Client) tea.Msg {
			return statsResetMsg{err: gw.ResetUsageStats(ctx)}
		},
	})
}

func (m *Model) submitSettings() tea.Cmd {
	f := m.form
	width, err := parseFormInt(f.width.Value(), "width", minPanelWidth)
	if err != nil {
		f.err = err.Error()
		return nil
	}
	height, err := parseFormInt(f.height.Value(), "height", minPanelHeight)
	if err != nil {
		f.err = err.Error()
		return nil
	}
	maxTop, err := parseFormInt(f.maxTop.Value(), "top results", 0)
	if err != nil {
		f.err = err.Error()
		return nil
	}
	f.err = ""
	next := store.Settings{
		GlobalHotkey:    f.hotkey.String(),
		PlaceUnderMouse: f.placeUnderMouse,
		OutputMode:      f.outputMode,
		WindowWidth:     width,
		WindowHeight:    height,
		MaxTopResults:   maxTop,
	}
	events.Settings.Submit(map[string]interface{}{
		"hotkey":      next.GlobalHotkey,
		"output_mode": string(next.OutputMode),
		"width":       next.WindowWidth,
		"height":      next.WindowHeight,
		"max_top":     next.MaxTopResults,
	})
	return m.bus.Execute(command.Request{
		ID:    "update-settings",
		Label: "save",
		Run: func(ctx context.Context, gw gateway.Client) tea.Msg {
			err := gw.UpdateSettings(ctx, next)
			return settingsSavedMsg{settings: next, err: err}
		},
	})
}

func (m *Model) handleSettingsSavedMsg(msg tea.Msg) tea.Cmd {
	saved, ok := msg.(settingsSavedMsg)
	if !ok {
		return nil
	}
	if saved.err != nil {
		if m.form != nil {
			m.form.err = saved.err.Error()
		} else {
			m.errMsg = saved.err.Error()
		}
		return nil
	}
	m.settings.Set(saved.settings)
	if m.form != nil {
		m.closeSettings()
	}
	m.setInfo("settings saved")
	return m.requeryCmd()
}

func (m *Model) handleHotkeySavedMsg(msg tea.Msg) tea.Cmd {
	saved, ok := msg.(hotkeySavedMsg)
	if !ok {
		return nil
	}
	if saved.err != nil {
		if m.form != nil {
			m.form.err = saved.err.Error()
		} else {
			m.errMsg = saved.err.Error()
		}
		return nil
	}
	m.settings.Set(saved.settings)
	if m.form != nil {
		m.form.err = ""
		m.form.syncPersisted(saved.settings)
	}
	return nil
}

func (m *Model) handleHotkeyRevertMsg(msg tea.Msg) tea.Cmd {
	revert, ok := msg.(hotkeyRevertMsg)
	if !ok {
		return nil
	}
	if m.form == nil {
		return nil
	}
	if revert.err != nil {
		// Keep the in-memory value; the fetch is retried on the next blur.
		m.form.err = revert.err.Error()
		return nil
	}
	combo, err := hotkey.Parse(revert.settings.GlobalHotkey)
	if err != nil {
		combo = hotkey.Default()
	}
	m.form.hotkey = combo
	m.form.syncPersisted(revert.settings)
	return nil
}

func (m *Model) handleStatsResetMsg(msg tea.Msg) tea.Cmd {
	reset, ok := msg.(statsResetMsg)
	if !ok {
		return nil
	}
	if reset.err != nil {
		if m.form != nil {
			m.form.err = reset.err.Error()
		} else {
			m.errMsg = reset.err.Error()
		}
		return nil
	}
	if m.usage != nil {
		m.usage.SetRanks(map[string]int{})
	}
	m.setInfo("usage statistics cleared")
	return m.requeryCmd()
}

func parseFormInt(raw, label string, floor int) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%s is required", label)
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", label)
	}
	if v < floor {
		return 0, fmt.Errorf("%s must be at least %d", label, floor)
	}
	return v, nil
}
