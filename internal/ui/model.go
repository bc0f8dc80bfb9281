package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/emoji-popup-picker/internal/backend"
	"github.com/atomicstack/emoji-popup-picker/internal/data/dispatcher"
	"github.com/atomicstack/emoji-popup-picker/internal/gateway"
	"github.com/atomicstack/emoji-popup-picker/internal/state"
	"github.com/atomicstack/emoji-popup-picker/internal/store"
	"github.com/atomicstack/emoji-popup-picker/internal/theme"
	"github.com/atomicstack/emoji-popup-picker/internal/ui/command"
	uistate "github.com/atomicstack/emoji-popup-picker/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModePicker Mode = iota
	ModeSettings
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the emoji picker panel.
type Model struct {
	query     uistate.Query
	searchSeq int
	grid      *uistate.Grid
	focus     uistate.FocusRing
	searching bool

	status     string
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width      int
	height     int
	gridOffset int

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	showFooter bool
	verbose    bool
	oneShot    bool

	searchCursor      cursor.Model
	searchCursorDirty bool

	preview    previewData
	previewSeq int

	form *settingsForm

	resizeSeq int
	drag      *dragState

	handlers map[reflect.Type]msgHandler

	bus        *command.Bus
	mode       Mode
	settings   state.SettingsStore
	usage      state.UsageStore
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the UI state around the gateway client. The file
// stores feed the dispatcher so external edits picked up by the watcher
// refresh the in-memory snapshots; both may be nil when no watcher runs.
func NewModel(gw gateway.Client, settingsFile *store.SettingsStore, ranksFile *store.RanksStore, watcher *backend.Watcher, width, height int, showFooter, verbose, oneShot bool) *Model {
	settings := state.NewSettingsStore()
	if settingsFile != nil {
		settings.Set(settingsFile.Current())
	}
	usage := state.NewUsageStore()
	if ranksFile != nil {
		usage.SetRanks(ranksFile.Snapshot())
	}
	if width <= 0 {
		width = settings.Current().WindowWidth
	}
	if height <= 0 {
		height = settings.Current().WindowHeight
	}
	m := &Model{
		bus:          command.New(nil, gw),
		backend:      watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   showFooter,
		verbose:      verbose,
		oneShot:      oneShot,
		mode:         ModePicker,
		width:        width,
		height:       height,
		settings:     settings,
		usage:        usage,
	}
	if settingsFile != nil && ranksFile != nil {
		m.dispatcher = dispatcher.New(settingsFile, ranksFile, settings, usage)
	}
	m.grid = uistate.NewGrid(gridColumnsForWidth(width), 0)
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Search != nil {
		c.TextStyle = styles.Search.Copy()
	}
	c.SetChar(" ")
	m.searchCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.searchCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.queryCmd(m.query.Text, m.searchSeq))
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateSearchCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

// handleActiveForm gives the settings form first crack at key input. Async
// results and terminal events stay on the registry path so they apply in
// either mode.
func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.mode != ModeSettings || m.form == nil {
		return false, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		return true, m.handleSettingsKey(key)
	}
	if cmd := m.form.updateInputs(msg); cmd != nil {
		return true, cmd
	}
	return false, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(searchTickMsg{}):     m.handleSearchTickMsg,
		reflect.TypeOf(searchResultMsg{}):   m.handleSearchResultMsg,
		reflect.TypeOf(renderBatchMsg{}):    m.handleRenderBatchMsg,
		reflect.TypeOf(activateFirstMsg{}):  m.handleActivateFirstMsg,
		reflect.TypeOf(previewLoadedMsg{}):  m.handlePreviewLoadedMsg,
		reflect.TypeOf(selectionDoneMsg{}):  m.handleSelectionDoneMsg,
		reflect.TypeOf(hideDoneMsg{}):       m.handleHideDoneMsg,
		reflect.TypeOf(resizeFlushMsg{}):    m.handleResizeFlushMsg,
		reflect.TypeOf(sizeReportedMsg{}):   m.handleSizeReportedMsg,
		reflect.TypeOf(settingsSavedMsg{}):  m.handleSettingsSavedMsg,
		reflect.TypeOf(hotkeySavedMsg{}):    m.handleHotkeySavedMsg,
		reflect.TypeOf(hotkeyRevertMsg{}):   m.handleHotkeyRevertMsg,
		reflect.TypeOf(statsResetMsg{}):     m.handleStatsResetMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchCursorDirty {
		m.searchCursorDirty = false
		m.searchCursor.Blink = false
		if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
