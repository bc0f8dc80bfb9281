// Package store persists picker state under the data directory: the
// settings file and the emoji usage ranks file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/atomicstack/emoji-popup-picker/internal/hotkey"
)

const (
	DefaultWindowWidth   = 72
	DefaultWindowHeight  = 18
	DefaultMaxTopResults = 10
)

// OutputMode selects what happens with the picked emoji.
type OutputMode string

const (
	OutputPasteOnly    OutputMode = "paste_only"
	OutputCopyOnly     OutputMode = "copy_only"
	OutputPasteAndCopy OutputMode = "paste_and_copy"
)

// UnmarshalJSON rejects unknown modes so a hand-edited settings file fails
// loudly instead of silently disabling output.
func (m *OutputMode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch OutputMode(raw) {
	case OutputPasteOnly, OutputCopyOnly, OutputPasteAndCopy:
		*m = OutputMode(raw)
		return nil
	}
	return fmt.Errorf("unknown output mode %q", raw)
}

// Settings holds the persisted preferences.
type Settings struct {
	GlobalHotkey    string     `json:"global_hotkey"`
	PlaceUnderMouse bool       `json:"place_under_mouse"`
	OutputMode      OutputMode `json:"output_mode"`
	WindowWidth     int        `json:"window_width"`
	WindowHeight    int        `json:"window_height"`
	MaxTopResults   int        `json:"max_top_results"`
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() Settings {
	return Settings{
		GlobalHotkey:    hotkey.DefaultCombination,
		PlaceUnderMouse: true,
		OutputMode:      OutputPasteOnly,
		WindowWidth:     DefaultWindowWidth,
		WindowHeight:    DefaultWindowHeight,
		MaxTopResults:   DefaultMaxTopResults,
	}
}

// SettingsStore keeps the current settings in memory and mirrors every
// update to the settings file.
type SettingsStore struct {
	mu      sync.Mutex
	path    string
	current Settings
}

func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path, current: DefaultSettings()}
}

// Path reports the backing file location.
func (s *SettingsStore) Path() string {
	return s.path
}

// Initialize loads the settings file, creating it with defaults when it
// does not exist yet. Partial files keep defaults for missing fields.
func (s *SettingsStore) Initialize() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.save(DefaultSettings())
	}
	_, err := s.Reload()
	return err
}

// Current returns a copy of the in-memory settings.
func (s *SettingsStore) Current() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update replaces the settings and persists them.
func (s *SettingsStore) Update(next Settings) error {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	return s.save(next)
}

// UpdateWindowSize persists a new panel size, leaving the rest untouched.
func (s *SettingsStore) UpdateWindowSize(width, height int) error {
	s.mu.Lock()
	s.current.WindowWidth = width
	s.current.WindowHeight = height
	next := s.current
	s.mu.Unlock()
	return s.save(next)
}

// Reload re-reads the settings file, reporting whether the in-memory copy
// changed. Used when the file is edited outside the picker.
func (s *SettingsStore) Reload() (bool, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return false, fmt.Errorf("read settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := json.Unmarshal(content, &loaded); err != nil {
		return false, fmt.Errorf("parse settings: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if loaded == s.current {
		return false, nil
	}
	s.current = loaded
	return true, nil
}

func (s *SettingsStore) save(settings Settings) error {
	content, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
