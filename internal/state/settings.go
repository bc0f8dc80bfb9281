package state

import "github.com/atomicstack/emoji-popup-picker/internal/store"

// SettingsStore holds the settings snapshot the panel renders from. The
// dispatcher refreshes it when the persisted file changes underneath us.
type SettingsStore interface {
	Current() store.Settings
	Set(store.Settings)
}

type settingsStore struct {
	current store.Settings
}

func NewSettingsStore() SettingsStore {
	return &settingsStore{current: store.DefaultSettings()}
}

func (s *settingsStore) Current() store.Settings {
	return s.current
}

func (s *settingsStore) Set(settings store.Settings) {
	s.current = settings
}
