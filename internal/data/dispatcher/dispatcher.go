package dispatcher

import (
	"github.com/atomicstack/emoji-popup-picker/internal/backend"
	"github.com/atomicstack/emoji-popup-picker/internal/logging"
	"github.com/atomicstack/emoji-popup-picker/internal/state"
	"github.com/atomicstack/emoji-popup-picker/internal/store"
)

type Result struct {
	SettingsUpdated bool
	RanksUpdated    bool
}

// Dispatcher applies watcher events: it reloads the persisted stores and
// refreshes the in-memory snapshots the panel renders from.
type Dispatcher struct {
	settingsFile *store.SettingsStore
	ranksFile    *store.RanksStore
	settings     state.SettingsStore
	usage        state.UsageStore
}

func New(settingsFile *store.SettingsStore, ranksFile *store.RanksStore, settings state.SettingsStore, usage state.UsageStore) *Dispatcher {
	return &Dispatcher{
		settingsFile: settingsFile,
		ranksFile:    ranksFile,
		settings:     settings,
		usage:        usage,
	}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		logging.Error(evt.Err)
		return res
	}
	switch evt.Kind {
	case backend.KindSettings:
		changed, err := d.settingsFile.Reload()
		if err != nil {
			logging.Error(err)
			return res
		}
		if changed {
			d.settings.Set(d.settingsFile.Current())
			res.SettingsUpdated = true
		}
	case backend.KindRanks:
		changed, err := d.ranksFile.Reload()
		if err != nil {
			logging.Error(err)
			return res
		}
		if changed {
			d.usage.SetRanks(d.ranksFile.Snapshot())
			res.RanksUpdated = true
		}
	}
	return res
}
