package dispatcher

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/emoji-popup-picker/internal/backend"
	"github.com/atomicstack/emoji-popup-picker/internal/state"
	"github.com/atomicstack/emoji-popup-picker/internal/store"
)

func newDispatcher(t *testing.T) (*Dispatcher, *store.SettingsStore, *store.RanksStore, state.SettingsStore, state.UsageStore) {
	t.Helper()
	dir := t.TempDir()
	settingsFile := store.NewSettingsStore(filepath.Join(dir, "settings.json"))
	if err := settingsFile.Initialize(); err != nil {
		t.Fatalf("initialize settings: %v", err)
	}
	ranksFile := store.NewRanksStore(filepath.Join(dir, "ranks.json"), time.Hour)
	if err := ranksFile.Initialize(); err != nil {
		t.Fatalf("initialize ranks: %v", err)
	}
	settings := state.NewSettingsStore()
	settings.Set(settingsFile.Current())
	usage := state.NewUsageStore()
	return New(settingsFile, ranksFile, settings, usage), settingsFile, ranksFile, settings, usage
}

func TestHandleSettingsChange(t *testing.T) {
	d, settingsFile, _, settings, _ := newDispatcher(t)

	if err := os.WriteFile(settingsFile.Path(), []byte(`{"max_top_results": 2}`), 0o644); err != nil {
		t.Fatalf("edit settings: %v", err)
	}
	res := d.Handle(backend.Event{Kind: backend.KindSettings})
	if !res.SettingsUpdated {
		t.Fatalf("expected SettingsUpdated")
	}
	if got := settings.Current().MaxTopResults; got != 2 {
		t.Fatalf("expected snapshot refreshed, got max_top_results %d", got)
	}

	// Unchanged file reports nothing.
	res = d.Handle(backend.Event{Kind: backend.KindSettings})
	if res.SettingsUpdated {
		t.Fatalf("expected no update for unchanged file")
	}
}

func TestHandleRanksChange(t *testing.T) {
	d, _, ranksFile, _, usage := newDispatcher(t)

	if err := os.WriteFile(ranksFile.Path(), []byte(`{"🔥":4}`), 0o644); err != nil {
		t.Fatalf("edit ranks: %v", err)
	}
	res := d.Handle(backend.Event{Kind: backend.KindRanks})
	if !res.RanksUpdated {
		t.Fatalf("expected RanksUpdated")
	}
	if got := usage.Count("🔥"); got != 4 {
		t.Fatalf("expected usage snapshot refreshed, got %d", got)
	}
}

func TestHandleRanksChangeSkippedWhilePending(t *testing.T) {
	d, _, ranksFile, _, usage := newDispatcher(t)

	ranksFile.Increment("😀")
	if err := os.WriteFile(ranksFile.Path(), []byte(`{"🔥":4}`), 0o644); err != nil {
		t.Fatalf("edit ranks: %v", err)
	}
	res := d.Handle(backend.Event{Kind: backend.KindRanks})
	if res.RanksUpdated {
		t.Fatalf("expected reload skipped while local counts are pending")
	}
	if got := usage.Count("🔥"); got != 0 {
		t.Fatalf("expected usage snapshot untouched, got %d", got)
	}
}

func TestHandleErrorEvent(t *testing.T) {
	d, _, _, _, _ := newDispatcher(t)

	res := d.Handle(backend.Event{Kind: backend.KindSettings, Err: fmt.Errorf("stat failed")})
	if res.SettingsUpdated || res.RanksUpdated {
		t.Fatalf("expected error events to be ignored, got %#v", res)
	}
}
