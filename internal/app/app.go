package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atomicstack/emoji-popup-picker/internal/backend"
	"github.com/atomicstack/emoji-popup-picker/internal/emoji"
	"github.com/atomicstack/emoji-popup-picker/internal/gateway"
	"github.com/atomicstack/emoji-popup-picker/internal/logging"
	"github.com/atomicstack/emoji-popup-picker/internal/store"
	"github.com/atomicstack/emoji-popup-picker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	DataDir    string
	EmojiFile  string
	Width      int
	Height     int
	ShowFooter bool
	OneShot    bool
	Verbose    bool
}

const (
	settingsFileName = "settings.json"
	ranksFileName    = "ranks.json"

	storePollInterval = 1500 * time.Millisecond
)

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	dataDir, err := ResolveDataDir(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	catalog, err := emoji.Load(cfg.EmojiFile)
	if err != nil {
		return fmt.Errorf("load emoji dataset: %w", err)
	}

	settingsFile := store.NewSettingsStore(filepath.Join(dataDir, settingsFileName))
	if err := settingsFile.Initialize(); err != nil {
		return fmt.Errorf("initialize settings store: %w", err)
	}
	ranksFile := store.NewRanksStore(filepath.Join(dataDir, ranksFileName), store.DefaultWriteDelay)
	if err := ranksFile.Initialize(); err != nil {
		return fmt.Errorf("initialize ranks store: %w", err)
	}

	watcher := backend.NewWatcher(settingsFile.Path(), ranksFile.Path(), storePollInterval)
	defer watcher.Stop()

	gw := gateway.NewLocal(catalog, settingsFile, ranksFile)
	model := ui.NewModel(gw, settingsFile, ranksFile, watcher, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, cfg.OneShot)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()

	// Pending rank increments ride a delayed batch write; force them out
	// before the process exits.
	if flushErr := ranksFile.Flush(); flushErr != nil {
		logging.Error(flushErr)
	}

	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// ResolveDataDir expands the configured data directory, defaulting to a
// per-user config directory, and ensures it exists.
func ResolveDataDir(configured string) (string, error) {
	dir := configured
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("locate user config dir: %w", err)
		}
		dir = filepath.Join(base, "emoji-popup-picker")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return dir, nil
}
