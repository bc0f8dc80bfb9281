package gateway

import (
	"context"
	"fmt"

	"github.com/atomicstack/emoji-popup-picker/internal/emoji"
	"github.com/atomicstack/emoji-popup-picker/internal/hotkey"
	"github.com/atomicstack/emoji-popup-picker/internal/logging/events"
	"github.com/atomicstack/emoji-popup-picker/internal/store"
)

// Local serves panel commands in-process from the catalog and the stores.
type Local struct {
	catalog  *emoji.Catalog
	settings *store.SettingsStore
	ranks    *store.RanksStore
	output   *Output
}

func NewLocal(catalog *emoji.Catalog, settings *store.SettingsStore, ranks *store.RanksStore) *Local {
	return &Local{
		catalog:  catalog,
		settings: settings,
		ranks:    ranks,
		output:   NewOutput(),
	}
}

func (l *Local) QueryItems(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := l.catalog.Search(query)
	limit := l.settings.Current().MaxTopResults
	if limit > 0 {
		results = emoji.OrderByUsage(results, l.ranks.Snapshot(), limit)
	}
	return results, nil
}

func (l *Local) DescribeItem(ctx context.Context, symbol string) (ItemInfo, error) {
	if err := ctx.Err(); err != nil {
		return ItemInfo{}, err
	}
	return ItemInfo{Symbol: symbol, Keywords: l.catalog.Keywords(symbol)}, nil
}

// HidePanel succeeds unconditionally: a popup terminal has no hidden state
// of its own, the hosting popup closes when the program exits.
func (l *Local) HidePanel(ctx context.Context) error {
	return ctx.Err()
}

func (l *Local) OutputAction(ctx context.Context, symbol string) error {
	if symbol == "" {
		return fmt.Errorf("no symbol to output")
	}
	if err := l.output.Send(ctx, symbol, l.settings.Current().OutputMode); err != nil {
		events.Action.Error(err)
		return err
	}
	events.Action.Success(symbol)
	return nil
}

func (l *Local) RecordUsage(ctx context.Context, symbol string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.ranks.Increment(symbol)
	return nil
}

// OpenSettings succeeds unconditionally: the settings surface is a panel
// mode, not a separate window.
func (l *Local) OpenSettings(ctx context.Context) error {
	return ctx.Err()
}

func (l *Local) ReportWindowSize(ctx context.Context, width, height int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	return l.settings.UpdateWindowSize(width, height)
}

func (l *Local) Settings(ctx context.Context) (store.Settings, error) {
	if err := ctx.Err(); err != nil {
		return store.Settings{}, err
	}
	return l.settings.Current(), nil
}

func (l *Local) UpdateSettings(ctx context.Context, settings store.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	combination, err := hotkey.Parse(settings.GlobalHotkey)
	if err != nil {
		return fmt.Errorf("invalid hotkey: %w", err)
	}
	if !combination.Valid() {
		return fmt.Errorf("invalid hotkey %q: missing modifier", settings.GlobalHotkey)
	}
	switch settings.OutputMode {
	case store.OutputPasteOnly, store.OutputCopyOnly, store.OutputPasteAndCopy:
	default:
		return fmt.Errorf("unknown output mode %q", settings.OutputMode)
	}
	if settings.MaxTopResults < 0 {
		settings.MaxTopResults = 0
	}
	return l.settings.Update(settings)
}

func (l *Local) ResetUsageStats(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return l.ranks.Reset()
}
