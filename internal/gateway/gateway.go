// Package gateway is the panel's command surface. Every operation the UI
// performs — querying the catalog, describing an item, output actions,
// settings access — goes through the Client interface so the picker logic
// stays independent from storage and output mechanics.
package gateway

import (
	"context"

	"github.com/atomicstack/emoji-popup-picker/internal/store"
)

// ItemInfo is the describe-item payload shown in the preview area.
type ItemInfo struct {
	Symbol   string
	Keywords []string
}

// Client executes panel commands. Implementations must be safe for use
// from command goroutines.
type Client interface {
	// QueryItems resolves a search query to an ordered list of symbols.
	QueryItems(ctx context.Context, query string) ([]string, error)
	// DescribeItem returns preview info for one symbol.
	DescribeItem(ctx context.Context, symbol string) (ItemInfo, error)
	// HidePanel withdraws the panel from view.
	HidePanel(ctx context.Context) error
	// OutputAction delivers the picked symbol per the output mode.
	OutputAction(ctx context.Context, symbol string) error
	// RecordUsage bumps the symbol's usage count.
	RecordUsage(ctx context.Context, symbol string) error
	// OpenSettings requests the settings surface.
	OpenSettings(ctx context.Context) error
	// ReportWindowSize persists a new panel size.
	ReportWindowSize(ctx context.Context, width, height int) error
	// Settings returns the current persisted settings.
	Settings(ctx context.Context) (store.Settings, error)
	// UpdateSettings replaces and persists the settings.
	UpdateSettings(ctx context.Context, settings store.Settings) error
	// ResetUsageStats clears all usage counts.
	ResetUsageStats(ctx context.Context) error
}
