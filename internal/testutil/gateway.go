// Package testutil provides the scripted gateway used by UI and app tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/atomicstack/emoji-popup-picker/internal/gateway"
	"github.com/atomicstack/emoji-popup-picker/internal/store"
)

// FakeGateway is a scripted gateway.Client. The zero value is usable:
// queries match Items by substring and every operation succeeds. Tests
// inject failures through the *Err fields and inspect the call log and
// captured arguments afterwards.
type FakeGateway struct {
	mu sync.Mutex

	Items       []string
	Keywords    map[string][]string
	SettingsVal store.Settings

	// QueryFn overrides the default substring matching when set.
	QueryFn func(query string) ([]string, error)

	QueryErr    error
	DescribeErr error
	HideErr     error
	OutputErr   error
	RecordErr   error
	OpenErr     error
	ReportErr   error
	SettingsErr error
	UpdateErr   error
	ResetErr    error

	Calls          []string
	Outputs        []string
	Recorded       []string
	Updated        []store.Settings
	ReportedWidth  int
	ReportedHeight int
}

// NewFakeGateway builds a fake whose catalog is the given symbols.
func NewFakeGateway(items ...string) *FakeGateway {
	return &FakeGateway{Items: items, SettingsVal: store.DefaultSettings()}
}

var _ gateway.Client = (*FakeGateway)(nil)

func (f *FakeGateway) QueryItems(ctx context.Context, query string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "query:"+query)
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	if f.QueryFn != nil {
		return f.QueryFn(query)
	}
	if query == "" {
		return append([]string(nil), f.Items...), nil
	}
	matched := make([]string, 0, len(f.Items))
	for _, item := range f.Items {
		if strings.Contains(item, query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (f *FakeGateway) DescribeItem(ctx context.Context, symbol string) (gateway.ItemInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "describe:"+symbol)
	if f.DescribeErr != nil {
		return gateway.ItemInfo{}, f.DescribeErr
	}
	return gateway.ItemInfo{Symbol: symbol, Keywords: f.Keywords[symbol]}, nil
}

func (f *FakeGateway) HidePanel(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "hide")
	return f.HideErr
}

func (f *FakeGateway) OutputAction(ctx context.Context, symbol string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "output:"+symbol)
	if f.OutputErr != nil {
		return f.OutputErr
	}
	f.Outputs = append(f.Outputs, symbol)
	return nil
}

func (f *FakeGateway) RecordUsage(ctx context.Context, symbol string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "record:"+symbol)
	if f.RecordErr != nil {
		return f.RecordErr
	}
	f.Recorded = append(f.Recorded, symbol)
	return nil
}

func (f *FakeGateway) OpenSettings(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "open-settings")
	return f.OpenErr
}

func (f *FakeGateway) ReportWindowSize(ctx context.Context, width, height int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, fmt.Sprintf("report-size:%dx%d", width, height))
	if f.ReportErr != nil {
		return f.ReportErr
	}
	f.ReportedWidth = width
	f.ReportedHeight = height
	return nil
}

func (f *FakeGateway) Settings(ctx context.Context) (store.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "get-settings")
	if f.SettingsErr != nil {
		return store.Settings{}, f.SettingsErr
	}
	return f.SettingsVal, nil
}

func (f *FakeGateway) UpdateSettings(ctx context.Context, settings store.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "update-settings")
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.SettingsVal = settings
	f.Updated = append(f.Updated, settings)
	return nil
}

func (f *FakeGateway) ResetUsageStats(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "reset-stats")
	return f.ResetErr
}

// CallLog returns a copy of the operations seen so far.
func (f *FakeGateway) CallLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Calls...)
}
