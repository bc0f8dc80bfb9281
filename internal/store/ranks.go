package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultWriteDelay is the quiet period before batched rank writes land.
const DefaultWriteDelay = 2 * time.Second

// RanksStore tracks per-glyph usage counts. Increments are written to disk
// in batches: a write happens only after the counts have been quiet for the
// configured delay, so rapid picks cost a single write.
type RanksStore struct {
	mu           sync.Mutex
	path         string
	ranks        map[string]int
	pending      bool
	changes      uint64
	lastChange   time.Time
	writeDelay   time.Duration
	workerActive bool
}

func NewRanksStore(path string, writeDelay time.Duration) *RanksStore {
	if writeDelay <= 0 {
		writeDelay = DefaultWriteDelay
	}
	return &RanksStore{
		path:       path,
		ranks:      make(map[string]int),
		writeDelay: writeDelay,
	}
}

// Path reports the backing file location.
func (r *RanksStore) Path() string {
	return r.path
}

// Initialize loads the ranks file when present. A missing file starts with
// empty counts.
func (r *RanksStore) Initialize() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	content, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read ranks: %w", err)
	}
	loaded := make(map[string]int)
	if err := json.Unmarshal(content, &loaded); err != nil {
		return fmt.Errorf("parse ranks: %w", err)
	}
	r.mu.Lock()
	r.ranks = loaded
	r.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current counts.
func (r *RanksStore) Snapshot() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.ranks))
	for glyph, count := range r.ranks {
		out[glyph] = count
	}
	return out
}

// Count returns the usage count for one glyph.
func (r *RanksStore) Count(glyph string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ranks[glyph]
}

// Increment bumps a glyph's count and schedules a batched write.
func (r *RanksStore) Increment(glyph string) {
	r.mu.Lock()
	r.ranks[glyph]++
	r.pending = true
	r.changes++
	r.lastChange = time.Now()
	spawn := !r.workerActive
	if spawn {
		r.workerActive = true
	}
	r.mu.Unlock()
	if spawn {
		go r.writeWorker()
	}
}

// writeWorker waits for the counts to go quiet, writes them, and exits. A
// failed write keeps the pending flag set so the next increment retries.
// Counts that move while a write is in flight stay pending: the worker
// compares the change counter against the snapshot it wrote and loops to
// write the newer state.
func (r *RanksStore) writeWorker() {
	for {
		r.mu.Lock()
		if !r.pending {
			r.workerActive = false
			r.mu.Unlock()
			return
		}
		elapsed := time.Since(r.lastChange)
		if elapsed < r.writeDelay {
			remaining := r.writeDelay - elapsed
			r.mu.Unlock()
			time.Sleep(remaining)
			continue
		}
		snapshot := make(map[string]int, len(r.ranks))
		for glyph, count := range r.ranks {
			snapshot[glyph] = count
		}
		seen := r.changes
		r.mu.Unlock()

		err := saveRanks(r.path, snapshot)

		r.mu.Lock()
		if err == nil {
			if r.changes == seen {
				r.pending = false
			} else {
				r.mu.Unlock()
				continue
			}
		}
		r.workerActive = false
		r.mu.Unlock()
		return
	}
}

// Flush writes pending counts immediately. Used on shutdown so a pick right
// before exit is not lost to the quiet period.
func (r *RanksStore) Flush() error {
	r.mu.Lock()
	if !r.pending {
		r.mu.Unlock()
		return nil
	}
	snapshot := make(map[string]int, len(r.ranks))
	for glyph, count := range r.ranks {
		snapshot[glyph] = count
	}
	seen := r.changes
	r.mu.Unlock()

	if err := saveRanks(r.path, snapshot); err != nil {
		return err
	}
	r.mu.Lock()
	// An increment that landed mid-write stays pending for the next flush.
	if r.changes == seen {
		r.pending = false
	}
	r.mu.Unlock()
	return nil
}

// Reset clears all counts and writes the empty table immediately.
func (r *RanksStore) Reset() error {
	r.mu.Lock()
	r.ranks = make(map[string]int)
	r.pending = false
	r.changes++
	r.mu.Unlock()
	return saveRanks(r.path, map[string]int{})
}

// Reload re-reads the ranks file, reporting whether the counts changed.
// Skipped while a write is pending: the pending counts are newer than the
// file contents.
func (r *RanksStore) Reload() (bool, error) {
	r.mu.Lock()
	if r.pending {
		r.mu.Unlock()
		return false, nil
	}
	r.mu.Unlock()

	content, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read ranks: %w", err)
	}
	loaded := make(map[string]int)
	if err := json.Unmarshal(content, &loaded); err != nil {
		return false, fmt.Errorf("parse ranks: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending {
		return false, nil
	}
	if equalRanks(r.ranks, loaded) {
		return false, nil
	}
	r.ranks = loaded
	return true, nil
}

// saveRanks is an indirection point for tests.
var saveRanks = writeRanks

func writeRanks(path string, ranks map[string]int) error {
	content, err := json.Marshal(ranks)
	if err != nil {
		return fmt.Errorf("encode ranks: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write ranks: %w", err)
	}
	return nil
}

func equalRanks(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for glyph, count := range a {
		if b[glyph] != count {
			return false
		}
	}
	return true
}
