package backend

import (
	"context"
	"os"
	"sync"
	"time"
)

// Kind identifies which persisted file a watcher event refers to.
type Kind int

const (
	KindSettings Kind = iota
	KindRanks
)

// errEventInterval caps how often a poller reports the same failing stat.
const errEventInterval = 30 * time.Second

// Event signals that a watched file changed on disk, or that watching it
// failed.
type Event struct {
	Kind Kind
	Err  error
}

// Watcher polls the persisted store files and publishes an event whenever
// one changes underneath the running panel, e.g. after a hand edit or a
// write by a second instance. The initial state is the baseline: only later
// changes are reported.
type Watcher struct {
	settingsPath string
	ranksPath    string
	interval     time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls both store files every interval.
func NewWatcher(settingsPath, ranksPath string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		settingsPath: settingsPath,
		ranksPath:    ranksPath,
		interval:     interval,
		ctx:          ctx,
		cancel:       cancel,
		events:       make(chan Event, 16),
	}

	w.startFilePoller(KindSettings, settingsPath)
	w.startFilePoller(KindRanks, ranksPath)

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of watcher events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current tick; use Wait
// if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events
// channel is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

type fingerprint struct {
	exists  bool
	size    int64
	modTime time.Time
}

func statFingerprint(path string) (fingerprint, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fingerprint{}, nil
	}
	if err != nil {
		return fingerprint{}, err
	}
	return fingerprint{exists: true, size: info.Size(), modTime: info.ModTime()}, nil
}

func (w *Watcher) startFilePoller(kind Kind, path string) {
	w.wg.Add(1)
	go w.poll(kind, path)
}

func (w *Watcher) poll(kind Kind, path string) {
	defer w.wg.Done()

	last, _ := statFingerprint(path)

	errThrottle := newThrottle(errEventInterval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}

		current, err := statFingerprint(path)
		if err != nil {
			if !errThrottle.allow() {
				continue
			}
			if !w.emit(Event{Kind: kind, Err: err}) {
				return
			}
			continue
		}
		errThrottle.reset()
		if current == last {
			continue
		}
		last = current
		if !w.emit(Event{Kind: kind}) {
			return
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
