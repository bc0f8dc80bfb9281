package backend

import (
	"sync"
	"time"
)

// throttle gates repeatable notifications to at most one per interval.
// Pollers use it on their error path: a persistent stat failure would
// otherwise produce an event on every tick.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// allow reports whether the caller may proceed now. A true return starts a
// new quiet interval; callers drop the notification on false.
func (t *throttle) allow() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}

// reset clears the quiet interval so the next notification passes
// immediately. Called when the underlying condition recovers.
func (t *throttle) reset() {
	if t == nil || t.interval <= 0 {
		return
	}
	t.mu.Lock()
	t.next = time.Time{}
	t.mu.Unlock()
}
