package backend

import (
	"testing"
	"time"
)

func TestThrottleAllowsOncePerInterval(t *testing.T) {
	th := newThrottle(time.Hour)
	if !th.allow() {
		t.Fatalf("first allow should pass")
	}
	if th.allow() {
		t.Fatalf("second allow inside the interval should be blocked")
	}
	th.reset()
	if !th.allow() {
		t.Fatalf("allow after reset should pass")
	}
}

func TestThrottleZeroIntervalAlwaysAllows(t *testing.T) {
	th := newThrottle(0)
	for i := 0; i < 3; i++ {
		if !th.allow() {
			t.Fatalf("zero-interval throttle blocked call %d", i)
		}
	}
	var nilThrottle *throttle
	if !nilThrottle.allow() {
		t.Fatalf("nil throttle should always allow")
	}
}
