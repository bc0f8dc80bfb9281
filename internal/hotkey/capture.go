package hotkey

// CaptureState tracks where the capture flow is.
type CaptureState int

const (
	CaptureIdle CaptureState = iota
	CaptureActive
	CaptureCommitted
)

// Outcome reports how the capture responded to a keydown.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeCommitted
)

// Capture implements the hotkey recording flow. The field owning it starts a
// session when focused; keydowns are offered one at a time. A keydown
// commits only when it holds at least one modifier and exactly one
// recognized non-modifier key; everything else leaves the session active.
// Leaving the field without a commit abandons the session and the caller
// falls back to the persisted value.
type Capture struct {
	state     CaptureState
	persisted Combination
	candidate Combination
}

// NewCapture returns an idle capture.
func NewCapture() *Capture {
	return &Capture{}
}

// State returns the current capture state.
func (c *Capture) State() CaptureState {
	return c.state
}

// Active reports whether a capture session is recording keydowns.
func (c *Capture) Active() bool {
	return c.state == CaptureActive
}

// Persisted returns the combination the session reverts to.
func (c *Capture) Persisted() Combination {
	return c.persisted
}

// Candidate returns the committed combination, zero until a commit happens.
func (c *Capture) Candidate() Combination {
	return c.candidate
}

// Begin starts a capture session, remembering the persisted combination the
// session falls back to.
func (c *Capture) Begin(persisted Combination) {
	c.state = CaptureActive
	c.persisted = persisted
	c.candidate = Combination{}
}

// Offer processes one keydown. Pure-modifier keydowns and chords without a
// modifier are ignored so the user can roll modifiers freely before striking
// the final key.
func (c *Capture) Offer(ev KeyEvent) Outcome {
	if c.state != CaptureActive {
		return OutcomeIgnored
	}
	candidate := ev.Combination()
	if !candidate.Valid() {
		return OutcomeIgnored
	}
	c.candidate = candidate
	c.state = CaptureCommitted
	return OutcomeCommitted
}

// Abandon ends the session without a commit and returns the combination the
// field should display again.
func (c *Capture) Abandon() Combination {
	persisted := c.persisted
	c.state = CaptureIdle
	c.candidate = Combination{}
	return persisted
}

// Finish acknowledges a committed session and resets to idle. The committed
// combination becomes the new persisted value.
func (c *Capture) Finish() Combination {
	committed := c.candidate
	if c.state == CaptureCommitted && committed.Valid() {
		c.persisted = committed
	}
	c.state = CaptureIdle
	c.candidate = Combination{}
	return c.persisted
}
