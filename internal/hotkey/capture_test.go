package hotkey

import "testing"

func TestCaptureCommitsValidChord(t *testing.T) {
	c := NewCapture()
	c.Begin(Default())
	if !c.Active() {
		t.Fatal("expected capture to be active after Begin")
	}

	if out := c.Offer(KeyEvent{Key: "A"}); out != OutcomeIgnored {
		t.Fatalf("expected modifier-less keydown ignored, got %v", out)
	}
	if !c.Active() {
		t.Fatal("expected session to stay active after ignored keydown")
	}
	if out := c.Offer(KeyEvent{Mods: ModCtrl}); out != OutcomeIgnored {
		t.Fatalf("expected pure-modifier keydown ignored, got %v", out)
	}

	if out := c.Offer(KeyEvent{Mods: ModCtrl | ModShift, Key: "K"}); out != OutcomeCommitted {
		t.Fatalf("expected commit, got %v", out)
	}
	if got := c.Candidate().String(); got != "Ctrl+Shift+K" {
		t.Fatalf("unexpected candidate %q", got)
	}
	if c.State() != CaptureCommitted {
		t.Fatalf("expected committed state, got %v", c.State())
	}

	persisted := c.Finish()
	if persisted.String() != "Ctrl+Shift+K" {
		t.Fatalf("expected Finish to promote the candidate, got %q", persisted.String())
	}
	if c.State() != CaptureIdle {
		t.Fatalf("expected idle after Finish, got %v", c.State())
	}
}

func TestCaptureAbandonReverts(t *testing.T) {
	c := NewCapture()
	c.Begin(Default())
	c.Offer(KeyEvent{Mods: ModOption, Key: "E"})
	c.Begin(Default())
	c.Offer(KeyEvent{Key: "Q"})

	reverted := c.Abandon()
	if reverted.String() != DefaultCombination {
		t.Fatalf("expected revert to persisted value, got %q", reverted.String())
	}
	if c.State() != CaptureIdle {
		t.Fatalf("expected idle after abandon, got %v", c.State())
	}
	if !c.Candidate().IsZero() {
		t.Fatalf("expected candidate cleared, got %#v", c.Candidate())
	}
}

func TestCaptureIgnoresWhenIdle(t *testing.T) {
	c := NewCapture()
	if out := c.Offer(KeyEvent{Mods: ModCtrl, Key: "A"}); out != OutcomeIgnored {
		t.Fatalf("expected idle capture to ignore keydowns, got %v", out)
	}
}

func TestCaptureCommitStopsRecording(t *testing.T) {
	c := NewCapture()
	c.Begin(Combination{})
	if out := c.Offer(KeyEvent{Mods: ModCtrl, Key: "A"}); out != OutcomeCommitted {
		t.Fatalf("expected commit, got %v", out)
	}
	if out := c.Offer(KeyEvent{Mods: ModCtrl, Key: "B"}); out != OutcomeIgnored {
		t.Fatalf("expected keydowns after commit to be ignored, got %v", out)
	}
	if got := c.Candidate().String(); got != "Ctrl+A" {
		t.Fatalf("expected first commit retained, got %q", got)
	}
}
