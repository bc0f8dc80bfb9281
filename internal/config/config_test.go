package config

import "testing"

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"-data-dir", "/tmp/picker", "-width", "90", "-one-shot=false"},
		[]string{"EMOJI_POPUP_PICKER_WIDTH=40", "EMOJI_POPUP_PICKER_TRACE=1"},
	)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.DataDir != "/tmp/picker" {
		t.Fatalf("expected data dir /tmp/picker, got %q", cfg.App.DataDir)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected flag width 90 to win over env, got %d", cfg.App.Width)
	}
	if cfg.App.OneShot {
		t.Fatalf("expected one-shot disabled")
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from environment")
	}
	if cfg.Flags["width"] != "90" {
		t.Fatalf("expected width recorded in flags map, got %q", cfg.Flags["width"])
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}
