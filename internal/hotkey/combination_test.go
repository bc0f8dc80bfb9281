package hotkey

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParseCanonicalOrdering(t *testing.T) {
	combo, err := Parse("Shift+Ctrl+A")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if combo.Mods != ModCtrl|ModShift || combo.Key != "A" {
		t.Fatalf("unexpected combination %#v", combo)
	}
	if got := combo.String(); got != "Ctrl+Shift+A" {
		t.Fatalf("expected canonical order, got %q", got)
	}
}

func TestParseAliases(t *testing.T) {
	cases := map[string]string{
		"Command+Alt+Space": "Cmd+Option+Space",
		"Super+RETURN":      "Cmd+Enter",
		"Control+ESC":       "Ctrl+Escape",
		"Cmd+Shift+=":       "Cmd+Shift+=",
		"Option+F12":        "Option+F12",
		"Ctrl+a":            "Ctrl+A",
		"Cmd+PERIOD":        "Cmd+.",
	}
	for input, want := range cases {
		combo, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q failed: %v", input, err)
		}
		if got := combo.String(); got != want {
			t.Fatalf("parse %q: expected %q, got %q", input, want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "Cmd+Shift", "Cmd+A+B", "Cmd+Hyper"} {
		if _, err := Parse(input); err == nil {
			t.Fatalf("expected parse error for %q", input)
		}
	}
}

func TestParseWithoutModifiers(t *testing.T) {
	combo, err := Parse("F5")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if combo.Valid() {
		t.Fatalf("expected modifier-less combination to be invalid for commit")
	}
	if combo.String() != "F5" {
		t.Fatalf("unexpected serialization %q", combo.String())
	}
}

func TestDefaultCombination(t *testing.T) {
	combo := Default()
	if combo.Mods != ModCmd|ModOption || combo.Key != "Space" {
		t.Fatalf("unexpected default %#v", combo)
	}
	if combo.String() != DefaultCombination {
		t.Fatalf("expected %q, got %q", DefaultCombination, combo.String())
	}
}

func TestZeroCombinationString(t *testing.T) {
	if got := (Combination{}).String(); got != "" {
		t.Fatalf("expected empty string for zero combination, got %q", got)
	}
}

func TestFromKeyMsgCtrlChord(t *testing.T) {
	ev, ok := FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlA})
	if !ok {
		t.Fatal("expected ctrl+a to resolve")
	}
	if ev.Mods != ModCtrl || ev.Key != "A" {
		t.Fatalf("unexpected event %#v", ev)
	}
}

func TestFromKeyMsgAltRune(t *testing.T) {
	ev, ok := FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	if !ok {
		t.Fatal("expected alt+x to resolve")
	}
	if ev.Mods != ModOption || ev.Key != "X" {
		t.Fatalf("unexpected event %#v", ev)
	}
}

func TestFromKeyMsgShiftedRunes(t *testing.T) {
	ev, ok := FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'A'}})
	if !ok || ev.Mods != ModShift || ev.Key != "A" {
		t.Fatalf("expected Shift+A for uppercase rune, got %#v ok=%v", ev, ok)
	}
	ev, ok = FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'!'}})
	if !ok || ev.Mods != ModShift || ev.Key != "1" {
		t.Fatalf("expected physical key Shift+1 for '!', got %#v ok=%v", ev, ok)
	}
	ev, ok = FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'{'}})
	if !ok || ev.Mods != ModShift || ev.Key != "[" {
		t.Fatalf("expected physical key Shift+[ for '{', got %#v ok=%v", ev, ok)
	}
}

func TestFromKeyMsgNamedKeys(t *testing.T) {
	ev, ok := FromKeyMsg(tea.KeyMsg{Type: tea.KeySpace})
	if !ok || ev.Key != "Space" {
		t.Fatalf("expected Space, got %#v ok=%v", ev, ok)
	}
	ev, ok = FromKeyMsg(tea.KeyMsg{Type: tea.KeyShiftTab})
	if !ok || ev.Mods != ModShift || ev.Key != "Tab" {
		t.Fatalf("expected Shift+Tab, got %#v ok=%v", ev, ok)
	}
	ev, ok = FromKeyMsg(tea.KeyMsg{Type: tea.KeyF5})
	if !ok || ev.Key != "F5" {
		t.Fatalf("expected F5, got %#v ok=%v", ev, ok)
	}
}

func TestFromKeyMsgRejectsPaste(t *testing.T) {
	if _, ok := FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")}); ok {
		t.Fatal("expected multi-rune input to be rejected")
	}
}
