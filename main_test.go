package main

import (
	"testing"

	"github.com/atomicstack/emoji-popup-picker/internal/app"
	"github.com/atomicstack/emoji-popup-picker/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DataDir:   "/tmp/picker-data",
			EmojiFile: "emoji.json",
			Width:     72,
			Height:    18,
			OneShot:   true,
			Verbose:   true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"dataDir":   "/tmp/picker-data",
			"emojiFile": "emoji.json",
			"width":     "72",
			"height":    "18",
			"oneShot":   "true",
			"verbose":   "true",
		},
		Args: []string{"--data-dir", "/tmp/picker-data"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["dataDir"] != "/tmp/picker-data" {
		t.Fatalf("expected dataDir flag %q, got %v", "/tmp/picker-data", flagsValue["dataDir"])
	}
	if flagsValue["emojiFile"] != "emoji.json" {
		t.Fatalf("expected emojiFile emoji.json, got %v", flagsValue["emojiFile"])
	}
	if flagsValue["width"] != "72" {
		t.Fatalf("expected width 72, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "18" {
		t.Fatalf("expected height 18, got %v", flagsValue["height"])
	}
	if flagsValue["oneShot"] != "true" {
		t.Fatalf("expected oneShot flag true, got %v", flagsValue["oneShot"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["verbose"] != "true" {
		t.Fatalf("expected verbose flag true, got %v", flagsValue["verbose"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
