package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/typist/internal/config"
	"github.com/san-kum/typist/internal/trace"
)

func resetFlags() {
	preset, configFile, speed, theme = "", "", "", ""
}

func TestLoadConfigPreset(t *testing.T) {
	resetFlags()
	cfg, name, err := loadConfig([]string{"links"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if name != "links" {
		t.Errorf("expected name links, got %s", name)
	}
	if cfg.Speed != "slow" {
		t.Errorf("expected preset speed slow, got %s", cfg.Speed)
	}
}

func TestLoadConfigFile(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "hello.yaml")
	cfg := config.DefaultConfig()
	cfg.Script = []config.Step{{Op: "prompt"}, {Op: "type", Text: "hello"}}
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	speed = "slow"
	defer resetFlags()
	loaded, name, err := loadConfig([]string{path})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if name != "hello" {
		t.Errorf("expected name hello, got %s", name)
	}
	if len(loaded.Script) != 2 || loaded.Speed != "slow" {
		t.Errorf("unexpected config %+v", loaded)
	}
}

func TestLoadConfigPresetOverFile(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "base.yaml")
	base := config.DefaultConfig()
	base.Theme = "ocean"
	base.TerminalHeight = 5
	if err := config.Save(path, base); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	configFile, preset = path, "links"
	defer resetFlags()
	cfg, name, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if name != "links" {
		t.Errorf("expected name links, got %s", name)
	}
	if cfg.Speed != "slow" {
		t.Errorf("expected preset speed slow, got %s", cfg.Speed)
	}
	if cfg.Theme != "ocean" || cfg.TerminalHeight != 5 {
		t.Errorf("expected file settings kept under the preset, got theme %s height %d", cfg.Theme, cfg.TerminalHeight)
	}

	preset = ""
	cfg, name, err = loadConfig(nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if name != "base" || cfg.Theme != "ocean" {
		t.Errorf("expected config file alone, got %s with theme %s", name, cfg.Theme)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	resetFlags()
	if _, _, err := loadConfig([]string{"no-such-thing"}); err == nil {
		t.Error("expected error for unknown source")
	}

	speed = "warp"
	defer resetFlags()
	if _, _, err := loadConfig(nil); err == nil {
		t.Error("expected error for unknown speed")
	}
}

func TestSampleChars(t *testing.T) {
	frames := []trace.Frame{
		{At: 0, Chars: 0},
		{At: 40 * time.Millisecond, Chars: 1},
		{At: 80 * time.Millisecond, Chars: 2},
	}
	data := sampleChars(frames, 3)
	expected := []float64{0, 1, 2}
	for i := range expected {
		if data[i] != expected[i] {
			t.Errorf("point %d: expected %v, got %v", i, expected[i], data[i])
		}
	}
}
