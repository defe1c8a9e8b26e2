package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults differ from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("levels:\n  dir: /tmp/lv\n  strict: true\ngameplay:\n  vase_hits: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Levels.Dir != "/tmp/lv" || !cfg.Levels.Strict {
		t.Errorf("levels not applied: %+v", cfg.Levels)
	}
	if cfg.Gameplay.VaseHits != 3 {
		t.Errorf("expected vase hits 3, got %d", cfg.Gameplay.VaseHits)
	}
	// Unset sections keep defaults.
	if cfg.Display.TickRate != DefaultConfig().Display.TickRate {
		t.Errorf("tick rate should default, got %d", cfg.Display.TickRate)
	}
	if cfg.Gameplay.TNTThreshold != 5 {
		t.Errorf("tnt threshold should default, got %d", cfg.Gameplay.TNTThreshold)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("levels: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path.db")
	if err != nil || got != "/abs/path.db" {
		t.Errorf("absolute path should be unchanged, got %q %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/x.db")
	if err != nil {
		t.Fatalf("ExpandHome failed: %v", err)
	}
	if got != filepath.Join(home, "x.db") {
		t.Errorf("expected %s, got %s", filepath.Join(home, "x.db"), got)
	}
}
