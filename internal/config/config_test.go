package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ostankin/ricochet-tui/internal/engine"
)

func TestDefaultYAMLParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default config does not parse: %v", err)
	}
	if _, err := engine.ParseStrategy(cfg.Generation.Strategy); err != nil {
		t.Errorf("embedded default strategy invalid: %v", err)
	}
	if cfg.Generation.FixturesPerQuadrant <= 0 {
		t.Error("embedded default has no fixture count")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ricochet.yaml")
	contents := []byte("generation:\n  strategy: template\n  fixtures_per_quadrant: 2\nui:\n  show_coordinates: true\n")
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Generation.Strategy != "template" {
		t.Errorf("strategy = %q, want template", cfg.Generation.Strategy)
	}
	if cfg.Generation.FixturesPerQuadrant != 2 {
		t.Errorf("fixtures = %d, want 2", cfg.Generation.FixturesPerQuadrant)
	}
	if !cfg.UI.ShowCoordinates {
		t.Error("show_coordinates not picked up")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestGenParamsZeroFieldsKeepDefaults(t *testing.T) {
	var gen GenerationConfig
	p := gen.GenParams()
	def := engine.DefaultGenParams()
	if p != def {
		t.Errorf("zero config produced %+v, want engine defaults %+v", p, def)
	}

	gen.FixturesPerQuadrant = 6
	p = gen.GenParams()
	if p.FixturesPerQuadrant != 6 {
		t.Errorf("fixtures = %d, want 6", p.FixturesPerQuadrant)
	}
	if p.MaxPlacementAttempts != def.MaxPlacementAttempts {
		t.Error("unset placement budget should keep the engine default")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		fixtures  int
		placement int
	}{
		{DifficultyEasy, 5, 512},
		{DifficultyNormal, 4, 256},
		{DifficultyHard, 3, 128},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Generation.FixturesPerQuadrant != tt.fixtures {
			t.Errorf("%s: fixtures = %d, want %d", tt.preset, cfg.Generation.FixturesPerQuadrant, tt.fixtures)
		}
		if cfg.Generation.MaxPlacementAttempts != tt.placement {
			t.Errorf("%s: placement budget = %d, want %d", tt.preset, cfg.Generation.MaxPlacementAttempts, tt.placement)
		}
	}

	// Easy turns hints on, hard turns them off, normal leaves them alone.
	cfg := DefaultConfig()
	cfg.UI.ShowReachHints = false
	ApplyPreset(&cfg, DifficultyEasy)
	if !cfg.UI.ShowReachHints {
		t.Error("easy preset should enable reach hints")
	}
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.UI.ShowReachHints {
		t.Error("hard preset should disable reach hints")
	}

	cfg.UI.ShowReachHints = true
	ApplyPreset(&cfg, DifficultyNormal)
	if !cfg.UI.ShowReachHints {
		t.Error("normal preset should not touch reach hints")
	}
}

func TestApplyPresetUnknownIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	want := cfg
	ApplyPreset(&cfg, DifficultyPreset("nightmare"))
	if cfg != want {
		t.Error("unknown preset modified the config")
	}
}
