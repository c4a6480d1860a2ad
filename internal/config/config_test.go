package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	if got, want := embeddedRush(), DefaultRushConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("embedded rush.yaml drifted from DefaultRushConfig():\n got  %+v\n want %+v", got, want)
	}
	if err := DefaultRushConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadRushCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rush.yaml")
	data := []byte("obstacles:\n  chance: 0.04\n  cap: 10\nbonuses:\n  policy: timer\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRush(path)
	if err != nil {
		t.Fatalf("LoadRush() failed: %v", err)
	}

	if cfg.Obstacles.Chance != 0.04 || cfg.Obstacles.Cap != 10 {
		t.Errorf("overlay not applied: %+v", cfg.Obstacles)
	}
	if cfg.Bonuses.Policy != PolicyTimer {
		t.Errorf("bonus policy = %q, expected timer", cfg.Bonuses.Policy)
	}
	// Untouched keys keep their defaults
	if cfg.Obstacles.Speed != 200 || cfg.Scoring.VictoryScore != 1500 {
		t.Errorf("defaults lost in overlay: speed=%v victory=%d", cfg.Obstacles.Speed, cfg.Scoring.VictoryScore)
	}
}

func TestLoadRushErrors(t *testing.T) {
	if _, err := LoadRush(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  policy: timer\n  chance: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRush(path)
	if err == nil {
		t.Fatal("invalid config should fail")
	}
	if !strings.Contains(err.Error(), "obstacles: policy") || !strings.Contains(err.Error(), "chance 2") {
		t.Errorf("error should list every problem, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RushConfig)
	}{
		{"initial above cap", func(c *RushConfig) { c.Collectibles.Initial = 11 }},
		{"paired without every", func(c *RushConfig) { c.Collectibles.Every = 0 }},
		{"timer delays reversed", func(c *RushConfig) { c.Bonuses.Policy = PolicyTimer; c.Bonuses.MinDelay = 30 }},
		{"unknown offscreen", func(c *RushConfig) { c.Bonuses.Offscreen = "bounce" }},
		{"spawn range reversed", func(c *RushConfig) { c.Field.SpawnMinX = 800 }},
		{"zero survival period", func(c *RushConfig) { c.Scoring.SurvivalEveryMS = 0 }},
		{"negative lives", func(c *RushConfig) { c.Scoring.StartLives = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRushConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestApplyRushPreset(t *testing.T) {
	cfg := DefaultRushConfig()
	ApplyRushPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Obstacles.Cap != 30 {
		t.Errorf("hard preset obstacle cap = %d, expected 30", cfg.Obstacles.Cap)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset produced invalid config: %v", err)
	}

	cfg = DefaultRushConfig()
	cfg.Difficulty.Enabled = true
	ApplyRushPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultRushConfig()
	ApplyRushPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultRushConfig()) {
		t.Error("empty preset should not modify config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy || ParsePreset("fixed") != DifficultyFixed {
		t.Error("known presets should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.25,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, ChanceMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.25 {
		t.Errorf("Level at start = %v, expected 0.25", got)
	}
	if got := d.Level(500, 0); got != 0.625 {
		t.Errorf("Level halfway = %v, expected 0.625", got)
	}
	if got := d.Level(5000, 0); got != 1.0 {
		t.Errorf("Level past max = %v, expected 1.0", got)
	}
	if got := d.Speed(200, 5000, 0); got != 400 {
		t.Errorf("Speed at max = %v, expected 400", got)
	}
	if got := d.Chance(0.8, 5000, 0); got != 1.0 {
		t.Errorf("Chance should be capped at 1, got %v", got)
	}

	cfg.Enabled = false
	d = NewDifficultyManager(cfg)
	if d.Speed(200, 5000, 0) != 200 || d.Chance(0.036, 5000, 0) != 0.036 {
		t.Error("disabled progression should return base values")
	}
}
