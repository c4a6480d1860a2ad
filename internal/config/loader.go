package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRush loads the Carrot Rush configuration.
// Search order: customPath -> ~/.carrotrush/configs/rush.yaml -> ./configs/rush.yaml -> embedded default.
// Files found on the search path are overlaid on the defaults, so they only need
// the keys they change. A custom path that cannot be read or is invalid is an error.
func LoadRush(customPath string) (RushConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RushConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRush(data)
		if err != nil {
			return RushConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("rush.yaml"), filepath.Join("configs", "rush.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseRush(data); err == nil {
				return cfg, nil
			}
		}
	}

	return embeddedRush(), nil
}

// parseRush overlays YAML on the embedded defaults and validates the result.
func parseRush(data []byte) (RushConfig, error) {
	cfg := embeddedRush()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RushConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RushConfig{}, err
	}
	return cfg, nil
}

func embeddedRush() RushConfig {
	var cfg RushConfig
	if err := yaml.Unmarshal(defaultRushYAML, &cfg); err != nil {
		return DefaultRushConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".carrotrush", "configs", filename)
}

// Validate reports every inconsistent value in the config.
func (c RushConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field: size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Field.SpawnMinX > c.Field.SpawnMaxX {
		errs = append(errs, fmt.Errorf("field: spawn_min_x %v exceeds spawn_max_x %v", c.Field.SpawnMinX, c.Field.SpawnMaxX))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("player: invalid size %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player: speed must not be negative"))
	}

	errs = append(errs, c.Obstacles.validate("obstacles", PolicyChance)...)
	errs = append(errs, c.Collectibles.validate("collectibles", PolicyPaired, PolicyFixed)...)
	errs = append(errs, c.Bonuses.validate("bonuses", PolicyChance, PolicyTimer)...)

	if c.Scoring.SurvivalEveryMS <= 0 {
		errs = append(errs, fmt.Errorf("scoring: survival_every_ms must be positive"))
	}
	if c.Scoring.StartLives < 0 || c.Scoring.BonusLives < 0 || c.Scoring.CollectiblePoints < 0 || c.Scoring.SurvivalPoints < 0 {
		errs = append(errs, fmt.Errorf("scoring: values must not be negative"))
	}

	return errors.Join(errs...)
}

func (s SpawnConfig) validate(name string, policies ...string) []error {
	var errs []error

	allowed := false
	for _, p := range policies {
		if s.Policy == p {
			allowed = true
		}
	}
	if !allowed {
		errs = append(errs, fmt.Errorf("%s: policy %q not one of %v", name, s.Policy, policies))
	}
	if s.Chance < 0 || s.Chance > 1 {
		errs = append(errs, fmt.Errorf("%s: chance %v outside [0, 1]", name, s.Chance))
	}
	if s.Cap < 0 || s.Initial < 0 || s.Initial > s.Cap {
		errs = append(errs, fmt.Errorf("%s: need 0 <= initial (%d) <= cap (%d)", name, s.Initial, s.Cap))
	}
	if s.Policy == PolicyPaired && s.Every <= 0 {
		errs = append(errs, fmt.Errorf("%s: every must be positive for the paired policy", name))
	}
	if s.Policy == PolicyTimer && (s.MinDelay <= 0 || s.MinDelay > s.MaxDelay) {
		errs = append(errs, fmt.Errorf("%s: need 0 < min_delay (%v) <= max_delay (%v)", name, s.MinDelay, s.MaxDelay))
	}
	if s.Offscreen != OffscreenRecycle && s.Offscreen != OffscreenDestroy {
		errs = append(errs, fmt.Errorf("%s: offscreen %q must be %q or %q", name, s.Offscreen, OffscreenRecycle, OffscreenDestroy))
	}
	if s.Size <= 0 {
		errs = append(errs, fmt.Errorf("%s: size must be positive", name))
	}
	return errs
}

// ApplyRushPreset modifies the config based on a difficulty preset.
func ApplyRushPreset(cfg *RushConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust how generous the field is
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Cap = 12
		cfg.Bonuses.Chance *= 2
	case DifficultyHard:
		cfg.Obstacles.Cap = 30
		cfg.Bonuses.Chance /= 2
		cfg.Collectibles.Cap = max(cfg.Collectibles.Initial, cfg.Collectibles.Cap/2)
	}
}
