package config

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a fall speed from base to base * (1 + speed_multiplier).
// With progression disabled the base speed is returned unchanged.
func (d *DifficultyManager) Speed(base float64, score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return base * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Chance scales a per-tick spawn probability, capped at 1.
// With progression disabled the base chance is returned unchanged.
func (d *DifficultyManager) Chance(base float64, score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return clampF(base*(1.0+d.Level(score, ticks)*d.cfg.Scaling.ChanceMultiplier), 0.0, 1.0)
}

func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
