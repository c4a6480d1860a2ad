// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// RushConfig contains all configuration for Carrot Rush.
type RushConfig struct {
	Field        FieldConfig      `yaml:"field"`
	Player       PlayerConfig     `yaml:"player"`
	Obstacles    SpawnConfig      `yaml:"obstacles"`
	Collectibles SpawnConfig      `yaml:"collectibles"`
	Bonuses      SpawnConfig      `yaml:"bonuses"`
	Scoring      ScoringConfig    `yaml:"scoring"`
	Difficulty   DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical play area. Positions are in logical pixels,
// independent of the terminal size.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnMinX   float64 `yaml:"spawn_min_x"`
	SpawnMaxX   float64 `yaml:"spawn_max_x"`
	SpawnY      float64 `yaml:"spawn_y"`      // y of new and recycled entities (above the top edge)
	BottomBound float64 `yaml:"bottom_bound"` // entities below this y leave the field
	ScrollSpeed float64 `yaml:"scroll_speed"` // background offset per tick
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // horizontal speed in px/s
}

// Spawn policies.
const (
	PolicyChance = "chance" // Bernoulli trial every tick
	PolicyTimer  = "timer"  // recurring timer with a random interval
	PolicyPaired = "paired" // every Nth successful obstacle spawn
	PolicyFixed  = "fixed"  // only the initial set, never spawned again
)

// Off-screen policies.
const (
	OffscreenRecycle = "recycle"
	OffscreenDestroy = "destroy"
)

// SpawnConfig defines how one kind of falling entity appears and leaves.
type SpawnConfig struct {
	Policy    string  `yaml:"policy"`
	Chance    float64 `yaml:"chance"`     // per-tick probability (chance policy)
	Every     int     `yaml:"every"`      // obstacle spawns per collectible (paired policy)
	Cap       int     `yaml:"cap"`        // maximum concurrently active entities
	Initial   int     `yaml:"initial"`    // entities placed at reset
	InitialX  float64 `yaml:"initial_x"`  // x of the first initial entity
	InitialDX float64 `yaml:"initial_dx"` // x step between initial entities
	MinDelay  float64 `yaml:"min_delay"`  // seconds (timer policy)
	MaxDelay  float64 `yaml:"max_delay"`  // seconds (timer policy)
	Speed     float64 `yaml:"speed"`      // fall speed in px/s
	SpeedJit  float64 `yaml:"speed_jitter"`
	Size      float64 `yaml:"size"`
	Offscreen string  `yaml:"offscreen"`
}

// ScoringConfig defines points, lives and the survival ticker.
type ScoringConfig struct {
	CollectiblePoints int `yaml:"collectible_points"`
	BonusLives        int `yaml:"bonus_lives"`
	StartLives        int `yaml:"start_lives"`
	SurvivalPoints    int `yaml:"survival_points"`
	SurvivalEveryMS   int `yaml:"survival_every_ms"`
	VictoryScore      int `yaml:"victory_score"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to fall speed at max difficulty
	ChanceMultiplier float64 `yaml:"chance_multiplier"` // added to obstacle chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty values return "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
