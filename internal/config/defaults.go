package config

import (
	_ "embed"
)

//go:embed defaults/rush.yaml
var defaultRushYAML []byte

// DefaultRushConfig returns the built-in configuration.
// It mirrors defaults/rush.yaml and is used when the embedded file cannot be parsed.
func DefaultRushConfig() RushConfig {
	return RushConfig{
		Field: FieldConfig{
			Width:       800,
			Height:      600,
			SpawnMinX:   50,
			SpawnMaxX:   750,
			SpawnY:      -50,
			BottomBound: 600,
			ScrollSpeed: 2,
		},
		Player: PlayerConfig{
			StartX: 400,
			Y:      550,
			Width:  60,
			Height: 40,
			Speed:  160,
		},
		Obstacles: SpawnConfig{
			Policy:    PolicyChance,
			Chance:    0.036,
			Cap:       20,
			Speed:     200,
			Size:      36,
			Offscreen: OffscreenDestroy,
		},
		Collectibles: SpawnConfig{
			Policy:    PolicyPaired,
			Every:     2,
			Cap:       10,
			Initial:   6,
			InitialX:  50,
			InitialDX: 150,
			Speed:     150,
			Size:      36,
			Offscreen: OffscreenRecycle,
		},
		Bonuses: SpawnConfig{
			Policy:    PolicyChance,
			Chance:    0.002,
			Cap:       5,
			MinDelay:  10,
			MaxDelay:  25,
			Speed:     100,
			Size:      36,
			Offscreen: OffscreenDestroy,
		},
		Scoring: ScoringConfig{
			CollectiblePoints: 100,
			BonusLives:        1,
			StartLives:        0,
			SurvivalPoints:    1,
			SurvivalEveryMS:   200,
			VictoryScore:      1500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				ChanceMultiplier: 1.0,
			},
		},
	}
}
