package config

import (
	_ "embed"
)

//go:embed defaults/stardodge.yaml
var defaultStarDodgeYAML []byte

// DefaultStarDodgeConfig returns the default Star Dodge configuration.
// It mirrors defaults/stardodge.yaml and is used when the embed cannot be parsed.
func DefaultStarDodgeConfig() StarDodgeConfig {
	return StarDodgeConfig{
		Player: StarDodgePlayer{
			Speed: 500.0,
			Size:  64.0,
		},
		Enemies: StarDodgeEnemies{
			Speed:        200.0,
			Size:         64.0,
			InitialCount: 4,
			SpawnPeriod:  5.0,
			Confine:      false,
		},
		Stars: StarDodgeStars{
			Size:         30.0,
			InitialCount: 10,
			SpawnPeriod:  1.0,
		},
		Viewport: StarDodgeViewport{
			CellWidth:  16.0,
			CellHeight: 32.0,
			MinCols:    20,
			MinRows:    8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  0.5,
			},
		},
	}
}
