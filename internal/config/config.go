// Package config provides YAML/TOML game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// StarDodgeConfig contains all configuration for the Star Dodge game.
type StarDodgeConfig struct {
	Player     StarDodgePlayer   `yaml:"player" toml:"player"`
	Enemies    StarDodgeEnemies  `yaml:"enemies" toml:"enemies"`
	Stars      StarDodgeStars    `yaml:"stars" toml:"stars"`
	Viewport   StarDodgeViewport `yaml:"viewport" toml:"viewport"`
	Difficulty DifficultyConfig  `yaml:"difficulty" toml:"difficulty"`
}

// StarDodgePlayer defines player parameters for Star Dodge.
type StarDodgePlayer struct {
	Speed float64 `yaml:"speed" toml:"speed"` // World units per second
	Size  float64 `yaml:"size" toml:"size"`   // Diameter in world units
}

// StarDodgeEnemies defines enemy parameters for Star Dodge.
type StarDodgeEnemies struct {
	Speed        float64 `yaml:"speed" toml:"speed"`
	Size         float64 `yaml:"size" toml:"size"`
	InitialCount int     `yaml:"initial_count" toml:"initial_count"`
	SpawnPeriod  float64 `yaml:"spawn_period" toml:"spawn_period"` // Seconds
	Confine      bool    `yaml:"confine" toml:"confine"`
}

// StarDodgeStars defines star parameters for Star Dodge.
type StarDodgeStars struct {
	Size         float64 `yaml:"size" toml:"size"`
	InitialCount int     `yaml:"initial_count" toml:"initial_count"`
	SpawnPeriod  float64 `yaml:"spawn_period" toml:"spawn_period"` // Seconds
}

// StarDodgeViewport maps world units onto terminal cells.
type StarDodgeViewport struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
	MinCols    int     `yaml:"min_cols" toml:"min_cols"`
	MinRows    int     `yaml:"min_rows" toml:"min_rows"`
}

// Validate reports the first configuration value that would break the simulation.
func (c StarDodgeConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}

	positive("player.speed", c.Player.Speed)
	positive("player.size", c.Player.Size)
	positive("enemies.size", c.Enemies.Size)
	positive("enemies.spawn_period", c.Enemies.SpawnPeriod)
	positive("stars.size", c.Stars.Size)
	positive("stars.spawn_period", c.Stars.SpawnPeriod)
	positive("viewport.cell_width", c.Viewport.CellWidth)
	positive("viewport.cell_height", c.Viewport.CellHeight)

	if c.Enemies.Speed < 0 {
		errs = append(errs, fmt.Errorf("enemies.speed must not be negative, got %g", c.Enemies.Speed))
	}
	if c.Enemies.InitialCount < 0 {
		errs = append(errs, fmt.Errorf("enemies.initial_count must not be negative, got %d", c.Enemies.InitialCount))
	}
	if c.Stars.InitialCount < 0 {
		errs = append(errs, fmt.Errorf("stars.initial_count must not be negative, got %d", c.Stars.InitialCount))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score, or seconds of play, at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Fraction added to enemy speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction" toml:"spawn_reduction"`   // Fraction removed from enemy spawn period at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// Unknown or empty strings return "" and false, meaning "use config default".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
