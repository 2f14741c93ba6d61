package config

import (
	"math"
	"testing"
	"time"
)

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(DefaultStarDodgeConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(200, 500, time.Hour); got != 200 {
		t.Errorf("Speed() = %g, expected base 200", got)
	}
	if got := d.SpawnPeriod(5, 500, time.Hour); got != 5 {
		t.Errorf("SpawnPeriod() = %g, expected base 5", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, SpawnReduction: 0.5},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score      int
		wantLevel  float64
		wantSpeed  float64
		wantPeriod float64
	}{
		{0, 0.0, 200, 5.0},
		{50, 0.5, 300, 3.75},
		{100, 1.0, 400, 2.5},
		{1000, 1.0, 400, 2.5}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.wantLevel) > 1e-9 {
			t.Errorf("Level(%d) = %g, expected %g", tc.score, got, tc.wantLevel)
		}
		if got := d.Speed(200, tc.score, 0); math.Abs(got-tc.wantSpeed) > 1e-9 {
			t.Errorf("Speed(%d) = %g, expected %g", tc.score, got, tc.wantSpeed)
		}
		if got := d.SpawnPeriod(5, tc.score, 0); math.Abs(got-tc.wantPeriod) > 1e-9 {
			t.Errorf("SpawnPeriod(%d) = %g, expected %g", tc.score, got, tc.wantPeriod)
		}
	}
}

func TestDifficultyInitialLevelInterpolation(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 60},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %g, expected 0.5", got)
	}
	if got := d.Level(0, 30*time.Second); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level halfway = %g, expected 0.75", got)
	}
}

func TestDifficultyTimeProgressionIgnoresFrameRate(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 60},
	}
	d := NewDifficultyManager(cfg)

	// 30s of play is halfway whether it took 900 frames at 30fps or 3600 at 120fps
	var slow, fast time.Duration
	for range 900 {
		slow += time.Second / 30
	}
	for range 3600 {
		fast += time.Second / 120
	}
	if a, b := d.Level(0, slow), d.Level(0, fast); math.Abs(a-b) > 1e-6 || math.Abs(a-0.5) > 1e-6 {
		t.Errorf("Level after 30s = %g at 30fps and %g at 120fps, expected 0.5 both", a, b)
	}
}

func TestDifficultySpawnPeriodFloor(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:     ScalingConfig{SpawnReduction: 5.0},
	}
	d := NewDifficultyManager(cfg)

	got := d.SpawnPeriod(5, 10, 0)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("SpawnPeriod() = %g, expected floor of 0.5", got)
	}
}

func TestDifficultyInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{InitialLevel: 3})
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("Level() = %g, expected clamp to 1", got)
	}
}

func TestDifficultyNoneProgressionIsDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "none", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("progression type none should disable progression")
	}
	if got := d.Level(1000, time.Hour); got != 0.2 {
		t.Errorf("Level() = %g, expected initial 0.2", got)
	}
}
