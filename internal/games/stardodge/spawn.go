package stardodge

import (
	"math"
	"time"

	"github.com/vovakirdan/ball-arcade/internal/core"
)

// Random is the source of uniform values in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// DefaultEnemyDirection is used when a sampled direction is the zero vector.
var DefaultEnemyDirection = core.Vec2{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}

// SpawnTimer is a repeating timer. It finishes at most once per Tick and
// restarts from zero when it does, dropping any overshoot.
type SpawnTimer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewSpawnTimer creates a timer with the given period.
func NewSpawnTimer(period time.Duration) *SpawnTimer {
	return &SpawnTimer{period: period}
}

// Tick advances the timer by dt and reports whether it finished this tick.
func (t *SpawnTimer) Tick(dt time.Duration) bool {
	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}
	t.elapsed = 0
	return true
}

// Elapsed returns time accumulated toward the next firing.
func (t *SpawnTimer) Elapsed() time.Duration {
	return t.elapsed
}

// SetPeriod changes the period without resetting accumulated time.
func (t *SpawnTimer) SetPeriod(p time.Duration) {
	t.period = p
}

// RandomPosition samples a point uniformly over [0, w) x [0, h).
func RandomPosition(rng Random, w, h float64) core.Vec2 {
	return core.Vec2{X: rng.Float64() * w, Y: rng.Float64() * h}
}

// RandomDirection samples a unit vector from two uniform draws.
// Both components are non-negative, so new enemies always head down and right.
func RandomDirection(rng Random) core.Vec2 {
	v := core.Vec2{X: rng.Float64(), Y: rng.Float64()}
	if n, ok := v.Normalize(); ok {
		return n
	}
	return DefaultEnemyDirection
}
