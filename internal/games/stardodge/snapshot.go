package stardodge

import (
	"time"

	"github.com/vovakirdan/ball-arcade/internal/core"
)

// Snapshot is a value copy of the world state, in arena order.
type Snapshot struct {
	Ticks       uint64
	Elapsed     time.Duration
	Score       int
	PlayerAlive bool
	Player      core.Vec2
	Enemies     []Enemy
	Stars       []core.Vec2
	StarTimer   time.Duration
	EnemyTimer  time.Duration
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Ticks:      w.ticks,
		Elapsed:    w.elapsed,
		Score:      w.Score(),
		StarTimer:  w.starTimer.Elapsed(),
		EnemyTimer: w.enemyTimer.Elapsed(),
		Enemies:    make([]Enemy, 0, w.enemies.Len()),
		Stars:      make([]core.Vec2, 0, w.stars.Len()),
	}
	if p, ok := w.Player(); ok {
		s.PlayerAlive = true
		s.Player = p.Pos
	}
	for _, e := range w.enemies.All() {
		s.Enemies = append(s.Enemies, *e)
	}
	for _, st := range w.stars.All() {
		s.Stars = append(s.Stars, st.Pos)
	}
	return s
}
