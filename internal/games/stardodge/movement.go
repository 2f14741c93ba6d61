package stardodge

import "github.com/vovakirdan/ball-arcade/internal/core"

// InputDirection converts held directional actions into a unit vector,
// or the zero vector when nothing (or only opposing keys) is held.
func InputDirection(in core.InputFrame) core.Vec2 {
	var dir core.Vec2
	if in.Holding(core.ActionLeft) {
		dir.X--
	}
	if in.Holding(core.ActionRight) {
		dir.X++
	}
	if in.Holding(core.ActionUp) {
		dir.Y--
	}
	if in.Holding(core.ActionDown) {
		dir.Y++
	}
	if n, ok := dir.Normalize(); ok {
		return n
	}
	return core.Vec2{}
}

// MovePlayer advances pos by dir*speed*dt. A zero dir leaves pos untouched.
func MovePlayer(pos, dir core.Vec2, speed, dt float64) core.Vec2 {
	if dir.IsZero() {
		return pos
	}
	return pos.Add(dir.Scale(speed * dt))
}

// MoveEnemy advances pos along its stored direction.
func MoveEnemy(pos, dir core.Vec2, speed, dt float64) core.Vec2 {
	return pos.Add(dir.Scale(speed * dt))
}
