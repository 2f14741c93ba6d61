package stardodge

import "github.com/vovakirdan/ball-arcade/internal/core"

// Bounds reports the current arena size in world units.
type Bounds interface {
	Size() (w, h float64)
}

// Viewport is a fixed-size Bounds. The game adapter updates it in place on resize.
type Viewport struct {
	W, H float64
}

// Size implements Bounds.
func (v *Viewport) Size() (float64, float64) {
	return v.W, v.H
}

// Confine clamps each axis of pos to [half, extent-half].
// When the arena is narrower than the entity the lower bound wins.
func Confine(pos core.Vec2, half, w, h float64) core.Vec2 {
	return core.Vec2{
		X: core.ClampF(pos.X, half, w-half),
		Y: core.ClampF(pos.Y, half, h-half),
	}
}

// Reflect negates each direction component whose axis is out of bounds.
// The position is not corrected. changed reports whether any axis flipped.
func Reflect(pos, dir core.Vec2, half, w, h float64) (out core.Vec2, changed bool) {
	out = dir
	if pos.X < half || pos.X > w-half {
		out.X = -out.X
		changed = true
	}
	if pos.Y < half || pos.Y > h-half {
		out.Y = -out.Y
		changed = true
	}
	return out, changed
}
