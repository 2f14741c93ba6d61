// Package stardodge implements Star Dodge: steer a ball around the arena,
// collect stars and avoid the bouncing enemy balls.
package stardodge

import (
	"time"

	"github.com/vovakirdan/ball-arcade/internal/core"
)

// Gameplay constants. World units are pixels with y growing downward.
const (
	EnemiesSpeed    = 200.0
	PlayerSpeed     = 500.0
	NumberOfEnemies = 4
	PlayerSize      = 64.0
	EnemySize       = 64.0
	NumberOfStars   = 10
	StarSize        = 30.0

	StarSpawnTime  = 1 * time.Second
	EnemySpawnTime = 5 * time.Second
)

// Player is the user-controlled ball.
type Player struct {
	Pos core.Vec2
}

// Enemy is a hostile ball moving in a straight line until it hits a wall.
type Enemy struct {
	Pos core.Vec2
	Dir core.Vec2 // Unit length
}

// Star is a collectible worth one point.
type Star struct {
	Pos core.Vec2
}
