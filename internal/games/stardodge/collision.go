package stardodge

import "github.com/vovakirdan/ball-arcade/internal/core"

// Collides reports whether two circles overlap. Touching circles do not collide.
func Collides(a, b core.Vec2, ra, rb float64) bool {
	return core.Distance(a, b) < ra+rb
}

// PlayerVsEnemies returns the first enemy, in arena order, overlapping the player.
func PlayerVsEnemies(player core.Vec2, playerRadius, enemyRadius float64, enemies *Arena[Enemy]) (EntityID, bool) {
	for id, e := range enemies.All() {
		if Collides(player, e.Pos, playerRadius, enemyRadius) {
			return id, true
		}
	}
	return EntityID{}, false
}

// PlayerVsStars returns every star overlapping the player.
func PlayerVsStars(player core.Vec2, playerRadius, starRadius float64, stars *Arena[Star]) []EntityID {
	var hits []EntityID
	for id, s := range stars.All() {
		if Collides(player, s.Pos, playerRadius, starRadius) {
			hits = append(hits, id)
		}
	}
	return hits
}
