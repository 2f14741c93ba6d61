package stardodge

import (
	"errors"
	"time"

	"github.com/vovakirdan/ball-arcade/internal/core"
)

var (
	// ErrNoViewport is returned when the arena has no usable size.
	ErrNoViewport = errors.New("stardodge: viewport is missing or empty")
	// ErrNoRandom is returned when no random source was supplied.
	ErrNoRandom = errors.New("stardodge: random source is required")
)

// Options holds the tunable parameters of a World.
type Options struct {
	PlayerSpeed float64
	PlayerSize  float64

	EnemySpeed       float64
	EnemySize        float64
	InitialEnemies   int
	EnemySpawnPeriod time.Duration
	ConfineEnemies   bool

	StarSize        float64
	InitialStars    int
	StarSpawnPeriod time.Duration
}

// DefaultOptions returns the stock gameplay constants.
func DefaultOptions() Options {
	return Options{
		PlayerSpeed:      PlayerSpeed,
		PlayerSize:       PlayerSize,
		EnemySpeed:       EnemiesSpeed,
		EnemySize:        EnemySize,
		InitialEnemies:   NumberOfEnemies,
		EnemySpawnPeriod: EnemySpawnTime,
		StarSize:         StarSize,
		InitialStars:     NumberOfStars,
		StarSpawnPeriod:  StarSpawnTime,
	}
}

// TickResult reports what happened during one World.Tick.
type TickResult struct {
	Cues          []core.Cue
	Events        []core.Event
	ExitRequested bool
}

// World owns every entity plus the timers, score and random source.
type World struct {
	opts   Options
	bounds Bounds
	rng    Random

	players   Arena[Player]
	player    EntityID
	hasPlayer bool
	enemies   Arena[Enemy]
	stars     Arena[Star]

	starTimer  *SpawnTimer
	enemyTimer *SpawnTimer
	enemySpeed float64

	score   Score
	ticks   uint64
	elapsed time.Duration
}

// NewWorld creates a world and runs the startup spawns: the player at the
// arena center, then the initial enemies and stars at random positions.
func NewWorld(opts Options, bounds Bounds, rng Random) (*World, error) {
	if bounds == nil {
		return nil, ErrNoViewport
	}
	w, h := bounds.Size()
	if w <= 0 || h <= 0 {
		return nil, ErrNoViewport
	}
	if rng == nil {
		return nil, ErrNoRandom
	}

	world := &World{
		opts:       opts,
		bounds:     bounds,
		rng:        rng,
		starTimer:  NewSpawnTimer(opts.StarSpawnPeriod),
		enemyTimer: NewSpawnTimer(opts.EnemySpawnPeriod),
		enemySpeed: opts.EnemySpeed,
	}

	world.SpawnPlayer(core.V2(w/2, h/2))
	for range opts.InitialEnemies {
		world.spawnRandomEnemy(w, h)
	}
	for range opts.InitialStars {
		world.spawnRandomStar(w, h)
	}
	return world, nil
}

// Tick advances the simulation by dt.
//
// Order: player movement, player confinement, enemy movement, enemy
// reflection, optional enemy confinement, enemy hits player, player
// collects stars, spawn timers. A removed player skips every later
// player system in the same tick.
func (w *World) Tick(dt time.Duration, in core.InputFrame) TickResult {
	var res TickResult
	w.score.ClearChanged()

	if in.Has(core.ActionExit) {
		res.ExitRequested = true
		res.Events = append(res.Events, core.Event{Kind: core.EventExitRequested, Score: w.Score()})
	}

	width, height := w.bounds.Size()
	if width <= 0 || height <= 0 {
		return res
	}
	w.ticks++
	w.elapsed += dt
	secs := dt.Seconds()

	w.movePlayer(in, secs, width, height)
	w.moveEnemies(secs, width, height, &res)
	w.enemyHitPlayer(&res)
	w.playerHitStars(&res)
	w.runSpawners(dt, width, height, &res)

	if w.score.Changed() {
		res.Events = append(res.Events, core.Event{Kind: core.EventScoreChanged, Score: w.Score()})
	}
	return res
}

func (w *World) movePlayer(in core.InputFrame, secs, width, height float64) {
	p, ok := w.Player()
	if !ok {
		return
	}
	dir := InputDirection(in)
	p.Pos = MovePlayer(p.Pos, dir, w.opts.PlayerSpeed, secs)
	p.Pos = Confine(p.Pos, w.opts.PlayerSize/2, width, height)
}

func (w *World) moveEnemies(secs, width, height float64, res *TickResult) {
	half := w.opts.EnemySize / 2
	for _, e := range w.enemies.All() {
		e.Pos = MoveEnemy(e.Pos, e.Dir, w.enemySpeed, secs)
	}
	for _, e := range w.enemies.All() {
		dir, changed := Reflect(e.Pos, e.Dir, half, width, height)
		if !changed {
			continue
		}
		e.Dir = dir
		if w.rng.Float64() > 0.5 {
			res.Cues = append(res.Cues, core.CueBounceA)
		} else {
			res.Cues = append(res.Cues, core.CueBounceB)
		}
	}
	if w.opts.ConfineEnemies {
		for _, e := range w.enemies.All() {
			e.Pos = Confine(e.Pos, half, width, height)
		}
	}
}

func (w *World) enemyHitPlayer(res *TickResult) {
	p, ok := w.Player()
	if !ok {
		return
	}
	if _, hit := PlayerVsEnemies(p.Pos, w.opts.PlayerSize/2, w.opts.EnemySize/2, &w.enemies); !hit {
		return
	}
	w.RemovePlayer()
	res.Cues = append(res.Cues, core.CueExplosion)
	res.Events = append(res.Events, core.Event{Kind: core.EventGameOver, Score: w.Score()})
}

func (w *World) playerHitStars(res *TickResult) {
	p, ok := w.Player()
	if !ok {
		return
	}
	for _, id := range PlayerVsStars(p.Pos, w.opts.PlayerSize/2, w.opts.StarSize/2, &w.stars) {
		w.stars.Remove(id)
		w.score.Increment()
		res.Cues = append(res.Cues, core.CueCollect)
		res.Events = append(res.Events, core.Event{Kind: core.EventStarCollected, Score: w.Score()})
	}
}

func (w *World) runSpawners(dt time.Duration, width, height float64, res *TickResult) {
	if w.starTimer.Tick(dt) {
		w.spawnRandomStar(width, height)
		res.Events = append(res.Events, core.Event{Kind: core.EventStarSpawned, Score: w.Score()})
	}
	if w.enemyTimer.Tick(dt) {
		w.spawnRandomEnemy(width, height)
		res.Events = append(res.Events, core.Event{Kind: core.EventEnemySpawned, Score: w.Score()})
	}
}

func (w *World) spawnRandomStar(width, height float64) EntityID {
	return w.SpawnStar(RandomPosition(w.rng, width, height))
}

func (w *World) spawnRandomEnemy(width, height float64) EntityID {
	pos := RandomPosition(w.rng, width, height)
	return w.SpawnEnemy(pos, RandomDirection(w.rng))
}

// SpawnPlayer places the player at pos, replacing any existing player.
func (w *World) SpawnPlayer(pos core.Vec2) EntityID {
	w.RemovePlayer()
	w.player = w.players.Insert(Player{Pos: pos})
	w.hasPlayer = true
	return w.player
}

// RemovePlayer despawns the player. It reports whether one existed.
func (w *World) RemovePlayer() bool {
	if !w.hasPlayer {
		return false
	}
	w.hasPlayer = false
	return w.players.Remove(w.player)
}

// SpawnEnemy adds an enemy. A zero dir falls back to DefaultEnemyDirection.
func (w *World) SpawnEnemy(pos, dir core.Vec2) EntityID {
	n, ok := dir.Normalize()
	if !ok {
		n = DefaultEnemyDirection
	}
	return w.enemies.Insert(Enemy{Pos: pos, Dir: n})
}

// SpawnStar adds a star at pos.
func (w *World) SpawnStar(pos core.Vec2) EntityID {
	return w.stars.Insert(Star{Pos: pos})
}

// Player returns the live player, if any.
func (w *World) Player() (*Player, bool) {
	if !w.hasPlayer {
		return nil, false
	}
	return w.players.Get(w.player)
}

// Enemies exposes the enemy arena for rendering.
func (w *World) Enemies() *Arena[Enemy] {
	return &w.enemies
}

// Stars exposes the star arena for rendering.
func (w *World) Stars() *Arena[Star] {
	return &w.stars
}

// Score returns the current score.
func (w *World) Score() int {
	return int(w.score.Value())
}

// Elapsed returns the simulated time played so far, independent of how
// many ticks it took.
func (w *World) Elapsed() time.Duration {
	return w.elapsed
}

// Options returns the options the world was built with.
func (w *World) Options() Options {
	return w.opts
}

// SetEnemySpeed changes the speed of every enemy from the next tick on.
func (w *World) SetEnemySpeed(speed float64) {
	w.enemySpeed = speed
}

// SetEnemySpawnPeriod changes the enemy spawn period, keeping accumulated time.
func (w *World) SetEnemySpawnPeriod(p time.Duration) {
	w.enemyTimer.SetPeriod(p)
}

// Refit pulls every entity back inside the current bounds, used after the
// arena shrinks so nothing is left stranded outside it.
func (w *World) Refit() {
	width, height := w.bounds.Size()
	if width <= 0 || height <= 0 {
		return
	}
	if p, ok := w.Player(); ok {
		p.Pos = Confine(p.Pos, w.opts.PlayerSize/2, width, height)
	}
	for _, e := range w.enemies.All() {
		e.Pos = Confine(e.Pos, w.opts.EnemySize/2, width, height)
	}
	for _, s := range w.stars.All() {
		s.Pos = Confine(s.Pos, w.opts.StarSize/2, width, height)
	}
}
