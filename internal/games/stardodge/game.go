package stardodge

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/ball-arcade/internal/config"
	"github.com/vovakirdan/ball-arcade/internal/core"
	"github.com/vovakirdan/ball-arcade/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "stardodge"

const hudRows = 1

const (
	playerGlyph = '█'
	enemyGlyph  = '▒'
	starGlyph   = '*'
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts a World to the arcade platform: it maps terminal cells to
// world units, owns pause and restart, and draws the arena.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.StarDodgeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	viewport *Viewport
	world    *World

	paused   bool
	tooSmall bool
}

// New creates a Star Dodge game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Dodge"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadStarDodge(configPath)
	if err != nil {
		cfg = config.DefaultStarDodgeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyStarDodgePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.viewport = &Viewport{}
	g.world = nil
	g.paused = false
	g.layout()
}

// Resize follows a terminal resize without restarting the game.
func (g *Game) Resize(w, h int) {
	if w == g.runtime.ScreenW && h == g.runtime.ScreenH {
		return
	}
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout()
	if g.world != nil && !g.tooSmall {
		g.world.Refit()
	}
}

// layout recomputes the world size from the screen and creates the world
// the first time the screen is large enough.
func (g *Game) layout() {
	vp := g.cfg.Viewport
	cols := g.runtime.ScreenW
	rows := g.runtime.ScreenH - hudRows

	g.viewport.W = float64(max(cols, 0)) * vp.CellWidth
	g.viewport.H = float64(max(rows, 0)) * vp.CellHeight
	g.tooSmall = cols < vp.MinCols || rows < vp.MinRows

	if g.tooSmall || g.world != nil {
		return
	}
	world, err := NewWorld(g.options(), g.viewport, g.rng)
	if err != nil {
		g.tooSmall = true
		return
	}
	g.world = world
	g.applyDifficulty()
}

func (g *Game) options() Options {
	return Options{
		PlayerSpeed:      g.cfg.Player.Speed,
		PlayerSize:       g.cfg.Player.Size,
		EnemySpeed:       g.cfg.Enemies.Speed,
		EnemySize:        g.cfg.Enemies.Size,
		InitialEnemies:   g.cfg.Enemies.InitialCount,
		EnemySpawnPeriod: seconds(g.cfg.Enemies.SpawnPeriod),
		ConfineEnemies:   g.cfg.Enemies.Confine,
		StarSize:         g.cfg.Stars.Size,
		InitialStars:     g.cfg.Stars.InitialCount,
		StarSpawnPeriod:  seconds(g.cfg.Stars.SpawnPeriod),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func (g *Game) applyDifficulty() {
	score, elapsed := g.world.Score(), g.world.Elapsed()
	g.world.SetEnemySpeed(g.difficulty.Speed(g.cfg.Enemies.Speed, score, elapsed))
	g.world.SetEnemySpawnPeriod(seconds(g.difficulty.SpawnPeriod(g.cfg.Enemies.SpawnPeriod, score, elapsed)))
}

// Step advances the game by dt of real time.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	state := g.State()

	if in.Has(core.ActionRestart) && state.GameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.world != nil && !state.GameOver {
		g.paused = !g.paused
	}

	if g.world == nil || g.tooSmall || g.paused {
		res := core.StepResult{State: g.State()}
		if in.Has(core.ActionExit) {
			res.ExitRequested = true
			res.Events = []core.Event{{Kind: core.EventExitRequested, Score: res.State.Score}}
		}
		return res
	}

	tick := g.world.Tick(dt, in)
	g.applyDifficulty()

	return core.StepResult{
		State:         g.State(),
		Cues:          tick.Cues,
		Events:        tick.Events,
		ExitRequested: tick.ExitRequested,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Paused: g.paused}
	}
	_, alive := g.world.Player()
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: !alive,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil || g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", g.cfg.Viewport.MinCols, g.cfg.Viewport.MinRows+hudRows))
		return
	}

	snap := g.world.Snapshot()
	g.renderHUD(dst, snap)

	opts := g.world.Options()
	for _, pos := range snap.Stars {
		g.drawBall(dst, pos, opts.StarSize, starGlyph, core.ColorBrightYellow)
	}
	for _, e := range snap.Enemies {
		g.drawBall(dst, e.Pos, opts.EnemySize, enemyGlyph, core.ColorRed)
	}
	if snap.PlayerAlive {
		g.drawBall(dst, snap.Player, opts.PlayerSize, playerGlyph, core.ColorBrightBlue)
	}

	switch {
	case !snap.PlayerAlive:
		g.renderOverlay(dst, "Game Over!", fmt.Sprintf("Score: %d  R restart  Esc exit", snap.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Star Dodge  Score: %d  Enemies: %d  Stars: %d",
		snap.Score, len(snap.Enemies), len(snap.Stars))
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	hint := "P pause  M mute  Esc exit "
	if x := dst.Width() - len(hint); x > len(hud) {
		dst.DrawTextColored(x, 0, hint, core.ColorGray)
	}
}

// drawBall fills the cells covered by a ball of the given diameter,
// centered on the cell that holds pos.
func (g *Game) drawBall(dst *core.Screen, pos core.Vec2, size float64, r rune, c core.Color) {
	vp := g.cfg.Viewport
	cols := max(1, int(math.Round(size/vp.CellWidth)))
	rows := max(1, int(math.Round(size/vp.CellHeight)))
	cx := int(math.Floor(pos.X / vp.CellWidth))
	cy := int(math.Floor(pos.Y/vp.CellHeight)) + hudRows

	left, top := cx-cols/2, cy-rows/2
	for y := top; y < top+rows; y++ {
		if y < hudRows {
			continue
		}
		for x := left; x < left+cols; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
