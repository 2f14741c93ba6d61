package stardodge

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/ball-arcade/internal/core"
	"github.com/vovakirdan/ball-arcade/internal/registry"
)

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 42})
	return g
}

func pressed(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("%q should be registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Star Dodge" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.Resizable); !ok {
		t.Error("game should follow terminal resizes")
	}
}

func TestGameResetBuildsWorld(t *testing.T) {
	g := newTestGame(t, 80, 24)

	if g.world == nil || g.tooSmall {
		t.Fatal("80x24 should be large enough to play")
	}
	if g.viewport.W != 80*16 || g.viewport.H != 23*32 {
		t.Errorf("viewport = %vx%v, expected 1280x736", g.viewport.W, g.viewport.H)
	}
	if g.world.Enemies().Len() != NumberOfEnemies || g.world.Stars().Len() != NumberOfStars {
		t.Errorf("startup spawns: %d enemies, %d stars", g.world.Enemies().Len(), g.world.Stars().Len())
	}
	if g.world.enemySpeed != EnemiesSpeed {
		t.Errorf("enemy speed = %v, expected %v with difficulty off", g.world.enemySpeed, EnemiesSpeed)
	}
	if st := g.State(); st.GameOver || st.Paused || st.Score != 0 {
		t.Errorf("fresh state = %+v", st)
	}
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, 10, 5)

	if !g.tooSmall || g.world != nil {
		t.Fatal("10x5 should be too small")
	}

	res := g.Step(16*time.Millisecond, pressed(core.ActionExit))
	if !res.ExitRequested {
		t.Error("Esc should still request exit while the window is too small")
	}

	screen := core.NewScreen(40, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "small") {
		t.Errorf("expected too-small overlay, got:\n%s", screen.String())
	}

	g.Resize(80, 24)
	if g.tooSmall || g.world == nil {
		t.Error("growing the window should start the game")
	}
}

func TestGamePauseStopsSimulation(t *testing.T) {
	g := newTestGame(t, 80, 24)

	g.Step(16*time.Millisecond, pressed(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}
	before := g.world.Snapshot().Ticks
	g.Step(16*time.Millisecond, core.NewInputFrame())
	if g.world.Snapshot().Ticks != before {
		t.Error("world should not tick while paused")
	}

	g.Step(16*time.Millisecond, pressed(core.ActionPause))
	if g.State().Paused {
		t.Error("P should unpause")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 80, 24)

	g.Step(16*time.Millisecond, pressed(core.ActionRestart))
	if g.world.Snapshot().Ticks != 1 {
		t.Error("R should be ignored while playing")
	}

	g.world.RemovePlayer()
	if !g.State().GameOver {
		t.Fatal("missing player should mean game over")
	}
	g.Step(16*time.Millisecond, pressed(core.ActionRestart))

	if g.State().GameOver {
		t.Error("R should restart after game over")
	}
	if g.world.Snapshot().Ticks != 0 {
		t.Errorf("restart should build a fresh world, Ticks = %d", g.world.Snapshot().Ticks)
	}
}

func TestGameStepForwardsCues(t *testing.T) {
	g := newTestGame(t, 80, 24)
	removeAll(g.world.Enemies())
	removeAll(g.world.Stars())
	p, _ := g.world.Player()
	g.world.SpawnStar(p.Pos)

	res := g.Step(0, core.NewInputFrame())

	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	if hasCue(res.Cues, core.CueCollect) != 1 {
		t.Errorf("cues = %v, expected one collect cue", res.Cues)
	}
	if !hasEvent(res.Events, core.EventStarCollected) {
		t.Errorf("events = %v, expected star_collected", res.Events)
	}
}

func TestGameResizeKeepsWorld(t *testing.T) {
	g := newTestGame(t, 80, 24)
	world := g.world

	g.Resize(60, 20)
	if g.world != world {
		t.Error("resize should not rebuild the world")
	}
	if g.viewport.W != 60*16 || g.viewport.H != 19*32 {
		t.Errorf("viewport = %vx%v after resize", g.viewport.W, g.viewport.H)
	}
	p, _ := g.world.Player()
	if p.Pos.X > g.viewport.W || p.Pos.Y > g.viewport.H {
		t.Errorf("player %v left outside resized arena", p.Pos)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Star Dodge") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	// Player sits in the middle of the arena: 1280x736 world, 16x32 cells.
	if c := screen.GetCell(40, 12); c.Rune != playerGlyph || c.Color != core.ColorBrightBlue {
		t.Errorf("cell under player = %+v", c)
	}

	g.world.RemovePlayer()
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over!") {
		t.Error("expected game over overlay")
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newTestGame(t, 80, 24)

	// hard: initial level 0.7, speed multiplier 1.0
	if got := g.world.enemySpeed; !near(got, EnemiesSpeed*1.7) {
		t.Errorf("enemy speed = %v, expected %v", got, EnemiesSpeed*1.7)
	}
	if g.world.Enemies().Len() != 6 {
		t.Errorf("hard preset enemies = %d, expected 6", g.world.Enemies().Len())
	}
}
