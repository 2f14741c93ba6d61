package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ball-arcade/internal/audio"
	"github.com/vovakirdan/ball-arcade/internal/core"
	"github.com/vovakirdan/ball-arcade/internal/registry"
	"github.com/vovakirdan/ball-arcade/internal/storage"
)

// Options wires the optional services a game session uses.
type Options struct {
	Store  *storage.Store // Nil disables score saving
	Audio  audio.Sink     // Nil means silent
	Logger *log.Logger    // Nil discards logs
	Player string         // Recorded with saved scores

	// ExitToMenu makes the game's exit request return to the menu
	// instead of quitting the program.
	ExitToMenu bool
}

func (o Options) withDefaults() Options {
	if o.Audio == nil {
		o.Audio = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model for running one arcade game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *HeldKeys
	keyMapper  *KeyMapper
	lastTick   time.Time
	gameState  core.GameState
	runTime    time.Duration // Unpaused play time of the current run
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts.withDefaults(),
		config:    cfg,
		keys:      NewHeldKeys(),
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if msg.String() == "m" {
		if mu, ok := m.opts.Audio.(audio.Muter); ok {
			mu.SetMuted(!mu.Muted())
			m.opts.Logger.Info("sound toggled", "muted", mu.Muted())
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// B leaves a finished or paused game in menu sessions
	if action == core.ActionBack && m.opts.ExitToMenu && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.keys.Press(action, now)
	}
	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in
// place are restarted unless they are showing a final score.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.keys.Reset()

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = max(now.Sub(m.lastTick), 0)
	}
	m.lastTick = now

	prev := m.gameState
	result := m.game.Step(dt, m.keys.Frame(now))
	m.gameState = result.State

	if prev.GameOver && !m.gameState.GameOver {
		m.opts.Logger.Info("game restarted", "game", m.game.ID())
		m.scoreSaved = false
		m.runTime = 0
		m.keys.Reset()
	}
	if !m.gameState.GameOver && !m.gameState.Paused {
		m.runTime += dt
	}

	for _, c := range result.Cues {
		m.opts.Audio.Play(c)
	}
	m.logEvents(result.Events)

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if result.ExitRequested {
		if m.opts.ExitToMenu {
			m.backToMenu = true
			return m, tea.Quit
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []core.Event) {
	l := m.opts.Logger
	for _, e := range events {
		switch e.Kind {
		case core.EventGameOver:
			l.Info("game over", "game", m.game.ID(), "score", e.Score, "duration", m.runTime.Round(time.Millisecond))
		case core.EventExitRequested:
			l.Info("exit requested", "game", m.game.ID(), "score", e.Score)
		case core.EventScoreChanged, core.EventStarCollected:
			l.Debug(e.Kind.String(), "score", e.Score)
		default:
			l.Debug(e.Kind.String())
		}
	}
}

// saveScore records the finished run. Empty runs are not worth a table row.
func (m Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveResult(storage.Result{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Score:    m.gameState.Score,
		Duration: m.runTime,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
		return
	}
	m.opts.Logger.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score)
}

// saveScreenshot writes the current screen as plain text under ~/.arcade/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game. It reports
// whether the player left for the menu rather than quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
