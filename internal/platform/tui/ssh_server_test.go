package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ball-arcade/internal/core"
	"github.com/vovakirdan/ball-arcade/internal/registry"
)

// sessionGame is what the registered "fake" factory hands out.
var sessionGame = &fakeGame{}

func TestSessionMenuToGameAndBack(t *testing.T) {
	g := &fakeGame{}
	sessionGame = g
	if !registry.Exists(g.ID()) {
		registry.Register(g.ID(), func() registry.Game { return sessionGame })
	}

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	var m tea.Model = NewSessionModel(nil, cfg, "alice", log.New(io.Discard))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.gameModel == nil {
		t.Fatal("selecting a game should start it")
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	if s.gameModel.opts.Player != "alice" || !s.gameModel.opts.ExitToMenu {
		t.Errorf("session game options = %+v", s.gameModel.opts)
	}

	g.next = core.StepResult{ExitRequested: true}
	m, _ = m.Update(TickMsg(t0))
	s = m.(SessionModel)
	if s.gameModel != nil {
		t.Error("exit request should return the session to the menu")
	}
	if s.quitting {
		t.Error("leaving a game should not end the session")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	var m tea.Model = NewSessionModel(nil, cfg, "bob", log.New(io.Discard))

	m, cmd := m.Update(runeKey('q'))
	if !m.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("finished session should render nothing")
	}
}
