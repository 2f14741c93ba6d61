package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ball-arcade/internal/registry"
	"github.com/vovakirdan/ball-arcade/internal/storage"
)

func TestFormatRunTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "-"},
		{1400 * time.Millisecond, "0:01"},
		{75 * time.Second, "1:15"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatRunTime(tt.in); got != tt.want {
			t.Errorf("formatRunTime(%v) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreboardShowsScoresAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveResult(storage.Result{GameID: "a", Player: "alice", Score: 9, Duration: 65 * time.Second})
	store.SaveResult(storage.Result{GameID: "a", Score: 3})
	store.SaveResult(storage.Result{GameID: "b", Player: "bob", Score: 1})

	m := ScoreboardModel{
		games:  []registry.GameInfo{{ID: "a", Title: "Game A"}, {ID: "b", Title: "Game B"}},
		store:  store,
		width:  100,
		height: 30,
	}
	m.table = newScoreTable(m.height)
	m.load()

	view := m.View()
	for _, want := range []string{"Game A", "alice", "local", "1:05", "Best 9  Games 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.cursor != 1 || len(m.scores) != 1 || m.scores[0].Player != "bob" {
		t.Errorf("tab should switch to game B, cursor %d scores %v", m.cursor, m.scores)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if next.(ScoreboardModel).cursor != 0 {
		t.Error("shift+tab should cycle back to game A")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty board should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should return to the menu")
	}
}
