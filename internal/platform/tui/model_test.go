package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/storage"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

const testSeed = 12345

// expectedTarget reproduces the placement a model will make for testSeed.
func expectedTarget(t *testing.T, size int) core.Coord {
	t.Helper()
	s, err := treasure.NewSession(core.RuntimeConfig{Size: size, Seed: testSeed}, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s.Board().Target()
}

// missFor returns an on-board coordinate that is not the target.
func missFor(target core.Coord, size int) core.Coord {
	if target.X == 1 {
		return core.NewCoord(size, target.Y)
	}
	return core.NewCoord(1, target.Y)
}

func typeGuess(t *testing.T, m Model, text string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestModelWinsAndSaves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	var journal []treasure.Event
	m := NewModel(Options{
		Config: core.RuntimeConfig{Size: 10, Seed: testSeed},
		Store:  store,
		Recorder: func(string, treasure.Info) treasure.Recorder {
			return treasure.RecorderFunc(func(ev treasure.Event) { journal = append(journal, ev) })
		},
	})

	target := expectedTarget(t, 10)
	miss := missFor(target, 10)

	m = typeGuess(t, m, fmt.Sprintf("%d %d", miss.X, miss.Y))
	if m.Session().AttemptsUsed() != 1 || m.Session().State() != treasure.StatePlaying {
		t.Fatalf("after miss: attempts=%d state=%v", m.Session().AttemptsUsed(), m.Session().State())
	}

	m = typeGuess(t, m, fmt.Sprintf("%d,%d", target.X, target.Y))
	if m.Session().State() != treasure.StateWon {
		t.Fatalf("State = %v, want won", m.Session().State())
	}

	saved, err := store.Game(m.GameID())
	if err != nil || saved == nil {
		t.Fatalf("Game(%s) = %v, %v", m.GameID(), saved, err)
	}
	if saved.Attempts != 2 || saved.Outcome != treasure.StateWon {
		t.Errorf("saved game = %+v", saved)
	}

	events, _ := store.Events(m.GameID())
	if len(events) != 5 || len(journal) != 5 {
		t.Errorf("store has %d events, journal %d; want 5 each", len(events), len(journal))
	}

	if !strings.Contains(m.View(), "Congratulations") {
		t.Error("view should announce the win")
	}
}

func TestModelRejectsBadInput(t *testing.T) {
	m := NewModel(Options{Config: core.RuntimeConfig{Size: 10, Seed: testSeed}})

	tests := []struct {
		input string
		want  string
	}{
		{"5", "enter two numbers"},
		{"a b", "whole numbers"},
		{"0 5", "The x must be between 1 and 10."},
		{"5 11", "The y must be between 1 and 10."},
	}

	for _, tt := range tests {
		m = typeGuess(t, m, tt.input)
		if !m.isError || !strings.Contains(m.message, tt.want) {
			t.Errorf("input %q: message = %q, want %q", tt.input, m.message, tt.want)
		}
		if m.Session().AttemptsUsed() != 0 {
			t.Errorf("input %q consumed an attempt", tt.input)
		}
	}
}

func TestModelLosesAndRevealsTarget(t *testing.T) {
	m := NewModel(Options{Config: core.RuntimeConfig{Size: 5, Seed: testSeed}})
	target := expectedTarget(t, 5)
	miss := missFor(target, 5)

	for i := 0; i < m.Session().MaxAttempts(); i++ {
		m = typeGuess(t, m, fmt.Sprintf("%d %d", miss.X, miss.Y))
	}
	if m.Session().State() != treasure.StateLost {
		t.Fatalf("State = %v, want lost", m.Session().State())
	}
	if !strings.Contains(m.View(), "You lose!") {
		t.Error("view should announce the loss")
	}

	// Further input is ignored.
	m = typeGuess(t, m, fmt.Sprintf("%d %d", target.X, target.Y))
	if m.Session().State() != treasure.StateLost {
		t.Error("finished session changed state")
	}
}

func TestModelRestart(t *testing.T) {
	m := NewModel(Options{Config: core.RuntimeConfig{Size: 6, Seed: testSeed}})
	first := m.GameID()
	m = typeGuess(t, m, "1 1")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)

	if m.GameID() == first {
		t.Error("restart should start a new game")
	}
	if m.Session().AttemptsUsed() != 0 {
		t.Errorf("new round has %d attempts", m.Session().AttemptsUsed())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(Options{Config: core.RuntimeConfig{Size: 6, Seed: testSeed}})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).IsQuitting() {
		t.Error("esc should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
}

func TestParseGuess(t *testing.T) {
	tests := []struct {
		in      string
		x, y    int
		wantErr bool
	}{
		{"3 4", 3, 4, false},
		{"3,4", 3, 4, false},
		{" 3 ; 4 ", 3, 4, false},
		{"-1 4", -1, 4, false},
		{"3", 0, 0, true},
		{"3 4 5", 0, 0, true},
		{"x 4", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		x, y, err := parseGuess(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseGuess(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (x != tt.x || y != tt.y) {
			t.Errorf("parseGuess(%q) = %d, %d; want %d, %d", tt.in, x, y, tt.x, tt.y)
		}
	}
}

func TestModelRestartSavesAbandonedRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m := NewModel(Options{Config: core.RuntimeConfig{Size: 10, Seed: testSeed}, Store: store})
	first := m.GameID()
	miss := missFor(expectedTarget(t, 10), 10)
	m = typeGuess(t, m, fmt.Sprintf("%d %d", miss.X, miss.Y))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)

	saved, err := store.Game(first)
	if err != nil {
		t.Fatalf("Game failed: %v", err)
	}
	if saved == nil {
		t.Fatal("abandoned round was not saved")
	}
	if saved.Outcome != treasure.StatePlaying || saved.Attempts != 1 {
		t.Errorf("saved round = %+v", saved)
	}

	stats, _ := store.Stats(10)
	if stats.Played != 1 || stats.Abandoned != 1 {
		t.Errorf("stats = %+v", stats)
	}

	// A fresh round with no guesses is not saved on restart.
	second := m.GameID()
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if g, _ := store.Game(second); g != nil {
		t.Errorf("empty round was saved: %+v", g)
	}
	if next.(Model).GameID() == second {
		t.Error("restart should start a new game")
	}
}
