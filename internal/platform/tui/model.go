// Package tui provides the Bubble Tea front end for the treasure game: an
// interactive map with a coordinate prompt, and a history browser.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/storage"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

// Options configures a game screen.
type Options struct {
	Config core.RuntimeConfig
	Store  *storage.Store // Optional; finished games and events are saved here

	// Recorder, if set, returns an extra recorder for each new game
	// (e.g. the text journal). It is combined with the store's recorder.
	Recorder func(gameID string, info treasure.Info) treasure.Recorder

	Logger *log.Logger
}

// Model is the Bubble Tea model for one or more rounds of the game.
type Model struct {
	opts    Options
	session *treasure.Session
	gameID  string
	hints   map[core.Coord]treasure.Hint

	input textinput.Model
	keys  GameKeyMap
	help  help.Model

	last    treasure.Result
	message string // Feedback for the last submission
	isError bool
	saved   bool // Whether the finished game has been saved

	width    int
	height   int
	quitting bool
	err      error
}

// NewModel creates a game model and starts the first round.
func NewModel(opts Options) Model {
	if opts.Config.Seed == 0 {
		opts.Config.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "x y"
	ti.Prompt = "dig at > "
	ti.CharLimit = 9
	ti.Width = 12
	ti.Focus()

	m := Model{
		opts:  opts,
		input: ti,
		keys:  DefaultGameKeyMap(),
		help:  help.New(),
	}
	m.newRound()
	return m
}

// newRound starts a fresh session. The board size was validated when the
// configuration was loaded, so a failure here is kept and shown as fatal.
func (m *Model) newRound() {
	m.gameID = storage.NewGameID()
	m.hints = make(map[core.Coord]treasure.Hint)
	m.last = treasure.Result{}
	m.message = ""
	m.isError = false
	m.saved = false
	m.input.Reset()

	info := treasure.Info{Size: m.opts.Config.Size, MaxAttempts: core.MaxAttempts(m.opts.Config.Size)}
	var recs []treasure.Recorder
	if m.opts.Store != nil {
		recs = append(recs, m.opts.Store.Recorder(m.gameID, m.opts.Logger))
	}
	if m.opts.Recorder != nil {
		recs = append(recs, m.opts.Recorder(m.gameID, info))
	}

	s, err := treasure.NewSession(m.opts.Config, treasure.MultiRecorder(recs...))
	if err != nil {
		m.err = err
		return
	}
	m.session = s
	m.opts.Logger.Debug("new round", "game", m.gameID, "size", s.Size(), "seed", m.opts.Config.Seed)
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	}

	// After the game ends the input is ignored; q also quits.
	if m.session == nil || m.session.State().Terminal() {
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.String() == "r" {
			m.restart()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the input field and applies the guess.
func (m *Model) submit() {
	if m.session == nil || m.session.State().Terminal() {
		return
	}

	raw := m.input.Value()
	m.input.Reset()

	x, y, err := parseGuess(raw)
	if err != nil {
		m.message, m.isError = err.Error(), true
		return
	}

	res, err := m.session.Submit(x, y)
	if err != nil {
		var rangeErr *treasure.CoordinateOutOfRangeError
		if errors.As(err, &rangeErr) {
			m.message = fmt.Sprintf("The %s must be between %d and %d.", rangeErr.Axis, rangeErr.Min, rangeErr.Max)
		} else {
			m.message = err.Error()
		}
		m.isError = true
		return
	}

	m.last = res
	m.hints[res.Guess] = res.Hint
	m.message, m.isError = "", false

	if res.State.Terminal() {
		m.saveGame()
	}
}

// restart saves the current round if it was abandoned with guesses made,
// then starts a new map.
func (m *Model) restart() {
	if m.session != nil && m.session.AttemptsUsed() > 0 {
		m.saveGame()
	}
	m.opts.Config.Seed = time.Now().UnixNano()
	m.newRound()
}

// saveGame stores the round once, finished or not.
func (m *Model) saveGame() {
	if m.saved || m.opts.Store == nil {
		m.saved = true
		return
	}
	if err := m.opts.Store.SaveGame(storage.RecordFromSession(m.gameID, m.session)); err != nil {
		m.opts.Logger.Warn("could not save game", "game", m.gameID, "error", err)
	}
	m.saved = true
}

// parseGuess accepts "x y", "x,y" or "x;y".
func parseGuess(s string) (int, int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';'
	})
	if len(fields) != 2 {
		return 0, 0, errors.New("enter two numbers: x y")
	}

	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return 0, 0, errors.New("coordinates must be whole numbers")
	}
	return x, y, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	return m.render()
}

// Session returns the current round's session.
func (m Model) Session() *treasure.Session {
	return m.session
}

// GameID returns the current round's identifier.
func (m Model) GameID() string {
	return m.gameID
}

// IsQuitting returns true if the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the game screen.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Save a round that was abandoned mid-game so its events have a summary.
	if m, ok := finalModel.(Model); ok && m.session != nil && m.session.AttemptsUsed() > 0 {
		m.saveGame()
	}
	return nil
}
