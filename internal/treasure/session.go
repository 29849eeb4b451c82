package treasure

import (
	"math/rand"

	"github.com/vovakirdan/treasure-map/internal/core"
)

// State is the lifecycle state of a session.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

// String returns a lower-case state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// ParseState converts a state name back to a State.
func ParseState(s string) (State, bool) {
	for st := StatePlaying; st <= StateLost; st++ {
		if st.String() == s {
			return st, true
		}
	}
	return StatePlaying, false
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Result describes the effect of a single submission.
type Result struct {
	Guess             core.Coord
	Accepted          bool // False for out-of-range or post-game submissions
	Hint              Hint // HintNone when not accepted
	AttemptsUsed      int
	AttemptsRemaining int
	State             State
}

// Session drives one game from the first guess to a win or a loss.
// It exclusively owns its board and tracker.
type Session struct {
	board       *Board
	tracker     *Tracker
	recorder    Recorder
	maxAttempts int
	state       State
}

// NewSession creates a session with a randomly placed treasure.
// The RNG is seeded from cfg.Seed so placement is reproducible.
func NewSession(cfg core.RuntimeConfig, rec Recorder) (*Session, error) {
	board, err := NewBoard(cfg.Size, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	return NewSessionWithBoard(board, rec), nil
}

// NewSessionWithBoard creates a session around an existing board.
func NewSessionWithBoard(b *Board, rec Recorder) *Session {
	if rec == nil {
		rec = NopRecorder{}
	}
	return &Session{
		board:       b,
		tracker:     NewTracker(),
		recorder:    rec,
		maxAttempts: core.MaxAttempts(b.Size()),
		state:       StatePlaying,
	}
}

// Submit validates and resolves one guess.
//
// Out-of-range guesses return a *CoordinateOutOfRangeError and consume no
// attempt. Submissions after the session has ended return ErrSessionOver.
// In both cases the session is not modified.
func (s *Session) Submit(x, y int) (Result, error) {
	guess := core.NewCoord(x, y)
	if s.state.Terminal() {
		return s.snapshot(guess), ErrSessionOver
	}
	if err := s.board.checkAxis(AxisX, x); err != nil {
		return s.snapshot(guess), err
	}
	if err := s.board.checkAxis(AxisY, y); err != nil {
		return s.snapshot(guess), err
	}

	attempts := s.tracker.Record(guess)
	s.recorder.Record(GuessEvent(guess))

	hint := s.board.Hint(x, y)
	s.recorder.Record(HintEvent(hint))

	switch {
	case s.board.IsTarget(x, y):
		s.finish(StateWon)
	case attempts >= s.maxAttempts:
		s.finish(StateLost)
	}

	res := s.snapshot(guess)
	res.Accepted = true
	res.Hint = hint
	return res, nil
}

// CheckAxis validates a single coordinate without touching the session.
func (s *Session) CheckAxis(axis Axis, v int) error {
	return s.board.checkAxis(axis, v)
}

func (s *Session) finish(st State) {
	s.state = st
	s.recorder.Record(OutcomeEvent(st))
}

func (s *Session) snapshot(guess core.Coord) Result {
	return Result{
		Guess:             guess,
		AttemptsUsed:      s.tracker.Attempts(),
		AttemptsRemaining: s.AttemptsRemaining(),
		State:             s.state,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// AttemptsUsed returns the number of accepted guesses.
func (s *Session) AttemptsUsed() int {
	return s.tracker.Attempts()
}

// AttemptsRemaining returns how many guesses are left in the budget.
func (s *Session) AttemptsRemaining() int {
	return s.maxAttempts - s.tracker.Attempts()
}

// MaxAttempts returns the attempt budget (board size + 5).
func (s *Session) MaxAttempts() int {
	return s.maxAttempts
}

// Size returns the board side length.
func (s *Session) Size() int {
	return s.board.Size()
}

// Guesses returns the accepted guesses in order.
func (s *Session) Guesses() []core.Coord {
	return s.tracker.Guesses()
}

// Board returns the session's board.
func (s *Session) Board() *Board {
	return s.board
}

// Info returns the static facts about a session shown before play starts.
func (s *Session) Info() Info {
	return Info{Size: s.board.Size(), MaxAttempts: s.maxAttempts}
}
