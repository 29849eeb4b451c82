package treasure

import "github.com/vovakirdan/treasure-map/internal/core"

// Tracker records accepted guesses in the order they were made.
// It trusts its input; bounds checks happen in Session.
type Tracker struct {
	guesses []core.Coord
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record appends a guess and returns the new attempt count.
func (t *Tracker) Record(c core.Coord) int {
	t.guesses = append(t.guesses, c)
	return len(t.guesses)
}

// Attempts returns the number of recorded guesses.
func (t *Tracker) Attempts() int {
	return len(t.guesses)
}

// Guesses returns a copy of the recorded guesses.
func (t *Tracker) Guesses() []core.Coord {
	out := make([]core.Coord, len(t.guesses))
	copy(out, t.guesses)
	return out
}

// Last returns the most recent guess, if any.
func (t *Tracker) Last() (core.Coord, bool) {
	if len(t.guesses) == 0 {
		return core.Coord{}, false
	}
	return t.guesses[len(t.guesses)-1], true
}
