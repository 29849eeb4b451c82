package treasure

import "github.com/vovakirdan/treasure-map/internal/core"

// EventKind identifies the type of a recorded event.
type EventKind string

const (
	EventGuess   EventKind = "guess"
	EventHint    EventKind = "hint"
	EventOutcome EventKind = "outcome"
)

// Event is a structured record of something that happened during play.
// Only the field matching Kind is meaningful.
type Event struct {
	Kind    EventKind
	Guess   core.Coord // EventGuess
	Hint    Hint       // EventHint
	Outcome State      // EventOutcome (Won or Lost)
}

// GuessEvent builds an EventGuess.
func GuessEvent(c core.Coord) Event {
	return Event{Kind: EventGuess, Guess: c}
}

// HintEvent builds an EventHint.
func HintEvent(h Hint) Event {
	return Event{Kind: EventHint, Hint: h}
}

// OutcomeEvent builds an EventOutcome.
func OutcomeEvent(s State) Event {
	return Event{Kind: EventOutcome, Outcome: s}
}

// Recorder receives game events. Implementations decide whether and how to
// persist them; the session never depends on the outcome.
type Recorder interface {
	Record(ev Event)
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(ev Event)

// Record calls f(ev).
func (f RecorderFunc) Record(ev Event) {
	f(ev)
}

// NopRecorder discards all events.
type NopRecorder struct{}

// Record does nothing.
func (NopRecorder) Record(Event) {}

type multiRecorder []Recorder

func (m multiRecorder) Record(ev Event) {
	for _, r := range m {
		r.Record(ev)
	}
}

// MultiRecorder fans events out to every non-nil recorder in order.
func MultiRecorder(recs ...Recorder) Recorder {
	out := make(multiRecorder, 0, len(recs))
	for _, r := range recs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
