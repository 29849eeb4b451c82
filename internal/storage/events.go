package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

// EventEntry is one persisted game event.
type EventEntry struct {
	GameID    string
	Seq       int
	Event     treasure.Event
	CreatedAt time.Time
}

// SaveEvent appends an event to a game's journal.
func (s *Store) SaveEvent(gameID string, seq int, ev treasure.Event) error {
	var x, y sql.NullInt64
	var hint, outcome sql.NullString

	switch ev.Kind {
	case treasure.EventGuess:
		x = sql.NullInt64{Int64: int64(ev.Guess.X), Valid: true}
		y = sql.NullInt64{Int64: int64(ev.Guess.Y), Valid: true}
	case treasure.EventHint:
		hint = sql.NullString{String: ev.Hint.String(), Valid: true}
	case treasure.EventOutcome:
		outcome = sql.NullString{String: ev.Outcome.String(), Valid: true}
	default:
		return fmt.Errorf("storage: unknown event kind %q", ev.Kind)
	}

	_, err := s.db.Exec(
		`INSERT INTO events (game_id, seq, kind, x, y, hint, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		gameID, seq, string(ev.Kind), x, y, hint, outcome,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save event: %w", err)
	}
	return nil
}

// Events returns a game's journal in recording order.
func (s *Store) Events(gameID string) ([]EventEntry, error) {
	rows, err := s.db.Query(
		`SELECT game_id, seq, kind, x, y, hint, outcome, created_at
		 FROM events
		 WHERE game_id = ?
		 ORDER BY seq ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var entries []EventEntry
	for rows.Next() {
		var e EventEntry
		var kind string
		var x, y sql.NullInt64
		var hint, outcome sql.NullString
		var createdAt any
		if err := rows.Scan(&e.GameID, &e.Seq, &kind, &x, &y, &hint, &outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}

		e.Event.Kind = treasure.EventKind(kind)
		if x.Valid && y.Valid {
			e.Event.Guess = core.NewCoord(int(x.Int64), int(y.Int64))
		}
		if hint.Valid {
			e.Event.Hint, _ = treasure.ParseHint(hint.String)
		}
		if outcome.Valid {
			e.Event.Outcome, _ = treasure.ParseState(outcome.String)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// EventRecorder is a treasure.Recorder that writes each event to the store
// as it happens. Write failures are logged and otherwise ignored so that
// persistence never affects play.
type EventRecorder struct {
	store  *Store
	gameID string
	seq    int
	logger *log.Logger
}

// Recorder returns an EventRecorder for the given game.
// A nil logger uses the charmbracelet default logger.
func (s *Store) Recorder(gameID string, logger *log.Logger) *EventRecorder {
	if logger == nil {
		logger = log.Default()
	}
	return &EventRecorder{store: s, gameID: gameID, logger: logger}
}

// Record implements treasure.Recorder.
func (r *EventRecorder) Record(ev treasure.Event) {
	r.seq++
	if err := r.store.SaveEvent(r.gameID, r.seq, ev); err != nil {
		r.logger.Warn("could not persist event", "game", r.gameID, "kind", ev.Kind, "error", err)
	}
}

// GameID returns the game this recorder writes to.
func (r *EventRecorder) GameID() string {
	return r.gameID
}
