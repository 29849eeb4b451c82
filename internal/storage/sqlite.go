// Package storage provides SQLite-based persistence for finished games and
// their event journal. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/treasure-map/internal/config"
	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// GameRecord is the summary of one played session.
type GameRecord struct {
	ID          string
	Size        int
	MaxAttempts int
	Attempts    int
	Outcome     treasure.State // StatePlaying means the game was abandoned
	Target      core.Coord
	CreatedAt   time.Time
}

// Result names the game's outcome for display. Games saved while still in
// progress were abandoned.
func (g GameRecord) Result() string {
	if g.Outcome == treasure.StatePlaying {
		return "abandoned"
	}
	return g.Outcome.String()
}

// Stats aggregates outcomes across games.
type Stats struct {
	Played       int
	Won          int
	Lost         int
	Abandoned    int
	BestAttempts int // Fewest attempts in a won game, 0 if none
	LastPlayed   time.Time
}

// NewGameID returns a fresh identifier for a game.
func NewGameID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			size INTEGER NOT NULL,
			max_attempts INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			target_x INTEGER NOT NULL,
			target_y INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_best ON games(size, outcome, attempts);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			x INTEGER,
			y INTEGER,
			hint TEXT,
			outcome TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_events_game ON events(game_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records the summary of a session.
func (s *Store) SaveGame(g GameRecord) error {
	if g.ID == "" {
		return fmt.Errorf("storage: game record has no ID")
	}
	_, err := s.db.Exec(
		`INSERT INTO games (id, size, max_attempts, attempts, outcome, target_x, target_y)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Size, g.MaxAttempts, g.Attempts, g.Outcome.String(), g.Target.X, g.Target.Y,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// RecordFromSession builds a GameRecord from a session's current state.
func RecordFromSession(id string, s *treasure.Session) GameRecord {
	return GameRecord{
		ID:          id,
		Size:        s.Size(),
		MaxAttempts: s.MaxAttempts(),
		Attempts:    s.AttemptsUsed(),
		Outcome:     s.State(),
		Target:      s.Board().Target(),
	}
}

// BestGames returns won games on boards of the given size, fewest attempts
// first. A size of 0 includes every board size.
func (s *Store) BestGames(size, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, size, max_attempts, attempts, outcome, target_x, target_y, created_at
		 FROM games
		 WHERE outcome = ? AND (? = 0 OR size = ?)
		 ORDER BY attempts ASC, created_at ASC
		 LIMIT ?`,
		treasure.StateWon.String(), size, size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// RecentGames returns the most recently saved games on boards of the given
// size (0 = all sizes).
func (s *Store) RecentGames(size, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, size, max_attempts, attempts, outcome, target_x, target_y, created_at
		 FROM games
		 WHERE ? = 0 OR size = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		size, size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// Game returns a single game by ID, or nil if it does not exist.
func (s *Store) Game(id string) (*GameRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, size, max_attempts, attempts, outcome, target_x, target_y, created_at
		 FROM games WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	defer rows.Close()

	games, err := scanGames(rows)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

// Stats aggregates outcomes for boards of the given size (0 = all sizes).
func (s *Store) Stats(size int) (*Stats, error) {
	stats := &Stats{}
	var best sql.NullInt64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'lost'), 0),
		        COALESCE(SUM(outcome = 'playing'), 0),
		        MIN(CASE WHEN outcome = 'won' THEN attempts END),
		        MAX(created_at)
		 FROM games
		 WHERE ? = 0 OR size = ?`,
		size, size,
	).Scan(&stats.Played, &stats.Won, &stats.Lost, &stats.Abandoned, &best, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if best.Valid {
		stats.BestAttempts = int(best.Int64)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

func scanGames(rows *sql.Rows) ([]GameRecord, error) {
	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var outcome string
		var createdAt any
		if err := rows.Scan(&g.ID, &g.Size, &g.MaxAttempts, &g.Attempts, &outcome,
			&g.Target.X, &g.Target.Y, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.Outcome, _ = treasure.ParseState(outcome)
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return games, nil
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
