// Package journal writes game events to a plain-text log file, one logfmt
// line per event.
package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treasure-map/internal/config"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

// Journal is a treasure.Recorder backed by a charmbracelet logger.
type Journal struct {
	logger *log.Logger
	closer io.Closer
}

// New creates a journal writing to w.
func New(w io.Writer, level log.Level) *Journal {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
		Level:           level,
	})
	return &Journal{logger: logger}
}

// Open appends to the log file at path, creating parent directories.
// A leading ~ is expanded to the home directory.
func Open(path string, level string) (*Journal, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}

	path, err = config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal: cannot create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot open %s: %w", path, err)
	}

	j := New(f, lvl)
	j.closer = f
	return j, nil
}

// With returns a journal that tags every line with the given key/value pairs.
func (j *Journal) With(keyvals ...any) *Journal {
	return &Journal{logger: j.logger.With(keyvals...), closer: j.closer}
}

// Start logs the beginning of a session.
func (j *Journal) Start(info treasure.Info) {
	j.logger.Info("game started", "size", info.Size, "max_attempts", info.MaxAttempts)
}

// Record implements treasure.Recorder.
func (j *Journal) Record(ev treasure.Event) {
	switch ev.Kind {
	case treasure.EventGuess:
		j.logger.Info("player chose coordinates", "x", ev.Guess.X, "y", ev.Guess.Y)
	case treasure.EventHint:
		j.logger.Info("clue", "hint", ev.Hint.String())
	case treasure.EventOutcome:
		if ev.Outcome == treasure.StateLost {
			j.logger.Info("player lost the game")
		} else {
			j.logger.Info("player found the treasure")
		}
	default:
		j.logger.Warn("unknown event", "kind", ev.Kind)
	}
}

// Close closes the underlying file, if the journal owns one.
func (j *Journal) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}
