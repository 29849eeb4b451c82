package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treasure-map/internal/config"
	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/journal"
	"github.com/vovakirdan/treasure-map/internal/platform/console"
	"github.com/vovakirdan/treasure-map/internal/platform/tui"
	"github.com/vovakirdan/treasure-map/internal/storage"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

var (
	flagSize       int
	flagDifficulty string
	flagPlain      bool
	flagAskSize    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a treasure hunt.

In a terminal the game opens a map view; type "x y" and press Enter to dig.
With --plain, or when input is not a terminal, the game asks for each
coordinate on its own line.

Clues:
  found      - distance 0
  very hot   - distance 1
  hot        - distance 2-3
  warm       - distance 4-5
  cold       - distance 6-7
  very cold  - distance 8 or more

Difficulty options:
  easy   - 5x5 map
  normal - 10x10 map
  hard   - 15x15 map

Examples:
  treasure play
  treasure play --size 8
  treasure play --difficulty easy
  treasure play --plain --ask-size
  treasure play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Map size, greater than 4 (overrides config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the line-based console instead of the map view")
	playCmd.Flags().BoolVar(&flagAskSize, "ask-size", false, "Ask for the map size before playing (console only)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		cfg.Board.Difficulty = config.DifficultyPreset(flagDifficulty)
		cfg.ApplyDifficulty()
	}
	if flagSize != 0 {
		cfg.Board.Size = flagSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug("config loaded", "size", cfg.Board.Size, "seed", cfg.Seed, "db", cfg.Storage.DBPath)

	// Open game storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open games database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var jr *journal.Journal
	if cfg.Journal.Path != "" {
		jr, err = journal.Open(cfg.Journal.Path, cfg.Journal.Level)
		if err != nil {
			logger.Warn("could not open event log", "error", err)
			jr = nil
		}
	}
	if jr != nil {
		defer jr.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !flagPlain && !flagAskSize {
		return tui.Run(tui.Options{
			Config: cfg.Runtime(),
			Store:  store,
			Recorder: func(gameID string, info treasure.Info) treasure.Recorder {
				return journalRecorder(jr, gameID, info)
			},
			Logger: logger,
		})
	}

	return playConsole(ctx, cfg, store, jr, os.Stdin, os.Stdout)
}

// journalRecorder returns a recorder tagging journal lines with the game ID,
// or nil when no journal is open.
func journalRecorder(jr *journal.Journal, gameID string, info treasure.Info) treasure.Recorder {
	if jr == nil {
		return nil
	}
	j := jr.With("game", gameID)
	j.Start(info)
	return j
}

// playConsole runs one game through the line-based front end.
func playConsole(ctx context.Context, cfg config.Config, store *storage.Store, jr *journal.Journal, in io.Reader, out io.Writer) error {
	prompter := console.NewPrompter(in, out)
	printer := console.NewPrinter(out)

	if flagAskSize {
		size, err := prompter.ReadSize(ctx)
		if err != nil {
			return fmt.Errorf("read size: %w", err)
		}
		cfg.Board.Size = size
	}

	rt := cfg.Runtime()
	gameID := storage.NewGameID()
	info := treasure.Info{Size: rt.Size, MaxAttempts: core.MaxAttempts(rt.Size)}

	var recs []treasure.Recorder
	if store != nil {
		recs = append(recs, store.Recorder(gameID, logger))
	}
	recs = append(recs, journalRecorder(jr, gameID, info))

	session, err := treasure.NewSession(rt, treasure.MultiRecorder(recs...))
	if err != nil {
		return err
	}
	logger.Debug("game started", "game", gameID, "size", rt.Size)

	_, playErr := treasure.Play(ctx, session, prompter, printer)

	// Games that ended early are still saved if a guess was made.
	if store != nil && session.AttemptsUsed() > 0 {
		if err := store.SaveGame(storage.RecordFromSession(gameID, session)); err != nil {
			logger.Warn("could not save game", "game", gameID, "error", err)
		}
	}

	if errors.Is(playErr, io.EOF) || errors.Is(playErr, context.Canceled) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Game abandoned.")
		return nil
	}
	return playErr
}
