package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-map/internal/platform/theme"
	"github.com/vovakirdan/treasure-map/internal/storage"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

var replayCmd = &cobra.Command{
	Use:   "replay <game-id>",
	Short: "Print the recorded moves of a game",
	Long: `Print every guess and clue recorded for a game, followed by its outcome
and the treasure's location.

Game IDs are listed by 'treasure history'.

Examples:
  treasure replay 0b7e6c1a-3c55-4f0e-9d5b-2a4f1f0c9e11`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("open games database: %w", err)
	}
	defer store.Close()

	return printReplay(os.Stdout, store, args[0])
}

// printReplay writes a game's summary and its event journal.
func printReplay(w io.Writer, store *storage.Store, gameID string) error {
	game, err := store.Game(gameID)
	if err != nil {
		return err
	}
	events, err := store.Events(gameID)
	if err != nil {
		return err
	}
	if game == nil && len(events) == 0 {
		return fmt.Errorf("no game with id %q", gameID)
	}

	if game != nil {
		fmt.Fprintf(w, "Game %s\n", game.ID)
		fmt.Fprintf(w, "Map %dx%d, %d attempts allowed, played %s\n",
			game.Size, game.Size, game.MaxAttempts, game.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Fprintln(w)
	}

	turn := 0
	for _, e := range events {
		switch e.Event.Kind {
		case treasure.EventGuess:
			turn++
			fmt.Fprintf(w, "%3d. dig at %s", turn, e.Event.Guess)
		case treasure.EventHint:
			fmt.Fprintf(w, "  %s\n", theme.HintText(e.Event.Hint))
		case treasure.EventOutcome:
			fmt.Fprintln(w)
			if e.Event.Outcome == treasure.StateWon {
				fmt.Fprintf(w, "Won in %d attempts.\n", turn)
			} else {
				fmt.Fprintf(w, "Lost after %d attempts.\n", turn)
			}
		}
	}

	if game != nil {
		if game.Outcome == treasure.StatePlaying {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Abandoned before the end.")
		}
		fmt.Fprintf(w, "The treasure was at %s.\n", game.Target)
	}
	return nil
}
