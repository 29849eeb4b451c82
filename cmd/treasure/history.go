package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treasure-map/internal/platform/tui"
	"github.com/vovakirdan/treasure-map/internal/storage"
)

var (
	flagHistorySize  int
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past games and statistics",
	Long: `Display the best won games, the most recent games and overall statistics.

In a terminal the history opens as a browsable table (Tab switches between
best and recent games, Q quits). Otherwise it is printed as text.

Examples:
  treasure history
  treasure history --size 10
  treasure history --limit 5 | less`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistorySize, "size", 0, "Only show games on this map size (0 = all)")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of games per list")
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("open games database: %w", err)
	}
	defer store.Close()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, flagHistorySize, width, height)
	}

	return printHistory(os.Stdout, store, flagHistorySize, flagHistoryLimit)
}

// printHistory writes the best games, recent games and statistics as text.
func printHistory(w io.Writer, store *storage.Store, size, limit int) error {
	best, err := store.BestGames(size, limit)
	if err != nil {
		return err
	}
	recent, err := store.RecentGames(size, limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(size)
	if err != nil {
		return err
	}

	if stats.Played == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'treasure play' to start digging!")
		return nil
	}

	fmt.Fprintln(w, "Best Games")
	fmt.Fprintln(w)
	printGames(w, best)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent Games")
	fmt.Fprintln(w)
	printGames(w, recent)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Played: %d  Won: %d  Lost: %d  Abandoned: %d\n",
		stats.Played, stats.Won, stats.Lost, stats.Abandoned)
	if stats.BestAttempts > 0 {
		fmt.Fprintf(w, "Best: %d attempts\n", stats.BestAttempts)
	}
	return nil
}

func printGames(w io.Writer, games []storage.GameRecord) {
	if len(games) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-7s  %-9s  %-8s  %-16s  %s\n", "Rank", "Board", "Result", "Attempts", "Date", "ID")
	fmt.Fprintf(w, "  %-4s  %-7s  %-9s  %-8s  %-16s  %s\n", "----", "-----", "------", "--------", "----", "--")

	for i, g := range games {
		fmt.Fprintf(w, "  %-4d  %-7s  %-9s  %-8s  %-16s  %s\n",
			i+1,
			fmt.Sprintf("%dx%d", g.Size, g.Size),
			g.Result(),
			fmt.Sprintf("%d/%d", g.Attempts, g.MaxAttempts),
			g.CreatedAt.Format("2006-01-02 15:04"),
			g.ID,
		)
	}
}

