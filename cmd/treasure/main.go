// treasure is a terminal treasure hunt: find the hidden treasure on a square
// map using hot/cold clues before you run out of attempts.
//
// Usage:
//
//	treasure play                 - Play a game
//	treasure history              - Browse past games and statistics
//	treasure replay <game-id>     - Print the recorded moves of a game
//
// Global flags:
//
//	--config <path>    - Path to a config YAML file
//	--seed <value>     - Set RNG seed for a reproducible map
//	--db <path>        - Set database path (default: ~/.treasure/games.db)
//	--log-file <path>  - Set event log path (default: ~/.treasure/log.txt)
//	--debug            - Print diagnostics to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-map/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

// logger reports diagnostics on stderr, away from the game text.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "treasure",
	Level:           log.WarnLevel,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "treasure",
	Short: "Treasure Map - Find the hidden treasure in your terminal",
	Long: `Treasure Map is a guessing game. A treasure is buried somewhere on a
square map; enter coordinates to dig and follow the hot/cold clues.
You have the map size plus five attempts.

Available commands:
  play     - Start a game
  history  - View past games and statistics
  replay   - Show the recorded moves of a game

Examples:
  treasure play
  treasure play --size 7
  treasure play --difficulty hard --plain
  treasure history --size 10
  treasure replay 6f1c...`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to games database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to event log (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print debug diagnostics to stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogFile != "" {
		cfg.Journal.Path = flagLogFile
	}
	return cfg, nil
}
