package config

import (
	_ "embed"

	"github.com/vovakirdan/treasure-map/internal/core"
)

//go:embed defaults/treasure.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size: core.DefaultBoardSize,
		},
		Seed: 0,
		Storage: StorageConfig{
			DBPath: "~/.treasure/games.db",
		},
		Journal: JournalConfig{
			Path:  "~/.treasure/log.txt",
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
