// Package config provides YAML-based configuration loading with environment
// overrides and difficulty presets for the treasure game.
package config

import (
	"fmt"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

// Config is the full application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Seed    int64         `yaml:"seed" env:"TREASURE_SEED"`
	Storage StorageConfig `yaml:"storage"`
	Journal JournalConfig `yaml:"journal"`
}

// BoardConfig defines the map dimensions.
type BoardConfig struct {
	Size       int              `yaml:"size" env:"TREASURE_SIZE"`
	Difficulty DifficultyPreset `yaml:"difficulty" env:"TREASURE_DIFFICULTY"`
}

// StorageConfig locates the game history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"TREASURE_DB"`
}

// JournalConfig controls the plain-text event log.
type JournalConfig struct {
	Path  string `yaml:"path" env:"TREASURE_LOG"`
	Level string `yaml:"level" env:"TREASURE_LOG_LEVEL"` // debug, info, warn, error
}

// Validate checks that the configuration can start a game.
func (c Config) Validate() error {
	if c.Board.Difficulty != "" && !c.Board.Difficulty.Valid() {
		return fmt.Errorf("config: unknown difficulty %q", c.Board.Difficulty)
	}
	if err := treasure.ValidateSize(c.Board.Size); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ApplyDifficulty replaces the board size with the preset's size, if a
// preset is set.
func (c *Config) ApplyDifficulty() {
	if size, ok := SizeForPreset(c.Board.Difficulty); ok {
		c.Board.Size = size
	}
}

// Runtime converts the configuration to the core runtime config.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Size: c.Board.Size,
		Seed: c.Seed,
	}
}
