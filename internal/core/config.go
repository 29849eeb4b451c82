package core

// MinBoardSize is the exclusive lower bound for a board side length.
const MinBoardSize = 4

// DefaultBoardSize is used when no size is configured.
const DefaultBoardSize = 10

// RuntimeConfig contains configuration passed to a game session at creation.
// Seed makes target placement reproducible.
type RuntimeConfig struct {
	Size int   // Board side length (cells per axis)
	Seed int64 // RNG seed for target placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Size: DefaultBoardSize,
		Seed: 0, // 0 means use current time in platform layer
	}
}

// MaxAttempts returns the attempt budget for a board of the given size.
func MaxAttempts(size int) int {
	return size + 5
}
