// Package treasure implements the treasure map guessing game: a board with a
// hidden treasure, an attempt tracker and a session that drives play to a win
// or a loss. The package performs no I/O; input, output and event recording
// are supplied by the caller.
package treasure

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/treasure-map/internal/core"
)

// Axis identifies one coordinate of a guess.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the axis letter.
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Board is a size×size grid with a single hidden target.
// The target is fixed at construction and never regenerated.
type Board struct {
	size   int
	target core.Coord
}

// NewBoard creates a board and places the target uniformly at random,
// drawing each axis independently from rng.
func NewBoard(size int, rng *rand.Rand) (*Board, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	target := core.NewCoord(rng.Intn(size)+1, rng.Intn(size)+1)
	return &Board{size: size, target: target}, nil
}

// NewBoardAt creates a board with a known target.
func NewBoardAt(size int, target core.Coord) (*Board, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	if !target.Within(size) {
		return nil, fmt.Errorf("treasure: target %v outside %dx%d board", target, size, size)
	}
	return &Board{size: size, target: target}, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Target returns the hidden treasure location.
func (b *Board) Target() core.Coord {
	return b.target
}

// Contains reports whether (x, y) lies on the board.
func (b *Board) Contains(x, y int) bool {
	return core.NewCoord(x, y).Within(b.size)
}

// IsTarget reports whether (x, y) is the treasure.
func (b *Board) IsTarget(x, y int) bool {
	return b.target == core.NewCoord(x, y)
}

// Distance returns the Manhattan distance from (x, y) to the treasure.
func (b *Board) Distance(x, y int) int {
	return b.target.Manhattan(core.NewCoord(x, y))
}

// Hint returns the proximity category for (x, y).
func (b *Board) Hint(x, y int) Hint {
	return HintForDistance(b.Distance(x, y))
}

// checkAxis validates a single coordinate value against the board bounds.
func (b *Board) checkAxis(axis Axis, v int) error {
	if !core.InRange(v, 1, b.size) {
		return &CoordinateOutOfRangeError{Axis: axis, Value: v, Min: 1, Max: b.size}
	}
	return nil
}
