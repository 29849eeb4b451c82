// Package core provides fundamental types shared by the treasure game and its
// front ends. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "fmt"

// Coord is a 1-based cell position on the board.
type Coord struct {
	X, Y int
}

// NewCoord creates a coordinate.
func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Manhattan returns the taxicab distance between two coordinates.
func (c Coord) Manhattan(other Coord) int {
	return Abs(c.X-other.X) + Abs(c.Y-other.Y)
}

// Within reports whether both axes lie in [1, size].
func (c Coord) Within(size int) bool {
	return InRange(c.X, 1, size) && InRange(c.Y, 1, size)
}

// String formats the coordinate as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// InRange reports whether min <= val <= max.
func InRange(val, min, max int) bool {
	return val >= min && val <= max
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
