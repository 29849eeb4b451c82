package treasure

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/treasure-map/internal/core"
)

// ErrSessionOver is returned when a guess is submitted after the session has
// been won or lost. The session is left untouched.
var ErrSessionOver = errors.New("treasure: session is over")

// InvalidSizeError reports a board size at or below the minimum.
type InvalidSizeError struct {
	Size int
	Min  int // Exclusive lower bound
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("treasure: invalid board size %d: must be greater than %d", e.Size, e.Min)
}

// CoordinateOutOfRangeError reports a guess axis outside [Min, Max].
type CoordinateOutOfRangeError struct {
	Axis  Axis
	Value int
	Min   int
	Max   int
}

func (e *CoordinateOutOfRangeError) Error() string {
	return fmt.Sprintf("treasure: %s must be between %d and %d, got %d", e.Axis, e.Min, e.Max, e.Value)
}

// ValidateSize returns an *InvalidSizeError if size cannot hold a board.
func ValidateSize(size int) error {
	if size <= core.MinBoardSize {
		return &InvalidSizeError{Size: size, Min: core.MinBoardSize}
	}
	return nil
}

// IsInvalidSize reports whether err is (or wraps) an *InvalidSizeError.
func IsInvalidSize(err error) bool {
	var target *InvalidSizeError
	return errors.As(err, &target)
}

// IsOutOfRange reports whether err is (or wraps) a *CoordinateOutOfRangeError.
func IsOutOfRange(err error) bool {
	var target *CoordinateOutOfRangeError
	return errors.As(err, &target)
}
