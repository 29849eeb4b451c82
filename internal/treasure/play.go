package treasure

import (
	"context"
	"fmt"
)

// Info holds the facts announced when a session starts.
type Info struct {
	Size        int
	MaxAttempts int
}

// InputProvider supplies coordinate values one axis at a time.
// It may block until the player answers; returning an error ends play.
type InputProvider interface {
	NextCoordinate(ctx context.Context, axis Axis, size int) (int, error)
}

// InputFunc adapts a function to the InputProvider interface.
type InputFunc func(ctx context.Context, axis Axis, size int) (int, error)

// NextCoordinate calls f.
func (f InputFunc) NextCoordinate(ctx context.Context, axis Axis, size int) (int, error) {
	return f(ctx, axis, size)
}

// Output receives presentation-neutral notifications from the turn loop.
type Output interface {
	Start(info Info)
	Rejected(err error)
	Turn(r Result)
}

// Play runs the session to completion, pulling coordinates from in and
// reporting through out. Each axis is re-requested until it lies on the board.
// It returns the final result once the session is won or lost, or the input
// error (wrapped) if the provider fails or ctx is cancelled first.
func Play(ctx context.Context, s *Session, in InputProvider, out Output) (Result, error) {
	out.Start(s.Info())

	var last Result
	for !s.State().Terminal() {
		x, err := readAxis(ctx, s, in, out, AxisX)
		if err != nil {
			return last, err
		}
		y, err := readAxis(ctx, s, in, out, AxisY)
		if err != nil {
			return last, err
		}

		res, err := s.Submit(x, y)
		if err != nil {
			// Both axes were checked above; anything here is a caller bug.
			return last, fmt.Errorf("treasure: submit %d,%d: %w", x, y, err)
		}
		last = res
		out.Turn(res)
	}
	return last, nil
}

func readAxis(ctx context.Context, s *Session, in InputProvider, out Output, axis Axis) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("treasure: read %s: %w", axis, err)
		}
		v, err := in.NextCoordinate(ctx, axis, s.Size())
		if err != nil {
			return 0, fmt.Errorf("treasure: read %s: %w", axis, err)
		}
		if err := s.CheckAxis(axis, v); err != nil {
			out.Rejected(err)
			continue
		}
		return v, nil
	}
}
