// Package console provides a line-based front end for terminals and pipes:
// a prompt-driven input provider and a plain text output sink.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

// Prompter reads integers from a line-oriented reader, re-prompting on
// anything that is not a whole number. It implements treasure.InputProvider.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter reading from r and prompting on w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(r), out: w}
}

// NextCoordinate prompts for one axis. Range checks are left to the session
// so that the rejection message comes from a single place.
func (p *Prompter) NextCoordinate(ctx context.Context, axis treasure.Axis, size int) (int, error) {
	prompt := fmt.Sprintf("Enter the %s (1 to %d): ", axis, size)
	for {
		v, err := p.readInt(ctx, prompt)
		if errors.Is(err, errNotANumber) {
			fmt.Fprintln(p.out, "Error: please enter a whole number.")
			continue
		}
		return v, err
	}
}

// ReadSize prompts until the player enters a usable board size.
func (p *Prompter) ReadSize(ctx context.Context) (int, error) {
	for {
		v, err := p.readInt(ctx, "Choose the size of the map: ")
		if errors.Is(err, errNotANumber) || (err == nil && treasure.ValidateSize(v) != nil) {
			fmt.Fprintf(p.out, "Invalid input. Please enter a number greater than %d.\n", core.MinBoardSize)
			continue
		}
		return v, err
	}
}

var errNotANumber = errors.New("console: not a number")

func (p *Prompter) readInt(ctx context.Context, prompt string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	fmt.Fprint(p.out, prompt)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, fmt.Errorf("console: read input: %w", err)
		}
		return 0, io.EOF
	}

	v, err := strconv.Atoi(strings.TrimSpace(p.scanner.Text()))
	if err != nil {
		return 0, errNotANumber
	}
	return v, nil
}
