package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treasure-map/internal/platform/theme"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

// Printer writes game progress as text. It implements treasure.Output.
// Colours are only emitted when w is a colour-capable terminal.
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w, renderer: lipgloss.NewRenderer(w)}
}

// Start prints the welcome banner.
func (p *Printer) Start(info treasure.Info) {
	title := p.renderer.NewStyle().Bold(true).Render("Welcome to the TreasureMap game!")
	fmt.Fprintln(p.out, title)
	fmt.Fprintf(p.out, "The map is %dx%d.\n", info.Size, info.Size)
	fmt.Fprintf(p.out, "You have %d attempts to find the treasure.\n", info.MaxAttempts)
	fmt.Fprintln(p.out, "You have to find the treasure by choosing coordinates.")
	fmt.Fprintln(p.out, "Enter the coordinates one by one (first x, then y).")
	fmt.Fprintln(p.out, "Good luck!")
	fmt.Fprintln(p.out)
}

// Rejected explains why a coordinate was not accepted.
func (p *Printer) Rejected(err error) {
	var rangeErr *treasure.CoordinateOutOfRangeError
	if errors.As(err, &rangeErr) {
		fmt.Fprintf(p.out, "Error: The %s must be between %d and %d.\n", rangeErr.Axis, rangeErr.Min, rangeErr.Max)
		return
	}
	fmt.Fprintf(p.out, "Error: %v\n", err)
}

// Turn reports the outcome of an accepted guess.
func (p *Printer) Turn(r treasure.Result) {
	fmt.Fprintf(p.out, "Attempt №%d\n", r.AttemptsUsed)
	fmt.Fprintf(p.out, "You have %d attempts left.\n", r.AttemptsRemaining)
	fmt.Fprintln(p.out, theme.HintStyle(p.renderer, r.Hint).Render(theme.HintText(r.Hint)))

	switch r.State {
	case treasure.StateWon:
		fmt.Fprintln(p.out, "Congratulations! You win!")
		fmt.Fprintf(p.out, "It took you %d attempts.\n", r.AttemptsUsed)
	case treasure.StateLost:
		fmt.Fprintln(p.out, "You lose! You have used all your attempts.")
	default:
		fmt.Fprintln(p.out)
	}
}
