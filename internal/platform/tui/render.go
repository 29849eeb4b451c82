package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/platform/theme"
	"github.com/vovakirdan/treasure-map/internal/treasure"
)

// Screen styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	winStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	loseStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	treasureMark = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")).Render("$")
)

// cellWidth is the number of columns per board cell.
const cellWidth = 3

// render draws the whole game screen.
func (m Model) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TREASURE MAP"))
	b.WriteString("\n")

	b.WriteString(boardStyle.Render(m.renderBoard()))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(m.renderStatus()))
	b.WriteString("\n\n")

	if m.session != nil && !m.session.State().Terminal() {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderBoard draws the grid with guessed cells coloured by hint.
// x grows to the right, y grows downwards, both starting at 1.
func (m Model) renderBoard() string {
	if m.session == nil {
		return ""
	}
	size := m.session.Size()
	reveal := m.session.State().Terminal()
	target := m.session.Board().Target()
	renderer := lipgloss.DefaultRenderer()

	var b strings.Builder

	// Column header
	b.WriteString(strings.Repeat(" ", cellWidth))
	for x := 1; x <= size; x++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*d", cellWidth, x)))
	}
	b.WriteString("\n")

	for y := 1; y <= size; y++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*d", cellWidth, y)))
		for x := 1; x <= size; x++ {
			c := core.NewCoord(x, y)
			pad := strings.Repeat(" ", cellWidth-1)

			switch hint, guessed := m.hints[c]; {
			case reveal && c == target:
				b.WriteString(pad + treasureMark)
			case guessed:
				b.WriteString(pad + theme.HintStyle(renderer, hint).Render(theme.HintGlyph(hint)))
			default:
				b.WriteString(pad + emptyStyle.Render(theme.HintGlyph(treasure.HintNone)))
			}
		}
		if y < size {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderStatus shows attempts, the last hint and any feedback.
func (m Model) renderStatus() string {
	if m.session == nil {
		return ""
	}

	lines := []string{
		fmt.Sprintf("Attempt %d of %d  ·  %d left",
			m.session.AttemptsUsed(), m.session.MaxAttempts(), m.session.AttemptsRemaining()),
	}

	if m.last.Accepted {
		hint := theme.HintStyle(lipgloss.DefaultRenderer(), m.last.Hint).Render(theme.HintText(m.last.Hint))
		lines = append(lines, fmt.Sprintf("%v: %s", m.last.Guess, hint))
	}

	if m.message != "" {
		style := statusStyle
		if m.isError {
			style = errorStyle
		}
		lines = append(lines, style.Render(m.message))
	}

	switch m.session.State() {
	case treasure.StateWon:
		lines = append(lines, winStyle.Render(fmt.Sprintf("Congratulations! You win! It took you %d attempts.", m.session.AttemptsUsed())))
		lines = append(lines, "Press r for a new map or q to quit.")
	case treasure.StateLost:
		lines = append(lines, loseStyle.Render(fmt.Sprintf("You lose! The treasure was at %v.", m.session.Board().Target())))
		lines = append(lines, "Press r for a new map or q to quit.")
	}

	return strings.Join(lines, "\n")
}
