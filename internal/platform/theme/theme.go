// Package theme holds the display text and colours shared by the console and
// Bubble Tea front ends.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treasure-map/internal/treasure"
)

// hintColors maps each hint to a 256-colour palette index, red (hot) to blue (cold).
var hintColors = map[treasure.Hint]lipgloss.Color{
	treasure.HintFound:    lipgloss.Color("226"), // Gold
	treasure.HintVeryHot:  lipgloss.Color("196"), // Red
	treasure.HintHot:      lipgloss.Color("208"), // Orange
	treasure.HintWarm:     lipgloss.Color("220"), // Yellow
	treasure.HintCold:     lipgloss.Color("45"),  // Light blue
	treasure.HintVeryCold: lipgloss.Color("27"),  // Deep blue
}

// HintColor returns the colour for a hint, or a dim gray for HintNone.
func HintColor(h treasure.Hint) lipgloss.Color {
	if c, ok := hintColors[h]; ok {
		return c
	}
	return lipgloss.Color("240")
}

// HintText returns the player-facing line for a hint.
func HintText(h treasure.Hint) string {
	switch h {
	case treasure.HintFound:
		return "You found the treasure!!!"
	case treasure.HintVeryHot:
		return "Very hot!"
	case treasure.HintHot:
		return "Hot!"
	case treasure.HintWarm:
		return "Warm!"
	case treasure.HintCold:
		return "Cold."
	case treasure.HintVeryCold:
		return "Very cold."
	default:
		return ""
	}
}

// HintGlyph returns a single-cell marker for a guessed cell on the map.
func HintGlyph(h treasure.Hint) string {
	switch h {
	case treasure.HintFound:
		return "$"
	case treasure.HintVeryHot:
		return "#"
	case treasure.HintHot:
		return "*"
	case treasure.HintWarm:
		return "+"
	case treasure.HintCold:
		return "o"
	case treasure.HintVeryCold:
		return "."
	default:
		return "·"
	}
}

// HintStyle returns a foreground style for h using the given renderer.
// Passing the renderer of the destination writer keeps colour detection
// correct for SSH sessions, pipes and test buffers.
func HintStyle(r *lipgloss.Renderer, h treasure.Hint) lipgloss.Style {
	style := r.NewStyle().Foreground(HintColor(h))
	if h == treasure.HintFound {
		style = style.Bold(true)
	}
	return style
}
