package config

// DifficultyPreset represents a named board size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in increasing difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// SizeForPreset returns the board size for a preset.
// Larger boards give more attempts but a much larger search space.
func SizeForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 5, true
	case DifficultyNormal:
		return 10, true
	case DifficultyHard:
		return 15, true
	default:
		return 0, false
	}
}

// Valid reports whether the preset is known.
func (p DifficultyPreset) Valid() bool {
	_, ok := SizeForPreset(p)
	return ok
}
