package treasure

// Hint is a proximity category derived from the Manhattan distance between a
// guess and the treasure. Values are ordered from warmest to coldest, so a
// farther guess never compares lower than a nearer one.
type Hint int

const (
	HintNone     Hint = iota // No hint (rejected guess)
	HintFound                // Distance 0
	HintVeryHot              // Distance 1
	HintHot                  // Distance 2-3
	HintWarm                 // Distance 4-5
	HintCold                 // Distance 6-7
	HintVeryCold             // Distance 8 and beyond
)

// hintBand is an inclusive upper distance bound for a category.
type hintBand struct {
	maxDistance int
	hint        Hint
}

// hintBands must stay sorted by maxDistance.
var hintBands = []hintBand{
	{0, HintFound},
	{1, HintVeryHot},
	{3, HintHot},
	{5, HintWarm},
	{7, HintCold},
}

// HintForDistance maps a Manhattan distance to its category.
// Negative distances are treated as zero.
func HintForDistance(d int) Hint {
	if d < 0 {
		d = 0
	}
	for _, b := range hintBands {
		if d <= b.maxDistance {
			return b.hint
		}
	}
	return HintVeryCold
}

// String returns the canonical category name.
func (h Hint) String() string {
	switch h {
	case HintNone:
		return "none"
	case HintFound:
		return "found"
	case HintVeryHot:
		return "very hot"
	case HintHot:
		return "hot"
	case HintWarm:
		return "warm"
	case HintCold:
		return "cold"
	case HintVeryCold:
		return "very cold"
	default:
		return "unknown"
	}
}

// ParseHint converts a canonical category name back to a Hint.
// Unknown names yield HintNone and false.
func ParseHint(s string) (Hint, bool) {
	for h := HintFound; h <= HintVeryCold; h++ {
		if h.String() == s {
			return h, true
		}
	}
	return HintNone, false
}

// Warmer reports whether h is strictly closer to the treasure than other.
func (h Hint) Warmer(other Hint) bool {
	return h != HintNone && (other == HintNone || h < other)
}
