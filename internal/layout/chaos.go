package layout

// The chaos gates are tuned jointly; every component reads them from
// here instead of carrying its own copy.
const (
	// ChaosGapMedium is where the gap class steps up from small.
	ChaosGapMedium = 0.3
	// ChaosMotionExtras gates parallax/scroll-reveal document extras.
	ChaosMotionExtras = 0.5
	// ChaosDisplacement gates per-element offsets and the large gap class.
	ChaosDisplacement = 0.6
	// ChaosBroken gates zero-span broken grid patterns.
	ChaosBroken = 0.7
)

// Gap is the spacing class between grid items.
type Gap string

const (
	GapSmall  Gap = "small"
	GapMedium Gap = "medium"
	GapLarge  Gap = "large"
)

// GapForChaos bands chaos into a gap class.
func GapForChaos(chaos float64) Gap {
	switch {
	case chaos > ChaosDisplacement:
		return GapLarge
	case chaos > ChaosGapMedium:
		return GapMedium
	default:
		return GapSmall
	}
}

// GapPx returns the pixel size a gap class renders at.
func GapPx(g Gap) int {
	switch g {
	case GapLarge:
		return 44
	case GapMedium:
		return 28
	default:
		return 16
	}
}
