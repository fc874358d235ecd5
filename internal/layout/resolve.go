package layout

import "github.com/hatchsite/hatch/internal/genes"

// Kind is the CSS strategy a resolved layout renders with.
type Kind string

const (
	KindGrid    Kind = "grid"    // CSS grid with span pattern
	KindFlex    Kind = "flex"    // flexible equal-width row
	KindColumns Kind = "columns" // column-flow masonry
	KindStack   Kind = "stack"   // vertical stack
)

// Config is the resolved layout for one content section.
type Config struct {
	Kind     Kind
	Columns  int
	Pattern  []int
	Gap      Gap
	Timeline bool // stack rendered with a timeline rail
	Chaos    float64
}

// Options carries the caller-level overrides for a resolve call.
type Options struct {
	Chaos  *float64
	VibeID string
}

// EffectiveChaos resolves chaos with explicit > vibe-derived >
// gene-derived precedence; first non-null wins.
func EffectiveChaos(opts Options, d genes.DNA) float64 {
	if opts.Chaos != nil {
		return *opts.Chaos
	}
	if opts.VibeID != "" {
		return genes.VibeByID(opts.VibeID).Chaos
	}
	return d.Chaos
}

// ResolveServices maps a service count and DNA to a concrete layout.
// Three layout genes bypass the pattern library: single column,
// timeline, and masonry.
func ResolveServices(count int, d genes.DNA, opts Options) Config {
	chaos := EffectiveChaos(opts, d)
	switch d.Get(genes.PageLayout) {
	case genes.LayoutSingleColumn:
		return stackConfig(chaos, false)
	case genes.LayoutTimeline:
		return stackConfig(chaos, true)
	case genes.LayoutMasonry:
		return masonryConfig(count, chaos)
	}
	return gridConfig(count, chaos)
}

// ResolveTestimonials: one or two quotes read as a feature row, not a
// grid, so they bypass the pattern library.
func ResolveTestimonials(count int, d genes.DNA, opts Options) Config {
	chaos := EffectiveChaos(opts, d)
	if count <= 2 {
		return Config{Kind: KindFlex, Columns: count, Pattern: uniformPattern(count), Gap: GapForChaos(chaos), Chaos: chaos}
	}
	if d.Get(genes.PageLayout) == genes.LayoutMasonry {
		return masonryConfig(count, chaos)
	}
	return gridConfig(count, chaos)
}

// ResolveStats keeps counters on one equal-width row; stats never go
// asymmetric.
func ResolveStats(count int, d genes.DNA, opts Options) Config {
	chaos := EffectiveChaos(opts, d)
	cols := count
	if cols > 4 {
		cols = 4
	}
	return Config{Kind: KindFlex, Columns: cols, Pattern: uniformPattern(count), Gap: GapForChaos(chaos), Chaos: chaos}
}

// ResolveTeam lays members out like services minus the timeline case.
func ResolveTeam(count int, d genes.DNA, opts Options) Config {
	chaos := EffectiveChaos(opts, d)
	if d.Get(genes.PageLayout) == genes.LayoutSingleColumn {
		return stackConfig(chaos, false)
	}
	if d.Get(genes.PageLayout) == genes.LayoutMasonry {
		return masonryConfig(count, chaos)
	}
	return gridConfig(count, chaos)
}

// ResolveGallery prefers column-flow above the medium band, where the
// staggered bottoms read as intentional.
func ResolveGallery(count int, d genes.DNA, opts Options) Config {
	chaos := EffectiveChaos(opts, d)
	if d.Get(genes.PageLayout) == genes.LayoutMasonry || chaos > ChaosGapMedium {
		return masonryConfig(count, chaos)
	}
	return gridConfig(count, chaos)
}

// ResolveFAQ defaults to a single column; questions are read top to
// bottom regardless of how loud the rest of the page is.
func ResolveFAQ(count int, d genes.DNA, opts Options) Config {
	chaos := EffectiveChaos(opts, d)
	return stackConfig(chaos, false)
}

// ResolvePricing keeps up to three tiers equal width so the middle
// tier anchors the comparison; larger sets fall back to the library.
func ResolvePricing(count int, d genes.DNA, opts Options) Config {
	chaos := EffectiveChaos(opts, d)
	if count <= 3 {
		return Config{Kind: KindFlex, Columns: count, Pattern: uniformPattern(count), Gap: GapForChaos(chaos), Chaos: chaos}
	}
	return gridConfig(count, chaos)
}

func gridConfig(count int, chaos float64) Config {
	pattern := SelectPattern(count, chaos)
	return Config{
		Kind:    KindGrid,
		Columns: ColumnCount(pattern),
		Pattern: pattern,
		Gap:     GapForChaos(chaos),
		Chaos:   chaos,
	}
}

func stackConfig(chaos float64, timeline bool) Config {
	return Config{Kind: KindStack, Columns: 1, Gap: GapForChaos(chaos), Timeline: timeline, Chaos: chaos}
}

// masonryConfig derives the column-flow count from the item count.
func masonryConfig(count int, chaos float64) Config {
	cols := 2
	switch {
	case count > 6:
		cols = 4
	case count > 3:
		cols = 3
	}
	return Config{Kind: KindColumns, Columns: cols, Gap: GapForChaos(chaos), Chaos: chaos}
}
