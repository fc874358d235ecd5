package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hatchsite/hatch/internal/genes"
)

func dnaWith(code string, chaos float64) genes.DNA {
	return genes.DNA{
		Codes: map[genes.Category]string{genes.PageLayout: code},
		Chaos: chaos,
	}
}

func TestEffectiveChaosPrecedence(t *testing.T) {
	d := dnaWith("L1", 0.2)

	explicit := 0.9
	assert.Equal(t, 0.9, EffectiveChaos(Options{Chaos: &explicit, VibeID: "minimal"}, d))

	// vibe beats gene-derived
	assert.Equal(t, genes.VibeByID("maverick").Chaos, EffectiveChaos(Options{VibeID: "maverick"}, d))

	// gene-derived is the floor
	assert.Equal(t, 0.2, EffectiveChaos(Options{}, d))
}

func TestResolveServicesSpecialGenes(t *testing.T) {
	cfg := ResolveServices(5, dnaWith(genes.LayoutSingleColumn, 0.2), Options{})
	assert.Equal(t, KindStack, cfg.Kind)
	assert.Equal(t, 1, cfg.Columns)
	assert.False(t, cfg.Timeline)

	cfg = ResolveServices(5, dnaWith(genes.LayoutTimeline, 0.2), Options{})
	assert.Equal(t, KindStack, cfg.Kind)
	assert.True(t, cfg.Timeline)

	cfg = ResolveServices(5, dnaWith(genes.LayoutMasonry, 0.2), Options{})
	assert.Equal(t, KindColumns, cfg.Kind)
	assert.Equal(t, 3, cfg.Columns)
}

func TestResolveServicesGrid(t *testing.T) {
	cfg := ResolveServices(4, dnaWith("L1", 0.0), Options{})
	assert.Equal(t, KindGrid, cfg.Kind)
	assert.Len(t, cfg.Pattern, 4)
	assert.Equal(t, ColumnCount(cfg.Pattern), cfg.Columns)
}

func TestGapBanding(t *testing.T) {
	assert.Equal(t, GapSmall, GapForChaos(0.1))
	assert.Equal(t, GapSmall, GapForChaos(0.3))
	assert.Equal(t, GapMedium, GapForChaos(0.31))
	assert.Equal(t, GapMedium, GapForChaos(0.6))
	assert.Equal(t, GapLarge, GapForChaos(0.61))
}

func TestResolveTestimonialsBypass(t *testing.T) {
	for _, count := range []int{1, 2} {
		cfg := ResolveTestimonials(count, dnaWith("L1", 0.9), Options{})
		assert.Equal(t, KindFlex, cfg.Kind, "count %d should bypass the pattern library", count)
	}
	cfg := ResolveTestimonials(4, dnaWith("L1", 0.2), Options{})
	assert.Equal(t, KindGrid, cfg.Kind)
}

func TestResolveFAQSingleColumn(t *testing.T) {
	cfg := ResolveFAQ(8, dnaWith("L4", 0.9), Options{})
	assert.Equal(t, KindStack, cfg.Kind)
	assert.Equal(t, 1, cfg.Columns)
}

func TestResolvePricingEqualWidth(t *testing.T) {
	for _, count := range []int{1, 2, 3} {
		cfg := ResolvePricing(count, dnaWith("L2", 0.8), Options{})
		assert.Equal(t, KindFlex, cfg.Kind, "tiers <= 3 are always equal width")
		assert.Equal(t, count, cfg.Columns)
	}
	cfg := ResolvePricing(4, dnaWith("L2", 0.2), Options{})
	assert.Equal(t, KindGrid, cfg.Kind)
}

func TestResolveStatsCapsColumns(t *testing.T) {
	cfg := ResolveStats(6, dnaWith("L1", 0.2), Options{})
	assert.Equal(t, 4, cfg.Columns)
	assert.Len(t, cfg.Pattern, 6)
}

func TestResolveGalleryPrefersMasonry(t *testing.T) {
	cfg := ResolveGallery(6, dnaWith("L1", 0.5), Options{})
	assert.Equal(t, KindColumns, cfg.Kind)

	cfg = ResolveGallery(6, dnaWith("L1", 0.1), Options{})
	assert.Equal(t, KindGrid, cfg.Kind)
}
