package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hatchsite/hatch/internal/genes"
)

func noRender(Context) Fragment { return Fragment{} }

func testDNA() genes.DNA {
	return genes.DNA{Codes: map[genes.Category]string{
		genes.HeroStyle:  "H1",
		genes.PageLayout: "L1",
	}}
}

func TestScoreGeneMatches(t *testing.T) {
	r := New(zap.NewNop())
	v := &Variant{ID: "a", Category: "hero", Match: map[genes.Category]string{
		genes.HeroStyle:  "H1",
		genes.PageLayout: "L5",
	}}
	// one of two genes hit
	assert.InDelta(t, 0.5, r.Score(v, testDNA(), 0.3), 0.0001)
}

func TestScoreChaosRange(t *testing.T) {
	r := New(zap.NewNop())
	v := &Variant{ID: "a", Category: "hero", Chaos: &ChaosRange{Min: 0.2, Max: 0.6}}

	// inside the band: full half point over a half-point maximum
	assert.InDelta(t, 1.0, r.Score(v, testDNA(), 0.4), 0.0001)

	// outside decays linearly, zero at distance 0.5
	assert.InDelta(t, 0.5, r.Score(v, testDNA(), 0.85), 0.0001)
	assert.InDelta(t, 0.2, r.Score(v, testDNA(), 1.0), 0.0001)
	assert.InDelta(t, 0.0, r.Score(v, testDNA(), 1.1), 0.0001)
}

func TestScorePriority(t *testing.T) {
	r := New(zap.NewNop())
	v := &Variant{ID: "a", Category: "hero", Priority: 2}
	// priority*0.1 over the fixed 0.5 maximum
	assert.InDelta(t, 0.4, r.Score(v, testDNA(), 0.3), 0.0001)
}

func TestScoreNoCriteria(t *testing.T) {
	r := New(zap.NewNop())
	v := &Variant{ID: "a", Category: "hero"}
	assert.Zero(t, r.Score(v, testDNA(), 0.3))
}

func TestFindBestVariant(t *testing.T) {
	r := New(zap.NewNop())
	r.Register(&Variant{ID: "loose", Category: "hero", Priority: 1, Render: noRender})
	r.Register(&Variant{ID: "tuned", Category: "hero", Match: map[genes.Category]string{genes.HeroStyle: "H1"}, Render: noRender})

	best := r.FindBestVariant("hero", testDNA(), 0.3)
	require.NotNil(t, best)
	assert.Equal(t, "tuned", best.ID)
	assert.Equal(t, "hero", best.Category)
}

func TestFindBestVariantTieKeepsFirst(t *testing.T) {
	r := New(zap.NewNop())
	r.Register(&Variant{ID: "first", Category: "nav", Priority: 1, Render: noRender})
	r.Register(&Variant{ID: "second", Category: "nav", Priority: 1, Render: noRender})

	best := r.FindBestVariant("nav", testDNA(), 0.3)
	require.NotNil(t, best)
	assert.Equal(t, "first", best.ID)
}

func TestFindBestVariantEmptyCategory(t *testing.T) {
	r := New(zap.NewNop())
	assert.Nil(t, r.FindBestVariant("stats", testDNA(), 0.3))
}

func TestRegisterReplacesDuplicate(t *testing.T) {
	r := New(zap.NewNop())
	r.Register(&Variant{ID: "hero-a", Category: "hero", Priority: 1, Render: noRender})
	r.Register(&Variant{ID: "hero-a", Category: "hero", Priority: 9, Render: noRender})

	best := r.FindBestVariant("hero", testDNA(), 0.3)
	require.NotNil(t, best)
	assert.Equal(t, 9.0, best.Priority)
	assert.Len(t, r.FindMatchingVariants("hero", testDNA(), 0.3, 0), 1)
}

func TestFindMatchingVariantsThreshold(t *testing.T) {
	r := New(zap.NewNop())
	r.Register(&Variant{ID: "hit", Category: "hero", Match: map[genes.Category]string{genes.HeroStyle: "H1"}, Render: noRender})
	r.Register(&Variant{ID: "miss", Category: "hero", Match: map[genes.Category]string{genes.HeroStyle: "H6"}, Render: noRender})

	hits := r.FindMatchingVariants("hero", testDNA(), 0.3, DefaultThreshold)
	require.Len(t, hits, 1)
	assert.Equal(t, "hit", hits[0].ID)

	all := r.FindMatchingVariants("hero", testDNA(), 0.3, 0)
	require.Len(t, all, 2)
	assert.Equal(t, "hit", all[0].ID, "sorted by score descending")
}

func TestByID(t *testing.T) {
	r := New(zap.NewNop())
	r.Register(&Variant{ID: "hero-split", Category: "hero", Render: noRender})
	assert.NotNil(t, r.ByID("hero", "hero-split"))
	assert.Nil(t, r.ByID("hero", "hero-stacked"))
	assert.Nil(t, r.ByID("nav", "hero-split"))
}
