package genes

import (
	"maps"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVibeSubsetsAreValidCodes(t *testing.T) {
	for _, v := range ListVibes() {
		for cat, subset := range v.Allowed {
			global := AllowedCodes(cat)
			require.NotEmptyf(t, global, "vibe %s restricts unknown category %s", v.ID, cat)
			for _, code := range subset {
				assert.Containsf(t, global, code, "vibe %s allows %s outside %s's enumeration", v.ID, code, cat)
			}
		}
		assert.GreaterOrEqual(t, v.Chaos, 0.0)
		assert.LessOrEqual(t, v.Chaos, 1.0)
	}
}

func TestVibeByIDFallback(t *testing.T) {
	assert.Equal(t, DefaultVibeID, VibeByID("no-such-vibe").ID)
	assert.Equal(t, "maverick", VibeByID("maverick").ID)
}

func TestIndustryVibeFallback(t *testing.T) {
	assert.Equal(t, DefaultVibeID, IndustryVibe("zeppelin-repair").ID)
	assert.Equal(t, "warm", IndustryVibe("restaurant").ID)
	assert.Equal(t, defaultSeed, IndustrySeed("zeppelin-repair"))
}

func TestGenerateConstrainedDNAIsValid(t *testing.T) {
	for _, v := range ListVibes() {
		for seed := int64(0); seed < 50; seed++ {
			d := GenerateConstrainedDNA(v, rand.New(rand.NewSource(seed)))
			require.NoErrorf(t, Validate(d), "vibe %s seed %d generated invalid codes", v.ID, seed)
			assert.Truef(t, IsValid(d, v), "vibe %s seed %d escaped the vibe's constraints", v.ID, seed)
			for _, cat := range Categories() {
				assert.NotEmptyf(t, d.Get(cat), "category %s unpopulated", cat)
			}
			assert.Equal(t, v.Chaos, d.Chaos)
		}
	}
}

func TestGenerateConstrainedDNAReproducible(t *testing.T) {
	v := VibeByID("bold")
	a := GenerateConstrainedDNA(v, rand.New(rand.NewSource(42)))
	b := GenerateConstrainedDNA(v, rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Codes, b.Codes)

	// other seeds land elsewhere in the constrained space
	differs := false
	for seed := int64(43); seed < 53 && !differs; seed++ {
		c := GenerateConstrainedDNA(v, rand.New(rand.NewSource(seed)))
		differs = !maps.Equal(a.Codes, c.Codes)
	}
	assert.True(t, differs)
}

func TestDerivedGenesFollowVisualDesign(t *testing.T) {
	v := VibeByID("trustworthy")
	d := GenerateConstrainedDNA(v, rand.New(rand.NewSource(1)))
	derived := derivedFromVisual[d.Get(VisualDesign)]
	require.NotNil(t, derived)
	assert.Equal(t, derived[CornerRadius], d.Get(CornerRadius))
	assert.Equal(t, derived[HoverEffect], d.Get(HoverEffect))
	assert.Equal(t, derived[Texture], d.Get(Texture))
}

func TestValidateRejectsUnknownCode(t *testing.T) {
	bad := DNA{Codes: map[Category]string{VisualDesign: "D99"}}
	assert.Error(t, Validate(bad))

	worse := DNA{Codes: map[Category]string{Category("mood-ring"): "Z1"}}
	assert.Error(t, Validate(worse))

	ok := DNA{Codes: map[Category]string{VisualDesign: "D3"}}
	assert.NoError(t, Validate(ok))
}

func TestIsValidIgnoresUnpopulated(t *testing.T) {
	v := VibeByID("minimal")
	partial := DNA{Codes: map[Category]string{PageLayout: "L5"}}
	assert.True(t, IsValid(partial, v))

	outside := DNA{Codes: map[Category]string{PageLayout: "L4"}}
	assert.False(t, IsValid(outside, v))
}

func TestMergeExplicitWins(t *testing.T) {
	base := DNA{Codes: map[Category]string{Typography: "F1", PageLayout: "L1"}, Chaos: 0.2}
	merged := base.Merge(DNA{Codes: map[Category]string{PageLayout: "L5"}, Chaos: 0.8})
	assert.Equal(t, "F1", merged.Get(Typography))
	assert.Equal(t, "L5", merged.Get(PageLayout))
	assert.Equal(t, 0.8, merged.Chaos)

	// merge never mutates the receiver
	assert.Equal(t, "L1", base.Get(PageLayout))
}
