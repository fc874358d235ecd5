// SPDX-License-Identifier: MIT
package registry

import (
	"sort"

	"go.uber.org/zap"

	"github.com/hatchsite/hatch/internal/colors"
	"github.com/hatchsite/hatch/internal/genes"
	"github.com/hatchsite/hatch/internal/layout"
)

// Context is the render input handed to a variant: the resolved genes,
// palette and layout plus the section's extracted content.
type Context struct {
	DNA     genes.DNA
	Chaos   float64
	Palette colors.Palette
	Layout  layout.Config
	Content any
}

// Fragment is one rendered section: markup plus the styles it needs.
type Fragment struct {
	Markup string
	Styles string
}

// RenderFunc renders a section from its context. Render functions are
// pure; two calls with the same context produce identical fragments.
type RenderFunc func(Context) Fragment

// ChaosRange is the chaos band a variant is tuned for.
type ChaosRange struct {
	Min, Max float64
}

// Variant is a registered renderer for one section category, tagged
// with the partial gene combination and chaos band it suits.
type Variant struct {
	ID       string
	Category string
	Match    map[genes.Category]string
	Chaos    *ChaosRange
	Priority float64
	Render   RenderFunc
}

// Registry indexes variants by section category. It is populated once
// at startup; lookups are read-only after that, so concurrent builds
// need no locking.
type Registry struct {
	log        *zap.Logger
	byCategory map[string][]*Variant
}

// New returns an empty registry logging through log (zap.NewNop is
// fine for tests).
func New(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{log: log, byCategory: make(map[string][]*Variant)}
}

// Register inserts a variant. A duplicate ID within the category
// replaces the prior entry in place with a warning.
func (r *Registry) Register(v *Variant) {
	list := r.byCategory[v.Category]
	for i, existing := range list {
		if existing.ID == v.ID {
			r.log.Warn("replacing registered variant",
				zap.String("category", v.Category),
				zap.String("id", v.ID))
			list[i] = v
			return
		}
	}
	r.byCategory[v.Category] = append(list, v)
}

// Score rates how well a variant fits the live DNA and chaos. Each
// required gene contributes one point to both score and maximum; a
// declared chaos range contributes up to half a point with linear
// decay outside the band; priority contributes a tenth per unit to the
// score against a fixed half-point maximum. The result is normalized
// score/maximum, or 0 when the variant declares no criteria.
func (r *Registry) Score(v *Variant, d genes.DNA, chaos float64) float64 {
	var score, maxPossible float64

	for cat, want := range v.Match {
		maxPossible++
		if d.Get(cat) == want {
			score++
		}
	}

	if v.Chaos != nil {
		maxPossible += 0.5
		score += chaosCredit(chaos, *v.Chaos)
	}

	if v.Priority > 0 {
		maxPossible += 0.5
		score += v.Priority * 0.1
	}

	if maxPossible == 0 {
		return 0
	}
	return score / maxPossible
}

// chaosCredit gives full credit inside the range and decays linearly
// with distance outside it, reaching zero half a chaos unit away.
func chaosCredit(chaos float64, rng ChaosRange) float64 {
	if chaos >= rng.Min && chaos <= rng.Max {
		return 0.5
	}
	dist := rng.Min - chaos
	if chaos > rng.Max {
		dist = chaos - rng.Max
	}
	credit := 0.5 * (1 - dist/0.5)
	if credit < 0 {
		return 0
	}
	return credit
}

// FindBestVariant returns the highest-scoring variant registered for
// the category, or nil when none is registered. Ties keep the
// first-seen variant; the comparison is strictly greater-than.
func (r *Registry) FindBestVariant(category string, d genes.DNA, chaos float64) *Variant {
	list := r.byCategory[category]
	if len(list) == 0 {
		return nil
	}
	best := list[0]
	bestScore := r.Score(best, d, chaos)
	for _, v := range list[1:] {
		if s := r.Score(v, d, chaos); s > bestScore {
			best, bestScore = v, s
		}
	}
	return best
}

// FindMatchingVariants returns every variant at or above threshold,
// sorted by score descending. Sorting is stable so equal scores keep
// registration order.
func (r *Registry) FindMatchingVariants(category string, d genes.DNA, chaos float64, threshold float64) []*Variant {
	type scored struct {
		v *Variant
		s float64
	}
	var hits []scored
	for _, v := range r.byCategory[category] {
		if s := r.Score(v, d, chaos); s >= threshold {
			hits = append(hits, scored{v, s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].s > hits[j].s })
	out := make([]*Variant, len(hits))
	for i, h := range hits {
		out[i] = h.v
	}
	return out
}

// ByID returns the variant registered under id for a category, or nil.
// The Director Cut uses this to force a named variant past scoring.
func (r *Registry) ByID(category, id string) *Variant {
	for _, v := range r.byCategory[category] {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// Categories returns the section categories with at least one variant.
func (r *Registry) Categories() []string {
	out := make([]string, 0, len(r.byCategory))
	for cat := range r.byCategory {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// DefaultThreshold is the cutoff FindMatchingVariants callers use when
// they have no better number.
const DefaultThreshold = 0.3
