// SPDX-License-Identifier: MIT
package assemble

import "github.com/hatchsite/hatch/internal/sections"

// SectionSpec is one slot in an industry's section blueprint.
type SectionSpec struct {
	Category      string
	Required      bool
	ForcedVariant string // set by the Director Cut, empty otherwise
}

func spec(category string, required bool) SectionSpec {
	return SectionSpec{Category: category, Required: required}
}

// defaultBlueprint is the generic section list used for industries
// without a curated blueprint.
var defaultBlueprint = []SectionSpec{
	spec(sections.CategoryNav, true),
	spec(sections.CategoryHero, true),
	spec(sections.CategoryServices, false),
	spec(sections.CategoryStats, false),
	spec(sections.CategoryTestimonials, false),
	spec(sections.CategoryGallery, false),
	spec(sections.CategoryTeam, false),
	spec(sections.CategoryPricing, false),
	spec(sections.CategoryFAQ, false),
	spec(sections.CategoryCTA, false),
	spec(sections.CategoryContact, true),
	spec(sections.CategoryFooter, true),
}

// industryBlueprints curates section order per industry. Trades put
// social proof before the service list; showcase industries lead with
// the gallery.
var industryBlueprints = map[string][]SectionSpec{
	"plumber":     tradesBlueprint,
	"electrician": tradesBlueprint,
	"hvac":        tradesBlueprint,
	"auto-repair": tradesBlueprint,
	"landscaping": showcaseBlueprint,
	"photography": showcaseBlueprint,
	"tattoo":      showcaseBlueprint,
	"agency":      showcaseBlueprint,
	"restaurant":  hospitalityBlueprint,
	"cafe":        hospitalityBlueprint,
	"salon":       hospitalityBlueprint,
	"spa":         hospitalityBlueprint,
	"gym":         hospitalityBlueprint,
	"law-firm":    professionalBlueprint,
	"consulting":  professionalBlueprint,
	"accountant":  professionalBlueprint,
	"real-estate": professionalBlueprint,
	"dentist":     professionalBlueprint,
	"architect":   showcaseBlueprint,
}

var tradesBlueprint = []SectionSpec{
	spec(sections.CategoryNav, true),
	spec(sections.CategoryHero, true),
	spec(sections.CategoryServices, true),
	spec(sections.CategoryStats, false),
	spec(sections.CategoryTestimonials, false),
	spec(sections.CategoryFAQ, false),
	spec(sections.CategoryCTA, false),
	spec(sections.CategoryContact, true),
	spec(sections.CategoryFooter, true),
}

var showcaseBlueprint = []SectionSpec{
	spec(sections.CategoryNav, true),
	spec(sections.CategoryHero, true),
	spec(sections.CategoryGallery, false),
	spec(sections.CategoryServices, false),
	spec(sections.CategoryTestimonials, false),
	spec(sections.CategoryTeam, false),
	spec(sections.CategoryCTA, false),
	spec(sections.CategoryContact, true),
	spec(sections.CategoryFooter, true),
}

var hospitalityBlueprint = []SectionSpec{
	spec(sections.CategoryNav, true),
	spec(sections.CategoryHero, true),
	spec(sections.CategoryServices, false),
	spec(sections.CategoryGallery, false),
	spec(sections.CategoryTestimonials, false),
	spec(sections.CategoryTeam, false),
	spec(sections.CategoryPricing, false),
	spec(sections.CategoryContact, true),
	spec(sections.CategoryFooter, true),
}

var professionalBlueprint = []SectionSpec{
	spec(sections.CategoryNav, true),
	spec(sections.CategoryHero, true),
	spec(sections.CategoryServices, true),
	spec(sections.CategoryTeam, false),
	spec(sections.CategoryStats, false),
	spec(sections.CategoryTestimonials, false),
	spec(sections.CategoryFAQ, false),
	spec(sections.CategoryContact, true),
	spec(sections.CategoryFooter, true),
}

// blueprintFor returns the curated blueprint for an industry, or the
// default list and false for unknown keys.
func blueprintFor(industry string) ([]SectionSpec, bool) {
	if bp, ok := industryBlueprints[industry]; ok {
		return copySpecs(bp), true
	}
	return copySpecs(defaultBlueprint), false
}

func copySpecs(in []SectionSpec) []SectionSpec {
	out := make([]SectionSpec, len(in))
	copy(out, in)
	return out
}
