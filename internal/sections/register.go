// SPDX-License-Identifier: MIT
package sections

import (
	"github.com/hatchsite/hatch/internal/genes"
	"github.com/hatchsite/hatch/internal/registry"
)

// RegisterBuiltins populates a registry with the built-in variant set.
// Call once at startup; the registry is read-only afterward.
func RegisterBuiltins(reg *registry.Registry) {
	reg.Register(&registry.Variant{
		ID:       HeroCenteredID,
		Category: CategoryHero,
		Match:    map[genes.Category]string{genes.HeroStyle: "H1"},
		Chaos:    &registry.ChaosRange{Min: 0, Max: 0.5},
		Priority: 1,
		Render:   renderHeroCentered,
	})
	reg.Register(&registry.Variant{
		ID:       HeroSplitID,
		Category: CategoryHero,
		Match:    map[genes.Category]string{genes.HeroStyle: "H3"},
		Chaos:    &registry.ChaosRange{Min: 0.2, Max: 0.8},
		Render:   renderHeroSplit,
	})
	reg.Register(&registry.Variant{
		ID:       HeroMinimalID,
		Category: CategoryHero,
		Match:    map[genes.Category]string{genes.HeroStyle: "H5", genes.PageLayout: genes.LayoutSingleColumn},
		Chaos:    &registry.ChaosRange{Min: 0, Max: 0.3},
		Render:   renderHeroMinimal,
	})

	reg.Register(&registry.Variant{
		ID:       "nav-bar",
		Category: CategoryNav,
		Match:    map[genes.Category]string{genes.NavStyle: "N1"},
		Priority: 1,
		Render:   renderNavBar,
	})
	reg.Register(&registry.Variant{
		ID:       "nav-centered",
		Category: CategoryNav,
		Match:    map[genes.Category]string{genes.NavStyle: "N3"},
		Render:   renderNavCentered,
	})

	reg.Register(&registry.Variant{
		ID:       "services-cards",
		Category: CategoryServices,
		Match:    map[genes.Category]string{genes.PageLayout: "L1"},
		Priority: 1,
		Render:   renderServiceCards,
	})
	reg.Register(&registry.Variant{
		ID:       "services-list",
		Category: CategoryServices,
		Match:    map[genes.Category]string{genes.PageLayout: genes.LayoutSingleColumn},
		Chaos:    &registry.ChaosRange{Min: 0, Max: 0.4},
		Render:   renderServiceList,
	})

	reg.Register(&registry.Variant{
		ID:       "testimonials-cards",
		Category: CategoryTestimonials,
		Chaos:    &registry.ChaosRange{Min: 0, Max: 0.6},
		Priority: 1,
		Render:   renderTestimonialCards,
	})
	reg.Register(&registry.Variant{
		ID:       "testimonials-spotlight",
		Category: CategoryTestimonials,
		Match:    map[genes.Category]string{genes.MotionLevel: genes.MotionDramatic},
		Chaos:    &registry.ChaosRange{Min: 0.6, Max: 1},
		Render:   renderTestimonialSpotlight,
	})

	reg.Register(&registry.Variant{
		ID:       "stats-row",
		Category: CategoryStats,
		Priority: 1,
		Render:   renderStatsRow,
	})
	reg.Register(&registry.Variant{
		ID:       "team-grid",
		Category: CategoryTeam,
		Priority: 1,
		Render:   renderTeamGrid,
	})
	reg.Register(&registry.Variant{
		ID:       "gallery-flow",
		Category: CategoryGallery,
		Priority: 1,
		Render:   renderGallery,
	})
	reg.Register(&registry.Variant{
		ID:       "faq-list",
		Category: CategoryFAQ,
		Priority: 1,
		Render:   renderFAQList,
	})
	reg.Register(&registry.Variant{
		ID:       "pricing-tiers",
		Category: CategoryPricing,
		Priority: 1,
		Render:   renderPricingTiers,
	})
	reg.Register(&registry.Variant{
		ID:       "contact-block",
		Category: CategoryContact,
		Priority: 1,
		Render:   renderContactBlock,
	})
	reg.Register(&registry.Variant{
		ID:       "footer-simple",
		Category: CategoryFooter,
		Priority: 1,
		Render:   renderFooter,
	})
	reg.Register(&registry.Variant{
		ID:       "cta-band",
		Category: CategoryCTA,
		Priority: 1,
		Render:   renderCTABand,
	})
}
