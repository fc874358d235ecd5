// SPDX-License-Identifier: MIT
package sections

import (
	"fmt"

	"github.com/hatchsite/hatch/internal/content"
	"github.com/hatchsite/hatch/internal/registry"
)

// Section categories recognized by the blueprints and the registry.
const (
	CategoryNav          = "nav"
	CategoryHero         = "hero"
	CategoryServices     = "services"
	CategoryTestimonials = "testimonials"
	CategoryStats        = "stats"
	CategoryTeam         = "team"
	CategoryGallery      = "gallery"
	CategoryFAQ          = "faq"
	CategoryPricing      = "pricing"
	CategoryContact      = "contact"
	CategoryFooter       = "footer"
	CategoryCTA          = "cta"
)

// HeroContent is what hero variants render from.
type HeroContent struct {
	BusinessName string
	Headline     string
	Tagline      string
	Phone        string
	TrustBadges  []string
}

// NavContent is what nav variants render from.
type NavContent struct {
	BusinessName string
	Phone        string
	Anchors      []string
}

// ContactContent is the raw contact block plus hours.
type ContactContent struct {
	Contact content.Contact
	Hours   map[string]string
}

// FooterContent is what the footer renders from.
type FooterContent struct {
	BusinessName string
	Contact      content.Contact
}

// CTAContent is the closing call-to-action band.
type CTAContent struct {
	BusinessName string
	Tagline      string
	Phone        string
}

// Extract builds the render input for a section category from site
// content. ok is false when the backing content is empty or absent, in
// which case the section is skipped rather than rendered hollow.
func Extract(category string, sc *content.SiteContent) (any, bool) {
	switch category {
	case CategoryNav:
		return NavContent{BusinessName: sc.BusinessName, Phone: sc.Contact.Phone, Anchors: presentAnchors(sc)}, true
	case CategoryHero:
		headline := sc.Headline
		if headline == "" {
			headline = sc.BusinessName
		}
		return HeroContent{
			BusinessName: sc.BusinessName,
			Headline:     headline,
			Tagline:      sc.Tagline,
			Phone:        sc.Contact.Phone,
			TrustBadges:  sc.TrustBadges,
		}, true
	case CategoryServices:
		return sc.Services, len(sc.Services) > 0
	case CategoryTestimonials:
		return sc.Testimonials, len(sc.Testimonials) > 0
	case CategoryStats:
		return sc.Stats, len(sc.Stats) > 0
	case CategoryTeam:
		return sc.Team, len(sc.Team) > 0
	case CategoryGallery:
		return sc.Gallery, len(sc.Gallery) > 0
	case CategoryFAQ:
		return sc.FAQs, len(sc.FAQs) > 0
	case CategoryPricing:
		return sc.Pricing, len(sc.Pricing) > 0
	case CategoryContact:
		return ContactContent{Contact: sc.Contact, Hours: sc.Hours}, sc.Contact.Phone != "" || sc.Contact.Email != "" || sc.Contact.Address != ""
	case CategoryFooter:
		return FooterContent{BusinessName: sc.BusinessName, Contact: sc.Contact}, true
	case CategoryCTA:
		return CTAContent{BusinessName: sc.BusinessName, Tagline: sc.Tagline, Phone: sc.Contact.Phone}, sc.Contact.Phone != ""
	}
	return nil, false
}

// presentAnchors lists the nav anchors whose sections have content, in
// page order.
func presentAnchors(sc *content.SiteContent) []string {
	var anchors []string
	if len(sc.Services) > 0 {
		anchors = append(anchors, CategoryServices)
	}
	if len(sc.Gallery) > 0 {
		anchors = append(anchors, CategoryGallery)
	}
	if len(sc.Testimonials) > 0 {
		anchors = append(anchors, CategoryTestimonials)
	}
	if len(sc.Team) > 0 {
		anchors = append(anchors, CategoryTeam)
	}
	if len(sc.Pricing) > 0 {
		anchors = append(anchors, CategoryPricing)
	}
	if len(sc.FAQs) > 0 {
		anchors = append(anchors, CategoryFAQ)
	}
	anchors = append(anchors, CategoryContact)
	return anchors
}

// Placeholder is the substitute fragment when no variant is registered
// for a category: the category name, centered, nothing else.
func Placeholder(category string) registry.Fragment {
	return registry.Fragment{
		Markup: fmt.Sprintf(`<section class="placeholder-%s" style="text-align:center;padding:48px 16px;">%s</section>`, category, category),
	}
}
