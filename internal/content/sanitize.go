package content

import "github.com/microcosm-cc/bluemonday"

// Caller-supplied text often arrives from CRM imports and web forms;
// strip all markup before it gets anywhere near generated documents.
var policy = bluemonday.StrictPolicy()

// Clean strips every HTML element from a free-text string.
func Clean(s string) string {
	return policy.Sanitize(s)
}

// Sanitize cleans every free-text field of the content in place.
func Sanitize(sc *SiteContent) {
	sc.BusinessName = Clean(sc.BusinessName)
	sc.Tagline = Clean(sc.Tagline)
	sc.Headline = Clean(sc.Headline)
	sc.Description = Clean(sc.Description)

	for i := range sc.Services {
		sc.Services[i].Name = Clean(sc.Services[i].Name)
		sc.Services[i].Description = Clean(sc.Services[i].Description)
	}
	for i := range sc.Testimonials {
		sc.Testimonials[i].Quote = Clean(sc.Testimonials[i].Quote)
		sc.Testimonials[i].Author = Clean(sc.Testimonials[i].Author)
		sc.Testimonials[i].Role = Clean(sc.Testimonials[i].Role)
	}
	for i := range sc.Team {
		sc.Team[i].Name = Clean(sc.Team[i].Name)
		sc.Team[i].Role = Clean(sc.Team[i].Role)
		sc.Team[i].Bio = Clean(sc.Team[i].Bio)
	}
	for i := range sc.FAQs {
		sc.FAQs[i].Question = Clean(sc.FAQs[i].Question)
		sc.FAQs[i].Answer = Clean(sc.FAQs[i].Answer)
	}
	for i := range sc.Stats {
		sc.Stats[i].Value = Clean(sc.Stats[i].Value)
		sc.Stats[i].Label = Clean(sc.Stats[i].Label)
	}
	for i := range sc.Gallery {
		sc.Gallery[i].Alt = Clean(sc.Gallery[i].Alt)
		sc.Gallery[i].Caption = Clean(sc.Gallery[i].Caption)
	}
	for i := range sc.TrustBadges {
		sc.TrustBadges[i] = Clean(sc.TrustBadges[i])
	}
}
