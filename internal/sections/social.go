package sections

import (
	"fmt"
	"strings"

	"github.com/hatchsite/hatch/internal/content"
	"github.com/hatchsite/hatch/internal/registry"
)

func renderTestimonialCards(ctx registry.Context) registry.Fragment {
	items, _ := ctx.Content.([]content.Testimonial)
	var b strings.Builder
	b.WriteString(`<div class="testimonials-grid">`)
	for _, t := range items {
		b.WriteString(`<blockquote class="card testimonial">`)
		if t.Rating > 0 {
			fmt.Fprintf(&b, `<span class="testimonial-stars">%s</span>`, strings.Repeat("★", clampRating(t.Rating)))
		}
		fmt.Fprintf(&b, `<p>"%s"</p>`, esc(t.Quote))
		fmt.Fprintf(&b, `<footer>%s`, esc(t.Author))
		if t.Role != "" {
			fmt.Fprintf(&b, `<span class="testimonial-role"> — %s</span>`, esc(t.Role))
		}
		b.WriteString(`</footer></blockquote>`)
	}
	b.WriteString(`</div>`)

	styles := containerCSS(".testimonials-grid", ctx.Layout) + `.testimonial { margin: 0; font-style: italic; }
.testimonial footer { font-style: normal; font-weight: 600; margin-top: 8px; }
.testimonial-stars { color: var(--color-accent); letter-spacing: 2px; }
.testimonial-role { color: var(--color-muted); font-weight: 400; }
`
	return registry.Fragment{Markup: sectionShell(CategoryTestimonials, "What customers say", b.String()), Styles: styles}
}

// renderTestimonialSpotlight pulls one quote out front at full width;
// tuned for loud layouts where a grid of quotes reads flat.
func renderTestimonialSpotlight(ctx registry.Context) registry.Fragment {
	items, _ := ctx.Content.([]content.Testimonial)
	if len(items) == 0 {
		return Placeholder(CategoryTestimonials)
	}
	lead := items[0]
	var b strings.Builder
	b.WriteString(`<div class="testimonial-spotlight">`)
	fmt.Fprintf(&b, `<p class="spotlight-quote">"%s"</p>`, esc(lead.Quote))
	fmt.Fprintf(&b, `<footer>%s</footer>`, esc(lead.Author))
	b.WriteString(`</div>`)
	if len(items) > 1 {
		b.WriteString(`<div class="testimonials-rest">`)
		for _, t := range items[1:] {
			fmt.Fprintf(&b, `<blockquote class="card testimonial"><p>"%s"</p><footer>%s</footer></blockquote>`, esc(t.Quote), esc(t.Author))
		}
		b.WriteString(`</div>`)
	}

	styles := `.testimonial-spotlight { text-align: center; padding: 48px 24px; }
.spotlight-quote { font-size: 1.6rem; font-style: italic; max-width: 800px; margin: 0 auto 16px; }
.testimonial-spotlight footer { font-weight: 600; color: var(--color-muted); }
` + containerCSS(".testimonials-rest", ctx.Layout)
	return registry.Fragment{Markup: sectionShell(CategoryTestimonials, "", b.String()), Styles: styles}
}

func renderStatsRow(ctx registry.Context) registry.Fragment {
	items, _ := ctx.Content.([]content.Stat)
	var b strings.Builder
	b.WriteString(`<div class="stats-row">`)
	for _, s := range items {
		b.WriteString(`<div class="stat">`)
		fmt.Fprintf(&b, `<span class="stat-value">%s</span>`, esc(s.Value))
		fmt.Fprintf(&b, `<span class="stat-label">%s</span>`, esc(s.Label))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	styles := containerCSS(".stats-row", ctx.Layout) + `.stat { text-align: center; }
.stat-value { display: block; font-size: 2.4rem; font-weight: 700; color: var(--color-primary); }
.stat-label { color: var(--color-muted); }
`
	return registry.Fragment{Markup: sectionShell(CategoryStats, "", b.String()), Styles: styles}
}

func clampRating(r int) int {
	if r > 5 {
		return 5
	}
	if r < 1 {
		return 1
	}
	return r
}
