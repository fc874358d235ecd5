package sections

import (
	"fmt"
	"strings"

	"github.com/hatchsite/hatch/internal/content"
	"github.com/hatchsite/hatch/internal/registry"
)

func renderServiceCards(ctx registry.Context) registry.Fragment {
	items, _ := ctx.Content.([]content.Service)
	var b strings.Builder
	b.WriteString(`<div class="services-grid">`)
	for _, s := range items {
		b.WriteString(`<article class="card service-card">`)
		if s.Icon != "" {
			fmt.Fprintf(&b, `<span class="service-icon">%s</span>`, esc(s.Icon))
		}
		fmt.Fprintf(&b, `<h3>%s</h3>`, esc(s.Name))
		if s.Description != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(s.Description))
		}
		if s.Price != "" {
			fmt.Fprintf(&b, `<span class="service-price">%s</span>`, esc(s.Price))
		}
		b.WriteString(`</article>`)
	}
	b.WriteString(`</div>`)

	styles := containerCSS(".services-grid", ctx.Layout) + `.service-card h3 { margin: 0 0 8px; }
.service-icon { font-size: 1.8rem; display: block; margin-bottom: 8px; }
.service-price { color: var(--color-accent); font-weight: 600; }
`
	return registry.Fragment{Markup: sectionShell(CategoryServices, "Services", b.String()), Styles: styles}
}

// renderServiceList is the quiet alternative: a ruled list without
// cards, suited to single-column and timeline layouts.
func renderServiceList(ctx registry.Context) registry.Fragment {
	items, _ := ctx.Content.([]content.Service)
	var b strings.Builder
	b.WriteString(`<div class="services-list">`)
	for _, s := range items {
		b.WriteString(`<div class="services-list-row">`)
		fmt.Fprintf(&b, `<h3>%s</h3>`, esc(s.Name))
		if s.Description != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(s.Description))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	styles := containerCSS(".services-list", ctx.Layout) + `.services-list-row { padding-bottom: 16px; border-bottom: 1px solid var(--color-muted); }
.services-list-row h3 { margin: 0 0 4px; }
.services-list-row p { margin: 0; color: var(--color-muted); }
`
	return registry.Fragment{Markup: sectionShell(CategoryServices, "What we do", b.String()), Styles: styles}
}
