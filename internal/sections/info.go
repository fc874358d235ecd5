package sections

import (
	"fmt"
	"strings"

	"github.com/hatchsite/hatch/internal/content"
	"github.com/hatchsite/hatch/internal/registry"
)

func renderFAQList(ctx registry.Context) registry.Fragment {
	items, _ := ctx.Content.([]content.FAQ)
	var b strings.Builder
	b.WriteString(`<div class="faq-list">`)
	for _, f := range items {
		b.WriteString(`<details class="faq-item">`)
		fmt.Fprintf(&b, `<summary>%s</summary>`, esc(f.Question))
		fmt.Fprintf(&b, `<p>%s</p>`, esc(f.Answer))
		b.WriteString(`</details>`)
	}
	b.WriteString(`</div>`)

	styles := containerCSS(".faq-list", ctx.Layout) + `.faq-item { border: 1px solid var(--color-muted); border-radius: var(--radius); padding: 14px 18px; }
.faq-item summary { font-weight: 600; cursor: pointer; }
.faq-item p { margin: 10px 0 0; color: var(--color-muted); }
`
	return registry.Fragment{Markup: sectionShell(CategoryFAQ, "Frequently asked questions", b.String()), Styles: styles}
}

func renderPricingTiers(ctx registry.Context) registry.Fragment {
	items, _ := ctx.Content.([]content.PricingTier)
	var b strings.Builder
	b.WriteString(`<div class="pricing-row">`)
	for _, p := range items {
		class := "card pricing-tier"
		if p.Featured {
			class += " pricing-featured"
		}
		fmt.Fprintf(&b, `<article class="%s">`, class)
		fmt.Fprintf(&b, `<h3>%s</h3>`, esc(p.Name))
		fmt.Fprintf(&b, `<span class="pricing-price">%s</span>`, esc(p.Price))
		if p.Period != "" {
			fmt.Fprintf(&b, `<span class="pricing-period">/%s</span>`, esc(p.Period))
		}
		if len(p.Features) > 0 {
			b.WriteString(`<ul>`)
			for _, f := range p.Features {
				fmt.Fprintf(&b, `<li>%s</li>`, esc(f))
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</article>`)
	}
	b.WriteString(`</div>`)

	styles := containerCSS(".pricing-row", ctx.Layout) + `.pricing-tier { text-align: center; }
.pricing-price { font-size: 2rem; font-weight: 700; color: var(--color-primary); }
.pricing-period { color: var(--color-muted); }
.pricing-tier ul { list-style: none; padding: 0; text-align: left; }
.pricing-tier li { padding: 6px 0; border-bottom: 1px solid var(--color-muted); }
.pricing-featured { border: 2px solid var(--color-accent); transform: scale(1.03); }
`
	return registry.Fragment{Markup: sectionShell(CategoryPricing, "Pricing", b.String()), Styles: styles}
}
