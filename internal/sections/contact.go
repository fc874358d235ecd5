package sections

import (
	"fmt"
	"strings"

	"github.com/hatchsite/hatch/internal/registry"
)

// weekdayOrder fixes hours rendering so output is deterministic
// regardless of map iteration order.
var weekdayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func renderContactBlock(ctx registry.Context) registry.Fragment {
	cc, _ := ctx.Content.(ContactContent)
	var b strings.Builder
	b.WriteString(`<div class="contact-block">`)
	b.WriteString(`<div class="contact-details">`)
	if cc.Contact.Phone != "" {
		fmt.Fprintf(&b, `<p><a class="btn" href="tel:%s">Call %s</a></p>`, esc(cc.Contact.Phone), esc(cc.Contact.Phone))
	}
	if cc.Contact.Email != "" {
		fmt.Fprintf(&b, `<p><a href="mailto:%s">%s</a></p>`, esc(cc.Contact.Email), esc(cc.Contact.Email))
	}
	if cc.Contact.Address != "" {
		addr := cc.Contact.Address
		if cc.Contact.City != "" {
			addr += ", " + cc.Contact.City
		}
		if cc.Contact.State != "" {
			addr += ", " + cc.Contact.State
		}
		fmt.Fprintf(&b, `<p class="contact-address">%s</p>`, esc(addr))
	}
	b.WriteString(`</div>`)
	if len(cc.Hours) > 0 {
		b.WriteString(`<table class="contact-hours">`)
		for _, day := range weekdayOrder {
			hours, ok := cc.Hours[day]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, `<tr><th>%s</th><td>%s</td></tr>`, esc(titleCase(day)), esc(hours))
		}
		b.WriteString(`</table>`)
	}
	b.WriteString(`</div>`)

	styles := `.contact-block { display: flex; flex-wrap: wrap; gap: 40px; justify-content: center; }
.contact-details { min-width: 260px; }
.contact-hours th { text-align: left; padding-right: 24px; color: var(--color-muted); font-weight: 600; }
.contact-hours td { padding: 4px 0; }
.contact-address { color: var(--color-muted); }
`
	return registry.Fragment{Markup: sectionShell(CategoryContact, "Contact us", b.String()), Styles: styles}
}

func renderFooter(ctx registry.Context) registry.Fragment {
	fc, _ := ctx.Content.(FooterContent)
	var b strings.Builder
	b.WriteString(`<footer class="site-footer">`)
	fmt.Fprintf(&b, `<span>%s</span>`, esc(fc.BusinessName))
	if fc.Contact.City != "" {
		fmt.Fprintf(&b, `<span class="footer-city">%s`, esc(fc.Contact.City))
		if fc.Contact.State != "" {
			fmt.Fprintf(&b, `, %s`, esc(fc.Contact.State))
		}
		b.WriteString(`</span>`)
	}
	b.WriteString(`</footer>`)

	styles := `.site-footer { display: flex; justify-content: space-between; flex-wrap: wrap; gap: 8px; padding: 32px 24px; border-top: 1px solid var(--color-muted); color: var(--color-muted); font-size: 0.9rem; }
`
	return registry.Fragment{Markup: b.String(), Styles: styles}
}

func renderCTABand(ctx registry.Context) registry.Fragment {
	cta, _ := ctx.Content.(CTAContent)
	var b strings.Builder
	b.WriteString(`<section id="cta" class="sec sec-cta cta-band">`)
	fmt.Fprintf(&b, `<h2>Ready to get started?</h2>`)
	if cta.Tagline != "" {
		fmt.Fprintf(&b, `<p>%s</p>`, esc(cta.Tagline))
	}
	fmt.Fprintf(&b, `<a class="btn" href="tel:%s">Call %s</a>`, esc(cta.Phone), esc(cta.Phone))
	b.WriteString(`</section>`)

	styles := `.cta-band { text-align: center; padding: 64px 24px; background: var(--color-secondary); color: var(--color-bg); }
.cta-band h2 { margin: 0 0 12px; }
.cta-band .btn { background: var(--color-accent); }
`
	return registry.Fragment{Markup: b.String(), Styles: styles}
}
