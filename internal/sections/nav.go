package sections

import (
	"fmt"
	"strings"

	"github.com/hatchsite/hatch/internal/registry"
)

func renderNavBar(ctx registry.Context) registry.Fragment {
	nc, _ := ctx.Content.(NavContent)
	var b strings.Builder
	b.WriteString(`<nav class="nav nav-bar">`)
	fmt.Fprintf(&b, `<span class="nav-brand">%s</span>`, esc(nc.BusinessName))
	b.WriteString(`<ul class="nav-links">`)
	for _, anchor := range nc.Anchors {
		fmt.Fprintf(&b, `<li><a href="#%s">%s</a></li>`, anchor, esc(titleCase(anchor)))
	}
	b.WriteString(`</ul>`)
	if nc.Phone != "" {
		fmt.Fprintf(&b, `<a class="btn nav-phone" href="tel:%s">%s</a>`, esc(nc.Phone), esc(nc.Phone))
	}
	b.WriteString(`</nav>`)

	styles := `.nav-bar { display: flex; align-items: center; gap: 24px; padding: 16px 24px; border-bottom: 1px solid var(--color-muted); }
.nav-brand { font-weight: 700; font-size: 1.15rem; }
.nav-links { display: flex; gap: 20px; list-style: none; margin: 0 0 0 auto; padding: 0; }
.nav-links a { color: var(--color-text); }
@media (max-width: 767px) { .nav-links { display: none; } }
`
	return registry.Fragment{Markup: b.String(), Styles: styles}
}

func renderNavCentered(ctx registry.Context) registry.Fragment {
	nc, _ := ctx.Content.(NavContent)
	var b strings.Builder
	b.WriteString(`<nav class="nav nav-centered">`)
	fmt.Fprintf(&b, `<span class="nav-brand">%s</span>`, esc(nc.BusinessName))
	b.WriteString(`<ul class="nav-links">`)
	for _, anchor := range nc.Anchors {
		fmt.Fprintf(&b, `<li><a href="#%s">%s</a></li>`, anchor, esc(titleCase(anchor)))
	}
	b.WriteString(`</ul>`)
	b.WriteString(`</nav>`)

	styles := `.nav-centered { text-align: center; padding: 24px; }
.nav-centered .nav-brand { display: block; font-weight: 700; font-size: 1.3rem; margin-bottom: 12px; }
.nav-centered .nav-links { display: flex; justify-content: center; gap: 20px; list-style: none; margin: 0; padding: 0; flex-wrap: wrap; }
.nav-centered a { color: var(--color-text); }
`
	return registry.Fragment{Markup: b.String(), Styles: styles}
}

func titleCase(s string) string {
	if s == CategoryFAQ {
		return "FAQ"
	}
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
