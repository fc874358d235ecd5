package sections

import (
	"fmt"
	"strings"

	"github.com/hatchsite/hatch/internal/registry"
)

// Variant IDs the Director Cut forces by name.
const (
	HeroCenteredID = "hero-centered"
	HeroSplitID    = "hero-split"
	HeroMinimalID  = "hero-minimal"
)

func renderHeroCentered(ctx registry.Context) registry.Fragment {
	hc, _ := ctx.Content.(HeroContent)
	var b strings.Builder
	b.WriteString(`<section id="hero" class="sec sec-hero hero-centered">`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, esc(hc.Headline))
	if hc.Tagline != "" {
		fmt.Fprintf(&b, `<p class="hero-tagline">%s</p>`, esc(hc.Tagline))
	}
	if hc.Phone != "" {
		fmt.Fprintf(&b, `<a class="btn hero-cta" href="tel:%s">Call %s</a>`, esc(hc.Phone), esc(hc.Phone))
	}
	b.WriteString(badgeRow(hc.TrustBadges))
	b.WriteString(`</section>`)

	styles := `.hero-centered { text-align: center; padding: 96px 24px; background: var(--color-primary); color: var(--color-bg); }
.hero-centered h1 { font-size: 2.8rem; margin: 0 0 16px; }
.hero-tagline { font-size: 1.25rem; opacity: 0.9; margin: 0 0 24px; }
.hero-cta { display: inline-block; background: var(--color-accent); padding: 14px 32px; }
`
	return registry.Fragment{Markup: b.String(), Styles: styles}
}

func renderHeroSplit(ctx registry.Context) registry.Fragment {
	hc, _ := ctx.Content.(HeroContent)
	var b strings.Builder
	b.WriteString(`<section id="hero" class="sec sec-hero hero-split">`)
	b.WriteString(`<div class="hero-split-copy">`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, esc(hc.Headline))
	if hc.Tagline != "" {
		fmt.Fprintf(&b, `<p class="hero-tagline">%s</p>`, esc(hc.Tagline))
	}
	if hc.Phone != "" {
		fmt.Fprintf(&b, `<a class="btn hero-cta" href="tel:%s">Get in touch</a>`, esc(hc.Phone))
	}
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<div class="hero-split-panel" aria-hidden="true"><span>%s</span></div>`, esc(initials(hc.BusinessName)))
	b.WriteString(badgeRow(hc.TrustBadges))
	b.WriteString(`</section>`)

	styles := `.hero-split { display: grid; grid-template-columns: 3fr 2fr; gap: 40px; align-items: center; padding: 80px 24px; }
.hero-split h1 { font-size: 2.5rem; margin: 0 0 16px; }
.hero-split-panel { background: linear-gradient(135deg, var(--color-primary), var(--color-secondary)); color: var(--color-bg); border-radius: var(--radius); min-height: 280px; display: flex; align-items: center; justify-content: center; font-size: 4rem; font-weight: 700; }
@media (max-width: 767px) { .hero-split { grid-template-columns: 1fr; } }
`
	return registry.Fragment{Markup: b.String(), Styles: styles}
}

func renderHeroMinimal(ctx registry.Context) registry.Fragment {
	hc, _ := ctx.Content.(HeroContent)
	var b strings.Builder
	b.WriteString(`<section id="hero" class="sec sec-hero hero-minimal">`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, esc(hc.Headline))
	if hc.Tagline != "" {
		fmt.Fprintf(&b, `<p class="hero-tagline">%s</p>`, esc(hc.Tagline))
	}
	b.WriteString(`</section>`)

	styles := `.hero-minimal { padding: 140px 24px 100px; max-width: 720px; margin: 0 auto; }
.hero-minimal h1 { font-size: 2.2rem; font-weight: 500; letter-spacing: -0.02em; margin: 0 0 12px; }
.hero-minimal .hero-tagline { color: var(--color-muted); }
`
	return registry.Fragment{Markup: b.String(), Styles: styles}
}

func badgeRow(badges []string) string {
	if len(badges) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<ul class="trust-badges">`)
	for _, badge := range badges {
		fmt.Fprintf(&b, `<li>%s</li>`, esc(badge))
	}
	b.WriteString(`</ul>`)
	return b.String()
}

func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			out = append(out, r)
			break
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
