package sections

import (
	"fmt"
	"html"
	"strings"

	"github.com/hatchsite/hatch/internal/layout"
)

// esc is the one escaping path for caller-supplied text.
func esc(s string) string {
	return html.EscapeString(s)
}

// containerCSS renders the CSS for one resolved layout under selector.
// Grid layouts also emit per-item span rules (with zero spans kept as
// invisible slots) and, above the displacement gate, the broken-grid
// offsets.
func containerCSS(selector string, cfg layout.Config) string {
	gap := layout.GapPx(cfg.Gap)
	var b strings.Builder

	switch cfg.Kind {
	case layout.KindGrid:
		fmt.Fprintf(&b, "%s { display: grid; grid-template-columns: repeat(%d, 1fr); gap: %dpx; }\n", selector, cfg.Columns, gap)
		for i, span := range cfg.Pattern {
			if span == 0 {
				fmt.Fprintf(&b, "%s > :nth-child(%d) { visibility: hidden; }\n", selector, i+1)
				continue
			}
			if span > 1 {
				fmt.Fprintf(&b, "%s > :nth-child(%d) { grid-column: span %d; }\n", selector, i+1, span)
			}
		}
		b.WriteString(layout.DisplacementCSS(selector+" > *", len(cfg.Pattern), cfg.Chaos))
	case layout.KindFlex:
		fmt.Fprintf(&b, "%s { display: flex; flex-wrap: wrap; gap: %dpx; }\n", selector, gap)
		fmt.Fprintf(&b, "%s > * { flex: 1 1 0; min-width: 220px; }\n", selector)
	case layout.KindColumns:
		fmt.Fprintf(&b, "%s { column-count: %d; column-gap: %dpx; }\n", selector, cfg.Columns, gap)
		fmt.Fprintf(&b, "%s > * { break-inside: avoid; margin-bottom: %dpx; }\n", selector, gap)
	default: // stack
		fmt.Fprintf(&b, "%s { display: flex; flex-direction: column; gap: %dpx; max-width: 720px; margin: 0 auto; }\n", selector, gap)
		if cfg.Timeline {
			fmt.Fprintf(&b, "%s > * { position: relative; padding-left: 32px; border-left: 2px solid var(--color-accent); }\n", selector)
			fmt.Fprintf(&b, "%s > *::before { content: ''; position: absolute; left: -7px; top: 6px; width: 12px; height: 12px; border-radius: 50%%; background: var(--color-accent); }\n", selector)
		}
	}

	// collapse to a single column on small screens
	fmt.Fprintf(&b, "@media (max-width: %dpx) { %s { display: flex; flex-direction: column; column-count: auto; } %s > :nth-child(n) { grid-column: auto; visibility: visible; transform: none; } }\n", 767, selector, selector)
	return b.String()
}

// sectionShell wraps a section body with the shared padding and an
// anchor id.
func sectionShell(id, heading, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<section id="%s" class="sec sec-%s">`, id, id)
	if heading != "" {
		fmt.Fprintf(&b, `<h2 class="sec-heading">%s</h2>`, esc(heading))
	}
	b.WriteString(body)
	b.WriteString(`</section>`)
	return b.String()
}
