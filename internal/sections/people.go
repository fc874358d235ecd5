package sections

import (
	"fmt"
	"strings"

	"github.com/hatchsite/hatch/internal/content"
	"github.com/hatchsite/hatch/internal/registry"
)

func renderTeamGrid(ctx registry.Context) registry.Fragment {
	items, _ := ctx.Content.([]content.TeamMember)
	var b strings.Builder
	b.WriteString(`<div class="team-grid">`)
	for _, m := range items {
		b.WriteString(`<article class="card team-member">`)
		if m.Photo != "" {
			fmt.Fprintf(&b, `<img src="%s" alt="%s" loading="lazy">`, esc(m.Photo), esc(m.Name))
		} else {
			fmt.Fprintf(&b, `<span class="team-avatar">%s</span>`, esc(initials(m.Name)))
		}
		fmt.Fprintf(&b, `<h3>%s</h3>`, esc(m.Name))
		if m.Role != "" {
			fmt.Fprintf(&b, `<span class="team-role">%s</span>`, esc(m.Role))
		}
		if m.Bio != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(m.Bio))
		}
		b.WriteString(`</article>`)
	}
	b.WriteString(`</div>`)

	styles := containerCSS(".team-grid", ctx.Layout) + `.team-member { text-align: center; }
.team-member img { width: 96px; height: 96px; border-radius: 50%; object-fit: cover; }
.team-avatar { display: inline-flex; width: 96px; height: 96px; border-radius: 50%; background: var(--color-secondary); color: var(--color-bg); align-items: center; justify-content: center; font-size: 1.6rem; font-weight: 700; }
.team-role { color: var(--color-accent); font-weight: 600; display: block; margin-bottom: 8px; }
`
	return registry.Fragment{Markup: sectionShell(CategoryTeam, "Meet the team", b.String()), Styles: styles}
}

func renderGallery(ctx registry.Context) registry.Fragment {
	items, _ := ctx.Content.([]content.GalleryImage)
	var b strings.Builder
	b.WriteString(`<div class="gallery">`)
	for _, g := range items {
		b.WriteString(`<figure class="gallery-item">`)
		fmt.Fprintf(&b, `<img src="%s" alt="%s" loading="lazy">`, esc(g.URL), esc(g.Alt))
		if g.Caption != "" {
			fmt.Fprintf(&b, `<figcaption>%s</figcaption>`, esc(g.Caption))
		}
		b.WriteString(`</figure>`)
	}
	b.WriteString(`</div>`)

	styles := containerCSS(".gallery", ctx.Layout) + `.gallery-item { margin: 0; }
.gallery-item img { width: 100%; border-radius: var(--radius); display: block; }
.gallery-item figcaption { color: var(--color-muted); font-size: 0.9rem; padding: 6px 2px; }
`
	return registry.Fragment{Markup: sectionShell(CategoryGallery, "Our work", b.String()), Styles: styles}
}
