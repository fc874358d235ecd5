// SPDX-License-Identifier: MIT
package assemble

import (
	"fmt"
	"html"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hatchsite/hatch/internal/colors"
	"github.com/hatchsite/hatch/internal/content"
	"github.com/hatchsite/hatch/internal/genes"
	"github.com/hatchsite/hatch/internal/layout"
	"github.com/hatchsite/hatch/internal/registry"
	"github.com/hatchsite/hatch/internal/sections"
)

// BuildOptions are the caller-level overrides for one build. Explicit
// values always win over generated ones.
type BuildOptions struct {
	DNA          *genes.DNA
	Palette      *colors.Palette
	SeedColor    string
	Mood         colors.Mood
	Chaos        *float64
	VibeID       string
	IncludeFonts bool
}

// Builder assembles complete site documents. Construct once with a
// populated registry; builds are read-only over shared state and safe
// to run concurrently.
type Builder struct {
	reg  *registry.Registry
	log  *zap.Logger
	rand *rand.Rand
}

// New returns a Builder. The random source feeds gene generation only;
// pass a seeded source for reproducible builds. A nil logger becomes a
// no-op logger and a nil source becomes a time-seeded one.
func New(reg *registry.Registry, log *zap.Logger, r *rand.Rand) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{reg: reg, log: log, rand: r}
}

// color-scheme gene → default palette mood, unless the caller sets one.
var schemeMoods = map[string]colors.Mood{
	"C1": colors.MoodMuted,
	"C2": colors.MoodMuted,
	"C3": colors.MoodVibrant,
	"C4": colors.MoodMonochrome,
	"C5": colors.MoodVibrant,
	"C6": colors.MoodVibrant,
}

// Result is one assembled site plus the resolved decisions that
// produced it, so callers can persist or replay a build.
type Result struct {
	Document string
	VibeID   string
	DNA      genes.DNA
	Chaos    float64
	Palette  colors.Palette
}

// BuildWebsite renders one self-contained document for the business.
// Missing optional content degrades by omission; unknown industry and
// vibe keys fall back to defaults. The only error is a caller-supplied
// gene combination outside the global enumeration.
func (b *Builder) BuildWebsite(sc *content.SiteContent, opts BuildOptions) (*Result, error) {
	vibe := genes.IndustryVibe(sc.Industry)
	if opts.VibeID != "" {
		vibe = genes.VibeByID(opts.VibeID)
	}

	dna := genes.GenerateConstrainedDNA(vibe, b.rand)
	if opts.DNA != nil {
		if err := genes.Validate(*opts.DNA); err != nil {
			return nil, fmt.Errorf("invalid gene combination: %w", err)
		}
		dna = dna.Merge(*opts.DNA)
	}

	palette := b.resolvePalette(sc, vibe, dna, opts)

	chaos := dna.Chaos
	if chaos == 0 {
		chaos = vibe.Chaos
	}
	if chaos == 0 {
		chaos = 0.3
	}
	if opts.Chaos != nil {
		chaos = *opts.Chaos
	}

	specs, known := blueprintFor(sc.Industry)
	if !known {
		b.log.Warn("no blueprint for industry, using default section list",
			zap.String("industry", sc.Industry))
	}
	specs = DirectorCut(vibe.ID, specs)

	anim := motionClass(dna)
	var markup, styles strings.Builder
	for _, spec := range specs {
		extracted, ok := sections.Extract(spec.Category, sc)
		if !ok {
			continue
		}

		frag := b.renderSection(spec, dna, chaos, palette, extracted, opts)
		// nav and footer anchor the frame; they do not animate in.
		if spec.Category == sections.CategoryNav || spec.Category == sections.CategoryFooter {
			markup.WriteString(frag.Markup)
		} else {
			fmt.Fprintf(&markup, `<div class="%s">%s</div>`, anim, frag.Markup)
		}
		markup.WriteString("\n")
		if frag.Styles != "" {
			styles.WriteString(frag.Styles)
		}
	}

	return &Result{
		Document: b.renderDocument(sc, dna, chaos, palette, markup.String(), styles.String(), opts),
		VibeID:   vibe.ID,
		DNA:      dna,
		Chaos:    chaos,
		Palette:  palette,
	}, nil
}

// resolvePalette applies the option chain: explicit palette, explicit
// seed, then the industry seed modulated by the vibe.
func (b *Builder) resolvePalette(sc *content.SiteContent, vibe *genes.Vibe, dna genes.DNA, opts BuildOptions) colors.Palette {
	if opts.Palette != nil {
		return *opts.Palette
	}
	seed := opts.SeedColor
	if seed == "" {
		seed = modulateSeed(genes.IndustrySeed(sc.Industry), vibe.Color)
	}
	mood := opts.Mood
	if mood == "" {
		if m, ok := schemeMoods[dna.Get(genes.ColorScheme)]; ok {
			mood = m
		} else {
			mood = colors.MoodMuted
		}
	}
	return colors.GeneratePalette(seed, mood)
}

// modulateSeed applies a vibe's hue/saturation/lightness triple to the
// industry's base seed color.
func modulateSeed(seedHex string, mod genes.ColorMod) string {
	c := colors.HexToHSL(seedHex)
	c = colors.RotateHue(c, mod.HueShift)
	if mod.SatScale > 0 {
		c = colors.AdjustSaturation(c, c.S*(mod.SatScale-1))
	}
	c = colors.AdjustLightness(c, mod.LightShift)
	return c.Hex()
}

func (b *Builder) renderSection(spec SectionSpec, dna genes.DNA, chaos float64, palette colors.Palette, extracted any, opts BuildOptions) registry.Fragment {
	var variant *registry.Variant
	if spec.ForcedVariant != "" {
		variant = b.reg.ByID(spec.Category, spec.ForcedVariant)
	}
	if variant == nil {
		variant = b.reg.FindBestVariant(spec.Category, dna, chaos)
	}
	if variant == nil {
		b.log.Warn("no variant registered for section", zap.String("category", spec.Category))
		return sections.Placeholder(spec.Category)
	}

	ctx := registry.Context{
		DNA:     dna,
		Chaos:   chaos,
		Palette: palette,
		Layout:  b.resolveLayout(spec.Category, dna, chaos, extracted, opts),
		Content: extracted,
	}
	return variant.Render(ctx)
}

// resolveLayout runs the category's dedicated resolver; frame sections
// (nav, hero, contact, footer, cta) carry no item grid and get a zero
// config.
func (b *Builder) resolveLayout(category string, dna genes.DNA, chaos float64, extracted any, opts BuildOptions) layout.Config {
	lopts := layout.Options{Chaos: &chaos, VibeID: opts.VibeID}
	switch category {
	case sections.CategoryServices:
		return layout.ResolveServices(itemCount(extracted), dna, lopts)
	case sections.CategoryTestimonials:
		return layout.ResolveTestimonials(itemCount(extracted), dna, lopts)
	case sections.CategoryStats:
		return layout.ResolveStats(itemCount(extracted), dna, lopts)
	case sections.CategoryTeam:
		return layout.ResolveTeam(itemCount(extracted), dna, lopts)
	case sections.CategoryGallery:
		return layout.ResolveGallery(itemCount(extracted), dna, lopts)
	case sections.CategoryFAQ:
		return layout.ResolveFAQ(itemCount(extracted), dna, lopts)
	case sections.CategoryPricing:
		return layout.ResolvePricing(itemCount(extracted), dna, lopts)
	}
	return layout.Config{Chaos: chaos}
}

func itemCount(extracted any) int {
	switch v := extracted.(type) {
	case []content.Service:
		return len(v)
	case []content.Testimonial:
		return len(v)
	case []content.Stat:
		return len(v)
	case []content.TeamMember:
		return len(v)
	case []content.GalleryImage:
		return len(v)
	case []content.FAQ:
		return len(v)
	case []content.PricingTier:
		return len(v)
	}
	return 0
}

// renderDocument wraps the concatenated fragments in the document
// shell: palette bindings, font hints, reset, keyframes and, when the
// build is loud enough, the motion extras and activation script.
func (b *Builder) renderDocument(sc *content.SiteContent, dna genes.DNA, chaos float64, palette colors.Palette, markup, sectionStyles string, opts BuildOptions) string {
	font := fontStacks["F1"]
	if f, ok := fontStacks[dna.Get(genes.Typography)]; ok {
		font = f
	}
	radius := radii["R2"]
	if r, ok := radii[dna.Get(genes.CornerRadius)]; ok {
		radius = r
	}

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	doc.WriteString("<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&doc, "<title>%s</title>\n", html.EscapeString(sc.BusinessName))
	if sc.Description != "" {
		fmt.Fprintf(&doc, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(sc.Description))
	}
	if opts.IncludeFonts && font.Family != "" {
		doc.WriteString("<link rel=\"preconnect\" href=\"https://fonts.gstatic.com\" crossorigin>\n")
		fmt.Fprintf(&doc, "<link rel=\"stylesheet\" href=\"https://fonts.googleapis.com/css2?family=%s&display=swap\">\n", font.Family)
	}

	extras := wantsMotionExtras(dna, chaos)

	doc.WriteString("<style>\n")
	doc.WriteString(paletteCSS(palette, radius))
	doc.WriteString(baseCSS(font.Stack))
	doc.WriteString(keyframesCSS)
	doc.WriteString(sectionStyles)
	if extras {
		doc.WriteString(extrasCSS)
		if tex, ok := textureCSS[dna.Get(genes.Texture)]; ok {
			doc.WriteString(tex)
			doc.WriteString("\n")
		}
	}
	doc.WriteString("</style>\n</head>\n<body>\n")
	doc.WriteString(markup)
	doc.WriteString(revealScript)
	if extras {
		doc.WriteString("\n")
		doc.WriteString(parallaxScript)
	}
	doc.WriteString("\n</body>\n</html>\n")
	return doc.String()
}
