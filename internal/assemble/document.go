package assemble

import (
	"fmt"
	"strings"

	"github.com/hatchsite/hatch/internal/colors"
	"github.com/hatchsite/hatch/internal/genes"
	"github.com/hatchsite/hatch/internal/layout"
)

// fontStacks maps the typography gene to a font stack and, when font
// loading is enabled, the Google Fonts family to request.
var fontStacks = map[string]struct {
	Stack  string
	Family string
}{
	"F1": {`system-ui, -apple-system, sans-serif`, ""},
	"F2": {`'Inter', system-ui, sans-serif`, "Inter:wght@400;600;700"},
	"F3": {`'Playfair Display', Georgia, serif`, "Playfair+Display:wght@500;700"},
	"F4": {`'Lora', Georgia, serif`, "Lora:wght@400;600"},
	"F5": {`'IBM Plex Sans', system-ui, sans-serif`, "IBM+Plex+Sans:wght@400;600"},
	"F6": {`'Libre Baskerville', Georgia, serif`, "Libre+Baskerville:wght@400;700"},
	"F7": {`'Space Grotesk', system-ui, sans-serif`, "Space+Grotesk:wght@400;700"},
	"F8": {`'Archivo Black', system-ui, sans-serif`, "Archivo+Black"},
}

// radii maps the corner-radius gene to the shared --radius token.
var radii = map[string]string{
	"R1": "0px",
	"R2": "6px",
	"R3": "12px",
	"R4": "24px",
}

// animation class per motion gene; the assembler wraps every section
// fragment with the matching entrance class.
var motionClasses = map[string]string{
	genes.MotionSubtle:   "anim-fade",
	genes.MotionModerate: "anim-slide",
	genes.MotionDramatic: "anim-scale",
}

func motionClass(d genes.DNA) string {
	if c, ok := motionClasses[d.Get(genes.MotionLevel)]; ok {
		return c
	}
	return "anim-fade"
}

// paletteCSS binds the generated palette to the document's custom
// properties.
func paletteCSS(p colors.Palette, radius string) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --color-primary: %s;\n", p.Primary)
	fmt.Fprintf(&b, "  --color-secondary: %s;\n", p.Secondary)
	fmt.Fprintf(&b, "  --color-accent: %s;\n", p.Accent)
	fmt.Fprintf(&b, "  --color-bg: %s;\n", p.Background)
	fmt.Fprintf(&b, "  --color-text: %s;\n", p.Text)
	fmt.Fprintf(&b, "  --color-muted: %s;\n", p.Muted)
	for i, g := range p.Grays {
		fmt.Fprintf(&b, "  --gray-%d: %s;\n", i, g)
	}
	fmt.Fprintf(&b, "  --radius: %s;\n", radius)
	b.WriteString("}\n")
	return b.String()
}

// baseCSS is the reset plus shared section styling every document
// carries.
func baseCSS(fontStack string) string {
	return fmt.Sprintf(`* { box-sizing: border-box; }
body { margin: 0; font-family: %s; background: var(--color-bg); color: var(--color-text); line-height: 1.6; }
a { color: var(--color-primary); text-decoration: none; }
a:hover { text-decoration: underline; }
img { max-width: 100%%; }
.btn { display: inline-block; background: var(--color-primary); color: var(--color-bg); padding: 12px 24px; border-radius: var(--radius); font-weight: 600; }
.btn:hover { opacity: 0.9; text-decoration: none; }
.card { background: var(--gray-1); border: 1px solid var(--gray-2); border-radius: var(--radius); padding: 20px; }
.sec { padding: 64px 24px; max-width: 1100px; margin: 0 auto; }
.sec-heading { text-align: center; font-size: 1.9rem; margin: 0 0 32px; }
.trust-badges { display: flex; justify-content: center; gap: 16px; list-style: none; padding: 0; margin: 24px 0 0; flex-wrap: wrap; }
.trust-badges li { border: 1px solid currentColor; border-radius: var(--radius); padding: 4px 14px; font-size: 0.85rem; opacity: 0.85; }
`, fontStack)
}

// keyframesCSS defines the entrance animations the motion gene selects
// from.
const keyframesCSS = `@keyframes fade-in { from { opacity: 0; } to { opacity: 1; } }
@keyframes slide-up { from { opacity: 0; transform: translateY(28px); } to { opacity: 1; transform: none; } }
@keyframes scale-in { from { opacity: 0; transform: scale(0.94); } to { opacity: 1; transform: none; } }
.anim-fade.visible { animation: fade-in 0.7s ease both; }
.anim-slide.visible { animation: slide-up 0.7s ease both; }
.anim-scale.visible { animation: scale-in 0.6s ease both; }
@media (prefers-reduced-motion: reduce) { .anim-fade, .anim-slide, .anim-scale { animation: none; } }
`

// texture overlays per texture gene, applied only with the motion
// extras.
var textureCSS = map[string]string{
	"X2": `body::after { content: ''; position: fixed; inset: 0; pointer-events: none; background-image: radial-gradient(var(--gray-2) 1px, transparent 1px); background-size: 24px 24px; opacity: 0.35; }`,
	"X3": `body::before { content: ''; position: fixed; inset: 0; pointer-events: none; background: linear-gradient(160deg, transparent 60%, var(--gray-1)); }`,
	"X4": `body::after { content: ''; position: fixed; inset: 0; pointer-events: none; opacity: 0.05; background-image: repeating-linear-gradient(0deg, var(--color-text), var(--color-text) 1px, transparent 1px, transparent 3px); }`,
	"X5": `body::after { content: ''; position: fixed; inset: 0; pointer-events: none; background-image: linear-gradient(var(--gray-2) 1px, transparent 1px), linear-gradient(90deg, var(--gray-2) 1px, transparent 1px); background-size: 64px 64px; opacity: 0.25; }`,
}

// extrasCSS is the parallax/scroll-reveal styling added when chaos or
// the motion gene asks for it.
const extrasCSS = `.sec-hero { background-attachment: fixed; }
.parallax-layer { will-change: transform; }
`

// revealScript activates entrance animations and the hero parallax.
// The observer marks wrappers visible as they enter the viewport; with
// scripting unavailable everything stays visible because the class
// only ever adds animation.
const revealScript = `<script>
(function () {
  var els = document.querySelectorAll('.anim-fade, .anim-slide, .anim-scale');
  if (!('IntersectionObserver' in window)) {
    els.forEach(function (el) { el.classList.add('visible'); });
    return;
  }
  var io = new IntersectionObserver(function (entries) {
    entries.forEach(function (e) {
      if (e.isIntersecting) { e.target.classList.add('visible'); io.unobserve(e.target); }
    });
  }, { threshold: 0.15 });
  els.forEach(function (el) { io.observe(el); });
})();
</script>`

// parallaxScript ships only with the motion extras.
const parallaxScript = `<script>
(function () {
  var hero = document.querySelector('.sec-hero');
  if (!hero) return;
  window.addEventListener('scroll', function () {
    hero.style.backgroundPositionY = (window.scrollY * 0.3) + 'px';
  }, { passive: true });
})();
</script>`

// wantsMotionExtras reports whether the document gets parallax,
// texture overlays and the reveal script.
func wantsMotionExtras(d genes.DNA, chaos float64) bool {
	if chaos > layout.ChaosMotionExtras {
		return true
	}
	motion := d.Get(genes.MotionLevel)
	return motion == genes.MotionModerate || motion == genes.MotionDramatic
}
