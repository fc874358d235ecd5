package genes

import "math/rand"

// ColorMod is a per-vibe adjustment applied to an industry's base seed
// color before palette synthesis, so the same industry looks distinct
// under different vibes.
type ColorMod struct {
	HueShift   float64 // degrees, applied modulo 360
	SatScale   float64 // multiplier on saturation
	LightShift float64 // added to lightness, clamped
}

// Vibe is a named aesthetic preset: per-category subsets of allowed
// codes plus a fixed chaos value. Vibes are static and never mutated.
type Vibe struct {
	ID      string
	Allowed map[Category][]string
	Chaos   float64
	Color   ColorMod
}

// DefaultVibeID is the silent fallback for unknown vibe and industry keys.
const DefaultVibeID = "trustworthy"

// Vibes constrain the structural categories only; the presentation genes
// (corner-radius, texture, border-style, hover-effect) stay unrestricted
// because they are derived from the visual-design pick.
var vibes = map[string]*Vibe{
	"trustworthy": {
		ID: "trustworthy",
		Allowed: map[Category][]string{
			Typography:   {"F1", "F2", "F5"},
			ColorScheme:  {"C1", "C2"},
			PageLayout:   {"L1", "L5"},
			VisualDesign: {"D1", "D2", "D5", "D9"},
			HeroStyle:    {"H1", "H2"},
			NavStyle:     {"N1", "N2"},
			MotionLevel:  {"M1", "M2"},
		},
		Chaos: 0.15,
		Color: ColorMod{HueShift: 0, SatScale: 0.9, LightShift: 0},
	},
	"executive": {
		ID: "executive",
		Allowed: map[Category][]string{
			Typography:   {"F2", "F3", "F6"},
			ColorScheme:  {"C2", "C4"},
			PageLayout:   {"L1", "L2"},
			VisualDesign: {"D3", "D5", "D10"},
			HeroStyle:    {"H3", "H4"},
			NavStyle:     {"N2", "N3"},
			MotionLevel:  {"M1"},
		},
		Chaos: 0.25,
		Color: ColorMod{HueShift: -10, SatScale: 0.75, LightShift: -8},
	},
	"maverick": {
		ID: "maverick",
		Allowed: map[Category][]string{
			Typography:   {"F4", "F7", "F8"},
			ColorScheme:  {"C3", "C5", "C6"},
			PageLayout:   {"L2", "L3", "L4"},
			VisualDesign: {"D4", "D7", "D8", "D12"},
			HeroStyle:    {"H4", "H5", "H6"},
			NavStyle:     {"N3", "N4", "N5"},
			MotionLevel:  {"M2", "M3"},
		},
		Chaos: 0.85,
		Color: ColorMod{HueShift: 25, SatScale: 1.25, LightShift: 4},
	},
	"minimal": {
		ID: "minimal",
		Allowed: map[Category][]string{
			Typography:   {"F2", "F5"},
			ColorScheme:  {"C1", "C4"},
			PageLayout:   {"L5"},
			VisualDesign: {"D1", "D6"},
			HeroStyle:    {"H2", "H5"},
			NavStyle:     {"N1"},
			MotionLevel:  {"M1"},
		},
		Chaos: 0.05,
		Color: ColorMod{HueShift: 0, SatScale: 0.5, LightShift: 6},
	},
	"warm": {
		ID: "warm",
		Allowed: map[Category][]string{
			Typography:   {"F1", "F4", "F6"},
			ColorScheme:  {"C3", "C5"},
			PageLayout:   {"L1", "L3"},
			VisualDesign: {"D2", "D6", "D11"},
			HeroStyle:    {"H1", "H3"},
			NavStyle:     {"N1", "N2"},
			MotionLevel:  {"M1", "M2"},
		},
		Chaos: 0.35,
		Color: ColorMod{HueShift: 15, SatScale: 1.1, LightShift: 5},
	},
	"bold": {
		ID: "bold",
		Allowed: map[Category][]string{
			Typography:   {"F3", "F7", "F8"},
			ColorScheme:  {"C5", "C6"},
			PageLayout:   {"L1", "L2", "L4"},
			VisualDesign: {"D7", "D8", "D12"},
			HeroStyle:    {"H3", "H5", "H6"},
			NavStyle:     {"N2", "N4"},
			MotionLevel:  {"M2", "M3"},
		},
		Chaos: 0.6,
		Color: ColorMod{HueShift: -20, SatScale: 1.35, LightShift: -4},
	},
}

// vibeOrder lists vibe ids in display order.
var vibeOrder = []string{"trustworthy", "executive", "maverick", "minimal", "warm", "bold"}

// VibeByID returns the vibe for an id, falling back to the default vibe
// when the id is unknown. Unknown ids are a data-sparsity case, not an
// error.
func VibeByID(id string) *Vibe {
	if v, ok := vibes[id]; ok {
		return v
	}
	return vibes[DefaultVibeID]
}

// ListVibes returns every vibe in display order.
func ListVibes() []*Vibe {
	out := make([]*Vibe, 0, len(vibeOrder))
	for _, id := range vibeOrder {
		out = append(out, vibes[id])
	}
	return out
}

// IsValid reports whether every populated category of the combination
// belongs to the vibe's allowed subset for that category. Categories the
// vibe does not restrict, and categories absent from the combination,
// are ignored.
func IsValid(d DNA, vibe *Vibe) bool {
	if vibe == nil {
		return true
	}
	for cat, code := range d.Codes {
		subset, restricted := vibe.Allowed[cat]
		if !restricted {
			continue
		}
		if !contains(subset, code) {
			return false
		}
	}
	return true
}

// derivedFromVisual maps a visual-design pick to the presentation genes
// that read best with it. Secondary genes follow the primary one instead
// of being rolled independently.
var derivedFromVisual = map[string]map[Category]string{
	"D1":  {CornerRadius: "R2", HoverEffect: "V1", Texture: "X1"},
	"D2":  {CornerRadius: "R3", HoverEffect: "V2", Texture: "X2"},
	"D3":  {CornerRadius: "R1", HoverEffect: "V1", Texture: "X1"},
	"D4":  {CornerRadius: "R1", HoverEffect: "V4", Texture: "X3"},
	"D5":  {CornerRadius: "R2", HoverEffect: "V2", Texture: "X1"},
	"D6":  {CornerRadius: "R4", HoverEffect: "V3", Texture: "X2"},
	"D7":  {CornerRadius: "R1", HoverEffect: "V5", Texture: "X4"},
	"D8":  {CornerRadius: "R1", HoverEffect: "V4", Texture: "X5"},
	"D9":  {CornerRadius: "R3", HoverEffect: "V1", Texture: "X1"},
	"D10": {CornerRadius: "R2", HoverEffect: "V2", Texture: "X2"},
	"D11": {CornerRadius: "R4", HoverEffect: "V3", Texture: "X3"},
	"D12": {CornerRadius: "R1", HoverEffect: "V5", Texture: "X4"},
}

// GenerateConstrainedDNA picks one code per category uniformly from the
// vibe's allowed subset (or the global enumeration where the vibe is
// unrestricted), then derives the presentation genes from the chosen
// visual-design code. The random source is injected so tests can run
// fully deterministic builds.
func GenerateConstrainedDNA(vibe *Vibe, r *rand.Rand) DNA {
	if vibe == nil {
		vibe = VibeByID(DefaultVibeID)
	}
	d := DNA{Codes: make(map[Category]string, len(categoryOrder)), Chaos: vibe.Chaos}
	for _, cat := range categoryOrder {
		pool := vibe.Allowed[cat]
		if len(pool) == 0 {
			pool = allCodes[cat]
		}
		d.Codes[cat] = pool[r.Intn(len(pool))]
	}
	if derived, ok := derivedFromVisual[d.Codes[VisualDesign]]; ok {
		for cat, code := range derived {
			d.Codes[cat] = code
		}
	}
	return d
}
