package genes

import "fmt"

// Category is one categorical style dimension of a generated site.
type Category string

const (
	Typography   Category = "typography"
	ColorScheme  Category = "color-scheme"
	PageLayout   Category = "page-layout"
	VisualDesign Category = "visual-design"
	HeroStyle    Category = "hero-style"
	NavStyle     Category = "navigation-style"
	MotionLevel  Category = "motion-level"
	CornerRadius Category = "corner-radius"
	Texture      Category = "texture"
	BorderStyle  Category = "border-style"
	HoverEffect  Category = "hover-effect"
)

// categoryOrder fixes iteration order so generation and rendering are
// deterministic for a given random source.
var categoryOrder = []Category{
	Typography, ColorScheme, PageLayout, VisualDesign, HeroStyle,
	NavStyle, MotionLevel, CornerRadius, Texture, BorderStyle, HoverEffect,
}

// allCodes is the global, versioned enumeration of valid codes per category.
var allCodes = map[Category][]string{
	Typography:   {"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8"},
	ColorScheme:  {"C1", "C2", "C3", "C4", "C5", "C6"},
	PageLayout:   {"L1", "L2", "L3", "L4", "L5", "L6"},
	VisualDesign: {"D1", "D2", "D3", "D4", "D5", "D6", "D7", "D8", "D9", "D10", "D11", "D12"},
	HeroStyle:    {"H1", "H2", "H3", "H4", "H5", "H6"},
	NavStyle:     {"N1", "N2", "N3", "N4", "N5"},
	MotionLevel:  {"M1", "M2", "M3"},
	CornerRadius: {"R1", "R2", "R3", "R4"},
	Texture:      {"X1", "X2", "X3", "X4", "X5"},
	BorderStyle:  {"B1", "B2", "B3", "B4"},
	HoverEffect:  {"V1", "V2", "V3", "V4", "V5"},
}

// Layout codes with dedicated resolver behavior.
const (
	LayoutMasonry      = "L3"
	LayoutSingleColumn = "L5"
	LayoutTimeline     = "L6"
)

// Motion codes, in increasing intensity.
const (
	MotionSubtle   = "M1"
	MotionModerate = "M2"
	MotionDramatic = "M3"
)

// Categories returns every gene category in fixed order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// AllowedCodes returns the global code enumeration for a category.
func AllowedCodes(cat Category) []string {
	codes := allCodes[cat]
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// DNA is one concrete gene choice per category plus a chaos scalar.
// Treat it as immutable once produced; Merge returns a copy.
type DNA struct {
	Codes map[Category]string
	Chaos float64
}

// Get returns the code for a category, or "" if unpopulated.
func (d DNA) Get(cat Category) string {
	return d.Codes[cat]
}

// Merge returns a copy of d with every populated category of override
// replacing d's value. Explicit caller codes win over generated ones.
func (d DNA) Merge(override DNA) DNA {
	merged := DNA{Codes: make(map[Category]string, len(d.Codes)), Chaos: d.Chaos}
	for cat, code := range d.Codes {
		merged.Codes[cat] = code
	}
	for cat, code := range override.Codes {
		if code != "" {
			merged.Codes[cat] = code
		}
	}
	if override.Chaos > 0 {
		merged.Chaos = override.Chaos
	}
	return merged
}

// Validate checks every populated category against the global enumeration.
// An unknown category or code is a programming error upstream and fails
// fast rather than silently substituting.
func Validate(d DNA) error {
	for cat, code := range d.Codes {
		valid, known := allCodes[cat]
		if !known {
			return fmt.Errorf("unknown gene category %q", cat)
		}
		if !contains(valid, code) {
			return fmt.Errorf("code %q is not valid for gene category %q", code, cat)
		}
	}
	return nil
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
