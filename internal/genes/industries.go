// SPDX-License-Identifier: MIT
package genes

// industryVibes maps an industry key to the vibe its sites default to.
var industryVibes = map[string]string{
	"plumber":     "trustworthy",
	"electrician": "trustworthy",
	"hvac":        "trustworthy",
	"accountant":  "trustworthy",
	"dentist":     "trustworthy",
	"law-firm":    "executive",
	"consulting":  "executive",
	"real-estate": "executive",
	"restaurant":  "warm",
	"cafe":        "warm",
	"landscaping": "warm",
	"salon":       "bold",
	"gym":         "bold",
	"auto-repair": "bold",
	"agency":      "maverick",
	"photography": "maverick",
	"tattoo":      "maverick",
	"spa":         "minimal",
	"architect":   "minimal",
}

// industrySeeds holds the base brand color per industry, modulated by
// the vibe's ColorMod before palette synthesis.
var industrySeeds = map[string]string{
	"plumber":     "#1e5a8a",
	"electrician": "#f59e0b",
	"hvac":        "#0e7490",
	"accountant":  "#14532d",
	"dentist":     "#0ea5e9",
	"law-firm":    "#1e293b",
	"consulting":  "#312e81",
	"real-estate": "#7c2d12",
	"restaurant":  "#b91c1c",
	"cafe":        "#92400e",
	"landscaping": "#15803d",
	"salon":       "#be185d",
	"gym":         "#dc2626",
	"auto-repair": "#374151",
	"agency":      "#7c3aed",
	"photography": "#18181b",
	"tattoo":      "#111827",
	"spa":         "#6d9886",
	"architect":   "#44403c",
}

// defaultSeed is the fallback seed for unknown industry keys.
const defaultSeed = "#2563eb"

// IndustryVibe returns the default vibe for an industry key, falling
// back to the default vibe for unknown keys.
func IndustryVibe(industry string) *Vibe {
	if id, ok := industryVibes[industry]; ok {
		return VibeByID(id)
	}
	return VibeByID(DefaultVibeID)
}

// IndustrySeed returns the base seed color for an industry key.
func IndustrySeed(industry string) string {
	if seed, ok := industrySeeds[industry]; ok {
		return seed
	}
	return defaultSeed
}

// KnownIndustry reports whether the industry key has a curated seed and
// vibe mapping.
func KnownIndustry(industry string) bool {
	_, ok := industryVibes[industry]
	return ok
}
