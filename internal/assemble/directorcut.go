package assemble

import "github.com/hatchsite/hatch/internal/sections"

// DirectorCut applies the vibe's structural rewrite to a section
// blueprint. It is a pure function from (vibe id, section list) to
// section list; the input slice is never mutated.
func DirectorCut(vibeID string, specs []SectionSpec) []SectionSpec {
	out := copySpecs(specs)
	switch vibeID {
	case "maverick":
		// Counters read corporate; the maverick cut drops them and
		// leads with voices instead.
		out = dropCategory(out, sections.CategoryStats)
		out = moveCategory(out, sections.CategoryTestimonials, 2)
	case "executive":
		out = forceVariant(out, sections.CategoryHero, sections.HeroSplitID)
	case "trustworthy":
		out = injectAfter(out, sections.CategoryServices, spec(sections.CategoryStats, false))
		out = injectBefore(out, sections.CategoryContact, spec(sections.CategoryTestimonials, false))
	case "minimal":
		out = capSections(out, 2)
	}
	return out
}

func dropCategory(specs []SectionSpec, category string) []SectionSpec {
	out := specs[:0:0]
	for _, s := range specs {
		if s.Category != category {
			out = append(out, s)
		}
	}
	return out
}

// moveCategory relocates the first section of a category to index pos,
// clamped to the list bounds; absent categories are a no-op.
func moveCategory(specs []SectionSpec, category string, pos int) []SectionSpec {
	idx := -1
	for i, s := range specs {
		if s.Category == category {
			idx = i
			break
		}
	}
	if idx < 0 {
		return specs
	}
	moved := specs[idx]
	rest := append(append(specs[:0:0], specs[:idx]...), specs[idx+1:]...)
	if pos > len(rest) {
		pos = len(rest)
	}
	out := append(rest[:0:0], rest[:pos]...)
	out = append(out, moved)
	return append(out, rest[pos:]...)
}

func forceVariant(specs []SectionSpec, category, variantID string) []SectionSpec {
	out := copySpecs(specs)
	for i := range out {
		if out[i].Category == category {
			out[i].ForcedVariant = variantID
		}
	}
	return out
}

// injectAfter adds a section right after the first occurrence of the
// anchor category, unless the section's category is already present.
// A missing anchor falls back to inserting above the page tail.
func injectAfter(specs []SectionSpec, anchor string, add SectionSpec) []SectionSpec {
	if hasCategory(specs, add.Category) {
		return specs
	}
	out := copySpecs(specs)
	for i, s := range out {
		if s.Category == anchor {
			out = append(out[:i+1], append([]SectionSpec{add}, out[i+1:]...)...)
			return out
		}
	}
	return insertBeforeTail(out, add)
}

func injectBefore(specs []SectionSpec, anchor string, add SectionSpec) []SectionSpec {
	if hasCategory(specs, add.Category) {
		return specs
	}
	out := copySpecs(specs)
	for i, s := range out {
		if s.Category == anchor {
			out = append(out[:i], append([]SectionSpec{add}, out[i:]...)...)
			return out
		}
	}
	return insertBeforeTail(out, add)
}

// insertBeforeTail places a section above the contact/footer tail so a
// missing anchor never pushes content below the page frame.
func insertBeforeTail(specs []SectionSpec, add SectionSpec) []SectionSpec {
	for i, s := range specs {
		if s.Category == sections.CategoryContact || s.Category == sections.CategoryFooter {
			return append(specs[:i], append([]SectionSpec{add}, specs[i:]...)...)
		}
	}
	return append(specs, add)
}

// capSections keeps the structural sections (nav, hero, contact,
// footer) plus at most extra others, in order.
func capSections(specs []SectionSpec, extra int) []SectionSpec {
	structural := map[string]bool{
		sections.CategoryNav:     true,
		sections.CategoryHero:    true,
		sections.CategoryContact: true,
		sections.CategoryFooter:  true,
	}
	out := specs[:0:0]
	kept := 0
	for _, s := range specs {
		if structural[s.Category] {
			out = append(out, s)
			continue
		}
		if kept < extra {
			out = append(out, s)
			kept++
		}
	}
	return out
}

func hasCategory(specs []SectionSpec, category string) bool {
	for _, s := range specs {
		if s.Category == category {
			return true
		}
	}
	return false
}
