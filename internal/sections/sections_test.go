package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatchsite/hatch/internal/content"
	"github.com/hatchsite/hatch/internal/layout"
	"github.com/hatchsite/hatch/internal/registry"
)

func sampleContent() *content.SiteContent {
	return &content.SiteContent{
		BusinessName: "Reyes Plumbing",
		Tagline:      "Fast, honest repairs",
		Contact: content.Contact{
			Phone:   "555-0142",
			Email:   "office@reyesplumbing.test",
			Address: "12 Canal St",
		},
		Services: []content.Service{
			{Name: "Drain cleaning", Description: "Clogs cleared same day."},
			{Name: "Water heaters", Description: "Install and repair."},
		},
		Hours: map[string]string{
			"monday": "8-5", "friday": "8-4", "saturday": "closed",
		},
	}
}

func TestExtractHeroFallsBackToBusinessName(t *testing.T) {
	sc := sampleContent()
	got, ok := Extract(CategoryHero, sc)
	require.True(t, ok)
	hc := got.(HeroContent)
	assert.Equal(t, "Reyes Plumbing", hc.Headline)

	sc.Headline = "Pipes fixed right"
	got, _ = Extract(CategoryHero, sc)
	assert.Equal(t, "Pipes fixed right", got.(HeroContent).Headline)
}

func TestExtractEmptySectionsSkipped(t *testing.T) {
	sc := sampleContent()
	for _, cat := range []string{CategoryTestimonials, CategoryStats, CategoryTeam, CategoryGallery, CategoryFAQ, CategoryPricing} {
		_, ok := Extract(cat, sc)
		assert.False(t, ok, cat)
	}
	_, ok := Extract(CategoryServices, sc)
	assert.True(t, ok)
}

func TestExtractContactAndCTA(t *testing.T) {
	sc := sampleContent()
	_, ok := Extract(CategoryContact, sc)
	assert.True(t, ok)
	_, ok = Extract(CategoryCTA, sc)
	assert.True(t, ok)

	sc.Contact = content.Contact{}
	_, ok = Extract(CategoryContact, sc)
	assert.False(t, ok)
	_, ok = Extract(CategoryCTA, sc)
	assert.False(t, ok, "cta needs a phone number")
}

func TestExtractUnknownCategory(t *testing.T) {
	_, ok := Extract("sidebar", sampleContent())
	assert.False(t, ok)
}

func TestPresentAnchorsOrder(t *testing.T) {
	sc := sampleContent()
	sc.FAQs = []content.FAQ{{Question: "Do you warranty work?", Answer: "Yes, one year."}}
	nc, _ := Extract(CategoryNav, sc)
	assert.Equal(t, []string{CategoryServices, CategoryFAQ, CategoryContact}, nc.(NavContent).Anchors)
}

func TestPlaceholder(t *testing.T) {
	f := Placeholder(CategoryStats)
	assert.Contains(t, f.Markup, "placeholder-stats")
	assert.Contains(t, f.Markup, ">stats<")
	assert.Empty(t, f.Styles)
}

func TestRenderersEscapeUserText(t *testing.T) {
	ctx := registry.Context{Content: HeroContent{
		BusinessName: "Acme",
		Headline:     `<script>alert("x")</script>`,
		Tagline:      "safe & sound",
	}}
	for _, render := range []registry.RenderFunc{renderHeroCentered, renderHeroSplit, renderHeroMinimal} {
		f := render(ctx)
		assert.NotContains(t, f.Markup, "<script>")
		assert.Contains(t, f.Markup, "&lt;script&gt;")
		assert.Contains(t, f.Markup, "safe &amp; sound")
	}
}

func TestContactHoursDeterministicOrder(t *testing.T) {
	cc, _ := Extract(CategoryContact, sampleContent())
	ctx := registry.Context{Content: cc}

	first := renderContactBlock(ctx)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, renderContactBlock(ctx))
	}
	mon := strings.Index(first.Markup, "Monday")
	fri := strings.Index(first.Markup, "Friday")
	sat := strings.Index(first.Markup, "Saturday")
	require.True(t, mon >= 0 && fri >= 0 && sat >= 0)
	assert.Less(t, mon, fri)
	assert.Less(t, fri, sat)
}

func TestContainerCSSGrid(t *testing.T) {
	css := containerCSS(".svc", layout.Config{
		Kind:    layout.KindGrid,
		Columns: 3,
		Pattern: []int{2, 0, 1},
		Gap:     layout.GapMedium,
		Chaos:   0.2,
	})
	assert.Contains(t, css, "repeat(3, 1fr)")
	assert.Contains(t, css, ":nth-child(1) { grid-column: span 2; }")
	assert.Contains(t, css, ":nth-child(2) { visibility: hidden; }")
	assert.NotContains(t, css, "translate(", "no displacement below the gate")
	assert.Contains(t, css, "@media (max-width: 767px)")
}

func TestContainerCSSGridDisplacement(t *testing.T) {
	css := containerCSS(".svc", layout.Config{
		Kind:    layout.KindGrid,
		Columns: 3,
		Pattern: []int{1, 1, 1},
		Gap:     layout.GapLarge,
		Chaos:   0.9,
	})
	assert.Contains(t, css, "translate(")
	assert.Contains(t, css, "@media (min-width: 768px)")
}

func TestContainerCSSStackTimeline(t *testing.T) {
	css := containerCSS(".faq", layout.Config{Kind: layout.KindStack, Gap: layout.GapSmall, Timeline: true})
	assert.Contains(t, css, "flex-direction: column")
	assert.Contains(t, css, "border-left")

	plain := containerCSS(".faq", layout.Config{Kind: layout.KindStack, Gap: layout.GapSmall})
	assert.NotContains(t, plain, "border-left")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "FAQ", titleCase("faq"))
	assert.Equal(t, "Services", titleCase("services"))
}
