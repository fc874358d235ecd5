package colors

import (
	"math"
	"testing"
)

func TestGeneratePaletteContrast(t *testing.T) {
	seeds := []string{"#1e5a8a", "#e11d48", "#f59e0b", "#0f172a", "#fafafa", "#15803d"}
	moods := []Mood{MoodVibrant, MoodMuted, MoodMonochrome}
	for _, seed := range seeds {
		for _, mood := range moods {
			p := GeneratePalette(seed, mood)
			if ratio := ContrastRatio(p.Text, p.Background); ratio < 4.5 {
				t.Errorf("seed %s mood %s: contrast %f < 4.5", seed, mood, ratio)
			}
		}
	}
}

func TestGeneratePaletteDeterministic(t *testing.T) {
	a := GeneratePalette("#1e5a8a", MoodMuted)
	b := GeneratePalette("#1e5a8a", MoodMuted)
	if a != b {
		t.Error("same seed and mood should give identical palettes")
	}
	if a.Primary != "#1e5a8a" {
		t.Errorf("primary should keep the seed, got %s", a.Primary)
	}
}

func TestMutedStaysNearSeedHue(t *testing.T) {
	seed := HexToHSL("#1e5a8a")
	p := GeneratePalette("#1e5a8a", MoodMuted)

	for _, hex := range []string{p.Secondary, p.Accent} {
		h := HexToHSL(hex).H
		if hueDistance(h, seed.H) > 31 {
			t.Errorf("muted color %s is %f degrees from seed hue, want <= 30", hex, hueDistance(h, seed.H))
		}
	}

	vibrant := GeneratePalette("#1e5a8a", MoodVibrant)
	if HexToHSL(p.Secondary).S >= HexToHSL(vibrant.Secondary).S {
		t.Error("muted secondary should be desaturated relative to vibrant")
	}
}

func TestVibrantComplementary(t *testing.T) {
	seed := HexToHSL("#1e5a8a")
	p := GeneratePalette("#1e5a8a", MoodVibrant)
	if d := hueDistance(HexToHSL(p.Secondary).H, seed.H+180); d > 3 {
		t.Errorf("vibrant secondary should sit opposite the seed, off by %f", d)
	}
}

func TestMonochromeKeepsHue(t *testing.T) {
	seed := HexToHSL("#1e5a8a")
	p := GeneratePalette("#1e5a8a", MoodMonochrome)
	for _, hex := range []string{p.Secondary, p.Accent} {
		if d := hueDistance(HexToHSL(hex).H, seed.H); d > 3 {
			t.Errorf("monochrome color %s drifted %f degrees off the seed hue", hex, d)
		}
	}
}

func TestDarkenedKeepsAccents(t *testing.T) {
	p := GeneratePalette("#1e5a8a", MoodMuted)
	d := p.Darkened()
	if d.Secondary != p.Secondary || d.Accent != p.Accent {
		t.Error("dark variant must not re-derive secondary/accent")
	}
	if d.Background == p.Background {
		t.Error("dark variant should flip the background")
	}
	if ratio := ContrastRatio(d.Text, d.Background); ratio < 4.5 {
		t.Errorf("dark variant contrast %f < 4.5", ratio)
	}
	if d.Grays[0] != p.Grays[9] {
		t.Error("dark variant should reverse the gray ramp")
	}
}

func TestEnsureContrastConverges(t *testing.T) {
	got := EnsureContrast("#555555", "#222222")
	if ratio := ContrastRatio(got, "#222222"); ratio < 4.5 {
		t.Errorf("EnsureContrast result still fails: %f", ratio)
	}
}

func TestEnsureContrastFallback(t *testing.T) {
	// no amount of lightening makes a mid-gray background work; after
	// the bounded loop the fallback is pure white
	if got := EnsureContrast("#777777", "#7a7a7a"); got != "#ffffff" {
		t.Errorf("expected pure white fallback, got %s", got)
	}
}

func TestEnsureContrastKeepsPassingColor(t *testing.T) {
	if got := EnsureContrast("#000000", "#ffffff"); got != "#000000" {
		t.Errorf("passing foreground should be untouched, got %s", got)
	}
}

func hueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
