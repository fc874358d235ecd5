// SPDX-License-Identifier: MIT
package colors

// Mood selects how secondary and accent are derived from the seed.
type Mood string

const (
	MoodVibrant    Mood = "vibrant"
	MoodMuted      Mood = "muted"
	MoodMonochrome Mood = "monochrome"
)

// Palette holds the six semantic color roles plus the tinted gray ramp
// they were picked from. All values are lowercase #rrggbb.
type Palette struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Text       string
	Muted      string
	Grays      [10]string
	Dark       bool // background drawn from the dark end of the ramp
}

// gray-ramp tint per mood
var moodTint = map[Mood]float64{
	MoodVibrant:    0.5,
	MoodMuted:      0.35,
	MoodMonochrome: 0.2,
}

// GeneratePalette derives a full semantic palette from one seed color.
// It is a pure function of (seed, mood); the same inputs always give
// the same palette.
func GeneratePalette(seedHex string, mood Mood) Palette {
	seed := HexToHSL(seedHex)

	var secondary, accent HSL
	switch mood {
	case MoodVibrant:
		secondary = AdjustSaturation(RotateHue(seed, 180), 15)
		accent = AdjustLightness(AdjustSaturation(RotateHue(seed, 60), 20), 5)
	case MoodMonochrome:
		secondary = AdjustSaturation(AdjustLightness(seed, 20), -10)
		accent = AdjustSaturation(AdjustLightness(seed, -15), 10)
	default: // muted
		secondary = AdjustSaturation(RotateHue(seed, 30), -20)
		accent = AdjustLightness(AdjustSaturation(RotateHue(seed, -30), -25), 10)
	}

	tint, ok := moodTint[mood]
	if !ok {
		tint = moodTint[MoodMuted]
	}
	grays := TintedGrays(seed.H, tint)

	// A light seed reads best against the dark end of the ramp and
	// vice versa.
	dark := seed.L > 50
	p := Palette{
		Primary:   NormalizeHex(seedHex),
		Secondary: secondary.Hex(),
		Accent:    accent.Hex(),
		Grays:     grays,
		Dark:      dark,
	}
	if dark {
		p.Background = grays[9]
		p.Text = grays[0]
		p.Muted = grays[4]
	} else {
		p.Background = grays[0]
		p.Text = grays[9]
		p.Muted = grays[5]
	}

	p.Text = EnsureContrast(p.Text, p.Background)
	return p
}

// Darkened returns the dark-mode variant: the gray ramp is reversed and
// background/text/muted re-picked from it. Secondary and accent keep
// the light palette's hues unchanged; dark mode does not re-derive hue
// relationships.
func (p Palette) Darkened() Palette {
	out := p
	for i := range p.Grays {
		out.Grays[i] = p.Grays[len(p.Grays)-1-i]
	}
	out.Dark = !p.Dark
	// Same ramp indices as generation; the reversal is what flips the
	// appearance.
	out.Background = out.Grays[0]
	out.Text = out.Grays[9]
	out.Muted = out.Grays[5]
	out.Text = EnsureContrast(out.Text, out.Background)
	return out
}
