package colors

import (
	"math"
	"strings"
	"testing"
)

func TestHexHSLRoundTrip(t *testing.T) {
	seeds := []string{
		"#1e5a8a", "#e11d48", "#059669", "#f59e0b", "#000000",
		"#ffffff", "#808080", "#64748b", "#a855f7", "#0f172a",
	}
	for _, hex := range seeds {
		got := HexToHSL(hex).Hex()
		if !hexClose(t, hex, got) {
			t.Errorf("round trip %s -> %s drifted more than 1 unit per channel", hex, got)
		}
	}
}

func TestHexToHSLAchromatic(t *testing.T) {
	c := HexToHSL("#808080")
	if c.S > 1 {
		t.Errorf("gray should have ~0 saturation, got %f", c.S)
	}
}

func TestRotateHueWraps(t *testing.T) {
	c := HSL{H: 350, S: 50, L: 50}
	if got := RotateHue(c, 20).H; math.Abs(got-10) > 0.001 {
		t.Errorf("expected hue 10, got %f", got)
	}
	if got := RotateHue(c, -360).H; math.Abs(got-350) > 0.001 {
		t.Errorf("expected hue 350, got %f", got)
	}
}

func TestAdjustClamps(t *testing.T) {
	c := HSL{H: 120, S: 90, L: 95}
	if got := AdjustSaturation(c, 40).S; got != 100 {
		t.Errorf("saturation should clamp to 100, got %f", got)
	}
	if got := AdjustSaturation(c, -200).S; got != 0 {
		t.Errorf("saturation should clamp to 0, got %f", got)
	}
	if got := AdjustLightness(c, 40).L; got != 100 {
		t.Errorf("lightness should clamp to 100, got %f", got)
	}
}

func TestTintedGraysRamp(t *testing.T) {
	grays := TintedGrays(210, 0.5)
	if len(grays) != 10 {
		t.Fatalf("expected 10 grays, got %d", len(grays))
	}
	prev := 101.0
	for i, g := range grays {
		if !strings.HasPrefix(g, "#") {
			t.Errorf("gray %d not hex: %s", i, g)
		}
		l := HexToHSL(g).L
		if l >= prev {
			t.Errorf("ramp not strictly darkening at step %d (%f >= %f)", i, l, prev)
		}
		prev = l
	}
}

func TestTintedGraysCarryHue(t *testing.T) {
	tinted := HexToHSL(TintedGrays(210, 1.0)[5])
	if tinted.S == 0 {
		t.Error("tinted gray should not be pure neutral")
	}
	if math.Abs(tinted.H-210) > 2 {
		t.Errorf("tinted gray lost seed hue: %f", tinted.H)
	}
}

// hexClose compares two hex colors channel by channel with tolerance 1.
func hexClose(t *testing.T, a, b string) bool {
	t.Helper()
	if len(a) != 7 || len(b) != 7 {
		t.Fatalf("bad hex inputs %q %q", a, b)
	}
	for i := 1; i < 7; i += 2 {
		va := hexByte(t, a[i:i+2])
		vb := hexByte(t, b[i:i+2])
		if va-vb > 1 || vb-va > 1 {
			return false
		}
	}
	return true
}

func hexByte(t *testing.T, s string) int {
	t.Helper()
	v := 0
	for _, r := range strings.ToLower(s) {
		v *= 16
		switch {
		case r >= '0' && r <= '9':
			v += int(r - '0')
		case r >= 'a' && r <= 'f':
			v += int(r-'a') + 10
		default:
			t.Fatalf("bad hex digit %q", r)
		}
	}
	return v
}
