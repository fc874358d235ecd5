// SPDX-License-Identifier: MIT
package colors

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a color as hue 0-360, saturation 0-100, lightness 0-100.
type HSL struct {
	H float64
	S float64
	L float64
}

// HexToHSL parses a #RRGGBB color into HSL. Malformed input yields
// black rather than an error; callers feed it table-sourced constants.
// Achromatic colors (s=0) come back with hue 0.
func HexToHSL(hex string) HSL {
	c, err := colorful.Hex(hex)
	if err != nil {
		return HSL{}
	}
	h, s, l := c.Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

// NormalizeHex lowercases and validates a hex color without routing it
// through HSL, so the value survives byte for byte. Malformed input
// yields black.
func NormalizeHex(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	return c.Hex()
}

// Hex renders the color as a lowercase #rrggbb string.
func (c HSL) Hex() string {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Hex()
}

// RotateHue shifts hue by degrees, wrapping modulo 360.
func RotateHue(c HSL, degrees float64) HSL {
	h := math.Mod(c.H+degrees, 360)
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: c.S, L: c.L}
}

// AdjustSaturation adds delta to saturation, clamped to [0,100].
func AdjustSaturation(c HSL, delta float64) HSL {
	return HSL{H: c.H, S: clamp(c.S+delta, 0, 100), L: c.L}
}

// AdjustLightness adds delta to lightness, clamped to [0,100].
func AdjustLightness(c HSL, delta float64) HSL {
	return HSL{H: c.H, S: c.S, L: clamp(c.L+delta, 0, 100)}
}

// grayRamp is the fixed 10-step lightness ramp, lightest first.
var grayRamp = [10]float64{98, 95, 90, 80, 70, 55, 40, 25, 15, 9}

// TintedGrays produces the 10-step gray ramp with saturation scaled by
// tintStrength (0..1), so grays carry the seed hue instead of reading
// as pure neutral.
func TintedGrays(hue float64, tintStrength float64) [10]string {
	sat := clamp(tintStrength, 0, 1) * 15
	var out [10]string
	for i, l := range grayRamp {
		out[i] = HSL{H: hue, S: sat, L: l}.Hex()
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
