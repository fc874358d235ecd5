package colors

import "github.com/lucasb-eyer/go-colorful"

// WCAG AA threshold for normal text.
const minContrast = 4.5

// relative luminance per WCAG 2.x
func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// always >= 1.
func ContrastRatio(a, b string) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// EnsureContrast nudges the foreground until it clears 4.5:1 against
// the background, darkening over a light background and lightening
// over a dark one in fixed 4-point steps. After 20 iterations it gives
// up and returns pure black or white; the bounded loop is intentional.
func EnsureContrast(foreground, background string) string {
	if ContrastRatio(foreground, background) >= minContrast {
		return foreground
	}
	fg := HexToHSL(foreground)
	lightBg := luminance(background) > 0.5
	for i := 0; i < 20; i++ {
		if lightBg {
			fg = AdjustLightness(fg, -4)
		} else {
			fg = AdjustLightness(fg, 4)
		}
		if ContrastRatio(fg.Hex(), background) >= minContrast {
			return fg.Hex()
		}
	}
	if lightBg {
		return "#000000"
	}
	return "#ffffff"
}
