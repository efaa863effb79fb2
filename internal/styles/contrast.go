package styles

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// parseHex parses #rrggbb, ignoring a trailing alpha pair. Invalid input
// parses as black.
func parseHex(hex string) colorful.Color {
	if len(hex) == 9 {
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// Luminance returns relative luminance (0-1) using the sRGB formula.
func Luminance(hex string) float64 {
	r, g, b := parseHex(hex).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG 2.0 contrast ratio between two colors (1 to 21).
func ContrastRatio(fg, bg string) float64 {
	l1 := Luminance(fg)
	l2 := Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Blend mixes two hex colors: result = (1-t)*c1 + t*c2. t is clamped to [0,1].
func Blend(c1, c2 string, t float64) string {
	t = math.Max(0, math.Min(1, t))
	return parseHex(c1).BlendRgb(parseHex(c2), t).Clamped().Hex()
}

// Lighten increases HSL lightness by pct (0-1).
func Lighten(hex string, pct float64) string {
	h, s, l := parseHex(hex).Hsl()
	return colorful.Hsl(h, s, math.Min(1, l+pct)).Clamped().Hex()
}

// Darken decreases HSL lightness by pct (0-1).
func Darken(hex string, pct float64) string {
	h, s, l := parseHex(hex).Hsl()
	return colorful.Hsl(h, s, math.Max(0, l-pct)).Clamped().Hex()
}

// shade moves a background away from its pole: lighter on dark themes,
// darker on light ones.
func shade(bg string, amount float64, isDark bool) string {
	if isDark {
		return Lighten(bg, amount)
	}
	return Darken(bg, amount)
}

// EnsureContrast blends fg toward white or black until it reaches minRatio
// against bg, choosing the pole that needs the smallest shift. fg is
// returned unchanged when it already passes.
func EnsureContrast(fg, bg string, minRatio float64) string {
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}

	best := ""
	bestShift := math.MaxFloat64
	for _, pole := range []string{"#ffffff", "#000000"} {
		if ContrastRatio(pole, bg) < minRatio {
			continue
		}
		lo, hi := 0.0, 1.0
		for i := 0; i < 16; i++ {
			mid := (lo + hi) / 2
			if ContrastRatio(Blend(fg, pole, mid), bg) >= minRatio {
				hi = mid
			} else {
				lo = mid
			}
		}
		if hi < bestShift {
			bestShift = hi
			best = Blend(fg, pole, hi)
		}
	}
	if best != "" {
		return best
	}
	if Luminance(bg) > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}
