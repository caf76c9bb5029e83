package game

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// palette returns n evenly spaced hues starting at hue (0-360).
func palette(n int, hue float64) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		h := math.Mod(hue+float64(i)*360/float64(max(n, 1)), 360)
		r, g, b := colorful.Hsv(h, 0.55, 0.95).Clamped().RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

// withAlpha scales c's alpha by a in [0,1].
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * clamp01(a))}
}

// shade darkens c by t towards black.
func shade(c color.RGBA, t float64) color.RGBA {
	k := 1 - clamp01(t)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
