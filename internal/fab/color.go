package fab

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// whiten blends c towards white by t, keeping its alpha. The blend runs on
// straight color and the result is premultiplied again.
func whiten(c color.RGBA, t float64) color.RGBA {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	r, g, b := cf.BlendRgb(white, t).Clamped().RGB255()
	return color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: c.A}).(color.RGBA)
}
