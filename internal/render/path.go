// Package render draws button geometry with ebiten.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"honnef.co/go/curve"

	"github.com/iburimskiy/liquid-button/internal/geom"
)

var whiteSubImage *ebiten.Image

func solid() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// VectorPath converts p into an ebiten path shifted by offset. Every contour
// of p has positive area, so a nonzero fill gives the union.
func VectorPath(p *geom.Path, offset geom.Point) *vector.Path {
	var vp vector.Path
	at := func(q curve.Point) (float32, float32) {
		return float32(q.X + offset.X), float32(q.Y + offset.Y)
	}
	for el := range p.PathElements(geom.CircleTolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			x, y := at(el.P0)
			vp.MoveTo(x, y)
		case curve.LineToKind:
			x, y := at(el.P0)
			vp.LineTo(x, y)
		case curve.QuadToKind:
			cx, cy := at(el.P0)
			x, y := at(el.P1)
			vp.QuadTo(cx, cy, x, y)
		case curve.CubicToKind:
			c1x, c1y := at(el.P0)
			c2x, c2y := at(el.P1)
			x, y := at(el.P2)
			vp.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case curve.ClosePathKind:
			vp.Close()
		}
	}
	return &vp
}

// FillPath fills p onto dst with clr using the nonzero rule.
func FillPath(dst *ebiten.Image, p *geom.Path, clr color.Color) {
	fillPath(dst, p, geom.Point{}, clr)
}

// FillShadow fills p shifted by offset, for a soft drop shadow.
func FillShadow(dst *ebiten.Image, p *geom.Path, offset geom.Point, clr color.Color) {
	fillPath(dst, p, offset, clr)
}

func fillPath(dst *ebiten.Image, p *geom.Path, offset geom.Point, clr color.Color) {
	if p.Len() == 0 {
		return
	}
	vs, is := VectorPath(p, offset).AppendVerticesAndIndicesForFilling(nil, nil)
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.NonZero
	dst.DrawTriangles(vs, is, solid(), op)
}
