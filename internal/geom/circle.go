package geom

import (
	"image/color"

	"honnef.co/go/curve"
)

// Circle is a filled disc. Circles are shared by pointer: the owner moves
// Center every frame and everything that pushed the circle sees the move.
type Circle struct {
	Center Point
	Radius float64
	Color  color.RGBA
}

// NewCircle returns a circle at center with the given radius and fill.
func NewCircle(center Point, radius float64, clr color.RGBA) *Circle {
	return &Circle{Center: center, Radius: radius, Color: clr}
}

// Shape returns the circle's current outline.
func (c *Circle) Shape() curve.Circle {
	return curve.Circle{Center: curve.Point(c.Center), Radius: c.Radius}
}

// PointAt returns the point on the rim at angle rad.
func (c *Circle) PointAt(rad float64) Point {
	return Point(curve.Point(c.Center).Translate(curve.VecFromAngle(rad).Mul(c.Radius)))
}

// Diameter returns twice the radius.
func (c *Circle) Diameter() float64 {
	return c.Radius * 2
}

// Contains reports whether p lies strictly inside the disc.
func (c *Circle) Contains(p Point) bool {
	return c.Shape().Contains(curve.Point(p))
}

// BoundsContain reports whether p lies in the circle's bounding square.
func (c *Circle) BoundsContain(p Point) bool {
	return c.Shape().BoundingBox().Contains(curve.Point(p))
}
