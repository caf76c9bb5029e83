// Package geom holds the plane geometry shared by the liquid engine and the
// renderer. Points and circles are thin wrappers over honnef.co/go/curve; a
// Path collects circles and Bézier subpaths into one nonzero-filled region.
package geom

import "honnef.co/go/curve"

// Point is a position or a displacement in screen space (y grows downwards).
// It converts freely to and from curve.Point.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Len returns the euclidean length of p taken as a vector.
func (p Point) Len() float64 {
	return curve.Vec2(p).Hypot()
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 {
	return curve.Point(p).Distance(curve.Point(q))
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point(curve.Point(p).Midpoint(curve.Point(q)))
}

// Split returns the weighted blend ratio*p + (1-ratio)*q, so ratio 1 is p and
// ratio 0 is q.
func (p Point) Split(q Point, ratio float64) Point {
	return Point(curve.Point(q).Lerp(curve.Point(p), ratio))
}

// Intersection returns the crossing point of the line through a1,a2 and the
// line through b1,b2. ok is false for parallel lines.
func Intersection(a1, a2, b1, b2 Point) (p Point, ok bool) {
	a := curve.Line{P0: curve.Point(a1), P1: curve.Point(a2)}
	b := curve.Line{P0: curve.Point(b1), P1: curve.Point(b2)}
	cp, ok := a.CrossingPoint(b)
	return Point(cp), ok
}
