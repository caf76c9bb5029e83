package geom

import (
	"iter"
	"slices"

	"honnef.co/go/curve"
)

// CircleTolerance is the accuracy used when circles are expressed as cubic
// Béziers for rendering.
const CircleTolerance = 0.1

// Path is a set of closed contours filled with the nonzero rule. Circles are
// kept exact; every other contour is a Bézier subpath stored with positive
// area, so the filled region is the union of the contours.
type Path struct {
	circles  []curve.Circle
	outline  curve.BezPath
	subpaths int
}

// AddCircle appends an exact circle contour. The circle is copied so later
// moves of c do not alter the path.
func (p *Path) AddCircle(c *Circle) {
	p.circles = append(p.circles, c.Shape())
}

// AddContour appends one subpath that starts with a MoveTo. It is closed if
// needed and reversed when its signed area is negative. A subpath without
// segments is dropped.
func (p *Path) AddContour(sp curve.BezPath) {
	if !sp.HasSegments() {
		return
	}
	if sp[len(sp)-1].Kind != curve.ClosePathKind {
		sp = append(slices.Clip(sp), curve.ClosePath())
	}
	if sp.SignedArea() < 0 {
		sp = sp.ReverseSubpaths()
	}
	p.outline = append(p.outline, sp...)
	p.subpaths++
}

// Append copies all contours of o onto p.
func (p *Path) Append(o *Path) {
	p.circles = append(p.circles, o.circles...)
	p.outline = append(p.outline, o.outline...)
	p.subpaths += o.subpaths
}

// Reset drops every contour but keeps the storage.
func (p *Path) Reset() {
	p.circles = p.circles[:0]
	p.outline = p.outline[:0]
	p.subpaths = 0
}

// Len returns the number of contours.
func (p *Path) Len() int {
	return len(p.circles) + p.subpaths
}

// Contains reports whether pt lies in the filled region.
func (p *Path) Contains(pt Point) bool {
	q := curve.Point(pt)
	w := p.outline.Winding(q)
	for _, c := range p.circles {
		w += c.Winding(q)
	}
	return w != 0
}

// PathElements walks the circles, approximated within tolerance, and then
// the Bézier subpaths.
func (p *Path) PathElements(tolerance float64) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		for _, c := range p.circles {
			for el := range c.PathElements(tolerance) {
				if !yield(el) {
					return
				}
			}
		}
		for _, el := range p.outline {
			if !yield(el) {
				return
			}
		}
	}
}
