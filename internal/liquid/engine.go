// Package liquid builds the metaball-like outline that joins two circles
// when they are close and lets them separate when they drift apart.
//
// An Engine is rebuilt every frame: Clear, Push every pair, then Draw onto a
// shared path. Nothing geometric survives a Clear.
package liquid

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"honnef.co/go/curve"

	"github.com/iburimskiy/liquid-button/internal/geom"
)

const (
	// connectThresh widens the neck opening angle at low ratios and is the
	// ratio below which drips stop growing.
	connectThresh = 0.3
	dripAngle     = 60 * math.Pi / 180
	// mergeEpsilon is the center distance treated as coincident.
	mergeEpsilon = 1e-9
)

var ErrInvalidThreshold = errors.New("liquid: invalid threshold")

// Thresholds decide when two circles are blended.
//
// Radius is the largest rim-to-rim gap that still connects; the comparison is
// exclusive, so a gap equal to Radius renders the circles apart. Angle is the
// connection ratio at or above which the circles share a neck; below it the
// pair only grows drips towards each other.
type Thresholds struct {
	Radius float64
	Angle  float64
}

// Validate rejects thresholds that cannot describe a connection.
func (t Thresholds) Validate() error {
	if !(t.Radius > 0) {
		return fmt.Errorf("%w: radius threshold %v must be positive", ErrInvalidThreshold, t.Radius)
	}
	if !(t.Angle > 0) || t.Angle > 1 {
		return fmt.Errorf("%w: angle threshold %v must be in (0,1]", ErrInvalidThreshold, t.Angle)
	}
	return nil
}

type pair struct {
	anchor, other *geom.Circle
}

// Engine accumulates circle pairs for one frame and synthesizes their outline.
type Engine struct {
	thresh    Thresholds
	viscosity float64
	color     color.RGBA

	pairs   []pair
	outline geom.Path
	built   bool
}

// NewEngine returns an engine with fixed thresholds. viscosity must be in
// (0,1]; lower values give a thinner, stiffer neck.
func NewEngine(thresh Thresholds, viscosity float64) (*Engine, error) {
	if err := thresh.Validate(); err != nil {
		return nil, err
	}
	if !(viscosity > 0) || viscosity > 1 {
		return nil, fmt.Errorf("%w: viscosity %v must be in (0,1]", ErrInvalidThreshold, viscosity)
	}
	return &Engine{
		thresh:    thresh,
		viscosity: viscosity,
	}, nil
}

func (e *Engine) Thresholds() Thresholds { return e.thresh }
func (e *Engine) Viscosity() float64 { return e.viscosity }
func (e *Engine) Color() color.RGBA { return e.color }

// SetColor changes the fill used when the outline is rendered.
func (e *Engine) SetColor(c color.RGBA) {
	e.color = c
}

// Clear discards every pushed pair and the cached outline.
func (e *Engine) Clear() {
	e.pairs = e.pairs[:0]
	e.outline.Reset()
	e.built = false
}

// Push records a pair to blend. It panics on a nil circle or a non-positive
// radius: those are caller bugs, not runtime conditions.
func (e *Engine) Push(anchor, other *geom.Circle) {
	mustBeValid(anchor)
	mustBeValid(other)
	e.pairs = append(e.pairs, pair{anchor: anchor, other: other})
	e.built = false
}

func mustBeValid(c *geom.Circle) {
	if c == nil {
		panic("liquid: push of nil circle")
	}
	if !(c.Radius > 0) {
		panic(fmt.Sprintf("liquid: push of circle with radius %v", c.Radius))
	}
}

// Len returns the number of pairs pushed since the last Clear.
func (e *Engine) Len() int {
	return len(e.pairs)
}

// Draw appends the outline of every pushed pair, both circles included, to
// dst. With no pairs dst is left untouched.
func (e *Engine) Draw(dst *geom.Path) {
	if !e.built {
		e.outline.Reset()
		for _, p := range e.pairs {
			e.outline.AddCircle(p.anchor)
			e.outline.AddCircle(p.other)
			e.connect(&e.outline, p.anchor, p.other)
		}
		e.built = true
	}
	dst.Append(&e.outline)
}

// Outline returns the pushed pairs' geometry on its own.
func (e *Engine) Outline() *geom.Path {
	var p geom.Path
	e.Draw(&p)
	return &p
}

// Connected reports whether the rim-to-rim gap of a and b is below the
// radius threshold.
func (e *Engine) Connected(a, b *geom.Circle) bool {
	d := a.Center.Dist(b.Center)
	return d-a.Radius-b.Radius < e.thresh.Radius
}

// Ratio returns the connection ratio in [0,1]: 1 for touching centers,
// falling as the circles separate.
func (e *Engine) Ratio(a, b *geom.Circle) float64 {
	d := a.Center.Dist(b.Center)
	r := 1 - (d-e.thresh.Radius)/(a.Radius+b.Radius+e.thresh.Radius)
	return clamp01(r)
}

// Neck reports whether the pair would be joined by a neck.
func (e *Engine) Neck(a, b *geom.Circle) bool {
	if !e.Connected(a, b) || merged(a, b) {
		return false
	}
	return e.Ratio(a, b) >= e.thresh.Angle
}

// merged is true when one circle sits on or inside the other; the circles
// alone already form the silhouette.
func merged(a, b *geom.Circle) bool {
	d := a.Center.Dist(b.Center)
	return d < mergeEpsilon || d <= math.Abs(a.Radius-b.Radius)
}

func (e *Engine) connect(dst *geom.Path, a, b *geom.Circle) {
	if !e.Connected(a, b) || merged(a, b) {
		return
	}
	ratio := e.Ratio(a, b)
	if ratio >= e.thresh.Angle {
		e.neck(dst, a, b, ratio)
		return
	}
	e.drips(dst, a, b, ratio)
}

// rimPoints returns the two rim points of c at ±angle around the direction
// from c towards other.
func rimPoints(c, other *geom.Circle, angle float64) (geom.Point, geom.Point) {
	v := other.Center.Sub(c.Center)
	rad := math.Atan2(v.Y, v.X)
	return c.PointAt(rad + angle), c.PointAt(rad - angle)
}

func (e *Engine) neck(dst *geom.Path, a, b *geom.Circle, ratio float64) {
	open := (ratio + connectThresh) / (1 + connectThresh)
	angle := math.Pi / 2 * open
	p1, p2 := rimPoints(a, b, angle)
	p3, p4 := rimPoints(b, a, angle)
	crossed, ok := geom.Intersection(p1, p3, p2, p4)
	if !ok {
		return
	}
	// k is 1 for a straight band and 0 for a neck pinched to the crossing.
	k := clamp01((ratio*1.25 - 0.25) * e.viscosity)
	c1 := p1.Mid(p4).Split(crossed, k)
	c2 := p2.Mid(p3).Split(crossed, k)
	var sp curve.BezPath
	sp.MoveTo(curve.Point(p1))
	sp.QuadTo(curve.Point(c1), curve.Point(p4))
	sp.LineTo(curve.Point(p3))
	sp.QuadTo(curve.Point(c2), curve.Point(p2))
	sp.ClosePath()
	dst.AddContour(sp)
}

func (e *Engine) drips(dst *geom.Path, a, b *geom.Circle, ratio float64) {
	p1, p2 := rimPoints(a, b, dripAngle)
	p3, p4 := rimPoints(b, a, dripAngle)
	crossed, ok := geom.Intersection(p1, p3, p2, p4)
	if !ok {
		return
	}
	nearA, _ := rimPoints(a, b, 0)
	nearB, _ := rimPoints(b, a, 0)
	var r float64
	if span := e.thresh.Angle - connectThresh; span > 0 {
		r = clamp01((ratio - connectThresh) / span)
	}
	dst.AddContour(drip(p1, nearB.Split(crossed, r*r), p2))
	dst.AddContour(drip(p3, nearA.Split(crossed, r*r), p4))
}

// drip is the single-curve contour from one rim point to the other, closed by
// the chord between them.
func drip(from, ctrl, to geom.Point) curve.BezPath {
	return curve.BezPath{
		curve.MoveTo(curve.Point(from)),
		curve.QuadTo(curve.Point(ctrl), curve.Point(to)),
		curve.ClosePath(),
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
