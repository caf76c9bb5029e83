package fab

import (
	"image/color"
	"math"

	"github.com/iburimskiy/liquid-button/internal/geom"
)

// Cell is one satellite circle of the button. Index is its place in the
// staggered sequence, 0 being nearest the base. A cell does not point back to
// its button; the button resolves cells by index.
type Cell struct {
	Index  int
	Circle *geom.Circle

	// Offset is the distance travelled from the base center along the axis.
	Offset float64
	// Opacity applies to the cell's content, in [0,1].
	Opacity float64
	// Interactive cells can be hit and selected.
	Interactive bool
	// Shadow is off while the cell animates.
	Shadow bool
	// Responsible cells highlight while pressed.
	Responsible bool

	attached      bool
	pressed       bool
	originalColor color.RGBA
}

// NewCell returns a detached, non-interactive cell. Radius, color and
// position are assigned when the button inserts it.
func NewCell() *Cell {
	return &Cell{
		Circle:      &geom.Circle{},
		Responsible: true,
	}
}

// Attached reports whether the cell is part of the visible tree.
func (c *Cell) Attached() bool {
	return c.attached
}

// Pressed reports whether the cell is being held down.
func (c *Cell) Pressed() bool {
	return c.pressed
}

func (c *Cell) setColor(clr color.RGBA) {
	c.originalColor = clr
	if c.pressed && c.Responsible {
		c.Circle.Color = whiten(clr, 0.5)
		return
	}
	c.Circle.Color = clr
}

func (c *Cell) press() {
	c.pressed = true
	if c.Responsible {
		c.originalColor = c.Circle.Color
		c.Circle.Color = whiten(c.originalColor, 0.5)
	}
}

func (c *Cell) release() {
	if c.pressed && c.Responsible {
		c.Circle.Color = c.originalColor
	}
	c.pressed = false
}

// openPosition returns the positional ratio of cell i of n while opening: a
// cell stays at the base until the eased ratio passes i/n.
func openPosition(i, n int, ratio float64) float64 {
	if ratio > float64(i)/float64(n) {
		return ratio
	}
	return 0
}

// travel is the distance of cell i from the base center at full extension,
// scaled by ratio.
func travel(i int, diameter, ratio float64) float64 {
	return float64(i+1) * diameter * 1.5 * ratio
}

// contentAlpha maps a timeline key to content opacity. Closing negates the
// curve, which clamps to fully transparent.
func contentAlpha(key float64, open bool) float64 {
	a := math.Max(2*(key*key-0.5), 0)
	if !open {
		a = -a
	}
	return math.Min(math.Max(a, 0), 1)
}

func (c *Cell) place(origin geom.Point, style Style, distance float64) {
	c.Offset = distance
	c.Circle.Center = origin.Add(style.Offset(distance))
}

// applyOpen lays the cell out for an opening frame of n cells.
func (c *Cell) applyOpen(n int, ratio float64, origin geom.Point, style Style) {
	pos := openPosition(c.Index, n, ratio)
	c.place(origin, style, travel(c.Index, c.Circle.Diameter(), pos))
	c.Opacity = contentAlpha(pos, true)
}

// applyClose lays the cell out for a closing frame.
func (c *Cell) applyClose(ratio float64, origin geom.Point, style Style) {
	c.place(origin, style, travel(c.Index, c.Circle.Diameter(), 1-ratio))
	c.Opacity = contentAlpha(ratio, false)
}
