// Package fab is the expandable liquid action button: a base circle that
// spawns a row of cells joined to it by liquid bridges.
//
// The host drives everything through Tick, Press and Release, and reads back
// the outline, the cells and the indicator rotation to render them.
package fab

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/liquid-button/internal/anim"
	"github.com/iburimskiy/liquid-button/internal/geom"
)

var ErrInvalidConfig = errors.New("fab: invalid configuration")

// DataSource supplies the cells of the button every time it opens.
type DataSource interface {
	NumberOfCells(b *Button) int
	CellForIndex(b *Button, index int) *Cell
}

// Delegate receives the button's events. Embed NopDelegate to implement only
// some of them.
type Delegate interface {
	DidSelectItem(b *Button, index int)
	DidStartOpenAnimation(b *Button)
	DidStartCloseAnimation(b *Button)
	DidEndCloseAnimation(b *Button)
}

type NopDelegate struct{}

func (NopDelegate) DidSelectItem(*Button, int) {}
func (NopDelegate) DidStartOpenAnimation(*Button) {}
func (NopDelegate) DidStartCloseAnimation(*Button) {}
func (NopDelegate) DidEndCloseAnimation(*Button) {}

// Options configure a Button.
type Options struct {
	Liquid LiquidConfig
	// CellRadiusRatio sizes cells relative to the button diameter.
	CellRadiusRatio float64
	ButtonColor     color.RGBA
	IconColor       color.RGBA
}

// openRotation is the indicator angle of an open button.
const openRotation = -math.Pi / 2

// Button is the host-facing widget.
type Button struct {
	center geom.Point
	radius float64

	cellRadiusRatio float64
	buttonColor     color.RGBA
	iconColor       color.RGBA

	// Responsible buttons highlight while pressed.
	Responsible bool

	orch     *Orchestrator
	base     *geom.Circle
	source   DataSource
	delegate Delegate

	cells    []*Cell
	rotation float64
	touching bool
	pressed  *Cell
}

// NewButton creates a closed button at center.
func NewButton(center geom.Point, radius float64, opts Options) (*Button, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: radius %v must be positive", ErrInvalidConfig, radius)
	}
	if !(opts.CellRadiusRatio > 0) {
		return nil, fmt.Errorf("%w: cell radius ratio %v must be positive", ErrInvalidConfig, opts.CellRadiusRatio)
	}
	base := geom.NewCircle(center, radius, opts.IconColor)
	orch, err := NewOrchestrator(base, opts.Liquid)
	if err != nil {
		return nil, err
	}
	b := &Button{
		center:          center,
		radius:          radius,
		cellRadiusRatio: opts.CellRadiusRatio,
		buttonColor:     opts.ButtonColor,
		iconColor:       opts.IconColor,
		Responsible:     true,
		orch:            orch,
		base:            base,
		delegate:        NopDelegate{},
	}
	orch.OnStop(b.didStop)
	return b, nil
}

func (b *Button) SetDataSource(ds DataSource) {
	b.source = ds
}

// SetDelegate registers the single delegate; nil restores the no-op one.
func (b *Button) SetDelegate(d Delegate) {
	if d == nil {
		d = NopDelegate{}
	}
	b.delegate = d
}

// IsClosed reports whether the indicator is in the closed position. It flips
// as soon as Open or Close is called, not when the animation ends.
func (b *Button) IsClosed() bool {
	return b.rotation == 0
}

// Rotation is the target angle of the indicator in radians.
func (b *Button) Rotation() float64 {
	return b.rotation
}

func (b *Button) cellArray() []*Cell {
	if b.source == nil {
		return nil
	}
	n := b.source.NumberOfCells(b)
	cells := make([]*Cell, 0, n)
	for i := 0; i < n; i++ {
		cells = append(cells, b.source.CellForIndex(b, i))
	}
	return cells
}

func (b *Button) insertCell(c *Cell) {
	c.setColor(b.iconColor)
	c.Circle.Radius = b.radius * 2 * b.cellRadiusRatio
	c.Circle.Center = b.center
	c.Offset = 0
	c.Opacity = 0
}

// Open fetches fresh cells from the data source and starts opening.
func (b *Button) Open() {
	b.delegate.DidStartOpenAnimation(b)
	b.rotation = openRotation
	for _, c := range b.cells {
		c.attached = false
	}
	b.cells = b.cellArray()
	for _, c := range b.cells {
		b.insertCell(c)
	}
	b.orch.Open(b.cells)
}

// Close starts closing the cells of the last Open.
func (b *Button) Close() {
	b.rotation = 0
	b.releaseCell()
	b.orch.Close(b.cells)
	b.delegate.DidStartCloseAnimation(b)
}

// Toggle opens a closed button and closes an open one.
func (b *Button) Toggle() {
	if b.IsClosed() {
		b.Open()
		return
	}
	b.Close()
}

func (b *Button) didStop() {
	if b.IsClosed() {
		b.cells = nil
		b.delegate.DidEndCloseAnimation(b)
	}
}

// Tick advances the animation by dt seconds.
func (b *Button) Tick(dt float64) {
	b.orch.Tick(dt)
}

// CellAt returns the interactive cell whose bounds contain p, or nil. Cells
// are only hit while the button is open.
func (b *Button) CellAt(p geom.Point) *Cell {
	if b.IsClosed() {
		return nil
	}
	for _, c := range b.cells {
		if c.attached && c.Interactive && c.Circle.BoundsContain(p) {
			return c
		}
	}
	return nil
}

// Press starts a touch at p.
func (b *Button) Press(p geom.Point) {
	if c := b.CellAt(p); c != nil {
		b.pressed = c
		c.press()
		return
	}
	if b.base.Contains(p) {
		b.touching = true
	}
}

// Release ends a touch at p. Releasing on the pressed cell selects it;
// releasing a touch that began on the base toggles the button.
func (b *Button) Release(p geom.Point) {
	if c := b.pressed; c != nil {
		b.releaseCell()
		if b.CellAt(p) == c {
			b.delegate.DidSelectItem(b, c.Index)
		}
		return
	}
	if b.touching {
		b.touching = false
		b.Toggle()
	}
}

// Cancel abandons the current touch without any action.
func (b *Button) Cancel() {
	b.touching = false
	b.releaseCell()
}

func (b *Button) releaseCell() {
	if b.pressed != nil {
		b.pressed.release()
		b.pressed = nil
	}
}

// Touching reports whether the base is being held down.
func (b *Button) Touching() bool {
	return b.touching
}

// Color returns the fill of the button face, lightened while touching.
func (b *Button) Color() color.RGBA {
	if b.touching && b.Responsible {
		return whiten(b.buttonColor, 0.5)
	}
	return b.buttonColor
}

func (b *Button) SetButtonColor(c color.RGBA) {
	b.buttonColor = c
}

// IconColor returns the shared fill of the liquid and the cells.
func (b *Button) IconColor() color.RGBA {
	return b.iconColor
}

// SetIconColor recolors the liquid layer and every cell.
func (b *Button) SetIconColor(c color.RGBA) {
	b.iconColor = c
	b.orch.SetColor(c)
	for _, cell := range b.cells {
		cell.setColor(c)
	}
}

func (b *Button) SetStyle(s Style) {
	b.orch.SetStyle(s)
}

func (b *Button) Style() Style {
	return b.orch.Style()
}

// Center and Radius describe the button face.
func (b *Button) Center() geom.Point { return b.center }
func (b *Button) Radius() float64 { return b.radius }

// Shape returns the liquid outline of the current frame.
func (b *Button) Shape() *geom.Path {
	return b.orch.Shape()
}

// ShapeVisible reports whether the liquid layer is shown.
func (b *Button) ShapeVisible() bool {
	return b.orch.Visible()
}

// Cells returns the cells currently attached to the button.
func (b *Button) Cells() []*Cell {
	out := make([]*Cell, 0, len(b.cells))
	for _, c := range b.cells {
		if c.attached {
			out = append(out, c)
		}
	}
	return out
}

// State returns the animation state.
func (b *Button) State() anim.State {
	return b.orch.State()
}
