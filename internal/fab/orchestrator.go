package fab

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/liquid-button/internal/anim"
	"github.com/iburimskiy/liquid-button/internal/geom"
	"github.com/iburimskiy/liquid-button/internal/liquid"
)

// LiquidConfig is the setup of the liquid layer under the button.
type LiquidConfig struct {
	Timing    anim.Timing
	Viscosity float64
	// Small joins consecutive cells, Big joins the base to the first cell.
	Small, Big   liquid.Thresholds
	Style        Style
	EnableShadow bool
}

// Orchestrator runs the open and close animations. It owns both engines and,
// for the length of a run, the active cells.
type Orchestrator struct {
	base  *geom.Circle
	small *liquid.Engine
	big   *liquid.Engine
	sched *anim.Scheduler

	style        Style
	enableShadow bool

	cells  []*Cell
	shape  geom.Path
	hidden bool
	onStop func()
}

// NewOrchestrator builds the engines and scheduler for base. Errors come from
// invalid thresholds, viscosity or timing.
func NewOrchestrator(base *geom.Circle, cfg LiquidConfig) (*Orchestrator, error) {
	if base == nil || !(base.Radius > 0) {
		return nil, fmt.Errorf("%w: base circle must have a positive radius", ErrInvalidConfig)
	}
	small, err := liquid.NewEngine(cfg.Small, cfg.Viscosity)
	if err != nil {
		return nil, fmt.Errorf("small engine: %w", err)
	}
	big, err := liquid.NewEngine(cfg.Big, cfg.Viscosity)
	if err != nil {
		return nil, fmt.Errorf("big engine: %w", err)
	}
	sched, err := anim.NewScheduler(cfg.Timing)
	if err != nil {
		return nil, err
	}
	o := &Orchestrator{
		base:         base,
		small:        small,
		big:          big,
		sched:        sched,
		style:        cfg.Style,
		enableShadow: cfg.EnableShadow,
		hidden:       true,
	}
	o.SetColor(base.Color)
	sched.OnFinish(o.finish)
	o.resetShape()
	return o, nil
}

// OnStop registers the single listener told when a run completes. It is not
// called for runs interrupted by Open, Close or Stop.
func (o *Orchestrator) OnStop(fn func()) {
	o.onStop = fn
}

// Open starts the opening run for cells.
func (o *Orchestrator) Open(cells []*Cell) {
	o.begin(anim.Opening, cells)
}

// Close starts the closing run for cells. They stop being interactive at once.
func (o *Orchestrator) Close(cells []*Cell) {
	for _, c := range cells {
		c.Interactive = false
	}
	o.begin(anim.Closing, cells)
}

func (o *Orchestrator) begin(dir anim.State, cells []*Cell) {
	o.Stop()
	o.hidden = false
	for i, c := range cells {
		c.Index = i
		c.Shadow = false
		c.attached = true
		o.cells = append(o.cells, c)
	}
	o.sched.Start(dir, len(o.cells))
}

// Stop interrupts the current run without notifying the listener and returns
// the cells to their owner.
func (o *Orchestrator) Stop() {
	o.sched.Stop()
	o.release()
}

func (o *Orchestrator) release() {
	for _, c := range o.cells {
		c.Shadow = o.enableShadow
	}
	o.cells = nil
	o.small.Clear()
	o.big.Clear()
}

// Tick advances the animation by dt seconds and rebuilds the outline.
func (o *Orchestrator) Tick(dt float64) {
	if !o.sched.Tick(dt) {
		return
	}
	o.compose()
}

func (o *Orchestrator) compose() {
	if n := o.sched.CellCount(); n != len(o.cells) {
		panic(fmt.Sprintf("fab: scheduler runs %d cells but %d are active", n, len(o.cells)))
	}
	opening := o.sched.State() == anim.Opening
	for i, c := range o.cells {
		if opening {
			c.applyOpen(len(o.cells), o.sched.Ratio(i), o.base.Center, o.style)
		} else {
			c.applyClose(o.sched.Ratio(i), o.base.Center, o.style)
		}
	}
	o.link()
}

// link pushes the current circle pairs and draws both engines onto one path.
func (o *Orchestrator) link() {
	o.small.Clear()
	o.big.Clear()
	if len(o.cells) > 0 {
		o.big.Push(o.base, o.cells[0].Circle)
	}
	for i := 1; i < len(o.cells); i++ {
		o.small.Push(o.cells[i-1].Circle, o.cells[i].Circle)
	}
	o.resetShape()
	o.small.Draw(&o.shape)
	o.big.Draw(&o.shape)
}

func (o *Orchestrator) resetShape() {
	o.shape.Reset()
	o.shape.AddCircle(o.base)
}

func (o *Orchestrator) finish(dir anim.State) {
	if dir == anim.Opening {
		// Land every cell on its resting place before handing control back.
		for _, c := range o.cells {
			c.applyOpen(len(o.cells), 1, o.base.Center, o.style)
			c.Interactive = true
		}
		o.link()
	} else {
		o.hidden = true
		for _, c := range o.cells {
			c.attached = false
		}
		o.resetShape()
	}
	o.release()
	if o.onStop != nil {
		o.onStop()
	}
}

// SetColor recolors the base and both engines.
func (o *Orchestrator) SetColor(c color.RGBA) {
	o.base.Color = c
	o.small.SetColor(c)
	o.big.SetColor(c)
}

// SetStyle changes the travel axis. It takes effect on the next frame.
func (o *Orchestrator) SetStyle(s Style) {
	o.style = s
}

// Shape returns the outline of the current frame. It is valid until the next
// Tick.
func (o *Orchestrator) Shape() *geom.Path {
	return &o.shape
}

// Visible reports whether the liquid layer should be drawn. It turns false
// when a close run completes.
func (o *Orchestrator) Visible() bool {
	return !o.hidden
}

func (o *Orchestrator) State() anim.State { return o.sched.State() }
func (o *Orchestrator) Scheduler() *anim.Scheduler { return o.sched }
func (o *Orchestrator) Style() Style { return o.style }
func (o *Orchestrator) Engines() (small, big *liquid.Engine) { return o.small, o.big }

// Cells returns the cells of the current run.
func (o *Orchestrator) Cells() []*Cell {
	return o.cells
}
