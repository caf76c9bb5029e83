// Package game hosts the liquid button in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/liquid-button/internal/config"
	"github.com/iburimskiy/liquid-button/internal/fab"
	"github.com/iburimskiy/liquid-button/internal/geom"
	"github.com/iburimskiy/liquid-button/internal/prefs"
	"github.com/iburimskiy/liquid-button/internal/render"
	"github.com/iburimskiy/liquid-button/internal/sound"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	shadowColor     = color.NRGBA{A: 70}
	glyphColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var styleKeys = []struct {
	key   ebiten.Key
	style fab.Style
}{
	{ebiten.Key1, fab.Up},
	{ebiten.Key2, fab.Right},
	{ebiten.Key3, fab.Left},
	{ebiten.Key4, fab.Down},
}

// cellSource hands the same cells out on every open so selection indices stay
// stable.
type cellSource struct {
	cells  []*fab.Cell
	colors []color.RGBA
}

func newCellSource(n int) *cellSource {
	s := &cellSource{colors: palette(n, 200)}
	for i := 0; i < n; i++ {
		s.cells = append(s.cells, fab.NewCell())
	}
	return s
}

func (s *cellSource) NumberOfCells(*fab.Button) int { return len(s.cells) }

func (s *cellSource) CellForIndex(_ *fab.Button, i int) *fab.Cell { return s.cells[i] }

// Game implements ebiten.Game and is the button's delegate.
type Game struct {
	cfg     *config.Config
	button  *fab.Button
	source  *cellSource
	spinner *render.Spinner
	chime   *sound.Chime
	store   *prefs.Store
	prefs   prefs.Preferences

	time     float64
	selected int
	lastErr  error

	// dialogs, replaceable so the logic runs without a desktop
	pickColor func(current color.RGBA) (color.RGBA, error)
	pickFile  func() (string, error)
}

// New builds the demo from cfg and applies stored preferences on top.
func New(cfg *config.Config, store *prefs.Store, chime *sound.Chime) (*Game, error) {
	if store == nil {
		store = prefs.NewStore(nil)
	}
	if chime == nil {
		chime = &sound.Chime{}
	}
	g := &Game{
		store:     store,
		chime:     chime,
		selected:  -1,
		spinner:   render.NewSpinner(ebiten.DefaultTPS, config.SpinnerFrequency, config.SpinnerDamping),
		pickColor: zenityColor,
		pickFile:  zenityFile,
	}
	p, err := store.Load()
	if err != nil {
		log.Printf("[Game] Warning: %v (using config values)", err)
	}
	g.prefs = p
	if err := g.apply(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// apply rebuilds the button from cfg with the preferences layered on top.
func (g *Game) apply(cfg *config.Config) error {
	merged := *cfg
	if g.prefs.Style != "" {
		merged.Style = g.prefs.Style
	}
	if g.prefs.IconColor != "" {
		merged.IconColor = g.prefs.IconColor
	}
	if err := merged.Validate(); err != nil {
		log.Printf("[Game] Warning: stored preferences rejected: %v", err)
		merged = *cfg
	}
	opts, err := merged.ButtonOptions()
	if err != nil {
		return err
	}
	center := geom.Pt(config.WindowWidth/2, config.WindowHeight/2)
	b, err := fab.NewButton(center, merged.ButtonRadius, opts)
	if err != nil {
		return fmt.Errorf("failed to create button: %w", err)
	}
	g.source = newCellSource(merged.CellCount)
	b.SetDataSource(g.source)
	b.SetDelegate(g)
	g.button = b
	g.cfg = &merged
	g.chime.Enabled = merged.Sound && !g.prefs.Muted
	return nil
}

func (g *Game) savePrefs() {
	if err := g.store.Save(g.prefs); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
}

func (g *Game) DidSelectItem(_ *fab.Button, index int) {
	g.selected = index
	log.Printf("[Game] selected cell %d", index)
	g.button.Close()
}

func (g *Game) DidStartOpenAnimation(*fab.Button) {
	g.chime.PlayOpen()
}

func (g *Game) DidStartCloseAnimation(*fab.Button) {
	g.chime.PlayClose()
}

func (g *Game) DidEndCloseAnimation(*fab.Button) {
	log.Printf("[Game] close animation ended")
}

func (g *Game) setStyle(s fab.Style) {
	g.button.SetStyle(s)
	g.prefs.Style = s.String()
	g.savePrefs()
}

func (g *Game) setIconColor(c color.RGBA) {
	g.button.SetIconColor(c)
	g.prefs.IconColor = config.FormatColor(c)
	g.savePrefs()
}

func (g *Game) toggleSound() {
	g.prefs.Muted = !g.prefs.Muted
	g.chime.Enabled = g.cfg.Sound && !g.prefs.Muted
	g.savePrefs()
}

func (g *Game) chooseIconColor() error {
	c, err := g.pickColor(g.button.IconColor())
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	g.setIconColor(c)
	return nil
}

func (g *Game) openConfig() error {
	path, err := g.pickFile()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	log.Printf("[Game] loaded config %s", path)
	return g.apply(cfg)
}

func zenityColor(current color.RGBA) (color.RGBA, error) {
	c, err := zenity.SelectColor(zenity.Title("Icon color"), zenity.Color(current))
	if err != nil {
		return color.RGBA{}, err
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}, nil
}

func zenityFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open Button Config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
}

func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	cursor := geom.Pt(float64(mx), float64(my))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.button.Press(cursor)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.button.Release(cursor)
	}

	for _, sk := range styleKeys {
		if inpututil.IsKeyJustPressed(sk.key) {
			g.setStyle(sk.style)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.button.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.lastErr = g.chooseIconColor()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.lastErr = g.openConfig()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.toggleSound()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.time += dt
	g.button.Tick(dt)
	g.spinner.Update(g.button.Rotation())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	b := g.button
	if b.ShapeVisible() {
		if g.cfg.EnableShadow {
			render.FillShadow(screen, b.Shape(), geom.Pt(0, 3), shadowColor)
		}
		render.FillPath(screen, b.Shape(), b.IconColor())
	}
	g.drawCells(screen)
	g.drawFace(screen)
	g.drawStatus(screen)
}

func (g *Game) drawCells(screen *ebiten.Image) {
	for _, c := range g.button.Cells() {
		x, y := float32(c.Circle.Center.X), float32(c.Circle.Center.Y)
		if c.Shadow {
			vector.DrawFilledCircle(screen, x, y+3, float32(c.Circle.Radius), shadowColor, true)
		}
		if c.Pressed() || !g.button.ShapeVisible() {
			vector.DrawFilledCircle(screen, x, y, float32(c.Circle.Radius), c.Circle.Color, true)
		}
		dot := g.source.colors[c.Index%len(g.source.colors)]
		vector.DrawFilledCircle(screen, x, y, float32(c.Circle.Radius*0.45), withAlpha(dot, c.Opacity), true)
	}
}

func (g *Game) drawFace(screen *ebiten.Image) {
	b := g.button
	cx, cy := b.Center().X, b.Center().Y
	r := b.Radius()
	if g.cfg.EnableShadow {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy+3), float32(r), shadowColor, true)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), b.Color(), true)

	// The ring brightens with the chime.
	level := clamp01(g.chime.Level(config.ChimeLevelLen) * 4)
	ring := withAlpha(shade(glyphColor, 0.2), 0.15+0.6*level)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r-2), 2, ring, true)

	// Chevron indicator, rotated by the spring.
	angle := g.spinner.Angle()
	arm := r * 0.4
	tip := rotate(geom.Pt(0, -arm*0.5), angle)
	left := rotate(geom.Pt(-arm, arm*0.4), angle)
	right := rotate(geom.Pt(arm, arm*0.4), angle)
	for _, end := range []geom.Point{left, right} {
		vector.StrokeLine(screen,
			float32(cx+tip.X), float32(cy+tip.Y),
			float32(cx+end.X), float32(cy+end.Y),
			3, glyphColor, true)
	}
}

func rotate(p geom.Point, angle float64) geom.Point {
	s, c := math.Sincos(angle)
	return geom.Pt(p.X*c-p.Y*s, p.X*s+p.Y*c)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("%s | style %s | Space/click: toggle, 1-4: style, C: color, O: config, M: sound",
		g.button.State(), g.button.Style())
	if g.prefs.Muted || !g.cfg.Sound {
		status += " | muted"
	}
	if g.selected >= 0 {
		status += fmt.Sprintf(" | selected %d", g.selected)
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
