package game

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/liquid-button/internal/config"
	"github.com/iburimskiy/liquid-button/internal/fab"
	"github.com/iburimskiy/liquid-button/internal/prefs"
)

func newTestGame(t *testing.T, store *prefs.Store) *Game {
	t.Helper()
	g, err := New(config.Default(), store, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.pickColor = func(color.RGBA) (color.RGBA, error) {
		t.Fatal("unexpected color dialog")
		return color.RGBA{}, nil
	}
	g.pickFile = func() (string, error) {
		t.Fatal("unexpected file dialog")
		return "", nil
	}
	return g
}

func TestNewCentersButton(t *testing.T) {
	g := newTestGame(t, nil)
	c := g.button.Center()
	if c.X != config.WindowWidth/2 || c.Y != config.WindowHeight/2 {
		t.Errorf("button at %v", c)
	}
	if g.button.Radius() != 28 || !g.button.IsClosed() {
		t.Errorf("radius=%v closed=%v", g.button.Radius(), g.button.IsClosed())
	}
	if len(g.source.cells) != 4 || len(g.source.colors) != 4 {
		t.Errorf("source has %d cells and %d colors", len(g.source.cells), len(g.source.colors))
	}
	if w, h := g.Layout(100, 100); w != config.WindowWidth || h != config.WindowHeight {
		t.Errorf("Layout = %dx%d", w, h)
	}
}

func TestStoredPreferencesApplied(t *testing.T) {
	store := prefs.NewStore(nil)
	if err := store.Save(prefs.Preferences{Style: "down", IconColor: "#ff0000", Muted: true}); err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, store)
	if g.button.Style() != fab.Down {
		t.Errorf("style = %v, want down", g.button.Style())
	}
	if got := g.button.IconColor(); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("icon color = %v", got)
	}
	if g.chime.Enabled {
		t.Error("muted preference left the chime enabled")
	}
}

func TestRejectedPreferencesFallBack(t *testing.T) {
	store := prefs.NewStore(nil)
	if err := store.Save(prefs.Preferences{Style: "sideways"}); err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, store)
	if g.button.Style() != fab.Up {
		t.Errorf("style = %v, want the config default", g.button.Style())
	}
}

func TestSetStylePersists(t *testing.T) {
	store := prefs.NewStore(nil)
	g := newTestGame(t, store)
	g.setStyle(fab.Left)
	if g.button.Style() != fab.Left {
		t.Errorf("button style = %v", g.button.Style())
	}
	if store.Current().Style != "left" {
		t.Errorf("stored style = %q", store.Current().Style)
	}
}

func TestToggleSound(t *testing.T) {
	store := prefs.NewStore(nil)
	g := newTestGame(t, store)
	if !g.chime.Enabled {
		t.Fatal("chime disabled by default")
	}
	g.toggleSound()
	if g.chime.Enabled || !store.Current().Muted {
		t.Fatalf("after mute: enabled=%v muted=%v", g.chime.Enabled, store.Current().Muted)
	}
	g.toggleSound()
	if !g.chime.Enabled {
		t.Fatal("unmute did not enable the chime")
	}
}

func TestChooseIconColor(t *testing.T) {
	store := prefs.NewStore(nil)
	g := newTestGame(t, store)
	green := color.RGBA{G: 255, A: 255}
	g.pickColor = func(color.RGBA) (color.RGBA, error) { return green, nil }
	if err := g.chooseIconColor(); err != nil {
		t.Fatalf("chooseIconColor: %v", err)
	}
	if g.button.IconColor() != green || store.Current().IconColor != "#00ff00" {
		t.Fatalf("icon=%v stored=%q", g.button.IconColor(), store.Current().IconColor)
	}

	g.pickColor = func(color.RGBA) (color.RGBA, error) { return color.RGBA{}, zenity.ErrCanceled }
	if err := g.chooseIconColor(); err != nil {
		t.Fatalf("cancel returned %v", err)
	}
	if g.button.IconColor() != green {
		t.Fatal("cancel changed the color")
	}

	boom := errors.New("no display")
	g.pickColor = func(color.RGBA) (color.RGBA, error) { return color.RGBA{}, boom }
	if err := g.chooseIconColor(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestOpenConfig(t *testing.T) {
	g := newTestGame(t, nil)
	path := filepath.Join(t.TempDir(), "button.yaml")
	if err := os.WriteFile(path, []byte("cellCount: 2\nbuttonRadius: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.pickFile = func() (string, error) { return path, nil }
	if err := g.openConfig(); err != nil {
		t.Fatalf("openConfig: %v", err)
	}
	if len(g.source.cells) != 2 || g.button.Radius() != 40 {
		t.Fatalf("cells=%d radius=%v", len(g.source.cells), g.button.Radius())
	}

	g.pickFile = func() (string, error) { return "", zenity.ErrCanceled }
	if err := g.openConfig(); err != nil {
		t.Fatalf("cancel returned %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("viscosity: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.pickFile = func() (string, error) { return bad, nil }
	if err := g.openConfig(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("invalid config err = %v", err)
	}
	if len(g.source.cells) != 2 {
		t.Fatal("invalid config replaced the button")
	}
}

func TestSelectingCellCloses(t *testing.T) {
	g := newTestGame(t, nil)
	g.button.Open()
	for i := 0; i < 60; i++ {
		g.button.Tick(1.0 / 60)
	}
	cells := g.button.Cells()
	if len(cells) != 4 || !cells[2].Interactive {
		t.Fatalf("open button has %d cells", len(cells))
	}
	target := cells[2].Circle.Center
	g.button.Press(target)
	g.button.Release(target)
	if g.selected != 2 {
		t.Fatalf("selected = %d, want 2", g.selected)
	}
	if !g.button.IsClosed() {
		t.Fatal("selection did not close the button")
	}
}

func TestPaletteIsDistinctAndOpaque(t *testing.T) {
	colors := palette(5, 200)
	seen := map[color.RGBA]bool{}
	for _, c := range colors {
		if c.A != 255 {
			t.Errorf("color %v not opaque", c)
		}
		seen[c] = true
	}
	if len(seen) != 5 {
		t.Errorf("palette has %d distinct colors, want 5", len(seen))
	}
	if got := withAlpha(color.RGBA{R: 10, A: 255}, 0.5); got.A != 127 && got.A != 128 {
		t.Errorf("withAlpha alpha = %d", got.A)
	}
}

func TestStyleKeysInOrder(t *testing.T) {
	want := []struct {
		key   ebiten.Key
		style fab.Style
	}{
		{ebiten.Key1, fab.Up},
		{ebiten.Key2, fab.Right},
		{ebiten.Key3, fab.Left},
		{ebiten.Key4, fab.Down},
	}
	if len(styleKeys) != len(want) {
		t.Fatalf("got %d style keys, want %d", len(styleKeys), len(want))
	}
	for i, w := range want {
		if styleKeys[i].key != w.key || styleKeys[i].style != w.style {
			t.Errorf("styleKeys[%d] = %v, want %v", i, styleKeys[i], w)
		}
	}
}
