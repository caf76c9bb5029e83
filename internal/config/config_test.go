package config

import (
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/liquid-button/internal/fab"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.CellCount != 4 || cfg.Style != "up" {
		t.Errorf("defaults: cells=%d style=%q", cfg.CellCount, cfg.Style)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("cellCount: 6\nstyle: right\nbigEngine:\n  angleThresh: 0.6\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.CellCount != 6 || cfg.Style != "right" {
		t.Errorf("cells=%d style=%q, want 6 and right", cfg.CellCount, cfg.Style)
	}
	if cfg.BigEngine.AngleThresh != 0.6 {
		t.Errorf("bigEngine.angleThresh = %v, want 0.6", cfg.BigEngine.AngleThresh)
	}
	// Keys absent from the file keep their defaults.
	if cfg.OpenDuration != 0.3 || cfg.BigEngine.RadiusThreshRatio != 1.0 || !cfg.Sound {
		t.Errorf("defaults lost: open=%v ratio=%v sound=%v", cfg.OpenDuration, cfg.BigEngine.RadiusThreshRatio, cfg.Sound)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero radius", "buttonRadius: 0"},
		{"negative cell ratio", "cellRadiusRatio: -1"},
		{"zero open duration", "openDuration: 0"},
		{"zero close duration", "closeDuration: 0"},
		{"negative delay", "openDelay: -0.1"},
		{"viscosity above one", "viscosity: 1.5"},
		{"zero viscosity", "viscosity: 0"},
		{"negative cells", "cellCount: -2"},
		{"zero angle", "smallEngine:\n  angleThresh: 0"},
		{"zero radius ratio", "bigEngine:\n  radiusThreshRatio: 0"},
		{"unknown style", "style: diagonal"},
		{"bad color", "iconColor: blue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalid", tt.yaml, err)
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("cellCount: [")); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "button.yaml")
	if err := os.WriteFile(path, []byte("cellCount: 2\nsound: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellCount != 2 || cfg.Sound {
		t.Errorf("cells=%d sound=%v, want 2 and false", cfg.CellCount, cfg.Sound)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load of a missing file succeeded")
	}
}

func TestButtonOptions(t *testing.T) {
	cfg := Default()
	cfg.Style = "left"
	opts, err := cfg.ButtonOptions()
	if err != nil {
		t.Fatalf("ButtonOptions: %v", err)
	}
	if math.Abs(opts.Liquid.Small.Radius-28*0.73) > 1e-9 || opts.Liquid.Small.Angle != 0.45 {
		t.Errorf("small thresholds = %+v", opts.Liquid.Small)
	}
	if opts.Liquid.Big.Radius != 28 || opts.Liquid.Big.Angle != 0.55 {
		t.Errorf("big thresholds = %+v", opts.Liquid.Big)
	}
	if opts.Liquid.Style != fab.Left || !opts.Liquid.EnableShadow {
		t.Errorf("style=%v shadow=%v", opts.Liquid.Style, opts.Liquid.EnableShadow)
	}
	want := color.RGBA{R: 0x52, G: 0x70, B: 0xeb, A: 255}
	if opts.IconColor != want || opts.ButtonColor != want {
		t.Errorf("colors = %v %v, want %v", opts.IconColor, opts.ButtonColor, want)
	}

	cfg.Viscosity = 0
	if _, err := cfg.ButtonOptions(); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid config produced options, err = %v", err)
	}
}

func TestColorRoundTrip(t *testing.T) {
	c, err := ParseColor("#5270EB")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if got := FormatColor(c); got != "#5270eb" {
		t.Errorf("FormatColor = %q, want #5270eb", got)
	}
	if _, err := ParseColor("5270EB"); err == nil {
		t.Error("color without # accepted")
	}
}
