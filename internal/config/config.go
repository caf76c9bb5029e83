// Package config holds the window constants and the YAML configuration of
// the liquid button.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/liquid-button/internal/anim"
	"github.com/iburimskiy/liquid-button/internal/fab"
	"github.com/iburimskiy/liquid-button/internal/liquid"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Audio feedback
	SampleRate    = 44100
	ChimeRingSize = 8192
	ChimeLevelLen = 1024

	// Rotation indicator spring
	SpinnerFrequency = 7.0
	SpinnerDamping   = 0.6
)

var ErrInvalid = errors.New("invalid config")

// EngineConfig sets the thresholds of one liquid engine. RadiusThreshRatio is
// relative to the button radius.
type EngineConfig struct {
	RadiusThreshRatio float64 `yaml:"radiusThreshRatio"`
	AngleThresh       float64 `yaml:"angleThresh"`
}

// Config is the full setup of the button and the demo host.
//
// Loaded from YAML over Default(), so a file only needs the keys it changes.
type Config struct {
	ButtonRadius    float64 `yaml:"buttonRadius"`
	CellRadiusRatio float64 `yaml:"cellRadiusRatio"`
	CellCount       int     `yaml:"cellCount"`
	Style           string  `yaml:"style"`

	// Seconds
	OpenDuration  float64 `yaml:"openDuration"`
	CloseDuration float64 `yaml:"closeDuration"`
	OpenDelay     float64 `yaml:"openDelay"`

	Viscosity   float64      `yaml:"viscosity"`
	SmallEngine EngineConfig `yaml:"smallEngine"`
	BigEngine   EngineConfig `yaml:"bigEngine"`

	// Hex colors such as "#5270EB"
	ButtonColor string `yaml:"buttonColor"`
	IconColor   string `yaml:"iconColor"`

	EnableShadow bool `yaml:"enableShadow"`
	Sound        bool `yaml:"sound"`
}

// Default returns the stock button.
func Default() *Config {
	return &Config{
		ButtonRadius:    28,
		CellRadiusRatio: 0.38,
		CellCount:       4,
		Style:           "up",
		OpenDuration:    0.3,
		CloseDuration:   0.2,
		OpenDelay:       0.02,
		Viscosity:       0.65,
		SmallEngine:     EngineConfig{RadiusThreshRatio: 0.73, AngleThresh: 0.45},
		BigEngine:       EngineConfig{RadiusThreshRatio: 1.0, AngleThresh: 0.55},
		ButtonColor:     "#5270EB",
		IconColor:       "#5270EB",
		EnableShadow:    true,
		Sound:           true,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate rejects values the button cannot run with. Nothing is clamped.
func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"buttonRadius", c.ButtonRadius},
		{"cellRadiusRatio", c.CellRadiusRatio},
		{"openDuration", c.OpenDuration},
		{"closeDuration", c.CloseDuration},
		{"smallEngine.radiusThreshRatio", c.SmallEngine.RadiusThreshRatio},
		{"smallEngine.angleThresh", c.SmallEngine.AngleThresh},
		{"bigEngine.radiusThreshRatio", c.BigEngine.RadiusThreshRatio},
		{"bigEngine.angleThresh", c.BigEngine.AngleThresh},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}
	if !(c.OpenDelay >= 0) {
		return fmt.Errorf("%w: openDelay must not be negative, got %v", ErrInvalid, c.OpenDelay)
	}
	if !(c.Viscosity > 0) || c.Viscosity > 1 {
		return fmt.Errorf("%w: viscosity must be in (0,1], got %v", ErrInvalid, c.Viscosity)
	}
	if c.CellCount < 0 {
		return fmt.Errorf("%w: cellCount must not be negative, got %d", ErrInvalid, c.CellCount)
	}
	if _, err := fab.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := ParseColor(c.ButtonColor); err != nil {
		return fmt.Errorf("%w: buttonColor: %v", ErrInvalid, err)
	}
	if _, err := ParseColor(c.IconColor); err != nil {
		return fmt.Errorf("%w: iconColor: %v", ErrInvalid, err)
	}
	return nil
}

// ParseColor decodes a "#rrggbb" hex color into an opaque RGBA.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatColor encodes c as "#rrggbb".
func FormatColor(c color.RGBA) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}

// ButtonOptions converts a validated config into button options.
func (c *Config) ButtonOptions() (fab.Options, error) {
	if err := c.Validate(); err != nil {
		return fab.Options{}, err
	}
	style, _ := fab.ParseStyle(c.Style)
	buttonColor, _ := ParseColor(c.ButtonColor)
	iconColor, _ := ParseColor(c.IconColor)
	return fab.Options{
		Liquid: fab.LiquidConfig{
			Timing: anim.Timing{
				OpenDuration:  c.OpenDuration,
				CloseDuration: c.CloseDuration,
				OpenDelay:     c.OpenDelay,
			},
			Viscosity: c.Viscosity,
			Small: liquid.Thresholds{
				Radius: c.ButtonRadius * c.SmallEngine.RadiusThreshRatio,
				Angle:  c.SmallEngine.AngleThresh,
			},
			Big: liquid.Thresholds{
				Radius: c.ButtonRadius * c.BigEngine.RadiusThreshRatio,
				Angle:  c.BigEngine.AngleThresh,
			},
			Style:        style,
			EnableShadow: c.EnableShadow,
		},
		CellRadiusRatio: c.CellRadiusRatio,
		ButtonColor:     buttonColor,
		IconColor:       iconColor,
	}, nil
}
