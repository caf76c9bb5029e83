package render

import "github.com/charmbracelet/harmonica"

// Spinner eases the indicator towards the button's rotation target with a
// damped spring.
type Spinner struct {
	spring harmonica.Spring
	angle  float64
	vel    float64
}

func NewSpinner(fps int, frequency, damping float64) *Spinner {
	return &Spinner{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Update steps the spring one frame towards target and returns the angle.
func (s *Spinner) Update(target float64) float64 {
	s.angle, s.vel = s.spring.Update(s.angle, s.vel, target)
	return s.angle
}

func (s *Spinner) Angle() float64 {
	return s.angle
}
