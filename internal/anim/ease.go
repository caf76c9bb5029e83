// Package anim drives the staggered open/close timeline of the button from
// an externally supplied frame clock.
package anim

// Ease is the timing curve applied to every progress ratio. It is the
// quadratic ease-out -t(t-2) on [0,1), 0 below and 1 from 1 upwards.
// Visual timing depends on this exact curve.
func Ease(t float64) float64 {
	if t >= 1 {
		return 1
	}
	if t < 0 {
		return 0
	}
	return -t * (t - 2)
}
