package gamemath

import "math"

// Lerp moves from x toward y by proportion t.
func Lerp(x, y, t float64) float64 {
	return x + (y-x)*t
}

// UnitSin is a sine with period 4 and amplitude 1, so UnitSin(1) == 1.
// Used to ease speeds up over a fixed ramp time.
func UnitSin(x float64) float64 {
	return math.Sin(math.Pi / 2 * x)
}
