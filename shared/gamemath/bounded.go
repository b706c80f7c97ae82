package gamemath

import "math"

// Bounded returns x limited to [lower, upper].
func Bounded(x, lower, upper float64) float64 {
	return math.Min(math.Max(x, lower), upper)
}

// BoundedInt returns x limited to [lower, upper].
func BoundedInt(x, lower, upper int) int {
	return min(max(x, lower), upper)
}

// AbsMin returns whichever of a or b has the smaller magnitude, keeping its sign.
func AbsMin(a, b float64) float64 {
	if math.Abs(a) <= math.Abs(b) {
		return a
	}
	return b
}

// Sign returns -1, 0 or 1. NaN maps to 0.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
