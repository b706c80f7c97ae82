package shapes

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned box. X, Y is the lower-left corner in a Y-up world.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Top() float64   { return r.Y + r.H }

// Overlaps reports whether r and o share interior area. Touching edges do not
// count, so a body resting flush on a floor is not overlapping it.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Merge returns the smallest rect containing both r and o.
func (r Rect) Merge(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.Right(), o.Right())
	maxY := math.Max(r.Top(), o.Top())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Validate rejects non-finite coordinates and negative sizes.
func (r Rect) Validate() error {
	for _, v := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite rect %v", ErrMalformedShape, r)
		}
	}
	if r.W < 0 || r.H < 0 {
		return fmt.Errorf("%w: negative size %gx%g", ErrMalformedShape, r.W, r.H)
	}
	return nil
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}
