package physics

import (
	"math"

	"github.com/automoto/jumpcore/shapes"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Body is a mobile rectangle: a shape it owns, a velocity in units per second
// and the strategy table it resolves obstacles with.
type Body struct {
	*shapes.Shape
	Velocity Vector
	Table    *Table

	// Report receives unmapped-kind diagnostics. Nil logs them.
	Report Reporter

	// OnGround is set by Step when a fall was stopped this tick.
	OnGround bool
}

// NewBody creates a mover-kind body using the default strategy table.
func NewBody(x, y, w, h float64) (*Body, error) {
	s, err := shapes.NewShape(shapes.Mover, x, y, w, h)
	if err != nil {
		return nil, err
	}
	return &Body{Shape: s, Table: DefaultTable()}, nil
}

// Integrate advances the body by its velocity. Call only after every
// collision for the tick has been resolved.
func (b *Body) Integrate(delta float64) {
	b.X += b.Velocity.X * delta
	b.Y += b.Velocity.Y * delta
}

// SweptArea is the region covered between the current rect and the rect
// displaced by the full-frame velocity.
func (b *Body) SweptArea(delta float64) shapes.Rect {
	return b.Rect.Merge(b.Rect.Translate(b.Velocity.X*delta, b.Velocity.Y*delta))
}

func (b *Body) finite() bool {
	for _, v := range [...]float64{b.X, b.Y, b.Velocity.X, b.Velocity.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
