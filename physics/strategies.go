package physics

import (
	"math"

	"github.com/automoto/jumpcore/shapes"
	"github.com/automoto/jumpcore/shared/gamemath"
)

// sweep holds the test rectangles every strategy derives from the mover's
// pre-resolution rect.
type sweep struct {
	dx, dy float64
	xy     shapes.Rect // displaced on both axes
	x      shapes.Rect // displaced on x only
	y      shapes.Rect // displaced on y only
}

func newSweep(m *Body, delta float64) sweep {
	dx := m.Velocity.X * delta
	dy := m.Velocity.Y * delta
	return sweep{
		dx: dx,
		dy: dy,
		xy: m.Rect.Translate(dx, dy),
		x:  m.Rect.Translate(dx, 0),
		y:  m.Rect.Translate(0, dy),
	}
}

// Square stops the mover flush against a solid box. Both axis tests use the
// uncorrected rect, x is handled first. An axis with no displacement is left
// alone so bodies can slide along surfaces.
func Square(o *shapes.Shape, m *Body, delta float64) {
	s := newSweep(m, delta)
	if !s.xy.Overlaps(o.Rect) {
		return
	}

	if s.x.Overlaps(o.Rect) {
		switch {
		case s.dx < 0:
			m.X = o.Right()
			m.Velocity.X = 0
		case s.dx > 0:
			m.X = o.X - m.W
			m.Velocity.X = 0
		}
	}

	if s.y.Overlaps(o.Rect) {
		switch {
		case s.dy < 0:
			m.Y = o.Top()
			m.Velocity.Y = 0
		case s.dy > 0:
			m.Y = o.Y - m.H
			m.Velocity.Y = 0
		}
	}
}

// Platform lands a falling mover on top of a one-sided platform. It never
// blocks from below or the sides and never touches x.
func Platform(o *shapes.Shape, m *Body, delta float64) {
	s := newSweep(m, delta)
	if s.xy.Overlaps(o.Rect) && s.y.Overlaps(o.Rect) && s.dy < 0 && m.Y >= o.Top() {
		m.Y = o.Top()
		m.Velocity.Y = 0
	}
}

// Slope keeps the mover from sinking under a ramp's surface. The mover is
// raised to the higher surface sample across its footprint.
func Slope(o *shapes.Shape, m *Body, delta float64) {
	s := newSweep(m, delta)
	if !s.xy.Overlaps(o.Rect) {
		return
	}

	left := math.Max(o.X, m.X)
	right := math.Min(o.Right(), m.Right())
	fl, fr := o.HeightAt(left), o.HeightAt(right)

	switch {
	case s.xy.Y < fl || s.xy.Y < fr:
		// falling or sinking into the surface
	case runningUpRamp(s, o.Surface.M):
		// running into the ramp face
	default:
		return
	}

	m.Y = math.Max(fl, fr)
	m.Velocity.Y = 0
}

func runningUpRamp(s sweep, slope float64) bool {
	if s.dx == 0 {
		return false
	}
	return gamemath.Sign(s.dx) != gamemath.Sign(slope) &&
		math.Abs(s.dy/s.dx) < math.Abs(slope)
}

// Noop ignores the obstacle.
func Noop(*shapes.Shape, *Body, float64) {}
