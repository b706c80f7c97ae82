// Package shapes holds the rectangle model shared by the collision code:
// plain boxes, one-sided platforms and linear slopes, all dispatched by Kind.
package shapes

import (
	"errors"
	"fmt"
	"math"
)

var ErrMalformedShape = errors.New("malformed shape")

// Line is the surface f(x) = M*(x - box.X) + B + box.Y of a slope.
type Line struct {
	M, B float64
}

// Shape is a rectangle tagged with a Kind. Surface is only read for Slope.
type Shape struct {
	Rect
	Kind    Kind
	Surface Line
}

// NewShape builds a shape of any kind, rejecting malformed rects.
func NewShape(kind Kind, x, y, w, h float64) (*Shape, error) {
	s := &Shape{Rect: Rect{X: x, Y: y, W: w, H: h}, Kind: kind}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func NewBox(x, y, w, h float64) (*Shape, error) {
	return NewShape(Plain, x, y, w, h)
}

func NewPlatform(x, y, w, h float64) (*Shape, error) {
	return NewShape(Platform, x, y, w, h)
}

// NewSlope builds a ramp whose top surface follows m*(x - x0) + b + y0.
func NewSlope(x, y, w, h, m, b float64) (*Shape, error) {
	s := &Shape{
		Rect:    Rect{X: x, Y: y, W: w, H: h},
		Kind:    Slope,
		Surface: Line{M: m, B: b},
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// HeightAt evaluates the slope surface at world x. It is defined everywhere;
// outside [X, X+W] the value is an extrapolation.
func (s *Shape) HeightAt(x float64) float64 {
	return s.Surface.M*(x-s.X) + s.Surface.B + s.Y
}

// Bounds returns the shape's current rectangle.
func (s *Shape) Bounds() Rect {
	return s.Rect
}

func (s *Shape) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil shape", ErrMalformedShape)
	}
	if err := s.Rect.Validate(); err != nil {
		return err
	}
	if s.Kind == Slope {
		if math.IsNaN(s.Surface.M) || math.IsInf(s.Surface.M, 0) ||
			math.IsNaN(s.Surface.B) || math.IsInf(s.Surface.B, 0) {
			return fmt.Errorf("%w: non-finite slope %+v", ErrMalformedShape, s.Surface)
		}
	}
	return nil
}

func (s *Shape) String() string {
	if s.Kind == Slope {
		return fmt.Sprintf("%s%s m=%g b=%g", s.Kind, s.Rect, s.Surface.M, s.Surface.B)
	}
	return s.Kind.String() + s.Rect.String()
}
