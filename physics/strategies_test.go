package physics

import (
	"testing"

	"github.com/automoto/jumpcore/shapes"
)

func newTestBody(t *testing.T, x, y, w, h, vx, vy float64) *Body {
	t.Helper()
	b, err := NewBody(x, y, w, h)
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	b.Velocity = Vector{X: vx, Y: vy}
	return b
}

// mustShape unwraps a shape constructor in test fixtures.
func mustShape(s *shapes.Shape, err error) *shapes.Shape {
	if err != nil {
		panic(err)
	}
	return s
}

func TestStrategiesIgnoreDistantObstacles(t *testing.T) {
	box := mustShape(shapes.NewBox(0, 0, 16, 16))
	platform := mustShape(shapes.NewPlatform(0, 0, 16, 16))
	slope := mustShape(shapes.NewSlope(0, 0, 16, 16, 1, 0))

	strategies := map[string]struct {
		fn Strategy
		o  *shapes.Shape
	}{
		"square":   {Square, box},
		"platform": {Platform, platform},
		"slope":    {Slope, slope},
	}
	velocities := []Vector{
		{0, 0}, {-100, -100}, {100, 100}, {0, -50}, {50, 0}, {-30, 80},
	}

	for name, tc := range strategies {
		for _, v := range velocities {
			b := newTestBody(t, 40, 40, 10, 10, v.X, v.Y)
			tc.fn(tc.o, b, 0.1)
			if b.X != 40 || b.Y != 40 || b.Velocity != v {
				t.Errorf("%s with v=%+v moved a non-overlapping mover to %v v=%+v", name, v, b.Rect, b.Velocity)
			}
		}
	}
}

func TestSquareLandsOnFloor(t *testing.T) {
	floor := mustShape(shapes.NewBox(0, 0, 20, 10))
	b := newTestBody(t, 5, 5, 10, 10, 0, -50)

	Square(floor, b, 0.1)

	if b.Y != 10 {
		t.Errorf("Expected y == 10, got %v", b.Y)
	}
	if b.Velocity.Y != 0 {
		t.Errorf("Expected vy == 0, got %v", b.Velocity.Y)
	}
	if b.X != 5 {
		t.Errorf("x should be unchanged, got %v", b.X)
	}
}

func TestSquareWalls(t *testing.T) {
	t.Run("moving right", func(t *testing.T) {
		wall := mustShape(shapes.NewBox(12, 0, 10, 10))
		b := newTestBody(t, 0, 0, 10, 10, 100, 0)
		Square(wall, b, 0.1)
		if b.X != 2 || b.Velocity.X != 0 {
			t.Errorf("Expected x=2 vx=0, got x=%v vx=%v", b.X, b.Velocity.X)
		}
		if b.Y != 0 {
			t.Errorf("y should be unchanged, got %v", b.Y)
		}
	})

	t.Run("moving left", func(t *testing.T) {
		wall := mustShape(shapes.NewBox(0, 0, 10, 10))
		b := newTestBody(t, 12, 0, 10, 10, -100, 0)
		Square(wall, b, 0.1)
		if b.X != 10 || b.Velocity.X != 0 {
			t.Errorf("Expected x=10 vx=0, got x=%v vx=%v", b.X, b.Velocity.X)
		}
	})

	t.Run("ceiling", func(t *testing.T) {
		ceiling := mustShape(shapes.NewBox(0, 20, 40, 10))
		b := newTestBody(t, 5, 5, 10, 10, 0, 100)
		Square(ceiling, b, 0.1)
		if b.Y != 10 || b.Velocity.Y != 0 {
			t.Errorf("Expected y=10 vy=0, got y=%v vy=%v", b.Y, b.Velocity.Y)
		}
	})
}

func TestSquareSlidesAlongFloor(t *testing.T) {
	floor := mustShape(shapes.NewBox(0, 0, 40, 20))
	b := newTestBody(t, 0, 20, 10, 10, 100, -100)

	Square(floor, b, 0.1)

	if b.Y != 20 || b.Velocity.Y != 0 {
		t.Errorf("fall should stop on the floor, got y=%v vy=%v", b.Y, b.Velocity.Y)
	}
	if b.X != 0 || b.Velocity.X != 100 {
		t.Errorf("horizontal motion should be kept, got x=%v vx=%v", b.X, b.Velocity.X)
	}
}

func TestSquareZeroDisplacementAxisIsLeftAlone(t *testing.T) {
	// Already overlapping with no horizontal motion: x must not snap.
	box := mustShape(shapes.NewBox(0, 0, 20, 20))
	b := newTestBody(t, 5, 18, 10, 10, 0, -100)

	Square(box, b, 0.1)

	if b.X != 5 {
		t.Errorf("x should not be corrected without dx, got %v", b.X)
	}
	if b.Y != 20 {
		t.Errorf("Expected y=20, got %v", b.Y)
	}
}

func TestSquareAxesUseUncorrectedRect(t *testing.T) {
	// Moving down-right into the corner of a block. The y test uses the
	// original x, so both axes correct even though the x correction alone
	// would have cleared the block.
	block := mustShape(shapes.NewBox(10, 0, 10, 10))
	b := newTestBody(t, 2, 2, 10, 10, 20, -20)

	Square(block, b, 0.1)

	if b.X != 0 || b.Velocity.X != 0 {
		t.Errorf("Expected x=0 vx=0, got x=%v vx=%v", b.X, b.Velocity.X)
	}
	if b.Y != 10 || b.Velocity.Y != 0 {
		t.Errorf("Expected y=10 vy=0, got y=%v vy=%v", b.Y, b.Velocity.Y)
	}
}

func TestPlatform(t *testing.T) {
	tests := []struct {
		name         string
		x, y, vx, vy float64
		wantY        float64
		stopped      bool
	}{
		{"falling from above lands", 4, 10, 0, -50, 8, true},
		{"resting exactly on top", 4, 8, 0, -50, 8, true},
		{"falling diagonally lands", 4, 10, 20, -50, 8, true},
		{"jumping up from below passes", 4, -12, 0, 50, -12, false},
		{"falling from inside passes", 4, 4, 0, -50, 4, false},
		{"walking in from the side passes", -12, 0, 50, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := mustShape(shapes.NewPlatform(0, 0, 32, 8))
			b := newTestBody(t, tt.x, tt.y, 10, 10, tt.vx, tt.vy)

			Platform(platform, b, 0.1)

			if b.Y != tt.wantY {
				t.Errorf("Expected y=%v, got %v", tt.wantY, b.Y)
			}
			if stopped := b.Velocity.Y == 0 && tt.vy != 0; stopped != tt.stopped {
				t.Errorf("stopped = %v, want %v (vy=%v)", stopped, tt.stopped, b.Velocity.Y)
			}
			if b.X != tt.x || b.Velocity.X != tt.vx {
				t.Errorf("platform must never touch x, got x=%v vx=%v", b.X, b.Velocity.X)
			}
		})
	}
}

func TestSlope(t *testing.T) {
	ramp := func() *shapes.Shape { return mustShape(shapes.NewSlope(0, 0, 16, 16, 1, 0)) }

	t.Run("falling onto the surface", func(t *testing.T) {
		b := newTestBody(t, 4, 10, 4, 4, 0, -50)
		Slope(ramp(), b, 0.1)
		if b.Y != 8 || b.Velocity.Y != 0 {
			t.Errorf("Expected y=8 vy=0, got y=%v vy=%v", b.Y, b.Velocity.Y)
		}
	})

	t.Run("raised to the higher footprint sample", func(t *testing.T) {
		// Footprint [6, 14] sinks below f(6)=6 and f(14)=14.
		b := newTestBody(t, 6, 3, 8, 8, 0, -20)
		Slope(ramp(), b, 0.1)
		if b.Y != 14 {
			t.Errorf("Expected y=14, got %v", b.Y)
		}
	})

	t.Run("footprint clipped to the ramp", func(t *testing.T) {
		// Mover hangs off the right edge; right sample is f(16)=16.
		b := newTestBody(t, 12, 14, 10, 10, 0, -40)
		Slope(ramp(), b, 0.1)
		if b.Y != 16 {
			t.Errorf("Expected y=16, got %v", b.Y)
		}
	})

	t.Run("above the surface inside the box", func(t *testing.T) {
		b := newTestBody(t, 4, 20, 4, 4, 0, -50)
		Slope(ramp(), b, 0.1)
		if b.Y != 20 || b.Velocity.Y != -50 {
			t.Errorf("should not correct above the surface, got y=%v vy=%v", b.Y, b.Velocity.Y)
		}
	})

	t.Run("moving against the slope direction", func(t *testing.T) {
		b := newTestBody(t, 4, 9, 4, 4, -50, 0)
		Slope(ramp(), b, 0.1)
		if b.Y != 8 || b.Velocity.Y != 0 {
			t.Errorf("Expected y=8 vy=0, got y=%v vy=%v", b.Y, b.Velocity.Y)
		}
		if b.Velocity.X != -50 || b.X != 4 {
			t.Error("slope must never touch x")
		}
	})

	t.Run("moving with the slope direction", func(t *testing.T) {
		b := newTestBody(t, 4, 9, 4, 4, 50, 0)
		Slope(ramp(), b, 0.1)
		if b.Y != 9 || b.Velocity.Y != 0 {
			t.Errorf("should not correct, got y=%v vy=%v", b.Y, b.Velocity.Y)
		}
	})

	t.Run("no horizontal motion skips the ratio test", func(t *testing.T) {
		b := newTestBody(t, 4, 9, 4, 4, 0, 0)
		Slope(ramp(), b, 0.1)
		if b.Y != 9 {
			t.Errorf("Expected y=9, got %v", b.Y)
		}
	})
}

func TestNoop(t *testing.T) {
	o := mustShape(shapes.NewShape(shapes.None, 0, 0, 20, 20))
	b := newTestBody(t, 5, 5, 5, 5, 10, -10)
	Noop(o, b, 1)
	if b.X != 5 || b.Y != 5 || b.Velocity != (Vector{10, -10}) {
		t.Error("Noop should not modify the mover")
	}
}
