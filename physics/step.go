// Package physics resolves mobile bodies against obstacles one tick at a time:
// candidates are queued from broad-phase sources, each is dispatched to the
// strategy mapped for its kind, and only then does the body move.
package physics

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/automoto/jumpcore/shapes"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidDelta = errors.New("invalid delta")
	ErrInvalidBody  = errors.New("invalid body")
)

// Source yields obstacles that may overlap an area. Every broadphase index
// satisfies it.
type Source interface {
	Query(area shapes.Rect) iter.Seq[*shapes.Shape]
}

// Diagnostic describes a collision that was skipped because the body's table
// had no strategy for the obstacle's kind.
type Diagnostic struct {
	Body     *Body
	Obstacle *shapes.Shape
	Kind     shapes.Kind
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("no strategy for %s obstacle %s", d.Kind, d.Obstacle)
}

// Reporter receives diagnostics.
type Reporter func(Diagnostic)

// LogDiagnostic is the default Reporter.
func LogDiagnostic(d Diagnostic) {
	fields := log.Fields{
		"kind":     d.Kind.String(),
		"obstacle": d.Obstacle.String(),
	}
	if d.Body != nil && d.Body.Shape != nil {
		fields["body"] = d.Body.Shape.String()
	}
	log.WithFields(fields).Warn("Unchecked collision, skipping")
}

// Resolve looks up the obstacle's kind in the body's table and runs the
// strategy. It returns false when no strategy is mapped.
func Resolve(b *Body, o *shapes.Shape, delta float64) bool {
	strategy, ok := b.Table.Lookup(o.Kind)
	if !ok {
		report := b.Report
		if report == nil {
			report = LogDiagnostic
		}
		report(Diagnostic{Body: b, Obstacle: o, Kind: o.Kind})
		return false
	}
	strategy(o, b, delta)
	return true
}

// Step runs one tick for b: queue the obstacles from every source that may
// touch the body's swept area, resolve them in order, then integrate. The
// drained queue is returned for inspection; it is not reused.
func Step(b *Body, delta float64, sources ...Source) (*Queue, error) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDelta, delta)
	}
	if b == nil || b.Shape == nil {
		return nil, fmt.Errorf("%w: missing shape", ErrInvalidBody)
	}
	if !b.finite() {
		return nil, fmt.Errorf("%w: non-finite state %s v=%+v", ErrInvalidBody, b.Shape, b.Velocity)
	}

	q := NewQueue()
	q.Collect(b, b.SweptArea(delta), sources...)

	falling := b.Velocity.Y < 0
	q.Resolve(b, delta)
	b.OnGround = falling && b.Velocity.Y == 0

	b.Integrate(delta)
	return q, nil
}
