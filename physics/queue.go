package physics

import (
	"iter"

	"github.com/automoto/jumpcore/shapes"
)

// Queue is the per-body, per-tick list of obstacles to resolve. It keeps
// insertion order and holds each shape at most once.
type Queue struct {
	items   []*shapes.Shape
	seen    map[*shapes.Shape]struct{}
	skipped int
}

func NewQueue() *Queue {
	return &Queue{seen: make(map[*shapes.Shape]struct{})}
}

// Push appends s unless it is nil or already queued.
func (q *Queue) Push(s *shapes.Shape) bool {
	if s == nil {
		return false
	}
	if _, ok := q.seen[s]; ok {
		return false
	}
	q.seen[s] = struct{}{}
	q.items = append(q.items, s)
	return true
}

// Collect pulls every candidate overlapping area from the sources, skipping
// the body's own shape.
func (q *Queue) Collect(b *Body, area shapes.Rect, sources ...Source) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		for s := range src.Query(area) {
			if s == b.Shape {
				continue
			}
			q.Push(s)
		}
	}
}

// Resolve dispatches every queued obstacle against b in insertion order.
// Unmapped kinds are reported and skipped; the rest of the queue still runs.
func (q *Queue) Resolve(b *Body, delta float64) {
	for _, s := range q.items {
		if !Resolve(b, s, delta) {
			q.skipped++
		}
	}
}

func (q *Queue) Len() int { return len(q.items) }

// Skipped counts obstacles that had no strategy.
func (q *Queue) Skipped() int { return q.skipped }

// All iterates the queued shapes in insertion order.
func (q *Queue) All() iter.Seq[*shapes.Shape] {
	return func(yield func(*shapes.Shape) bool) {
		for _, s := range q.items {
			if !yield(s) {
				return
			}
		}
	}
}

// Reset empties the queue so it can be reused for another body or tick.
func (q *Queue) Reset() {
	clear(q.items)
	q.items = q.items[:0]
	clear(q.seen)
	q.skipped = 0
}
