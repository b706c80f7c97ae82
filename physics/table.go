package physics

import (
	"slices"

	"github.com/automoto/jumpcore/shapes"
)

// Strategy resolves a mover hitting one obstacle over delta seconds. It may
// only mutate the mover.
type Strategy func(obstacle *shapes.Shape, mover *Body, delta float64)

// Table maps obstacle kinds to the strategy that resolves them.
type Table struct {
	strategies map[shapes.Kind]Strategy
}

func NewTable() *Table {
	return &Table{strategies: make(map[shapes.Kind]Strategy)}
}

// DefaultTable is what every new body starts with. Mover is deliberately
// absent: bodies do not push each other unless a game maps it.
func DefaultTable() *Table {
	t := NewTable()
	t.Set(shapes.Plain, Square)
	t.Set(shapes.Platform, Platform)
	t.Set(shapes.Slope, Slope)
	t.Set(shapes.None, Noop)
	return t
}

func (t *Table) Set(kind shapes.Kind, s Strategy) {
	if s == nil {
		t.Delete(kind)
		return
	}
	t.strategies[kind] = s
}

func (t *Table) Delete(kind shapes.Kind) {
	delete(t.strategies, kind)
}

// Lookup returns the strategy for kind. A nil table has no entries.
func (t *Table) Lookup(kind shapes.Kind) (Strategy, bool) {
	if t == nil {
		return nil, false
	}
	s, ok := t.strategies[kind]
	return s, ok
}

func (t *Table) Clone() *Table {
	c := NewTable()
	for k, s := range t.strategies {
		c.strategies[k] = s
	}
	return c
}

// Kinds lists the mapped kinds in ascending order.
func (t *Table) Kinds() []shapes.Kind {
	if t == nil {
		return nil
	}
	kinds := make([]shapes.Kind, 0, len(t.strategies))
	for k := range t.strategies {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
