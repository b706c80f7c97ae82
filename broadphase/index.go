// Package broadphase narrows the obstacles a body has to be tested against.
// Scan returns everything, TileGrid looks tiles up by cell, and Space keeps
// moving populations in a resolv cell space.
package broadphase

import (
	"errors"
	"fmt"
	"iter"

	"github.com/automoto/jumpcore/shapes"
)

var (
	ErrOutOfBounds = errors.New("shape outside grid")
	ErrBadGrid     = errors.New("bad grid dimensions")
)

// Index holds a population of shapes and answers proximity queries.
// Query never mutates the index.
type Index interface {
	Insert(s *shapes.Shape) error
	Remove(s *shapes.Shape)
	Query(area shapes.Rect) iter.Seq[*shapes.Shape]
	Refresh()
	Len() int
}

var (
	_ Index = (*Scan)(nil)
	_ Index = (*TileGrid)(nil)
	_ Index = (*Space)(nil)
)

// Build returns a scan index holding the given shapes.
func Build(list ...*shapes.Shape) (*Scan, error) {
	idx := NewScan()
	if err := insertAll(idx, list); err != nil {
		return nil, err
	}
	return idx, nil
}

// BuildGrid returns a cols x rows tile grid with cells of edge size.
func BuildGrid(cols, rows int, size float64, list ...*shapes.Shape) (*TileGrid, error) {
	g, err := NewTileGrid(cols, rows, size)
	if err != nil {
		return nil, err
	}
	if err := insertAll(g, list); err != nil {
		return nil, err
	}
	return g, nil
}

// BuildSpace returns a resolv-backed index covering width x height world units.
func BuildSpace(width, height, cellSize int, list ...*shapes.Shape) (*Space, error) {
	sp, err := NewSpace(width, height, cellSize)
	if err != nil {
		return nil, err
	}
	if err := insertAll(sp, list); err != nil {
		return nil, err
	}
	return sp, nil
}

func insertAll(idx Index, list []*shapes.Shape) error {
	for i, s := range list {
		if err := idx.Insert(s); err != nil {
			return fmt.Errorf("insert shape %d: %w", i, err)
		}
	}
	return nil
}

func empty(func(*shapes.Shape) bool) {}
