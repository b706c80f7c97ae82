package broadphase

import (
	"fmt"
	"iter"
	"math"

	"github.com/automoto/jumpcore/shapes"
	"github.com/automoto/jumpcore/shared/gamemath"
)

// TileGrid stores at most one tile per cell of edge Size. Tiles are owned by
// the cell containing their lower-left corner.
type TileGrid struct {
	Cols, Rows int
	Size       float64

	cells [][]*shapes.Shape // [row][col], row 0 at the bottom
	count int
}

func NewTileGrid(cols, rows int, size float64) (*TileGrid, error) {
	if cols < 0 || rows < 0 || !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %dx%d cells of %g", ErrBadGrid, cols, rows, size)
	}
	cells := make([][]*shapes.Shape, rows)
	for r := range cells {
		cells[r] = make([]*shapes.Shape, cols)
	}
	return &TileGrid{Cols: cols, Rows: rows, Size: size, cells: cells}, nil
}

// CellOf converts world coordinates to (possibly out of range) cell coordinates.
func (g *TileGrid) CellOf(x, y float64) (col, row int) {
	return int(math.Floor(x / g.Size)), int(math.Floor(y / g.Size))
}

func (g *TileGrid) inBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// At returns the tile in a cell, nil if empty or out of range.
func (g *TileGrid) At(col, row int) *shapes.Shape {
	if !g.inBounds(col, row) {
		return nil
	}
	return g.cells[row][col]
}

// Insert places s in the cell under its lower-left corner, replacing any
// tile already there.
func (g *TileGrid) Insert(s *shapes.Shape) error {
	if err := s.Validate(); err != nil {
		return err
	}
	col, row := g.CellOf(s.X, s.Y)
	if !g.inBounds(col, row) {
		return fmt.Errorf("%w: %s at cell (%d,%d) of %dx%d", ErrOutOfBounds, s, col, row, g.Cols, g.Rows)
	}
	if g.cells[row][col] == nil {
		g.count++
	}
	g.cells[row][col] = s
	return nil
}

// Remove clears the cell under s if it still holds s.
func (g *TileGrid) Remove(s *shapes.Shape) {
	if s == nil {
		return
	}
	col, row := g.CellOf(s.X, s.Y)
	if !g.inBounds(col, row) || g.cells[row][col] != s {
		return
	}
	g.cells[row][col] = nil
	g.count--
}

// Range yields the tiles in the inclusive cell rectangle (c0,r0)-(c1,r1),
// row by row from the bottom. Bounds are clamped to the grid, so ranges off
// the edge fall back to the nearest edge cells.
func (g *TileGrid) Range(c0, r0, c1, r1 int) iter.Seq[*shapes.Shape] {
	if g.Cols == 0 || g.Rows == 0 {
		return empty
	}
	c0, c1 = gamemath.BoundedInt(c0, 0, g.Cols-1), gamemath.BoundedInt(c1, 0, g.Cols-1)
	r0, r1 = gamemath.BoundedInt(r0, 0, g.Rows-1), gamemath.BoundedInt(r1, 0, g.Rows-1)

	return func(yield func(*shapes.Shape) bool) {
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				tile := g.cells[row][col]
				if tile == nil {
					continue
				}
				if !yield(tile) {
					return
				}
			}
		}
	}
}

// Query yields the tiles of every cell the area covers.
func (g *TileGrid) Query(area shapes.Rect) iter.Seq[*shapes.Shape] {
	if g.Cols == 0 || g.Rows == 0 {
		return empty
	}
	c0 := clampCell(math.Floor(area.X/g.Size), g.Cols)
	r0 := clampCell(math.Floor(area.Y/g.Size), g.Rows)
	c1 := clampCell(math.Ceil(area.Right()/g.Size)-1, g.Cols)
	r1 := clampCell(math.Ceil(area.Top()/g.Size)-1, g.Rows)
	return g.Range(c0, r0, max(c0, c1), max(r0, r1))
}

// Refresh does nothing: tiles do not move.
func (g *TileGrid) Refresh() {}

func (g *TileGrid) Len() int { return g.count }

// clampCell clamps in float space so huge coordinates never overflow int.
func clampCell(v float64, n int) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(gamemath.Bounded(v, 0, float64(n-1)))
}
