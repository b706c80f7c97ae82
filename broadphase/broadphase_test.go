package broadphase

import (
	"errors"
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/automoto/jumpcore/shapes"
)

func collect(seq iter.Seq[*shapes.Shape]) []*shapes.Shape {
	var out []*shapes.Shape
	for s := range seq {
		out = append(out, s)
	}
	return out
}

func box(t *testing.T, x, y, w, h float64) *shapes.Shape {
	t.Helper()
	s, err := shapes.NewBox(x, y, w, h)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// fullGrid fills every cell of an n x n grid of 16-unit tiles.
func fullGrid(t *testing.T, n int) (*TileGrid, [][]*shapes.Shape) {
	t.Helper()
	g, err := NewTileGrid(n, n, 16)
	if err != nil {
		t.Fatal(err)
	}
	tiles := make([][]*shapes.Shape, n)
	for row := 0; row < n; row++ {
		tiles[row] = make([]*shapes.Shape, n)
		for col := 0; col < n; col++ {
			tiles[row][col] = box(t, float64(col*16), float64(row*16), 16, 16)
			if err := g.Insert(tiles[row][col]); err != nil {
				t.Fatal(err)
			}
		}
	}
	return g, tiles
}

func TestTileGridSingleCell(t *testing.T) {
	g, tiles := fullGrid(t, 8)

	got := collect(g.Query(shapes.Rect{X: 32, Y: 32, W: 16, H: 16}))
	if len(got) != 1 || got[0] != tiles[2][2] {
		t.Errorf("Expected exactly tile (2,2), got %v", got)
	}

	got = collect(g.Query(shapes.Rect{X: 35, Y: 36, W: 4, H: 4}))
	if len(got) != 1 || got[0] != tiles[2][2] {
		t.Errorf("Expected exactly tile (2,2) for an inner body, got %v", got)
	}
}

func TestTileGridSpanningCells(t *testing.T) {
	g, tiles := fullGrid(t, 8)

	got := collect(g.Query(shapes.Rect{X: 40, Y: 40, W: 16, H: 16}))
	want := []*shapes.Shape{tiles[2][2], tiles[2][3], tiles[3][2], tiles[3][3]}
	if !slices.Equal(got, want) {
		t.Errorf("Expected cells (2,2)-(3,3) row by row, got %v", got)
	}
}

func TestTileGridEmptyCellsAreSkipped(t *testing.T) {
	g, err := NewTileGrid(8, 8, 16)
	if err != nil {
		t.Fatal(err)
	}
	only := box(t, 48, 32, 16, 16)
	if err := g.Insert(only); err != nil {
		t.Fatal(err)
	}
	got := collect(g.Query(shapes.Rect{X: 40, Y: 40, W: 16, H: 16}))
	if len(got) != 1 || got[0] != only {
		t.Errorf("Expected only the occupied cell, got %v", got)
	}
	if g.Len() != 1 {
		t.Errorf("Expected Len 1, got %d", g.Len())
	}
}

func TestTileGridOutOfRangeQueries(t *testing.T) {
	g, tiles := fullGrid(t, 4)

	areas := []shapes.Rect{
		{X: -100, Y: -100, W: 10, H: 10},
		{X: 1000, Y: 1000, W: 10, H: 10},
		{X: -1e300, Y: 1e300, W: 10, H: 10},
		{X: -20, Y: 20, W: 200, H: 8},
	}
	for _, a := range areas {
		seq := g.Query(a)
		if seq == nil {
			t.Fatalf("query %v returned nil", a)
		}
		for s := range seq {
			if s == nil {
				t.Errorf("query %v yielded a nil tile", a)
			}
		}
	}

	// Off the bottom-left corner clamps to the corner cell.
	got := collect(g.Query(shapes.Rect{X: -100, Y: -100, W: 10, H: 10}))
	if len(got) != 1 || got[0] != tiles[0][0] {
		t.Errorf("Expected the corner tile, got %v", got)
	}

	// A wide strip is clamped to the grid width.
	got = collect(g.Query(shapes.Rect{X: -20, Y: 20, W: 200, H: 8}))
	if len(got) != 4 {
		t.Errorf("Expected one full row of 4 tiles, got %d", len(got))
	}

	empty, _ := NewTileGrid(0, 0, 16)
	if got := collect(empty.Query(shapes.Rect{X: 0, Y: 0, W: 10, H: 10})); len(got) != 0 {
		t.Errorf("empty grid returned %v", got)
	}
}

func TestTileGridRange(t *testing.T) {
	g, tiles := fullGrid(t, 4)
	got := collect(g.Range(-5, 3, 1, 99))
	want := []*shapes.Shape{tiles[3][0], tiles[3][1]}
	if !slices.Equal(got, want) {
		t.Errorf("Expected clamped top row prefix, got %v", got)
	}

	// Stopping early is honoured.
	n := 0
	for range g.Range(0, 0, 3, 3) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("Expected to stop after 2, got %d", n)
	}
}

func TestTileGridInsertErrors(t *testing.T) {
	g, err := NewTileGrid(4, 4, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Insert(box(t, 64, 0, 16, 16)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	if err := g.Insert(box(t, -1, 0, 16, 16)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds for negative x, got %v", err)
	}
	bad := &shapes.Shape{Rect: shapes.Rect{X: 0, Y: 0, W: -16, H: 16}}
	if err := g.Insert(bad); !errors.Is(err, shapes.ErrMalformedShape) {
		t.Errorf("Expected ErrMalformedShape, got %v", err)
	}
	if g.Len() != 0 {
		t.Errorf("failed inserts should not count, Len=%d", g.Len())
	}

	for _, dims := range [][3]float64{{-1, 4, 16}, {4, 4, 0}, {4, 4, math.NaN()}} {
		if _, err := NewTileGrid(int(dims[0]), int(dims[1]), dims[2]); !errors.Is(err, ErrBadGrid) {
			t.Errorf("NewTileGrid%v: expected ErrBadGrid, got %v", dims, err)
		}
	}
}

func TestTileGridRemoveOnlyOwnTile(t *testing.T) {
	g, err := NewTileGrid(4, 4, 16)
	if err != nil {
		t.Fatal(err)
	}
	a := box(t, 16, 16, 16, 16)
	b := box(t, 20, 20, 4, 4) // same cell
	if err := g.Insert(a); err != nil {
		t.Fatal(err)
	}

	g.Remove(b)
	if g.At(1, 1) != a {
		t.Error("removing a different shape should not clear the cell")
	}
	g.Remove(nil)
	g.Remove(a)
	if g.At(1, 1) != nil || g.Len() != 0 {
		t.Error("Remove should clear the cell")
	}
	if col, row := g.CellOf(-0.5, 31.9); col != -1 || row != 1 {
		t.Errorf("CellOf floors, got (%d,%d)", col, row)
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	area := shapes.Rect{X: 0, Y: 0, W: 64, H: 64}

	indices := map[string]func() Index{
		"scan": func() Index {
			idx, _ := Build(box(t, 0, 0, 16, 16))
			return idx
		},
		"grid": func() Index {
			idx, _ := BuildGrid(4, 4, 16, box(t, 0, 0, 16, 16))
			return idx
		},
		"space": func() Index {
			idx, _ := BuildSpace(64, 64, 16, box(t, 0, 0, 16, 16))
			return idx
		},
	}

	for name, build := range indices {
		t.Run(name, func(t *testing.T) {
			pristine := build()
			idx := build()

			s := box(t, 32, 32, 16, 16)
			if err := idx.Insert(s); err != nil {
				t.Fatal(err)
			}
			if !slices.Contains(collect(idx.Query(area)), s) {
				t.Fatal("inserted shape not returned by query")
			}
			idx.Remove(s)

			got, want := collect(idx.Query(area)), collect(pristine.Query(area))
			if len(got) != len(want) || idx.Len() != pristine.Len() {
				t.Errorf("after round trip got %v (len %d), want %v (len %d)", got, idx.Len(), want, pristine.Len())
			}
			if slices.Contains(got, s) {
				t.Error("removed shape still returned")
			}
		})
	}
}

func TestScanKeepsInsertionOrder(t *testing.T) {
	a, b, c := box(t, 0, 0, 1, 1), box(t, 5, 5, 1, 1), box(t, 9, 9, 1, 1)
	idx, err := Build(a, b, c, b)
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 3 {
		t.Fatalf("duplicate insert should be ignored, Len=%d", idx.Len())
	}

	// Query ignores the area entirely.
	got := collect(idx.Query(shapes.Rect{X: 1000, Y: 1000}))
	if !slices.Equal(got, []*shapes.Shape{a, b, c}) {
		t.Errorf("Expected [a b c], got %v", got)
	}

	idx.Remove(a)
	idx.Refresh()
	got = collect(idx.Query(shapes.Rect{}))
	if !slices.Equal(got, []*shapes.Shape{b, c}) {
		t.Errorf("Expected [b c], got %v", got)
	}
	if idx.Contains(a) || !idx.Contains(c) {
		t.Error("Contains out of sync after Remove")
	}

	if _, err := Build(box(t, 0, 0, 1, 1), &shapes.Shape{Rect: shapes.Rect{H: -1}}); !errors.Is(err, shapes.ErrMalformedShape) {
		t.Errorf("Expected ErrMalformedShape, got %v", err)
	}
}

func TestSpaceTracksMovingShapes(t *testing.T) {
	mover := box(t, 0, 0, 16, 16)
	far := box(t, 112, 112, 16, 16)
	sp, err := BuildSpace(160, 160, 16, mover, far)
	if err != nil {
		t.Fatal(err)
	}
	if sp.Len() != 2 || len(sp.Objects()) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", sp.Len())
	}

	got := collect(sp.Query(shapes.Rect{X: 2, Y: 2, W: 4, H: 4}))
	if len(got) != 1 || got[0] != mover {
		t.Fatalf("Expected only the near shape, got %v", got)
	}

	mover.X = 64
	sp.Refresh()

	if got := collect(sp.Query(shapes.Rect{X: 2, Y: 2, W: 4, H: 4})); len(got) != 0 {
		t.Errorf("stale position returned after Refresh: %v", got)
	}
	got = collect(sp.Query(shapes.Rect{X: 66, Y: 2, W: 4, H: 4}))
	if len(got) != 1 || got[0] != mover {
		t.Errorf("Expected the moved shape at its new cell, got %v", got)
	}

	// Off-space queries never fail.
	for range sp.Query(shapes.Rect{X: -1e9, Y: 1e12, W: 5, H: 5}) {
	}

	if _, err := NewSpace(0, 10, 16); !errors.Is(err, ErrBadGrid) {
		t.Errorf("Expected ErrBadGrid, got %v", err)
	}
}

func TestSpaceFindsShapesReachingSlightlyIntoACell(t *testing.T) {
	// Top at 48.5 and right edge at 48.5, half a unit into the next cells.
	platform, err := shapes.NewPlatform(16, 40.5, 32.5, 8)
	if err != nil {
		t.Fatal(err)
	}
	sp, err := BuildSpace(96, 128, 16, platform)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		area shapes.Rect
		want int
	}{
		{"rider above the cell edge", shapes.Rect{X: 20, Y: 48.2, W: 12, H: 16}, 1},
		{"sliver past the right edge", shapes.Rect{X: 48.1, Y: 42, W: 8, H: 4}, 1},
		{"touching the top only", shapes.Rect{X: 20, Y: 48.5, W: 12, H: 16}, 0},
		{"same cells, no overlap", shapes.Rect{X: 20, Y: 60, W: 12, H: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(sp.Query(tt.area))
			if len(got) != tt.want {
				t.Errorf("Expected %d shapes, got %d", tt.want, len(got))
			}
		})
	}

	// Tweened positions are never whole; the index must follow them.
	platform.Y = 47.75
	sp.Refresh()
	if got := collect(sp.Query(shapes.Rect{X: 20, Y: 55.5, W: 12, H: 16})); len(got) != 1 {
		t.Errorf("Expected the raised platform, got %d shapes", len(got))
	}
}
