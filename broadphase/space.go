package broadphase

import (
	"fmt"
	"iter"
	"math"

	"github.com/automoto/jumpcore/shapes"
	"github.com/solarlune/resolv"
)

// Space indexes shapes that move, such as bodies and kinematic platforms, in
// a resolv cell space. Each shape is mirrored by a resolv.Object whose Data
// points back at it; Refresh copies the shapes' current rects across.
type Space struct {
	space      *resolv.Space
	cell       float64
	cols, rows int

	objects map[*shapes.Shape]*resolv.Object
	order   []*shapes.Shape
}

// NewSpace covers width x height world units with square cells.
func NewSpace(width, height, cellSize int) (*Space, error) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("%w: space %dx%d cell %d", ErrBadGrid, width, height, cellSize)
	}
	return &Space{
		space:   resolv.NewSpace(width, height, cellSize, cellSize),
		cell:    float64(cellSize),
		cols:    width/cellSize + 1,
		rows:    height/cellSize + 1,
		objects: make(map[*shapes.Shape]*resolv.Object),
	}, nil
}

func (sp *Space) Insert(s *shapes.Shape) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, ok := sp.objects[s]; ok {
		return nil
	}
	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, s.Kind.String())
	obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
	obj.Data = s
	sp.space.Add(obj)
	sp.objects[s] = obj
	sp.order = append(sp.order, s)
	return nil
}

func (sp *Space) Remove(s *shapes.Shape) {
	obj, ok := sp.objects[s]
	if !ok {
		return
	}
	sp.space.Remove(obj)
	delete(sp.objects, s)
	for i, o := range sp.order {
		if o == s {
			sp.order = append(sp.order[:i], sp.order[i+1:]...)
			break
		}
	}
}

// Refresh re-buckets every shape at its current position.
func (sp *Space) Refresh() {
	for _, s := range sp.order {
		obj := sp.objects[s]
		if obj.X == s.X && obj.Y == s.Y && obj.W == s.W && obj.H == s.H {
			continue
		}
		obj.X, obj.Y = s.X, s.Y
		if obj.W != s.W || obj.H != s.H {
			obj.W, obj.H = s.W, s.H
			obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
		}
		obj.Update()
	}
}

// Query yields the shapes that overlap the area, as of the last Refresh.
// Cells are walked row by row so the order is stable.
//
// resolv files an object up to cell floor((Y+H-1)/cell), so a shape reaching
// less than one unit into a cell is not listed there. The walk starts one
// unit early on each axis to pick those up.
func (sp *Space) Query(area shapes.Rect) iter.Seq[*shapes.Shape] {
	cx := clampCell(math.Floor((area.X-1)/sp.cell), sp.cols)
	cy := clampCell(math.Floor((area.Y-1)/sp.cell), sp.rows)
	ex := clampCell(math.Floor(area.Right()/sp.cell), sp.cols)
	ey := clampCell(math.Floor(area.Top()/sp.cell), sp.rows)

	return func(yield func(*shapes.Shape) bool) {
		seen := make(map[*resolv.Object]struct{})
		for y := cy; y <= ey; y++ {
			for x := cx; x <= ex; x++ {
				cell := sp.space.Cell(x, y)
				if cell == nil {
					continue
				}
				for _, obj := range cell.Objects {
					if _, ok := seen[obj]; ok {
						continue
					}
					seen[obj] = struct{}{}
					s, ok := obj.Data.(*shapes.Shape)
					if !ok || !area.Overlaps(s.Rect) {
						continue
					}
					if !yield(s) {
						return
					}
				}
			}
		}
	}
}

func (sp *Space) Len() int { return len(sp.order) }

// Objects exposes the underlying resolv objects, mainly for debugging.
func (sp *Space) Objects() []*resolv.Object {
	return sp.space.Objects()
}
