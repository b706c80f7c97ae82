package broadphase

import (
	"iter"
	"slices"

	"github.com/automoto/jumpcore/shapes"
)

// Scan is a brute-force set. Query yields every member in insertion order,
// which suits small populations without a natural grid.
type Scan struct {
	items []*shapes.Shape
	index map[*shapes.Shape]int
}

func NewScan() *Scan {
	return &Scan{index: make(map[*shapes.Shape]int)}
}

func (sc *Scan) Insert(s *shapes.Shape) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, ok := sc.index[s]; ok {
		return nil
	}
	sc.index[s] = len(sc.items)
	sc.items = append(sc.items, s)
	return nil
}

func (sc *Scan) Remove(s *shapes.Shape) {
	i, ok := sc.index[s]
	if !ok {
		return
	}
	sc.items = slices.Delete(sc.items, i, i+1)
	delete(sc.index, s)
	for j := i; j < len(sc.items); j++ {
		sc.index[sc.items[j]] = j
	}
}

// Query ignores the area and yields the whole set.
func (sc *Scan) Query(shapes.Rect) iter.Seq[*shapes.Shape] {
	return sc.All()
}

func (sc *Scan) All() iter.Seq[*shapes.Shape] {
	return func(yield func(*shapes.Shape) bool) {
		for _, s := range sc.items {
			if !yield(s) {
				return
			}
		}
	}
}

func (sc *Scan) Contains(s *shapes.Shape) bool {
	_, ok := sc.index[s]
	return ok
}

// Refresh does nothing; members are never bucketed by position.
func (sc *Scan) Refresh() {}

func (sc *Scan) Len() int { return len(sc.items) }
