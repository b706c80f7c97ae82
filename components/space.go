package components

import (
	"github.com/automoto/jumpcore/broadphase"
	"github.com/automoto/jumpcore/physics"
	"github.com/yohamta/donburi"
)

// SpaceData holds the broad-phase indices bodies are stepped against.
type SpaceData struct {
	Tiles     *broadphase.TileGrid // static level tiles
	Kinematic *broadphase.Space    // moving obstacles
	Bounds    *broadphase.Scan     // level edge walls
}

// Sources returns the indices in the order their candidates are queued.
func (s *SpaceData) Sources() []physics.Source {
	return []physics.Source{s.Tiles, s.Kinematic, s.Bounds}
}

var Space = donburi.NewComponentType[SpaceData]()
