package factory

import (
	"fmt"

	"github.com/automoto/jumpcore/archetypes"
	"github.com/automoto/jumpcore/components"
	"github.com/automoto/jumpcore/shapes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, errNoSpace
	}
	s, err := shapes.NewBox(x, y, w, h)
	if err != nil {
		return nil, fmt.Errorf("wall: %w", err)
	}
	if err := components.Space.Get(spaceEntry).Bounds.Insert(s); err != nil {
		return nil, fmt.Errorf("wall: %w", err)
	}

	wall := archetypes.Wall.Spawn(ecs)
	components.Shape.SetValue(wall, components.ShapeData{Shape: s, Desc: "wall"})
	return wall, nil
}

// CreateBoundaryWalls closes the left and right edges of a width x height
// level with walls one tile thick, extending a level height above the top.
func CreateBoundaryWalls(ecs *ecs.ECS, width, height, thickness float64) error {
	if _, err := CreateWall(ecs, -thickness, 0, thickness, 2*height); err != nil {
		return err
	}
	_, err := CreateWall(ecs, width, 0, thickness, 2*height)
	return err
}
