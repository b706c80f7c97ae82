package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/jumpcore/archetypes"
	"github.com/automoto/jumpcore/broadphase"
	"github.com/automoto/jumpcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errNoSpace = errors.New("no space entity, call CreateSpace first")

// CreateSpace spawns the world's indices: a tile grid of cols x rows cells, a
// resolv space for kinematic obstacles over the same area, and a scan index
// for edge walls. delta is the step length in seconds.
func CreateSpace(ecs *ecs.ECS, cols, rows int, cellSize, delta float64) (*donburi.Entry, error) {
	grid, err := broadphase.NewTileGrid(cols, rows, cellSize)
	if err != nil {
		return nil, fmt.Errorf("tile grid: %w", err)
	}
	cell := int(cellSize)
	kinematic, err := broadphase.NewSpace(cols*cell, rows*cell, cell)
	if err != nil {
		return nil, fmt.Errorf("kinematic space: %w", err)
	}

	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Tiles:     grid,
		Kinematic: kinematic,
		Bounds:    broadphase.NewScan(),
	})
	components.Clock.SetValue(space, components.ClockData{Delta: delta})
	return space, nil
}
