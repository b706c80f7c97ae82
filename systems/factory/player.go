package factory

import (
	"fmt"

	"github.com/automoto/jumpcore/archetypes"
	"github.com/automoto/jumpcore/components"
	cfg "github.com/automoto/jumpcore/config"
	"github.com/automoto/jumpcore/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a body at rest that only falls and slides.
func CreatePlayer(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	return createBody(ecs, archetypes.Player, "player", x, y, 0)
}

// CreateMover spawns a body walking at drive units per second that turns
// around at walls.
func CreateMover(ecs *ecs.ECS, x, y, drive float64) (*donburi.Entry, error) {
	return createBody(ecs, archetypes.Mover, "mover", x, y, drive)
}

type spawner interface {
	Spawn(*ecs.ECS, ...donburi.IComponentType) *donburi.Entry
}

func createBody(ecs *ecs.ECS, a spawner, desc string, x, y, drive float64) (*donburi.Entry, error) {
	body, err := physics.NewBody(x, y, cfg.Mover.Width, cfg.Mover.Height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", desc, err)
	}

	e := a.Spawn(ecs)
	components.Body.SetValue(e, components.BodyData{
		Body: body,
		ID:   countBodies(ecs),
		Desc: desc,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		Drive:          drive,
		RampTime:       cfg.Mover.RampTime,
		MaxSpeed:       cfg.Mover.MaxSpeed,
		Gravity:        cfg.Physics.Gravity,
		GroundFriction: cfg.Physics.GroundFriction,
		AirFriction:    cfg.Physics.AirFriction,
		MaxFallSpeed:   cfg.Physics.MaxFallSpeed,
	})
	return e, nil
}

// countBodies hands out IDs in spawn order. The new entry is already counted.
func countBodies(ecs *ecs.ECS) int {
	n := 0
	components.Body.Each(ecs.World, func(*donburi.Entry) { n++ })
	return n - 1
}
