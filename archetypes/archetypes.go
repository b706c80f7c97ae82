package archetypes

import (
	"github.com/automoto/jumpcore/components"
	"github.com/automoto/jumpcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Tile = newArchetype(
		tags.Tile,
		components.Shape,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Shape,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Shape,
		components.Tween,
	)
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Physics,
	)
	Mover = newArchetype(
		tags.Mover,
		components.Body,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
		components.Clock,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return e.World.Entry(e.Create(
		ecs.LayerDefault,
		append(a.components, cs...)...,
	))
}
