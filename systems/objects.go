package systems

import (
	"math"

	"github.com/automoto/jumpcore/components"
	"github.com/automoto/jumpcore/shapes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// riderTolerance is how far a body's feet may sit from a platform top and
// still ride it.
const riderTolerance = 0.01

// UpdateObjects advances tweened obstacles, carries bodies standing on them,
// and refreshes the kinematic index.
func UpdateObjects(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	delta := components.Clock.Get(spaceEntry).Delta
	space := components.Space.Get(spaceEntry)

	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		obstacle := components.Shape.Get(e)

		offset, _, _ := tw.Update(float32(delta))
		dy := tw.BaseY + float64(offset) - obstacle.Y
		if dy == 0 {
			return
		}

		carryRiders(ecs, obstacle.Shape, dy)
		obstacle.Y += dy
	})

	space.Kinematic.Refresh()
}

// carryRiders moves bodies standing on s to its new top. A rising platform
// also picks up falling bodies whose feet it passed this step.
func carryRiders(ecs *ecs.ECS, s *shapes.Shape, dy float64) {
	oldTop := s.Top()
	newTop := oldTop + dy

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.X >= s.Right() || body.Right() <= s.X || body.Velocity.Y > 0 {
			return
		}

		lo, hi := oldTop-riderTolerance, oldTop+riderTolerance
		if dy > 0 {
			hi = math.Max(hi, newTop)
		} else if !body.OnGround {
			return
		}
		if body.Y < lo || body.Y > hi {
			return
		}
		body.Y = newTop
	})
}
