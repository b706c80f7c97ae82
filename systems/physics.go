package systems

import (
	"github.com/automoto/jumpcore/components"
	"github.com/automoto/jumpcore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies friction, drive and gravity to every body ahead of
// collision resolution.
func UpdatePhysics(ecs *ecs.ECS) {
	clock, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	delta := components.Clock.Get(clock).Delta

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		body := components.Body.Get(e)

		friction := physics.AirFriction
		if body.OnGround {
			friction = physics.GroundFriction
		}
		body.Velocity.X *= friction
		if physics.Drive != 0 {
			body.Velocity.X = driveSpeed(physics)
			physics.DriveTime += delta
		}
		if physics.MaxSpeed > 0 {
			body.Velocity.X = gamemath.ClampSpeed(body.Velocity.X, physics.MaxSpeed)
		}

		// Apply gravity
		body.Velocity.Y += physics.Gravity * delta
		body.Velocity.Y = gamemath.ClampFall(body.Velocity.Y, physics.MaxFallSpeed)
	})
}

// driveSpeed eases from rest up to full drive over the ramp time.
func driveSpeed(physics *components.PhysicsData) float64 {
	if physics.RampTime <= 0 {
		return physics.Drive
	}
	held := gamemath.AbsMin(physics.DriveTime, physics.RampTime)
	return gamemath.Lerp(0, physics.Drive, gamemath.UnitSin(held/physics.RampTime))
}
