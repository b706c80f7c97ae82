package systems

import (
	"github.com/automoto/jumpcore/components"
	cfg "github.com/automoto/jumpcore/config"
	"github.com/automoto/jumpcore/physics"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions steps every body against the level indices: query, queue,
// resolve, then integrate. Bodies never collide with each other.
func UpdateCollisions(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(spaceEntry)
	sources := components.Space.Get(spaceEntry).Sources()

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		wantX := body.Velocity.X

		queue, err := physics.Step(body.Body, clock.Delta, sources...)
		if err != nil {
			log.WithFields(log.Fields{
				"body": body.ID,
				"desc": body.Desc,
			}).WithError(err).Error("Step failed, body left in place")
			return
		}
		body.Contacts = queue.Len()
		body.Skipped = queue.Skipped()

		if cfg.Debug.DumpQueues && queue.Len() > 0 {
			log.WithFields(log.Fields{
				"step":     clock.Step,
				"body":     body.ID,
				"contacts": queue.Len(),
				"skipped":  queue.Skipped(),
				"position": body.Rect.String(),
			}).Debug("Resolved queue")
		}

		// Drive-led bodies turn around when a wall stops them.
		if e.HasComponent(components.Physics) {
			ph := components.Physics.Get(e)
			if ph.Drive != 0 && wantX != 0 && body.Velocity.X == 0 {
				ph.Drive = -ph.Drive
				ph.DriveTime = 0
			}
		}
	})

	clock.Step++
}
