// Package sim assembles the ECS world for a level and drives it at a fixed
// step.
package sim

import (
	"fmt"
	"io/fs"

	"github.com/automoto/jumpcore/components"
	cfg "github.com/automoto/jumpcore/config"
	"github.com/automoto/jumpcore/shared/leveldata"
	"github.com/automoto/jumpcore/systems"
	"github.com/automoto/jumpcore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulation is one level running in its own donburi world.
type Simulation struct {
	ecs      *ecs.ECS
	level    *leveldata.LevelData
	subSteps int
	ticks    int
}

// New builds the world for a level using the current config values.
func New(level *leveldata.LevelData) (*Simulation, error) {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	// Obstacles move first so bodies resolve against where they are now.
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)

	if _, err := factory.CreateLevel(e, level); err != nil {
		return nil, err
	}

	return &Simulation{
		ecs:      e,
		level:    level,
		subSteps: cfg.Physics.Steps(),
	}, nil
}

// Load reads a TMX level from fsys and builds its simulation.
func Load(fsys fs.FS, tmxPath string) (*Simulation, error) {
	level, err := leveldata.LoadLevel(fsys, tmxPath)
	if err != nil {
		return nil, err
	}
	s, err := New(level)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", tmxPath, err)
	}
	return s, nil
}

// Tick runs one tick: every system, once per sub-step.
func (s *Simulation) Tick() {
	for i := 0; i < s.subSteps; i++ {
		s.ecs.Update()
	}
	s.ticks++
}

// Ticks returns how many ticks have run.
func (s *Simulation) Ticks() int { return s.ticks }

func (s *Simulation) ECS() *ecs.ECS { return s.ecs }

func (s *Simulation) Level() *leveldata.LevelData { return s.level }

// Snapshot records every body.
func (s *Simulation) Snapshot() *systems.Snapshot {
	return systems.TakeSnapshot(s.ecs)
}

// Bodies returns every body in spawn order.
func (s *Simulation) Bodies() []*components.BodyData {
	var out []*components.BodyData
	components.Body.Each(s.ecs.World, func(e *donburi.Entry) {
		out = append(out, components.Body.Get(e))
	})
	sortByID(out)
	return out
}

// Body returns the body with the given ID.
func (s *Simulation) Body(id int) (*components.BodyData, bool) {
	for _, b := range s.Bodies() {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Space returns the world's indices.
func (s *Simulation) Space() *components.SpaceData {
	entry, ok := components.Space.First(s.ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
