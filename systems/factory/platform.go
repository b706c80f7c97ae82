package factory

import (
	"fmt"

	"github.com/automoto/jumpcore/archetypes"
	"github.com/automoto/jumpcore/components"
	cfg "github.com/automoto/jumpcore/config"
	"github.com/automoto/jumpcore/shapes"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingPlatform spawns a one-sided platform that rises by
// cfg.Platform.Distance and comes back, forever.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h float64) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, errNoSpace
	}
	s, err := shapes.NewPlatform(x, y, w, h)
	if err != nil {
		return nil, fmt.Errorf("floating platform: %w", err)
	}
	if err := components.Space.Get(spaceEntry).Kinematic.Insert(s); err != nil {
		return nil, fmt.Errorf("floating platform: %w", err)
	}

	platform := archetypes.FloatingPlatform.Spawn(ecs)
	components.Shape.SetValue(platform, components.ShapeData{Shape: s, Desc: "floating"})

	// The floating platform moves using a *gween.Sequence of tweens, moving it
	// up and back down. Values are offsets from its spawn height.
	dist := float32(cfg.Platform.Distance)
	dur := float32(cfg.Platform.Duration)
	tw := gween.NewSequence(
		gween.New(0, dist, dur, ease.Linear),
		gween.New(dist, 0, dur, ease.Linear),
	)
	tw.SetLoop(-1)
	components.Tween.SetValue(platform, components.TweenData{Sequence: tw, BaseY: y})

	return platform, nil
}
