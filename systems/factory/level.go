package factory

import (
	"fmt"

	"github.com/automoto/jumpcore/archetypes"
	"github.com/automoto/jumpcore/components"
	cfg "github.com/automoto/jumpcore/config"
	"github.com/automoto/jumpcore/shared/leveldata"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds a whole level: the space and its indices, edge walls,
// every tile and every sprite. Unknown sprite descriptions are logged and
// skipped; tiles that cannot be built fail the level.
func CreateLevel(ecs *ecs.ECS, data *leveldata.LevelData) (*donburi.Entry, error) {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{LevelData: data})

	delta := cfg.Physics.StepDelta()
	if _, err := CreateSpace(ecs, data.Cols, data.Rows, data.TileSize, delta); err != nil {
		return nil, fmt.Errorf("level %s: %w", data.Name, err)
	}
	if err := CreateBoundaryWalls(ecs, data.Width(), data.Height(), data.TileSize); err != nil {
		return nil, fmt.Errorf("level %s: %w", data.Name, err)
	}

	for _, t := range data.Tiles {
		s, err := TileShape(t.X, t.Y, data.TileSize, t.Desc)
		if err != nil {
			return nil, fmt.Errorf("level %s tile (%d,%d): %w", data.Name, t.Col, t.Row, err)
		}
		if _, err := CreateTile(ecs, s, t.Desc); err != nil {
			return nil, fmt.Errorf("level %s: %w", data.Name, err)
		}
	}

	for _, sp := range data.Sprites {
		if _, err := CreateSprite(ecs, sp); err != nil {
			log.WithFields(log.Fields{
				"level": data.Name,
				"desc":  sp.Desc,
				"x":     sp.X,
				"y":     sp.Y,
			}).WithError(err).Warn("Skipping sprite")
		}
	}

	log.WithFields(log.Fields{
		"level":   data.Name,
		"tiles":   len(data.Tiles),
		"sprites": len(data.Sprites),
	}).Info("Level created")
	return level, nil
}

// CreateSprite spawns the entity a sprite description stands for.
func CreateSprite(ecs *ecs.ECS, sp leveldata.SpriteSpec) (*donburi.Entry, error) {
	switch sp.Desc {
	case "player":
		return CreatePlayer(ecs, sp.X, sp.Y)
	case "mover":
		return CreateMover(ecs, sp.X, sp.Y, cfg.Mover.SpeedX)
	case "floating":
		h := sp.H
		if h <= 0 || h > cfg.Platform.Height {
			h = cfg.Platform.Height
		}
		// Platforms hang from the top of their placement cell.
		return CreateFloatingPlatform(ecs, sp.X, sp.Y+sp.H-h, sp.W, h)
	}
	return nil, fmt.Errorf("%w: sprite %q", ErrUnknownDesc, sp.Desc)
}
