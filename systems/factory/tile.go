package factory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/jumpcore/archetypes"
	"github.com/automoto/jumpcore/components"
	"github.com/automoto/jumpcore/shapes"
	"github.com/automoto/jumpcore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrUnknownDesc is returned for tile or sprite descriptions no factory knows.
var ErrUnknownDesc = errors.New("unknown description")

// TileShape builds the obstacle a tile description stands for, as a ps x ps
// cell with its lower-left corner at (x, y).
//
//	"", "block", "plain"     solid box
//	"platform"               one-sided platform
//	"none"                   explicit no-op obstacle
//	"slope,<m>,<b>"          slope, b in tiles ("slope:<m>:<b>" also works)
//	"45_up_right" ...        diagonal ramp tags
//	any registered kind      box of that kind
func TileShape(x, y, ps float64, desc string) (*shapes.Shape, error) {
	switch desc {
	case "", "block", "plain":
		return shapes.NewBox(x, y, ps, ps)
	case "platform":
		return shapes.NewPlatform(x, y, ps, ps)
	case "none":
		return shapes.NewShape(shapes.None, x, y, ps, ps)
	}

	if strings.HasPrefix(desc, "slope") {
		m, b, err := parseSlope(desc)
		if err != nil {
			return nil, err
		}
		return shapes.NewSlope(x, y, ps, ps, m, b*ps)
	}
	if m, b, ok := gamemath.SlopeForTag(desc, ps, ps); ok {
		return shapes.NewSlope(x, y, ps, ps, m, b)
	}
	if kind, ok := shapes.KindByName(desc); ok {
		return shapes.NewShape(kind, x, y, ps, ps)
	}
	return nil, fmt.Errorf("%w: tile %q", ErrUnknownDesc, desc)
}

func parseSlope(desc string) (m, b float64, err error) {
	parts := strings.FieldsFunc(desc, func(r rune) bool { return r == ',' || r == ':' })
	if len(parts) != 3 || parts[0] != "slope" {
		return 0, 0, fmt.Errorf("%w: slope %q wants slope,<m>,<b>", ErrUnknownDesc, desc)
	}
	if m, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("slope %q: %w", desc, err)
	}
	if b, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err != nil {
		return 0, 0, fmt.Errorf("slope %q: %w", desc, err)
	}
	return m, b, nil
}

// CreateTile spawns a static tile and places it in the tile grid.
func CreateTile(ecs *ecs.ECS, s *shapes.Shape, desc string) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, errNoSpace
	}
	if err := components.Space.Get(spaceEntry).Tiles.Insert(s); err != nil {
		return nil, fmt.Errorf("tile %q at %s: %w", desc, s.Rect, err)
	}

	tile := archetypes.Tile.Spawn(ecs)
	components.Shape.SetValue(tile, components.ShapeData{Shape: s, Desc: desc})
	return tile, nil
}
