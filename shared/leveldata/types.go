// Package leveldata turns TMX level files into plain tile and sprite
// descriptions in a Y-up world. It has no dependencies on donburi or resolv.
package leveldata

// Layer and property names read from TMX files.
const (
	LayerTiles   = "tiles"
	LayerSprites = "sprites"
	PropDesc     = "desc"
	PropSlope    = "slope"
)

// LevelData holds everything the simulation needs from a TMX level file.
type LevelData struct {
	Name       string
	Cols, Rows int
	TileSize   float64
	Tiles      []TileSpec
	Sprites    []SpriteSpec
}

// Width is the level width in world units.
func (l *LevelData) Width() float64 { return float64(l.Cols) * l.TileSize }

// Height is the level height in world units.
func (l *LevelData) Height() float64 { return float64(l.Rows) * l.TileSize }

// TileSpec is one occupied cell of the tile layer. Row 0 is the bottom row.
type TileSpec struct {
	Col, Row   int
	X, Y, W, H float64
	Desc       string // "", "block", "platform", "slope,1,0", "45_up_right", ...
}

// SpriteSpec is a sprite placement from the sprite tile layer or object group.
type SpriteSpec struct {
	X, Y, W, H float64
	Desc       string // "player", "mover", "floating"
}
