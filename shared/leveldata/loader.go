package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrTileShape is returned for maps whose tiles are not square.
var ErrTileShape = errors.New("tiles must be square")

// LoadLevel parses a TMX file into tile and sprite descriptions. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
//
// Tiled stores rows top-down; every position returned here is flipped so
// that row 0 and y = 0 are at the bottom of the map.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight || levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: %w (%dx%d)", tmxPath, ErrTileShape, levelMap.TileWidth, levelMap.TileHeight)
	}

	data := &LevelData{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Cols:     levelMap.Width,
		Rows:     levelMap.Height,
		TileSize: float64(levelMap.TileWidth),
	}

	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case LayerTiles:
			data.eachTile(layer, func(col, row int, desc string) {
				data.Tiles = append(data.Tiles, TileSpec{
					Col:  col,
					Row:  row,
					X:    float64(col) * data.TileSize,
					Y:    float64(row) * data.TileSize,
					W:    data.TileSize,
					H:    data.TileSize,
					Desc: desc,
				})
			})
		case LayerSprites:
			data.eachTile(layer, func(col, row int, desc string) {
				data.Sprites = append(data.Sprites, SpriteSpec{
					X:    float64(col) * data.TileSize,
					Y:    float64(row) * data.TileSize,
					W:    data.TileSize,
					H:    data.TileSize,
					Desc: desc,
				})
			})
		}
	}

	// Sprites may also be placed as free objects.
	for _, og := range levelMap.ObjectGroups {
		if og.Name != LayerSprites {
			continue
		}
		for _, o := range og.Objects {
			desc := o.Properties.GetString(PropDesc)
			if desc == "" {
				desc = o.Name
			}
			w, h := o.Width, o.Height
			if w == 0 {
				w = data.TileSize
			}
			if h == 0 {
				h = data.TileSize
			}
			// Tile objects are anchored at their bottom-left corner.
			y := data.Height() - o.Y - h
			if o.GID != 0 {
				y = data.Height() - o.Y
			}
			data.Sprites = append(data.Sprites, SpriteSpec{
				X:    o.X,
				Y:    y,
				W:    w,
				H:    h,
				Desc: desc,
			})
		}
	}

	// Bottom-up, then left to right, for a stable spawn order.
	sort.SliceStable(data.Sprites, func(i, j int) bool {
		a, b := data.Sprites[i], data.Sprites[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return data, nil
}

// eachTile visits the non-empty cells of a tile layer bottom row first.
func (l *LevelData) eachTile(layer *tiled.Layer, fn func(col, row int, desc string)) {
	for row := 0; row < l.Rows; row++ {
		y := l.Rows - 1 - row
		for col := 0; col < l.Cols; col++ {
			i := y*l.Cols + col
			if i >= len(layer.Tiles) {
				return
			}
			tile := layer.Tiles[i]
			if tile == nil || tile.IsNil() {
				continue
			}
			fn(col, row, describe(tile))
		}
	}
}

// describe reads the desc property of a tile, falling back to its slope tag.
func describe(tile *tiled.LayerTile) string {
	if tile.Tileset == nil {
		return ""
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return ""
	}
	if desc := tilesetTile.Properties.GetString(PropDesc); desc != "" {
		return desc
	}
	return tilesetTile.Properties.GetString(PropSlope)
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
