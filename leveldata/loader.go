package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadTiles opens path within fsys and parses it. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadTiles(fsys fs.FS, mapPath string, tileSize float64) ([]Tile, error) {
	lvl, err := LoadLevel(fsys, mapPath, tileSize, "")
	if err != nil {
		return nil, err
	}
	return lvl.Tiles, nil
}

// LoadLevel reads a text grid or, for .tmx paths, a Tiled map.
// layer selects the Tiled tile layer; empty means the first one.
func LoadLevel(fsys fs.FS, mapPath string, tileSize float64, layer string) (*Level, error) {
	if strings.EqualFold(path.Ext(mapPath), ".tmx") {
		return LoadTMX(fsys, mapPath, tileSize, layer)
	}

	f, err := fsys.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", mapPath, err)
	}
	defer f.Close()

	tiles, err := ParseTiles(f, tileSize)
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", mapPath, err)
	}
	return &Level{Tiles: tiles}, nil
}

// LoadTMX parses a Tiled map. Every non-empty cell of the tile layer becomes
// a solid tile using the same coordinates as the text format. Objects in the
// "Enemies" group become spawns; their "vx" property is the patrol velocity.
func LoadTMX(fsys fs.FS, tmxPath string, tileSize float64, layer string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if float64(levelMap.TileWidth) != tileSize || float64(levelMap.TileHeight) != tileSize {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d, want %.0f",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight, tileSize)
	}

	var tileLayer *tiled.Layer
	for _, l := range levelMap.Layers {
		if layer == "" || l.Name == layer {
			tileLayer = l
			break
		}
	}
	if tileLayer == nil {
		return nil, fmt.Errorf("load TMX %s: no tile layer %q", tmxPath, layer)
	}

	lvl := &Level{}
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			if tileLayer.Tiles[y*levelMap.Width+x].IsNil() {
				continue
			}
			lvl.Tiles = append(lvl.Tiles, Tile{
				Index: len(lvl.Tiles),
				X:     float64(x) * tileSize,
				Y:     float64(y)*tileSize + tileSize/2,
				W:     tileSize,
				H:     tileSize,
			})
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Enemies" {
			continue
		}
		for _, o := range og.Objects {
			lvl.Spawns = append(lvl.Spawns, Spawn{
				X:  o.X,
				Y:  o.Y,
				VX: o.Properties.GetFloat("vx"),
			})
		}
	}

	return lvl, nil
}
