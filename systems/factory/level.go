package factory

import (
	"math"

	"github.com/automoto/rario/archetypes"
	"github.com/automoto/rario/components"
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel stores the tiles and builds the broad-phase space around them.
// The space spans the whole world plus a tile of margin below the window so
// falling actors still have cells to probe.
func CreateLevel(w donburi.World, cfg *config.Config, path string, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	width, height := leveldata.Bounds(lvl.Tiles)
	components.Level.SetValue(level, components.LevelData{
		Path:   path,
		Tiles:  lvl.Tiles,
		Width:  width,
		Height: height,
	})

	size := cfg.World.TileSize
	spaceW := math.Max(width, cfg.World.Width)
	spaceH := math.Max(height, float64(cfg.Window.Height)) + size
	CreateSpace(w, int(math.Ceil(spaceW)), int(math.Ceil(spaceH)), int(size), int(size))

	for _, tile := range lvl.Tiles {
		CreateTile(w, tile)
	}

	return level
}
