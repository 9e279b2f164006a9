package factory

import (
	"github.com/automoto/rario/archetypes"
	"github.com/automoto/rario/components"
	"github.com/automoto/rario/leveldata"
	"github.com/automoto/rario/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateTile registers a solid tile. The resolv object carries the tile so
// collision candidates can be put back into storage order.
func CreateTile(w donburi.World, tile leveldata.Tile) *donburi.Entry {
	entry := archetypes.Tile.Spawn(w)

	obj := resolv.NewObject(tile.X, tile.Y, tile.W, tile.H, tags.ResolvSolid)
	obj.Data = tile

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
