package factory

import (
	"github.com/automoto/rario/archetypes"
	"github.com/automoto/rario/components"
	"github.com/automoto/rario/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)

	probe := resolv.NewObject(0, 0, float64(cellWidth), float64(cellHeight), tags.ResolvProbe)
	spaceData.Add(probe)

	components.Space.SetValue(space, components.SpaceData{Space: spaceData, Probe: probe})
	return space
}
