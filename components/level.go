package components

import (
	"github.com/automoto/rario/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Path   string
	Tiles  []leveldata.Tile
	Width  float64
	Height float64
}

var Level = donburi.NewComponentType[LevelData]()
