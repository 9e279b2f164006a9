package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the level title shown at spawn. Alpha is driven by Tween.
type BannerData struct {
	Text  string
	Tween *gween.Tween
	Alpha float32
	Done  bool
}

var Banner = donburi.NewComponentType[BannerData]()
