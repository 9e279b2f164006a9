package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Tile   = donburi.NewTag().SetName("Tile")
)

// Resolv tags for collision
const (
	ResolvSolid = "solid"
	ResolvProbe = "probe"
)
