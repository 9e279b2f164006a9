package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the broad phase: one object per tile in world coordinates,
// plus a probe that is moved over each actor in turn.
type SpaceData struct {
	*resolv.Space
	Probe *resolv.Object
}

var Space = donburi.NewComponentType[SpaceData]()
