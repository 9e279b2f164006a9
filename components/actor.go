package components

import (
	"github.com/automoto/rario/sprites"
	"github.com/yohamta/donburi"
)

// ActorData links an entity to its simulated actor.
// Seq is the spawn order; collision passes visit actors by Seq.
type ActorData struct {
	sprites.Actor
	Seq int
}

var Actor = donburi.NewComponentType[ActorData]()
