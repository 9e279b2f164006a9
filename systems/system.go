// Package systems advances the simulation one tick at a time. Systems only
// touch donburi.World, so they run headless; scenes adapt them to ecs.
package systems

import (
	"sort"

	"github.com/automoto/rario/components"
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/sprites"
	"github.com/automoto/rario/tags"
	"github.com/yohamta/donburi"
)

// System updates one concern of the world by a tick.
type System func(w donburi.World)

// Pipeline returns the frame systems in run order.
func Pipeline(cfg *config.Config, src ActionSource) []System {
	return []System{
		NewUpdateInput(cfg, src),
		UpdateSession,
		UpdateMovement,
		NewUpdateCamera(cfg),
		UpdateCollisions,
		UpdateJump,
		UpdateActors,
		NewUpdateBanner(cfg),
	}
}

// Step runs one frame. Once the session has ended the world is frozen and
// the final outcome is returned.
func Step(w donburi.World, systems []System) sprites.Outcome {
	if s := session(w); s != nil && s.Outcome != sprites.OutcomeRunning {
		return s.Outcome
	}
	for _, system := range systems {
		system(w)
	}
	if s := session(w); s != nil {
		return s.Outcome
	}
	return sprites.OutcomeRunning
}

// Actors returns every actor in spawn order.
func Actors(w donburi.World) []sprites.Actor {
	var list []components.ActorData
	components.Actor.Each(w, func(e *donburi.Entry) {
		list = append(list, *components.Actor.Get(e))
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Seq < list[j].Seq })

	actors := make([]sprites.Actor, len(list))
	for i, a := range list {
		actors[i] = a.Actor
	}
	return actors
}

// Primary returns the player-controlled actor.
func Primary(w donburi.World) (sprites.Actor, bool) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return nil, false
	}
	return components.Actor.Get(entry).Actor, true
}

func session(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

func input(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		return &components.InputData{}
	}
	return components.Input.Get(entry)
}

func xBack(w donburi.World) float64 {
	if entry, ok := components.Camera.First(w); ok {
		return components.Camera.Get(entry).XBack
	}
	return 0
}
