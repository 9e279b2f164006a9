package systems

import (
	"github.com/automoto/rario/sprites"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// UpdateActors runs each actor's end-of-frame update and records the first
// game over on the session.
func UpdateActors(w donburi.World) {
	keys := input(w).Keys()
	s := session(w)

	for _, a := range Actors(w) {
		if a.Update(keys) != sprites.OutcomeLost || s == nil {
			continue
		}
		if s.End(sprites.OutcomeLost) {
			b := a.Base()
			log.Info("game over", "tick", s.Tick, "x", b.X+xBack(w), "y", b.Y)
		}
	}
}
