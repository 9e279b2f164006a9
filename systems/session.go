package systems

import (
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/sprites"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// UpdateSession counts ticks and ends the session on the quit action.
func UpdateSession(w donburi.World) {
	s := session(w)
	if s == nil {
		return
	}
	s.Tick++

	if input(w).Pressed(config.ActionQuit) && s.End(sprites.OutcomeQuit) {
		log.Info("quit requested", "tick", s.Tick)
	}
}
