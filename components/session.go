package components

import (
	"github.com/automoto/rario/sprites"
	"github.com/yohamta/donburi"
)

// SessionData tracks the running game. Outcome only ever leaves
// OutcomeRunning once.
type SessionData struct {
	Tick    int
	Outcome sprites.Outcome
}

// End records o if the session is still running and reports whether it did.
func (s *SessionData) End(o sprites.Outcome) bool {
	if s.Outcome != sprites.OutcomeRunning || o == sprites.OutcomeRunning {
		return false
	}
	s.Outcome = o
	return true
}

var Session = donburi.NewComponentType[SessionData]()
