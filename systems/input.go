package systems

import (
	"github.com/automoto/rario/components"
	cfg "github.com/automoto/rario/config"
	"github.com/yohamta/donburi"
)

// ActionSource reports whether any key bound to an action is held.
type ActionSource interface {
	Pressed(action cfg.ActionID) bool
}

// NewUpdateInput polls src and updates the InputComponent.
// Must run BEFORE every system that reads keys.
func NewUpdateInput(c *cfg.Config, src ActionSource) System {
	return func(w donburi.World) {
		entry, ok := components.Input.First(w)
		if !ok {
			return
		}
		in := components.Input.Get(entry)

		// Swap buffers: current becomes previous, then zero out current
		in.Previous = in.Current
		in.Current = [cfg.ActionCount]bool{}

		for action := range c.Input.Bindings() {
			in.Current[action] = src.Pressed(action)
		}
	}
}
