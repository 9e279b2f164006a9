package components

import (
	cfg "github.com/automoto/rario/config"
	"github.com/automoto/rario/sprites"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (d *InputData) Pressed(a cfg.ActionID) bool { return d.Current[a] }

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

// Keys is the movement snapshot handed to actors.
func (d *InputData) Keys() sprites.Keys {
	return sprites.Keys{
		Left:  d.Current[cfg.ActionMoveLeft],
		Right: d.Current[cfg.ActionMoveRight],
		Up:    d.Current[cfg.ActionJump],
	}
}

var Input = donburi.NewComponentType[InputData]()
