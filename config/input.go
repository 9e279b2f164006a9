package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionQuit
	ActionFullscreen
	ActionConfirm
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionMoveLeft:   "left",
	ActionMoveRight:  "right",
	ActionJump:       "jump",
	ActionQuit:       "quit",
	ActionFullscreen: "fullscreen",
	ActionConfirm:    "confirm",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Bindings returns the key names bound to each action.
func (c InputConfig) Bindings() map[ActionID][]string {
	return map[ActionID][]string{
		ActionMoveLeft:   c.Left,
		ActionMoveRight:  c.Right,
		ActionJump:       c.Jump,
		ActionQuit:       c.Quit,
		ActionFullscreen: c.Fullscreen,
		ActionConfirm:    c.Confirm,
	}
}
