package systems

import "github.com/yohamta/donburi"

// UpdateMovement applies horizontal input to the player. Holding both
// directions accelerates left then right, so they cancel.
func UpdateMovement(w donburi.World) {
	p, ok := Primary(w)
	if !ok {
		return
	}
	keys := input(w).Keys()
	if keys.Left {
		p.MoveDir(-1)
	}
	if keys.Right {
		p.MoveDir(1)
	}
}

// UpdateJump runs after collisions so a player that just landed can jump.
func UpdateJump(w donburi.World) {
	p, ok := Primary(w)
	if !ok {
		return
	}
	if input(w).Keys().Up {
		p.Jump()
	}
}
