// Package sprites holds the actor kinematics shared by the player and enemies.
// It does not depend on ebitengine; textures are opaque.
package sprites

import (
	"image"

	"github.com/automoto/rario/gamemath"
)

// Axis selects the horizontal or vertical half of a collision pass.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Outcome is what a frame of simulation produced.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeLost
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "running"
	}
}

// Keys is the per-frame keyboard snapshot.
type Keys struct {
	Left, Right, Up bool
}

// Texture is satisfied by *ebiten.Image.
type Texture interface {
	Bounds() image.Rectangle
}

// Actor is anything that moves through the level and collides with tiles.
type Actor interface {
	Base() *Body
	Rect() gamemath.Rect
	MoveDir(dir int)
	Jump()
	MoveMutate(axis Axis)
	HandleCollision(axis Axis, overlap gamemath.Rect)
	Update(keys Keys) Outcome
}

var (
	_ Actor = (*Player)(nil)
	_ Actor = (*Enemy)(nil)
)
