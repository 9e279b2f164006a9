package sprites

import (
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/gamemath"
)

// Body carries the state and default behaviour common to every actor.
// X is in screen space: world X minus the camera offset.
type Body struct {
	X, Y    float64
	VX, VY  float64
	Falling bool
	Texture Texture

	cfg *config.Config
}

func newBody(cfg *config.Config, x, y float64, tex Texture) Body {
	return Body{X: x, Y: y, Falling: true, Texture: tex, cfg: cfg}
}

func (b *Body) Base() *Body { return b }

func (b *Body) Rect() gamemath.Rect {
	size := b.cfg.World.TileSize
	return gamemath.Rect{X: b.X, Y: b.Y, W: size, H: size}
}

// MoveDir accelerates horizontally; dir is -1, 0 or 1.
func (b *Body) MoveDir(dir int) {
	b.VX += float64(dir) * b.cfg.Player.Acceleration
	b.VX = gamemath.ClampSpeed(b.VX, b.cfg.Player.MaxSpeed)
}

// Jump only works from the ground.
func (b *Body) Jump() {
	if b.Falling {
		return
	}
	b.VY = -b.cfg.Player.JumpSpeed
	b.Falling = true
}

func (b *Body) MoveMutate(axis Axis) {
	switch axis {
	case AxisX:
		b.X += b.VX
	case AxisY:
		if !b.Falling {
			return
		}
		b.Y += b.VY
		b.VY += b.cfg.GravityPerTick()
	}
}

// HandleCollision pushes the body out of the overlap along axis and stops it.
func (b *Body) HandleCollision(axis Axis, overlap gamemath.Rect) {
	switch axis {
	case AxisX:
		if b.VX > 0 {
			b.X = overlap.X - b.cfg.World.TileSize
		} else if b.VX < 0 {
			b.X = overlap.Right()
		}
		b.VX = 0
	case AxisY:
		b.landOrBump(overlap)
	}
}

func (b *Body) landOrBump(overlap gamemath.Rect) {
	if !b.Falling {
		return
	}
	if b.VY > 0 {
		b.Y = overlap.Y - b.cfg.World.TileSize
		b.Falling = false
	} else {
		b.Y = overlap.Bottom()
	}
	b.VY = 0
}

// Dispose releases the texture's GPU memory if it has any.
func (b *Body) Dispose() {
	if d, ok := b.Texture.(interface{ Deallocate() }); ok {
		d.Deallocate()
	}
	b.Texture = nil
}
