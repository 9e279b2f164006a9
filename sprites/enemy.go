package sprites

import (
	"math"

	"github.com/automoto/rario/config"
	"github.com/automoto/rario/gamemath"
)

// Enemy patrols: it turns around whenever it walks into a tile.
// It is neither clamped to the screen nor removed when it falls.
type Enemy struct {
	Body
}

func NewEnemy(cfg *config.Config, x, y, vx float64, tex Texture) *Enemy {
	e := &Enemy{Body: newBody(cfg, x, y, tex)}
	e.VX = vx
	return e
}

func (e *Enemy) HandleCollision(axis Axis, overlap gamemath.Rect) {
	if axis != AxisX {
		e.Body.HandleCollision(axis, overlap)
		return
	}
	if math.Signbit(e.VX) {
		e.X = overlap.Right()
	} else {
		e.X = overlap.X - e.cfg.World.TileSize
	}
	e.VX = -e.VX
}

func (e *Enemy) Update(Keys) Outcome {
	e.Falling = true
	return OutcomeRunning
}
