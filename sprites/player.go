package sprites

import (
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/gamemath"
)

type Player struct {
	Body

	fell bool
}

func NewPlayer(cfg *config.Config, x, y float64, tex Texture) *Player {
	return &Player{Body: newBody(cfg, x, y, tex)}
}

// Update applies ground friction, keeps the player on screen and reports
// OutcomeLost the first time the player drops below the window.
func (p *Player) Update(keys Keys) Outcome {
	if !keys.Left && !keys.Right && !p.Falling {
		p.VX = gamemath.ApplyFriction(p.VX, p.cfg.Player.Friction)
	}

	if p.X < 0 {
		p.X = 0
		p.VX = 0
	} else if maxX := p.cfg.MaxX(); p.X > maxX {
		p.X = maxX
	}

	p.Falling = true

	if p.Y > float64(p.cfg.Window.Height) && !p.fell {
		p.fell = true
		return OutcomeLost
	}
	return OutcomeRunning
}

// Fell reports whether the player has dropped out of the world.
func (p *Player) Fell() bool { return p.fell }
