package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/rario/components"
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/systems"
	"github.com/automoto/rario/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDebug outlines the broad-phase objects on screen and prints the
// camera and player state.
func NewDrawDebug(cfg *config.Config) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		xBack := 0.0
		if cameraEntry, ok := components.Camera.First(e.World); ok {
			xBack = components.Camera.Get(cameraEntry).XBack
		}
		width := float64(cfg.Window.Width)

		if spaceEntry, ok := components.Space.First(e.World); ok {
			for _, obj := range components.Space.Get(spaceEntry).Objects() {
				x := obj.X - xBack
				// Cull objects outside viewport
				if x+obj.W < 0 || x > width {
					continue
				}

				c := color.RGBA{0, 255, 255, 255} // Cyan default
				if obj.HasTags(tags.ResolvSolid) {
					c = color.RGBA{100, 100, 100, 255} // Grey
				}
				vector.StrokeRect(screen, float32(x), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
			}
		}

		tick := 0
		if sessionEntry, ok := components.Session.First(e.World); ok {
			tick = components.Session.Get(sessionEntry).Tick
		}
		msg := fmt.Sprintf("t=%d x_back=%.1f", tick, xBack)
		if p, ok := systems.Primary(e.World); ok {
			b := p.Base()
			msg += fmt.Sprintf("\nx=%.1f y=%.1f\nvx=%.2f vy=%.2f falling=%t", b.X, b.Y, b.VX, b.VY, b.Falling)
		}
		ebitenutil.DebugPrintAt(screen, msg, 2, 2)
	}
}
