// Package render draws the world onto ebitengine images.
package render

import (
	"image"
	"image/color"

	"github.com/automoto/rario/components"
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/fonts"
	"github.com/automoto/rario/sprites"
	"github.com/automoto/rario/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// NewDrawLevel clears to the sky colour, or copies the scrolled slice of
// background when there is one, then fills every visible tile.
func NewDrawLevel(cfg *config.Config, background *ebiten.Image) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.Colors.Sky)

		xBack := 0.0
		if cameraEntry, ok := components.Camera.First(e.World); ok {
			xBack = components.Camera.Get(cameraEntry).XBack
		}

		if background != nil {
			src := image.Rect(int(xBack), 0, int(xBack)+cfg.Window.Width, cfg.Window.Height)
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			screen.DrawImage(background.SubImage(src.Intersect(background.Bounds())).(*ebiten.Image), drawOp)
		}

		levelEntry, ok := components.Level.First(e.World)
		if !ok {
			return
		}
		width := float64(cfg.Window.Width)
		for _, tile := range components.Level.Get(levelEntry).Tiles {
			x := tile.X - xBack
			// Viewport culling
			if x+tile.W <= 0 || x >= width {
				continue
			}
			vector.FillRect(screen, float32(x), float32(tile.Y), float32(tile.W), float32(tile.H), cfg.Colors.Tile, false)
		}
	}
}

// NewDrawSprites copies each actor's texture to its truncated screen
// position. Actors without a texture are drawn as solid squares.
func NewDrawSprites(cfg *config.Config) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		components.Actor.Each(e.World, func(entry *donburi.Entry) {
			b := components.Actor.Get(entry).Base()
			x, y := float64(int(b.X)), float64(int(b.Y))

			if img, ok := b.Texture.(*ebiten.Image); ok && img != nil {
				drawOp.GeoM.Reset()
				drawOp.ColorScale.Reset()
				drawOp.GeoM.Translate(x, y)
				screen.DrawImage(img, drawOp)
				return
			}

			clr := cfg.Colors.Enemy
			if entry.HasComponent(tags.Player) {
				clr = cfg.Colors.Player
			}
			size := float32(cfg.World.TileSize)
			vector.FillRect(screen, float32(x), float32(y), size, size, clr, false)
		})
	}
}

// NewDrawHUD shows the fading level banner.
func NewDrawHUD(cfg *config.Config) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		components.Banner.Each(e.World, func(entry *donburi.Entry) {
			banner := components.Banner.Get(entry)
			if banner.Done || banner.Text == "" {
				return
			}
			face := fonts.Title.Get()
			w := text.BoundString(face, banner.Text).Dx()
			x := (cfg.Window.Width - w) / 2
			text.Draw(screen, banner.Text, face, x, cfg.Window.Height/3, fade(cfg.Colors.Text, banner.Alpha))
		})
	}
}

// Texture uploads a decoded image. Every actor owns its own copy.
func Texture(img image.Image) sprites.Texture {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	a := min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
