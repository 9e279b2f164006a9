// rario is a small side-scrolling platformer.
//
// Usage:
//
//	rario                    - Play
//	rario check <map>        - Validate a map and print its extents
//	rario simulate           - Run the simulation headless
//
// Global flags:
//
//	--config <path> - YAML overlay on the default configuration
//	--debug         - Verbose logging
package main

import (
	"errors"
	"os"

	"github.com/automoto/rario/config"
	"github.com/automoto/rario/prefs"
	"github.com/automoto/rario/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	cfg   *config.Config
	res   *scenes.Resources
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(res *scenes.Resources) *Game {
	g := &Game{
		cfg: res.Config,
		res: res,
	}
	g.scene = scenes.NewPlatformerScene(g, res)
	return g
}

func (g *Game) Update() error {
	if g.res.Keyboard.JustPressed(config.ActionFullscreen) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if err := g.res.Prefs.Save(prefs.Settings{Scale: g.cfg.Window.Scale, Fullscreen: fullscreen}); err != nil {
			log.Warn("could not save preferences", "error", err)
		}
	}
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func runGame(res *scenes.Resources, fullscreen bool) error {
	cfg := res.Config
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(cfg.Window.Width)*cfg.Window.Scale), int(float64(cfg.Window.Height)*cfg.Window.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(fullscreen)
	ebiten.SetTPS(cfg.Physics.TicksPerSecond)

	err := ebiten.RunGame(NewGame(res))
	if errors.Is(err, ebiten.Termination) {
		log.Info("bye")
		return nil
	}
	return err
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rario",
	})
	log.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
