package scenes

import (
	"sync"

	"github.com/automoto/rario/config"
	"github.com/automoto/rario/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ui           *ui.GameOverUI
	res          *Resources
	sceneChanger SceneChanger
	ticks        int
	quit         bool
	err          error
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, res *Resources, ticks int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, res: res, ticks: ticks}
}

func (gs *GameOverScene) Update() error {
	gs.once.Do(gs.configure)
	if gs.err != nil {
		return gs.err
	}

	kb := gs.res.Keyboard
	switch {
	case kb.JustPressed(config.ActionConfirm):
		gs.retry()
	case kb.JustPressed(config.ActionQuit):
		gs.quit = true
	default:
		gs.ui.Update()
	}

	if gs.quit {
		log.Info("quit from game over")
		return ebiten.Termination
	}
	return nil
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(config.Black)

	if gs.ui == nil {
		return
	}
	gs.ui.Draw(screen)
}

func (gs *GameOverScene) configure() {
	survived := float64(gs.ticks) / float64(gs.res.Config.Physics.TicksPerSecond)
	gs.ui, gs.err = ui.NewGameOverUI(survived, gs.retry, func() { gs.quit = true })
}

func (gs *GameOverScene) retry() {
	log.Info("retry")
	gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, gs.res))
}
