package scenes

import (
	"sync"

	"github.com/automoto/rario/components"
	"github.com/automoto/rario/render"
	"github.com/automoto/rario/sprites"
	"github.com/automoto/rario/systems"
	"github.com/automoto/rario/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	res          *Resources
	sceneChanger SceneChanger
	background   *ebiten.Image
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, res *Resources) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, res: res}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	entry, ok := components.Session.First(ps.ecs.World)
	if !ok {
		return nil
	}
	s := components.Session.Get(entry)
	switch s.Outcome {
	case sprites.OutcomeLost:
		ps.dispose()
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.res, s.Tick))
	case sprites.OutcomeQuit:
		ps.dispose()
		return ebiten.Termination
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(ps.res.Config.Colors.Sky)
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	cfg := ps.res.Config
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	for _, system := range systems.Pipeline(cfg, ps.res.Keyboard) {
		ps.ecs.AddSystem(adapt(system))
	}

	if ps.res.Background != nil {
		ps.background = ebiten.NewImageFromImage(ps.res.Background)
	}
	ps.ecs.AddRenderer(LayerDefault, render.NewDrawLevel(cfg, ps.background))
	ps.ecs.AddRenderer(LayerDefault, render.NewDrawSprites(cfg))
	ps.ecs.AddRenderer(LayerDefault, render.NewDrawHUD(cfg))
	if cfg.Debug.Overlay {
		ps.ecs.AddRenderer(LayerDefault, render.NewDrawDebug(cfg))
	}

	factory.PopulateWorld(ps.ecs.World, cfg, ps.res.MapPath, ps.res.Level, factory.Textures{
		Player: func() sprites.Texture { return render.Texture(ps.res.PlayerImage) },
		Enemy:  func() sprites.Texture { return render.Texture(ps.res.EnemyImage) },
	})
	log.Debug("world ready", "actors", len(systems.Actors(ps.ecs.World)))
}

// dispose frees the textures owned by actors and the background.
func (ps *PlatformerScene) dispose() {
	for _, a := range systems.Actors(ps.ecs.World) {
		a.Base().Dispose()
	}
	if ps.background != nil {
		ps.background.Deallocate()
		ps.background = nil
	}
}

func running(e *ecs.ECS) bool {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return true
	}
	return components.Session.Get(entry).Outcome == sprites.OutcomeRunning
}
