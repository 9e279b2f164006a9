package scenes

import (
	"fmt"
	"image"

	"github.com/automoto/rario/assets"
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/input"
	"github.com/automoto/rario/leveldata"
	"github.com/automoto/rario/prefs"
	"github.com/charmbracelet/log"
)

// Resources is everything loaded before the game loop starts. Load failures
// are fatal, so scenes never see a partially loaded level.
type Resources struct {
	Config   *config.Config
	MapPath  string
	Level    *leveldata.Level
	Keyboard *input.Keyboard
	Prefs    *prefs.Store

	PlayerImage image.Image
	EnemyImage  image.Image
	Background  image.Image
}

func LoadResources(cfg *config.Config, mapPath string, store *prefs.Store) (*Resources, error) {
	if mapPath == "" {
		mapPath = cfg.World.Map
	}

	lvl, err := assets.LoadLevel(cfg, mapPath)
	if err != nil {
		return nil, err
	}
	log.Info("level loaded", "map", mapPath, "tiles", len(lvl.Tiles), "spawns", len(lvl.Spawns))

	keyboard, err := input.NewKeyboard(cfg.Input)
	if err != nil {
		return nil, err
	}

	res := &Resources{
		Config:   cfg,
		MapPath:  mapPath,
		Level:    lvl,
		Keyboard: keyboard,
		Prefs:    store,
	}

	if res.PlayerImage, err = assets.LoadSprite(cfg.Player.Sprite); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	if res.EnemyImage, err = assets.LoadSprite(cfg.Enemy.Sprite); err != nil {
		return nil, fmt.Errorf("enemy: %w", err)
	}
	if cfg.World.Background != "" {
		if res.Background, err = assets.LoadImage(cfg.World.Background); err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
	}

	return res, nil
}
