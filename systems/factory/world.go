package factory

import (
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/leveldata"
	"github.com/automoto/rario/sprites"
	"github.com/yohamta/donburi"
)

// Textures hands each new actor its own texture. Nil funcs leave actors
// untextured, which is what headless runs want.
type Textures struct {
	Player func() sprites.Texture
	Enemy  func() sprites.Texture
}

func (t Textures) player() sprites.Texture {
	if t.Player == nil {
		return nil
	}
	return t.Player()
}

func (t Textures) enemy() sprites.Texture {
	if t.Enemy == nil {
		return nil
	}
	return t.Enemy()
}

// PopulateWorld creates every entity a session needs. The player always
// spawns first so it leads the collision order.
func PopulateWorld(w donburi.World, cfg *config.Config, path string, lvl *leveldata.Level, tex Textures) {
	CreateInput(w)
	CreateSession(w)
	CreateCamera(w)
	CreateLevel(w, cfg, path, lvl)
	CreateBanner(w, cfg)

	CreatePlayer(w, cfg, tex.player())
	for _, spawn := range EnemySpawns(cfg, lvl) {
		CreateEnemy(w, cfg, spawn, tex.enemy())
	}
}
