package factory

import (
	"github.com/automoto/rario/archetypes"
	"github.com/automoto/rario/components"
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/leveldata"
	"github.com/automoto/rario/sprites"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy at a world position. Actors live in screen
// space, so the current camera offset is subtracted.
func CreateEnemy(w donburi.World, cfg *config.Config, spawn leveldata.Spawn, tex sprites.Texture) *donburi.Entry {
	var xBack float64
	if cam, ok := components.Camera.First(w); ok {
		xBack = components.Camera.Get(cam).XBack
	}

	enemy := archetypes.Enemy.Spawn(w)
	components.Actor.SetValue(enemy, components.ActorData{
		Actor: sprites.NewEnemy(cfg, spawn.X-xBack, spawn.Y, spawn.VX, tex),
		Seq:   actorQuery.Count(w) - 1,
	})
	return enemy
}

// EnemySpawns prefers spawns placed in the map and falls back to the config.
func EnemySpawns(cfg *config.Config, lvl *leveldata.Level) []leveldata.Spawn {
	if len(lvl.Spawns) > 0 {
		return lvl.Spawns
	}
	spawns := make([]leveldata.Spawn, 0, len(cfg.Enemy.Spawns))
	for _, s := range cfg.Enemy.Spawns {
		spawns = append(spawns, leveldata.Spawn{X: s.X, Y: s.Y, VX: s.VX})
	}
	return spawns
}
