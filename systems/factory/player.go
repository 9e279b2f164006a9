package factory

import (
	"github.com/automoto/rario/archetypes"
	"github.com/automoto/rario/components"
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/sprites"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var actorQuery = donburi.NewQuery(filter.Contains(components.Actor))

// CreatePlayer spawns the player standing on the ground at the configured X.
func CreatePlayer(w donburi.World, cfg *config.Config, tex sprites.Texture) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	components.Actor.SetValue(player, components.ActorData{
		Actor: sprites.NewPlayer(cfg, cfg.Player.SpawnX, cfg.GroundY(), tex),
		Seq:   actorQuery.Count(w) - 1,
	})
	return player
}
