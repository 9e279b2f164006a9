package factory

import (
	"github.com/automoto/rario/archetypes"
	"github.com/automoto/rario/components"
	"github.com/automoto/rario/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateBanner shows the level title at full opacity and fades it out.
func CreateBanner(w donburi.World, cfg *config.Config) *donburi.Entry {
	banner := archetypes.Banner.Spawn(w)
	components.Banner.SetValue(banner, components.BannerData{
		Text:  cfg.Banner.Text,
		Tween: gween.New(1, 0, cfg.Banner.Duration, ease.InQuad),
		Alpha: 1,
		Done:  cfg.Banner.Text == "" || cfg.Banner.Duration <= 0,
	})
	return banner
}
