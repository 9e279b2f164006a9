package systems

import (
	"github.com/automoto/rario/components"
	"github.com/automoto/rario/config"
	"github.com/yohamta/donburi"
)

// NewUpdateBanner fades the level title out by one tick's worth of time.
func NewUpdateBanner(cfg *config.Config) System {
	dt := 1 / float32(cfg.Physics.TicksPerSecond)
	return func(w donburi.World) {
		components.Banner.Each(w, func(e *donburi.Entry) {
			banner := components.Banner.Get(e)
			if banner.Done || banner.Tween == nil {
				return
			}
			banner.Alpha, banner.Done = banner.Tween.Update(dt)
		})
	}
}
