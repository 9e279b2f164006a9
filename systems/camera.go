package systems

import (
	"github.com/automoto/rario/components"
	"github.com/automoto/rario/config"
	"github.com/automoto/rario/sprites"
	"github.com/yohamta/donburi"
)

// NewUpdateCamera scrolls the world when the player walks past the dead zone.
func NewUpdateCamera(cfg *config.Config) System {
	return func(w donburi.World) {
		cameraEntry, ok := components.Camera.First(w)
		if !ok {
			return
		}
		p, ok := Primary(w)
		if !ok {
			return // no player, nothing to follow
		}

		var others []sprites.Actor
		for _, a := range Actors(w) {
			if a != p {
				others = append(others, a)
			}
		}
		Scroll(components.Camera.Get(cameraEntry), p, others, cfg.Camera.DeadZoneX, cfg.MaxScroll())
	}
}

// Scroll moves the camera right by however far primary is past deadZone,
// up to maxScroll. The amount scrolled is taken off every actor's screen X,
// so world positions are unchanged. Once the camera is saturated the player
// keeps walking toward the window edge.
func Scroll(cam *components.CameraData, primary sprites.Actor, others []sprites.Actor, deadZone, maxScroll float64) {
	b := primary.Base()
	excess := b.X - deadZone
	if excess <= 0 {
		return
	}
	room := maxScroll - cam.XBack
	shift := min(excess, room)
	if shift <= 0 {
		return
	}

	if shift == room {
		cam.XBack = maxScroll
	} else {
		cam.XBack += shift
	}
	if shift == excess {
		b.X = deadZone
	} else {
		b.X -= shift
	}
	for _, a := range others {
		a.Base().X -= shift
	}
}
