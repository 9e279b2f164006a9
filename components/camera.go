package components

import "github.com/yohamta/donburi"

type CameraData struct {
	XBack float64 // horizontal scroll offset into the world
}

var Camera = donburi.NewComponentType[CameraData]()
