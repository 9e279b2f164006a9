package factory

import (
	"github.com/automoto/rario/archetypes"
	"github.com/automoto/rario/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}

func CreateInput(w donburi.World) *donburi.Entry {
	return archetypes.Input.Spawn(w)
}

func CreateSession(w donburi.World) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{})
	return session
}
