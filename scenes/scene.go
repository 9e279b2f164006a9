package scenes

import (
	"github.com/automoto/rario/systems"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// LayerDefault is the only render layer.
const LayerDefault ecs.LayerID = 0

// adapt runs a world system from the ecs loop, skipping it once the
// session has ended.
func adapt(system systems.System) ecs.System {
	return func(e *ecs.ECS) {
		if running(e) {
			system(e.World)
		}
	}
}
