package factory

import (
	"github.com/automoto/bsp2d/archetypes"
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateCamera spawns the viewer camera centered on center.
func CreateCamera(world donburi.World, center gamemath.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(world)
	components.Camera.SetValue(camera, components.CameraData{
		Center: center,
		Zoom:   config.Viewer.Zoom,
		Width:  config.Viewer.Width,
		Height: config.Viewer.Height,
	})
	return camera
}
