package render

import (
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera pans with the arrow keys and zooms with Q/E or the mouse
// wheel.
func UpdateCamera(e *ecs.ECS) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(entry)

	pan := config.Viewer.PanSpeed / float64(ebiten.TPS()) / cam.Zoom
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cam.Center.X -= pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cam.Center.X += pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cam.Center.Y += pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cam.Center.Y -= pan
	}

	_, wheel := ebiten.Wheel()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyE) || wheel > 0:
		cam.Zoom *= config.Viewer.ZoomStep
	case inpututil.IsKeyJustPressed(ebiten.KeyQ) || wheel < 0:
		cam.Zoom /= config.Viewer.ZoomStep
	}
}

// CursorWorld returns the world point under the mouse.
func CursorWorld(e *ecs.ECS) (gamemath.Vec2, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return gamemath.Vec2{}, false
	}
	return components.Camera.Get(entry).ToWorld(ebiten.CursorPosition()), true
}
