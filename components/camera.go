package components

import (
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData maps world space (Y up) to screen pixels (Y down). Center is
// the world point drawn at the middle of the screen.
type CameraData struct {
	Center        gamemath.Vec2
	Zoom          float64 // pixels per world unit
	Width, Height int
}

// ToScreen converts a world point to screen coordinates.
func (c *CameraData) ToScreen(p gamemath.Vec2) (float32, float32) {
	x := (p.X-c.Center.X)*c.Zoom + float64(c.Width)/2
	y := float64(c.Height)/2 - (p.Y-c.Center.Y)*c.Zoom
	return float32(x), float32(y)
}

// ToWorld converts screen coordinates back to a world point.
func (c *CameraData) ToWorld(x, y int) gamemath.Vec2 {
	return gamemath.V(
		(float64(x)-float64(c.Width)/2)/c.Zoom+c.Center.X,
		(float64(c.Height)/2-float64(y))/c.Zoom+c.Center.Y,
	)
}

// Length scales a world distance to pixels.
func (c *CameraData) Length(d float64) float32 {
	return float32(d * c.Zoom)
}

var Camera = donburi.NewComponentType[CameraData]()
