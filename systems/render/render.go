// Package render draws a donburi world of bodies with ebiten. Only the
// viewer imports it.
package render

import (
	"image/color"

	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/automoto/bsp2d/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactNormalScale stretches contact normals so shallow contacts stay
// visible.
const contactNormalScale = 8.0

func stepState(world donburi.World) (*components.StepData, *components.SolverData, bool) {
	entry, ok := components.Step.First(world)
	if !ok {
		return nil, nil, false
	}
	return components.Step.Get(entry), components.Solver.Get(entry), true
}

func camera(world donburi.World) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(world)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

// drawShape draws a circle of radius size or a square of edge size
// centered on pos. Filled shapes are used for immovable bodies.
func drawShape(screen *ebiten.Image, cam *components.CameraData, circle bool, pos gamemath.Vec2, size float64, filled bool, clr color.Color) {
	x, y := cam.ToScreen(pos)
	if circle {
		r := cam.Length(size)
		if filled {
			vector.DrawFilledCircle(screen, x, y, r, clr, true)
		} else {
			vector.StrokeCircle(screen, x, y, r, 1, clr, true)
		}
		return
	}

	edge := cam.Length(size)
	if filled {
		vector.FillRect(screen, x-edge/2, y-edge/2, edge, edge, clr, false)
	} else {
		vector.StrokeRect(screen, x-edge/2, y-edge/2, edge, edge, 1, clr, false)
	}
}

func bodyColor(static, kinematic bool) color.Color {
	switch {
	case kinematic:
		return config.Viewer.KinematicColor
	case static:
		return config.Viewer.StaticColor
	default:
		return config.Viewer.DynamicColor
	}
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	a := uint8(float64(c.A) * gamemath.Clamp(alpha, 0, 1))
	scale := func(v uint8) uint8 { return uint8(float64(v) * float64(a) / 255) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}

func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	cam, ok := camera(e.World)
	if !ok {
		return
	}
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		b := components.Body.Get(entry)
		kinematic := entry.HasComponent(tags.Kinematic)
		static := b.Mass.IsInfinite()
		circle := b.Shape.Kind() == collision.ShapeCircle
		size := b.Shape.Radius()
		if !circle {
			size = b.Shape.EdgeLength()
		}
		drawShape(screen, cam, circle, b.Position, size, static, bodyColor(static, kinematic))
	})
}

func DrawSprings(e *ecs.ECS, screen *ebiten.Image) {
	cam, ok := camera(e.World)
	if !ok {
		return
	}
	components.Spring.Each(e.World, func(entry *donburi.Entry) {
		s := components.Spring.Get(entry)
		if !e.World.Valid(s.A) || !e.World.Valid(s.B) {
			return
		}
		a := components.Body.Get(e.World.Entry(s.A))
		b := components.Body.Get(e.World.Entry(s.B))
		x0, y0 := cam.ToScreen(a.Position)
		x1, y1 := cam.ToScreen(b.Position)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, config.Viewer.SpringColor, true)
	})
}

// DrawContactEffects draws each live contact marker as a dot with its
// normal, fading with the marker.
func DrawContactEffects(e *ecs.ECS, screen *ebiten.Image) {
	cam, ok := camera(e.World)
	if !ok {
		return
	}
	components.ContactEffect.Each(e.World, func(entry *donburi.Entry) {
		fx := components.ContactEffect.Get(entry)
		drawContact(screen, cam, fx.Point, fx.Normal, fx.Depth, fade(config.Viewer.ContactColor, fx.Alpha))
	})
}

func drawContact(screen *ebiten.Image, cam *components.CameraData, point, normal gamemath.Vec2, depth float64, clr color.Color) {
	x0, y0 := cam.ToScreen(point)
	x1, y1 := cam.ToScreen(point.Add(normal.Scale(depth * contactNormalScale)))
	vector.DrawFilledCircle(screen, x0, y0, 2, clr, true)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, true)
}
