// Package scene populates a sim.World from level data or from the
// seeded demo layout.
package scene

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/automoto/bsp2d/shared/leveldata"
	"github.com/automoto/bsp2d/sim"
	"github.com/yohamta/donburi"
)

// Spawn adds one body described by b. Mass <= 0 on a dynamic body means
// area times unit density.
func Spawn(w *sim.World, b leveldata.BodySpawn) (donburi.Entity, error) {
	var none donburi.Entity
	if !(b.Size > 0) || math.IsInf(b.Size, 0) {
		return none, fmt.Errorf("spawn %s: size must be positive, got %g", b.Shape, b.Size)
	}

	var shape collision.Shape
	switch b.Shape {
	case "", "circle":
		shape = collision.Circle(b.Size)
	case "square":
		shape = collision.Square(b.Size)
	default:
		return none, fmt.Errorf("spawn: unknown shape %q", b.Shape)
	}

	mass := collision.InfiniteMass()
	if !b.Static {
		m := b.Mass
		if m <= 0 || math.IsNaN(m) {
			m = shape.Area()
		}
		if math.IsInf(m, 0) {
			return none, fmt.Errorf("spawn %s: mass must be finite", b.Shape)
		}
		mass = collision.FiniteMass(m)
	}

	pos := gamemath.V(b.X, b.Y)
	if !pos.IsFinite() {
		return none, fmt.Errorf("spawn %s: position (%g, %g) is not finite", b.Shape, b.X, b.Y)
	}
	body := collision.NewBody(shape, pos, mass)
	if !b.Static {
		vel := gamemath.V(b.VX, b.VY)
		if !vel.IsFinite() {
			return none, fmt.Errorf("spawn %s: velocity (%g, %g) is not finite", b.Shape, b.VX, b.VY)
		}
		body.Velocity = vel
	}
	return w.Add(body), nil
}

// FromLevel adds every wall, body and platform of level to w and returns
// the number of entities created.
func FromLevel(w *sim.World, level *leveldata.SceneData) (int, error) {
	n := 0
	for _, wall := range level.Walls {
		w.AddWall(gamemath.V(wall.X, wall.Y), wall.Edge)
		n++
	}
	for i, b := range level.Bodies {
		if _, err := Spawn(w, b); err != nil {
			return n, fmt.Errorf("level body %d: %w", i, err)
		}
		n++
	}
	for _, p := range level.Platforms {
		w.AddPlatform(gamemath.V(p.FromX, p.FromY), gamemath.V(p.ToX, p.ToY), p.Edge, float32(p.Seconds))
		n++
	}
	return n, nil
}

// Builder returns a function that populates an empty world with the TMX
// level at path, or with the demo layout when path is empty. The level is
// read again on every call.
func Builder(path string, demo DemoOptions) func(*sim.World) error {
	if path == "" {
		return func(w *sim.World) error {
			Demo(w, demo)
			return nil
		}
	}
	return func(w *sim.World) error {
		level, err := leveldata.LoadScene(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return fmt.Errorf("load level %s: %w", path, err)
		}
		_, err = FromLevel(w, level)
		return err
	}
}
