// Package persistence captures a world into a serializable snapshot and
// stores snapshots through gdata.
package persistence

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/automoto/bsp2d/sim"
	"github.com/yohamta/donburi"
)

// Snapshot is the saved state of a world.
type Snapshot struct {
	Tick    uint64        `json:"tick"`
	Bodies  []BodyState   `json:"bodies"`
	Springs []SpringState `json:"springs,omitempty"`
}

// BodyState is one body. Static bodies carry no mass.
type BodyState struct {
	Shape    string         `json:"shape"`
	Size     float64        `json:"size"`
	Mass     float64        `json:"mass,omitempty"`
	Static   bool           `json:"static,omitempty"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	VX       float64        `json:"vx"`
	VY       float64        `json:"vy"`
	Friction float64        `json:"friction"`
	Platform *PlatformState `json:"platform,omitempty"`
}

// PlatformState describes a kinematic body's route. From is the start of
// the leg in progress.
type PlatformState struct {
	FromX      float64 `json:"fromX"`
	FromY      float64 `json:"fromY"`
	ToX        float64 `json:"toX"`
	ToY        float64 `json:"toY"`
	LegSeconds float32 `json:"legSeconds"`
}

// SpringState links bodies by their index in Snapshot.Bodies.
type SpringState struct {
	Kind     components.SpringKind `json:"kind"`
	A        int                   `json:"a"`
	B        int                   `json:"b"`
	Constant float64               `json:"constant"`
	Damping  float64               `json:"damping,omitempty"`
	Length   float64               `json:"length,omitempty"`
}

// Capture records every body and spring of w.
func Capture(w *sim.World) Snapshot {
	world := w.Registry()
	snap := Snapshot{Tick: w.Stats().Tick}
	index := make(map[donburi.Entity]int)

	components.Body.Each(world, func(entry *donburi.Entry) {
		b := components.Body.Get(entry)
		state := BodyState{
			Shape:    b.Shape.Kind().String(),
			Static:   b.Mass.IsInfinite(),
			X:        b.Position.X,
			Y:        b.Position.Y,
			VX:       b.Velocity.X,
			VY:       b.Velocity.Y,
			Friction: b.Friction,
		}
		if b.Shape.Kind() == collision.ShapeCircle {
			state.Size = b.Shape.Radius()
		} else {
			state.Size = b.Shape.EdgeLength()
		}
		if !state.Static {
			state.Mass = b.Mass.Value()
		}
		if entry.HasComponent(components.Kinematic) {
			k := components.Kinematic.Get(entry)
			from, to := k.From, k.To
			if !k.Forward {
				from, to = to, from
			}
			state.Platform = &PlatformState{
				FromX:      from.X,
				FromY:      from.Y,
				ToX:        to.X,
				ToY:        to.Y,
				LegSeconds: k.LegSeconds,
			}
		}
		index[entry.Entity()] = len(snap.Bodies)
		snap.Bodies = append(snap.Bodies, state)
	})

	components.Spring.Each(world, func(entry *donburi.Entry) {
		s := components.Spring.Get(entry)
		a, okA := index[s.A]
		b, okB := index[s.B]
		if !okA || !okB {
			return
		}
		snap.Springs = append(snap.Springs, SpringState{
			Kind:     s.Kind,
			A:        a,
			B:        b,
			Constant: s.Constant,
			Damping:  s.Damping,
			Length:   s.Length,
		})
	})

	return snap
}

// Restore replaces the contents of w with snap and resumes its tick count.
// Platforms restart the leg they were on. On error w is left empty.
func Restore(w *sim.World, snap Snapshot) error {
	w.Clear()

	entities := make([]donburi.Entity, len(snap.Bodies))
	for i, state := range snap.Bodies {
		body, err := state.body()
		if err != nil {
			w.Clear()
			return fmt.Errorf("restore body %d: %w", i, err)
		}
		if p := state.Platform; p != nil {
			entities[i] = w.AddPlatform(gamemath.V(p.FromX, p.FromY), gamemath.V(p.ToX, p.ToY), state.Size, p.LegSeconds)
			continue
		}
		entities[i] = w.Add(body)
	}

	for i, s := range snap.Springs {
		if s.A < 0 || s.A >= len(entities) || s.B < 0 || s.B >= len(entities) {
			w.Clear()
			return fmt.Errorf("restore spring %d: endpoint out of range", i)
		}
		_, err := w.AddSpring(components.SpringData{
			Kind:     s.Kind,
			A:        entities[s.A],
			B:        entities[s.B],
			Constant: s.Constant,
			Damping:  s.Damping,
			Length:   s.Length,
		})
		if err != nil {
			w.Clear()
			return fmt.Errorf("restore spring %d: %w", i, err)
		}
	}
	w.SetTick(snap.Tick)
	return nil
}

func (s BodyState) body() (collision.Body, error) {
	if !(s.Size > 0) || math.IsInf(s.Size, 0) {
		return collision.Body{}, fmt.Errorf("size must be positive, got %g", s.Size)
	}

	var shape collision.Shape
	switch s.Shape {
	case "circle":
		shape = collision.Circle(s.Size)
	case "square":
		shape = collision.Square(s.Size)
	default:
		return collision.Body{}, fmt.Errorf("unknown shape %q", s.Shape)
	}

	mass := collision.InfiniteMass()
	if !s.Static {
		if !(s.Mass > 0) || math.IsInf(s.Mass, 0) {
			return collision.Body{}, fmt.Errorf("mass must be positive and finite, got %g", s.Mass)
		}
		mass = collision.FiniteMass(s.Mass)
	}

	pos, vel := gamemath.V(s.X, s.Y), gamemath.V(s.VX, s.VY)
	if !pos.IsFinite() || !vel.IsFinite() {
		return collision.Body{}, fmt.Errorf("position %v and velocity %v must be finite", pos, vel)
	}
	if !(s.Friction >= 0 && s.Friction <= 1) {
		return collision.Body{}, fmt.Errorf("friction must be in [0, 1], got %g", s.Friction)
	}
	if p := s.Platform; p != nil {
		legs := float64(p.LegSeconds)
		if !gamemath.V(p.FromX, p.FromY).IsFinite() || !gamemath.V(p.ToX, p.ToY).IsFinite() ||
			math.IsNaN(legs) || math.IsInf(legs, 0) {
			return collision.Body{}, errors.New("platform route must be finite")
		}
	}

	body := collision.NewBody(shape, pos, mass)
	body.Velocity = vel
	body.Friction = s.Friction
	return body, nil
}
