package systems

import (
	"log"
	"math"

	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateForces accumulates gravity and spring forces for this tick. Forces
// are consumed by UpdateIntegration and cleared by ClearForces.
func UpdateForces(world donburi.World) {
	step, solver, ok := stepState(world)
	if !ok {
		return
	}

	if !solver.Gravity.IsZero() {
		components.Body.Each(world, func(entry *donburi.Entry) {
			body := components.Body.Get(entry)
			if body.Mass.IsInfinite() {
				return
			}
			body.ApplyForce(solver.Gravity.Scale(body.Mass.Value()))
		})
	}

	applySprings(world, step.Dt)
}

func applySprings(world donburi.World, dt float64) {
	var broken []*donburi.Entry

	components.Spring.Each(world, func(entry *donburi.Entry) {
		spring := components.Spring.Get(entry)
		if !world.Valid(spring.A) || !world.Valid(spring.B) {
			broken = append(broken, entry)
			return
		}
		a := world.Entry(spring.A)
		b := world.Entry(spring.B)
		if !a.HasComponent(components.Body) || !b.HasComponent(components.Body) {
			broken = append(broken, entry)
			return
		}

		lhs := components.Body.Get(a)
		rhs := components.Body.Get(b)

		var force gamemath.Vec2
		switch spring.Kind {
		case components.SpringBungee:
			force = bungeeSpringForce(lhs, rhs, spring.Constant, spring.Length)
		default:
			force = dampedSpringForce(lhs, rhs, spring.Constant, spring.Damping, dt)
		}
		lhs.ApplyForce(force)
	})

	for _, entry := range broken {
		log.Printf("[forces] removing spring %v: endpoint no longer has a body", entry.Entity())
		entry.Remove()
	}
}

// dampedSpringForce returns the force that moves lhs along the closed form
// path of an underdamped oscillator anchored at rhs over dt. Overdamped
// springs and infinite masses get no force.
func dampedSpringForce(lhs, rhs *collision.Body, constant, damping, dt float64) gamemath.Vec2 {
	if lhs.Mass.IsInfinite() || dt <= 0 {
		return gamemath.Vec2{}
	}

	discriminant := 4*constant - damping*damping
	if discriminant <= 0 {
		return gamemath.Vec2{}
	}
	gamma := 0.5 * math.Sqrt(discriminant)

	offset := lhs.Position.Sub(rhs.Position)
	c := offset.Scale(damping / (2 * gamma)).Add(lhs.Velocity.Scale(1 / gamma))

	target := offset.Scale(math.Cos(gamma * dt)).Add(c.Scale(math.Sin(gamma * dt)))
	target = target.Scale(math.Exp(-0.5 * dt * damping))

	accel := target.Sub(offset).Scale(1 / (dt * dt)).Sub(lhs.Velocity.Scale(1 / dt))
	return accel.Scale(lhs.Mass.Value())
}

// bungeeSpringForce pulls lhs toward rhs in proportion to how far the
// link is stretched past length. A slack link exerts nothing.
func bungeeSpringForce(lhs, rhs *collision.Body, constant, length float64) gamemath.Vec2 {
	offset := lhs.Position.Sub(rhs.Position)
	stretch := offset.Len()
	if stretch <= length {
		return gamemath.Vec2{}
	}
	return offset.Normalize().Scale(constant * (length - stretch))
}
