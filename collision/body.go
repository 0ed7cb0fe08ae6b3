// Package collision holds the rigid body primitives and the narrow phase:
// shape-pair contact detection and the two stage resolution applied to each
// colliding pair.
package collision

import (
	"fmt"
	"math"

	"github.com/automoto/bsp2d/bsp"
	"github.com/automoto/bsp2d/shared/gamemath"
)

// DefaultFriction is the velocity fraction a body keeps per second.
const DefaultFriction = 0.95

// ShapeKind tags the variant held by a Shape.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeSquare
)

func (k ShapeKind) String() string {
	if k == ShapeCircle {
		return "circle"
	}
	return "square"
}

// Shape is either a circle or an axis aligned square centered on the body
// position. Shapes are immutable once built.
type Shape struct {
	kind ShapeKind
	size float64 // radius or edge length
}

// Circle returns a circle shape. It panics unless radius > 0.
func Circle(radius float64) Shape {
	if !(radius > 0) {
		panic(fmt.Sprintf("collision: circle radius must be positive, got %g", radius))
	}
	return Shape{kind: ShapeCircle, size: radius}
}

// Square returns a square shape. It panics unless edgeLength > 0.
func Square(edgeLength float64) Shape {
	if !(edgeLength > 0) {
		panic(fmt.Sprintf("collision: square edge length must be positive, got %g", edgeLength))
	}
	return Shape{kind: ShapeSquare, size: edgeLength}
}

func (s Shape) Kind() ShapeKind { return s.kind }

// Radius returns the circle radius, or 0 for squares.
func (s Shape) Radius() float64 {
	if s.kind != ShapeCircle {
		return 0
	}
	return s.size
}

// EdgeLength returns the square edge length, or 0 for circles.
func (s Shape) EdgeLength() float64 {
	if s.kind != ShapeSquare {
		return 0
	}
	return s.size
}

// HalfExtent is the distance from the center to the bounding box edge.
func (s Shape) HalfExtent() float64 {
	if s.kind == ShapeCircle {
		return s.size
	}
	return s.size / 2
}

// Area is used by hosts that derive mass from size.
func (s Shape) Area() float64 {
	if s.kind == ShapeCircle {
		return math.Pi * s.size * s.size
	}
	return s.size * s.size
}

func (s Shape) String() string {
	if s.kind == ShapeCircle {
		return fmt.Sprintf("circle(r=%g)", s.size)
	}
	return fmt.Sprintf("square(edge=%g)", s.size)
}

// Mass is a finite positive value or infinite. Infinite mass bodies are
// immovable: their inverse mass is exactly zero.
type Mass struct {
	value    float64
	infinite bool
}

// FiniteMass panics unless value > 0.
func FiniteMass(value float64) Mass {
	if !(value > 0) || math.IsInf(value, 1) {
		panic(fmt.Sprintf("collision: mass must be finite and positive, got %g", value))
	}
	return Mass{value: value}
}

func InfiniteMass() Mass {
	return Mass{infinite: true}
}

func (m Mass) IsInfinite() bool { return m.infinite }

// Value returns the mass, +Inf for infinite masses.
func (m Mass) Value() float64 {
	if m.infinite {
		return math.Inf(1)
	}
	return m.value
}

func (m Mass) Inverse() float64 {
	if m.infinite {
		return 0
	}
	return 1 / m.value
}

func (m Mass) String() string {
	if m.infinite {
		return "inf"
	}
	return fmt.Sprintf("%g", m.value)
}

// Body is a rigid body. Position is the shape center.
type Body struct {
	Shape        Shape
	Mass         Mass
	Position     gamemath.Vec2
	Velocity     gamemath.Vec2
	Acceleration gamemath.Vec2
	Force        gamemath.Vec2
	// Friction is the fraction of velocity kept per second, in [0, 1].
	// It is a decay factor, not a contact friction model.
	Friction float64
}

// NewBody returns a body at rest with DefaultFriction.
func NewBody(shape Shape, position gamemath.Vec2, mass Mass) Body {
	return Body{
		Shape:    shape,
		Mass:     mass,
		Position: position,
		Friction: DefaultFriction,
	}
}

// AABB returns the bounding box of the body at its current position.
func (b *Body) AABB() bsp.AABB {
	return bsp.AroundPoint(b.Position, b.Shape.HalfExtent())
}

// ContainsPoint reports whether p lies inside or on the body's shape.
func (b *Body) ContainsPoint(p gamemath.Vec2) bool {
	d := p.Sub(b.Position)
	if b.Shape.Kind() == ShapeCircle {
		r := b.Shape.Radius()
		return d.Dot(d) <= r*r
	}
	half := b.Shape.HalfExtent()
	return math.Abs(d.X) <= half && math.Abs(d.Y) <= half
}

// Integrate advances the body by dt seconds: position from the current
// velocity, acceleration from the accumulated force, then velocity from the
// acceleration, decayed by friction.
func (b *Body) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.Acceleration = b.Force.Scale(b.Mass.Inverse())
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
	b.Velocity = b.Velocity.Scale(gamemath.DecayFactor(b.Friction, dt))
}

// ApplyForce accumulates f until the next ClearForce.
func (b *Body) ApplyForce(f gamemath.Vec2) {
	b.Force = b.Force.Add(f)
}

func (b *Body) ClearForce() {
	b.Force = gamemath.Vec2{}
}

// Momentum returns mass times velocity. Infinite mass bodies report zero.
func (b *Body) Momentum() gamemath.Vec2 {
	if b.Mass.IsInfinite() {
		return gamemath.Vec2{}
	}
	return b.Velocity.Scale(b.Mass.Value())
}
