// Package gamemath holds the vector algebra shared by the collision core,
// the simulation systems and the network server. It has no dependencies on
// ebiten, donburi or resolv so every binary can import it.
package gamemath

import "math"

// Vec2 is a 2D vector with Y pointing up.
type Vec2 struct {
	X, Y float64
}

// V returns the vector (x, y).
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the scalar product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return math.FMA(v.X, o.X, v.Y*o.Y)
}

// LenSquared is cheaper than Len when only comparing distances.
func (v Vec2) LenSquared() float64 {
	return math.FMA(v.X, v.X, v.Y*v.Y)
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSquared())
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector of v. It panics on the zero vector:
// a direction cannot be derived from it and callers must guard against
// coincident points before asking for one.
func (v Vec2) Normalize() Vec2 {
	if v.IsZero() {
		panic("gamemath: normalize of zero vector")
	}
	return v.Scale(1 / v.Len())
}

// WithLen returns v rescaled to the given length. Panics on the zero vector.
func (v Vec2) WithLen(length float64) Vec2 {
	if v.IsZero() {
		panic("gamemath: set length of zero vector")
	}
	return v.Scale(length / v.Len())
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
