package collision

import "github.com/automoto/bsp2d/shared/gamemath"

const (
	// OverlapDisplacement is how far each of two coincident bodies is
	// pushed along X before contact geometry is computed.
	OverlapDisplacement = 0.01

	// DefaultRestitution is the fraction of separating velocity kept by a
	// resolved contact.
	DefaultRestitution = 0.9
)

// CorrectionMode selects which bodies positional correction moves.
type CorrectionMode int

const (
	// CorrectSymmetric moves both bodies apart in proportion to their
	// inverse masses.
	CorrectSymmetric CorrectionMode = iota
	// CorrectLHSOnly moves only the first body by its inverse mass share,
	// leaving the remaining overlap to later ticks.
	CorrectLHSOnly
)

func (m CorrectionMode) String() string {
	if m == CorrectLHSOnly {
		return "lhs-only"
	}
	return "symmetric"
}

// ParseCorrectionMode maps a config string to a mode. Unknown values
// select CorrectSymmetric.
func ParseCorrectionMode(s string) CorrectionMode {
	if s == "lhs-only" {
		return CorrectLHSOnly
	}
	return CorrectSymmetric
}

// SeparateCoincident nudges lhs and rhs apart along X when they share the
// exact same position and reports whether it did.
func SeparateCoincident(lhs, rhs *Body) bool {
	if lhs.Position != rhs.Position {
		return false
	}
	lhs.Position.X -= OverlapDisplacement
	rhs.Position.X += OverlapDisplacement
	return true
}

// Resolve removes the penetration described by ev by moving the bodies
// along the contact normal. Only positions change. Two infinite masses are
// left untouched.
func Resolve(lhs, rhs *Body, ev Event, mode CorrectionMode) {
	SeparateCoincident(lhs, rhs)

	lhsInverse := lhs.Mass.Inverse()
	rhsInverse := rhs.Mass.Inverse()
	totalInverse := lhsInverse + rhsInverse
	if totalInverse <= 0 {
		return
	}

	movePerInverseMass := ev.Normal.Scale(ev.PenetrationDepth / totalInverse)
	lhs.Position = lhs.Position.Add(movePerInverseMass.Scale(lhsInverse))
	if mode == CorrectSymmetric {
		rhs.Position = rhs.Position.Sub(movePerInverseMass.Scale(rhsInverse))
	}
}

// SeparatingVelocity is the relative velocity of lhs with respect to rhs
// along normal. Positive values mean the bodies are moving apart.
func SeparatingVelocity(lhs, rhs *Body, normal gamemath.Vec2) float64 {
	return lhs.Velocity.Sub(rhs.Velocity).Dot(normal)
}

// ResolveContactVelocity applies the impulse that reverses the approach
// speed along normal, scaled by restitution. Only velocities change.
func ResolveContactVelocity(lhs, rhs *Body, normal gamemath.Vec2, restitution float64) {
	separating := SeparatingVelocity(lhs, rhs, normal)
	if separating > 0 {
		return
	}

	lhsInverse := lhs.Mass.Inverse()
	rhsInverse := rhs.Mass.Inverse()
	totalInverse := lhsInverse + rhsInverse
	if totalInverse <= 0 {
		return
	}

	deltaVelocity := -separating*restitution - separating
	impulse := normal.Scale(deltaVelocity / totalInverse)

	lhs.Velocity = lhs.Velocity.Add(impulse.Scale(lhsInverse))
	rhs.Velocity = rhs.Velocity.Sub(impulse.Scale(rhsInverse))
}
