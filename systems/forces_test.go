package systems

import (
	"math"
	"testing"

	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/shared/gamemath"
)

func TestBungeeSpringForce(t *testing.T) {
	anchor := collision.NewBody(collision.Circle(1), gamemath.V(0, 0), collision.InfiniteMass())

	tests := []struct {
		name string
		pos  gamemath.Vec2
		want gamemath.Vec2
	}{
		{"slack", gamemath.V(5, 0), gamemath.Vec2{}},
		{"exactly_taut", gamemath.V(0, 10), gamemath.Vec2{}},
		{"stretched", gamemath.V(0, 12), gamemath.V(0, -200)},
		{"stretched_diagonal", gamemath.V(-9, 12), gamemath.V(300, -400)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lhs := collision.NewBody(collision.Circle(1), tt.pos, collision.FiniteMass(1))
			got := bungeeSpringForce(&lhs, &anchor, 100, 10)
			if !gamemath.NearlyEqual(got.X, tt.want.X, 1e-9) || !gamemath.NearlyEqual(got.Y, tt.want.Y, 1e-9) {
				t.Errorf("force = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDampedSpringForce(t *testing.T) {
	anchor := collision.NewBody(collision.Circle(1), gamemath.V(0, 0), collision.InfiniteMass())

	t.Run("pulls_toward_anchor", func(t *testing.T) {
		lhs := collision.NewBody(collision.Circle(1), gamemath.V(10, 0), collision.FiniteMass(2))
		f := dampedSpringForce(&lhs, &anchor, 100, 1, 1.0/60)
		if f.X >= 0 || f.Y != 0 {
			t.Errorf("force = %v, want a pull along -X", f)
		}
	})

	t.Run("at_rest_on_anchor", func(t *testing.T) {
		lhs := collision.NewBody(collision.Circle(1), gamemath.V(0, 0), collision.FiniteMass(2))
		if f := dampedSpringForce(&lhs, &anchor, 100, 1, 1.0/60); !f.IsZero() {
			t.Errorf("force = %v, want zero", f)
		}
	})

	t.Run("overdamped", func(t *testing.T) {
		lhs := collision.NewBody(collision.Circle(1), gamemath.V(10, 0), collision.FiniteMass(2))
		if f := dampedSpringForce(&lhs, &anchor, 100, 20, 1.0/60); !f.IsZero() {
			t.Errorf("force = %v, want zero", f)
		}
	})

	t.Run("infinite_mass", func(t *testing.T) {
		lhs := collision.NewBody(collision.Circle(1), gamemath.V(10, 0), collision.InfiniteMass())
		if f := dampedSpringForce(&lhs, &anchor, 100, 1, 1.0/60); !f.IsZero() {
			t.Errorf("force = %v, want zero", f)
		}
	})

	t.Run("reaches_target_offset", func(t *testing.T) {
		const step = 1.0 / 60
		lhs := collision.NewBody(collision.Circle(1), gamemath.V(10, 0), collision.FiniteMass(1))
		lhs.Friction = 1
		f := dampedSpringForce(&lhs, &anchor, 100, 1, step)
		lhs.ApplyForce(f)
		lhs.Integrate(step)

		// Integration moves by the old velocity first, so project the new
		// velocity one step ahead and compare with the oscillator curve.
		gamma := 0.5 * math.Sqrt(4*100-1)
		want := 10 * math.Cos(gamma*step) * math.Exp(-0.5*step)
		want += 10 * (1 / (2 * gamma)) * math.Sin(gamma*step) * math.Exp(-0.5*step)
		if got := 10 + lhs.Velocity.X*step; !gamemath.NearlyEqual(got, want, 1e-9) {
			t.Errorf("next offset = %g, want %g", got, want)
		}
	})
}
