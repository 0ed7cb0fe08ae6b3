package collision

import (
	"testing"

	"github.com/automoto/bsp2d/shared/gamemath"
)

func TestResolveNeverDeepens(t *testing.T) {
	type pair struct {
		name     string
		lhs, rhs func() *Body
	}
	pairs := []pair{
		{"circles", func() *Body { return body(Circle(5), 0, 0) }, func() *Body { return body(Circle(5), 7, 2) }},
		{"squares", func() *Body { return body(Square(10), 0, 0) }, func() *Body { return body(Square(6), 5, 1) }},
		{"circle square", func() *Body { return body(Circle(3), 0, 6) }, func() *Body { return body(Square(10), 1, 0) }},
		{"square circle", func() *Body { return body(Square(10), 1, 0) }, func() *Body { return body(Circle(3), 0, 6) }},
	}

	for _, mode := range []CorrectionMode{CorrectSymmetric, CorrectLHSOnly} {
		for _, p := range pairs {
			t.Run(mode.String()+"/"+p.name, func(t *testing.T) {
				lhs, rhs := p.lhs(), p.rhs()
				before, ok := Detect(lhs, rhs)
				if !ok {
					t.Fatal("expected an initial collision")
				}

				Resolve(lhs, rhs, before, mode)

				after, ok := Detect(lhs, rhs)
				if ok && after.PenetrationDepth > before.PenetrationDepth+eps {
					t.Errorf("depth grew from %g to %g", before.PenetrationDepth, after.PenetrationDepth)
				}
			})
		}
	}
}

func TestResolveSymmetricSplitsByInverseMass(t *testing.T) {
	lhs := NewBody(Circle(5), gamemath.V(0, 0), FiniteMass(1))
	rhs := NewBody(Circle(5), gamemath.V(9, 0), FiniteMass(3))

	ev, ok := Detect(&lhs, &rhs)
	if !ok {
		t.Fatal("expected a collision")
	}
	Resolve(&lhs, &rhs, ev, CorrectSymmetric)

	// Depth 1 split 3:1 towards the lighter body.
	if !vecNear(lhs.Position, gamemath.V(-0.75, 0)) {
		t.Errorf("lhs position = %v, want (-0.75, 0)", lhs.Position)
	}
	if !vecNear(rhs.Position, gamemath.V(9.25, 0)) {
		t.Errorf("rhs position = %v, want (9.25, 0)", rhs.Position)
	}
}

func TestResolveLHSOnlyLeavesRHS(t *testing.T) {
	lhs := body(Circle(5), 0, 0)
	rhs := body(Circle(5), 9, 0)

	ev, _ := Detect(lhs, rhs)
	Resolve(lhs, rhs, ev, CorrectLHSOnly)

	if !vecNear(lhs.Position, gamemath.V(-0.5, 0)) {
		t.Errorf("lhs position = %v, want (-0.5, 0)", lhs.Position)
	}
	if rhs.Position != gamemath.V(9, 0) {
		t.Errorf("rhs moved to %v", rhs.Position)
	}
}

func TestResolveBothInfiniteIsNoop(t *testing.T) {
	lhs := NewBody(Square(10), gamemath.V(0, 0), InfiniteMass())
	rhs := NewBody(Square(10), gamemath.V(8, 0), InfiniteMass())

	ev, _ := Detect(&lhs, &rhs)
	Resolve(&lhs, &rhs, ev, CorrectSymmetric)

	if lhs.Position != gamemath.V(0, 0) || rhs.Position != gamemath.V(8, 0) {
		t.Errorf("immovable bodies moved: %v, %v", lhs.Position, rhs.Position)
	}
}

func TestSeparateCoincident(t *testing.T) {
	lhs := body(Circle(1), 3, 4)
	rhs := body(Square(2), 3, 4)

	if !SeparateCoincident(lhs, rhs) {
		t.Fatal("expected coincident bodies to be separated")
	}
	if !vecNear(lhs.Position, gamemath.V(3-OverlapDisplacement, 4)) {
		t.Errorf("lhs position = %v", lhs.Position)
	}
	if !vecNear(rhs.Position, gamemath.V(3+OverlapDisplacement, 4)) {
		t.Errorf("rhs position = %v", rhs.Position)
	}
	if _, ok := Detect(lhs, rhs); !ok {
		t.Error("separated bodies should still collide")
	}
	if SeparateCoincident(lhs, rhs) {
		t.Error("distinct positions should be left alone")
	}
}

func TestResolveContactVelocityHeadOn(t *testing.T) {
	const speed = 10.0
	lhs := body(Circle(5), 0, 0)
	rhs := body(Circle(5), 9, 0)
	lhs.Velocity = gamemath.V(speed/2, 0)
	rhs.Velocity = gamemath.V(-speed/2, 0)

	ev, _ := Detect(lhs, rhs)
	momentumBefore := lhs.Momentum().Add(rhs.Momentum())
	approach := SeparatingVelocity(lhs, rhs, ev.Normal)

	ResolveContactVelocity(lhs, rhs, ev.Normal, DefaultRestitution)

	separating := SeparatingVelocity(lhs, rhs, ev.Normal)
	if !gamemath.NearlyEqual(separating, -approach*DefaultRestitution, eps) {
		t.Errorf("separating velocity = %g, want %g", separating, -approach*DefaultRestitution)
	}
	if !gamemath.NearlyEqual(approach, -speed, eps) {
		t.Errorf("approach velocity = %g, want %g", approach, -speed)
	}
	if momentumAfter := lhs.Momentum().Add(rhs.Momentum()); !vecNear(momentumAfter, momentumBefore) {
		t.Errorf("momentum changed from %v to %v", momentumBefore, momentumAfter)
	}
}

func TestResolveContactVelocitySeparatingIsNoop(t *testing.T) {
	lhs := body(Circle(5), 0, 0)
	rhs := body(Circle(5), 9, 0)
	lhs.Velocity = gamemath.V(-1, 0)
	rhs.Velocity = gamemath.V(1, 0)

	ev, _ := Detect(lhs, rhs)
	ResolveContactVelocity(lhs, rhs, ev.Normal, DefaultRestitution)

	if lhs.Velocity != gamemath.V(-1, 0) || rhs.Velocity != gamemath.V(1, 0) {
		t.Errorf("velocities changed: %v, %v", lhs.Velocity, rhs.Velocity)
	}
}

func TestInfiniteMassVelocityUnchanged(t *testing.T) {
	wall := NewBody(Square(10), gamemath.V(0, 0), InfiniteMass())
	wall.Velocity = gamemath.V(0, 2)
	ball := NewBody(Circle(2), gamemath.V(0, 6), FiniteMass(4))
	ball.Velocity = gamemath.V(3, -20)

	ev, ok := Detect(&ball, &wall)
	if !ok {
		t.Fatal("expected a collision")
	}
	Resolve(&ball, &wall, ev, CorrectSymmetric)
	ResolveContactVelocity(&ball, &wall, ev.Normal, DefaultRestitution)

	if wall.Velocity != gamemath.V(0, 2) {
		t.Errorf("wall velocity = %v, want (0, 2)", wall.Velocity)
	}
	if wall.Position != gamemath.V(0, 0) {
		t.Errorf("wall position = %v, want origin", wall.Position)
	}
	if ball.Velocity.Y <= 0 {
		t.Errorf("ball should bounce upwards, got %v", ball.Velocity)
	}
}

func TestIntegrate(t *testing.T) {
	b := NewBody(Circle(1), gamemath.V(0, 0), FiniteMass(2))
	b.Friction = 1
	b.Velocity = gamemath.V(1, 0)
	b.ApplyForce(gamemath.V(0, 4))

	b.Integrate(0.5)

	if !vecNear(b.Position, gamemath.V(0.5, 0)) {
		t.Errorf("position = %v, want (0.5, 0)", b.Position)
	}
	if !vecNear(b.Acceleration, gamemath.V(0, 2)) {
		t.Errorf("acceleration = %v, want (0, 2)", b.Acceleration)
	}
	if !vecNear(b.Velocity, gamemath.V(1, 1)) {
		t.Errorf("velocity = %v, want (1, 1)", b.Velocity)
	}

	b.ClearForce()
	if !b.Force.IsZero() {
		t.Errorf("force not cleared: %v", b.Force)
	}
}

func TestShapeAndMassConstructorsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"zero radius", func() { Circle(0) }},
		{"negative edge", func() { Square(-1) }},
		{"zero mass", func() { FiniteMass(0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
