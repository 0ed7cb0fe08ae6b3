package collision

import (
	"math"

	"github.com/automoto/bsp2d/shared/gamemath"
)

// insideSquareDistanceSquared replaces the zero distance seen when a circle
// center lies inside a square, keeping the contact normal well defined.
const insideSquareDistanceSquared = 0.0001

type detector func(lhs, rhs *Body) (Event, bool)

var detectors = [2][2]detector{
	ShapeCircle: {
		ShapeCircle: detectCircleCircle,
		ShapeSquare: detectCircleSquare,
	},
	ShapeSquare: {
		ShapeCircle: detectSquareCircle,
		ShapeSquare: detectSquareSquare,
	},
}

// Detect reports whether lhs and rhs overlap and, if so, the contact
// between them. The bodies must not share a position; run
// SeparateCoincident first.
func Detect(lhs, rhs *Body) (Event, bool) {
	return detectors[lhs.Shape.kind][rhs.Shape.kind](lhs, rhs)
}

// detectCircleCircle treats exact tangency as no collision.
func detectCircleCircle(lhs, rhs *Body) (Event, bool) {
	delta := rhs.Position.Sub(lhs.Position)
	distanceSquared := delta.LenSquared()
	minDistance := lhs.Shape.size + rhs.Shape.size

	if distanceSquared >= minDistance*minDistance {
		return Event{}, false
	}

	distance := math.Sqrt(distanceSquared)
	depth := minDistance - distance

	return Event{
		Contact:          lhs.Position.Add(delta.WithLen(lhs.Shape.size - depth/2)),
		Normal:           delta.Neg().Normalize(),
		PenetrationDepth: depth,
	}, true
}

// detectSquareSquare is an AABB overlap test since squares never rotate.
// Zero overlap still collides. The axis with the smaller overlap separates
// the pair; ties pick X.
func detectSquareSquare(lhs, rhs *Body) (Event, bool) {
	lhsHalf := lhs.Shape.size / 2
	minDistance := (lhs.Shape.size + rhs.Shape.size) / 2
	delta := rhs.Position.Sub(lhs.Position)
	overlapX := minDistance - math.Abs(delta.X)
	overlapY := minDistance - math.Abs(delta.Y)

	if overlapX < 0 || overlapY < 0 {
		return Event{}, false
	}

	var contact gamemath.Vec2
	if lhs.Position.X < rhs.Position.X {
		contact.X = lhs.Position.X + lhsHalf - overlapX/2
	} else {
		contact.X = lhs.Position.X - lhsHalf + overlapX/2
	}
	if lhs.Position.Y < rhs.Position.Y {
		contact.Y = lhs.Position.Y + lhsHalf - overlapY/2
	} else {
		contact.Y = lhs.Position.Y - lhsHalf + overlapY/2
	}

	ev := Event{Contact: contact}
	if overlapX > overlapY {
		ev.Normal = gamemath.V(0, -delta.Y).Normalize()
		ev.PenetrationDepth = overlapY
	} else {
		ev.Normal = gamemath.V(-delta.X, 0).Normalize()
		ev.PenetrationDepth = overlapX
	}
	return ev, true
}

// detectCircleSquare uses the point of the square nearest the circle center
// as a zero radius second circle.
func detectCircleSquare(lhs, rhs *Body) (Event, bool) {
	nearest := nearestPointInSquare(rhs, lhs.Position)
	diff := nearest.Sub(lhs.Position)
	distanceSquared := diff.LenSquared()

	if distanceSquared == 0 {
		// The center is inside the square: push out through the square center.
		distanceSquared = insideSquareDistanceSquared
		diff = rhs.Position.Sub(lhs.Position)
	}

	radius := lhs.Shape.size
	if radius*radius < distanceSquared {
		return Event{}, false
	}

	distance := math.Sqrt(distanceSquared)
	depth := radius - distance

	return Event{
		Contact:          lhs.Position.Add(diff.WithLen(distance + depth/2)),
		Normal:           diff.Neg().Normalize(),
		PenetrationDepth: depth,
	}, true
}

func detectSquareCircle(lhs, rhs *Body) (Event, bool) {
	ev, ok := detectCircleSquare(rhs, lhs)
	if ok {
		ev.Normal = ev.Normal.Neg()
	}
	return ev, ok
}

func nearestPointInSquare(square *Body, p gamemath.Vec2) gamemath.Vec2 {
	half := square.Shape.size / 2
	return gamemath.V(
		gamemath.Clamp(p.X, square.Position.X-half, square.Position.X+half),
		gamemath.Clamp(p.Y, square.Position.Y-half, square.Position.Y+half),
	)
}
