package collision

import (
	"fmt"

	"github.com/automoto/bsp2d/shared/gamemath"
)

// Event describes the contact between two overlapping bodies. Normal is a
// unit vector pointing from rhs toward lhs.
type Event struct {
	Contact          gamemath.Vec2
	Normal           gamemath.Vec2
	PenetrationDepth float64
}

func (e Event) String() string {
	return fmt.Sprintf("contact=(%.3f, %.3f) normal=(%.3f, %.3f) depth=%.4f",
		e.Contact.X, e.Contact.Y, e.Normal.X, e.Normal.Y, e.PenetrationDepth)
}
