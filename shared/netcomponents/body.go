package netcomponents

import "github.com/yohamta/donburi"

// Shape values carried by NetBodyData.Shape.
const (
	ShapeCircle uint8 = iota
	ShapeSquare
)

// NetBodyData is the replicated view of a rigid body. Size is the radius
// for circles and the edge length for squares.
type NetBodyData struct {
	X, Y      float64
	VX, VY    float64 // Client extrapolation between snapshots
	Shape     uint8
	Size      float64
	Static    bool
	Kinematic bool
}

var NetBody = donburi.NewComponentType[NetBodyData]()

// Contains reports whether the point (x, y) lies inside or on the body.
func (d NetBodyData) Contains(x, y float64) bool {
	dx, dy := x-d.X, y-d.Y
	if d.Shape == ShapeCircle {
		return dx*dx+dy*dy <= d.Size*d.Size
	}
	half := d.Size / 2
	return dx >= -half && dx <= half && dy >= -half && dy <= half
}

// LerpNetBody interpolates position; everything else snaps to the target.
func LerpNetBody(from, to NetBodyData, t float64) *NetBodyData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	return &out
}
