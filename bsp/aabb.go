// Package bsp implements the broad phase of the collision pipeline: axis
// aligned bounding boxes, partition planes and a binary space partitioning
// tree that reports every pair of overlapping boxes.
//
// Coordinates are Y-up: Top is the larger Y value, Bottom the smaller.
package bsp

import (
	"fmt"

	"github.com/automoto/bsp2d/shared/gamemath"
)

// AABB is an axis aligned bounding box. The zero value is a degenerate box
// at the origin; use Merged when the absence of a box must be distinguishable.
type AABB struct {
	TopLeft     gamemath.Vec2
	BottomRight gamemath.Vec2
}

// PartitionError is returned when a partition value lies outside the extent
// of the box it is asked to split.
type PartitionError struct {
	Min, Max, Value float64
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("partition value %g outside [%g, %g]", e.Value, e.Min, e.Max)
}

// NewAABB builds a box from its four edges. It panics when left > right or
// bottom > top.
func NewAABB(left, right, top, bottom float64) AABB {
	if left > right {
		panic(fmt.Sprintf("bsp: left edge %g is right of right edge %g", left, right))
	}
	if bottom > top {
		panic(fmt.Sprintf("bsp: bottom edge %g is above top edge %g", bottom, top))
	}
	return AABB{
		TopLeft:     gamemath.V(left, top),
		BottomRight: gamemath.V(right, bottom),
	}
}

// AroundPoint returns the box centered on p with the given half extent on
// both axes.
func AroundPoint(p gamemath.Vec2, half float64) AABB {
	return NewAABB(p.X-half, p.X+half, p.Y+half, p.Y-half)
}

func (b AABB) Left() float64   { return b.TopLeft.X }
func (b AABB) Right() float64  { return b.BottomRight.X }
func (b AABB) Top() float64    { return b.TopLeft.Y }
func (b AABB) Bottom() float64 { return b.BottomRight.Y }

// Extent returns the width and height of the box.
func (b AABB) Extent() gamemath.Vec2 {
	return gamemath.V(b.Right()-b.Left(), b.Top()-b.Bottom())
}

func (b AABB) Center() gamemath.Vec2 {
	return gamemath.V(
		gamemath.Lerp(b.Left(), b.Right(), 0.5),
		gamemath.Lerp(b.Bottom(), b.Top(), 0.5),
	)
}

// Intersects reports whether b and o overlap. Edges are closed, so boxes
// that only touch intersect.
func (b AABB) Intersects(o AABB) bool {
	return b.Left() <= o.Right() &&
		o.Left() <= b.Right() &&
		b.Bottom() <= o.Top() &&
		o.Bottom() <= b.Top()
}

// Contains reports whether o lies entirely inside b.
func (b AABB) Contains(o AABB) bool {
	return b.Left() <= o.Left() &&
		b.Right() >= o.Right() &&
		b.Bottom() <= o.Bottom() &&
		b.Top() >= o.Top()
}

// Merge returns the smallest box containing both b and o.
func (b AABB) Merge(o AABB) AABB {
	return NewAABB(
		min(b.Left(), o.Left()),
		max(b.Right(), o.Right()),
		max(b.Top(), o.Top()),
		min(b.Bottom(), o.Bottom()),
	)
}

// Merged folds Merge over boxes. It returns false for an empty input rather
// than a zero sized box at the origin.
func Merged(boxes ...AABB) (AABB, bool) {
	if len(boxes) == 0 {
		return AABB{}, false
	}
	merged := boxes[0]
	for _, b := range boxes[1:] {
		merged = merged.Merge(b)
	}
	return merged, true
}

// Partition splits b in two along p. below holds the part with smaller
// coordinates on p's axis.
func (b AABB) Partition(p Partition) (below, above AABB, err error) {
	switch p.Dimension {
	case DimensionX:
		if p.Value < b.Left() || p.Value > b.Right() {
			return AABB{}, AABB{}, &PartitionError{Min: b.Left(), Max: b.Right(), Value: p.Value}
		}
		below = NewAABB(b.Left(), p.Value, b.Top(), b.Bottom())
		above = NewAABB(p.Value, b.Right(), b.Top(), b.Bottom())
	case DimensionY:
		if p.Value < b.Bottom() || p.Value > b.Top() {
			return AABB{}, AABB{}, &PartitionError{Min: b.Bottom(), Max: b.Top(), Value: p.Value}
		}
		below = NewAABB(b.Left(), b.Right(), p.Value, b.Bottom())
		above = NewAABB(b.Left(), b.Right(), b.Top(), p.Value)
	}
	return below, above, nil
}

func (b AABB) String() string {
	return fmt.Sprintf("[%g..%g]x[%g..%g]", b.Left(), b.Right(), b.Bottom(), b.Top())
}
