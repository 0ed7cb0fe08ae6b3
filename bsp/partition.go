package bsp

// Dimension selects the axis a partition plane is perpendicular to.
type Dimension int

const (
	DimensionX Dimension = iota
	DimensionY
)

// Opposite returns the other axis. Tree levels alternate between the two.
func (d Dimension) Opposite() Dimension {
	if d == DimensionX {
		return DimensionY
	}
	return DimensionX
}

func (d Dimension) String() string {
	if d == DimensionX {
		return "X"
	}
	return "Y"
}

// Bucket is the side of a partition a box falls on.
type Bucket int

const (
	Below Bucket = iota
	Intersecting
	Above
)

func (b Bucket) String() string {
	switch b {
	case Below:
		return "below"
	case Above:
		return "above"
	default:
		return "intersecting"
	}
}

// Partition is a splitting line at Value on the Dimension axis.
type Partition struct {
	Dimension Dimension
	Value     float64
}

// Classify places box relative to the partition line. A box touching the
// line is Intersecting so that no pair is lost across a split.
func (p Partition) Classify(box AABB) Bucket {
	lo, hi := box.Left(), box.Right()
	if p.Dimension == DimensionY {
		lo, hi = box.Bottom(), box.Top()
	}
	switch {
	case hi < p.Value:
		return Below
	case lo > p.Value:
		return Above
	default:
		return Intersecting
	}
}

// extent returns the lower and upper edges of box on d.
func extent(box AABB, d Dimension) (lo, hi float64) {
	if d == DimensionX {
		return box.Left(), box.Right()
	}
	return box.Bottom(), box.Top()
}

// farEdge returns the edge a node's own entries are sorted by: the top edge
// for X split nodes and the right edge for Y split nodes.
func farEdge(box AABB, d Dimension) float64 {
	if d == DimensionX {
		return box.Top()
	}
	return box.Right()
}
