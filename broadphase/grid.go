package broadphase

import (
	"fmt"

	"github.com/automoto/bsp2d/bsp"
	"github.com/automoto/bsp2d/tags"
	"github.com/solarlune/resolv"
)

// cellPadding grows every object so boxes that only touch still share a
// cell.
const cellPadding = 1

// Grid buckets entries into a resolv.Space of uniform cells. Entries that
// fall outside the grid bounds are tested against everything by brute
// force, so results never depend on the bounds.
type Grid struct {
	space      *resolv.Space
	minX, minY float64
	width      float64
	height     float64

	objects []*resolv.Object
	seen    []int
}

// NewGrid covers [minX, minX+width] x [minY, minY+height] with square
// cells of cellSize world units.
func NewGrid(minX, minY float64, width, height, cellSize int) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("grid cell size must be positive, got %d", cellSize)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid bounds must be positive, got %dx%d", width, height)
	}
	return &Grid{
		space:  resolv.NewSpace(width, height, cellSize, cellSize),
		minX:   minX,
		minY:   minY,
		width:  float64(width),
		height: float64(height),
	}, nil
}

func (g *Grid) inside(box bsp.AABB) bool {
	return box.Left()-cellPadding >= g.minX &&
		box.Bottom()-cellPadding >= g.minY &&
		box.Right()+cellPadding < g.minX+g.width &&
		box.Top()+cellPadding < g.minY+g.height
}

func (g *Grid) reset() {
	for _, obj := range g.objects {
		g.space.Remove(obj)
	}
	g.objects = g.objects[:0]
}

// Pairs reports each overlapping pair once.
func (g *Grid) Pairs(entries []bsp.Entry) [][2]int {
	g.reset()

	var outside []int
	for i, e := range entries {
		if !g.inside(e.AABB) {
			outside = append(outside, i)
			continue
		}
		ext := e.AABB.Extent()
		obj := resolv.NewObject(
			e.AABB.Left()-g.minX-cellPadding,
			e.AABB.Bottom()-g.minY-cellPadding,
			ext.X+2*cellPadding,
			ext.Y+2*cellPadding,
			tags.ResolvBody,
		)
		obj.Data = i
		g.space.Add(obj)
		g.objects = append(g.objects, obj)
	}

	if cap(g.seen) < len(entries) {
		g.seen = make([]int, len(entries))
	}
	g.seen = g.seen[:len(entries)]
	for i := range g.seen {
		g.seen[i] = -1
	}

	var pairs [][2]int
	for _, obj := range g.objects {
		i := obj.Data.(int)
		check := obj.Check(0, 0, tags.ResolvBody)
		if check == nil {
			continue
		}
		for _, other := range check.Objects {
			j := other.Data.(int)
			if j <= i || g.seen[j] == i {
				continue
			}
			g.seen[j] = i
			if entries[i].AABB.Intersects(entries[j].AABB) {
				pairs = append(pairs, [2]int{entries[i].ID, entries[j].ID})
			}
		}
	}

	// Entries outside the grid pair with everything else.
	isOutside := make(map[int]bool, len(outside))
	for _, i := range outside {
		isOutside[i] = true
	}
	for _, i := range outside {
		for j := range entries {
			if j == i || (isOutside[j] && j < i) {
				continue
			}
			if entries[i].AABB.Intersects(entries[j].AABB) {
				pairs = append(pairs, [2]int{entries[i].ID, entries[j].ID})
			}
		}
	}

	return pairs
}
