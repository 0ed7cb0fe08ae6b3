// Package broadphase finds candidate body pairs whose bounding boxes
// overlap. The narrow phase in package collision decides which of them
// actually touch.
package broadphase

import (
	"fmt"

	"github.com/automoto/bsp2d/bsp"
)

// Finder reports every pair of entries whose boxes intersect. Each
// unordered pair appears at least once; implementations may report both
// orders. Pairs hold entry IDs.
type Finder interface {
	Pairs(entries []bsp.Entry) [][2]int
}

// Names accepted by New.
const (
	NameBSP   = "bsp"
	NameGrid  = "grid"
	NameBrute = "brute"
)

// Options configures the finders built by New.
type Options struct {
	ParallelThreshold int

	CellSize      int
	MinX, MinY    float64
	Width, Height int
}

// New returns the finder registered under name.
func New(name string, opts Options) (Finder, error) {
	switch name {
	case NameBSP, "":
		return &BSP{Options: bsp.Options{ParallelThreshold: opts.ParallelThreshold}}, nil
	case NameGrid:
		g, err := NewGrid(opts.MinX, opts.MinY, opts.Width, opts.Height, opts.CellSize)
		if err != nil {
			return nil, err
		}
		return g, nil
	case NameBrute:
		return BruteForce{}, nil
	default:
		return nil, fmt.Errorf("unknown broad phase %q", name)
	}
}

// BSP rebuilds a bsp.Tree from the entries on every call.
type BSP struct {
	Options bsp.Options

	last *bsp.Tree
}

// Pairs reports each overlapping pair twice, once in each order.
func (b *BSP) Pairs(entries []bsp.Entry) [][2]int {
	b.last = bsp.BuildWithOptions(entries, b.Options)
	return b.last.InternalCollisions()
}

// Tree returns the tree built by the last Pairs call, or nil.
func (b *BSP) Tree() *bsp.Tree {
	return b.last
}

// BruteForce tests every pair. It is the reference the other finders are
// checked against.
type BruteForce struct{}

func (BruteForce) Pairs(entries []bsp.Entry) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].AABB.Intersects(entries[j].AABB) {
				pairs = append(pairs, [2]int{entries[i].ID, entries[j].ID})
			}
		}
	}
	return pairs
}
