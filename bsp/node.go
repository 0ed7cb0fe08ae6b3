package bsp

import (
	"fmt"
	"slices"

	"github.com/automoto/bsp2d/shared/gamemath"
	"golang.org/x/sync/errgroup"
)

// maxLeafEntries is the largest entry count stored in a leaf without
// splitting further.
const maxLeafEntries = 2

// noChild marks a missing child index.
const noChild = -1

// node is one slot of the tree arena. Internal nodes own only the entries
// straddling their partition; everything else lives in the children.
type node struct {
	entries   []Entry
	box       AABB // merged box of entries, valid when hasBox
	hasBox    bool
	partition Partition
	left      int
	right     int
}

func (n *node) isLeaf() bool {
	return n.left == noChild
}

// buildTask is a pending node of the iterative builder.
type buildTask struct {
	index   int
	entries []Entry
	dim     Dimension
}

// buildArena builds the subtree for entries into a fresh arena whose root is
// at index 0. The build uses an explicit stack so degenerate inputs cannot
// exhaust the call stack.
func buildArena(entries []Entry, dim Dimension) []node {
	nodes := []node{{left: noChild, right: noChild}}
	stack := []buildTask{{index: 0, entries: entries, dim: dim}}

	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(task.entries) <= maxLeafEntries {
			nodes[task.index] = leafNode(task.entries)
			continue
		}

		n, below, above := splitNode(task.entries, task.dim)
		n.left = len(nodes)
		n.right = len(nodes) + 1
		nodes = append(nodes, node{left: noChild, right: noChild}, node{left: noChild, right: noChild})
		nodes[task.index] = n

		next := task.dim.Opposite()
		stack = append(stack,
			buildTask{index: n.right, entries: above, dim: next},
			buildTask{index: n.left, entries: below, dim: next},
		)
	}
	return nodes
}

// buildArenaParallel splits large inputs and builds both halves
// concurrently. Subtrees smaller than threshold fall back to buildArena.
// The resulting tree has the same shape as a serial build. A panic inside
// a worker comes back as a *buildPanic error.
func buildArenaParallel(entries []Entry, dim Dimension, threshold int) ([]node, error) {
	if threshold <= 0 || len(entries) < threshold || len(entries) <= maxLeafEntries {
		return buildArena(entries, dim), nil
	}

	n, below, above := splitNode(entries, dim)

	var left, right []node
	var g errgroup.Group
	g.Go(func() (err error) {
		defer recoverBuild(&err)
		left, err = buildArenaParallel(below, dim.Opposite(), threshold)
		return err
	})
	g.Go(func() (err error) {
		defer recoverBuild(&err)
		right, err = buildArenaParallel(above, dim.Opposite(), threshold)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	nodes := make([]node, 0, 1+len(left)+len(right))
	n.left = 1
	n.right = 1 + len(left)
	nodes = append(nodes, n)
	nodes = appendShifted(nodes, left, n.left)
	nodes = appendShifted(nodes, right, n.right)
	return nodes, nil
}

// buildPanic carries a panic raised on a build worker back to the
// goroutine that asked for the tree.
type buildPanic struct {
	value any
}

func (p *buildPanic) Error() string {
	return fmt.Sprintf("bsp: build worker panicked: %v", p.value)
}

func recoverBuild(err *error) {
	if r := recover(); r != nil {
		*err = &buildPanic{value: r}
	}
}

// appendShifted appends sub to dst, rebasing its child indices by offset.
func appendShifted(dst, sub []node, offset int) []node {
	for _, n := range sub {
		if !n.isLeaf() {
			n.left += offset
			n.right += offset
		}
		dst = append(dst, n)
	}
	return dst
}

func leafNode(entries []Entry) node {
	n := node{entries: entries, left: noChild, right: noChild}
	n.box, n.hasBox = mergedEntries(entries)
	return n
}

// splitNode computes the partition for entries on dim and distributes them:
// Below entries go left, Above entries go right and straddling entries stay
// on the returned node, sorted by their far edge on the opposite axis.
func splitNode(entries []Entry, dim Dimension) (n node, below, above []Entry) {
	lo, hi := extent(entries[0].AABB, dim)
	for _, e := range entries[1:] {
		elo, ehi := extent(e.AABB, dim)
		lo = min(lo, elo)
		hi = max(hi, ehi)
	}

	p := Partition{Dimension: dim, Value: gamemath.Lerp(lo, hi, 0.5)}

	var belowCount, midCount, aboveCount int
	for _, e := range entries {
		switch p.Classify(e.AABB) {
		case Below:
			belowCount++
		case Above:
			aboveCount++
		default:
			midCount++
		}
	}

	below = make([]Entry, 0, belowCount)
	above = make([]Entry, 0, aboveCount)
	mid := make([]Entry, 0, midCount)
	for _, e := range entries {
		switch p.Classify(e.AABB) {
		case Below:
			below = append(below, e)
		case Above:
			above = append(above, e)
		default:
			mid = append(mid, e)
		}
	}

	slices.SortFunc(mid, func(a, b Entry) int {
		fa, fb := farEdge(a.AABB, dim), farEdge(b.AABB, dim)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	})

	n = node{entries: mid, partition: p}
	n.box, n.hasBox = mergedEntries(mid)
	return n, below, above
}

func mergedEntries(entries []Entry) (AABB, bool) {
	if len(entries) == 0 {
		return AABB{}, false
	}
	box := entries[0].AABB
	for _, e := range entries[1:] {
		box = box.Merge(e.AABB)
	}
	return box, true
}
