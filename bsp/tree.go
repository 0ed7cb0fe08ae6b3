package bsp

import "errors"

// Tree is a BSP tree over a fixed set of entries. It is built once per
// simulation tick and never mutated afterwards.
type Tree struct {
	entries []Entry
	nodes   []node
}

// Options tune tree construction.
type Options struct {
	// ParallelThreshold is the subtree size at or above which both halves
	// are built concurrently. Zero builds serially.
	ParallelThreshold int
}

// Build constructs a tree over entries, splitting the root on X.
func Build(entries []Entry) *Tree {
	return BuildWithOptions(entries, Options{})
}

// BuildWithOptions is Build with construction options.
func BuildWithOptions(entries []Entry, opts Options) *Tree {
	own := make([]Entry, len(entries))
	copy(own, entries)

	work := make([]Entry, len(entries))
	copy(work, entries)

	nodes, err := buildArenaParallel(work, DimensionX, opts.ParallelThreshold)
	if err != nil {
		// Re-raise worker panics on the caller's goroutine.
		var bp *buildPanic
		if errors.As(err, &bp) {
			panic(bp.value)
		}
		panic(err)
	}
	return &Tree{entries: own, nodes: nodes}
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int {
	return len(t.entries)
}

// NodeCount returns the number of arena nodes, leaves included.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

// InternalCollisions returns every pair of entry ids whose boxes overlap.
// Each overlapping pair is reported twice, once in each order.
func (t *Tree) InternalCollisions() [][2]int {
	var pairs [][2]int
	stack := make([]int, 0, 32)

	for _, e := range t.entries {
		stack = append(stack[:0], 0)
		for len(stack) > 0 {
			n := &t.nodes[stack[len(stack)-1]]
			stack = stack[:len(stack)-1]

			if !n.hasBox || e.AABB.Intersects(n.box) {
				for _, o := range n.entries {
					if o.ID == e.ID {
						continue
					}
					if e.AABB.Intersects(o.AABB) {
						pairs = append(pairs, [2]int{e.ID, o.ID})
					}
				}
			}

			stack = t.pushChildren(stack, n, e.AABB)
		}
	}
	return pairs
}

// Query returns the ids of all entries whose boxes overlap box.
func (t *Tree) Query(box AABB) []int {
	var ids []int
	stack := []int{0}
	for len(stack) > 0 {
		n := &t.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]

		if !n.hasBox || box.Intersects(n.box) {
			for _, o := range n.entries {
				if box.Intersects(o.AABB) {
					ids = append(ids, o.ID)
				}
			}
		}
		stack = t.pushChildren(stack, n, box)
	}
	return ids
}

func (t *Tree) pushChildren(stack []int, n *node, box AABB) []int {
	if n.isLeaf() {
		return stack
	}
	switch n.partition.Classify(box) {
	case Below:
		return append(stack, n.left)
	case Above:
		return append(stack, n.right)
	default:
		return append(stack, n.left, n.right)
	}
}

// NodeInfo describes one tree node for diagnostics and debug drawing.
type NodeInfo struct {
	Depth        int
	Region       AABB // space covered by the node
	Partition    Partition
	HasPartition bool
	Entries      int
}

// Walk visits every node depth first with the region of space it covers.
// The root region is the merged box of all entries; child regions come from
// splitting the parent region at its partition. An empty tree visits nothing.
func (t *Tree) Walk(fn func(NodeInfo)) error {
	root, ok := mergedEntries(t.entries)
	if !ok {
		return nil
	}

	type visit struct {
		index  int
		depth  int
		region AABB
	}
	stack := []visit{{index: 0, region: root}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[v.index]

		info := NodeInfo{Depth: v.depth, Region: v.region, Entries: len(n.entries)}
		if !n.isLeaf() {
			info.Partition = n.partition
			info.HasPartition = true

			below, above, err := v.region.Partition(n.partition)
			if err != nil {
				return err
			}
			stack = append(stack,
				visit{index: n.right, depth: v.depth + 1, region: above},
				visit{index: n.left, depth: v.depth + 1, region: below},
			)
		}
		fn(info)
	}
	return nil
}

// Depth returns the number of levels in the tree. A single leaf has depth 1.
func (t *Tree) Depth() int {
	depth := 0
	type visit struct{ index, depth int }
	stack := []visit{{0, 1}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		depth = max(depth, v.depth)
		n := &t.nodes[v.index]
		if !n.isLeaf() {
			stack = append(stack, visit{n.left, v.depth + 1}, visit{n.right, v.depth + 1})
		}
	}
	return depth
}
