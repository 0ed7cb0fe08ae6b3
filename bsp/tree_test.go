package bsp

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"golang.org/x/sync/errgroup"
)

func randomEntries(rng *rand.Rand, n int, span, maxSize float64) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{ID: i, AABB: randomBox(rng, span, maxSize)}
	}
	return entries
}

// normalizePairs orders each pair low id first and drops duplicates.
func normalizePairs(pairs [][2]int) [][2]int {
	seen := make(map[[2]int]struct{}, len(pairs))
	out := make([][2]int, 0, len(pairs))
	for _, p := range pairs {
		if p[0] > p[1] {
			p[0], p[1] = p[1], p[0]
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	slices.SortFunc(out, comparePairs)
	return out
}

func comparePairs(a, b [2]int) int {
	if a[0] != b[0] {
		return a[0] - b[0]
	}
	return a[1] - b[1]
}

func bruteForcePairs(entries []Entry) [][2]int {
	var out [][2]int
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].AABB.Intersects(entries[j].AABB) {
				out = append(out, [2]int{entries[i].ID, entries[j].ID})
			}
		}
	}
	return normalizePairs(out)
}

func TestInternalCollisionsMatchesBruteForce(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		span    float64
		maxSize float64
	}{
		{"sparse", 300, 2000, 20},
		{"dense", 200, 200, 40},
		{"clustered", 150, 30, 10},
		{"tiny", 3, 10, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(tt.n)))
			entries := randomEntries(rng, tt.n, tt.span, tt.maxSize)

			got := normalizePairs(Build(entries).InternalCollisions())
			want := bruteForcePairs(entries)
			if !slices.Equal(got, want) {
				t.Fatalf("tree found %d pairs, brute force %d", len(got), len(want))
			}
		})
	}
}

func TestInternalCollisionsReportsBothOrders(t *testing.T) {
	entries := []Entry{
		{ID: 1, AABB: NewAABB(0, 10, 10, 0)},
		{ID: 2, AABB: NewAABB(5, 15, 10, 0)},
		{ID: 3, AABB: NewAABB(100, 110, 10, 0)},
	}
	pairs := Build(entries).InternalCollisions()
	if !slices.Contains(pairs, [2]int{1, 2}) || !slices.Contains(pairs, [2]int{2, 1}) {
		t.Errorf("pairs = %v, want both (1,2) and (2,1)", pairs)
	}
	for _, p := range pairs {
		if p[0] == 3 || p[1] == 3 {
			t.Errorf("unexpected pair %v with separated entry", p)
		}
		if p[0] == p[1] {
			t.Errorf("self pair %v", p)
		}
	}
}

func TestParallelBuildMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	entries := randomEntries(rng, 2000, 3000, 30)

	serial := Build(entries).InternalCollisions()
	parallel := BuildWithOptions(entries, Options{ParallelThreshold: 64}).InternalCollisions()
	if !slices.Equal(serial, parallel) {
		t.Fatalf("parallel build produced %d pairs, serial %d", len(parallel), len(serial))
	}
}

func TestEmptyTree(t *testing.T) {
	tree := Build(nil)
	if pairs := tree.InternalCollisions(); len(pairs) != 0 {
		t.Errorf("empty tree pairs = %v", pairs)
	}
	if ids := tree.Query(NewAABB(-1, 1, 1, -1)); len(ids) != 0 {
		t.Errorf("empty tree query = %v", ids)
	}
	if tree.Depth() != 1 {
		t.Errorf("empty tree depth = %d, want 1", tree.Depth())
	}
}

func TestConstructionInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	entries := randomEntries(rng, 500, 1000, 25)
	tree := Build(entries)

	seen := make(map[int]int)
	var check func(index int, dim Dimension)
	check = func(index int, dim Dimension) {
		n := &tree.nodes[index]
		for _, e := range n.entries {
			seen[e.ID]++
		}
		if n.isLeaf() {
			if len(n.entries) > maxLeafEntries {
				t.Errorf("leaf with %d entries", len(n.entries))
			}
			return
		}
		if n.partition.Dimension != dim {
			t.Errorf("node split on %v, want %v", n.partition.Dimension, dim)
		}
		for i, e := range n.entries {
			if n.partition.Classify(e.AABB) != Intersecting {
				t.Errorf("internal node owns non-straddling entry %d", e.ID)
			}
			if i > 0 && farEdge(n.entries[i-1].AABB, dim) > farEdge(e.AABB, dim) {
				t.Errorf("node entries not sorted by far edge")
			}
		}
		check(n.left, dim.Opposite())
		check(n.right, dim.Opposite())
	}
	check(0, DimensionX)

	if len(seen) != len(entries) {
		t.Fatalf("tree holds %d distinct entries, want %d", len(seen), len(entries))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("entry %d stored %d times", id, count)
		}
	}
}

func TestQuery(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	entries := randomEntries(rng, 400, 1000, 30)
	tree := Build(entries)

	window := NewAABB(-100, 100, 100, -100)
	got := tree.Query(window)
	slices.Sort(got)

	var want []int
	for _, e := range entries {
		if window.Intersects(e.AABB) {
			want = append(want, e.ID)
		}
	}
	if !slices.Equal(got, want) {
		t.Errorf("Query returned %d ids, want %d", len(got), len(want))
	}
}

func TestWalkVisitsEveryNode(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	entries := randomEntries(rng, 300, 800, 20)
	tree := Build(entries)

	var visited, maxDepth int
	err := tree.Walk(func(info NodeInfo) {
		visited++
		maxDepth = max(maxDepth, info.Depth+1)
		if info.HasPartition {
			wantDim := DimensionX
			if info.Depth%2 == 1 {
				wantDim = DimensionY
			}
			if info.Partition.Dimension != wantDim {
				t.Errorf("depth %d split on %v", info.Depth, info.Partition.Dimension)
			}
		}
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if visited != tree.NodeCount() {
		t.Errorf("visited %d nodes, tree has %d", visited, tree.NodeCount())
	}
	if maxDepth != tree.Depth() {
		t.Errorf("walk depth %d, Depth() %d", maxDepth, tree.Depth())
	}
}

func TestBuildWorkerPanicIsReturned(t *testing.T) {
	var g errgroup.Group
	g.Go(func() (err error) {
		defer recoverBuild(&err)
		panic("bad box")
	})

	err := g.Wait()
	var bp *buildPanic
	if !errors.As(err, &bp) {
		t.Fatalf("Wait() = %v, want *buildPanic", err)
	}
	if bp.value != "bad box" {
		t.Errorf("panic value = %v, want %q", bp.value, "bad box")
	}
}

func TestParallelBuildReportsNoError(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	entries := randomEntries(rng, 500, 1000, 20)
	nodes, err := buildArenaParallel(entries, DimensionX, 32)
	if err != nil {
		t.Fatalf("buildArenaParallel: %v", err)
	}
	if len(nodes) == 0 {
		t.Fatal("no nodes built")
	}
}
