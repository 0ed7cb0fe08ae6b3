package systems

import (
	"slices"
	"testing"

	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/shared/gamemath"
)

func TestBodyPairPanicsOnAlias(t *testing.T) {
	a := collision.NewBody(collision.Circle(1), gamemath.V(0, 0), collision.FiniteMass(1))
	b := collision.NewBody(collision.Circle(1), gamemath.V(1, 0), collision.FiniteMass(1))
	arena := &bodyArena{bodies: []*collision.Body{&a, &b}}

	lhs, rhs := arena.bodyPair(1, 0)
	if lhs != &b || rhs != &a {
		t.Error("bodyPair returned the wrong bodies")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected a panic when both sides are the same body")
		}
	}()
	arena.bodyPair(1, 1)
}

func TestArenaEntries(t *testing.T) {
	a := collision.NewBody(collision.Circle(2), gamemath.V(5, 5), collision.FiniteMass(1))
	b := collision.NewBody(collision.Square(4), gamemath.V(-1, 0), collision.InfiniteMass())
	arena := &bodyArena{bodies: []*collision.Body{&a, &b}}

	entries := arena.entries()
	if len(entries) != 2 || entries[0].ID != 0 || entries[1].ID != 1 {
		t.Fatalf("entries = %v", entries)
	}
	if box := entries[1].AABB; box.Left() != -3 || box.Right() != 1 || box.Top() != 2 || box.Bottom() != -2 {
		t.Errorf("square box = %v", box)
	}
}

func TestDedupePairs(t *testing.T) {
	tests := []struct {
		name string
		in   [][2]int
		want [][2]int
	}{
		{"empty", nil, [][2]int{}},
		{"both_orders", [][2]int{{0, 1}, {1, 0}}, [][2]int{{0, 1}}},
		{"keeps_first_order", [][2]int{{2, 1}, {0, 3}, {1, 2}, {3, 0}}, [][2]int{{2, 1}, {0, 3}}},
		{"distinct", [][2]int{{0, 1}, {0, 2}}, [][2]int{{0, 1}, {0, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupePairs(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("dedupePairs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
