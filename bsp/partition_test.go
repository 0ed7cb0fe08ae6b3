package bsp

import (
	"math/rand"
	"testing"
)

func TestClassify(t *testing.T) {
	px := Partition{Dimension: DimensionX, Value: 10}
	py := Partition{Dimension: DimensionY, Value: 10}

	tests := []struct {
		name     string
		p        Partition
		box      AABB
		expected Bucket
	}{
		{"x_below", px, NewAABB(0, 9, 100, 50), Below},
		{"x_above", px, NewAABB(11, 12, 0, -5), Above},
		{"x_straddle", px, NewAABB(5, 15, 1, 0), Intersecting},
		{"x_touch_right_edge", px, NewAABB(0, 10, 1, 0), Intersecting},
		{"x_touch_left_edge", px, NewAABB(10, 12, 1, 0), Intersecting},
		{"y_below", py, NewAABB(50, 60, 9, 0), Below},
		{"y_above", py, NewAABB(0, 1, 20, 10.5), Above},
		{"y_touch_top", py, NewAABB(0, 1, 10, 0), Intersecting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Classify(tt.box); got != tt.expected {
				t.Errorf("Classify = %v, expected %v", got, tt.expected)
			}
		})
	}
}

// A box classified as intersecting must overlap the partition line, which
// is modelled here as a box of zero width spanning the input on the other axis.
func TestClassifyConsistentWithIntersects(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		box := randomBox(rng, 100, 40)
		for _, d := range []Dimension{DimensionX, DimensionY} {
			p := Partition{Dimension: d, Value: rng.Float64()*100 - 50}
			var line AABB
			if d == DimensionX {
				line = NewAABB(p.Value, p.Value, box.Top(), box.Bottom())
			} else {
				line = NewAABB(box.Left(), box.Right(), p.Value, p.Value)
			}
			if (p.Classify(box) == Intersecting) != box.Intersects(line) {
				t.Fatalf("classify %v of %v disagrees with intersects", p.Classify(box), box)
			}
		}
	}
}

func TestDimensionOpposite(t *testing.T) {
	if DimensionX.Opposite() != DimensionY || DimensionY.Opposite() != DimensionX {
		t.Error("Opposite does not alternate X and Y")
	}
}
