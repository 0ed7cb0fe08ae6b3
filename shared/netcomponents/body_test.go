package netcomponents

import "testing"

func TestLerpNetBody(t *testing.T) {
	from := NetBodyData{X: 0, Y: 10, VX: 1, Shape: ShapeCircle, Size: 2}
	to := NetBodyData{X: 10, Y: 20, VX: 5, Shape: ShapeSquare, Size: 4, Static: true}

	tests := []struct {
		name string
		t    float64
		x, y float64
	}{
		{"start", 0, 0, 10},
		{"half", 0.5, 5, 15},
		{"end", 1, 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpNetBody(from, to, tt.t)
			if got.X != tt.x || got.Y != tt.y {
				t.Errorf("position = (%g, %g), want (%g, %g)", got.X, got.Y, tt.x, tt.y)
			}
			if got.VX != to.VX || got.Shape != to.Shape || got.Size != to.Size || got.Static != to.Static {
				t.Errorf("non-positional fields should snap to target, got %+v", *got)
			}
		})
	}
}

func TestNetBodyContains(t *testing.T) {
	circle := NetBodyData{X: 1, Y: 1, Shape: ShapeCircle, Size: 2}
	square := NetBodyData{Shape: ShapeSquare, Size: 4}

	tests := []struct {
		name string
		body NetBodyData
		x, y float64
		want bool
	}{
		{"circle center", circle, 1, 1, true},
		{"circle boundary", circle, 3, 1, true},
		{"circle box corner", circle, 2.9, 2.9, false},
		{"square corner", square, -2, 2, true},
		{"square outside", square, 0, 2.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.body.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%g, %g) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
