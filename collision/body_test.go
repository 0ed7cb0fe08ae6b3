package collision

import (
	"testing"

	"github.com/automoto/bsp2d/shared/gamemath"
)

func TestContainsPoint(t *testing.T) {
	tests := []struct {
		name  string
		body  *Body
		point gamemath.Vec2
		want  bool
	}{
		{"circle center", body(Circle(2), 1, 1), gamemath.V(1, 1), true},
		{"circle boundary", body(Circle(2), 1, 1), gamemath.V(3, 1), true},
		{"circle box corner", body(Circle(2), 1, 1), gamemath.V(2.9, 2.9), false},
		{"square corner", body(Square(4), 0, 0), gamemath.V(2, -2), true},
		{"square outside", body(Square(4), 0, 0), gamemath.V(2.1, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.body.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}
