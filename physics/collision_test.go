package physics

import (
	"testing"

	"github.com/lixenwraith/hectic/vmath"
)

// TestIsTouching covers overlap, separation, edge contact and the zero-size rule
func TestIsTouching(t *testing.T) {
	tests := []struct {
		name         string
		posA, halfA  vmath.Vec2
		posB, halfB  vmath.Vec2
		wantTouching bool
	}{
		{"overlap", vmath.V2(0, 0), vmath.V2(10, 10), vmath.V2(15, 5), vmath.V2(10, 10), true},
		{"separated x", vmath.V2(0, 0), vmath.V2(10, 10), vmath.V2(25, 0), vmath.V2(10, 10), false},
		{"separated y", vmath.V2(0, 0), vmath.V2(10, 10), vmath.V2(0, -21), vmath.V2(10, 10), false},
		{"edge contact", vmath.V2(0, 0), vmath.V2(10, 10), vmath.V2(20, 0), vmath.V2(10, 10), true},
		{"point inside box", vmath.V2(5, 5), vmath.V2(0, 0), vmath.V2(0, 0), vmath.V2(10, 10), true},
		{"point outside box", vmath.V2(50, 5), vmath.V2(0, 0), vmath.V2(0, 0), vmath.V2(10, 10), false},
		{"zero zero coincident", vmath.V2(3, 3), vmath.V2(0, 0), vmath.V2(3, 3), vmath.V2(0, 0), false},
	}

	for _, tt := range tests {
		if got := IsTouching(tt.posA, tt.halfA, tt.posB, tt.halfB); got != tt.wantTouching {
			t.Errorf("%s: IsTouching = %v, want %v", tt.name, got, tt.wantTouching)
		}
		if got := IsTouching(tt.posB, tt.halfB, tt.posA, tt.halfA); got != tt.wantTouching {
			t.Errorf("%s: IsTouching not symmetric", tt.name)
		}
	}
}

// TestContactPoint verifies the smaller box's position wins, with ties going to the first box
func TestContactPoint(t *testing.T) {
	big, small := vmath.V2(0, 0), vmath.V2(5, 5)
	if got := ContactPoint(big, vmath.V2(20, 20), small, vmath.V2(2, 2)); got != small {
		t.Errorf("Expected smaller box position %+v, got %+v", small, got)
	}
	if got := ContactPoint(small, vmath.V2(2, 2), big, vmath.V2(20, 20)); got != small {
		t.Errorf("Expected smaller box position %+v, got %+v", small, got)
	}
	if got := ContactPoint(big, vmath.V2(4, 4), small, vmath.V2(4, 4)); got != big {
		t.Errorf("Expected tie to resolve to first box, got %+v", got)
	}
}

// TestMoveTowards verifies stepping and exact arrival
func TestMoveTowards(t *testing.T) {
	pos, arrived := MoveTowards(vmath.V2(0, 0), vmath.V2(10, 0), 4)
	if arrived || pos != vmath.V2(4, 0) {
		t.Errorf("Expected (4,0) not arrived, got %+v arrived=%v", pos, arrived)
	}

	target := vmath.V2(3, 4)
	pos, arrived = MoveTowards(vmath.V2(0, 0), target, 5)
	if !arrived || pos != target {
		t.Errorf("Expected exact arrival at %+v, got %+v", target, pos)
	}
}
