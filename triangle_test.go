package stlview

import (
	"math"
	"testing"
)

func TestTriangleIsDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Vector
		want       bool
	}{
		{"unit", V(0, 0, 0), V(1, 0, 0), V(0, 1, 0), false},
		{"coincident corners", V(0, 0, 0), V(0, 0, 0), V(0, 1, 0), true},
		{"collinear", V(0, 0, 0), V(1, 0, 0), V(2, 0, 0), true},
		{"collinear diagonal", V(0, 0, 0), V(1, 1, 1), V(3, 3, 3), true},
		{"nan corner", V(0, 0, 0), V(1, 0, 0), V(math.NaN(), 1, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri := NewTriangleForPoints(tt.p1, tt.p2, tt.p3)
			if got := tri.IsDegenerate(); got != tt.want {
				t.Errorf("IsDegenerate() = %v, want %v (area %v)", got, tt.want, tri.Area())
			}
		})
	}
}

func TestTriangleReverseWinding(t *testing.T) {
	tri := NewTriangleForPoints(V(0, 0, 0), V(1, 0, 0), V(0, 1, 0))
	tri.ReverseWinding()
	if tri.V1.Position != V(0, 1, 0) || tri.V2.Position != V(1, 0, 0) || tri.V3.Position != V(0, 0, 0) {
		t.Errorf("positions = %v %v %v", tri.V1.Position, tri.V2.Position, tri.V3.Position)
	}
	if !near(tri.Normal(), V(0, 0, -1)) {
		t.Errorf("Normal() = %v, want (0,0,-1)", tri.Normal())
	}
	for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
		if !near(v.Normal, V(0, 0, -1)) {
			t.Errorf("vertex normal = %v, want (0,0,-1)", v.Normal)
		}
	}
}
