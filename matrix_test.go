package stlview

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Vector) bool {
	return a.Sub(b).Length() < 1e-6
}

func TestLookAt(t *testing.T) {
	m := LookAt(V(0, 0, 5), V(0, 0, 0), V(0, 1, 0))
	if got := m.MulPosition(V(0, 0, 5)); !near(got, Vector{}) {
		t.Errorf("eye maps to %v, want origin", got)
	}
	if got := m.MulPosition(V(0, 0, 0)); !near(got, V(0, 0, -5)) {
		t.Errorf("center maps to %v, want (0,0,-5)", got)
	}
	if got := m.MulPosition(V(0, 1, 5)); !near(got, V(0, 1, 0)) {
		t.Errorf("up maps to %v, want +Y", got)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := Perspective(90, 1, 1, 10)
	for _, tt := range []struct {
		z, want float64
	}{
		{-1, -1},
		{-10, 1},
	} {
		v := p.MulPositionW(V(0, 0, tt.z))
		if got := v.Z / v.W; math.Abs(got-tt.want) > eps {
			t.Errorf("z=%v: ndc depth %v, want %v", tt.z, got, tt.want)
		}
	}
	// 90 degrees: the frustum edge at depth 1 is at y = 1
	v := p.MulPositionW(V(0, 1, -1))
	if got := v.Y / v.W; math.Abs(got-1) > eps {
		t.Errorf("frustum edge maps to %v, want 1", got)
	}
}

func TestTransforms(t *testing.T) {
	if got := Translate(V(1, 2, 3)).MulPosition(V(1, 1, 1)); !near(got, V(2, 3, 4)) {
		t.Errorf("Translate = %v", got)
	}
	if got := Scale(V(2, 3, 4)).MulPosition(V(1, 1, 1)); !near(got, V(2, 3, 4)) {
		t.Errorf("Scale = %v", got)
	}
	if got := Rotate(V(0, 0, 1), math.Pi/2).MulPosition(V(1, 0, 0)); !near(got, V(0, 1, 0)) {
		t.Errorf("Rotate = %v", got)
	}
	m := Identity().Scale(V(2, 2, 2)).Translate(V(1, 0, 0))
	if got := m.MulPosition(V(1, 1, 1)); !near(got, V(3, 2, 2)) {
		t.Errorf("chained = %v, want scale then translate", got)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(V(1, 2, 3)).Mul(Rotate(V(1, 1, 0), 0.7)).Mul(Scale(V(2, 2, 2)))
	p := V(0.3, -4, 2)
	if got := m.Inverse().MulPosition(m.MulPosition(p)); !near(got, p) {
		t.Errorf("inverse round trip = %v, want %v", got, p)
	}
	if d := Scale(V(2, 3, 4)).Determinant(); math.Abs(d-24) > eps {
		t.Errorf("Determinant = %v, want 24", d)
	}
}

func TestScreen(t *testing.T) {
	s := Screen(100, 50)
	if got := s.MulPosition(V(-1, 1, -1)); !near(got, V(0, 0, 0)) {
		t.Errorf("top-left = %v", got)
	}
	if got := s.MulPosition(V(1, -1, 1)); !near(got, V(100, 50, 1)) {
		t.Errorf("bottom-right = %v", got)
	}
}

func TestMulBox(t *testing.T) {
	box := Box{V(-1, -1, -1), V(1, 1, 1)}
	got := Translate(V(5, 0, 0)).Mul(Scale(V(2, 1, 1))).MulBox(box)
	want := Box{V(3, -1, -1), V(7, 1, 1)}
	if !near(got.Min, want.Min) || !near(got.Max, want.Max) {
		t.Errorf("MulBox = %+v, want %+v", got, want)
	}
}
