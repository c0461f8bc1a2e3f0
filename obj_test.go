package stlview

import (
	"strings"
	"testing"
)

func TestLoadOBJ(t *testing.T) {
	const src = `# unit square
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
f -4 -3 -2
`
	m, err := LoadOBJFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadOBJFromReader() error = %v", err)
	}
	if len(m.Triangles) != 3 {
		t.Fatalf("got %d triangles, want 3 (quad fan + triangle)", len(m.Triangles))
	}
	first := m.Triangles[0]
	if first.V3.Position != V(1, 1, 0) || first.V3.Texture != V(1, 1, 0) {
		t.Errorf("first triangle V3 = %+v", first.V3)
	}
	if first.V1.Normal != V(0, 0, 1) {
		t.Errorf("normal = %v", first.V1.Normal)
	}
	// relative indices resolve against the vertices seen so far
	last := m.Triangles[2]
	if last.V1.Position != V(0, 0, 0) || last.V3.Position != V(1, 1, 0) {
		t.Errorf("relative face = %v %v", last.V1.Position, last.V3.Position)
	}
	if got := m.BoundingBox(); got.Max != V(1, 1, 0) {
		t.Errorf("BoundingBox().Max = %v", got.Max)
	}
}

func TestLoadOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad float", "v 0 zero 0\n"},
		{"short vertex", "v 0 0\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n"},
		{"degenerate face", "v 0 0 0\nf 1 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadOBJFromBytes([]byte(tt.src)); err == nil {
				t.Error("error = nil")
			}
		})
	}
}
