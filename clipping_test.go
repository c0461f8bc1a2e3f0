package stlview

import "testing"

func clipVertex(x, y, z, w float64) Vertex {
	return Vertex{Output: VectorW{x, y, z, w}, Normal: V(0, 0, 1)}
}

func insideVolume(v VectorW) bool {
	const slack = 1e-9
	return v.X >= -v.W-slack && v.X <= v.W+slack &&
		v.Y >= -v.W-slack && v.Y <= v.W+slack &&
		v.Z >= -v.W-slack && v.Z <= v.W+slack
}

func TestClipTriangle(t *testing.T) {
	tests := []struct {
		name    string
		tri     Triangle
		wantMin int
		wantMax int
	}{
		{
			name:    "inside",
			tri:     Triangle{clipVertex(-0.5, -0.5, 0, 1), clipVertex(0.5, -0.5, 0, 1), clipVertex(0, 0.5, 0, 1)},
			wantMin: 1, wantMax: 1,
		},
		{
			name:    "one corner past right plane",
			tri:     Triangle{clipVertex(-0.5, -0.5, 0, 1), clipVertex(3, 0, 0, 1), clipVertex(-0.5, 0.5, 0, 1)},
			wantMin: 2, wantMax: 2,
		},
		{
			name:    "behind near plane",
			tri:     Triangle{clipVertex(0, 0, -2, 1), clipVertex(0.5, 0, -3, 1), clipVertex(0, 0.5, -2.5, 1)},
			wantMin: 0, wantMax: 0,
		},
		{
			name:    "covers the whole volume",
			tri:     Triangle{clipVertex(-10, -10, 0, 1), clipVertex(10, -10, 0, 1), clipVertex(0, 10, 0, 1)},
			wantMin: 2, wantMax: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipTriangle(&tt.tri)
			if len(got) < tt.wantMin || len(got) > tt.wantMax {
				t.Fatalf("got %d triangles, want %d..%d", len(got), tt.wantMin, tt.wantMax)
			}
			for _, c := range got {
				for _, v := range []Vertex{c.V1, c.V2, c.V3} {
					if !insideVolume(v.Output) {
						t.Errorf("vertex %v outside the view volume", v.Output)
					}
				}
			}
		})
	}
}

func TestClipInterpolatesAttributes(t *testing.T) {
	a := clipVertex(0, 0, 0, 1)
	a.Color = Black
	b := clipVertex(2, 0, 0, 1)
	b.Color = White
	c := clipVertex(0, 0.5, 0, 1)
	c.Color = Black

	for _, tri := range ClipTriangle(&Triangle{a, b, c}) {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			if v.Output.X == 1 && v.Output.Y == 0 {
				// halfway along a-b
				if v.Color.R < 0.49 || v.Color.R > 0.51 {
					t.Errorf("clipped color = %v, want ~0.5", v.Color.R)
				}
				return
			}
		}
	}
	t.Error("no vertex on the clip plane at (1, 0)")
}
