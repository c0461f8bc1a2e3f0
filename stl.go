package stlview

import (
	"bytes"
	"fmt"
	"io"

	"github.com/netisu/stlview/stl"
)

func LoadSTL(path string) (*Mesh, error) {
	m, err := stl.DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("stlview: load %s: %w", path, err)
	}
	Logger().Debug("stl decoded", "path", path, "triangles", m.TriangleCount(), "vertex_bytes", len(m.Vertices)*stl.VertexStride)
	return NewMeshFromSTL(m)
}

func LoadSTLFromBytes(b []byte) (*Mesh, error) {
	return LoadSTLFromReader(bytes.NewReader(b))
}

func LoadSTLFromReader(r io.Reader) (*Mesh, error) {
	m, err := stl.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("stlview: load stl: %w", err)
	}
	return NewMeshFromSTL(m)
}

// NewMeshFromSTL hands a decoded triangle list to the renderer. Indices are
// consumed three at a time; the decoded mesh is only read. Zero normals,
// common in exporter output, are replaced by the geometric face normal.
func NewMeshFromSTL(m *stl.Mesh) (*Mesh, error) {
	if len(m.Indices)%3 != 0 {
		return nil, fmt.Errorf("stlview: index count %d is not a multiple of 3", len(m.Indices))
	}
	triangles := make([]*Triangle, 0, len(m.Indices)/3)
	for i := 0; i < len(m.Indices); i += 3 {
		var vs [3]Vertex
		for c := range vs {
			idx := m.Indices[i+c]
			if int(idx) >= len(m.Vertices) {
				return nil, fmt.Errorf("stlview: triangle %d: index %d out of range (%d vertices)", i/3, idx, len(m.Vertices))
			}
			sv := m.Vertices[idx]
			vs[c] = Vertex{
				Position: vectorFromFloat32(sv.Position),
				Normal:   vectorFromFloat32(sv.Normal),
				Texture:  Vector{float64(sv.TexCoord[0]), float64(sv.TexCoord[1]), 0},
				Color:    colorFromFloat32(sv.Color),
			}
		}
		triangles = append(triangles, NewTriangle(vs[0], vs[1], vs[2]))
	}
	Logger().Debug("mesh uploaded", "vertices", len(m.Vertices), "triangles", len(triangles))
	return NewTriangleMesh(triangles), nil
}
