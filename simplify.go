package stlview

import (
	"fmt"

	"github.com/fogleman/simplify"
)

// Simplify decimates the mesh to roughly factor times its triangle count
// using quadric error metrics. The result has flat face normals and the
// color of the first source triangle. Texture coordinates are dropped.
func (m *Mesh) Simplify(factor float64) (*Mesh, error) {
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("stlview: simplify factor %v not in (0, 1]", factor)
	}
	if factor == 1 || len(m.Triangles) == 0 {
		return m.Copy(), nil
	}

	color := White
	src := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		if i == 0 {
			color = t.V1.Color
		}
		src[i] = &simplify.Triangle{
			V1: simplifyVector(t.V1.Position),
			V2: simplifyVector(t.V2.Position),
			V3: simplifyVector(t.V3.Position),
		}
	}

	out := simplify.NewMesh(src).Simplify(factor)

	triangles := make([]*Triangle, 0, len(out.Triangles))
	for _, t := range out.Triangles {
		tri := NewTriangleForPoints(meshVector(t.V1), meshVector(t.V2), meshVector(t.V3))
		if tri.IsDegenerate() {
			continue
		}
		tri.SetColor(color)
		triangles = append(triangles, tri)
	}
	Logger().Debug("mesh simplified", "factor", factor, "before", len(m.Triangles), "after", len(triangles))
	return NewTriangleMesh(triangles), nil
}

func simplifyVector(v Vector) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func meshVector(v simplify.Vector) Vector {
	return Vector{v.X, v.Y, v.Z}
}
