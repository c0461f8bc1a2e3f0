package stlview

import (
	"github.com/netisu/stlview/stl"
)

type Mesh struct {
	Triangles []*Triangle
	box       *Box
}

func NewEmptyMesh() *Mesh {
	return &Mesh{}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}

func (m *Mesh) dirty() {
	m.box = nil
}

func (m *Mesh) Copy() *Mesh {
	triangles := make([]*Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		a := *t
		triangles[i] = &a
	}
	return NewTriangleMesh(triangles)
}

func (m *Mesh) Add(b *Mesh) {
	m.Triangles = append(m.Triangles, b.Triangles...)
	m.dirty()
}

func (m *Mesh) BoundingBox() Box {
	if m.box == nil {
		box := EmptyBox
		for _, t := range m.Triangles {
			box = box.Extend(t.BoundingBox())
		}
		m.box = &box
	}
	return *m.box
}

func (m *Mesh) SurfaceArea() float64 {
	var a float64
	for _, t := range m.Triangles {
		a += t.Area()
	}
	return a
}

func (m *Mesh) Transform(matrix Matrix) {
	for _, t := range m.Triangles {
		t.Transform(matrix)
	}
	m.dirty()
}

func (m *Mesh) FitInside(box Box, anchor Vector) Matrix {
	scale := box.Size().Div(m.BoundingBox().Size()).MinComponent()
	extra := box.Size().Sub(m.BoundingBox().Size().MulScalar(scale))
	matrix := Identity()
	matrix = matrix.Translate(m.BoundingBox().Min.Negate())
	matrix = matrix.Scale(Vector{scale, scale, scale})
	matrix = matrix.Translate(box.Min.Add(extra.Mul(anchor)))
	m.Transform(matrix)
	return matrix
}

// BiUnitCube centers the mesh and scales it into [-1, 1] on every axis.
func (m *Mesh) BiUnitCube() Matrix {
	const r = 1
	return m.FitInside(Box{Vector{-r, -r, -r}, Vector{r, r, r}}, Vector{0.5, 0.5, 0.5})
}

func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
}

func (m *Mesh) ReverseWinding() {
	for _, t := range m.Triangles {
		t.ReverseWinding()
	}
}

// Indexed flattens the mesh back into a non-welded triangle list.
func (m *Mesh) Indexed() *stl.Mesh {
	out := &stl.Mesh{
		Vertices: make([]stl.Vertex, 0, 3*len(m.Triangles)),
		Indices:  make([]uint32, 0, 3*len(m.Triangles)),
	}
	for _, t := range m.Triangles {
		for _, v := range [3]Vertex{t.V1, t.V2, t.V3} {
			out.Indices = append(out.Indices, uint32(len(out.Vertices)))
			out.Vertices = append(out.Vertices, stl.Vertex{
				Position: v.Position.float32s(),
				Color:    v.Color.float32s(),
				Normal:   v.Normal.float32s(),
				TexCoord: [2]float32{float32(v.Texture.X), float32(v.Texture.Y)},
			})
		}
	}
	return out
}
