package stlview

// Vertex carries the per-corner attributes through the pipeline. Output is
// the clip-space position written by the shader's vertex stage.
type Vertex struct {
	Position Vector
	Normal   Vector
	Texture  Vector
	Color    Color
	Output   VectorW
}

func (a Vertex) Outside() bool {
	return a.Output.Outside()
}

func (a Vertex) Lerp(b Vertex, t float64) Vertex {
	return Vertex{
		Position: a.Position.Lerp(b.Position, t),
		Normal:   a.Normal.Lerp(b.Normal, t).Normalize(),
		Texture:  a.Texture.Lerp(b.Texture, t),
		Color:    a.Color.Lerp(b.Color, t),
		Output:   a.Output.Lerp(b.Output, t),
	}
}

// InterpolateVertexes blends three vertices with perspective-corrected
// barycentric weights b; b.W is the reciprocal of the weight sum.
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = InterpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = InterpolateVectors(v1.Normal, v2.Normal, v3.Normal, b).Normalize()
	v.Texture = InterpolateVectors(v1.Texture, v2.Texture, v3.Texture, b)
	v.Color = InterpolateColors(v1.Color, v2.Color, v3.Color, b)
	v.Output = InterpolateVectorWs(v1.Output, v2.Output, v3.Output, b)
	return v
}

func InterpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := v1.MulScalar(b.X)
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func InterpolateVectorWs(v1, v2, v3, b VectorW) VectorW {
	n := v1.MulScalar(b.X)
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func InterpolateColors(v1, v2, v3 Color, b VectorW) Color {
	n := v1.MulScalar(b.X)
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}
