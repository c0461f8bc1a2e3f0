package stlview

// SolidColorShader fills every fragment with one color. Useful for
// silhouettes and wireframe overlays.
type SolidColorShader struct {
	ViewProjection Matrix
	Color          Color
}

func NewSolidColorShader(matrix Matrix, c Color) *SolidColorShader {
	return &SolidColorShader{ViewProjection: matrix, Color: c}
}

func (s *SolidColorShader) Matrix() Matrix     { return s.ViewProjection }
func (s *SolidColorShader) SetMatrix(m Matrix) { s.ViewProjection = m }

func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	v.Output = s.ViewProjection.MulPositionW(v.Position)
	return v
}

func (s *SolidColorShader) Fragment(v Vertex, fromObject *Object) Color {
	return s.Color
}
