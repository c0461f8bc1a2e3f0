package stlview

// clipPlane is the half-space (v - P) . N > 0 in homogeneous clip space.
type clipPlane struct {
	P, N VectorW
}

var clipPlanes = []clipPlane{
	{VectorW{1, 0, 0, 1}, VectorW{-1, 0, 0, 1}},
	{VectorW{-1, 0, 0, 1}, VectorW{1, 0, 0, 1}},
	{VectorW{0, 1, 0, 1}, VectorW{0, -1, 0, 1}},
	{VectorW{0, -1, 0, 1}, VectorW{0, 1, 0, 1}},
	{VectorW{0, 0, 1, 1}, VectorW{0, 0, -1, 1}},
	{VectorW{0, 0, -1, 1}, VectorW{0, 0, 1, 1}},
}

func (p clipPlane) distance(v VectorW) float64 {
	return v.Sub(p.P).Dot(p.N)
}

// ClipTriangle clips t against the view volume and fans the resulting
// polygon back into triangles. Attributes are interpolated linearly in clip
// space.
func ClipTriangle(t *Triangle) []*Triangle {
	poly := []Vertex{t.V1, t.V2, t.V3}
	for _, plane := range clipPlanes {
		poly = sutherlandHodgman(poly, plane)
		if len(poly) < 3 {
			return nil
		}
	}
	result := make([]*Triangle, 0, len(poly)-2)
	for i := 2; i < len(poly); i++ {
		result = append(result, &Triangle{poly[0], poly[i-1], poly[i]})
	}
	return result
}

func sutherlandHodgman(poly []Vertex, plane clipPlane) []Vertex {
	out := make([]Vertex, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	dPrev := plane.distance(prev.Output)
	for _, cur := range poly {
		dCur := plane.distance(cur.Output)
		if dCur > 0 {
			if dPrev <= 0 {
				out = append(out, prev.Lerp(cur, dPrev/(dPrev-dCur)))
			}
			out = append(out, cur)
		} else if dPrev > 0 {
			out = append(out, prev.Lerp(cur, dPrev/(dPrev-dCur)))
		}
		prev, dPrev = cur, dCur
	}
	return out
}
