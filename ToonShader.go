package stlview

import (
	"math"
	"sort"
)

// ToonBand maps a minimum light intensity to a flat color.
type ToonBand struct {
	Threshold float64
	Color     Color
}

// ToonShader implements cel shading.
type ToonShader struct {
	ViewProjection Matrix
	LightDirection Vector
	// Bands must be sorted by descending threshold (see SetBands); the
	// first band whose threshold is below the intensity wins.
	Bands []ToonBand
}

func NewToonShader(matrix Matrix, lightDir Vector) *ToonShader {
	return &ToonShader{
		ViewProjection: matrix,
		LightDirection: lightDir.Normalize(),
		Bands: []ToonBand{
			{0.8, HexColor("ffffaa")}, // highlight
			{0.5, HexColor("ff8844")},
			{0.2, HexColor("a12c00")},
			{0.0, HexColor("4d1100")}, // deep shadow
		},
	}
}

func (s *ToonShader) SetBands(bands []ToonBand) {
	s.Bands = append([]ToonBand(nil), bands...)
	sort.Slice(s.Bands, func(i, j int) bool { return s.Bands[i].Threshold > s.Bands[j].Threshold })
}

func (s *ToonShader) Matrix() Matrix     { return s.ViewProjection }
func (s *ToonShader) SetMatrix(m Matrix) { s.ViewProjection = m }

func (s *ToonShader) Vertex(v Vertex) Vertex {
	v.Output = s.ViewProjection.MulPositionW(v.Position)
	return v
}

func (s *ToonShader) Fragment(v Vertex, fromObject *Object) Color {
	intensity := math.Max(0, v.Normal.Dot(s.LightDirection))
	band := s.band(intensity)
	if fromObject.Texture != nil {
		return fromObject.Texture.Sample(v.Texture.X, v.Texture.Y).Mul(band)
	}
	return fromObject.Color.Mul(band)
}

func (s *ToonShader) band(intensity float64) Color {
	for _, b := range s.Bands {
		if intensity > b.Threshold {
			return b.Color
		}
	}
	if len(s.Bands) == 0 {
		return White
	}
	return s.Bands[len(s.Bands)-1].Color
}
