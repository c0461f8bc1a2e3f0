package stlview

import (
	"math"
)

// Shader is the programmable part of the pipeline. Vertex must set Output
// to the clip-space position.
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

// MatrixShader is a Shader driven by a single view-projection matrix.
type MatrixShader interface {
	Shader
	Matrix() Matrix
	SetMatrix(Matrix)
}

// PhongShader implements Phong shading with an optional texture.
type PhongShader struct {
	ViewProjection Matrix
	LightDirection Vector
	CameraPosition Vector
	AmbientColor   Color
	DiffuseColor   Color
	SpecularColor  Color
	SpecularPower  float64
	EnableOutline  bool
	OutlineColor   Color
	OutlineFactor  float64 // lower is thinner
}

func NewPhongShader(matrix Matrix, lightDirection, cameraPosition Vector, ambient Color, diffuse Color) *PhongShader {
	return &PhongShader{
		ViewProjection: matrix,
		LightDirection: lightDirection.Normalize(),
		CameraPosition: cameraPosition,
		AmbientColor:   ambient,
		DiffuseColor:   diffuse,
		SpecularColor:  White,
		SpecularPower:  0,
		EnableOutline:  false,
		OutlineColor:   Black,
		OutlineFactor:  0.05,
	}
}

func (shader *PhongShader) Matrix() Matrix     { return shader.ViewProjection }
func (shader *PhongShader) SetMatrix(m Matrix) { shader.ViewProjection = m }

func (shader *PhongShader) Vertex(v Vertex) Vertex {
	v.Output = shader.ViewProjection.MulPositionW(v.Position)
	return v
}

func (shader *PhongShader) Fragment(v Vertex, fromObject *Object) Color {
	if shader.EnableOutline {
		// surface nearly edge-on to the camera
		view := shader.CameraPosition.Sub(v.Position).Normalize()
		if math.Abs(view.Dot(v.Normal)) < shader.OutlineFactor {
			return shader.OutlineColor
		}
	}
	if fromObject.UseVertexColor {
		return v.Color
	}

	light := shader.AmbientColor
	color := fromObject.Color
	if fromObject.Texture != nil {
		sample := fromObject.Texture.BilinearSample(v.Texture.X, v.Texture.Y)
		if sample.A > 0 {
			color = color.Lerp(sample.DivScalar(sample.A), sample.A)
		}
	}
	diffuse := math.Max(v.Normal.Dot(shader.LightDirection), 0)
	light = light.Add(shader.DiffuseColor.MulScalar(diffuse))
	if diffuse > 0 && shader.SpecularPower > 0 {
		camera := shader.CameraPosition.Sub(v.Position).Normalize()
		reflected := shader.LightDirection.Negate().Reflect(v.Normal)
		specular := math.Max(camera.Dot(reflected), 0)
		if specular > 0 {
			specular = math.Pow(specular, shader.SpecularPower)
			light = light.Add(shader.SpecularColor.MulScalar(specular))
		}
	}
	if color.A < 1 {
		return color.Mul(light).Min(White).DivScalar(color.A).Alpha(color.A)
	}
	return color.Mul(light).Min(White).Alpha(color.A)
}
