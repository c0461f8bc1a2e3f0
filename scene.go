package stlview

import (
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/nfnt/resize"
)

// Camera is a perspective camera. Fovy is in degrees.
type Camera struct {
	Eye, Center, Up Vector
	Fovy            float64
	Near, Far       float64
}

func (c Camera) View() Matrix {
	return LookAt(c.Eye, c.Center, c.Up)
}

func (c Camera) ViewProjection(aspect float64) Matrix {
	return c.View().Perspective(c.Fovy, aspect, c.Near, c.Far)
}

// Scene renders objects through one shader into a square image of Size
// pixels. Drawing happens at Size*Scale and is downsampled afterwards.
type Scene struct {
	Context *Context
	Objects []*Object
	Shader  Shader
	Camera  Camera
	Size    int
	Scale   int
	// Fit widens or narrows the field of view so every object is visible.
	Fit bool
}

func NewScene(camera Camera, size int, scale int, shader Shader) *Scene {
	if scale < 1 {
		scale = 1
	}
	context := NewContext(size*scale, size*scale, shader)
	return &Scene{
		Context: context,
		Shader:  shader,
		Camera:  camera,
		Size:    size,
		Scale:   scale,
	}
}

func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

func (s *Scene) AddObjects(objects []*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

func (s *Scene) aspect() float64 {
	return float64(s.Context.Width) / float64(s.Context.Height)
}

// FitObjectsToScene returns a view-projection whose vertical field of view
// just contains the bounding box of all objects, plus 5% padding.
func (s *Scene) FitObjectsToScene() Matrix {
	aspect := s.aspect()
	var boxes []Box
	for _, o := range s.Objects {
		if o.Mesh != nil && len(o.Mesh.Triangles) > 0 {
			boxes = append(boxes, o.Matrix.MulBox(o.Mesh.BoundingBox()))
		}
	}
	if len(boxes) == 0 {
		return s.Camera.ViewProjection(aspect)
	}
	sceneBox := BoxForBoxes(boxes)
	view := s.Camera.View()

	var maxAngleX, maxAngleY float64
	for _, corner := range sceneBox.Corners() {
		p := view.MulPosition(corner)
		// the camera looks down -Z in view space
		absZ := math.Abs(p.Z)
		if absZ < 1e-6 {
			continue
		}
		maxAngleX = math.Max(maxAngleX, math.Atan(math.Abs(p.X)/absZ))
		maxAngleY = math.Max(maxAngleY, math.Atan(math.Abs(p.Y)/absZ))
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/aspect)
	fovy := Degrees(math.Max(fovyFromX, fovyFromY)) * 1.05
	if fovy <= 0 || fovy >= 179 {
		fovy = s.Camera.Fovy
	}
	return view.Perspective(fovy, aspect, s.Camera.Near, s.Camera.Far)
}

// Render clears the buffers, draws every object and returns the image at
// its final size.
func (s *Scene) Render() image.Image {
	matrix := s.Camera.ViewProjection(s.aspect())
	if s.Fit {
		matrix = s.FitObjectsToScene()
	}
	if ms, ok := s.Shader.(MatrixShader); ok {
		ms.SetMatrix(matrix)
	}

	s.Context.ClearColorBuffer()
	s.Context.ClearDepthBuffer()
	for _, o := range s.Objects {
		s.Context.DrawObject(o)
	}

	im := s.Context.Image()
	if s.Scale > 1 {
		Logger().Debug("downsampling", "from", s.Context.Width, "to", s.Size)
		im = resize.Resize(uint(s.Size), uint(s.Size), im, resize.Bilinear)
	}
	return im
}

func (s *Scene) DrawToWriter(w io.Writer) error {
	return png.Encode(w, s.Render())
}

func (s *Scene) Draw(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.DrawToWriter(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	Logger().Info("wrote image", "path", path, "size", s.Size)
	return nil
}
