package stlview

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes how a mesh is framed and shaded. It is read from YAML;
// fields missing from the file keep their DefaultConfig values.
type Config struct {
	Size  int `yaml:"size"`
	Scale int `yaml:"scale"`

	Camera struct {
		Eye    [3]float64 `yaml:"eye"`
		Center [3]float64 `yaml:"center"`
		Up     [3]float64 `yaml:"up"`
		Fovy   float64    `yaml:"fovy"`
		Near   float64    `yaml:"near"`
		Far    float64    `yaml:"far"`
		Fit    bool       `yaml:"fit"`
	} `yaml:"camera"`

	Shader     string     `yaml:"shader"` // phong, toon or solid
	Light      [3]float64 `yaml:"light"`
	Ambient    string     `yaml:"ambient"`
	Diffuse    string     `yaml:"diffuse"`
	Specular   float64    `yaml:"specular"`
	Outline    bool       `yaml:"outline"`
	Color      string     `yaml:"color"`
	Background string     `yaml:"background"`
	Texture    string     `yaml:"texture,omitempty"`
	Wireframe  bool       `yaml:"wireframe"`
	Cull       string     `yaml:"cull"` // back, front or none

	// Normalize centers the mesh and scales it into [-1, 1] before drawing.
	Normalize bool `yaml:"normalize"`
}

func DefaultConfig() Config {
	var c Config
	c.Size = 512
	c.Scale = 2
	c.Camera.Eye = [3]float64{2, 2, 3}
	c.Camera.Center = [3]float64{0, 0, 0}
	c.Camera.Up = [3]float64{0, 0, 1}
	c.Camera.Fovy = 35
	c.Camera.Near = 0.1
	c.Camera.Far = 100
	c.Camera.Fit = true
	c.Shader = "phong"
	c.Light = [3]float64{0.25, 0.5, 1}
	c.Ambient = "404040"
	c.Diffuse = "c0c0c0"
	c.Color = "ffffff"
	c.Background = "00000000"
	c.Cull = "back"
	c.Normalize = true
	return c
}

// LoadConfig reads path as YAML on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("stlview: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("stlview: %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Size <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %d", c.Size))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		errs = append(errs, fmt.Errorf("camera.fovy must be in (0, 180), got %v", c.Camera.Fovy))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera near/far must satisfy 0 < near < far, got %v/%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Eye == c.Camera.Center {
		errs = append(errs, errors.New("camera.eye and camera.center coincide"))
	}
	switch c.Shader {
	case "phong", "toon", "solid":
	default:
		errs = append(errs, fmt.Errorf("unknown shader %q", c.Shader))
	}
	if _, err := c.cull(); err != nil {
		errs = append(errs, err)
	}
	for name, hex := range map[string]string{"ambient": c.Ambient, "diffuse": c.Diffuse, "color": c.Color, "background": c.Background} {
		if _, err := ParseHexColor(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (c Config) cull() (Cull, error) {
	switch strings.ToLower(c.Cull) {
	case "", "back":
		return CullBack, nil
	case "front":
		return CullFront, nil
	case "none":
		return CullNone, nil
	}
	return CullNone, fmt.Errorf("unknown cull mode %q", c.Cull)
}

func vec(a [3]float64) Vector {
	return Vector{a[0], a[1], a[2]}
}

func (c Config) camera() Camera {
	return Camera{
		Eye:    vec(c.Camera.Eye),
		Center: vec(c.Camera.Center),
		Up:     vec(c.Camera.Up),
		Fovy:   c.Camera.Fovy,
		Near:   c.Camera.Near,
		Far:    c.Camera.Far,
	}
}

// NewShader builds the configured shader. Its matrix is set by the scene.
func (c Config) NewShader() Shader {
	cam := c.camera()
	switch c.Shader {
	case "toon":
		return NewToonShader(Identity(), vec(c.Light))
	case "solid":
		return NewSolidColorShader(Identity(), HexColor(c.Color))
	}
	s := NewPhongShader(Identity(), vec(c.Light), cam.Eye, HexColor(c.Ambient), HexColor(c.Diffuse))
	s.EnableOutline = c.Outline
	if c.Specular > 0 {
		s.SpecularPower = c.Specular
	}
	return s
}

// NewScene builds a scene around mesh. The mesh is modified in place when
// Normalize is set.
func (c Config) NewScene(mesh *Mesh) (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Normalize && len(mesh.Triangles) > 0 {
		mesh.BiUnitCube()
	}

	obj := NewObjectFromMesh(mesh)
	obj.Color = HexColor(c.Color)
	if c.Texture != "" {
		tex, err := LoadTexture(c.Texture)
		if err != nil {
			return nil, fmt.Errorf("stlview: texture: %w", err)
		}
		obj.Texture = tex
	}

	scene := NewScene(c.camera(), c.Size, c.Scale, c.NewShader())
	scene.Fit = c.Camera.Fit
	scene.Context.ClearColor = HexColor(c.Background)
	scene.Context.Wireframe = c.Wireframe
	scene.Context.Cull, _ = c.cull()
	scene.AddObject(obj)
	return scene, nil
}
