package stlview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "view.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
size: 64
shader: toon
camera:
  fovy: 50
  fit: false
cull: none
`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.Size != 64 || c.Shader != "toon" || c.Camera.Fovy != 50 || c.Camera.Fit {
		t.Errorf("overrides not applied: %+v", c)
	}
	def := DefaultConfig()
	if c.Camera.Eye != def.Camera.Eye || c.Scale != def.Scale || c.Ambient != def.Ambient {
		t.Errorf("defaults lost: %+v", c)
	}
	if _, ok := c.NewShader().(*ToonShader); !ok {
		t.Errorf("NewShader() = %T, want *ToonShader", c.NewShader())
	}
	if cull, _ := c.cull(); cull != CullNone {
		t.Errorf("cull = %v, want CullNone", cull)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: error = nil")
	}
	if _, err := LoadConfig(writeConfig(t, "size: [1, 2\n")); err == nil {
		t.Error("bad yaml: error = nil")
	}

	_, err := LoadConfig(writeConfig(t, "size: 0\nshader: gouraud\ncolor: zz0000\n"))
	if err == nil {
		t.Fatal("invalid config: error = nil")
	}
	for _, want := range []string{"size", "gouraud", "color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestConfigNewScene(t *testing.T) {
	c := DefaultConfig()
	c.Size = 16
	c.Scale = 1
	c.Wireframe = true
	c.Background = "ff0000"

	mesh := facingTriangle()
	mesh.Transform(Scale(V(10, 10, 10)))
	s, err := c.NewScene(mesh)
	if err != nil {
		t.Fatal(err)
	}
	if got := mesh.BoundingBox(); got.Max.MaxComponent() > 1+eps {
		t.Errorf("mesh not normalized: %v", got)
	}
	if !s.Fit || !s.Context.Wireframe || s.Context.Cull != CullBack {
		t.Errorf("scene state = fit %v wireframe %v cull %v", s.Fit, s.Context.Wireframe, s.Context.Cull)
	}
	if s.Context.ClearColor != HexColor("ff0000") {
		t.Errorf("clear color = %v", s.Context.ClearColor)
	}

	c.Camera.Near = 0
	if _, err := c.NewScene(mesh); err == nil {
		t.Error("invalid near plane: error = nil")
	}
}
