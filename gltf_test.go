package stlview

import (
	"path/filepath"
	"testing"

	"github.com/netisu/stlview/stl"
)

func TestSaveGLTFRoundTrip(t *testing.T) {
	src := &stl.Mesh{}
	src.Vertices = append(src.Vertices, stlTriangle([3]float32{0, 0, 1}, [3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0})...)
	src.Vertices = append(src.Vertices, stlTriangle([3]float32{}, [3]float32{1, 0, 0}, [3]float32{1, 1, 0}, [3]float32{0, 1, 0})...)
	src.Indices = []uint32{0, 1, 2, 3, 4, 5}

	path := filepath.Join(t.TempDir(), "mesh.glb")
	if err := SaveGLTF(path, src); err != nil {
		t.Fatalf("SaveGLTF() error = %v", err)
	}

	m, err := LoadGLTF(path)
	if err != nil {
		t.Fatalf("LoadGLTF() error = %v", err)
	}
	if len(m.Triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(m.Triangles))
	}
	if got := m.Triangles[1].V2.Position; got != V(1, 1, 0) {
		t.Errorf("position = %v, want (1,1,0)", got)
	}
	// zero normals are exported as +Z
	if got := m.Triangles[1].V1.Normal; !near(got, V(0, 0, 1)) {
		t.Errorf("normal = %v, want (0,0,1)", got)
	}
}

func TestSaveGLTFEmpty(t *testing.T) {
	if err := SaveGLTF(filepath.Join(t.TempDir(), "empty.glb"), &stl.Mesh{}); err == nil {
		t.Error("SaveGLTF(empty) error = nil")
	}
}

func TestLoadMeshDispatch(t *testing.T) {
	dir := t.TempDir()
	stlPath := filepath.Join(dir, "a.STL")
	if err := stl.EncodeFile(stlPath, unitTriangleSTL()); err != nil {
		t.Fatal(err)
	}
	glbPath := filepath.Join(dir, "a.glb")
	if err := SaveGLTF(glbPath, unitTriangleSTL()); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{stlPath, glbPath} {
		m, err := LoadMesh(p)
		if err != nil {
			t.Fatalf("LoadMesh(%s) error = %v", p, err)
		}
		if len(m.Triangles) != 1 {
			t.Errorf("LoadMesh(%s): %d triangles", p, len(m.Triangles))
		}
	}
}
