package stlview

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LoadMesh picks a loader from the file extension.
func LoadMesh(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		return LoadSTL(path)
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("stlview: unsupported mesh format %q", ext)
	}
}
