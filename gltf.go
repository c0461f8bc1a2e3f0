package stlview

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/netisu/stlview/stl"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var errNoTriangles = errors.New("stlview: no triangles found in gltf")

// LoadGLTF loads the triangle primitives of every mesh in a .gltf or .glb
// file. Node transforms are not applied.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	var triangles []*Triangle
	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}
			ts, err := readPrimitive(doc, primitive)
			if err != nil {
				return nil, fmt.Errorf("stlview: gltf mesh %q: %w", mesh.Name, err)
			}
			triangles = append(triangles, ts...)
		}
	}
	if len(triangles) == 0 {
		return nil, errNoTriangles
	}
	Logger().Debug("gltf loaded", "path", path, "triangles", len(triangles))
	return NewTriangleMesh(triangles), nil
}

func readPrimitive(doc *gltf.Document, primitive *gltf.Primitive) ([]*Triangle, error) {
	posIdx, ok := primitive.Attributes[gltf.POSITION]
	if !ok {
		return nil, nil
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, err
	}

	var normals [][3]float32
	if idx, ok := primitive.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return nil, err
		}
	}
	var texCoords [][2]float32
	if idx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
		if texCoords, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return nil, err
		}
	}

	var indices []uint32
	if primitive.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
		if err != nil {
			return nil, err
		}
	} else {
		indices = make([]uint32, len(positions))
		for k := range indices {
			indices[k] = uint32(k)
		}
	}

	vertex := func(i uint32) (Vertex, error) {
		if int(i) >= len(positions) {
			return Vertex{}, fmt.Errorf("index %d out of range (%d positions)", i, len(positions))
		}
		v := Vertex{Position: vectorFromFloat32(positions[i]), Color: White}
		if int(i) < len(normals) {
			v.Normal = vectorFromFloat32(normals[i])
		}
		if int(i) < len(texCoords) {
			v.Texture = Vector{float64(texCoords[i][0]), float64(texCoords[i][1]), 0}
		}
		return v, nil
	}

	triangles := make([]*Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		var vs [3]Vertex
		for c := range vs {
			if vs[c], err = vertex(indices[i+c]); err != nil {
				return nil, err
			}
		}
		triangles = append(triangles, NewTriangle(vs[0], vs[1], vs[2]))
	}
	return triangles, nil
}

// SaveGLTF writes m as a single-mesh glTF document. A ".glb" extension
// selects the binary container; anything else writes JSON with an embedded
// buffer.
func SaveGLTF(path string, m *stl.Mesh) error {
	if len(m.Indices) == 0 {
		return errors.New("stlview: refusing to export an empty mesh")
	}
	positions := make([][3]float32, len(m.Vertices))
	normals := make([][3]float32, len(m.Vertices))
	texCoords := make([][2]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = v.Position
		normals[i] = normalized(v.Normal)
		texCoords[i] = v.TexCoord
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, m.Indices)),
			Attributes: map[string]int{
				gltf.POSITION:   modeler.WritePosition(doc, positions),
				gltf.NORMAL:     modeler.WriteNormal(doc, normals),
				gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, texCoords),
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err := gltf.SaveBinary(doc, path)
		if err == nil {
			Logger().Info("wrote glb", "path", path, "triangles", len(m.Indices)/3)
		}
		return err
	}
	err := gltf.Save(doc, path)
	if err == nil {
		Logger().Info("wrote gltf", "path", path, "triangles", len(m.Indices)/3)
	}
	return err
}

// glTF requires unit normals; a zero normal becomes +Z.
func normalized(n [3]float32) [3]float32 {
	v := vectorFromFloat32(n).Normalize()
	if v == (Vector{}) || v.IsDegenerate() {
		return [3]float32{0, 0, 1}
	}
	return v.float32s()
}
