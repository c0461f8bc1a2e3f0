package stlview

// Object is a mesh placed in a scene.
// objects can be passed to the renderer to be rendered
type Object struct {
	Mesh           *Mesh
	Texture        Texture
	Color          Color
	Matrix         Matrix
	UseVertexColor bool
}

func NewEmptyObject() *Object {
	return &Object{Matrix: Identity(), Color: White}
}

func NewObjectFromMesh(mesh *Mesh) *Object {
	return &Object{Mesh: mesh, Matrix: Identity(), Color: White}
}

func NewTriangleObject(triangles []*Triangle) *Object {
	return NewObjectFromMesh(NewTriangleMesh(triangles))
}

// NewObjectFromFile loads any format LoadMesh understands and gives it the
// default gray.
func NewObjectFromFile(path string) (*Object, error) {
	mesh, err := LoadMesh(path)
	if err != nil {
		return nil, err
	}
	o := NewObjectFromMesh(mesh)
	o.SetColor(HexColor("777"))
	return o, nil
}

// SetColor sets the object color and the vertex colors of its mesh.
func (o *Object) SetColor(c Color) {
	o.Color = c
	if o.Mesh != nil {
		o.Mesh.SetColor(c)
	}
}

// MustLoadObject panics on error; intended for examples and tests.
func MustLoadObject(path string) *Object {
	o, err := NewObjectFromFile(path)
	if err != nil {
		panic(err)
	}
	return o
}
