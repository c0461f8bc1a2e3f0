package stl

import (
	"encoding/binary"
	"math"
)

// VertexStride is the packed size of one Vertex in a vertex buffer.
const VertexStride = (3 + 3 + 3 + 2) * 4

// VertexFormat names the component layout of one vertex attribute.
type VertexFormat int

const (
	Float32x2 VertexFormat = iota + 2
	Float32x3
)

// Size returns the attribute size in bytes.
func (f VertexFormat) Size() int {
	return int(f) * 4
}

func (f VertexFormat) String() string {
	switch f {
	case Float32x2:
		return "float32x2"
	case Float32x3:
		return "float32x3"
	}
	return "unknown"
}

// VertexAttribute describes where one field of Vertex lives in the packed
// buffer and which shader location reads it.
type VertexAttribute struct {
	Name     string
	Location int
	Offset   int
	Format   VertexFormat
}

// VertexAttributes is the layout produced by VertexBuffer.
var VertexAttributes = []VertexAttribute{
	{Name: "position", Location: 0, Offset: 0, Format: Float32x3},
	{Name: "color", Location: 1, Offset: 12, Format: Float32x3},
	{Name: "normal", Location: 2, Offset: 24, Format: Float32x3},
	{Name: "texcoord", Location: 3, Offset: 36, Format: Float32x2},
}

// VertexBuffer packs the vertices little-endian, VertexStride bytes each.
func (m *Mesh) VertexBuffer() []byte {
	buf := make([]byte, len(m.Vertices)*VertexStride)
	for i, v := range m.Vertices {
		b := buf[i*VertexStride:]
		putVec3(b, 0, v.Position)
		putVec3(b, 12, v.Color)
		putVec3(b, 24, v.Normal)
		binary.LittleEndian.PutUint32(b[36:], math.Float32bits(v.TexCoord[0]))
		binary.LittleEndian.PutUint32(b[40:], math.Float32bits(v.TexCoord[1]))
	}
	return buf
}

// IndexBuffer packs the indices as little-endian uint32.
func (m *Mesh) IndexBuffer() []byte {
	buf := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
