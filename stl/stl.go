// Package stl decodes binary STL files into a flat vertex/index mesh.
//
// A binary STL file is an 80-byte header, a little-endian uint32 triangle
// count, and that many 50-byte records: a face normal, three vertex
// positions (all float32) and a uint16 attribute word. Every triangle
// corner becomes its own vertex; nothing is welded.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
)

const (
	HeaderSize   = 80
	CountSize    = 4
	TriangleSize = 12*4 + 2
)

// preallocation cap, in triangles. The declared count is untrusted.
const maxTriangleHint = 1 << 16

var (
	white     = [3]float32{1, 1, 1}
	zeroCoord = [2]float32{0, 0}
)

// Vertex is one triangle corner. Field order matches the vertex buffer layout.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh is a non-welded triangle list: three vertices and three indices per
// triangle, in file order.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func DecodeFile(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Op: "open", Err: err}
	}
	defer file.Close()
	return Decode(bufio.NewReader(file))
}

func DecodeBytes(b []byte) (*Mesh, error) {
	return Decode(bytes.NewReader(b))
}

// Decode reads one binary STL stream from r. Reads are sequential and
// forward-only. On any error no mesh is returned.
func Decode(r io.Reader) (*Mesh, error) {
	var header [HeaderSize]byte
	if err := readFull(r, header[:], "header"); err != nil {
		if isTruncated(err) {
			return nil, ErrTruncatedHeader
		}
		return nil, err
	}

	var count [CountSize]byte
	if err := readFull(r, count[:], "triangle count"); err != nil {
		if isTruncated(err) {
			return nil, ErrTruncatedCount
		}
		return nil, err
	}
	n := binary.LittleEndian.Uint32(count[:])

	hint := int(n)
	if n > maxTriangleHint {
		hint = maxTriangleHint
	}
	m := &Mesh{
		Vertices: make([]Vertex, 0, 3*hint),
		Indices:  make([]uint32, 0, 3*hint),
	}

	var rec [TriangleSize]byte
	for i := uint32(0); i < n; i++ {
		if err := readFull(r, rec[:], "triangle"); err != nil {
			if isTruncated(err) {
				return nil, &TruncatedTriangleError{Index: int(i)}
			}
			return nil, err
		}

		// rec[48:50] is the attribute byte count; it is not interpreted.
		normal := vec3At(rec[:], 0)
		for c := 0; c < 3; c++ {
			m.Vertices = append(m.Vertices, Vertex{
				Position: vec3At(rec[:], 12+12*c),
				Color:    white,
				Normal:   normal,
				TexCoord: zeroCoord,
			})
		}
		base := 3 * i
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
	return m, nil
}

// readFull returns the raw io.EOF / io.ErrUnexpectedEOF for short reads so
// the caller can map them to the right format error; anything else is a
// ReadError.
func readFull(r io.Reader, buf []byte, what string) error {
	_, err := io.ReadFull(r, buf)
	if err == nil || isTruncated(err) {
		return err
	}
	return &ReadError{Op: "read " + what, Err: err}
}

func isTruncated(err error) bool {
	return err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF)
}

func vec3At(b []byte, off int) [3]float32 {
	return [3]float32{
		math.Float32frombits(binary.LittleEndian.Uint32(b[off:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[off+4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[off+8:])),
	}
}
