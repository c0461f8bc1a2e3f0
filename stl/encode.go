package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

func EncodeFile(path string, m *Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	if err := Encode(w, m); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Encode writes m in binary STL layout with a zeroed header. Each index
// triple becomes one record; its normal is taken from the first corner.
func Encode(w io.Writer, m *Mesh) error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("stl: index count %d is not a multiple of 3", len(m.Indices))
	}
	n := len(m.Indices) / 3
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("stl: %d triangles exceed the format limit", n)
	}

	var head [HeaderSize + CountSize]byte
	binary.LittleEndian.PutUint32(head[HeaderSize:], uint32(n))
	if _, err := w.Write(head[:]); err != nil {
		return err
	}

	var rec [TriangleSize]byte
	for t := 0; t < n; t++ {
		var corners [3]Vertex
		for c := range corners {
			i := m.Indices[3*t+c]
			if int(i) >= len(m.Vertices) {
				return fmt.Errorf("stl: triangle %d: index %d out of range", t, i)
			}
			corners[c] = m.Vertices[i]
		}
		putVec3(rec[:], 0, corners[0].Normal)
		for c, v := range corners {
			putVec3(rec[:], 12+12*c, v.Position)
		}
		rec[48], rec[49] = 0, 0
		if _, err := w.Write(rec[:]); err != nil {
			return err
		}
	}
	return nil
}

func putVec3(b []byte, off int, v [3]float32) {
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(b[off+4:], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(b[off+8:], math.Float32bits(v[2]))
}
