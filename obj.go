package stlview

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadOBJFromReader(file)
}

func LoadOBJFromBytes(b []byte) (*Mesh, error) {
	return LoadOBJFromReader(bytes.NewReader(b))
}

// LoadOBJFromReader reads v, vt, vn and f records; polygons are fanned into
// triangles. Everything else (materials, groups) is ignored.
func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	// index 0 is a placeholder so OBJ's 1-based indices work directly
	vs := make([]Vector, 1, 1024)
	vts := make([]Vector, 1, 1024)
	vns := make([]Vector, 1, 1024)

	var triangles []*Triangle
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v", "vn":
			v, err := parseVector(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("stlview: obj line %d: %w", lineNo, err)
			}
			if fields[0] == "v" {
				vs = append(vs, v)
			} else {
				vns = append(vns, v)
			}
		case "vt":
			v, err := parseVector(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("stlview: obj line %d: %w", lineNo, err)
			}
			vts = append(vts, v)
		case "f":
			args := fields[1:]
			if len(args) < 3 {
				return nil, fmt.Errorf("stlview: obj line %d: face with %d vertices", lineNo, len(args))
			}
			fvs := make([]int, len(args))
			fvts := make([]int, len(args))
			fvns := make([]int, len(args))
			for i, arg := range args {
				vertex := strings.Split(arg+"//", "/")
				var err error
				if fvs[i], err = fixIndex(vertex[0], len(vs)); err == nil {
					if fvts[i], err = fixIndex(vertex[1], len(vts)); err == nil {
						fvns[i], err = fixIndex(vertex[2], len(vns))
					}
				}
				if err != nil {
					return nil, fmt.Errorf("stlview: obj line %d: %w", lineNo, err)
				}
				if fvs[i] <= 0 {
					return nil, fmt.Errorf("stlview: obj line %d: face without position index", lineNo)
				}
			}

			for i := 1; i < len(fvs)-1; i++ {
				t := &Triangle{}
				i1, i2, i3 := 0, i, i+1
				t.V1.Position = vs[fvs[i1]]
				t.V2.Position = vs[fvs[i2]]
				t.V3.Position = vs[fvs[i3]]
				if fvns[i1] > 0 && fvns[i2] > 0 && fvns[i3] > 0 {
					t.V1.Normal = vns[fvns[i1]]
					t.V2.Normal = vns[fvns[i2]]
					t.V3.Normal = vns[fvns[i3]]
				}
				if fvts[i1] > 0 && fvts[i2] > 0 && fvts[i3] > 0 {
					t.V1.Texture = vts[fvts[i1]]
					t.V2.Texture = vts[fvts[i2]]
					t.V3.Texture = vts[fvts[i3]]
				}
				t.SetColor(White)
				t.FixNormals()
				triangles = append(triangles, t)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewTriangleMesh(triangles), nil
}

func parseVector(fields []string, n int) (Vector, error) {
	if len(fields) < n {
		return Vector{}, fmt.Errorf("want %d components, got %d", n, len(fields))
	}
	var c [3]float64
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Vector{}, err
		}
		c[i] = f
	}
	return Vector{c[0], c[1], c[2]}, nil
}

// fixIndex resolves negative (relative) OBJ indices against the number of
// elements seen so far, counting the placeholder. Empty means absent.
func fixIndex(value string, length int) (int, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if parsed < 0 {
		parsed += length
	}
	if parsed >= length || parsed < 0 {
		return 0, fmt.Errorf("index %s out of range", value)
	}
	return parsed, nil
}
