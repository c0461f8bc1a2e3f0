package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/netisu/stlview"
	"github.com/netisu/stlview/stl"
)

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	// header, count 2, one full record and half of the second
	body := make([]byte, stl.HeaderSize+stl.CountSize+stl.TriangleSize+25)
	body[stl.HeaderSize] = 2

	tests := []struct {
		name string
		path string
		want string
	}{
		{"short triangle", write("short.stl", body), "file ends inside triangle 1"},
		{"short header", write("header.stl", make([]byte, 10)), "not a complete binary STL"},
		{"missing file", filepath.Join(dir, "missing.stl"), "cannot read input"},
		{"unknown format", write("model.ply", nil), "unsupported or malformed mesh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stlview.LoadMesh(tt.path)
			if err == nil {
				t.Fatal("LoadMesh() error = nil")
			}
			if got := describe(err); got != tt.want {
				t.Errorf("describe(%v) = %q, want %q", err, got, tt.want)
			}
		})
	}
}
