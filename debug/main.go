package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/netisu/stlview"
	"github.com/netisu/stlview/stl"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug <mesh-file>")
		os.Exit(1)
	}
	path := os.Args[1]

	fmt.Println("--- STARTING DEBUG ---")
	if strings.EqualFold(filepath.Ext(path), ".stl") {
		raw, err := stl.DecodeFile(path)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("--- STL ---\n")
		fmt.Printf("Triangles: %d\n", raw.TriangleCount())
		fmt.Printf("Vertices: %d\n", len(raw.Vertices))
		fmt.Printf("Indices: %d\n", len(raw.Indices))
		fmt.Printf("Vertex buffer: %d bytes\n", len(raw.VertexBuffer()))
		fmt.Printf("Index buffer: %d bytes\n", len(raw.IndexBuffer()))
	}

	mesh, err := stlview.LoadMesh(path)
	if err != nil {
		log.Fatal(err)
	}

	box := mesh.BoundingBox()
	fmt.Printf("--- MESH STATS ---\n")
	fmt.Printf("Triangles: %d\n", len(mesh.Triangles))
	fmt.Printf("Surface area: %.4f\n", mesh.SurfaceArea())
	fmt.Printf("Bounding Box Min: %+v\n", box.Min)
	fmt.Printf("Bounding Box Max: %+v\n", box.Max)
	fmt.Printf("Bounding Box Center: %+v\n", box.Center())
}
