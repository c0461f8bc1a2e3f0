// Command stlview renders a binary STL (or OBJ/glTF) mesh to a PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/netisu/stlview"
	"github.com/netisu/stlview/stl"
)

func main() {
	var (
		configPath = flag.String("config", "", "scene YAML file")
		output     = flag.String("o", "out.png", "output PNG")
		size       = flag.Int("size", 0, "image size in pixels (overrides config)")
		scale      = flag.Int("scale", 0, "supersampling factor (overrides config)")
		shader     = flag.String("shader", "", "phong, toon or solid (overrides config)")
		factor     = flag.Float64("simplify", 1, "keep roughly this fraction of triangles")
		glbOut     = flag.String("glb", "", "also export the mesh as glTF (.glb or .gltf)")
		stlOut     = flag.String("stl", "", "also export the mesh as binary STL")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: stlview [flags] model.stl\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	stlview.SetLogger(logger)

	cfg := stlview.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = stlview.LoadConfig(*configPath); err != nil {
			fatal("config", err)
		}
	}
	if *size > 0 {
		cfg.Size = *size
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	if *shader != "" {
		cfg.Shader = *shader
	}

	mesh, err := stlview.LoadMesh(path)
	if err != nil {
		slog.Error("cannot load mesh", "class", describe(err), "err", err)
		os.Exit(1)
	}

	if *factor != 1 {
		if mesh, err = mesh.Simplify(*factor); err != nil {
			fatal("simplify", err)
		}
	}

	if *glbOut != "" || *stlOut != "" {
		indexed := mesh.Indexed()
		if *glbOut != "" {
			if err := stlview.SaveGLTF(*glbOut, indexed); err != nil {
				fatal("export gltf", err)
			}
		}
		if *stlOut != "" {
			if err := stl.EncodeFile(*stlOut, indexed); err != nil {
				fatal("export stl", err)
			}
			stlview.Logger().Info("wrote stl", "path", *stlOut, "triangles", indexed.TriangleCount())
		}
	}

	scene, err := cfg.NewScene(mesh)
	if err != nil {
		fatal("scene", err)
	}
	if err := scene.Draw(*output); err != nil {
		fatal("render", err)
	}
}

func fatal(step string, err error) {
	slog.Error(step+" failed", "err", err)
	os.Exit(1)
}

// describe names the failure class: truncated input or an I/O error.
func describe(err error) string {
	var te *stl.TruncatedTriangleError
	var re *stl.ReadError
	switch {
	case errors.As(err, &te):
		return fmt.Sprintf("file ends inside triangle %d", te.Index)
	case errors.Is(err, stl.ErrFormat):
		return "not a complete binary STL"
	case errors.As(err, &re):
		return "cannot read input"
	}
	return "unsupported or malformed mesh"
}
