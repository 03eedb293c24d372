// SPDX-License-Identifier: MIT

// Command roadbuild compiles a segment file into a road mesh and writes it as
// STL, optionally with a PNG preview.
//
//	roadbuild streets.yaml -o streets.stl -png streets.png -center
//	roadbuild build streets.yaml -o streets.stl
//	roadbuild demo -o demo.stl
//
// Settings may also come from roadbuild.toml in the working directory.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"

	"github.com/anayp/roadbuilder/builder"
	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/export"
	"github.com/anayp/roadbuilder/geom"
	"github.com/anayp/roadbuilder/road"
	"github.com/anayp/roadbuilder/segio"
	"github.com/anayp/roadbuilder/tilemap"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration for the roadbuild cli.
type Config struct {

	// Input is the YAML or JSON segment file to compile.
	Input string `posarg:"0" required:"-"`

	// Output is the STL file to write.
	Output string `flag:"o,output" default:"road.stl"`

	// PNG, if set, is where a top-down preview is written.
	PNG string `flag:"png"`

	// PreviewSize is the side of the preview image in pixels.
	PreviewSize int `default:"512"`

	// ASCII writes the STL in its text encoding.
	ASCII bool

	// Width is the full road width.
	Width float64 `default:"20"`

	// Thickness extrudes a solid below the road; 0 keeps it flat.
	Thickness float64 `default:"1"`

	// Center adds a dashed centerline.
	Center bool `flag:"c,center"`

	// DashLength is the length of each centerline dash.
	DashLength float64 `default:"10"`

	// GapLength is the spacing between centerline dashes.
	GapLength float64 `default:"10"`

	// LineWidth is the width of the centerline dashes.
	LineWidth float64 `default:"0.5"`

	// Verbose logs every skipped path.
	Verbose bool `flag:"v,verbose"`
}

func main() {
	cli.Run(options(), &Config{}, commands()...)
}

// options returns the cli options shared by main and the tests.
func options() *cli.Options {
	opts := cli.DefaultOptions("roadbuild", "Roadbuild turns line segments into 3D road meshes.")
	opts.DefaultFiles = []string{"roadbuild.toml"}
	return opts
}

// commands lists the subcommands. Build is the root command, so a bare
// "roadbuild streets.yaml" runs it.
func commands() []*cli.Cmd[*Config] {
	return []*cli.Cmd[*Config]{
		{Func: Build, Name: "build", Doc: "Build compiles the input segment file.", Root: true},
		{Func: Demo, Name: "demo", Doc: "Demo compiles a built-in town."},
	}
}

// Build compiles the input segment file.
func Build(c *Config) error { //cli:cmd -root
	if c.Input == "" {
		return errors.New("roadbuild: no input file given")
	}
	segs, err := segio.ReadFile(c.Input)
	if err != nil {
		return err
	}
	return run(c, segs)
}

// Demo compiles a built-in town: a street grid, a roundabout with four
// spokes, and a village read from a tile map and joined to the grid by the
// shortest new road.
func Demo(c *Config) error {
	segs, err := builder.Build(
		[]builder.BuilderOption{builder.WithSpacing(60)},
		builder.Grid(3, 4),
	)
	if err != nil {
		return err
	}
	ring, err := builder.Build(
		[]builder.BuilderOption{builder.WithSpacing(40), builder.WithOrigin(geom.Pt(300, 60, 0))},
		builder.Wheel(5),
	)
	if err != nil {
		return err
	}
	for i := range ring {
		ring[i].ID = "ring-" + ring[i].ID
	}
	village, err := villageSegments()
	if err != nil {
		return err
	}
	return run(c, slices.Concat(segs, ring, village))
}

// villageSegments paves the cheapest link between the two tile networks of
// the demo village. Tile (0, 3) lands on the street grid's corner at the
// origin.
func villageSegments() ([]core.Segment, error) {
	opts := tilemap.DefaultOptions()
	opts.CellSize = 30
	m, err := tilemap.New([][]int{
		{0, 0, 0, 1, 1},
		{0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
	}, opts)
	if err != nil {
		return nil, err
	}
	path, _, err := m.Connect(0, 1)
	if err != nil {
		return nil, err
	}
	segs := m.Pave(path).Segments()
	south := geom.Vec(0, -90, 0)
	for i := range segs {
		segs[i].ID = "village-" + segs[i].ID
		segs[i].A = segs[i].A.Translate(south)
		segs[i].B = segs[i].B.Translate(south)
	}
	return segs, nil
}

func run(c *Config, segs []core.Segment) error {
	setupLogging(c.Verbose)

	cfg := road.Config{
		HalfWidth:        c.Width / 2,
		Thickness:        c.Thickness,
		AddCenterLine:    c.Center,
		CenterDashLength: c.DashLength,
		CenterGapLength:  c.GapLength,
		CenterLineWidth:  c.LineWidth,
	}
	res, err := road.Compile(context.Background(), segs, cfg)
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}
	if c.Center && res.CenterFaces == 0 {
		slog.Warn("no dashes created")
	}

	var stlOpts []export.STLOption
	if c.ASCII {
		stlOpts = append(stlOpts, export.WithASCII())
	}
	if err := export.WriteSTLFile(c.Output, res.Mesh, stlOpts...); err != nil {
		return err
	}
	if c.PNG != "" {
		errors.Log(export.WritePNGFile(c.PNG, res.Mesh, export.WithSize(max(c.PreviewSize, 1))))
	}

	fmt.Println(summary(res))
	return nil
}

// summary renders the completion line.
func summary(res *road.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Road created: %d segments across %d paths", res.TotalSegments, len(res.Paths)-res.Skipped)
	if res.Skipped > 0 {
		fmt.Fprintf(&b, " (%d skipped)", res.Skipped)
	}
	if res.CenterFaces > 0 {
		fmt.Fprintf(&b, ", %d centerline faces", res.CenterFaces)
	}
	return b.String()
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	road.SetLogger(logger)
}
