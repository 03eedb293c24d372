// SPDX-License-Identifier: MIT
// Package roadbuilder turns loose line segments into 3D road meshes.
//
// 🚧 What does it do?
//
//	Hand it an unordered pile of segments sharing endpoints (a sketch, a
//	tile map, a file) and it will:
//		• index every endpoint and its incident segments
//		• reconstruct open chains between junctions and closed ring roads
//		• offset each path into a ribbon of a given width
//		• extrude the ribbon into a solid with side walls and dead-end caps
//		• overlay a dashed centerline
//
// Under the hood, everything is organized in small subpackages:
//
//	geom/      float64 points and vectors with exact-value identity
//	core/      adjacency index: point → incident segments, insertion ordered
//	decompose/ chain and loop walker producing ordered paths
//	section/   per-point tangents and horizontal cross vectors
//	mesh/      oriented triangle sink with soft edges
//	ribbon/    top quads, bottom, side walls, end caps, centerline
//	dash/      dash/gap arc-length walker and centerline strips
//	road/      Compile: the full pipeline with config and logging
//	builder/   deterministic fixtures: chains, rings, stars, grids
//	tilemap/   road tile grids to segments, network joining
//	route/     shortest drive between two points
//	segio/     YAML/JSON segment files
//	export/    STL and PNG preview
//
// Quick ASCII example:
//
//	A───B
//	    │
//	    C
//
// is one open path A→B→C; Compile returns two top quads, a solid with a
// cap at A and C, and a centerline through B.
//
//	go install github.com/anayp/roadbuilder/cmd/roadbuild@latest
package roadbuilder
