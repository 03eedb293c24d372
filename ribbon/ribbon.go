// SPDX-License-Identifier: MIT

package ribbon

import (
	"errors"
	"fmt"

	"github.com/anayp/roadbuilder/geom"
	"github.com/anayp/roadbuilder/mesh"
	"github.com/anayp/roadbuilder/section"
)

var (
	// ErrMeshNil is returned when Build is given no face sink.
	ErrMeshNil = errors.New("ribbon: mesh is nil")

	// ErrBadHalfWidth indicates a half-width that is not strictly positive.
	ErrBadHalfWidth = errors.New("ribbon: half-width must be positive")

	// ErrBadThickness indicates a negative thickness.
	ErrBadThickness = errors.New("ribbon: thickness must not be negative")
)

// Params controls the ribbon dimensions.
type Params struct {
	// HalfWidth is the offset of each side from the centerline (> 0).
	HalfWidth float64

	// Thickness extrudes the ribbon downwards (≥ 0; 0 = flat ribbon only).
	Thickness float64

	// CapStart and CapEnd close the solid at the first and last index of an
	// open path. Ignored for closed paths.
	CapStart, CapEnd bool
}

// Validate checks the dimensions.
func (p Params) Validate() error {
	if !(p.HalfWidth > 0) {
		return fmt.Errorf("%w: %g", ErrBadHalfWidth, p.HalfWidth)
	}
	if p.Thickness < 0 {
		return fmt.Errorf("%w: %g", ErrBadThickness, p.Thickness)
	}
	return nil
}

// Geometry is the derived per-path result.
type Geometry struct {
	Left, Right []geom.Point
	Center      []geom.Point

	// TopFaces counts top quads built; the other counters count quads of the
	// thickness solid.
	TopFaces    int
	BottomFaces int
	SideFaces   int
	CapFaces    int
}

// Build emits the ribbon for points into m. For closed paths points must not
// repeat the first point at the end.
//
// Errors are returned only for a nil mesh or invalid Params; degenerate
// geometry is reported through the face counters.
//
// Complexity: O(n) time and space.
func Build(m *mesh.Mesh, points []geom.Point, closed bool, p Params) (*Geometry, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := len(points)
	g := &Geometry{
		Left:   make([]geom.Point, n),
		Right:  make([]geom.Point, n),
		Center: make([]geom.Point, n),
	}

	// 1. Offset streams
	cross := section.CrossVectors(points, closed)
	for i, pt := range points {
		g.Left[i] = pt.Offset(cross[i], p.HalfWidth)
		g.Right[i] = pt.Offset(cross[i], -p.HalfWidth)
		g.Center[i] = g.Left[i].Midpoint(g.Right[i])
	}

	// 2. Top ribbon
	forEachSegment(n, closed, func(i, j int) {
		q := [4]geom.Point{g.Left[i], g.Left[j], g.Right[j], g.Right[i]}
		if m.AddQuad(mesh.Top, q, mesh.Up, true) > 0 {
			g.TopFaces++
		}
	})

	// 3. Thickness solid
	if g.TopFaces > 0 && p.Thickness > 0 {
		g.addThickness(m, closed, p)
	}

	return g, nil
}

// addThickness emits bottom, side walls and end caps.
func (g *Geometry) addThickness(m *mesh.Mesh, closed bool, p Params) {
	down := geom.Vec(0, 0, -p.Thickness)
	n := len(g.Left)
	lb := make([]geom.Point, n)
	rb := make([]geom.Point, n)
	for i := range g.Left {
		lb[i] = g.Left[i].Translate(down)
		rb[i] = g.Right[i].Translate(down)
	}

	forEachSegment(n, closed, func(i, j int) {
		if m.AddQuad(mesh.Bottom, [4]geom.Point{lb[i], lb[j], rb[j], rb[i]}, mesh.Down, false) > 0 {
			g.BottomFaces++
		}
		if m.AddQuad(mesh.Side, [4]geom.Point{g.Left[i], g.Left[j], lb[j], lb[i]}, mesh.Any, false) > 0 {
			g.SideFaces++
		}
		if m.AddQuad(mesh.Side, [4]geom.Point{g.Right[i], g.Right[j], rb[j], rb[i]}, mesh.Any, false) > 0 {
			g.SideFaces++
		}
	})

	if closed || n == 0 {
		return
	}
	if p.CapStart {
		if m.AddQuad(mesh.Cap, [4]geom.Point{g.Left[0], g.Right[0], rb[0], lb[0]}, mesh.Any, false) > 0 {
			g.CapFaces++
		}
	}
	if p.CapEnd {
		last := n - 1
		if m.AddQuad(mesh.Cap, [4]geom.Point{g.Left[last], lb[last], rb[last], g.Right[last]}, mesh.Any, false) > 0 {
			g.CapFaces++
		}
	}
}

// forEachSegment calls fn for every consecutive index pair, wrapping the last
// index onto the first when closed.
func forEachSegment(n int, closed bool, fn func(i, j int)) {
	if n < 2 {
		return
	}
	count := n - 1
	if closed {
		count = n
	}
	for i := 0; i < count; i++ {
		fn(i, (i+1)%n)
	}
}
