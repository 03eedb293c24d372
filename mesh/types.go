// SPDX-License-Identifier: MIT

package mesh

import "github.com/anayp/roadbuilder/geom"

// Kind tags the surface a face belongs to.
type Kind uint8

// Surface kinds.
const (
	Top Kind = iota
	Bottom
	Side
	Cap
	Centerline
	numKinds
)

var kindNames = [...]string{"top", "bottom", "side", "cap", "centerline"}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// Orientation is the requested direction of a face normal.
type Orientation uint8

// Orientation preferences.
const (
	Any Orientation = iota
	Up
	Down
)

// DefaultAreaTolerance is the smallest doubled triangle area (|ab × ac|)
// accepted as a face.
const DefaultAreaTolerance = 1e-10

// Face is one oriented triangle.
type Face struct {
	Kind Kind

	// V holds the vertices in winding order.
	V [3]geom.Point

	// Normal is the unit normal implied by the winding.
	Normal geom.Vector
}

// Edge is a pair of points, used for soft diagonals.
type Edge [2]geom.Point

// Option configures a Mesh.
type Option func(*Mesh)

// WithAreaTolerance overrides DefaultAreaTolerance.
// Panics on a negative tolerance.
func WithAreaTolerance(tol float64) Option {
	if tol < 0 {
		panic("mesh: WithAreaTolerance(tol < 0)")
	}
	return func(m *Mesh) { m.areaTol = tol }
}

// Mesh accumulates faces.
type Mesh struct {
	faces   []Face
	soft    []Edge
	counts  [numKinds]int
	areaTol float64
}

// New returns an empty Mesh.
func New(opts ...Option) *Mesh {
	m := &Mesh{areaTol: DefaultAreaTolerance}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
