// SPDX-License-Identifier: MIT

package mesh

import "github.com/anayp/roadbuilder/geom"

// AddTriangle adds the triangle (a, b, c) oriented per prefer.
// It reports false, and adds nothing, for a degenerate triangle.
func (m *Mesh) AddTriangle(kind Kind, a, b, c geom.Point, prefer Orientation) bool {
	n := a.VectorTo(b).Cross(a.VectorTo(c))
	if n.Length() <= m.areaTol {
		return false
	}
	unit, ok := n.Normalize()
	if !ok {
		return false
	}

	switch {
	case prefer == Up && unit.Z < 0, prefer == Down && unit.Z > 0:
		b, c = c, b
		unit = unit.Neg()
	}

	m.faces = append(m.faces, Face{Kind: kind, V: [3]geom.Point{a, b, c}, Normal: unit})
	if kind < numKinds {
		m.counts[kind]++
	}
	return true
}

// AddQuad adds the quad q as the triangles (q0, q1, q2) and (q0, q2, q3).
// It returns how many of the two triangles were built; zero means the quad
// failed. When soften is set and a face was built, the q0–q2 diagonal is
// recorded as a soft edge.
func (m *Mesh) AddQuad(kind Kind, q [4]geom.Point, prefer Orientation, soften bool) int {
	built := 0
	if m.AddTriangle(kind, q[0], q[1], q[2], prefer) {
		built++
	}
	if m.AddTriangle(kind, q[0], q[2], q[3], prefer) {
		built++
	}
	if built > 0 && soften && q[0] != q[2] {
		m.soft = append(m.soft, Edge{q[0], q[2]})
	}
	return built
}

// Len returns the number of triangles.
func (m *Mesh) Len() int { return len(m.faces) }

// Count returns the number of triangles of the given kind.
func (m *Mesh) Count(kind Kind) int {
	if kind >= numKinds {
		return 0
	}
	return m.counts[kind]
}

// Faces returns the triangles in insertion order. The slice is a copy.
func (m *Mesh) Faces() []Face {
	out := make([]Face, len(m.faces))
	copy(out, m.faces)
	return out
}

// SoftEdges returns the soft quad diagonals in insertion order.
func (m *Mesh) SoftEdges() []Edge {
	out := make([]Edge, len(m.soft))
	copy(out, m.soft)
	return out
}

// Bounds returns the axis-aligned bounding box of all vertices.
// ok is false for an empty mesh.
func (m *Mesh) Bounds() (lo, hi geom.Point, ok bool) {
	if len(m.faces) == 0 {
		return lo, hi, false
	}
	lo, hi = m.faces[0].V[0], m.faces[0].V[0]
	for _, f := range m.faces {
		for _, p := range f.V {
			lo = geom.Pt(min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z))
			hi = geom.Pt(max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z))
		}
	}
	return lo, hi, true
}
