// SPDX-License-Identifier: MIT

package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anayp/roadbuilder/geom"
	"github.com/anayp/roadbuilder/mesh"
)

// cw is a unit square wound clockwise when seen from above (normal −Z).
var cw = [4]geom.Point{geom.Pt(0, 0, 0), geom.Pt(0, 1, 0), geom.Pt(1, 1, 0), geom.Pt(1, 0, 0)}

func TestAddQuad_Orientation(t *testing.T) {
	for _, tc := range []struct {
		prefer mesh.Orientation
		wantZ  float64
	}{
		{mesh.Up, 1},
		{mesh.Down, -1},
		{mesh.Any, -1},
	} {
		m := mesh.New()
		require.Equal(t, 2, m.AddQuad(mesh.Top, cw, tc.prefer, false))
		for _, f := range m.Faces() {
			assert.InDelta(t, tc.wantZ, f.Normal.Z, 1e-12, "prefer=%d", tc.prefer)
			// Winding agrees with the stored normal.
			n := f.V[0].VectorTo(f.V[1]).Cross(f.V[0].VectorTo(f.V[2]))
			assert.Greater(t, n.Dot(f.Normal), 0.0)
		}
	}
}

func TestAddQuad_Degenerate(t *testing.T) {
	m := mesh.New()

	p := geom.Pt(1, 1, 1)
	assert.Equal(t, 0, m.AddQuad(mesh.Top, [4]geom.Point{p, p, p, p}, mesh.Up, true))

	line := [4]geom.Point{geom.Pt(0, 0, 0), geom.Pt(1, 0, 0), geom.Pt(2, 0, 0), geom.Pt(3, 0, 0)}
	assert.Equal(t, 0, m.AddQuad(mesh.Side, line, mesh.Any, false))

	// Half-degenerate: q2 == q3 keeps only the first triangle.
	half := [4]geom.Point{geom.Pt(0, 0, 0), geom.Pt(1, 0, 0), geom.Pt(1, 1, 0), geom.Pt(1, 1, 0)}
	assert.Equal(t, 1, m.AddQuad(mesh.Cap, half, mesh.Any, false))

	assert.Equal(t, 1, m.Len())
	assert.Empty(t, m.SoftEdges())
}

func TestMesh_CountsAndSoftEdges(t *testing.T) {
	m := mesh.New()
	m.AddQuad(mesh.Top, cw, mesh.Up, true)
	m.AddQuad(mesh.Bottom, cw, mesh.Down, false)
	m.AddTriangle(mesh.Centerline, cw[0], cw[1], cw[2], mesh.Up)

	assert.Equal(t, 2, m.Count(mesh.Top))
	assert.Equal(t, 2, m.Count(mesh.Bottom))
	assert.Equal(t, 1, m.Count(mesh.Centerline))
	assert.Equal(t, 0, m.Count(mesh.Side))
	assert.Equal(t, 0, m.Count(mesh.Kind(99)))
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, []mesh.Edge{{cw[0], cw[2]}}, m.SoftEdges())
}

func TestMesh_AreaTolerance(t *testing.T) {
	tiny := [4]geom.Point{geom.Pt(0, 0, 0), geom.Pt(0.001, 0, 0), geom.Pt(0.001, 0.001, 0), geom.Pt(0, 0.001, 0)}

	assert.Equal(t, 2, mesh.New().AddQuad(mesh.Top, tiny, mesh.Up, false))
	assert.Equal(t, 0, mesh.New(mesh.WithAreaTolerance(1e-3)).AddQuad(mesh.Top, tiny, mesh.Up, false))
	assert.Panics(t, func() { mesh.WithAreaTolerance(-1) })
}

func TestMesh_Bounds(t *testing.T) {
	m := mesh.New()
	_, _, ok := m.Bounds()
	assert.False(t, ok)

	m.AddQuad(mesh.Top, cw, mesh.Up, false)
	m.AddTriangle(mesh.Side, geom.Pt(0, 0, -2), geom.Pt(1, 0, -2), geom.Pt(0, 0, 3), mesh.Any)
	lo, hi, ok := m.Bounds()
	require.True(t, ok)
	assert.Equal(t, geom.Pt(0, 0, -2), lo)
	assert.Equal(t, geom.Pt(1, 1, 3), hi)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "top", mesh.Top.String())
	assert.Equal(t, "centerline", mesh.Centerline.String())
	assert.Equal(t, "unknown", mesh.Kind(42).String())
}
