// SPDX-License-Identifier: MIT

package export_test

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hschendel/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anayp/roadbuilder/builder"
	"github.com/anayp/roadbuilder/export"
	"github.com/anayp/roadbuilder/mesh"
	"github.com/anayp/roadbuilder/road"
)

// straightRoad compiles a 100 long, 20 wide road along +X with a dashed
// centerline.
func straightRoad(t *testing.T) *mesh.Mesh {
	t.Helper()
	segs, err := builder.Build(nil, builder.Chain(11))
	require.NoError(t, err)
	cfg := road.DefaultConfig()
	cfg.AddCenterLine = true
	cfg.CenterLineWidth = 2
	res, err := road.Compile(context.Background(), segs, cfg)
	require.NoError(t, err)
	return res.Mesh
}

func TestSTL(t *testing.T) {
	m := straightRoad(t)
	solid, err := export.STL(m)
	require.NoError(t, err)
	assert.Equal(t, export.DefaultSolidName, solid.Name)
	assert.Len(t, solid.Triangles, m.Len())

	for i, f := range m.Faces() {
		if f.Kind == mesh.Top {
			assert.InDelta(t, 1, solid.Triangles[i].Normal[2], 1e-6, "top face %d points up", i)
		}
	}
}

func TestWriteSTL_BinaryRoundTrip(t *testing.T) {
	m := straightRoad(t)
	var buf bytes.Buffer
	require.NoError(t, export.WriteSTL(&buf, m))

	back, err := stl.ReadAll(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Len(t, back.Triangles, m.Len())
}

func TestWriteSTL_ASCII(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteSTL(&buf, straightRoad(t), export.WithASCII(), export.WithSolidName("main")))
	assert.True(t, strings.HasPrefix(buf.String(), "solid main"))
}

func TestSTL_Empty(t *testing.T) {
	_, err := export.STL(nil)
	assert.ErrorIs(t, err, export.ErrEmptyMesh)
	assert.ErrorIs(t, export.WriteSTL(&bytes.Buffer{}, mesh.New()), export.ErrEmptyMesh)
	assert.Panics(t, func() { export.WithSolidName("") })
}

func TestPreview(t *testing.T) {
	img, err := export.Preview(straightRoad(t), export.WithSize(110))
	require.NoError(t, err)
	assert.Equal(t, 110, img.Bounds().Dx())

	// The road spans x∈[0,100], y∈[-10,10]; with the default margin it is
	// centered vertically near the top of the image.
	assert.Equal(t, export.DefaultBackground, img.RGBAAt(55, 105))
	assert.Equal(t, export.DefaultSurface, img.RGBAAt(20, 12))
	assert.Equal(t, export.DefaultLine, img.RGBAAt(13, 17))
}

func TestPreview_Colors(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	img, err := export.Preview(straightRoad(t), export.WithSize(110), export.WithColors(nil, red, nil))
	require.NoError(t, err)
	assert.Equal(t, red, img.RGBAAt(20, 12))
	assert.Equal(t, export.DefaultBackground, img.RGBAAt(55, 105))
}

func TestWritePNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "road.png")
	require.NoError(t, export.WritePNGFile(path, straightRoad(t), export.WithSize(64)))
	require.NoError(t, export.WriteSTLFile(filepath.Join(t.TempDir(), "road.stl"), straightRoad(t)))

	var buf bytes.Buffer
	require.NoError(t, export.WritePNG(&buf, straightRoad(t), export.WithSize(32)))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestPreview_Empty(t *testing.T) {
	_, err := export.Preview(mesh.New())
	assert.ErrorIs(t, err, export.ErrEmptyMesh)
	assert.Panics(t, func() { export.WithSize(0) })
}
