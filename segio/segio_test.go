// SPDX-License-Identifier: MIT

package segio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anayp/roadbuilder/builder"
	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/geom"
	"github.com/anayp/roadbuilder/segio"
)

func TestRead_YAML(t *testing.T) {
	const doc = `
segments:
  - id: main
    from: [0, 0, 0]
    to: [10, 0, 0]
  - from: [10, 0]
    to: [10, 10.5]
`
	segs, err := segio.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, core.Seg("main", geom.Pt(0, 0, 0), geom.Pt(10, 0, 0)), segs[0])
	assert.Equal(t, "", segs[1].ID)
	assert.Equal(t, geom.Pt(10, 10.5, 0), segs[1].B)
}

func TestRead_JSON(t *testing.T) {
	const doc = `{"segments": [{"id": "a", "from": [1, 2, 3], "to": [4, 5, 6]}]}`
	segs, err := segio.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, geom.Pt(4, 5, 6), segs[0].B)
}

func TestRead_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"empty":      {"", segio.ErrNoSegments},
		"no list":    {"segments: []", segio.ErrNoSegments},
		"short from": {"segments: [{from: [1], to: [1, 2]}]", segio.ErrBadPoint},
		"long to":    {"segments: [{from: [1, 2], to: [1, 2, 3, 4]}]", segio.ErrBadPoint},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := segio.Read(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := segio.Read(strings.NewReader("segments: [{from: [1, 2], to: [3, 4], width: 3}]"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestWriteRead_File(t *testing.T) {
	segs, err := builder.Build(nil, builder.Wheel(6))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wheel.yaml")
	require.NoError(t, segio.WriteFile(path, segs))

	back, err := segio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, segs, back)
}

func TestWrite_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, segio.Write(&buf, []core.Segment{core.Seg("a", geom.Pt(0, 0, 0), geom.Pt(1.5, 0, 0))}))
	assert.Equal(t, "segments:\n  - id: a\n    from: [0, 0, 0]\n    to: [1.5, 0, 0]\n", buf.String())
}

func TestReadFile_Missing(t *testing.T) {
	_, err := segio.ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
