// SPDX-License-Identifier: MIT

package tilemap

import (
	"fmt"

	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/geom"
)

// New builds a Map from a non-empty, rectangular 2D slice. The input is
// deep-copied.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*Map, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if !(opts.CellSize > 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadCellSize, opts.CellSize)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, h)
	for y := range cells {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	m := &Map{Width: w, Height: h, Cells: cells, opts: opts, offsets: offsets4}
	if opts.Conn == Conn8 {
		m.offsets = offsets8
	}
	return m, nil
}

// InBounds reports whether (x, y) lies within the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsRoad reports whether (x, y) is an in-bounds road tile.
func (m *Map) IsRoad(x, y int) bool {
	return m.InBounds(x, y) && m.Cells[y][x] >= m.opts.RoadThreshold
}

// Center returns the world position of tile (x, y).
func (m *Map) Center(x, y int) geom.Point {
	return geom.Pt(float64(x)*m.opts.CellSize, float64(y)*m.opts.CellSize, 0)
}

// Segments returns one segment per pair of neighboring road tiles, with IDs
// "x,y-x2,y2", scanning rows bottom-up.
// Complexity: O(W×H×d).
func (m *Map) Segments() []core.Segment {
	var segs []core.Segment
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.IsRoad(x, y) {
				continue
			}
			for _, d := range m.offsets {
				nx, ny := x+d[0], y+d[1]
				// each pair once: only look forward in scan order
				if m.index(nx, ny) <= m.index(x, y) || !m.IsRoad(nx, ny) {
					continue
				}
				id := fmt.Sprintf("%d,%d-%d,%d", x, y, nx, ny)
				segs = append(segs, core.Seg(id, m.Center(x, y), m.Center(nx, ny)))
			}
		}
	}
	return segs
}

// index maps (x, y) to a row-major index: y*Width + x.
func (m *Map) index(x, y int) int {
	return y*m.Width + x
}

// Coordinate converts a row-major index back to (x, y).
func (m *Map) Coordinate(idx int) (x, y int) {
	return idx % m.Width, idx / m.Width
}
