// SPDX-License-Identifier: MIT

package tilemap

import "errors"

// Sentinel errors for tilemap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("tilemap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("tilemap: all rows must have the same length")
	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("tilemap: cell size must be positive")
	// ErrNetworkIndex indicates a requested network index is out of range.
	ErrNetworkIndex = errors.New("tilemap: network index out of range")
	// ErrNoPath indicates the two networks cannot be joined.
	ErrNoPath = errors.New("tilemap: no path between networks")
)

// Connectivity selects which tiles count as neighbors.
type Connectivity int

const (
	// Conn4 joins tiles sharing an edge: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal tiles.
	Conn8
)

// DefaultCellSize is the distance between neighboring tile centers.
const DefaultCellSize = 10.0

// Options contains tunable parameters for a Map.
type Options struct {
	// RoadThreshold is the minimum cell value considered road.
	RoadThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CellSize scales tile coordinates to world units.
	CellSize float64
}

// DefaultOptions returns RoadThreshold=1, Conn4 and DefaultCellSize.
func DefaultOptions() Options {
	return Options{
		RoadThreshold: 1,
		Conn:          Conn4,
		CellSize:      DefaultCellSize,
	}
}

// Map is an immutable road tile grid. Cells[y][x] holds the input value;
// row 0 is the southern edge, so tile (x, y) sits at world (x, y)×CellSize.
type Map struct {
	Width, Height int
	Cells         [][]int
	opts          Options
	offsets       [][2]int
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)
