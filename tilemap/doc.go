// SPDX-License-Identifier: MIT
// Package tilemap reads road networks out of 2D tile grids, the way city
// builders and game maps store them, and turns them into segments for
// road.Compile.
//
// What:
//
//   - Map wraps a rectangular [][]int grid; cells with value ≥ RoadThreshold
//     are road tiles, everything else is open ground.
//   - Segments joins the centers of neighboring road tiles (Conn4 streets, or
//     Conn8 with diagonals) into one segment per neighbor pair.
//   - Networks lists the connected groups of road tiles.
//   - Connect finds the fewest ground tiles to pave so two networks join,
//     and Pave returns a copy of the map with them paved.
//
// Complexity:
//
//   - Networks: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Connect:  O(W×H×d), Memory: O(W×H).
//   - Segments: O(W×H×d).
//
// Options:
//
//   - Options.RoadThreshold: minimum value considered road.
//   - Options.Conn: Conn4 or Conn8.
//   - Options.CellSize: world distance between tile centers (default 10).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellSize: CellSize is not positive.
//   - ErrNetworkIndex: requested network index out of range.
//   - ErrNoPath: the networks cannot be joined.
package tilemap
