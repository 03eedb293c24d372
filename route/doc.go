// SPDX-License-Identifier: MIT
// Package route finds the shortest drive between two points of a road
// network held in a core.Index, using Dijkstra's algorithm with segment
// lengths as weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V)   where V = |points|, E = |segments|
//   - Space: O(V + E); the heap uses lazy decrease-key, so stale entries are
//     pushed and skipped on pop.
//
// Options:
//
//   - WithMaxDistance(d): points farther than d are not explored (d ≥ 0).
//   - WithClosed(ids...): segments that cannot be driven (road works).
//
// Errors (sentinel):
//
//   - ErrIndexNil       if the index is nil.
//   - ErrPointNotFound  if either endpoint is not indexed.
//   - ErrUnreachable    if no route exists within MaxDistance.
//
// A route's segments can be fed back into road.Compile to build a
// highlighted route mesh.
package route
