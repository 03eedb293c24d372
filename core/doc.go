// SPDX-License-Identifier: MIT
// Package core provides the adjacency index that every later stage of the
// road pipeline reads from: a lookup from endpoint Point to the Segments that
// touch it.
//
// The index is built once from an unordered collection of Segments and is
// read-only afterwards. It never guesses topology: two segments are connected
// exactly when they share a bit-for-bit equal endpoint.
//
// Invariants:
//
//   - Every Segment is listed under exactly its two endpoints; a degenerate
//     Segment (A == B) is listed twice under its single point, so it
//     contributes 2 to that point's degree.
//   - Segments are unique by ID: the first occurrence wins and later duplicates
//     are counted in Stats().Duplicates.
//   - Points(), Segments(), Incident() and Terminals() iterate in insertion
//     order, so identical input yields identical downstream paths.
//
// Options (IndexOption):
//
//	– WithIDPrefix(prefix)
//	    Prefix for IDs assigned to segments supplied with an empty ID
//	    ("s1", "s2", … by default).
//
//	– WithSkipNonFinite()
//	    Drop segments with NaN/Inf coordinates instead of indexing them;
//	    dropped segments are counted in Stats().Rejected.
//
// Methods:
//
//	Len() int                            // O(1) distinct points
//	SegmentCount() int                   // O(1)
//	Points() []geom.Point                // O(V) insertion order
//	Segments() []Segment                 // O(E) insertion order
//	Segment(id string) (Segment, bool)   // O(1)
//	Has(p geom.Point) bool               // O(1)
//	Degree(p geom.Point) int             // O(1)
//	Incident(p geom.Point) []Segment     // O(d)
//	Terminals() []geom.Point             // O(V) points with degree ≠ 2
//	Stats() Stats                        // O(V)
//
// Errors:
//
//	ErrNotEndpoint – Segment.Other called with a point that is not an endpoint.
//
// The index is not safe for concurrent mutation, but it is never mutated after
// NewIndex returns, so concurrent readers are fine.
package core
