// SPDX-License-Identifier: MIT
// Package ribbon compiles one ordered path into road geometry.
//
// Build offsets every path point along its cross vector by ±HalfWidth into a
// left and a right stream, then emits into a mesh.Mesh:
//
//   - top ribbon: one quad (L[i], L[i+1], R[i+1], R[i]) per segment, oriented
//     up, diagonal softened. Closed paths wrap the last point onto the first.
//   - when Thickness > 0 and at least one top quad was built: the bottom
//     ribbon (same quads lowered by Thickness, oriented down), a left and a
//     right side wall per segment, and, for open paths only, end caps at the
//     first and last index when CapStart/CapEnd are set.
//
// Faces that fail to build are skipped and not counted; the returned
// Geometry.TopFaces is the number of top quads that produced at least one
// triangle. Zero means "no usable geometry" and callers skip the path.
//
// The centerline (per-index midpoint of left and right) is always returned.
package ribbon
