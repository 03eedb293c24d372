// SPDX-License-Identifier: MIT
// Package mesh is the face sink the ribbon and centerline builders emit into.
//
// A Mesh is a flat list of oriented triangles, each tagged with the Kind of
// surface it belongs to. Quads are split along their (0,2) diagonal into two
// triangles; a triangle whose vertices coincide or are collinear fails to
// build and is skipped, so a quad succeeds when at least one half survives.
//
// Orientation preferences force the sign of the normal's Z component by
// flipping the winding in place: Up for road tops and centerline strips, Down
// for road bottoms, Any for walls and caps.
//
// A Mesh is owned by a single compilation call and is not safe for concurrent
// mutation.
package mesh
