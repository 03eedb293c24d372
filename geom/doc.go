// SPDX-License-Identifier: MIT
// Package geom provides the float64 point and vector primitives used by the
// road pipeline.
//
// Point is an immutable (X, Y, Z) coordinate compared by exact value, so it is
// usable directly as a map key: two segment endpoints are "the same vertex"
// exactly when their coordinates are bit-for-bit equal (with +0 == -0).
//
// Vector is a 3D direction with a length. Normalize reports failure instead of
// producing NaNs when the length is (numerically) zero; every caller that needs
// a direction decides its own fallback.
//
// Horizontal-plane work (tangent projection, 90° rotation) is delegated to
// seehuhn.de/go/geom/vec.Vec2 via Vector.Horizontal and FromHorizontal.
//
// Complexity: every operation is O(1) and allocation-free.
package geom
