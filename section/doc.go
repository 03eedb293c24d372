// SPDX-License-Identifier: MIT
// Package section derives the cross vectors that offset a path centerline
// into a ribbon.
//
// For each point i of an ordered path the cross vector is a unit vector in
// the horizontal (XY) plane, perpendicular to the local travel direction.
// It is computed by three ordered fallback chains, each evaluated until the
// first rule yields a usable direction:
//
//	tangent:    sum of the normalized prev→i and i→next candidates
//	            → first valid candidate → +X
//	horizontal: tangent with Z dropped, normalized → +X
//	cross:      horizontal rotated 90° CCW (−y, x), normalized → +Y
//
// Candidates wrap around for closed paths and are absent at the ends of open
// paths. Averaging both neighbors mitters the offset at corners; opposite
// candidates (a U-turn) cancel out and fall back to the first one.
//
// The chains are package-level values (Tangent, Cross) so other builders that
// need the same perpendicular logic, such as the dashed centerline strips,
// evaluate exactly the same rules instead of re-deriving them.
package section
