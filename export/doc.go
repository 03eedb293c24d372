// SPDX-License-Identifier: MIT

// Package export turns a road mesh into files other tools understand.
//
//   - STL / WriteSTL: every triangle with its oriented unit normal, binary by
//     default, ASCII with WithASCII.
//   - Preview / WritePNG: a top-down raster of the road surface (mesh.Top)
//     and dashes (mesh.Centerline), fitted into a square image with +Y up.
//
// Both fail with ErrEmptyMesh when there is nothing to export.
package export
