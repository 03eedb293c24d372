// SPDX-License-Identifier: MIT
// Package road compiles an unordered collection of segments into road meshes.
//
// Compile runs the full pipeline for one input:
//
//  1. core.NewIndex       – point → incident segments, insertion ordered.
//  2. decompose.Decompose – open chains from terminals, then closed loops.
//  3. per path:
//     - skip when fewer than 2 distinct points ("not enough distinct points");
//     - ribbon.Build with end caps only at dead ends (degree 1);
//     - skip downstream work when no top quad was built ("no segments built");
//     - when the centerline is enabled: dash.Spans on the ribbon centerline,
//     then dash.Strips of CenterLineWidth.
//
// Every face lands in one shared *mesh.Mesh returned in Result.Mesh.
//
// Errors:
//
// Compile only fails for an invalid Config (ErrInvalidWidth,
// ErrInvalidThickness, ErrInvalidDash) or a cancelled context. Degenerate
// input is reported through Result counters. A Result with zero
// TotalSegments is not an error; callers that require geometry can test
// Result.Empty or use Result.Err, which wraps ErrNoGeometry.
//
// Logging:
//
// The package logs through log/slog. By default nothing is logged; install a
// logger with SetLogger.
//
// Concurrency:
//
// Compile keeps no state between calls and may run concurrently on
// independent inputs. The context is checked between paths.
package road
