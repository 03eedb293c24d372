// SPDX-License-Identifier: MIT
// Package dash splits a centerline into dash spans and turns the spans into
// thin centerline strips.
//
// Spans walks the centerline by arc length with a two-state machine:
//
//	phase     ∈ {dash, gap}, starting in dash
//	remaining = length left in the current phase, starting at Pattern.Dash
//
// Each segment (wrapping when closed) is consumed in steps of
// min(remaining, left on segment). Steps taken in the dash phase are emitted as
// spans. When remaining drops to the tolerance the phase flips and remaining is
// reset to the new phase's length. Leftover remaining carries into the next
// segment; only a new call (a new path) restarts in the dash phase. Segments at
// or below the tolerance are skipped without touching the state.
//
// A span never crosses a gap, but one dash that straddles a path corner is
// emitted as two spans, one per segment.
package dash
