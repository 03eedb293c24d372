// SPDX-License-Identifier: MIT
// Package decompose reconstructs ordered travel paths from the topology-free
// segment soup held by a core.Index.
//
// What:
//
//   - Phase 1 (chains): for every terminal point (degree ≠ 2) and every
//     still-unvisited segment touching it, walk forward through degree-2
//     points and emit one open Path. A junction of degree k therefore yields
//     up to k chains, one per branch.
//   - Phase 2 (loops): every segment left unvisited after phase 1 belongs to a
//     pure cycle. Walk from its A endpoint until the walk returns to the start
//     or runs out of unvisited segments. Every loop-phase Path is Closed.
//   - Paths with fewer than 2 points are dropped.
//
// Every indexed segment ends up in exactly one Path: the walk marks a segment
// visited before stepping across it and never steps across a visited one.
//
// Bounded walks:
//
//	Chain walks stop after ChainStepFactor × |points| steps (default 4) and
//	loop walks after LoopStepFactor × |points| steps (default 8). A walk that
//	hits the bound is returned "as far as it got" with Path.Exhausted set and
//	counted in Result.Exhausted. On a well-formed index the bound never fires;
//	it only guarantees termination on corrupted adjacency data.
//
// Options:
//
//   - WithContext(ctx)            checked between traces; each single trace is not interruptible.
//   - WithOnPath(fn)              hook called for every emitted Path; an error aborts.
//   - WithChainStepFactor(n)      chain step bound factor (n ≥ 1).
//   - WithLoopStepFactor(n)       loop step bound factor (n ≥ 1).
//
// Errors:
//
//   - ErrIndexNil                 if the index pointer is nil.
//   - context.Canceled / DeadlineExceeded when the context is done.
//   - any error returned by the OnPath hook, wrapped.
//
// Complexity:
//
//   - Time:   O(V + E) (each segment is crossed once; each step scans the
//     incidence list of a degree-2 point).
//   - Memory: O(E) for the visited set and the emitted paths.
package decompose
