// SPDX-License-Identifier: MIT

package builder

// Star returns a Constructor that emits a hub at the origin and n-1 arms of
// length spacing, evenly spread around it. The hub is a junction of degree
// n-1; every leaf is a dead end.
//
// Complexity: O(n).
func Star(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minStarPoints {
			return builderErrorf(methodStar, ErrTooFewPoints, "n=%d < %d", n, minStarPoints)
		}
		hub := cfg.at(0, 0)
		for _, leaf := range ringPoints(cfg, n-1) {
			s.Line(cfg, hub, leaf)
		}
		return nil
	}
}
