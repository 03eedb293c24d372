// SPDX-License-Identifier: MIT

package builder

// Wheel returns a Constructor that emits a ring of n-1 points plus a spoke
// from the hub to every ring point. Ring points have degree 3, so the ring
// breaks into chains between spokes.
//
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minWheelPoints {
			return builderErrorf(methodWheel, ErrTooFewPoints, "n=%d < %d", n, minWheelPoints)
		}
		rim := ringPoints(cfg, n-1)
		for i := range rim {
			s.Line(cfg, rim[i], rim[(i+1)%len(rim)])
		}
		hub := cfg.at(0, 0)
		for _, p := range rim {
			s.Line(cfg, hub, p)
		}
		return nil
	}
}
