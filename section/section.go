// SPDX-License-Identifier: MIT

package section

import (
	"seehuhn.de/go/geom/vec"

	"github.com/anayp/roadbuilder/geom"
)

// Rule yields a direction or reports that it has none.
type Rule func() (geom.Vector, bool)

// Chain is an ordered list of fallback rules.
type Chain []Rule

// Eval returns the direction of the first rule that succeeds. If no rule
// succeeds the zero Vector and false are returned.
func (c Chain) Eval() (geom.Vector, bool) {
	for _, r := range c {
		if v, ok := r(); ok {
			return v, true
		}
	}
	return geom.Vector{}, false
}

// Const is a rule that always yields v.
func Const(v geom.Vector) Rule {
	return func() (geom.Vector, bool) { return v, true }
}

// Candidates accumulates the neighbor directions of one path point.
type Candidates struct {
	sum      geom.Vector
	fallback geom.Vector
	valid    int
}

// Add normalizes v and adds it to the sum. Zero vectors are skipped; the
// first valid vector is remembered, un-normalized, as the fallback.
func (c *Candidates) Add(v geom.Vector) {
	u, ok := v.Normalize()
	if !ok {
		return
	}
	if c.valid == 0 {
		c.fallback = v
	}
	c.valid++
	c.sum = c.sum.Add(u)
}

// Sum is the rule "accumulated direction, if non-zero".
func (c *Candidates) Sum() (geom.Vector, bool) {
	if c.sum.IsZero() {
		return geom.Vector{}, false
	}
	return c.sum, true
}

// Fallback is the rule "first valid candidate, if any".
func (c *Candidates) Fallback() (geom.Vector, bool) {
	if c.valid == 0 {
		return geom.Vector{}, false
	}
	return c.fallback, true
}

// Tangent resolves the travel direction of a point from its candidates.
func Tangent(c *Candidates) geom.Vector {
	t, _ := Chain{c.Sum, c.Fallback, Const(geom.UnitX)}.Eval()
	return t
}

// Horizontal drops the Z component of the unit tangent and normalizes the
// result, falling back to +X when t is vertical or has no direction.
func Horizontal(t geom.Vector) vec.Vec2 {
	u, ok := t.Normalize()
	if !ok {
		return vec.Vec2{X: 1}
	}
	h := u.Horizontal().Normalize()
	if h == (vec.Vec2{}) {
		return vec.Vec2{X: 1}
	}
	return h
}

// Cross rotates the horizontal tangent h by 90° counter-clockwise and
// normalizes it, falling back to def when h has no direction.
func Cross(h vec.Vec2, def geom.Vector) geom.Vector {
	n := h.Normal()
	if n == (vec.Vec2{}) {
		return def
	}
	return geom.FromHorizontal(n)
}

// CrossVectors returns one unit cross vector per point of an ordered path.
//
// For a closed path, points must not repeat the first point at the end.
// A path with a single point gets the default cross vector +Y.
//
// Complexity: O(n) time, O(n) space.
func CrossVectors(points []geom.Point, closed bool) []geom.Vector {
	n := len(points)
	out := make([]geom.Vector, n)
	for i, p := range points {
		var c Candidates
		if prev, ok := neighbor(points, i, -1, closed); ok {
			c.Add(prev.VectorTo(p))
		}
		if next, ok := neighbor(points, i, +1, closed); ok {
			c.Add(p.VectorTo(next))
		}
		out[i] = Cross(Horizontal(Tangent(&c)), geom.UnitY)
	}
	return out
}

// neighbor returns the point at i+step, wrapping when closed.
func neighbor(points []geom.Point, i, step int, closed bool) (geom.Point, bool) {
	n := len(points)
	j := i + step
	if closed {
		if n < 2 {
			return geom.Point{}, false
		}
		return points[(j%n+n)%n], true
	}
	if j < 0 || j >= n {
		return geom.Point{}, false
	}
	return points[j], true
}
