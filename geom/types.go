// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ZeroLength is the length at or below which a Vector is treated as having no
// direction.
const ZeroLength = 1e-12

// Canonical axis directions used as deterministic fallbacks.
var (
	UnitX = Vector{X: 1}
	UnitY = Vector{Y: 1}
	UnitZ = Vector{Z: 1}
)

// Point is an immutable 3D coordinate. Equality is by exact value.
type Point struct {
	X, Y, Z float64
}

// Vector is a 3D direction with a length.
type Vector struct {
	X, Y, Z float64
}

// Pt is shorthand for Point{X: x, Y: y, Z: z}.
func Pt(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// Vec is shorthand for Vector{X: x, Y: y, Z: z}.
func Vec(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

// String renders p as "(x, y, z)" using the shortest exact representation.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// IsFinite reports whether no coordinate of p is NaN or ±Inf.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// VectorTo returns the vector from p to q.
func (p Point) VectorTo(q Point) Vector {
	return Vector{X: q.X - p.X, Y: q.Y - p.Y, Z: q.Z - p.Z}
}

// Translate returns p moved by v.
func (p Point) Translate(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Offset returns p moved by dist along the direction of dir. A directionless
// dir leaves p unchanged; a negative dist moves against dir.
func (p Point) Offset(dir Vector, dist float64) Point {
	u, ok := dir.Normalize()
	if !ok {
		return p
	}
	return p.Translate(u.Scale(dist))
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.VectorTo(q).Length()
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2, Z: (p.Z + q.Z) / 2}
}

// String renders v as "<x, y, z>".
func (v Vector) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v.X, v.Y, v.Z)
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product v·w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v×w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// IsZero reports whether v is too short to carry a direction.
func (v Vector) IsZero() bool {
	return v.Length() <= ZeroLength
}

// Normalize returns the unit vector along v. The boolean is false, and the
// zero Vector is returned, when v has no direction.
func (v Vector) Normalize() (Vector, bool) {
	l := v.Length()
	if l <= ZeroLength || !isFinite(l) {
		return Vector{}, false
	}
	return v.Scale(1 / l), true
}

// Horizontal projects v onto the XY plane.
func (v Vector) Horizontal() vec.Vec2 {
	return vec.Vec2{X: v.X, Y: v.Y}
}

// FromHorizontal lifts a plane vector back into 3D with a zero Z component.
func FromHorizontal(h vec.Vec2) Vector {
	return Vector{X: h.X, Y: h.Y}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
