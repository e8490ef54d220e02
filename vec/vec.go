// Package vec provides a minimal 2D vector type.
//
// Vec2 is a value type; every operation returns a new vector.
package vec

import "math"

// Vec2 is a 2D vector or position.
type Vec2 struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Round returns (x, y) with both components rounded to the nearest
// integer, halves away from zero.
func Round(x, y float64) Vec2 {
	return Vec2{X: math.Round(x), Y: math.Round(y)}
}

// Mag returns the length of v.
func (v Vec2) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Norm returns a unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec2) Norm() Vec2 {
	m := v.Mag()
	if m > 0 {
		m = 1 / m
	}
	return Vec2{X: v.X * m, Y: v.Y * m}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns v scaled by m.
func (v Vec2) Mul(m float64) Vec2 {
	return Vec2{X: v.X * m, Y: v.Y * m}
}

// Div returns v divided by d. Division by zero follows IEEE 754.
func (v Vec2) Div(d float64) Vec2 {
	return Vec2{X: v.X / d, Y: v.Y / d}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product of v and w.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Angle returns the direction from a to b in radians, in (-Pi, Pi].
func Angle(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Distance returns the distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Mag()
}
