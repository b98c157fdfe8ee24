// Package core provides fundamental types and utilities for LED Pong.
// It contains no terminal or device dependencies to keep the simulation
// pure and testable.
package core

import "math"

// Vec2 is a point or displacement in simulation coordinates.
type Vec2 struct {
	X, Y float64
}

// V returns the vector (x, y).
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// The second result is false when v has zero or non-finite length;
// v is returned unchanged in that case.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return v, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Sign returns -1 for negative values and 1 otherwise.
// Zero counts as non-negative.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Lerp maps t linearly onto [a, b]. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
