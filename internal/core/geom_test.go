package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add() = %v, expected (4, -2)", got)
	}
	if got := a.Scale(2.5); got != V(2.5, 5) {
		t.Errorf("Scale() = %v, expected (2.5, 5)", got)
	}
	if got := b.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		wantOK bool
	}{
		{"unit x", V(1, 0), true},
		{"diagonal", V(3, 4), true},
		{"negative", V(-2, -2), true},
		{"zero", V(0, 0), false},
		{"infinite", V(math.Inf(1), 1), false},
		{"nan", V(math.NaN(), 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := tc.v.Normalize()
			if ok != tc.wantOK {
				t.Fatalf("Normalize() ok = %v, expected %v", ok, tc.wantOK)
			}
			if ok && math.Abs(n.Len()-1) > 1e-12 {
				t.Errorf("Normalize() length = %f, expected 1", n.Len())
			}
		})
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{2.5, 1},
		{-0.1, -1},
		{0, 1}, // zero counts as non-negative
	}

	for _, tc := range tests {
		if got := Sign(tc.val); got != tc.expected {
			t.Errorf("Sign(%f) = %f, expected %f", tc.val, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 2, 0, 0},
		{0, 2, 1, 2},
		{0, 2, 0.5, 1},
		{0, 2, 1.5, 3},   // extrapolates above
		{0, 2, -0.5, -1}, // extrapolates below
	}

	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, tc.t); got != tc.expected {
			t.Errorf("Lerp(%f, %f, %f) = %f, expected %f", tc.a, tc.b, tc.t, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
