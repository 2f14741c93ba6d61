package core

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name   string
		in     Vec2
		wantOK bool
	}{
		{"unit x", V2(1, 0), true},
		{"diagonal", V2(1, 1), true},
		{"arbitrary", V2(0.3, 0.7), true},
		{"negative", V2(-3, 4), true},
		{"zero", V2(0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.in.Normalize()
			if ok != tc.wantOK {
				t.Fatalf("Normalize() ok = %v, expected %v", ok, tc.wantOK)
			}
			if !ok {
				if !got.IsZero() {
					t.Errorf("Normalize() of zero vector = %v, expected zero", got)
				}
				return
			}
			if math.Abs(got.Len()-1) > 1e-12 {
				t.Errorf("Normalize() length = %f, expected 1", got.Len())
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -4)

	if got := a.Add(b); got != V2(4, -2) {
		t.Errorf("Add() = %v, expected (4, -2)", got)
	}
	if got := a.Sub(b); got != V2(-2, 6) {
		t.Errorf("Sub() = %v, expected (-2, 6)", got)
	}
	if got := b.Scale(2); got != V2(6, -8) {
		t.Errorf("Scale() = %v, expected (6, -8)", got)
	}
	if got := b.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(V2(0, 0), V2(3, 4)); d != 5 {
		t.Errorf("Distance() = %f, expected 5", d)
	}
	if d := Distance(V2(10, 10), V2(10, 10)); d != 0 {
		t.Errorf("Distance() between identical points = %f, expected 0", d)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{50.0, 32.0, 8.0, 32.0}, // inverted range: min wins
		{-1.0, 32.0, 8.0, 32.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
