package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("Right/Bottom = %d/%d, expected 30/25", r.Right(), r.Bottom())
	}
}

func TestPointDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Point
		manhattan int
	}{
		{"same point", P(3, 3), P(3, 3), 0},
		{"horizontal", P(1, 1), P(5, 1), 4},
		{"diagonal", P(1, 1), P(4, 4), 6},
		{"mixed", P(7, 2), P(1, 5), 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Manhattan(tc.b); got != tc.manhattan {
				t.Errorf("Manhattan() = %d, expected %d", got, tc.manhattan)
			}
			if got := tc.b.Manhattan(tc.a); got != tc.manhattan {
				t.Errorf("Manhattan() (reversed) = %d, expected %d", got, tc.manhattan)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := P(2, 3).Add(-1, 4)
	if p != P(1, 7) {
		t.Errorf("Add() = %v, expected (1,7)", p)
	}
}

func TestVec2String(t *testing.T) {
	if got := V(1.5, -2).String(); got != "(1.500,-2.000)" {
		t.Errorf("String() = %q", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{0.5, 0.5},
		{-0.2, 0},
		{1.7, 1},
	}

	for _, tc := range tests {
		if got := Clamp01(tc.val); got != tc.expected {
			t.Errorf("Clamp01(%v) = %v, expected %v", tc.val, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs returned an unexpected value")
	}
}
