package noise

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f64"
)

func TestRemap(t *testing.T) {
	tests := []struct {
		name                            string
		v, inMin, inMax, outMin, outMax float64
		clamp                           bool
		want                            float64
	}{
		{"noise to unit", 0, -1, 1, 0, 1, false, 0.5},
		{"noise to byte", 1, -1, 1, 0, 255, false, 255},
		{"extrapolate", 2, 0, 1, 0, 10, false, 20},
		{"clamp high", 2, 0, 1, 0, 10, true, 10},
		{"clamp low", -3, 0, 1, 0, 10, true, 0},
		{"reversed output", 0.25, 0, 1, 1, 0, false, 0.75},
		{"reversed output clamped", 2, 0, 1, 1, 0, true, 0},
	}

	for _, tt := range tests {
		got := Remap(tt.v, tt.inMin, tt.inMax, tt.outMin, tt.outMax, tt.clamp)
		if !near(got, tt.want, 1e-12) {
			t.Errorf("%s: Remap() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want float64 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct{ a, b, t, want float64 }{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-2, 2, 0.25, -1},
		{0, 10, 1.5, 15},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance(0, 0, 3, 4) = %v, want 5", got)
	}
	if got := Distance(1, 1, 1, 1); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestFade(t *testing.T) {
	tests := []struct{ t, want float64 }{
		{0, 0},
		{1, 1},
		{0.5, 0.5},
		{0.25, 0.103515625},
	}
	for _, tt := range tests {
		if got := fade(tt.t); !near(got, tt.want, 1e-15) {
			t.Errorf("fade(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestGradient(t *testing.T) {
	want := []f64.Vec2{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	if NumGradients != len(want) {
		t.Fatalf("NumGradients = %d, want %d", NumGradients, len(want))
	}
	d := f64.Vec2{0.25, 0.5}
	for i, w := range want {
		if g := Gradient(i); g != w {
			t.Errorf("Gradient(%d) = %v, want %v", i, g, w)
		}
		if got := grad(i, d); got != w[0]*0.25+w[1]*0.5 {
			t.Errorf("grad(%d, %v) = %v, want %v", i, d, got, w[0]*0.25+w[1]*0.5)
		}
	}
	// Only the low two bits select a gradient.
	if Gradient(6) != Gradient(2) || grad(255, f64.Vec2{1, 2}) != grad(3, f64.Vec2{1, 2}) {
		t.Error("gradient selection must use hash & 3")
	}
}

func TestCornerOffsets(t *testing.T) {
	got := cornerOffsets(0.25, 0.75)
	want := [4]f64.Vec2{
		cornerAA: {0.25, 0.75},
		cornerBA: {-0.75, 0.75},
		cornerAB: {0.25, -0.25},
		cornerBB: {-0.75, -0.25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cornerOffsets(0.25, 0.75) mismatch (-want +got):\n%s", diff)
	}

	// At a lattice corner every gradient contributes zero from its own corner.
	at := cornerOffsets(0, 0)
	for i := range NumGradients {
		if v := grad(i, at[cornerAA]); v != 0 {
			t.Errorf("grad(%d, %v) = %v, want 0", i, at[cornerAA], v)
		}
	}
}
