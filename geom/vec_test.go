package geom

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestVecArithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub = %v, want {2 6}", got)
	}
	if got := a.Scale(0.5); got != (Vec2{X: 1.5, Y: 2}) {
		t.Errorf("Scale = %v, want {1.5 2}", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}

	// Value receivers must not mutate
	if a != (Vec2{X: 3, Y: 4}) {
		t.Errorf("receiver mutated: %v", a)
	}
}

func TestVecInPlace(t *testing.T) {
	v := Vec2{X: 1, Y: 1}
	v.AddInPlace(Vec2{X: 1, Y: 2}).AddInPlace(Vec2{X: -3, Y: 0.5})
	if v != (Vec2{X: -1, Y: 3.5}) {
		t.Errorf("chained in-place ops = %v, want {-1 3.5}", v)
	}
}

func TestAngleQuadrants(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float32
	}{
		{"zero", Vec2{}, 0},
		{"+x", Vec2{X: 1}, 0},
		{"+y", Vec2{Y: 1}, math.Pi / 2},
		{"-x", Vec2{X: -1}, math.Pi},
		{"-y", Vec2{Y: -1}, 3 * math.Pi / 2},
		{"q1", Vec2{X: 1, Y: 1}, math.Pi / 4},
		{"q2", Vec2{X: -1, Y: 1}, 3 * math.Pi / 4},
		{"q3", Vec2{X: -1, Y: -1}, 5 * math.Pi / 4},
		{"q4", Vec2{X: 1, Y: -1}, 7 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Angle()
			if !approx(got, tt.want) {
				t.Errorf("Angle(%v) = %v, want %v", tt.v, got, tt.want)
			}
			if got < 0 || got >= TwoPi {
				t.Errorf("Angle(%v) = %v outside [0, 2π)", tt.v, got)
			}
		})
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	for _, a := range []float32{0, 0.3, 1.7, 3.1, 4.4, 6.0} {
		v := FromAngle(a, 10)
		if !approx(v.Len(), 10) {
			t.Errorf("FromAngle(%v, 10).Len() = %v", a, v.Len())
		}
		if got := v.Angle(); math.Abs(float64(got-a)) > 1e-4 {
			t.Errorf("FromAngle(%v).Angle() = %v", a, got)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1, 1},
		{-1, TwoPi - 1},
		{TwoPi + 0.5, 0.5},
		{-TwoPi - 0.5, TwoPi - 0.5},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if !approx(got, tt.want) {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= TwoPi {
			t.Errorf("WrapAngle(%v) = %v outside [0, 2π)", tt.in, got)
		}
	}
}
