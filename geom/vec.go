// Package geom provides the 2-D vector type shared by entities, sensors and rendering.
package geom

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Vec2 is a 2-D point or vector. Methods without the InPlace suffix
// return a new value and leave the receiver untouched.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// AddInPlace adds o to v and returns v for chaining.
func (v *Vec2) AddInPlace(o Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Len returns the magnitude of v.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Angle returns the polar angle of v in [0, 2π).
// The arctangent of y/x is corrected per quadrant rather than using Atan2,
// so the zero vector and the positive X axis both map to 0.
func (v Vec2) Angle() float32 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	var angle float64
	if v.X == 0 {
		angle = math.Pi / 2
		if v.Y < 0 {
			angle = 3 * math.Pi / 2
		}
		return float32(angle)
	}
	angle = math.Atan(float64(v.Y) / float64(v.X))
	if v.X < 0 {
		angle += math.Pi
	} else if v.Y < 0 {
		angle += TwoPi
	}
	if angle >= TwoPi {
		angle -= TwoPi
	}
	r := float32(angle)
	if r >= float32(TwoPi) {
		r = 0
	}
	return r
}

// FromAngle returns the vector of length r pointing at angle a.
func FromAngle(a, r float32) Vec2 {
	s, c := math.Sincos(float64(a))
	return Vec2{X: float32(c) * r, Y: float32(s) * r}
}

// WrapAngle wraps an angle into [0, 2π).
func WrapAngle(a float32) float32 {
	const twoPi = float32(TwoPi)
	for a >= twoPi {
		a -= twoPi
	}
	for a < 0 {
		a += twoPi
	}
	// float32 rounding can land exactly on 2π after adding to a tiny negative
	if a >= twoPi {
		a = 0
	}
	return a
}
