package squish

import "math"

// Vec2 is a 2D vector used for positions, offsets, and directions
// throughout the API. It is a value type: methods return new vectors and
// never mutate the receiver. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the vector sum v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the vector difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns the squared length of v (no sqrt).
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return o.Sub(v).Len() }

// Angle returns the direction of v in radians, in (-π, π].
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Rotate returns v rotated by theta radians.
func (v Vec2) Rotate(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Normalize returns the unit vector of v, or the zero vector if v has zero
// length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// SetLength returns a vector with v's direction and the given length.
// A negative length flips the direction. Returns the zero vector if v has
// zero length.
func (v Vec2) SetLength(l float64) Vec2 {
	return v.Normalize().Scale(l)
}

// Lerp returns the linear interpolation between v and o at parameter t.
// t is not clamped.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// unitVector returns the unit vector pointing in direction theta.
func unitVector(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{cos, sin}
}
