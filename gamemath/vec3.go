package gamemath

import "math"

// Vec3 is a world-space position or direction. +z points toward the camera,
// so enemies approach the player with increasing z.
type Vec3 struct {
	X, Y, Z float64
}

// Forward is the player's facing axis.
var Forward = Vec3{X: 0, Y: 0, Z: -1}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector of v, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Distance returns the 3D distance between a and b.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// RotateY rotates v about the vertical axis by yaw radians, using the same
// convention as FacingAngle: local +z ends up along the facing direction.
func (v Vec3) RotateY(yaw float64) Vec3 {
	sin, cos := math.Sincos(yaw)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}
