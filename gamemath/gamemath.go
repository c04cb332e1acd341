package gamemath

import "math"

// CalculateHomingVelocity returns a velocity of the given speed pointing from
// origin to target. A zero offset yields a zero velocity.
func CalculateHomingVelocity(origin, target Vec3, speed float64) Vec3 {
	return target.Sub(origin).Normalize().Scale(speed)
}

// StepToward moves pos toward target by speed units without overshooting.
func StepToward(pos, target Vec3, speed float64) Vec3 {
	offset := target.Sub(pos)
	dist := offset.Length()
	if dist == 0 || speed <= 0 {
		return pos
	}
	if speed >= dist {
		return target
	}
	return pos.Add(offset.Scale(speed / dist))
}

// FacingAngle returns the yaw that faces along dir on the x/z plane.
// ok is false when dir is exactly zero and the caller should keep its
// previous orientation.
func FacingAngle(dir Vec3) (angle float64, ok bool) {
	if dir.IsZero() {
		return 0, false
	}
	return math.Atan2(dir.X, dir.Z), true
}

// AngleBetween returns the angle in radians between two directions.
// Zero-length inputs give math.Pi so they never fall inside a cone test.
func AngleBetween(a, b Vec3) float64 {
	na, nb := a.Normalize(), b.Normalize()
	if na.IsZero() || nb.IsZero() {
		return math.Pi
	}
	return math.Acos(Clamp(na.Dot(nb), -1, 1))
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves current toward target by factor t (0..1).
func Lerp(current, target, t float64) float64 {
	return current + (target-current)*t
}
