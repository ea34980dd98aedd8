package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp interpolates component-wise between a and b by t
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Slerp interpolates orientations along the shortest arc by t
// Inputs are renormalized so accumulated drift never feeds back into the result
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	return mgl64.QuatSlerp(a.Normalize(), b.Normalize(), t)
}

// Forward returns the orientation's forward basis vector (-Z rotated)
func Forward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{0, 0, -1})
}

// Right returns the orientation's right basis vector (+X rotated)
func Right(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{1, 0, 0})
}

// Horizontal projects v onto the horizontal plane by zeroing the Y component
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// NormalizeOrZero returns the unit vector of v, or reports failure when the
// length is below eps. A zero-length normalize must never propagate NaN.
func NormalizeOrZero(v mgl64.Vec3, eps float64) (mgl64.Vec3, bool) {
	lenSq := v.Dot(v)
	if lenSq < eps*eps {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / math.Sqrt(lenSq)), true
}

// AngleBetween returns the rotation angle in radians from a to b
func AngleBetween(a, b mgl64.Quat) float64 {
	d := a.Normalize().Dot(b.Normalize())
	if d < 0 {
		d = -d
	}
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}
