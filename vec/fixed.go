// SPDX-License-Identifier: MIT
// Package vec: fixed-dimension Vec2/Vec3/Vec4 value types and the Quat
// quaternion. These carry their dimension in the type, so the Mat2/Mat3/Mat4
// surfaces in package mat stay shape-safe without runtime checks.

package vec

import "math"

// Vec2 is a 2-component vector. Index 0 is x, index 1 is y.
type Vec2 [2]float64

// Vec3 is a 3-component vector. Index 0 is x, 1 is y, 2 is z.
type Vec3 [3]float64

// Vec4 is a 4-component vector. Index 0 is x, 1 is y, 2 is z, 3 is w.
type Vec4 [4]float64

// ---------- Vec2 ----------

// Add returns v + u.
func (v Vec2) Add(u Vec2) Vec2 { return Vec2{v[0] + u[0], v[1] + u[1]} }

// Sub returns v - u.
func (v Vec2) Sub(u Vec2) Vec2 { return Vec2{v[0] - u[0], v[1] - u[1]} }

// Scale returns alpha * v.
func (v Vec2) Scale(alpha float64) Vec2 { return Vec2{v[0] * alpha, v[1] * alpha} }

// Dot returns the inner product of v and u.
func (v Vec2) Dot(u Vec2) float64 { return v[0]*u[0] + v[1]*u[1] }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return math.Hypot(v[0], v[1]) }

// Vector widens v into a runtime-dimension Vector.
func (v Vec2) Vector() Vector { return Vector{v[0], v[1]} }

// ---------- Vec3 ----------

// Add returns v + u.
func (v Vec3) Add(u Vec3) Vec3 { return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]} }

// Sub returns v - u.
func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]} }

// Scale returns alpha * v.
func (v Vec3) Scale(alpha float64) Vec3 { return Vec3{v[0] * alpha, v[1] * alpha, v[2] * alpha} }

// Dot returns the inner product of v and u.
func (v Vec3) Dot(u Vec3) float64 { return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] }

// Cross returns the right-handed cross product v × u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length.
// Errors: ErrZeroNorm when ||v|| == 0.
func (v Vec3) Normalize() (Vec3, error) {
	n := v.Norm()
	if n == 0 {
		return Vec3{}, ErrZeroNorm
	}

	return v.Scale(1 / n), nil
}

// Vector widens v into a runtime-dimension Vector.
func (v Vec3) Vector() Vector { return Vector{v[0], v[1], v[2]} }

// ---------- Vec4 ----------

// Add returns v + u.
func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4{v[0] + u[0], v[1] + u[1], v[2] + u[2], v[3] + u[3]}
}

// Sub returns v - u.
func (v Vec4) Sub(u Vec4) Vec4 {
	return Vec4{v[0] - u[0], v[1] - u[1], v[2] - u[2], v[3] - u[3]}
}

// Scale returns alpha * v.
func (v Vec4) Scale(alpha float64) Vec4 {
	return Vec4{v[0] * alpha, v[1] * alpha, v[2] * alpha, v[3] * alpha}
}

// Dot returns the inner product of v and u.
func (v Vec4) Dot(u Vec4) float64 { return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] + v[3]*u[3] }

// Norm returns the Euclidean length of v.
func (v Vec4) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// XYZ truncates v to its first three components.
func (v Vec4) XYZ() Vec3 { return Vec3{v[0], v[1], v[2]} }

// Vector widens v into a runtime-dimension Vector.
func (v Vec4) Vector() Vector { return Vector{v[0], v[1], v[2], v[3]} }

// ---------- Quat ----------

// Quat is a quaternion X*i + Y*j + Z*k + W. Rotation constructors in
// package mat require a unit quaternion; see Normalize.
type Quat struct {
	X, Y, Z, W float64
}

// Norm returns the quaternion magnitude.
func (q Quat) Norm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q scaled to unit magnitude.
// Errors: ErrZeroNorm when the magnitude is zero.
func (q Quat) Normalize() (Quat, error) {
	n := q.Norm()
	if n == 0 {
		return Quat{}, ErrZeroNorm
	}

	return Quat{q.X / n, q.Y / n, q.Z / n, q.W / n}, nil
}

// IsUnit reports whether |‖q‖ - 1| <= eps.
func (q Quat) IsUnit(eps float64) bool {
	return math.Abs(q.Norm()-1) <= eps
}

// AxisAngle builds the unit quaternion rotating by angle (radians) about
// the given axis. The axis need not be normalized; a zero axis yields
// ErrZeroNorm.
func AxisAngle(axis Vec3, angle float64) (Quat, error) {
	unit, err := axis.Normalize()
	if err != nil {
		return Quat{}, err
	}
	s := math.Sin(angle / 2)

	return Quat{unit[0] * s, unit[1] * s, unit[2] * s, math.Cos(angle / 2)}, nil
}
