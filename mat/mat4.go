// SPDX-License-Identifier: MIT
// Package mat: the 4×4 fixed-size value type for homogeneous 3-D
// transforms. Closed-form determinant/inverse via 2×2 sub-determinants,
// translation/scale constructors, rotation wrappers over Mat3, and the
// scale–rotate–translate composition.

package mat

import (
	"math"

	"github.com/katalvlaran/geomat/vec"
)

// Mat4 is a 4×4 matrix stored row-major: element (r,c) is m[r*4+c].
// A plain value type: copies are independent, == is element-exact.
type Mat4 [16]float64

// Identity4 returns the 4×4 identity.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scaling4 returns the homogeneous scaling matrix diag(sx, sy, sz, 1).
func Scaling4(sx, sy, sz float64) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns the homogeneous translation by t.
func Translation4(t vec.Vec3) Mat4 {
	return Mat4{
		1, 0, 0, t[0],
		0, 1, 0, t[1],
		0, 0, 1, t[2],
		0, 0, 0, 1,
	}
}

// At returns element (r, c). Out-of-range indices panic like any array
// access.
func (m Mat4) At(r, c int) float64 { return m[r*4+c] }

// Set assigns element (r, c) and returns the updated value.
func (m Mat4) Set(r, c int, v float64) Mat4 {
	m[r*4+c] = v

	return m
}

// Add returns m + o elementwise.
func (m Mat4) Add(o Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] + o[i]
	}

	return out
}

// Sub returns m - o elementwise.
func (m Mat4) Sub(o Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] - o[i]
	}

	return out
}

// Scale returns alpha * m.
func (m Mat4) Scale(alpha float64) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] * alpha
	}

	return out
}

// Mul returns the matrix product m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	var r, c, k int
	for r = 0; r < 4; r++ {
		for c = 0; c < 4; c++ {
			for k = 0; k < 4; k++ {
				out[r*4+c] += m[r*4+k] * o[k*4+c]
			}
		}
	}

	return out
}

// MulVec returns m * v.
func (m Mat4) MulVec(v vec.Vec4) vec.Vec4 {
	return vec.Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// MulVec3 applies m as a homogeneous 3-D transform: v is promoted to
// (x, y, z, 1), transformed, and divided by the resulting w. A zero w
// yields Inf/NaN, matching the unguarded closed-form policy.
func (m Mat4) MulVec3(v vec.Vec3) vec.Vec3 {
	h := m.MulVec(vec.Vec4{v[0], v[1], v[2], 1})

	return vec.Vec3{h[0] / h[3], h[1] / h[3], h[2] / h[3]}
}

// Transpose returns mᵀ.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Trace returns the sum of the diagonal.
func (m Mat4) Trace() float64 { return m[0] + m[5] + m[10] + m[15] }

// subfactors returns the six 2×2 sub-determinants of the top two rows (s)
// and of the bottom two rows (c). They assemble both Det and Inverse.
func (m Mat4) subfactors() (s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 float64) {
	s0 = m[0]*m[5] - m[4]*m[1]
	s1 = m[0]*m[6] - m[4]*m[2]
	s2 = m[0]*m[7] - m[4]*m[3]
	s3 = m[1]*m[6] - m[5]*m[2]
	s4 = m[1]*m[7] - m[5]*m[3]
	s5 = m[2]*m[7] - m[6]*m[3]

	c5 = m[10]*m[15] - m[14]*m[11]
	c4 = m[9]*m[15] - m[13]*m[11]
	c3 = m[9]*m[14] - m[13]*m[10]
	c2 = m[8]*m[15] - m[12]*m[11]
	c1 = m[8]*m[14] - m[12]*m[10]
	c0 = m[8]*m[13] - m[12]*m[9]

	return
}

// Det returns the determinant assembled from 2×2 sub-determinants.
func (m Mat4) Det() float64 {
	s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 := m.subfactors()

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Inverse returns the closed-form inverse assembled from the same 2×2
// sub-determinants as Det. No determinant guard: singular input yields
// Inf/NaN entries; check Det first when degeneracy is possible.
func (m Mat4) Inverse() Mat4 {
	s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 := m.subfactors()
	inv := 1 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)

	return Mat4{
		(m[5]*c5 - m[6]*c4 + m[7]*c3) * inv,
		(-m[1]*c5 + m[2]*c4 - m[3]*c3) * inv,
		(m[13]*s5 - m[14]*s4 + m[15]*s3) * inv,
		(-m[9]*s5 + m[10]*s4 - m[11]*s3) * inv,

		(-m[4]*c5 + m[6]*c2 - m[7]*c1) * inv,
		(m[0]*c5 - m[2]*c2 + m[3]*c1) * inv,
		(-m[12]*s5 + m[14]*s2 - m[15]*s1) * inv,
		(m[8]*s5 - m[10]*s2 + m[11]*s1) * inv,

		(m[4]*c4 - m[5]*c2 + m[7]*c0) * inv,
		(-m[0]*c4 + m[1]*c2 - m[3]*c0) * inv,
		(m[12]*s4 - m[13]*s2 + m[15]*s0) * inv,
		(-m[8]*s4 + m[9]*s2 - m[11]*s0) * inv,

		(-m[4]*c3 + m[5]*c1 - m[6]*c0) * inv,
		(m[0]*c3 - m[1]*c1 + m[2]*c0) * inv,
		(-m[12]*s3 + m[13]*s1 - m[14]*s0) * inv,
		(m[8]*s3 - m[9]*s1 + m[10]*s0) * inv,
	}
}

// EqualWithin reports elementwise |m - o| <= eps.
func (m Mat4) EqualWithin(o Mat4, eps float64) bool {
	for i := range m {
		if !(math.Abs(m[i]-o[i]) <= eps) {
			return false
		}
	}

	return true
}

// HasNaN reports whether any element is NaN or ±Inf.
func (m Mat4) HasNaN() bool {
	for i := range m {
		if math.IsNaN(m[i]) || math.IsInf(m[i], 0) {
			return true
		}
	}

	return false
}

// Mat widens m into a runtime-dimension 4×4 matrix.
func (m Mat4) Mat() *Mat {
	buf := make([]float64, 16)
	copy(buf, m[:])

	return &Mat{rows: 4, cols: 4, data: buf}
}

// Mat3 extracts the upper-left 3×3 block (the linear part of a
// homogeneous transform).
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Mat4FromMat narrows a 4×4 runtime matrix into a Mat4.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch unless the shape is exactly
// 4×4.
func Mat4FromMat(m *Mat) (Mat4, error) {
	if err := validateNotNil(m); err != nil {
		return Mat4{}, err
	}
	if m.rows != 4 || m.cols != 4 {
		return Mat4{}, ErrDimensionMismatch
	}
	var out Mat4
	copy(out[:], m.data)

	return out, nil
}

// ---------- rotation / composition constructors ----------

// Rotation4AxisAngle returns the homogeneous rotation by angle (radians)
// about axis. See Rotation3AxisAngle for the construction.
//
// Errors: vec.ErrZeroNorm for a zero axis.
func Rotation4AxisAngle(axis vec.Vec3, angle float64) (Mat4, error) {
	r, err := Rotation3AxisAngle(axis, angle)
	if err != nil {
		return Mat4{}, err
	}

	return r.Mat4(), nil
}

// Rotation4Quat returns the homogeneous rotation encoded by q.
//
// Errors: vec.ErrZeroNorm for the zero quaternion.
func Rotation4Quat(q vec.Quat) (Mat4, error) {
	r, err := Rotation3Quat(q)
	if err != nil {
		return Mat4{}, err
	}

	return r.Mat4(), nil
}

// Rotation4Euler composes per-axis rotations by the Euler angles x, y, z
// (radians) in the given application order, in homogeneous form.
//
// Errors: ErrBadRotationOrder for an order outside the Order* set.
func Rotation4Euler(x, y, z float64, order int) (Mat4, error) {
	r, err := Rotation3Euler(x, y, z, order)
	if err != nil {
		return Mat4{}, err
	}

	return r.Mat4(), nil
}

// TRS composes translation t, rotation r and uniform scale s into the
// single transform T·R·S: the scale folds into the rotation block, the
// translation fills the last column. Applying the result to a point
// scales first, then rotates, then translates.
func TRS(t vec.Vec3, r Mat3, s float64) Mat4 {
	return Mat4{
		r[0] * s, r[1] * s, r[2] * s, t[0],
		r[3] * s, r[4] * s, r[5] * s, t[1],
		r[6] * s, r[7] * s, r[8] * s, t[2],
		0, 0, 0, 1,
	}
}
