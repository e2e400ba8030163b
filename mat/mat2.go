// SPDX-License-Identifier: MIT
// Package mat: the 2×2 fixed-size value type with closed-form determinant
// and inverse, and the planar rotation/scale constructors.

package mat

import (
	"math"

	"github.com/katalvlaran/geomat/vec"
)

// Mat2 is a 2×2 matrix stored row-major: element (r,c) is m[r*2+c].
// It is a plain value type: copies are independent and comparisons with
// == are element-exact.
type Mat2 [4]float64

// Identity2 returns the 2×2 identity.
func Identity2() Mat2 { return Mat2{1, 0, 0, 1} }

// Scaling2 returns the diagonal scaling matrix diag(sx, sy).
func Scaling2(sx, sy float64) Mat2 { return Mat2{sx, 0, 0, sy} }

// Rotation2 returns the counter-clockwise rotation by angle (radians).
func Rotation2(angle float64) Mat2 {
	s, c := math.Sincos(angle)

	return Mat2{c, -s, s, c}
}

// At returns element (r, c). Indices are the caller's contract; out-of-
// range values panic like any array access.
func (m Mat2) At(r, c int) float64 { return m[r*2+c] }

// Set assigns element (r, c) and returns the updated value.
func (m Mat2) Set(r, c int, v float64) Mat2 {
	m[r*2+c] = v

	return m
}

// Add returns m + o elementwise.
func (m Mat2) Add(o Mat2) Mat2 {
	return Mat2{m[0] + o[0], m[1] + o[1], m[2] + o[2], m[3] + o[3]}
}

// Sub returns m - o elementwise.
func (m Mat2) Sub(o Mat2) Mat2 {
	return Mat2{m[0] - o[0], m[1] - o[1], m[2] - o[2], m[3] - o[3]}
}

// Scale returns alpha * m.
func (m Mat2) Scale(alpha float64) Mat2 {
	return Mat2{m[0] * alpha, m[1] * alpha, m[2] * alpha, m[3] * alpha}
}

// Mul returns the matrix product m * o.
func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		m[0]*o[0] + m[1]*o[2], m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2], m[2]*o[1] + m[3]*o[3],
	}
}

// MulVec returns m * v.
func (m Mat2) MulVec(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{m[0]*v[0] + m[1]*v[1], m[2]*v[0] + m[3]*v[1]}
}

// Transpose returns mᵀ.
func (m Mat2) Transpose() Mat2 { return Mat2{m[0], m[2], m[1], m[3]} }

// Trace returns m00 + m11.
func (m Mat2) Trace() float64 { return m[0] + m[3] }

// Det returns the determinant ad - bc.
func (m Mat2) Det() float64 { return m[0]*m[3] - m[1]*m[2] }

// Inverse returns the closed-form inverse. It deliberately does not guard
// the determinant: a singular input yields Inf/NaN entries. Check Det (or
// HasNaN on the result) first when degeneracy is possible.
func (m Mat2) Inverse() Mat2 {
	inv := 1 / m.Det()

	return Mat2{m[3] * inv, -m[1] * inv, -m[2] * inv, m[0] * inv}
}

// EqualWithin reports elementwise |m - o| <= eps.
func (m Mat2) EqualWithin(o Mat2, eps float64) bool {
	for i := range m {
		if !(math.Abs(m[i]-o[i]) <= eps) {
			return false
		}
	}

	return true
}

// HasNaN reports whether any element is NaN or ±Inf.
func (m Mat2) HasNaN() bool {
	for i := range m {
		if math.IsNaN(m[i]) || math.IsInf(m[i], 0) {
			return true
		}
	}

	return false
}

// Mat widens m into a runtime-dimension 2×2 matrix.
func (m Mat2) Mat() *Mat {
	return &Mat{rows: 2, cols: 2, data: []float64{m[0], m[1], m[2], m[3]}}
}

// Mat2FromMat narrows a 2×2 runtime matrix into a Mat2.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch unless the shape is exactly
// 2×2.
func Mat2FromMat(m *Mat) (Mat2, error) {
	if err := validateNotNil(m); err != nil {
		return Mat2{}, err
	}
	if m.rows != 2 || m.cols != 2 {
		return Mat2{}, ErrDimensionMismatch
	}

	return Mat2{m.data[0], m.data[1], m.data[2], m.data[3]}, nil
}
