// SPDX-License-Identifier: MIT
// Package mat: the 3×3 fixed-size value type. Closed-form cofactor
// determinant/inverse, homogeneous 2-D transform application, and the
// rotation constructors (axis–angle, quaternion, Euler orders).

package mat

import (
	"math"

	"github.com/katalvlaran/geomat/vec"
)

// Mat3 is a 3×3 matrix stored row-major: element (r,c) is m[r*3+c].
// A plain value type: copies are independent, == is element-exact.
type Mat3 [9]float64

// Identity3 returns the 3×3 identity.
func Identity3() Mat3 { return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1} }

// Scaling3 returns the diagonal scaling matrix diag(sx, sy, sz).
func Scaling3(sx, sy, sz float64) Mat3 {
	return Mat3{sx, 0, 0, 0, sy, 0, 0, 0, sz}
}

// At returns element (r, c). Out-of-range indices panic like any array
// access.
func (m Mat3) At(r, c int) float64 { return m[r*3+c] }

// Set assigns element (r, c) and returns the updated value.
func (m Mat3) Set(r, c int, v float64) Mat3 {
	m[r*3+c] = v

	return m
}

// Add returns m + o elementwise.
func (m Mat3) Add(o Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] + o[i]
	}

	return out
}

// Sub returns m - o elementwise.
func (m Mat3) Sub(o Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] - o[i]
	}

	return out
}

// Scale returns alpha * m.
func (m Mat3) Scale(alpha float64) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] * alpha
	}

	return out
}

// Mul returns the matrix product m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	var r, c, k int
	for r = 0; r < 3; r++ {
		for c = 0; c < 3; c++ {
			for k = 0; k < 3; k++ {
				out[r*3+c] += m[r*3+k] * o[k*3+c]
			}
		}
	}

	return out
}

// MulVec returns m * v.
func (m Mat3) MulVec(v vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// MulVec2 applies m as a homogeneous 2-D transform: v is promoted to
// (x, y, 1), transformed, and divided by the resulting third component.
// A zero third component yields Inf/NaN, matching the unguarded
// closed-form policy.
func (m Mat3) MulVec2(v vec.Vec2) vec.Vec2 {
	x := m[0]*v[0] + m[1]*v[1] + m[2]
	y := m[3]*v[0] + m[4]*v[1] + m[5]
	w := m[6]*v[0] + m[7]*v[1] + m[8]

	return vec.Vec2{x / w, y / w}
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Trace returns the sum of the diagonal.
func (m Mat3) Trace() float64 { return m[0] + m[4] + m[8] }

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the closed-form adjugate inverse. No determinant guard:
// singular input yields Inf/NaN entries; check Det first when degeneracy
// is possible.
func (m Mat3) Inverse() Mat3 {
	inv := 1 / m.Det()

	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}
}

// EqualWithin reports elementwise |m - o| <= eps.
func (m Mat3) EqualWithin(o Mat3, eps float64) bool {
	for i := range m {
		if !(math.Abs(m[i]-o[i]) <= eps) {
			return false
		}
	}

	return true
}

// HasNaN reports whether any element is NaN or ±Inf.
func (m Mat3) HasNaN() bool {
	for i := range m {
		if math.IsNaN(m[i]) || math.IsInf(m[i], 0) {
			return true
		}
	}

	return false
}

// Mat widens m into a runtime-dimension 3×3 matrix.
func (m Mat3) Mat() *Mat {
	buf := make([]float64, 9)
	copy(buf, m[:])

	return &Mat{rows: 3, cols: 3, data: buf}
}

// Mat4 embeds m as the upper-left block of a 4×4 matrix with (3,3) = 1,
// i.e. the homogeneous form of a linear 3-D transform.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// Mat3FromMat narrows a 3×3 runtime matrix into a Mat3.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch unless the shape is exactly
// 3×3.
func Mat3FromMat(m *Mat) (Mat3, error) {
	if err := validateNotNil(m); err != nil {
		return Mat3{}, err
	}
	if m.rows != 3 || m.cols != 3 {
		return Mat3{}, ErrDimensionMismatch
	}
	var out Mat3
	copy(out[:], m.data)

	return out, nil
}

// ---------- rotation constructors ----------

// Rotation3AxisAngle returns the rotation by angle (radians) about axis,
// built as I·cosθ + K·sinθ + (1 − cosθ)·a⊗a with K the cross-product
// matrix of the unit axis. The axis need not be pre-normalized.
//
// Errors: vec.ErrZeroNorm for a zero axis.
func Rotation3AxisAngle(axis vec.Vec3, angle float64) (Mat3, error) {
	a, err := axis.Normalize()
	if err != nil {
		return Mat3{}, err
	}
	s, c := math.Sincos(angle)
	rc := 1 - c
	x, y, z := a[0], a[1], a[2]

	return Mat3{
		c + rc*x*x, rc*x*y - s*z, rc*x*z + s*y,
		rc*y*x + s*z, c + rc*y*y, rc*y*z - s*x,
		rc*z*x - s*y, rc*z*y + s*x, c + rc*z*z,
	}, nil
}

// Rotation3AxisAngleVector interprets v as an axis–angle vector: the
// direction is the axis, the length is the angle in radians. The zero
// vector encodes the null rotation and yields the identity.
func Rotation3AxisAngleVector(v vec.Vec3) Mat3 {
	angle := v.Norm()
	if angle == 0 {
		return Identity3()
	}
	// Non-zero norm, Normalize cannot fail.
	m, _ := Rotation3AxisAngle(v, angle)

	return m
}

// Rotation3Quat returns the rotation encoded by q. The quaternion is
// normalized internally, so any non-zero q is accepted.
//
// Errors: vec.ErrZeroNorm for the zero quaternion.
func Rotation3Quat(q vec.Quat) (Mat3, error) {
	u, err := q.Normalize()
	if err != nil {
		return Mat3{}, err
	}
	x, y, z, w := u.X, u.Y, u.Z, u.W

	return Mat3{
		1 - 2*(y*y + z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x + z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x + y*y),
	}, nil
}

// Euler-order constants for Rotation3Euler / Rotation4Euler. The digits
// name the application sequence of the axis rotations: 1 = x, 2 = y,
// 3 = z, leftmost applied first. Order123 therefore composes as
// Rz·Ry·Rx.
const (
	Order123 = 123
	Order132 = 132
	Order213 = 213
	Order231 = 231
	Order312 = 312
	Order321 = 321
)

// Rotation3Euler composes per-axis rotations by the Euler angles x, y, z
// (radians) in the given application order.
//
// Errors: ErrBadRotationOrder for an order outside the Order* set.
func Rotation3Euler(x, y, z float64, order int) (Mat3, error) {
	sx, cx := math.Sincos(x)
	sy, cy := math.Sincos(y)
	sz, cz := math.Sincos(z)
	rx := Mat3{1, 0, 0, 0, cx, -sx, 0, sx, cx}
	ry := Mat3{cy, 0, sy, 0, 1, 0, -sy, 0, cy}
	rz := Mat3{cz, -sz, 0, sz, cz, 0, 0, 0, 1}

	switch order {
	case Order123:
		return rz.Mul(ry).Mul(rx), nil
	case Order132:
		return ry.Mul(rz).Mul(rx), nil
	case Order213:
		return rz.Mul(rx).Mul(ry), nil
	case Order231:
		return rx.Mul(rz).Mul(ry), nil
	case Order312:
		return ry.Mul(rx).Mul(rz), nil
	case Order321:
		return rx.Mul(ry).Mul(rz), nil
	default:
		return Mat3{}, matErrorf(opEuler, ErrBadRotationOrder)
	}
}
