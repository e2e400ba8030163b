// Package mat_test: closed-form Mat2/Mat3/Mat4 algebra and the transform
// constructors.
package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomat/mat"
	"github.com/katalvlaran/geomat/vec"
)

// ---------- Mat2 ----------

func TestMat2_DetInverse(t *testing.T) {
	t.Parallel()

	m := mat.Mat2{4, 7, 2, 6}
	assert.InDelta(t, 10.0, m.Det(), 1e-12)

	inv := m.Inverse()
	want := mat.Mat2{0.6, -0.7, -0.2, 0.4}
	assert.True(t, inv.EqualWithin(want, 1e-12))

	// Identity law and agreement with the runtime kernel.
	assert.True(t, m.Mul(inv).EqualWithin(mat.Identity2(), 1e-12))
	det, err := mat.Determinant(m.Mat())
	require.NoError(t, err)
	assert.InDelta(t, m.Det(), det, 1e-10)
}

func TestMat2_SingularInverseIsUnguarded(t *testing.T) {
	t.Parallel()

	m := mat.Mat2{1, 2, 2, 4}
	assert.Equal(t, 0.0, m.Det())
	assert.True(t, m.Inverse().HasNaN(), "singular closed-form inverse must surface Inf/NaN")
}

func TestRotation2(t *testing.T) {
	t.Parallel()

	r := mat.Rotation2(math.Pi / 2)
	got := r.MulVec(vec.Vec2{1, 0})
	assert.InDelta(t, 0.0, got[0], 1e-15)
	assert.InDelta(t, 1.0, got[1], 1e-15)

	for _, angle := range []float64{0, math.Pi / 4, math.Pi / 2, math.Pi} {
		r = mat.Rotation2(angle)
		// Rotations are orthonormal: R·Rᵀ = I, det = 1.
		assert.True(t, r.Mul(r.Transpose()).EqualWithin(mat.Identity2(), 1e-15), "angle=%v", angle)
		assert.InDelta(t, 1.0, r.Det(), 1e-15, "angle=%v", angle)
		// And the inverse is the reverse rotation.
		assert.True(t, r.Inverse().EqualWithin(mat.Rotation2(-angle), 1e-15), "angle=%v", angle)
	}
}

func TestMat2_Conversions(t *testing.T) {
	t.Parallel()

	m := mat.Mat2{1, 2, 3, 4}
	back, err := mat.Mat2FromMat(m.Mat())
	require.NoError(t, err)
	assert.Equal(t, m, back)

	_, err = mat.Mat2FromMat(mat.MustFromSlice(3, 3, make([]float64, 9)))
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

// ---------- Mat3 ----------

func TestMat3_DetInverse(t *testing.T) {
	t.Parallel()

	m := mat.Mat3{
		2, 1, -1,
		-3, -1, 2,
		-2, 1, 2,
	}
	assert.InDelta(t, -1.0, m.Det(), 1e-12)
	assert.True(t, m.Mul(m.Inverse()).EqualWithin(mat.Identity3(), 1e-12))

	det, err := mat.Determinant(m.Mat())
	require.NoError(t, err)
	assert.InDelta(t, m.Det(), det, 1e-10)

	inv, err := mat.Inverse(m.Mat())
	require.NoError(t, err)
	closed, err := mat.Mat3FromMat(inv)
	require.NoError(t, err)
	assert.True(t, m.Inverse().EqualWithin(closed, 1e-10))
}

func TestMat3_MulVec2Homogeneous(t *testing.T) {
	t.Parallel()

	// Pure 2-D translation in homogeneous form.
	tr := mat.Mat3{
		1, 0, 5,
		0, 1, -3,
		0, 0, 1,
	}
	got := tr.MulVec2(vec.Vec2{2, 2})
	assert.InDelta(t, 7.0, got[0], 1e-15)
	assert.InDelta(t, -1.0, got[1], 1e-15)
}

func TestRotation3AxisAngle(t *testing.T) {
	t.Parallel()

	// Quarter turn about z sends x to y.
	r, err := mat.Rotation3AxisAngle(vec.Vec3{0, 0, 1}, math.Pi/2)
	require.NoError(t, err)
	got := r.MulVec(vec.Vec3{1, 0, 0})
	assert.InDelta(t, 0.0, got[0], 1e-15)
	assert.InDelta(t, 1.0, got[1], 1e-15)
	assert.InDelta(t, 0.0, got[2], 1e-15)

	// The axis itself is fixed.
	axis := vec.Vec3{1, 2, 3}
	r, err = mat.Rotation3AxisAngle(axis, 1.1)
	require.NoError(t, err)
	unit, err := axis.Normalize()
	require.NoError(t, err)
	fixed := r.MulVec(unit)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, unit[i], fixed[i], 1e-14)
	}

	_, err = mat.Rotation3AxisAngle(vec.Vec3{}, 1)
	assert.ErrorIs(t, err, vec.ErrZeroNorm)
}

func TestRotation3_RoundTrip(t *testing.T) {
	t.Parallel()

	axis := vec.Vec3{1, -1, 0.5}
	for _, angle := range []float64{0, math.Pi / 4, math.Pi / 2, math.Pi} {
		r, err := mat.Rotation3AxisAngle(axis, angle)
		require.NoError(t, err)
		back, err := mat.Rotation3AxisAngle(axis, -angle)
		require.NoError(t, err)
		assert.True(t, r.Mul(back).EqualWithin(mat.Identity3(), 1e-14), "angle=%v", angle)
		assert.InDelta(t, 1.0, r.Det(), 1e-14, "rotations preserve volume")
	}
}

func TestRotation3AxisAngleVector(t *testing.T) {
	t.Parallel()

	assert.Equal(t, mat.Identity3(), mat.Rotation3AxisAngleVector(vec.Vec3{}))

	// Direction is the axis, length the angle.
	v := vec.Vec3{0, 0, math.Pi / 2}
	got := mat.Rotation3AxisAngleVector(v)
	want, err := mat.Rotation3AxisAngle(vec.Vec3{0, 0, 1}, math.Pi/2)
	require.NoError(t, err)
	assert.True(t, got.EqualWithin(want, 1e-15))
}

func TestRotation3Quat_MatchesAxisAngle(t *testing.T) {
	t.Parallel()

	axis := vec.Vec3{2, 1, -1}
	angle := 0.7

	q, err := vec.AxisAngle(axis, angle)
	require.NoError(t, err)
	fromQuat, err := mat.Rotation3Quat(q)
	require.NoError(t, err)
	fromAxis, err := mat.Rotation3AxisAngle(axis, angle)
	require.NoError(t, err)
	assert.True(t, fromQuat.EqualWithin(fromAxis, 1e-14))

	_, err = mat.Rotation3Quat(vec.Quat{})
	assert.ErrorIs(t, err, vec.ErrZeroNorm)
}

func TestRotation3Euler_Orders(t *testing.T) {
	t.Parallel()

	const x, y, z = 0.3, -0.6, 1.2

	// Every valid order yields a proper rotation.
	for _, order := range []int{
		mat.Order123, mat.Order132, mat.Order213,
		mat.Order231, mat.Order312, mat.Order321,
	} {
		r, err := mat.Rotation3Euler(x, y, z, order)
		require.NoError(t, err, "order=%d", order)
		assert.True(t, r.Mul(r.Transpose()).EqualWithin(mat.Identity3(), 1e-14), "order=%d", order)
		assert.InDelta(t, 1.0, r.Det(), 1e-14, "order=%d", order)
	}

	// Order312 composes as Ry·Rx·Rz.
	rx, err := mat.Rotation3AxisAngle(vec.Vec3{1, 0, 0}, x)
	require.NoError(t, err)
	ry, err := mat.Rotation3AxisAngle(vec.Vec3{0, 1, 0}, y)
	require.NoError(t, err)
	rz, err := mat.Rotation3AxisAngle(vec.Vec3{0, 0, 1}, z)
	require.NoError(t, err)
	want := ry.Mul(rx).Mul(rz)
	got, err := mat.Rotation3Euler(x, y, z, mat.Order312)
	require.NoError(t, err)
	assert.True(t, got.EqualWithin(want, 1e-14))

	// A single non-zero angle reduces to the plain axis rotation in any
	// order that exists.
	got, err = mat.Rotation3Euler(x, 0, 0, mat.Order123)
	require.NoError(t, err)
	assert.True(t, got.EqualWithin(rx, 1e-14))

	_, err = mat.Rotation3Euler(x, y, z, 999)
	assert.ErrorIs(t, err, mat.ErrBadRotationOrder)
}

// ---------- Mat4 ----------

func TestMat4_DetInverse(t *testing.T) {
	t.Parallel()

	// A well-conditioned affine transform.
	r, err := mat.Rotation3AxisAngle(vec.Vec3{1, 2, 3}, 0.9)
	require.NoError(t, err)
	m := mat.TRS(vec.Vec3{1, -2, 3}, r, 2)

	assert.True(t, m.Mul(m.Inverse()).EqualWithin(mat.Identity4(), 1e-12))

	det, err := mat.Determinant(m.Mat())
	require.NoError(t, err)
	assert.InDelta(t, m.Det(), det, 1e-9)
	// det(T·R·S) = s³ for a pure rotation R.
	assert.InDelta(t, 8.0, m.Det(), 1e-12)
}

func TestMat4_InverseMatchesRuntimeKernel(t *testing.T) {
	t.Parallel()

	m := mat.Mat4{
		3, 0, 2, 1,
		0, 1, 0, -2,
		2, 0, 5, 0,
		1, 1, 0, 4,
	}
	inv, err := mat.Inverse(m.Mat())
	require.NoError(t, err)
	closed, err := mat.Mat4FromMat(inv)
	require.NoError(t, err)
	assert.True(t, m.Inverse().EqualWithin(closed, 1e-10))
}

func TestTranslation4(t *testing.T) {
	t.Parallel()

	tr := mat.Translation4(vec.Vec3{1, 2, 3})
	got := tr.MulVec3(vec.Vec3{10, 20, 30})
	assert.InDelta(t, 11.0, got[0], 1e-15)
	assert.InDelta(t, 22.0, got[1], 1e-15)
	assert.InDelta(t, 33.0, got[2], 1e-15)
}

func TestScaling4(t *testing.T) {
	t.Parallel()

	s := mat.Scaling4(2, 3, 4)
	got := s.MulVec3(vec.Vec3{1, 1, 1})
	assert.Equal(t, vec.Vec3{2, 3, 4}, got)
}

func TestTRS_AppliesScaleRotateTranslate(t *testing.T) {
	t.Parallel()

	r, err := mat.Rotation3AxisAngle(vec.Vec3{0, 0, 1}, math.Pi/2)
	require.NoError(t, err)
	tvec := vec.Vec3{10, 0, 0}
	m := mat.TRS(tvec, r, 2)

	// p = (1,0,0): scale → (2,0,0), rotate → (0,2,0), translate → (10,2,0).
	got := m.MulVec3(vec.Vec3{1, 0, 0})
	assert.InDelta(t, 10.0, got[0], 1e-14)
	assert.InDelta(t, 2.0, got[1], 1e-14)
	assert.InDelta(t, 0.0, got[2], 1e-14)

	// Same result as multiplying the factor matrices.
	composed := mat.Translation4(tvec).Mul(r.Mat4()).Mul(mat.Scaling4(2, 2, 2))
	assert.True(t, m.EqualWithin(composed, 1e-14))
}

func TestMat4_Mat3RoundTrip(t *testing.T) {
	t.Parallel()

	r, err := mat.Rotation3AxisAngle(vec.Vec3{1, 1, 1}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, r, r.Mat4().Mat3())

	m4, err := mat.Rotation4AxisAngle(vec.Vec3{1, 1, 1}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, r.Mat4(), m4)
}

func TestMat4_Conversions(t *testing.T) {
	t.Parallel()

	m := mat.Identity4().Set(1, 3, 5)
	back, err := mat.Mat4FromMat(m.Mat())
	require.NoError(t, err)
	assert.Equal(t, m, back)

	_, err = mat.Mat4FromMat(mat.MustFromSlice(2, 2, make([]float64, 4)))
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)

	_, err = mat.Mat4FromMat(nil)
	assert.ErrorIs(t, err, mat.ErrNilMatrix)
}

func TestRotation4Wrappers(t *testing.T) {
	t.Parallel()

	q, err := vec.AxisAngle(vec.Vec3{0, 1, 0}, 0.4)
	require.NoError(t, err)
	fromQuat, err := mat.Rotation4Quat(q)
	require.NoError(t, err)
	fromAxis, err := mat.Rotation4AxisAngle(vec.Vec3{0, 1, 0}, 0.4)
	require.NoError(t, err)
	assert.True(t, fromQuat.EqualWithin(fromAxis, 1e-14))

	_, err = mat.Rotation4Euler(0, 0, 0, 111)
	assert.ErrorIs(t, err, mat.ErrBadRotationOrder)

	id, err := mat.Rotation4Euler(0, 0, 0, mat.Order123)
	require.NoError(t, err)
	assert.True(t, id.EqualWithin(mat.Identity4(), 1e-15))
}
