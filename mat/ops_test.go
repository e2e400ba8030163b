// Package mat_test: elementwise algebra, products, transpose, tensor and
// whole-matrix queries.
package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomat/mat"
	"github.com/katalvlaran/geomat/vec"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := mat.MustFromSlice(2, 2, []float64{1, 2, 3, 4})
	b := mat.MustFromSlice(2, 2, []float64{10, 20, 30, 40})

	sum, err := mat.Add(a, b)
	require.NoError(t, err)
	requireMatEqual(t, mat.MustFromSlice(2, 2, []float64{11, 22, 33, 44}), sum, 0)

	diff, err := mat.Sub(b, a)
	require.NoError(t, err)
	requireMatEqual(t, mat.MustFromSlice(2, 2, []float64{9, 18, 27, 36}), diff, 0)

	// Inputs stay untouched.
	requireMatEqual(t, mat.MustFromSlice(2, 2, []float64{1, 2, 3, 4}), a, 0)
}

func TestAddSub_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := mat.MustFromSlice(2, 2, []float64{1, 2, 3, 4})
	b := mat.MustFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})

	_, err := mat.Add(a, b)
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
	_, err = mat.Sub(a, b)
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

func TestNilOperands(t *testing.T) {
	t.Parallel()

	a := mat.MustFromSlice(1, 1, []float64{1})

	_, err := mat.Add(nil, a)
	assert.ErrorIs(t, err, mat.ErrNilMatrix)
	_, err = mat.Mul(a, nil)
	assert.ErrorIs(t, err, mat.ErrNilMatrix)
	_, err = mat.Transpose(nil)
	assert.ErrorIs(t, err, mat.ErrNilMatrix)
}

func TestNegScaleDiv(t *testing.T) {
	t.Parallel()

	m := mat.MustFromSlice(2, 2, []float64{1, -2, 3, -4})

	neg, err := mat.Neg(m)
	require.NoError(t, err)
	requireMatEqual(t, mat.MustFromSlice(2, 2, []float64{-1, 2, -3, 4}), neg, 0)

	scaled, err := mat.Scale(m, 2)
	require.NoError(t, err)
	requireMatEqual(t, mat.MustFromSlice(2, 2, []float64{2, -4, 6, -8}), scaled, 0)

	halved, err := mat.Div(m, 2)
	require.NoError(t, err)
	requireMatEqual(t, mat.MustFromSlice(2, 2, []float64{0.5, -1, 1.5, -2}), halved, 0)
}

func TestDiv_ByZeroFollowsIEEE(t *testing.T) {
	t.Parallel()

	m := mat.MustFromSlice(1, 2, []float64{1, 0})
	out, err := mat.Div(m, 0)
	require.NoError(t, err)
	assert.True(t, mat.HasNaN(out), "1/0 and 0/0 must surface as Inf/NaN")
}

func TestMul_KnownProduct(t *testing.T) {
	t.Parallel()

	a := mat.MustFromSlice(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	b := mat.MustFromSlice(3, 2, []float64{
		7, 8,
		9, 10,
		11, 12,
	})

	got, err := mat.Mul(a, b)
	require.NoError(t, err)
	want := mat.MustFromSlice(2, 2, []float64{
		58, 64,
		139, 154,
	})
	requireMatEqual(t, want, got, 0)

	_, err = mat.Mul(b, a) // 3x2 * 2x3 is fine the other way
	require.NoError(t, err)
	_, err = mat.Mul(a, a)
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	a := randomMat(t, 4, 4, 7)
	id, err := mat.Identity(4)
	require.NoError(t, err)

	left, err := mat.Mul(id, a)
	require.NoError(t, err)
	right, err := mat.Mul(a, id)
	require.NoError(t, err)
	requireMatEqual(t, a, left, 0)
	requireMatEqual(t, a, right, 0)
}

func TestMulVec(t *testing.T) {
	t.Parallel()

	m := mat.MustFromSlice(2, 3, []float64{
		1, 0, 2,
		0, 3, 0,
	})
	got, err := mat.MulVec(m, vec.Vector{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, vec.Vector{7, 6}, got)

	_, err = mat.MulVec(m, vec.Vector{1, 2})
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	m := randomMat(t, 3, 5, 11)
	mt, err := mat.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 5, mt.Rows())
	require.Equal(t, 3, mt.Cols())

	back, err := mat.Transpose(mt)
	require.NoError(t, err)
	requireMatEqual(t, m, back, 0)
}

func TestTensor(t *testing.T) {
	t.Parallel()

	got, err := mat.Tensor(vec.Vector{1, 2, 3}, vec.Vector{4, 5})
	require.NoError(t, err)
	want := mat.MustFromSlice(3, 2, []float64{
		4, 5,
		8, 10,
		12, 15,
	})
	requireMatEqual(t, want, got, 0)

	_, err = mat.Tensor(vec.Vector{}, vec.Vector{1})
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

func TestEqualWithin(t *testing.T) {
	t.Parallel()

	a := mat.MustFromSlice(2, 2, []float64{1, 2, 3, 4})
	b := mat.MustFromSlice(2, 2, []float64{1 + 1e-9, 2, 3, 4})

	assert.True(t, mat.EqualWithin(a, b, 1e-8))
	assert.False(t, mat.EqualWithin(a, b, 1e-10))
	assert.False(t, mat.Equal(a, mat.MustFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})))
	assert.False(t, mat.EqualWithin(nil, a, 1))

	// NaN never compares equal, whatever the tolerance.
	n := mat.MustFromSlice(1, 1, []float64{math.NaN()})
	assert.False(t, mat.EqualWithin(n, n, math.Inf(1)))
}

func TestTrace(t *testing.T) {
	t.Parallel()

	m := mat.MustFromSlice(3, 3, []float64{
		1, 9, 9,
		9, 2, 9,
		9, 9, 3,
	})
	tr, err := mat.Trace(m)
	require.NoError(t, err)
	assert.Equal(t, 6.0, tr)

	_, err = mat.Trace(mat.MustFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

func TestHasNaN(t *testing.T) {
	t.Parallel()

	assert.False(t, mat.HasNaN(mat.MustFromSlice(1, 2, []float64{1, 2})))
	assert.True(t, mat.HasNaN(mat.MustFromSlice(1, 2, []float64{1, math.NaN()})))
	assert.True(t, mat.HasNaN(mat.MustFromSlice(1, 2, []float64{math.Inf(-1), 2})))
	assert.False(t, mat.HasNaN(nil))
}
