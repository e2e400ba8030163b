// Package vec_test: runtime-dimension Vector arithmetic.
package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomat/vec"
)

func TestNew(t *testing.T) {
	t.Parallel()

	v, err := vec.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Dim())
	assert.Equal(t, vec.Vector{0, 0, 0, 0}, v)

	_, err = vec.New(0)
	assert.ErrorIs(t, err, vec.ErrBadDimension)
	_, err = vec.New(-2)
	assert.ErrorIs(t, err, vec.ErrBadDimension)
}

func TestOf_Copies(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3}
	v := vec.Of(src...)
	src[0] = 99
	assert.Equal(t, vec.Vector{1, 2, 3}, v)
}

func TestAtSet(t *testing.T) {
	t.Parallel()

	v := vec.Of(1, 2, 3)

	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
	_, err = v.At(3)
	assert.ErrorIs(t, err, vec.ErrOutOfRange)
	_, err = v.At(-1)
	assert.ErrorIs(t, err, vec.ErrOutOfRange)

	require.NoError(t, v.Set(0, 7))
	assert.Equal(t, vec.Vector{7, 2, 3}, v)
	assert.ErrorIs(t, v.Set(5, 1), vec.ErrOutOfRange)
}

func TestAddSubNegScale(t *testing.T) {
	t.Parallel()

	a := vec.Of(1, 2, 3)
	b := vec.Of(10, 20, 30)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, vec.Vector{11, 22, 33}, sum)

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, vec.Vector{9, 18, 27}, diff)

	assert.Equal(t, vec.Vector{-1, -2, -3}, a.Neg())
	assert.Equal(t, vec.Vector{2, 4, 6}, a.Scale(2))

	_, err = a.Add(vec.Of(1))
	assert.ErrorIs(t, err, vec.ErrDimensionMismatch)
	_, err = a.Sub(vec.Of(1))
	assert.ErrorIs(t, err, vec.ErrDimensionMismatch)
}

func TestDotNorm(t *testing.T) {
	t.Parallel()

	a := vec.Of(3, 4)

	dot, err := a.Dot(vec.Of(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 11.0, dot)
	_, err = a.Dot(vec.Of(1))
	assert.ErrorIs(t, err, vec.ErrDimensionMismatch)

	assert.Equal(t, 25.0, a.Norm2())
	assert.Equal(t, 5.0, a.Norm())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	u, err := vec.Of(3, 0, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u.Norm(), 1e-15)
	assert.InDelta(t, 0.6, u[0], 1e-15)
	assert.InDelta(t, 0.8, u[2], 1e-15)

	_, err = vec.Of(0, 0).Normalize()
	assert.ErrorIs(t, err, vec.ErrZeroNorm)
}

func TestDistance(t *testing.T) {
	t.Parallel()

	d, err := vec.Of(0, 0).Distance(vec.Of(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	_, err = vec.Of(1).Distance(vec.Of(1, 2))
	assert.ErrorIs(t, err, vec.ErrDimensionMismatch)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	a := vec.Of(1, 2)
	cp := a.Clone()
	require.NoError(t, cp.Set(0, 42))
	assert.Equal(t, vec.Vector{1, 2}, a)
}

func TestHasNaN(t *testing.T) {
	t.Parallel()

	assert.False(t, vec.Of(1, 2).HasNaN())
	assert.True(t, vec.Of(1, math.NaN()).HasNaN())
	assert.True(t, vec.Of(math.Inf(1), 0).HasNaN())
}
