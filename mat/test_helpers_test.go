// Package mat_test: shared helpers for the mat test suite.
package mat_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomat/mat"
)

// randomMat fills a rows×cols matrix with deterministic pseudo-random
// values in [-1, 1).
func randomMat(t testing.TB, rows, cols int, seed int64) *mat.Mat {
	t.Helper()
	m, err := mat.New(rows, cols)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}

	return m
}

// randomDiagDominant builds a random n×n matrix made safely invertible by
// boosting the diagonal above the row sums.
func randomDiagDominant(t testing.TB, n int, seed int64) *mat.Mat {
	t.Helper()
	m := randomMat(t, n, n, seed)
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		require.NoError(t, m.Set(i, i, v+float64(n)+1))
	}

	return m
}

// randomSPD builds a symmetric positive-definite matrix as B·Bᵀ + n·I.
func randomSPD(t testing.TB, n int, seed int64) *mat.Mat {
	t.Helper()
	b := randomMat(t, n, n, seed)
	bt, err := mat.Transpose(b)
	require.NoError(t, err)
	bbt, err := mat.Mul(b, bt)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		v, err := bbt.At(i, i)
		require.NoError(t, err)
		require.NoError(t, bbt.Set(i, i, v+float64(n)))
	}

	return bbt
}

// requireMatEqual asserts elementwise agreement within eps.
func requireMatEqual(t testing.TB, want, got *mat.Mat, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	require.True(t, mat.EqualWithin(want, got, eps),
		"matrices differ beyond eps=%g:\nwant:\n%sgot:\n%s", eps, want, got)
}
