// SPDX-License-Identifier: MIT
// Package mat: Cholesky decomposition A = L·Lᵀ for symmetric
// positive-definite matrices, plus the forward/back substitution solvers
// built on it.

package mat

import (
	"math"

	"github.com/katalvlaran/geomat/vec"
)

// Cholesky factorizes a symmetric positive-definite matrix as A = L·Lᵀ
// with L lower triangular.
//
// Implementation stages:
//  1. Walk columns left to right, verifying A(i,j) == A(j,i) exactly (the
//     symmetric contract) as each pair is first touched. For each (i,j)
//     with j >= i, subtract the already-computed partial inner product of
//     rows i and j from A(i,j).
//  2. On the diagonal, take the square root of the remainder; off the
//     diagonal, divide by the column's diagonal entry.
//  3. Zero the strict upper triangle of the result.
//
// Returns: L such that L·Lᵀ reproduces A. When a diagonal remainder goes
// non-positive the factorization cannot complete in the reals; the entry
// is clamped to sqrt(max(d, 0)) and the finished best-effort L is returned
// TOGETHER with ErrNotPositiveDefinite — usable for diagnostics, never for
// solving.
// Errors: ErrNilMatrix, ErrDimensionMismatch for non-square input,
// ErrNotSymmetric (nil L), ErrNotPositiveDefinite (best-effort L).
// Complexity: O(n³); memory O(n²) for L.
func Cholesky(a *Mat) (*Mat, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matErrorf(opCholesky, err)
	}
	if err := validateSquare(a); err != nil {
		return nil, matErrorf(opCholesky, err)
	}

	n := a.rows
	l := a.Clone()
	spd := true
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if a.data[i*n+j] != a.data[j*n+i] {
				return nil, matErrorf(opCholesky, ErrNotSymmetric)
			}
			sum = l.data[i*n+j]
			for k = i - 1; k >= 0; k-- {
				sum -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				if sum <= 0 {
					spd = false
				}
				l.data[i*n+i] = math.Sqrt(math.Max(sum, 0))
			} else {
				l.data[j*n+i] = sum / l.data[i*n+i]
			}
		}
	}

	// L is lower triangular; clear the leftovers of the input copy.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			l.data[i*n+j] = 0
		}
	}

	if !spd {
		return l, matErrorf(opCholesky, ErrNotPositiveDefinite)
	}

	return l, nil
}

// CholeskySolve solves A·x = rhs given L from Cholesky(A): forward
// substitution through L, then back substitution through Lᵀ.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when L is non-square or
// len(rhs) does not match.
// Complexity: O(n²) per right-hand side.
func CholeskySolve(l *Mat, rhs vec.Vector) (vec.Vector, error) {
	if err := validateNotNil(l); err != nil {
		return nil, matErrorf(opCholSolve, err)
	}
	if err := validateSquare(l); err != nil {
		return nil, matErrorf(opCholSolve, err)
	}
	n := l.rows
	if len(rhs) != n {
		return nil, matErrorf(opCholSolve, ErrDimensionMismatch)
	}

	x := make(vec.Vector, n)
	var (
		i, k int
		sum  float64
	)
	// L·y = rhs.
	for i = 0; i < n; i++ {
		sum = rhs[i]
		for k = i - 1; k >= 0; k-- {
			sum -= l.data[i*n+k] * x[k]
		}
		x[i] = sum / l.data[i*n+i]
	}
	// Lᵀ·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= l.data[k*n+i] * x[k]
		}
		x[i] = sum / l.data[i*n+i]
	}

	return x, nil
}

// CholeskySolveMat solves A·X = B column by column given L from
// Cholesky(A). B carries one right-hand side per column.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when shapes disagree.
// Complexity: O(n²·m) for m right-hand sides.
func CholeskySolveMat(l, b *Mat) (*Mat, error) {
	if err := validateNotNil(l, b); err != nil {
		return nil, matErrorf(opCholSolveMat, err)
	}
	if err := validateSquare(l); err != nil {
		return nil, matErrorf(opCholSolveMat, err)
	}
	if b.rows != l.rows {
		return nil, matErrorf(opCholSolveMat, ErrDimensionMismatch)
	}

	n := l.rows
	x := &Mat{rows: n, cols: b.cols, data: make([]float64, n*b.cols)}
	rhs := make(vec.Vector, n)
	for c := 0; c < b.cols; c++ {
		for r := 0; r < n; r++ {
			rhs[r] = b.data[r*b.cols+c]
		}
		col, err := CholeskySolve(l, rhs)
		if err != nil {
			return nil, err
		}
		for r := 0; r < n; r++ {
			x.data[r*x.cols+c] = col[r]
		}
	}

	return x, nil
}
