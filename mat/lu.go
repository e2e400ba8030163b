// SPDX-License-Identifier: MIT
// Package mat: LU decomposition (Crout with implicit row scaling and
// partial pivoting), forward/back substitution, and the LU-based
// determinant.

package mat

import (
	"errors"
	"math"

	"github.com/katalvlaran/geomat/vec"
)

// LUFactors carries the result of LU: the combined factor matrix, the row
// permutation it was computed under, and the permutation's sign.
type LUFactors struct {
	// LU stores both factors in one square matrix: U occupies the diagonal
	// and above, L (with implicit unit diagonal) below.
	LU *Mat

	// Perm records the row permutation: step i pivoted on original row
	// Perm[i]. It is the layout LUSolve expects; it is not a one-line
	// permutation vector.
	Perm []int

	// Sign is +1 for an even number of row swaps, -1 for odd. Multiplying
	// Sign by the product of U's diagonal gives det(A).
	Sign float64
}

// LU factorizes a square matrix as P·A = L·U using Crout's method with
// implicit row scaling and partial pivoting.
//
// Implementation stages:
//  1. Record every row's largest absolute element and keep its reciprocal
//     as the row's scale; an all-zero row fails immediately.
//  2. Sweep columns left to right. For column j, fill in the U part above
//     the diagonal, then compute the scaled candidates below it and pick
//     the largest as pivot (implicit scaling makes the choice invariant
//     under row rescaling of A).
//  3. Swap the pivot row up, flip Sign, and divide the subcolumn by the
//     pivot to finish the L part.
//
// Returns: LUFactors over a fresh copy; a is not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch for non-square input,
// ErrSingular for an all-zero row or a pivot of magnitude <= Epsilon.
// Determinism: the pivot scan takes the first maximal candidate.
// Complexity: O(n³); memory O(n²) for the copy plus O(n) bookkeeping.
func LU(a *Mat) (*LUFactors, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matErrorf(opLU, err)
	}
	if err := validateSquare(a); err != nil {
		return nil, matErrorf(opLU, err)
	}

	n := a.rows
	alu := a.Clone()
	perm := make([]int, n)
	sign := 1.0

	// Per-row scale factors: 1 / max|row element|.
	scale := make([]float64, n)
	var (
		i, j, k, imax    int
		big, sum, v, dum float64
	)
	for i = 0; i < n; i++ {
		big = 0
		for j = 0; j < n; j++ {
			if v = math.Abs(alu.data[i*n+j]); v > big {
				big = v
			}
		}
		if big == 0 {
			return nil, matErrorf(opLU, ErrSingular)
		}
		scale[i] = 1 / big
	}

	for j = 0; j < n; j++ {
		// Above-diagonal part of column j (rows of U).
		for i = 0; i < j; i++ {
			sum = alu.data[i*n+j]
			for k = 0; k < i; k++ {
				sum -= alu.data[i*n+k] * alu.data[k*n+j]
			}
			alu.data[i*n+j] = sum
		}

		// Diagonal and below: compute candidates and track the best
		// scaled pivot.
		big = 0
		imax = j
		for i = j; i < n; i++ {
			sum = alu.data[i*n+j]
			for k = 0; k < j; k++ {
				sum -= alu.data[i*n+k] * alu.data[k*n+j]
			}
			alu.data[i*n+j] = sum
			if dum = scale[i] * math.Abs(sum); dum > big {
				big = dum
				imax = i
			}
		}

		if imax != j {
			for k = 0; k < n; k++ {
				alu.data[imax*n+k], alu.data[j*n+k] = alu.data[j*n+k], alu.data[imax*n+k]
			}
			sign = -sign
			scale[imax] = scale[j]
		}
		perm[j] = imax

		if math.Abs(alu.data[j*n+j]) <= Epsilon {
			return nil, matErrorf(opLU, ErrSingular)
		}

		// Finish the L part of column j.
		if j < n-1 {
			dum = 1 / alu.data[j*n+j]
			for i = j + 1; i < n; i++ {
				alu.data[i*n+j] *= dum
			}
		}
	}

	return &LUFactors{LU: alu, Perm: perm, Sign: sign}, nil
}

// LUSolve solves A·x = rhs given the factorization of A, by forward
// substitution through L and back substitution through U. The leading
// run of zero RHS entries is skipped, which makes repeated solves with
// unit vectors (e.g. building an inverse column by column) cheap.
//
// Errors: ErrNilMatrix for a nil factorization, ErrDimensionMismatch when
// len(rhs) does not match the factored dimension.
// Complexity: O(n²) per right-hand side.
func LUSolve(f *LUFactors, rhs vec.Vector) (vec.Vector, error) {
	if f == nil || f.LU == nil {
		return nil, matErrorf(opLUSolve, ErrNilMatrix)
	}
	n := f.LU.rows
	if len(rhs) != n || len(f.Perm) != n {
		return nil, matErrorf(opLUSolve, ErrDimensionMismatch)
	}

	x := rhs.Clone()
	var (
		i, j, ip int
		sum      float64
	)

	// Forward substitution. ii-1 is the first row with a nonzero RHS seen
	// so far; rows before it contribute nothing to the sums.
	ii := 0
	for i = 0; i < n; i++ {
		ip = f.Perm[i]
		sum = x[ip]
		x[ip] = x[i]
		if ii > 0 {
			for j = ii - 1; j < i; j++ {
				sum -= f.LU.data[i*n+j] * x[j]
			}
		} else if sum != 0 {
			ii = i + 1
		}
		x[i] = sum
	}

	// Back substitution.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= f.LU.data[i*n+j] * x[j]
		}
		x[i] = sum / f.LU.data[i*n+i]
	}

	return x, nil
}

// Determinant returns det(a) as the permutation sign times the product of
// U's diagonal from the LU factorization. A singular input yields
// (0, nil): singularity is a legitimate determinant value here, not a
// failure.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch for non-square input.
// Complexity: O(n³), dominated by the factorization.
func Determinant(a *Mat) (float64, error) {
	f, err := LU(a)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	det := f.Sign
	n := f.LU.rows
	for i := 0; i < n; i++ {
		det *= f.LU.data[i*n+i]
	}

	return det, nil
}
