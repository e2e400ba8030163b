// SPDX-License-Identifier: MIT
// Package mat: Gauss–Jordan elimination with full pivoting.
// The kernel reduces A to the identity in place while applying the same
// row operations to the right-hand sides, so the transformed A is exactly
// A⁻¹ and the transformed B is the solution X of A·X = B.

package mat

import "math"

// GaussJordan solves A·X = B by Gauss–Jordan elimination with full
// pivoting and simultaneously produces A⁻¹.
//
// Implementation stages:
//  1. Clone A and B; all work happens on the copies.
//  2. For each of the n elimination steps, scan every not-yet-pivoted
//     row/column pair for the largest-magnitude element (full pivoting)
//     and move it to the diagonal via a row swap. Column swaps are only
//     recorded (indxr/indxc), not performed, until the final unscramble.
//  3. Scale the pivot row by 1/pivot, then eliminate the pivot column
//     from every other row, updating B alongside.
//  4. Undo the column permutation by swapping columns of the reduced A
//     in reverse pivot order, yielding A⁻¹ in natural order.
//
// Inputs: a must be square n×n; b holds one right-hand side per column
// (n×m). Pass b == nil when only the inverse is wanted.
// Returns: (A⁻¹, X) with X == nil when b was nil. Inputs are not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square a, or
// b.Rows != n), ErrSingular when the best available pivot magnitude is
// <= Epsilon.
// Determinism: ties in the pivot scan resolve to the first (lowest
// row-major index) candidate, so results are bit-reproducible.
// Complexity: O(n³ + n²·m); memory O(n²+n·m) for the copies plus O(n)
// bookkeeping.
func GaussJordan(a, b *Mat) (*Mat, *Mat, error) {
	if err := validateNotNil(a); err != nil {
		return nil, nil, matErrorf(opGaussJordan, err)
	}
	if err := validateSquare(a); err != nil {
		return nil, nil, matErrorf(opGaussJordan, err)
	}
	if b != nil {
		if err := validateNotNil(b); err != nil {
			return nil, nil, matErrorf(opGaussJordan, err)
		}
		if b.rows != a.rows {
			return nil, nil, matErrorf(opGaussJordan, ErrDimensionMismatch)
		}
	}

	ainv := a.Clone()
	var x *Mat
	if b != nil {
		x = b.Clone()
	}
	if err := gaussJordanInPlace(ainv, x); err != nil {
		return nil, nil, matErrorf(opGaussJordan, err)
	}

	return ainv, x, nil
}

// Inverse returns A⁻¹ computed by Gauss–Jordan elimination with full
// pivoting. Equivalent to GaussJordan(a, nil) keeping only the inverse.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch for non-square input,
// ErrSingular when a has no usable pivot at some elimination step.
func Inverse(a *Mat) (*Mat, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matErrorf(opInverse, err)
	}
	if err := validateSquare(a); err != nil {
		return nil, matErrorf(opInverse, err)
	}
	ainv := a.Clone()
	if err := gaussJordanInPlace(ainv, nil); err != nil {
		return nil, matErrorf(opInverse, err)
	}

	return ainv, nil
}

// gaussJordanInPlace reduces a to a⁻¹ in place and applies the same row
// operations to x (which may be nil). On error the buffers are left in a
// partially reduced state and must be discarded by the caller.
func gaussJordanInPlace(a, x *Mat) error {
	n := a.rows
	var xcols int
	if x != nil {
		xcols = x.cols
	}

	// ipiv marks columns already used as pivots; indxr/indxc record the
	// row/column chosen at each step for the final unscramble.
	ipiv := make([]bool, n)
	indxr := make([]int, n)
	indxc := make([]int, n)

	var (
		i, j, k, r, c     int
		icol, irow        int
		big, pivinv, save float64
	)
	for i = 0; i < n; i++ {
		// Full-pivot scan over all unpivoted rows and columns.
		big = 0
		irow, icol = -1, -1
		for j = 0; j < n; j++ {
			if ipiv[j] {
				continue
			}
			for k = 0; k < n; k++ {
				if ipiv[k] {
					continue
				}
				if v := math.Abs(a.data[j*n+k]); v > big {
					big = v
					irow, icol = j, k
				}
			}
		}
		if irow < 0 || big <= Epsilon {
			return ErrSingular
		}
		ipiv[icol] = true

		// Bring the pivot onto the diagonal with a row swap; the implied
		// column swap is deferred to the unscramble pass.
		if irow != icol {
			for c = 0; c < n; c++ {
				a.data[irow*n+c], a.data[icol*n+c] = a.data[icol*n+c], a.data[irow*n+c]
			}
			for c = 0; c < xcols; c++ {
				x.data[irow*xcols+c], x.data[icol*xcols+c] = x.data[icol*xcols+c], x.data[irow*xcols+c]
			}
		}
		indxr[i] = irow
		indxc[i] = icol

		// Normalize the pivot row. Writing 1 into the pivot slot before
		// scaling folds the inverse construction into the same sweep.
		pivinv = 1 / a.data[icol*n+icol]
		a.data[icol*n+icol] = 1
		for c = 0; c < n; c++ {
			a.data[icol*n+c] *= pivinv
		}
		for c = 0; c < xcols; c++ {
			x.data[icol*xcols+c] *= pivinv
		}

		// Eliminate the pivot column from every other row.
		for r = 0; r < n; r++ {
			if r == icol {
				continue
			}
			save = a.data[r*n+icol]
			a.data[r*n+icol] = 0
			for c = 0; c < n; c++ {
				a.data[r*n+c] -= a.data[icol*n+c] * save
			}
			for c = 0; c < xcols; c++ {
				x.data[r*xcols+c] -= x.data[icol*xcols+c] * save
			}
		}
	}

	// Unscramble the column permutation in reverse pivot order.
	for i = n - 1; i >= 0; i-- {
		if indxr[i] == indxc[i] {
			continue
		}
		for r = 0; r < n; r++ {
			a.data[r*n+indxr[i]], a.data[r*n+indxc[i]] = a.data[r*n+indxc[i]], a.data[r*n+indxr[i]]
		}
	}

	return nil
}
