// SPDX-License-Identifier: MIT
// Package mat: small whole-matrix queries.

package mat

import "math"

// Trace returns the sum of the main-diagonal elements.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch for non-square input.
func Trace(m *Mat) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matErrorf(opTrace, err)
	}
	if err := validateSquare(m); err != nil {
		return 0, matErrorf(opTrace, err)
	}
	var sum float64
	for i := 0; i < m.rows; i++ {
		sum += m.data[i*m.cols+i]
	}

	return sum, nil
}

// HasNaN reports whether any element is NaN or ±Inf. Useful as a cheap
// sanity screen after chains of unguarded closed-form operations.
func HasNaN(m *Mat) bool {
	if m == nil {
		return false
	}
	for i := range m.data {
		if math.IsNaN(m.data[i]) || math.IsInf(m.data[i], 0) {
			return true
		}
	}

	return false
}
