// SPDX-License-Identifier: MIT
// Package mat: matrix products, transpose and the outer (tensor) product.
// The product kernels use the classic i-k-j loop nest over the flat
// row-major buffers, with a fixed accumulation order for determinism.

package mat

import "github.com/katalvlaran/geomat/vec"

// Mul returns the matrix product a*b, shape (a.Rows × b.Cols).
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when a.Cols != b.Rows.
// Determinism: inner accumulation always runs k = 0..a.Cols-1.
// Complexity: O(a.Rows * a.Cols * b.Cols).
func Mul(a, b *Mat) (*Mat, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matErrorf(opMul, err)
	}
	if a.cols != b.rows {
		return nil, matErrorf(opMul, ErrDimensionMismatch)
	}
	out := &Mat{rows: a.rows, cols: b.cols, data: make([]float64, a.rows*b.cols)}
	var (
		i, j, k int
		aik     float64
	)
	for i = 0; i < a.rows; i++ {
		for k = 0; k < a.cols; k++ {
			aik = a.data[i*a.cols+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.cols; j++ {
				out.data[i*out.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}

	return out, nil
}

// MulVec returns the matrix-vector product m*v as a Vector of length
// m.Rows().
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when len(v) != m.Cols().
// Complexity: O(rows*cols).
func MulVec(m *Mat, v vec.Vector) (vec.Vector, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matErrorf(opMulVec, err)
	}
	if len(v) != m.cols {
		return nil, matErrorf(opMulVec, ErrDimensionMismatch)
	}
	out := make(vec.Vector, m.rows)
	var (
		r, c int
		sum  float64
	)
	for r = 0; r < m.rows; r++ {
		sum = 0
		for c = 0; c < m.cols; c++ {
			sum += m.data[r*m.cols+c] * v[c]
		}
		out[r] = sum
	}

	return out, nil
}

// Transpose returns mᵀ, shape (Cols × Rows).
func Transpose(m *Mat) (*Mat, error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}
	out := &Mat{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data[c*out.cols+r] = m.data[r*m.cols+c]
		}
	}

	return out, nil
}

// Tensor returns the outer product u ⊗ v: the len(u)×len(v) matrix with
// entries u[i]*v[j]. Implemented as the product of a one-column matrix by
// a one-row matrix, so it shares Mul's accumulation semantics.
//
// Errors: ErrDimensionMismatch when either vector is empty.
func Tensor(u, v vec.Vector) (*Mat, error) {
	if len(u) == 0 || len(v) == 0 {
		return nil, matErrorf(opTensor, ErrDimensionMismatch)
	}
	colU := &Mat{rows: len(u), cols: 1, data: append([]float64(nil), u...)}
	rowV := &Mat{rows: 1, cols: len(v), data: append([]float64(nil), v...)}

	return Mul(colU, rowV)
}
