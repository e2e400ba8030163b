// SPDX-License-Identifier: MIT
// Package mat: elementwise algebra over whole matrices.
// Every operation here is shape-preserving, allocates its result, and
// walks the flat backing slices in one pass.

package mat

import "math"

// Add returns a + b elementwise.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when shapes differ.
// Complexity: O(rows*cols).
func Add(a, b *Mat) (*Mat, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matErrorf(opAdd, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, matErrorf(opAdd, err)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}

	return out, nil
}

// Sub returns a - b elementwise.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when shapes differ.
// Complexity: O(rows*cols).
func Sub(a, b *Mat) (*Mat, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matErrorf(opSub, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, matErrorf(opSub, err)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] -= b.data[i]
	}

	return out, nil
}

// Neg returns -m.
func Neg(m *Mat) (*Mat, error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] = -out.data[i]
	}

	return out, nil
}

// Scale returns alpha * m. NaN/Inf in alpha propagate into the result.
func Scale(m *Mat, alpha float64) (*Mat, error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// Div returns m / alpha. Division by zero follows IEEE-754: the result
// carries ±Inf/NaN rather than an error; screen with HasNaN if needed.
func Div(m *Mat, alpha float64) (*Mat, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matErrorf(opDiv, err)
	}
	out := m.Clone()
	inv := 1 / alpha
	for i := range out.data {
		out.data[i] *= inv
	}

	return out, nil
}

// EqualWithin reports whether a and b share a shape and every pair of
// elements differs by at most eps in absolute value. NaN elements compare
// unequal to everything, including themselves.
func EqualWithin(a, b *Mat, eps float64) bool {
	if a == nil || b == nil || a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if !(math.Abs(a.data[i]-b.data[i]) <= eps) {
			return false
		}
	}

	return true
}

// Equal is EqualWithin with the package Epsilon.
func Equal(a, b *Mat) bool { return EqualWithin(a, b, Epsilon) }
