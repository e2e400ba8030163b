// SPDX-License-Identifier: MIT
// Package vec: runtime-dimension Vector type and its arithmetic.
// Vector is the exchange type between the generic matrix kernels and
// consumer code; the fixed Vec2/Vec3/Vec4 types live in fixed.go.

package vec

import (
	"fmt"
	"math"
)

// Vector is a runtime-dimension numeric tuple backed by a flat slice.
// The dimension is fixed at construction; operations never resize it.
type Vector []float64

// New returns a zero Vector of dimension dim.
// Errors: ErrBadDimension when dim <= 0.
// Complexity: O(dim).
func New(dim int) (Vector, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("New(%d): %w", dim, ErrBadDimension)
	}

	return make(Vector, dim), nil
}

// Of builds a Vector directly from its components.
// A defensive copy is taken, so the caller's slice stays independent.
func Of(components ...float64) Vector {
	v := make(Vector, len(components))
	copy(v, components)

	return v
}

// Dim returns the number of components. Complexity: O(1).
func (v Vector) Dim() int { return len(v) }

// At returns component i.
// Errors: ErrOutOfRange when i < 0 or i >= Dim().
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v) {
		return 0, fmt.Errorf("At(%d): %w", i, ErrOutOfRange)
	}

	return v[i], nil
}

// Set assigns component i.
// Errors: ErrOutOfRange when i < 0 or i >= Dim().
func (v Vector) Set(i int, value float64) error {
	if i < 0 || i >= len(v) {
		return fmt.Errorf("Set(%d): %w", i, ErrOutOfRange)
	}
	v[i] = value

	return nil
}

// Clone returns an independent deep copy. Complexity: O(dim).
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Add returns v + u component-wise.
// Errors: ErrDimensionMismatch when dimensions differ.
// Complexity: O(dim).
func (v Vector) Add(u Vector) (Vector, error) {
	if len(v) != len(u) {
		return nil, fmt.Errorf("Add: %w", ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + u[i]
	}

	return out, nil
}

// Sub returns v - u component-wise.
// Errors: ErrDimensionMismatch when dimensions differ.
// Complexity: O(dim).
func (v Vector) Sub(u Vector) (Vector, error) {
	if len(v) != len(u) {
		return nil, fmt.Errorf("Sub: %w", ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - u[i]
	}

	return out, nil
}

// Neg returns -v. Complexity: O(dim).
func (v Vector) Neg() Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = -v[i]
	}

	return out
}

// Scale returns alpha * v. NaN/Inf in alpha propagate. Complexity: O(dim).
func (v Vector) Scale(alpha float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * alpha
	}

	return out
}

// Dot returns the inner product of v and u.
// Errors: ErrDimensionMismatch when dimensions differ.
// Determinism: fixed 0..dim-1 accumulation order.
func (v Vector) Dot(u Vector) (float64, error) {
	if len(v) != len(u) {
		return 0, fmt.Errorf("Dot: %w", ErrDimensionMismatch)
	}
	var sum float64
	for i := range v {
		sum += v[i] * u[i]
	}

	return sum, nil
}

// Norm2 returns the squared Euclidean norm. Complexity: O(dim).
func (v Vector) Norm2() float64 {
	var sum float64
	for i := range v {
		sum += v[i] * v[i]
	}

	return sum
}

// Norm returns the Euclidean norm. Complexity: O(dim).
func (v Vector) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Normalize returns v scaled to unit length.
// Errors: ErrZeroNorm when ||v|| == 0 (no direction to preserve).
func (v Vector) Normalize() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return nil, fmt.Errorf("Normalize: %w", ErrZeroNorm)
	}

	return v.Scale(1 / n), nil
}

// Distance returns the Euclidean distance between v and u.
// Errors: ErrDimensionMismatch when dimensions differ.
func (v Vector) Distance(u Vector) (float64, error) {
	if len(v) != len(u) {
		return 0, fmt.Errorf("Distance: %w", ErrDimensionMismatch)
	}
	var sum float64
	for i := range v {
		d := v[i] - u[i]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// HasNaN reports whether any component is NaN or ±Inf.
func (v Vector) HasNaN() bool {
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return true
		}
	}

	return false
}
