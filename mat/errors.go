// SPDX-License-Identifier: MIT
// Package mat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mat
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm panics on user-triggered conditions.

package mat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; wrap with matErrorf at the operation boundary so callers still
// match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows <= 0
	// or cols <= 0), or when a raw coefficient slice does not hold exactly
	// rows*cols elements.
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set/Row/Col/Swap*) return this, never panic.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub on different shapes, Mul where a.Cols != b.Rows,
	// MulVec with a wrong-length vector, or a non-square input to an
	// algorithm that requires one.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNilMatrix indicates a nil *Mat receiver or argument.
	ErrNilMatrix = errors.New("mat: nil matrix")

	// ErrSingular is returned when elimination or decomposition meets a
	// pivot of magnitude <= Epsilon (or an all-zero row in LU), meaning the
	// input is numerically singular and no reliable result exists.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrNotSymmetric is returned by Cholesky when A(i,j) != A(j,i) is
	// observed during the factorization pass (exact comparison, matching
	// the symmetric-input contract).
	ErrNotSymmetric = errors.New("mat: matrix is not symmetric")

	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal term
	// goes non-positive before its square root. A clamped best-effort L is
	// still produced alongside the error; do not use it for solving.
	ErrNotPositiveDefinite = errors.New("mat: matrix is not positive definite")

	// ErrBadRotationOrder is returned by the Euler-angle rotation
	// constructors for an order outside {123,132,213,231,312,321}.
	ErrBadRotationOrder = errors.New("mat: invalid rotation order")
)
