// SPDX-License-Identifier: MIT
// Package vec: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels (optionally wrapped with fmt.Errorf("...: %w", err))
// and tests MUST check them via errors.Is.

package vec

import "errors"

var (
	// ErrBadDimension is returned when a requested dimension is non-positive.
	ErrBadDimension = errors.New("vec: dimension must be > 0")

	// ErrOutOfRange indicates a component index outside [0, Dim).
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrDimensionMismatch indicates operands of different dimensions where
	// equal dimensions are required (Add, Sub, Dot, Distance).
	ErrDimensionMismatch = errors.New("vec: dimension mismatch")

	// ErrZeroNorm is returned by Normalize when the input has zero length,
	// so no unit direction exists.
	ErrZeroNorm = errors.New("vec: zero norm")
)
