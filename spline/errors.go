// SPDX-License-Identifier: MIT
// Package spline: sentinel error set. All operations return these
// sentinels (optionally wrapped) and tests check them via errors.Is.

package spline

import "errors"

var (
	// ErrTooFewPoints is returned when fewer than two usable knots remain
	// after input validation and monotone filtering.
	ErrTooFewPoints = errors.New("spline: need at least two points")

	// ErrDimensionMismatch indicates parameter/point count disagreement or
	// points of differing dimensions within one call.
	ErrDimensionMismatch = errors.New("spline: dimension mismatch")

	// ErrNonMonotonic is returned by Interpolation.SetData when the knot
	// parameters are not strictly increasing. Curve filters offending
	// samples out instead of failing; the sentinel guards direct 1-D use.
	ErrNonMonotonic = errors.New("spline: knots must be strictly increasing")

	// ErrNotReady is returned by Eval before points have been set.
	ErrNotReady = errors.New("spline: no points set")

	// ErrBoundaryAfterPoints is returned by SetBoundary once data is
	// already fitted; boundary conditions shape the fit and must precede
	// it.
	ErrBoundaryAfterPoints = errors.New("spline: boundary must be set before points")
)
