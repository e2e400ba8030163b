// SPDX-License-Identifier: MIT
// Package spline: the one-dimensional cubic spline kernel.
// On each knot interval the spline is y(t) = y_i + b_i·h + c_i·h² + d_i·h³
// with h = t − x_i. The c coefficients come from the classic tridiagonal
// continuity system, solved with the Thomas algorithm; b and d follow in
// closed form. Outside the knot range the spline continues linearly with
// the end derivatives.

package spline

import "sort"

// BoundaryType selects how a spline end is constrained.
type BoundaryType int

const (
	// FirstDeriv fixes the first derivative (slope) at the end.
	FirstDeriv BoundaryType = 1
	// SecondDeriv fixes the second derivative (curvature) at the end.
	// Value 0 gives the natural spline, the package default.
	SecondDeriv BoundaryType = 2
)

// Interpolation is a one-dimensional spline over strictly increasing
// knots. The zero value has natural boundary conditions and no data; call
// SetData before At.
type Interpolation struct {
	left, right           BoundaryType
	leftValue, rightValue float64

	x, y    []float64
	b, c, d []float64
}

// SetBoundary fixes the end conditions. It must precede SetData.
//
// Errors: ErrBoundaryAfterPoints once data is fitted.
func (s *Interpolation) SetBoundary(left BoundaryType, leftValue float64, right BoundaryType, rightValue float64) error {
	if s.x != nil {
		return ErrBoundaryAfterPoints
	}
	s.left, s.right = left, right
	s.leftValue, s.rightValue = leftValue, rightValue

	return nil
}

// SetData fits the spline to the samples (xs[i], ys[i]). With cubic set, a
// C² cubic spline is solved; otherwise the data is connected piecewise
// linearly (two points always degrade to linear). Both slices are copied.
//
// Errors: ErrDimensionMismatch when the slice lengths differ,
// ErrTooFewPoints below two samples, ErrNonMonotonic unless xs is
// strictly increasing.
func (s *Interpolation) SetData(xs, ys []float64, cubic bool) error {
	if len(xs) != len(ys) {
		return ErrDimensionMismatch
	}
	n := len(xs)
	if n < 2 {
		return ErrTooFewPoints
	}
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return ErrNonMonotonic
		}
	}

	s.x = append([]float64(nil), xs...)
	s.y = append([]float64(nil), ys...)
	s.b = make([]float64, n)
	s.c = make([]float64, n)
	s.d = make([]float64, n)

	if !cubic || n == 2 {
		s.fitLinear()

		return nil
	}
	s.fitCubic()

	return nil
}

// fitLinear fills the coefficients for piecewise-linear interpolation.
func (s *Interpolation) fitLinear() {
	n := len(s.x)
	for i := 0; i < n-1; i++ {
		s.b[i] = (s.y[i+1] - s.y[i]) / (s.x[i+1] - s.x[i])
	}
	// End slope for right-side extrapolation.
	s.b[n-1] = s.b[n-2]
}

// fitCubic solves the tridiagonal continuity system for the c
// coefficients, then derives b and d per interval.
func (s *Interpolation) fitCubic() {
	n := len(s.x)

	// Tridiagonal system rows: sub·c[i-1] + diag·c[i] + sup·c[i+1] = rhs.
	sub := make([]float64, n)
	diag := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)

	var i int
	for i = 1; i < n-1; i++ {
		sub[i] = (s.x[i] - s.x[i-1]) / 3
		diag[i] = 2 * (s.x[i+1] - s.x[i-1]) / 3
		sup[i] = (s.x[i+1] - s.x[i]) / 3
		rhs[i] = (s.y[i+1]-s.y[i])/(s.x[i+1]-s.x[i]) - (s.y[i]-s.y[i-1])/(s.x[i]-s.x[i-1])
	}

	h0 := s.x[1] - s.x[0]
	if s.left == FirstDeriv {
		// 2h·c0 + h·c1 = 3·(slope0 − y')
		diag[0] = 2 * h0
		sup[0] = h0
		rhs[0] = 3 * ((s.y[1]-s.y[0])/h0 - s.leftValue)
	} else {
		// c0 = f''(x0)/2
		diag[0] = 2
		sup[0] = 0
		rhs[0] = s.leftValue
	}

	hn := s.x[n-1] - s.x[n-2]
	if s.right == FirstDeriv {
		diag[n-1] = 2 * hn
		sub[n-1] = hn
		rhs[n-1] = 3 * (s.rightValue - (s.y[n-1]-s.y[n-2])/hn)
	} else {
		diag[n-1] = 2
		sub[n-1] = 0
		rhs[n-1] = s.rightValue
	}

	// Thomas algorithm: forward elimination, back substitution. The
	// continuity system is diagonally dominant, so no pivoting is needed.
	var w float64
	for i = 1; i < n; i++ {
		w = sub[i] / diag[i-1]
		diag[i] -= w * sup[i-1]
		rhs[i] -= w * rhs[i-1]
	}
	s.c[n-1] = rhs[n-1] / diag[n-1]
	for i = n - 2; i >= 0; i-- {
		s.c[i] = (rhs[i] - sup[i]*s.c[i+1]) / diag[i]
	}

	// b and d per interval, from the c solution.
	var h float64
	for i = 0; i < n-1; i++ {
		h = s.x[i+1] - s.x[i]
		s.b[i] = (s.y[i+1]-s.y[i])/h - (2*s.c[i]+s.c[i+1])*h/3
		s.d[i] = (s.c[i+1] - s.c[i]) / (3 * h)
	}
	// Derivative at the last knot, for right-side linear extrapolation.
	s.b[n-1] = s.b[n-2] + 2*s.c[n-2]*hn + 3*s.d[n-2]*hn*hn
}

// At evaluates the spline at t. Inside the knot range the fitted
// polynomial of the containing interval applies; outside, the curve
// continues linearly with the end derivative. At on an unfitted spline
// returns 0.
func (s *Interpolation) At(t float64) float64 {
	n := len(s.x)
	if n == 0 {
		return 0
	}
	if t < s.x[0] {
		return s.y[0] + s.b[0]*(t-s.x[0])
	}
	if t >= s.x[n-1] {
		return s.y[n-1] + s.b[n-1]*(t-s.x[n-1])
	}

	// First knot strictly greater than t, minus one, is the interval.
	i := sort.SearchFloat64s(s.x, t)
	if i >= n || s.x[i] > t {
		i--
	}
	h := t - s.x[i]

	return s.y[i] + s.b[i]*h + s.c[i]*h*h + s.d[i]*h*h*h
}

// Ready reports whether SetData has succeeded.
func (s *Interpolation) Ready() bool { return s.x != nil }
