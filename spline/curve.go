// SPDX-License-Identifier: MIT
// Package spline: the N-dimensional curve wrapper. A curve through points
// p_0..p_k is represented parametrically as one 1-D spline per coordinate,
// all sharing the knot parameter.

package spline

import "github.com/katalvlaran/geomat/vec"

// Curve interpolates a sequence of arbitrary-dimension points. Boundary
// conditions default to zero curvature (natural spline) at both ends.
// A Curve is built once with SetPoints and then evaluated repeatedly;
// concurrent Eval calls are safe after the fit.
type Curve struct {
	left, right           BoundaryType
	leftValue, rightValue float64

	dim      int
	interps  []Interpolation
	largestT float64
}

// NewCurve returns a curve with natural boundary conditions.
func NewCurve() *Curve {
	return &Curve{left: SecondDeriv, right: SecondDeriv}
}

// SetBoundary fixes the end conditions for every coordinate spline. It
// must precede SetPoints.
//
// Errors: ErrBoundaryAfterPoints once points are fitted.
func (c *Curve) SetBoundary(left BoundaryType, leftValue float64, right BoundaryType, rightValue float64) error {
	if c.interps != nil {
		return ErrBoundaryAfterPoints
	}
	c.left, c.right = left, right
	c.leftValue, c.rightValue = leftValue, rightValue

	return nil
}

// SetPointsWithParams fits the curve through points at the given knot
// parameters (accumulated time, arc length, ...). Samples whose parameter
// does not strictly increase past the previously kept one are discarded
// (the first sample is always kept); the count of discarded samples is
// returned so callers can surface it.
//
// Errors: ErrDimensionMismatch when the slice lengths differ or the points
// disagree in dimension; ErrTooFewPoints when fewer than two samples
// survive the filter.
func (c *Curve) SetPointsWithParams(params []float64, points []vec.Vector, cubic bool) (int, error) {
	if len(params) != len(points) {
		return 0, ErrDimensionMismatch
	}
	if len(points) < 2 {
		return 0, ErrTooFewPoints
	}

	// Keep only monotonously increasing parameters, first sample always.
	keptParams := make([]float64, 0, len(params))
	keptPoints := make([]vec.Vector, 0, len(points))
	for i := range params {
		if i == 0 || params[i] > keptParams[len(keptParams)-1] {
			keptParams = append(keptParams, params[i])
			keptPoints = append(keptPoints, points[i])
		}
	}
	discarded := len(points) - len(keptPoints)
	if len(keptPoints) < 2 {
		return discarded, ErrTooFewPoints
	}

	dim := keptPoints[0].Dim()
	if dim == 0 {
		return discarded, ErrDimensionMismatch
	}
	for _, p := range keptPoints {
		if p.Dim() != dim {
			return discarded, ErrDimensionMismatch
		}
	}

	// One 1-D spline per coordinate: x1(t), x2(t), ...
	coord := make([]float64, len(keptPoints))
	interps := make([]Interpolation, dim)
	var (
		d, i int
		err  error
	)
	for d = 0; d < dim; d++ {
		for i = range keptPoints {
			coord[i] = keptPoints[i][d]
		}
		if err = interps[d].SetBoundary(c.left, c.leftValue, c.right, c.rightValue); err != nil {
			return discarded, err
		}
		if err = interps[d].SetData(keptParams, coord, cubic); err != nil {
			return discarded, err
		}
	}

	c.dim = dim
	c.interps = interps
	c.largestT = keptParams[len(keptParams)-1]

	return discarded, nil
}

// SetPoints fits the curve through ordered points, parameterized by
// accumulated chord length from the first point.
//
// Errors: ErrTooFewPoints below two points, ErrDimensionMismatch when the
// points disagree in dimension.
func (c *Curve) SetPoints(points []vec.Vector, cubic bool) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}

	params := make([]float64, len(points))
	var (
		t, d float64
		err  error
	)
	for i := 1; i < len(points); i++ {
		if d, err = points[i-1].Distance(points[i]); err != nil {
			return ErrDimensionMismatch
		}
		t += d
		params[i] = t
	}

	_, err = c.SetPointsWithParams(params, points, cubic)

	return err
}

// Dim returns the point dimension, 0 before a successful fit.
func (c *Curve) Dim() int { return c.dim }

// Eval returns the curve position at parameter u in [0, 1], scaled onto
// the knot range. Values outside [0, 1] extrapolate linearly past the
// curve ends.
//
// Errors: ErrNotReady before a successful SetPoints.
func (c *Curve) Eval(u float64) (vec.Vector, error) {
	if c.interps == nil {
		return nil, ErrNotReady
	}
	p := make(vec.Vector, c.dim)
	t := u * c.largestT
	for d := range c.interps {
		p[d] = c.interps[d].At(t)
	}

	return p, nil
}
