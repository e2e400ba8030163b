// Package spline implements cubic spline curve interpolation for points
// of arbitrary dimension.
//
// The building block is Interpolation, a one-dimensional cubic spline over
// monotone knots with configurable boundary conditions (first or second
// derivative at each end, zero curvature by default) and linear
// extrapolation outside the knot range. Curve lifts it to N dimensions by
// fitting one Interpolation per coordinate against a shared parameter,
// either supplied by the caller or derived from accumulated chord length.
//
// Typical use:
//
//	c := spline.NewCurve()
//	if err := c.SetPoints(points, true); err != nil { ... }
//	for i := 0; i < resolution; i++ {
//		p, _ := c.Eval(float64(i) / float64(resolution-1))
//		// p interpolates the control points
//	}
//
// All errors are package sentinels matched with errors.Is; Eval before a
// successful SetPoints yields ErrNotReady.
package spline
