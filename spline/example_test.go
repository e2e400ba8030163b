// Package spline_test: runnable documentation examples.
package spline_test

import (
	"fmt"

	"github.com/katalvlaran/geomat/spline"
	"github.com/katalvlaran/geomat/vec"
)

// Interpolate a handful of 2-D control points and sample the middle.
func ExampleCurve() {
	points := []vec.Vector{
		{0, 0},
		{1, 1},
		{2, 0},
	}

	c := spline.NewCurve()
	if err := c.SetPoints(points, true); err != nil {
		fmt.Println("fit:", err)
		return
	}

	p, err := c.Eval(0.5)
	if err != nil {
		fmt.Println("eval:", err)
		return
	}
	fmt.Printf("mid = (%.1f, %.1f)\n", p[0], p[1])
	// Output:
	// mid = (1.0, 1.0)
}
