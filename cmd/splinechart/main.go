// SPDX-License-Identifier: MIT
// Command splinechart fits a cubic spline curve through a set of 2-D
// control points and renders the control polygon and the interpolated
// curve to an image file.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/geomat/spline"
	"github.com/katalvlaran/geomat/vec"
)

func main() {
	var (
		out        = flag.String("o", "spline.svg", "output file (format by extension: .svg, .png, .pdf)")
		resolution = flag.Int("n", 256, "number of curve samples")
		linear     = flag.Bool("linear", false, "piecewise-linear instead of cubic interpolation")
	)
	flag.Parse()

	if *resolution < 2 {
		log.Fatalf("splinechart: resolution must be >= 2, got %d", *resolution)
	}

	// A damped sine wave, sparsely sampled, makes the difference between
	// the control polygon and the interpolant easy to see.
	points := make([]vec.Vector, 0, 9)
	for i := 0; i <= 8; i++ {
		x := float64(i)
		points = append(points, vec.Vector{x, math.Exp(-x/6) * math.Sin(x)})
	}

	curve := spline.NewCurve()
	if err := curve.SetPoints(points, !*linear); err != nil {
		log.Fatalf("splinechart: fit: %v", err)
	}

	if err := render(curve, points, *resolution, *out); err != nil {
		log.Fatalf("splinechart: %v", err)
	}
	fmt.Printf("wrote %s (%d samples, %d control points)\n", *out, *resolution, len(points))
}

// render samples the curve and writes the chart.
func render(curve *spline.Curve, points []vec.Vector, resolution int, out string) error {
	samples := make(plotter.XYs, resolution)
	for i := 0; i < resolution; i++ {
		p, err := curve.Eval(float64(i) / float64(resolution-1))
		if err != nil {
			return fmt.Errorf("eval: %w", err)
		}
		samples[i].X, samples[i].Y = p[0], p[1]
	}

	knots := make(plotter.XYs, len(points))
	for i, p := range points {
		knots[i].X, knots[i].Y = p[0], p[1]
	}

	pl := plot.New()
	pl.Title.Text = "Cubic spline curve interpolation"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"
	pl.Add(plotter.NewGrid())

	line, err := plotter.NewLine(samples)
	if err != nil {
		return fmt.Errorf("line: %w", err)
	}
	line.Color = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

	scatter, err := plotter.NewScatter(knots)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	scatter.GlyphStyle.Radius = vg.Points(3)

	pl.Add(line, scatter)
	pl.Legend.Add("curve", line)
	pl.Legend.Add("control points", scatter)

	return pl.Save(7*vg.Inch, 4*vg.Inch, out)
}
