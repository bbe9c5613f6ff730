// Package render draws broken-line searches with gonum/plot.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/Grenka054/Optimization-Methods/univariate"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Figure size of the original plots
const (
	Width  = 15 * vg.Inch
	Height = 4 * vg.Inch
)

// DefaultSamples is the number of grid points used to draw the objective
const DefaultSamples = 1000

// Figure plots f sampled on samples points of [lower, upper], the broken
// line through points, and the point (loc, obj) in red.
func Figure(f univariate.Objective, lower, upper float64, points []univariate.SupportPoint, loc, obj float64, samples int) (*plot.Plot, error) {
	if samples < 2 {
		return nil, fmt.Errorf("render: need at least 2 samples, got %d", samples)
	}
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.X.Min = lower
	p.X.Max = upper

	curve := plotter.NewFunction(f.Obj)
	curve.XMin = lower
	curve.XMax = upper
	curve.Samples = samples
	curve.Color = plotutil.Color(0)
	curve.Width = vg.Points(1.5)
	p.Add(curve)
	p.Legend.Add("f", curve)

	if len(points) > 0 {
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Value}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("render: broken line: %w", err)
		}
		line.Color = plotutil.Color(1)
		p.Add(line)
		p.Legend.Add("broken line", line)
	}

	mark, err := plotter.NewScatter(plotter.XYs{{X: loc, Y: obj}})
	if err != nil {
		return nil, fmt.Errorf("render: minimum: %w", err)
	}
	mark.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	mark.GlyphStyle.Radius = vg.Points(4)
	mark.GlyphStyle.Shape = plotutil.Shape(0)
	p.Add(mark)
	p.Legend.Add("minimum", mark)
	p.Legend.Top = true

	return p, nil
}

// ResultFigure plots the outcome of a search
func ResultFigure(f univariate.Objective, lower, upper float64, result *univariate.Result, samples int) (*plot.Plot, error) {
	if result == nil {
		return nil, errors.New("render: nil result")
	}
	p, err := Figure(f, lower, upper, result.Points, result.Loc, result.Obj, samples)
	if err != nil {
		return nil, err
	}
	p.Title.Text = fmt.Sprintf("minimum (%.4g, %.4g) after %d iterations", result.Loc, result.Obj, result.Iterations)
	return p, nil
}

// Write encodes p in the given format ("png", "svg", "pdf", ...) to w
func Write(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes p to path, choosing the format from the file extension
func Save(p *plot.Plot, path string) error {
	return p.Save(Width, Height, path)
}

// FrameWriter is a univariate.Observer that saves one PNG per iteration,
// named frame-0001.png, frame-0002.png, ... in Dir.
//
// The first error stops further frames and is reported by Err.
type FrameWriter struct {
	Dir     string
	F       univariate.Objective
	Lower   float64
	Upper   float64
	Samples int

	written int
	err     error
}

func (fw *FrameWriter) Observe(it univariate.Iteration) {
	if fw.err != nil {
		return
	}
	samples := fw.Samples
	if samples == 0 {
		samples = DefaultSamples
	}
	p, err := Figure(fw.F, fw.Lower, fw.Upper, it.Points, it.Loc, it.Obj, samples)
	if err != nil {
		fw.err = err
		return
	}
	p.Title.Text = fmt.Sprintf("iteration %d: x = %.4g, f(x) = %.4g, gap = %.3g", it.Index, it.Loc, it.Obj, it.Gap)

	if err := os.MkdirAll(fw.Dir, 0755); err != nil {
		fw.err = err
		return
	}
	name := filepath.Join(fw.Dir, fmt.Sprintf("frame-%04d.png", it.Index))
	if err := Save(p, name); err != nil {
		fw.err = fmt.Errorf("render: saving %s: %w", name, err)
		return
	}
	fw.written++
}

// Written returns the number of frames saved
func (fw *FrameWriter) Written() int { return fw.written }

// Err returns the first error met while saving frames
func (fw *FrameWriter) Err() error { return fw.err }
