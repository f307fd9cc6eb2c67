// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probscale

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// PlotType selects the flavor of plot that [ProbPlot] builds.
type PlotType int

const (
	// ProbabilityPlot scales the probability axis so data following
	// the reference distribution appears as a straight line.
	ProbabilityPlot PlotType = iota

	// QuantilePlot plots sample values against theoretical quantiles
	// on a linear axis (a Q-Q plot).
	QuantilePlot

	// PercentilePlot plots sample values against plotting-position
	// percentiles on a linear 0-100 axis (a P-P plot).
	PercentilePlot
)

func (pt PlotType) String() string {
	switch pt {
	case ProbabilityPlot:
		return "prob"
	case QuantilePlot:
		return "qq"
	case PercentilePlot:
		return "pp"
	}
	return fmt.Sprintf("PlotType(%d)", int(pt))
}

// ParsePlotType returns the [PlotType] named by s: "prob", "qq", or
// "pp".
func ParsePlotType(s string) (PlotType, error) {
	switch s {
	case "prob", "":
		return ProbabilityPlot, nil
	case "qq":
		return QuantilePlot, nil
	case "pp":
		return PercentilePlot, nil
	}
	return ProbabilityPlot, fmt.Errorf("probscale: unknown plot type %q", s)
}

// ProbAxis selects which axis carries the probability (or theoretical
// quantile) encoding; the other axis carries the data values.
type ProbAxis int

const (
	XAxis ProbAxis = iota
	YAxis
)

func (pa ProbAxis) String() string {
	if pa == YAxis {
		return "y"
	}
	return "x"
}

// ParseProbAxis returns the [ProbAxis] named by s: "x" or "y".
func ParseProbAxis(s string) (ProbAxis, error) {
	switch s {
	case "x", "":
		return XAxis, nil
	case "y":
		return YAxis, nil
	}
	return XAxis, fmt.Errorf("probscale: unknown probability axis %q", s)
}

// Options configure [ProbPlot]. The zero value produces a probability
// plot with the probabilities on the x axis, a standard normal
// reference distribution, Hazen plotting positions, and no best-fit
// line.
type Options struct {
	// Title of the plot.
	Title string

	// Type is the plot flavor: prob, qq, or pp.
	Type PlotType

	// ProbAxis is the axis carrying the probability encoding.
	ProbAxis ProbAxis

	// Dist is the reference distribution. A nil Dist means the
	// standard normal distribution.
	Dist Distribution

	// Pos is the plotting-position convention. A nil Pos means
	// [Hazen].
	Pos *PlotPos

	// ProbLabel and DataLabel title the probability and data axes.
	ProbLabel, DataLabel string

	// DataScale sets the scale of the data axis: Linear or Log.
	DataScale ScaleKind

	// BestFit overlays a least-squares line through the transformed
	// points.
	BestFit bool

	// EstimateCI additionally draws a bootstrap confidence band
	// around the best-fit line.
	EstimateCI bool

	// Seed seeds the bootstrap resampler. Zero means a
	// time-dependent seed.
	Seed uint64

	// Scatter styles the data markers.
	Scatter ScatterStyle

	// Line styles the best-fit line.
	Line LineStyle
}

// Result reports what [ProbPlot] drew: the theoretical quantiles of
// the plotting positions, the plotted x and y series, and the fit
// results when a best-fit line was requested.
type Result struct {
	Quantiles []float64
	X, Y      []float64
	Fit       *FitResult
}

// ProbPlot builds a probability, quantile, or percentile plot of
// sample against a reference distribution. The returned plot is ready
// to be saved or embedded; the caller may keep styling it.
func ProbPlot(sample []float64, opts *Options) (*plot.Plot, *Result, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Dist == nil {
		o.Dist = StdNormal
	}
	pos := Hazen
	if o.Pos != nil {
		pos = *o.Pos
	}
	if o.DataScale == Probability {
		return nil, nil, fmt.Errorf("probscale: data axis cannot use the probability scale")
	}
	if o.BestFit && len(sample) < 2 {
		return nil, nil, fmt.Errorf("%w: have %d observations, need at least 2 for a best-fit line", ErrInsufficientData, len(sample))
	}

	probs, sorted, err := pos.Positions(sample)
	if err != nil {
		return nil, nil, err
	}

	qntls := make([]float64, len(probs))
	for i, p := range probs {
		qntls[i] = o.Dist.Quantile(p)
	}

	var probvals []float64
	switch o.Type {
	case QuantilePlot:
		probvals = qntls
	case ProbabilityPlot, PercentilePlot:
		probvals = make([]float64, len(probs))
		for i, p := range probs {
			probvals[i] = 100 * p
		}
	default:
		return nil, nil, fmt.Errorf("probscale: unknown plot type %d", int(o.Type))
	}

	plt := plot.New()
	plt.Title.Text = o.Title

	var x, y []float64
	var fitScales FitScales
	probAx, dataAx := &plt.X, &plt.Y
	if o.ProbAxis == YAxis {
		probAx, dataAx = &plt.Y, &plt.X
	}
	if o.ProbAxis == XAxis {
		x, y = probvals, sorted
	} else {
		x, y = sorted, probvals
	}

	probAx.Label.Text = o.ProbLabel
	dataAx.Label.Text = o.DataLabel

	if o.Type == ProbabilityPlot {
		sc := Scale{Dist: o.Dist}
		probAx.Scale = sc
		probAx.Tick.Marker = sc
		if o.ProbAxis == XAxis {
			fitScales.X = Probability
		} else {
			fitScales.Y = Probability
		}
	}
	if o.DataScale == Log {
		dataAx.Scale = plot.LogScale{}
		dataAx.Tick.Marker = plot.LogTicks{Prec: -1}
		if o.ProbAxis == XAxis {
			fitScales.Y = Log
		} else {
			fitScales.X = Log
		}
	}

	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, nil, err
	}
	sstyle := o.Scatter
	sstyle.Defaults()
	scatter.GlyphStyle = sstyle.glyphStyle()
	plt.Add(scatter)

	res := &Result{Quantiles: qntls, X: x, Y: y}

	if o.BestFit {
		fit, err := FitLine(x, y, &FitOptions{
			Scales:     fitScales,
			Dist:       o.Dist,
			Xhat:       x,
			EstimateCI: o.EstimateCI,
			Seed:       o.Seed,
		})
		if err != nil {
			return nil, nil, err
		}
		lstyle := o.Line
		lstyle.Defaults()
		ln, err := plotter.NewLine(lineXYs(fit.Xhat, fit.Yhat))
		if err != nil {
			return nil, nil, err
		}
		ln.LineStyle = lstyle.lineStyle()
		plt.Add(ln)

		if o.EstimateCI {
			// The band is drawn as its two edges in a lighter
			// version of the fit-line style.
			edge := lstyle
			edge.Kind = Dotted
			edge.Alpha = 0.5 * lstyle.Alpha
			for _, ys := range [][]float64{fit.YhatLo, fit.YhatHi} {
				bln, err := plotter.NewLine(lineXYs(fit.Xhat, ys))
				if err != nil {
					return nil, nil, err
				}
				bln.LineStyle = edge.lineStyle()
				plt.Add(bln)
			}
		}
		res.Fit = fit
	}

	// Axis limits on the probability axis come last so that the
	// automatic data ranging cannot widen them.
	switch o.Type {
	case ProbabilityPlot:
		probAx.Min, probAx.Max = ProbLimits(len(sorted))
	case PercentilePlot:
		probAx.Min, probAx.Max = 0, 100
	}

	return plt, res, nil
}

// ProbLimits returns probability-axis limits suited to a sample of
// size n, leaving room beyond the extreme plotting positions.
func ProbLimits(n int) (lo, hi float64) {
	var minval float64
	switch {
	case n <= 5:
		minval = 10
	case n <= 10:
		minval = 5
	default:
		minval = math.Pow(10, -math.Ceil(math.Log10(float64(n))-2))
	}
	return minval, 100 - minval
}

func lineXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
