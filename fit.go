// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probscale

import (
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ScaleKind enumerates the value transforms that can be applied to an
// axis before fitting or plotting.
type ScaleKind int

const (
	// Linear leaves values untouched.
	Linear ScaleKind = iota

	// Log works in natural-log space; values must be positive.
	Log

	// Probability works in quantile space: values are percentages in
	// (0, 100), mapped through the reference distribution's quantile
	// function on the way in and back through 100*CDF on the way out.
	Probability
)

func (sk ScaleKind) String() string {
	switch sk {
	case Linear:
		return "linear"
	case Log:
		return "log"
	case Probability:
		return "prob"
	}
	return fmt.Sprintf("ScaleKind(%d)", int(sk))
}

// ParseScaleKind returns the [ScaleKind] named by s: "linear", "log",
// or "prob".
func ParseScaleKind(s string) (ScaleKind, error) {
	switch s {
	case "linear", "":
		return Linear, nil
	case "log":
		return Log, nil
	case "prob":
		return Probability, nil
	}
	return Linear, fmt.Errorf("probscale: unknown scale kind %q", s)
}

// FitScales selects the transform applied to each axis before the
// least-squares fit and inverted afterward.
type FitScales struct {
	X ScaleKind
	Y ScaleKind
}

// FitOptions configure [FitLine]. The zero value fits in plain linear
// coordinates against the standard normal reference distribution.
type FitOptions struct {
	// Scales transform the x and y values before the regression;
	// fitted values are mapped back through the inverse transforms.
	Scales FitScales

	// Dist is the reference distribution for Probability scales.
	// A nil Dist means the standard normal distribution.
	Dist Distribution

	// Xhat are the x values (in data coordinates) at which the
	// fitted line is evaluated. If nil, 100 points evenly spaced
	// over the transformed x range are used.
	Xhat []float64

	// EstimateCI computes a percentile-bootstrap confidence band
	// around the fitted values.
	EstimateCI bool

	// NIter is the number of bootstrap resamples. Defaults to 10000.
	NIter int

	// Alpha is the bootstrap significance level; the band covers
	// 1-Alpha. Defaults to 0.05.
	Alpha float64

	// Seed seeds the bootstrap resampler. Zero means a
	// time-dependent seed.
	Seed uint64
}

// FitResult is the outcome of a least-squares fit.
type FitResult struct {
	// Slope and Intercept describe the fitted line in transformed
	// coordinates.
	Slope, Intercept float64

	// Xhat and Yhat are the fitted line evaluated back in data
	// coordinates, ready for plotting.
	Xhat, Yhat []float64

	// YhatLo and YhatHi bound the bootstrap confidence band when one
	// was requested; nil otherwise.
	YhatLo, YhatHi []float64
}

// fitPoints is the number of evaluation points when FitOptions.Xhat
// is not given.
const fitPoints = 100

// FitLine fits a least-squares line to x-y data, optionally working in
// log or probability space on either axis. Fewer than two
// observations is an error wrapping [ErrInsufficientData].
func FitLine(x, y []float64, opts *FitOptions) (*FitResult, error) {
	o := FitOptions{}
	if opts != nil {
		o = *opts
	}
	if o.Dist == nil {
		o.Dist = StdNormal
	}
	if o.NIter <= 0 {
		o.NIter = 10000
	}
	if o.Alpha <= 0 || o.Alpha >= 1 {
		o.Alpha = 0.05
	}

	if len(x) != len(y) {
		return nil, fmt.Errorf("probscale: mismatched data lengths %d and %d", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: have %d observations, need at least 2 for a best-fit line", ErrInsufficientData, len(x))
	}

	tx, err := transformValues(x, o.Scales.X, o.Dist)
	if err != nil {
		return nil, err
	}
	ty, err := transformValues(y, o.Scales.Y, o.Dist)
	if err != nil {
		return nil, err
	}

	var txhat []float64
	if o.Xhat == nil {
		txhat = linspace(floats.Min(tx), floats.Max(tx), fitPoints)
	} else {
		txhat, err = transformValues(o.Xhat, o.Scales.X, o.Dist)
		if err != nil {
			return nil, err
		}
	}

	intercept, slope := stat.LinearRegression(tx, ty, nil, false)
	res := &FitResult{Slope: slope, Intercept: intercept}

	tyhat := evalLine(txhat, slope, intercept)
	res.Xhat = untransformValues(txhat, o.Scales.X, o.Dist)
	res.Yhat = untransformValues(tyhat, o.Scales.Y, o.Dist)

	if o.EstimateCI {
		lo, hi := bootstrapBand(tx, ty, txhat, o)
		res.YhatLo = untransformValues(lo, o.Scales.Y, o.Dist)
		res.YhatHi = untransformValues(hi, o.Scales.Y, o.Dist)
	}
	return res, nil
}

// FitSample regresses the sorted sample values against the quantiles
// of their plotting positions, returning the slope and intercept of
// the best-fit line for a probability plot of the sample. For
// normally distributed data the slope estimates the standard
// deviation and the intercept the mean.
func FitSample(sample []float64, dist Distribution, pos PlotPos) (slope, intercept float64, err error) {
	if dist == nil {
		dist = StdNormal
	}
	probs, sorted, err := pos.Positions(sample)
	if err != nil {
		return 0, 0, err
	}
	if len(sorted) < 2 {
		return 0, 0, fmt.Errorf("%w: have %d observations, need at least 2 for a best-fit line", ErrInsufficientData, len(sorted))
	}
	q := make([]float64, len(probs))
	for i, p := range probs {
		q[i] = dist.Quantile(p)
	}
	intercept, slope = stat.LinearRegression(q, sorted, nil, false)
	return slope, intercept, nil
}

// transformValues maps vs into fitting space and checks the result is
// finite.
func transformValues(vs []float64, kind ScaleKind, dist Distribution) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		var t float64
		switch kind {
		case Linear:
			t = v
		case Log:
			t = math.Log(v)
		case Probability:
			f, err := Scale{Dist: dist}.Forward(v)
			if err != nil {
				return nil, err
			}
			t = f
		}
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("%w: %s transform of %v", ErrInfinity, kind, v)
		}
		out[i] = t
	}
	return out, nil
}

// untransformValues maps fitted values back into data space.
func untransformValues(vs []float64, kind ScaleKind, dist Distribution) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		switch kind {
		case Linear:
			out[i] = v
		case Log:
			out[i] = math.Exp(v)
		case Probability:
			out[i] = 100 * dist.CDF(v)
		}
	}
	return out
}

func evalLine(xs []float64, slope, intercept float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = intercept + slope*x
	}
	return ys
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// bootstrapBand computes a percentile-bootstrap confidence band for
// the fitted line, in transformed coordinates.
func bootstrapBand(x, y, xhat []float64, o FitOptions) (lo, hi []float64) {
	seed := o.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	n := len(x)
	curves := make([][]float64, o.NIter)
	bx := make([]float64, n)
	by := make([]float64, n)
	for it := range curves {
		for i := range bx {
			j := rng.Intn(n)
			bx[i] = x[j]
			by[i] = y[j]
		}
		a, b := stat.LinearRegression(bx, by, nil, false)
		curves[it] = evalLine(xhat, b, a)
	}

	lo = make([]float64, len(xhat))
	hi = make([]float64, len(xhat))
	col := make([]float64, o.NIter)
	for k := range xhat {
		for it := range curves {
			col[it] = curves[it][k]
		}
		sort.Float64s(col)
		lo[k] = stat.Quantile(o.Alpha/2, stat.Empirical, col, nil)
		hi[k] = stat.Quantile(1-o.Alpha/2, stat.Empirical, col, nil)
	}
	return lo, hi
}
