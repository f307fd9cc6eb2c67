// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probscale

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// PlotPos is a plotting-position convention: the probability assigned
// to the i-th order statistic of an n-observation sample is
//
//	(i - Alpha) / (n + 1 - Alpha - Beta)
//
// with i counted from 1. The named conventions below cover the
// standard parameterizations; custom Alpha and Beta values can be used
// directly.
type PlotPos struct {
	Alpha float64
	Beta  float64
}

// Standard plotting-position conventions. [Hazen] is the package
// default wherever a convention is not specified.
var (
	// Type4 linearly interpolates the empirical CDF.
	Type4 = PlotPos{0, 1}

	// Hazen (type 5) interpolates piecewise linearly: (i - 0.5)/n.
	Hazen = PlotPos{0.5, 0.5}

	// Weibull (type 6) gives unbiased exceedance probabilities for
	// all distributions; common in hydrology.
	Weibull = PlotPos{0, 0}

	// Type7 is the R default. The extreme observations land on
	// probabilities 0 and 1 and cannot be shown on a probability
	// scale.
	Type7 = PlotPos{1, 1}

	// Type8 is approximately median-unbiased.
	Type8 = PlotPos{1.0 / 3, 1.0 / 3}

	// Blom (type 9) is approximately unbiased for normal data.
	Blom = PlotPos{0.375, 0.375}

	// Median gives median exceedance probabilities for all
	// distributions.
	Median = PlotPos{0.3175, 0.3175}

	// APL is used with probability-weighted moments.
	APL = PlotPos{0.35, 0.35}

	// Cunnane gives nearly unbiased quantiles for normal data.
	Cunnane = PlotPos{0.4, 0.4}

	// Gringorten is used for Gumbel distributions.
	Gringorten = PlotPos{0.44, 0.44}
)

var posNames = map[string]PlotPos{
	"type4":      Type4,
	"type5":      Hazen,
	"hazen":      Hazen,
	"type6":      Weibull,
	"weibull":    Weibull,
	"type7":      Type7,
	"type8":      Type8,
	"type9":      Blom,
	"blom":       Blom,
	"median":     Median,
	"apl":        APL,
	"pwm":        APL,
	"cunnane":    Cunnane,
	"gringorten": Gringorten,
}

// PlotPosByName returns the named plotting-position convention.
// Names are case-insensitive and spaces are ignored, so "type 5",
// "Type5", and "hazen" all resolve to [Hazen].
func PlotPosByName(name string) (PlotPos, error) {
	key := strings.ReplaceAll(strings.ToLower(name), " ", "")
	pp, ok := posNames[key]
	if !ok {
		return PlotPos{}, fmt.Errorf("probscale: unknown plotting-position convention %q", name)
	}
	return pp, nil
}

// Positions returns the plotting positions for sample along with a
// sorted copy of the sample. Probabilities are fractions in (0, 1)
// (except under [Type7], which pins the extremes to 0 and 1), one per
// observation, in ascending order. Tied observations keep their own
// order-statistic positions. NaN observations are dropped; an
// infinite observation is an error wrapping [ErrInfinity], and an
// empty sample returns [ErrNoData].
func (pp PlotPos) Positions(sample []float64) (probs, sorted []float64, err error) {
	sorted, err = cleanValues(sample)
	if err != nil {
		return nil, nil, err
	}
	slices.Sort(sorted)
	n := float64(len(sorted))
	probs = make([]float64, len(sorted))
	for i := range probs {
		probs[i] = (float64(i+1) - pp.Alpha) / (n + 1 - pp.Alpha - pp.Beta)
	}
	return probs, sorted, nil
}

// cleanValues returns a copy of vs with NaNs dropped. An infinite
// value is an error, as is ending up with nothing to plot.
func cleanValues(vs []float64) ([]float64, error) {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		if math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v", ErrInfinity, v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}
