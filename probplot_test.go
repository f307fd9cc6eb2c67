// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probscale

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// testSample draws a reproducible normal sample with mean 5 and
// standard deviation 1.25, mirroring the classic demo figures.
func testSample(n int) []float64 {
	dist := distuv.Normal{Mu: 5, Sigma: 1.25, Src: rand.NewSource(7)}
	data := make([]float64, n)
	for i := range data {
		data[i] = dist.Rand()
	}
	return data
}

func TestProbPlotProbability(t *testing.T) {
	data := testSample(37)
	plt, res, err := ProbPlot(data, &Options{
		Type:      ProbabilityPlot,
		ProbAxis:  YAxis,
		ProbLabel: "Non-exceedance probability",
		DataLabel: "Observed values",
		BestFit:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, plt)

	assert.IsType(t, Scale{}, plt.Y.Scale)
	assert.Equal(t, "Non-exceedance probability", plt.Y.Label.Text)
	assert.Equal(t, "Observed values", plt.X.Label.Text)

	lo, hi := ProbLimits(37)
	assert.Equal(t, lo, plt.Y.Min)
	assert.Equal(t, hi, plt.Y.Max)

	// Data on x, probabilities on y, both ascending.
	require.Len(t, res.X, 37)
	assert.True(t, sort.Float64sAreSorted(res.X))
	assert.True(t, sort.Float64sAreSorted(res.Y))
	assert.Greater(t, res.Y[0], 0.0)
	assert.Less(t, res.Y[len(res.Y)-1], 100.0)

	// For normal data, the fit slope estimates the standard
	// deviation and the intercept the mean.
	require.NotNil(t, res.Fit)
	assert.Greater(t, res.Fit.Slope, 0.8)
	assert.Less(t, res.Fit.Slope, 1.8)
	assert.Greater(t, res.Fit.Intercept, 4.3)
	assert.Less(t, res.Fit.Intercept, 5.7)
}

func TestProbPlotQQ(t *testing.T) {
	data := testSample(37)
	plt, res, err := ProbPlot(data, &Options{
		Type:     QuantilePlot,
		ProbAxis: XAxis,
		BestFit:  true,
	})
	require.NoError(t, err)

	// A qq plot keeps a linear quantile axis.
	assert.IsType(t, plot.LinearScale{}, plt.X.Scale)

	assert.Equal(t, res.Quantiles, res.X)
	assert.True(t, sort.Float64sAreSorted(res.Quantiles))
	require.NotNil(t, res.Fit)
}

func TestProbPlotPP(t *testing.T) {
	data := testSample(12)
	plt, _, err := ProbPlot(data, &Options{
		Type:     PercentilePlot,
		ProbAxis: XAxis,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, plt.X.Min)
	assert.Equal(t, 100.0, plt.X.Max)
}

func TestProbPlotLogDataAxis(t *testing.T) {
	// Strictly positive data, as the log scale requires.
	dist := distuv.LogNormal{Mu: 1, Sigma: 0.4, Src: rand.NewSource(11)}
	data := make([]float64, 25)
	for i := range data {
		data[i] = dist.Rand()
	}
	_, res, err := ProbPlot(data, &Options{
		Type:      ProbabilityPlot,
		ProbAxis:  XAxis,
		DataScale: Log,
		BestFit:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Fit)
	for _, v := range res.Fit.Yhat {
		assert.Greater(t, v, 0.0)
	}
}

func TestProbPlotCIBand(t *testing.T) {
	data := testSample(30)
	_, res, err := ProbPlot(data, &Options{
		Type:       ProbabilityPlot,
		ProbAxis:   YAxis,
		BestFit:    true,
		EstimateCI: true,
		Seed:       3,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Fit)
	assert.Len(t, res.Fit.YhatLo, len(res.Fit.Xhat))
	assert.Len(t, res.Fit.YhatHi, len(res.Fit.Xhat))
}

func TestProbPlotErrors(t *testing.T) {
	_, _, err := ProbPlot(nil, nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, _, err = ProbPlot([]float64{1}, &Options{BestFit: true})
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, _, err = ProbPlot([]float64{1, 2}, &Options{DataScale: Probability})
	assert.Error(t, err)
}

func TestProbPlotRenderSVG(t *testing.T) {
	data := testSample(37)
	plt, _, err := ProbPlot(data, &Options{
		Type:     ProbabilityPlot,
		ProbAxis: YAxis,
		BestFit:  true,
		Scatter:  ScatterStyle{Shape: Square, Alpha: 0.5},
		Line:     LineStyle{Kind: Dashed, Width: 2},
	})
	require.NoError(t, err)

	wt, err := plt.WriterTo(4*vg.Inch, 7*vg.Inch, "svg")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = wt.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestProbLimits(t *testing.T) {
	lo, hi := ProbLimits(5)
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 90.0, hi)

	lo, hi = ProbLimits(8)
	assert.Equal(t, 5.0, lo)
	assert.Equal(t, 95.0, hi)

	lo, hi = ProbLimits(37)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 99.0, hi)

	lo, hi = ProbLimits(1000)
	assert.InDelta(t, 0.1, lo, 1e-12)
	assert.InDelta(t, 99.9, hi, 1e-12)
}
