// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probscale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLineLinear(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{3, 5, 7, 9, 11} // y = 2x + 1
	res, err := FitLine(x, y, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2, res.Slope, 1e-12)
	assert.InDelta(t, 1, res.Intercept, 1e-12)

	require.Len(t, res.Xhat, fitPoints)
	assert.InDelta(t, 1, res.Xhat[0], 1e-12)
	assert.InDelta(t, 5, res.Xhat[len(res.Xhat)-1], 1e-12)
	assert.InDelta(t, 3, res.Yhat[0], 1e-12)
	assert.InDelta(t, 11, res.Yhat[len(res.Yhat)-1], 1e-12)
}

func TestFitLineErrors(t *testing.T) {
	_, err := FitLine([]float64{1}, []float64{2}, nil)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = FitLine(nil, nil, nil)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = FitLine([]float64{1, 2}, []float64{1}, nil)
	assert.Error(t, err)

	// Log scale of non-positive data is not finite.
	_, err = FitLine([]float64{0, 1}, []float64{1, 2}, &FitOptions{Scales: FitScales{X: Log}})
	assert.ErrorIs(t, err, ErrInfinity)
}

func TestFitLineLogScale(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = math.Exp(1 + 0.5*v)
	}
	res, err := FitLine(x, y, &FitOptions{Scales: FitScales{Y: Log}})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Slope, 1e-9)
	assert.InDelta(t, 1, res.Intercept, 1e-9)
	// Fitted values come back in data coordinates.
	assert.InDelta(t, y[0], res.Yhat[0], 1e-6)
}

func TestFitLineProbScale(t *testing.T) {
	probs := []float64{10, 30, 50, 70, 90}
	y := make([]float64, len(probs))
	for i, p := range probs {
		y[i] = 1 + 2*StdNormal.Quantile(p/100)
	}
	res, err := FitLine(probs, y, &FitOptions{Scales: FitScales{X: Probability}})
	require.NoError(t, err)
	assert.InDelta(t, 2, res.Slope, 1e-9)
	assert.InDelta(t, 1, res.Intercept, 1e-9)
}

func TestFitSampleHazen(t *testing.T) {
	// [1..5] has Hazen plotting positions 10, 30, 50, 70, 90.
	slope, intercept, err := FitSample([]float64{1, 2, 3, 4, 5}, nil, Hazen)
	require.NoError(t, err)
	assert.InDelta(t, 1.6103, slope, 1e-3)
	assert.InDelta(t, 3, intercept, 1e-9)

	// The fitted line reproduces the sorted sample closely.
	for i, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		pred := intercept + slope*StdNormal.Quantile(p)
		assert.InDelta(t, float64(i+1), pred, 0.2)
	}
}

func TestFitSampleErrors(t *testing.T) {
	_, _, err := FitSample([]float64{42}, nil, Hazen)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, _, err = FitSample(nil, nil, Hazen)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBootstrapBand(t *testing.T) {
	x := make([]float64, 20)
	y := make([]float64, 20)
	for i := range x {
		x[i] = float64(i)
		y[i] = 2*float64(i) + 1
	}
	o := &FitOptions{EstimateCI: true, NIter: 200, Seed: 42}
	res, err := FitLine(x, y, o)
	require.NoError(t, err)
	require.Len(t, res.YhatLo, len(res.Xhat))
	require.Len(t, res.YhatHi, len(res.Xhat))
	for i := range res.Yhat {
		assert.LessOrEqual(t, res.YhatLo[i], res.Yhat[i]+1e-9)
		assert.GreaterOrEqual(t, res.YhatHi[i], res.Yhat[i]-1e-9)
	}

	// Same seed, same band.
	res2, err := FitLine(x, y, o)
	require.NoError(t, err)
	assert.Equal(t, res.YhatLo, res2.YhatLo)
	assert.Equal(t, res.YhatHi, res2.YhatHi)
}
