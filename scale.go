// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probscale

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrProbability indicates a probability outside the open
	// interval (0, 100). The transform is infinite at the extremes,
	// so 0 and 100 themselves are excluded.
	ErrProbability = errors.New("probscale: probability outside the open interval (0, 100)")

	// ErrInfinity indicates a NaN or infinite input value.
	ErrInfinity = errors.New("probscale: non-finite value")

	// ErrNoData indicates an empty sample.
	ErrNoData = errors.New("probscale: no data points")

	// ErrInsufficientData indicates too few observations for a
	// best-fit line.
	ErrInsufficientData = errors.New("probscale: insufficient data")
)

// Scale maps probabilities expressed as percentages in (0, 100) onto a
// linear plotting coordinate using the quantile function of a
// reference distribution. Scale implements [plot.Normalizer] and
// [plot.Ticker], so a zero Scale on an axis gives a standard normal
// probability scale.
type Scale struct {
	// Dist is the reference distribution. A nil Dist means the
	// standard normal distribution.
	Dist Distribution
}

func (s Scale) dist() Distribution {
	if s.Dist == nil {
		return StdNormal
	}
	return s.Dist
}

// Forward converts a probability percentage to its coordinate on the
// linear rendering axis, Q(p/100) for quantile function Q. It returns
// an error wrapping [ErrProbability] when p lies outside (0, 100),
// or [ErrInfinity] when p is not finite.
func (s Scale) Forward(p float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInfinity, p)
	}
	if p <= 0 || p >= 100 {
		return 0, fmt.Errorf("%w: %v", ErrProbability, p)
	}
	return s.dist().Quantile(p / 100), nil
}

// Inverse converts an axis coordinate back to a probability
// percentage, 100*F(x). It is defined for every finite x and returns
// a value in (0, 100); non-finite x returns an error wrapping
// [ErrInfinity].
func (s Scale) Inverse(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInfinity, x)
	}
	return 100 * s.dist().CDF(x), nil
}

// Normalize returns the fractional position of x between the axis
// limits min and max, implementing [plot.Normalizer]. Like
// [plot.LogScale], it panics when a value falls outside the domain of
// the transform, since the interface cannot return an error; keep axis
// limits strictly inside (0, 100).
func (s Scale) Normalize(min, max, x float64) float64 {
	lo, err := s.Forward(min)
	if err != nil {
		panic(err)
	}
	hi, err := s.Forward(max)
	if err != nil {
		panic(err)
	}
	v, err := s.Forward(x)
	if err != nil {
		panic(err)
	}
	return (v - lo) / (hi - lo)
}

// TickPosition pairs a requested probability with its transformed axis
// coordinate.
type TickPosition struct {
	Prob  float64
	Coord float64
}

// TickPositions applies [Scale.Forward] to each requested probability,
// returning (probability, coordinate) pairs in ascending probability
// order. It is the raw material for placing gridlines at standard
// probability values such as 1, 5, 10, 25, 50, 75, 90, 95, 99.
func (s Scale) TickPositions(probs []float64) ([]TickPosition, error) {
	ts := make([]TickPosition, 0, len(probs))
	for _, p := range probs {
		c, err := s.Forward(p)
		if err != nil {
			return nil, err
		}
		ts = append(ts, TickPosition{Prob: p, Coord: c})
	}
	slices.SortFunc(ts, func(a, b TickPosition) int {
		return cmp.Compare(a.Prob, b.Prob)
	})
	return ts, nil
}
