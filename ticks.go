// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probscale

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
)

// tickEps absorbs floating-point slop when comparing probabilities
// against the axis limits.
const tickEps = 1e-9

// bodyMajor are the labeled probabilities between 1 and 99. Outside
// this range, labeled ticks continue by decades: 0.1, 0.01, ... and
// their mirrors 99.9, 99.99, ...
var bodyMajor = []float64{1, 2, 5, 10, 25, 50, 75, 90, 95, 98, 99}

// bodyMinor are the unlabeled gridline probabilities between 10 and 90.
var bodyMinor = []float64{15, 20, 30, 35, 40, 45, 55, 60, 65, 70, 80, 85}

// Ticks returns probability ticks covering [min, max], implementing
// [plot.Ticker]. Labeled ticks follow the conventional probability
// paper layout: decades toward the tails, 2-5-10 style values in the
// body, and symmetric mirrors above 50. Ticks outside (0, 100) cannot
// be drawn, so an invalid range yields no ticks.
func (s Scale) Ticks(min, max float64) []plot.Tick {
	if min >= max || min <= 0 || max >= 100 {
		return nil
	}
	var ticks []plot.Tick
	add := func(p float64, label bool) {
		if p < min-tickEps || p > max+tickEps {
			return
		}
		t := plot.Tick{Value: p}
		if label {
			t.Label = formatProb(p)
		}
		ticks = append(ticks, t)
	}

	// Tail decades: 0.1, 0.01, ... down to the axis minimum, with
	// unlabeled intermediates, mirrored about 50.
	for k := 1; ; k++ {
		dec := math.Pow(10, float64(-k))
		if dec < min-tickEps {
			break
		}
		add(dec, true)
		add(100-dec, true)
		for m := 2.0; m < 10; m++ {
			add(m*dec, false)
			add(100-m*dec, false)
		}
	}

	for _, p := range bodyMajor {
		add(p, true)
	}
	for _, p := range bodyMinor {
		add(p, false)
	}

	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return dedupTicks(ticks)
}

// dedupTicks removes ticks at duplicate values, preferring labeled
// ones. Ticks must be sorted by value.
func dedupTicks(ticks []plot.Tick) []plot.Tick {
	out := ticks[:0]
	for _, t := range ticks {
		if n := len(out); n > 0 && out[n-1].Value == t.Value {
			if out[n-1].Label == "" {
				out[n-1].Label = t.Label
			}
			continue
		}
		out = append(out, t)
	}
	return out
}

// formatProb renders a probability tick label without trailing zeros:
// 0.1, 5, 50, 99.99.
func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
