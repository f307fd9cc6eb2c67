// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package probscale provides probability scales and probability,
// quantile, and percentile plots for gonum/plot.
//
// A probability scale positions a probability percentage p in (0, 100)
// at the quantile Q(p/100) of a reference distribution, so that data
// drawn from that distribution plots as a straight line. [Scale]
// implements both [gonum.org/v1/plot.Normalizer] and
// [gonum.org/v1/plot.Ticker] and can be installed directly on an axis:
//
//	plt := plot.New()
//	sc := probscale.Scale{}
//	plt.Y.Scale = sc
//	plt.Y.Tick.Marker = sc
//	plt.Y.Min, plt.Y.Max = 0.5, 99.5
//
// [ProbPlot] builds a complete plot from a sample: plotting positions,
// scatter, axis scaling, and an optional least-squares best-fit line
// with a bootstrap confidence band. The reference distribution
// defaults to the standard normal; any distribution from
// [gonum.org/v1/gonum/stat/distuv] with a CDF and a quantile function
// can be substituted.
package probscale
