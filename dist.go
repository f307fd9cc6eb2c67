// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probscale

import "gonum.org/v1/gonum/stat/distuv"

// Distribution is the reference distribution for a probability scale.
// It must provide the cumulative distribution function and its inverse,
// the quantile function. The distributions in
// [gonum.org/v1/gonum/stat/distuv] satisfy it directly.
type Distribution interface {
	// CDF returns the cumulative distribution function at x.
	CDF(x float64) float64

	// Quantile returns the inverse of the CDF at p, for p in [0, 1].
	Quantile(p float64) float64
}

// StdNormal is the standard normal distribution, the default reference
// distribution throughout the package.
var StdNormal Distribution = distuv.Normal{Mu: 0, Sigma: 1}

// Normal returns a normal distribution with the given location (mean)
// and scale (standard deviation).
func Normal(loc, scale float64) Distribution {
	return distuv.Normal{Mu: loc, Sigma: scale}
}
