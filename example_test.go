// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probscale_test

import (
	"fmt"
	"io"
	"log"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot/vg"

	"github.com/probgo/probscale"
)

// Render a probability plot with non-exceedance probabilities on the
// y axis and a dashed best-fit line, the classic probability-paper
// figure.
func ExampleProbPlot() {
	dist := distuv.Normal{Mu: 5, Sigma: 1.25, Src: rand.NewSource(0)}
	data := make([]float64, 37)
	for i := range data {
		data[i] = dist.Rand()
	}

	plt, _, err := probscale.ProbPlot(data, &probscale.Options{
		Type:      probscale.ProbabilityPlot,
		ProbAxis:  probscale.YAxis,
		ProbLabel: "Non-exceedance probability",
		DataLabel: "Observed values",
		BestFit:   true,
		Line:      probscale.LineStyle{Kind: probscale.Dashed, Width: 2},
		Scatter:   probscale.ScatterStyle{Shape: probscale.Circle, Alpha: 0.5},
	})
	if err != nil {
		log.Fatal(err)
	}

	wt, err := plt.WriterTo(4*vg.Inch, 7*vg.Inch, "svg")
	if err != nil {
		log.Fatal(err)
	}
	if _, err := wt.WriteTo(io.Discard); err != nil {
		log.Fatal(err)
	}
	// Output:
}

// The transform itself is available without building a plot.
func ExampleScale_Forward() {
	sc := probscale.Scale{}
	c, err := sc.Forward(50)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.1f\n", c)
	// Output: 0.0
}
