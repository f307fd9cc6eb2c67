// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probscale

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MarkerShape enumerates the scatter marker shapes.
type MarkerShape int

const (
	Circle MarkerShape = iota
	Square
	Triangle
	Ring
	Cross
	Plus
	Pyramid
	Box
)

var markerNames = map[string]MarkerShape{
	"circle":   Circle,
	"square":   Square,
	"triangle": Triangle,
	"ring":     Ring,
	"cross":    Cross,
	"plus":     Plus,
	"pyramid":  Pyramid,
	"box":      Box,
}

func (ms MarkerShape) String() string {
	for name, m := range markerNames {
		if m == ms {
			return name
		}
	}
	return fmt.Sprintf("MarkerShape(%d)", int(ms))
}

// ParseMarkerShape returns the [MarkerShape] named by s.
func ParseMarkerShape(s string) (MarkerShape, error) {
	ms, ok := markerNames[s]
	if !ok {
		return Circle, fmt.Errorf("probscale: unknown marker shape %q", s)
	}
	return ms, nil
}

func (ms MarkerShape) glyph() draw.GlyphDrawer {
	switch ms {
	case Square:
		return draw.SquareGlyph{}
	case Triangle:
		return draw.TriangleGlyph{}
	case Ring:
		return draw.RingGlyph{}
	case Cross:
		return draw.CrossGlyph{}
	case Plus:
		return draw.PlusGlyph{}
	case Pyramid:
		return draw.PyramidGlyph{}
	case Box:
		return draw.BoxGlyph{}
	}
	return draw.CircleGlyph{}
}

// LineKind enumerates the dash patterns for the best-fit line.
type LineKind int

const (
	Solid LineKind = iota
	Dashed
	Dotted
)

var lineKindNames = map[string]LineKind{
	"solid":  Solid,
	"dashed": Dashed,
	"dotted": Dotted,
}

func (lk LineKind) String() string {
	for name, k := range lineKindNames {
		if k == lk {
			return name
		}
	}
	return fmt.Sprintf("LineKind(%d)", int(lk))
}

// ParseLineKind returns the [LineKind] named by s.
func ParseLineKind(s string) (LineKind, error) {
	lk, ok := lineKindNames[s]
	if !ok {
		return Solid, fmt.Errorf("probscale: unknown line kind %q", s)
	}
	return lk, nil
}

func (lk LineKind) dashes() []vg.Length {
	switch lk {
	case Dashed:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case Dotted:
		return []vg.Length{vg.Points(1.5), vg.Points(2.5)}
	}
	return nil
}

// ScatterStyle is the marker configuration for the data series of a
// probability plot.
type ScatterStyle struct {
	// Shape of the marker drawn at each observation.
	Shape MarkerShape

	// Size is the marker radius in points. Defaults to 3.
	Size float64

	// Alpha is the marker opacity in (0, 1]. Defaults to 1.
	Alpha float64

	// Color of the markers. Defaults to a medium blue.
	Color color.Color
}

// Defaults fills in unset style values.
func (ss *ScatterStyle) Defaults() {
	if ss.Size <= 0 {
		ss.Size = 3
	}
	if ss.Alpha <= 0 || ss.Alpha > 1 {
		ss.Alpha = 1
	}
	if ss.Color == nil {
		ss.Color = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	}
}

func (ss *ScatterStyle) glyphStyle() draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  withAlpha(ss.Color, ss.Alpha),
		Radius: vg.Points(ss.Size),
		Shape:  ss.Shape.glyph(),
	}
}

// LineStyle is the configuration for the best-fit line and the
// confidence band edges.
type LineStyle struct {
	// Kind selects the dash pattern.
	Kind LineKind

	// Width is the stroke width in points. Defaults to 1.
	Width float64

	// Alpha is the line opacity in (0, 1]. Defaults to 1.
	Alpha float64

	// Color of the line. Defaults to a dark orange.
	Color color.Color
}

// Defaults fills in unset style values.
func (ls *LineStyle) Defaults() {
	if ls.Width <= 0 {
		ls.Width = 1
	}
	if ls.Alpha <= 0 || ls.Alpha > 1 {
		ls.Alpha = 1
	}
	if ls.Color == nil {
		ls.Color = color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	}
}

func (ls *LineStyle) lineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  withAlpha(ls.Color, ls.Alpha),
		Width:  vg.Points(ls.Width),
		Dashes: ls.Kind.dashes(),
	}
}

// withAlpha scales the opacity of an otherwise opaque color.
func withAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	r, g, b, _ := c.RGBA()
	return color.NRGBA64{
		R: uint16(r),
		G: uint16(g),
		B: uint16(b),
		A: uint16(alpha * 0xffff),
	}
}
