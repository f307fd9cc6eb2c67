// Copyright (c) 2026, The Probscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/probgo/probscale"
)

// Config is the style configuration that can be loaded from a TOML or
// YAML file with --config. Unset fields keep the values from the
// command-line flags.
type Config struct {
	Title     string        `toml:"title" yaml:"title"`
	ProbLabel string        `toml:"prob_label" yaml:"prob_label"`
	DataLabel string        `toml:"data_label" yaml:"data_label"`
	Scatter   ScatterConfig `toml:"scatter" yaml:"scatter"`
	Line      LineConfig    `toml:"line" yaml:"line"`
}

// ScatterConfig styles the data markers.
type ScatterConfig struct {
	// Marker is the marker shape: circle, square, triangle, ring,
	// cross, plus, pyramid, or box.
	Marker string `toml:"marker" yaml:"marker"`

	// Size is the marker radius in points.
	Size float64 `toml:"size" yaml:"size"`

	// Alpha is the marker opacity in (0, 1].
	Alpha float64 `toml:"alpha" yaml:"alpha"`

	// Color is a hex color such as "#1f77b4".
	Color string `toml:"color" yaml:"color"`
}

// LineConfig styles the best-fit line.
type LineConfig struct {
	// Style is the dash pattern: solid, dashed, or dotted.
	Style string `toml:"style" yaml:"style"`

	// Width is the stroke width in points.
	Width float64 `toml:"width" yaml:"width"`

	// Alpha is the line opacity in (0, 1].
	Alpha float64 `toml:"alpha" yaml:"alpha"`

	// Color is a hex color such as "#ff7f0e".
	Color string `toml:"color" yaml:"color"`
}

// LoadConfig reads a config file, choosing the decoder from the file
// extension.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml, .yaml, or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// apply overlays the config onto opts.
func (c *Config) apply(opts *probscale.Options) error {
	if c.Title != "" {
		opts.Title = c.Title
	}
	if c.ProbLabel != "" {
		opts.ProbLabel = c.ProbLabel
	}
	if c.DataLabel != "" {
		opts.DataLabel = c.DataLabel
	}

	if c.Scatter.Marker != "" {
		shape, err := probscale.ParseMarkerShape(c.Scatter.Marker)
		if err != nil {
			return err
		}
		opts.Scatter.Shape = shape
	}
	opts.Scatter.Size = c.Scatter.Size
	opts.Scatter.Alpha = c.Scatter.Alpha
	if c.Scatter.Color != "" {
		col, err := parseHexColor(c.Scatter.Color)
		if err != nil {
			return err
		}
		opts.Scatter.Color = col
	}

	if c.Line.Style != "" {
		kind, err := probscale.ParseLineKind(c.Line.Style)
		if err != nil {
			return err
		}
		opts.Line.Kind = kind
	}
	opts.Line.Width = c.Line.Width
	opts.Line.Alpha = c.Line.Alpha
	if c.Line.Color != "" {
		col, err := parseHexColor(c.Line.Color)
		if err != nil {
			return err
		}
		opts.Line.Color = col
	}
	return nil
}

// parseHexColor parses "#rrggbb" or "#rgb".
func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
