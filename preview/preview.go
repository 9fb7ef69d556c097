// seehuhn.de/go/geotk - conversion tools for 2D geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package preview draws polylines for visual inspection, either as a PNG
// image or as a single page PDF file.
package preview

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/geotk/planar"
)

// Options controls the size and appearance of a preview.
type Options struct {
	// Width and Height give the image size in pixels, for PNG output.
	Width, Height int

	// Margin is the space left around the drawing, in pixels for PNG and
	// in points for PDF output.
	Margin float64

	// LineWidth is the stroke width, in pixels for PNG and in points for
	// PDF output.
	LineWidth float64

	// Scale gives the number of PDF points per drawing unit.  The default
	// treats drawing units as millimeters.
	Scale float64
}

// defaults for zero fields of Options
const (
	defaultSize      = 512
	defaultMargin    = 8
	defaultLineWidth = 1
	defaultScale     = 72 / 25.4
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultSize
	}
	if o.Height <= 0 {
		o.Height = defaultSize
	}
	if o.Margin <= 0 {
		o.Margin = defaultMargin
	}
	if o.LineWidth <= 0 {
		o.LineWidth = defaultLineWidth
	}
	if o.Scale <= 0 {
		o.Scale = defaultScale
	}
	return o
}

func bounds(paths []planar.Polyline) rect.Rect {
	var b planar.Bounds
	for _, p := range paths {
		b.AddPolyline(p)
	}
	return b.Rect()
}
