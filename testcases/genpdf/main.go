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

// Command genpdf draws the flattening test cases for visual inspection.
// For every case it writes a PDF showing the original curve in grey and
// the flattened polyline in black, and a PNG preview of the polyline.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/geotk/flatten"
	"seehuhn.de/go/geotk/planar"
	"seehuhn.de/go/geotk/preview"
	"seehuhn.de/go/geotk/svgpath"
	"seehuhn.de/go/geotk/testcases"
)

const (
	refDir = "testdata/reference"
	size   = 200.0 // size of the drawing in points
	margin = 16.0
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generate(tc, pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, pdfPath, pngPath string) error {
	cmds, err := svgpath.Parse(tc.D)
	if err != nil {
		return err
	}
	cfg := tc.Steps.Config()
	flat, err := svgpath.Interpret(cmds, cfg)
	if err != nil {
		return err
	}
	// Arcs in the reference curve are drawn at a fine resolution.
	curve, err := svgpath.ToPath(cmds, flatten.Steps{Angle: 1}.Config())
	if err != nil {
		return err
	}

	if err := generatePDF(curve, flat, pdfPath); err != nil {
		return err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = preview.WritePNG(f, flat, preview.Options{Width: size, Height: size})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func generatePDF(curve *path.Data, flat []planar.Polyline, pdfPath string) error {
	var b planar.Bounds
	for _, p := range flat {
		b.AddPolyline(p)
	}
	bb := b.Rect()
	s := size / max(bb.URx-bb.LLx, bb.URy-bb.LLy, 1)

	paper := &pdf.Rectangle{
		URx: (bb.URx-bb.LLx)*s + 2*margin,
		URy: (bb.URy-bb.LLy)*s + 2*margin,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Test cases use SVG coordinates, with the y axis pointing down.
	page.Transform(matrix.Matrix{s, 0, 0, -s, margin - bb.LLx*s, margin + bb.URy*s})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	// Original curve.  PDF has no quadratic Béziers.
	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(3 / s)
	for cmd, pts := range curve.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	// Flattened polyline, with a dot at every vertex.
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.5 / s)
	for _, p := range flat {
		page.MoveTo(p[0].X, p[0].Y)
		for _, v := range p[1:] {
			page.LineTo(v.X, v.Y)
		}
	}
	page.Stroke()
	page.SetFillColor(color.DeviceGray(0))
	r := 1.5 / s
	for _, p := range flat {
		for _, v := range p {
			page.Rectangle(v.X-r, v.Y-r, 2*r, 2*r)
		}
	}
	page.Fill()

	return page.Close()
}
