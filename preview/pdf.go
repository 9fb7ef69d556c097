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

package preview

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/planar"
)

// WritePDF strokes the polylines on a single page and writes the page to
// the named file.  The page is sized to fit the drawing at opt.Scale
// points per unit, plus the margin.
func WritePDF(fname string, paths []planar.Polyline, opt Options) error {
	opt = opt.withDefaults()

	bb := bounds(paths)
	s := opt.Scale
	paper := &pdf.Rectangle{
		URx: (bb.URx-bb.LLx)*s + 2*opt.Margin,
		URy: (bb.URy-bb.LLy)*s + 2*opt.Margin,
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has the y axis pointing up, drawings have it pointing down.
	page.Transform(matrix.Matrix{s, 0, 0, -s, opt.Margin - bb.LLx*s, opt.Margin + bb.URy*s})

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(opt.LineWidth / s)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	n := 0
	for _, p := range paths {
		if len(p) < 2 {
			continue
		}
		closed := p.Closed()
		q := p.Open()
		page.MoveTo(q[0].X, q[0].Y)
		for _, v := range q[1:] {
			page.LineTo(v.X, v.Y)
		}
		if closed {
			page.ClosePath()
		}
		n++
	}
	if n > 0 {
		page.Stroke()
	}
	geotk.Logger().Info("wrote PDF preview", "file", fname, "paths", n)

	return page.Close()
}
