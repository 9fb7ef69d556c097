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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/affine"
	"seehuhn.de/go/geotk/planar"
)

// WritePNG draws the polylines in black on a white background and writes
// the image in PNG format.
func WritePNG(w io.Writer, paths []planar.Polyline, opt Options) error {
	return png.Encode(w, Render(paths, opt))
}

// Render draws the polylines, scaled to fit the image size given in opt.
// The y axis points down, as in SVG.
func Render(paths []planar.Polyline, opt Options) *image.Gray {
	opt = opt.withDefaults()

	dst := image.NewGray(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	m := fitPixels(paths, opt)
	r := vector.NewRasterizer(opt.Width, opt.Height)
	hw := opt.LineWidth / 2
	for _, p := range paths {
		dev := p.Map(func(v vec.Vec2) vec.Vec2 { return affine.Apply(m, v) })
		for i := 1; i < len(dev); i++ {
			addSegment(r, dev[i-1], dev[i], hw)
		}
		for _, v := range dev {
			addSquare(r, v, hw)
		}
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})

	return dst
}

// fitPixels returns the transformation which centers the drawing in the
// image and scales it to fill the area inside the margin.
func fitPixels(paths []planar.Polyline, opt Options) matrix.Matrix {
	bb := bounds(paths)
	availW := float64(opt.Width) - 2*opt.Margin
	availH := float64(opt.Height) - 2*opt.Margin

	s := 1.0
	switch bw, bh := bb.URx-bb.LLx, bb.URy-bb.LLy; {
	case bw > 0 && bh > 0:
		s = min(availW/bw, availH/bh)
	case bw > 0:
		s = availW / bw
	case bh > 0:
		s = availH / bh
	}

	cx := (bb.LLx + bb.URx) / 2
	cy := (bb.LLy + bb.URy) / 2
	m := affine.Compose(affine.Scale(s, s), affine.Translate(-cx, -cy))
	return affine.Compose(affine.Translate(float64(opt.Width)/2, float64(opt.Height)/2), m)
}

// addSegment adds the rectangle of half width hw around the segment from
// a to b.  All rectangles have the same orientation, so that overlapping
// shapes do not cancel.
func addSegment(r *vector.Rasterizer, a, b vec.Vec2, hw float64) {
	d := b.Sub(a)
	if d.Length() == 0 {
		return
	}
	n := planar.Perp(planar.Normalize(d)).Mul(hw)
	quad(r, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addSquare fills the gap at a vertex between two segments.
func addSquare(r *vector.Rasterizer, c vec.Vec2, hw float64) {
	quad(r,
		vec.Vec2{X: c.X - hw, Y: c.Y - hw},
		vec.Vec2{X: c.X - hw, Y: c.Y + hw},
		vec.Vec2{X: c.X + hw, Y: c.Y + hw},
		vec.Vec2{X: c.X + hw, Y: c.Y - hw},
	)
}

func quad(r *vector.Rasterizer, p0, p1, p2, p3 vec.Vec2) {
	r.MoveTo(float32(p0.X), float32(p0.Y))
	r.LineTo(float32(p1.X), float32(p1.Y))
	r.LineTo(float32(p2.X), float32(p2.Y))
	r.LineTo(float32(p3.X), float32(p3.Y))
	r.ClosePath()
}
