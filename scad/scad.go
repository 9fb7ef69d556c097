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

// Package scad writes 2D geometry as OpenSCAD polygons.
package scad

import (
	"bufio"
	"io"
	"strconv"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/internal/numfmt"
	"seehuhn.de/go/geotk/planar"
)

// WritePolygon writes all paths as a single polygon statement.  Every
// path becomes one entry of the paths list, with 0-based indices into
// the points list.  Empty paths are left out.
func WritePolygon(w io.Writer, paths []planar.Polyline) error {
	out := bufio.NewWriter(w)

	out.WriteString("polygon(points=[")
	n := 0
	for _, p := range paths {
		for _, v := range p {
			if n > 0 {
				out.WriteString(", ")
			}
			out.WriteString("[" + numfmt.Float(v.X) + ", " + numfmt.Float(v.Y) + "]")
			n++
		}
	}

	out.WriteString("], paths=[")
	next := 0
	first := true
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		if !first {
			out.WriteString(", ")
		}
		first = false
		out.WriteByte('[')
		for j := range p {
			if j > 0 {
				out.WriteString(", ")
			}
			out.WriteString(strconv.Itoa(next))
			next++
		}
		out.WriteByte(']')
	}
	out.WriteString("]);\n")

	geotk.Logger().Info("wrote OpenSCAD polygon", "points", n)
	return out.Flush()
}
