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

// Package geotk converts 2D vector geometry between the file formats used
// in CAD, CAM and PCB workflows.
//
// The geometry kernel lives in the sub-packages:
//   - [seehuhn.de/go/geotk/planar]: points, polylines and bounding boxes
//   - [seehuhn.de/go/geotk/affine]: SVG transform parsing and composition
//   - [seehuhn.de/go/geotk/flatten]: adaptive linearisation of curves and arcs
//   - [seehuhn.de/go/geotk/svgpath]: path data interpretation
//   - [seehuhn.de/go/geotk/segment]: reconstruction of paths from segment soup
//   - [seehuhn.de/go/geotk/svg]: traversal of SVG documents
//
// The format packages (gcode, obj, kicad, dxf, scad, preview) read and
// write the in-memory polylines, and package convert ties everything
// together.
package geotk

//go:generate go run ./testcases/export

// Version is the release version of the geotk tools.
const Version = "0.3.0"
