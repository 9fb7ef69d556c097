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

// Package convert implements the file format conversions of geotk.
//
// Every conversion reads one input, runs the geometry through the kernel
// packages, and writes one output.  SVG inputs are flattened with the
// steps given in [Options].
package convert

import (
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/dxf"
	"seehuhn.de/go/geotk/flatten"
	"seehuhn.de/go/geotk/gcode"
	"seehuhn.de/go/geotk/kicad"
	"seehuhn.de/go/geotk/obj"
	"seehuhn.de/go/geotk/planar"
	"seehuhn.de/go/geotk/preview"
	"seehuhn.de/go/geotk/scad"
	"seehuhn.de/go/geotk/svg"
)

// Options controls how SVG input is read.
type Options struct {
	Steps  flatten.Steps
	Strict bool // fail on the first invalid shape
}

// readSVG returns the polylines of an SVG document.  Machine oriented
// outputs have the y axis pointing up and set invertY.
func readSVG(r io.Reader, opt Options, invertY bool) ([]planar.Polyline, error) {
	shapes, err := svg.Read(r, svg.Options{
		Steps:   opt.Steps,
		InvertY: invertY,
		Strict:  opt.Strict,
	})
	if err != nil {
		return nil, fmt.Errorf("reading SVG: %w", err)
	}
	geotk.Logger().Debug("read SVG", "shapes", len(shapes))
	return svg.Polylines(shapes), nil
}

// SVGToGcode writes milling toolpaths along the shapes of an SVG drawing.
func SVGToGcode(w io.Writer, r io.Reader, conf *gcode.Config, opt Options) error {
	paths, err := readSVG(r, opt, true)
	if err != nil {
		return err
	}
	return gcode.Write(w, paths, conf)
}

// SVGToOBJ writes the shapes of an SVG drawing as the faces of a flat
// mesh.
func SVGToOBJ(w io.Writer, r io.Reader, opt Options) error {
	paths, err := readSVG(r, opt, true)
	if err != nil {
		return err
	}
	return obj.Write(w, paths)
}

// SVGToSCAD writes the shapes of an SVG drawing as an OpenSCAD polygon.
func SVGToSCAD(w io.Writer, r io.Reader, opt Options) error {
	paths, err := readSVG(r, opt, false)
	if err != nil {
		return err
	}
	return scad.WritePolygon(w, paths)
}

// SVGToKicad copies a PCB file, replacing the traces on one layer and
// net by the shapes of an SVG drawing.
func SVGToKicad(w io.Writer, svgIn, pcbIn io.Reader, style kicad.TraceStyle, opt Options) error {
	paths, err := readSVG(svgIn, opt, false)
	if err != nil {
		return err
	}
	return kicad.ReplaceTraces(w, pcbIn, paths, style)
}

// SVGToPNG renders the shapes of an SVG drawing.
func SVGToPNG(w io.Writer, r io.Reader, popt preview.Options, opt Options) error {
	paths, err := readSVG(r, opt, false)
	if err != nil {
		return err
	}
	return preview.WritePNG(w, paths, popt)
}

// SVGToPDF writes the shapes of an SVG drawing to a PDF file.
func SVGToPDF(fname string, r io.Reader, popt preview.Options, opt Options) error {
	paths, err := readSVG(r, opt, false)
	if err != nil {
		return err
	}
	return preview.WritePDF(fname, paths, popt)
}

// KicadToSVG extracts the traces of a PCB file, joins them into paths
// and draws them with one layer per board layer and net.
func KicadToSVG(w io.Writer, r io.Reader, f kicad.Filter) error {
	layers, err := kicad.Extract(r, f)
	if err != nil {
		return fmt.Errorf("reading PCB: %w", err)
	}
	return kicad.WriteSVG(w, layers)
}

// DXFToKicad converts the lines of a DXF drawing into board outline
// records.
func DXFToKicad(w io.Writer, r io.Reader) error {
	segs, err := dxf.Read(r, dxf.Options{})
	if err != nil {
		return fmt.Errorf("reading DXF: %w", err)
	}
	return kicad.WriteGrLines(w, segs)
}

// OBJOptions controls [OBJToSVG].
type OBJOptions struct {
	Unit string // unit of the SVG document, for example "mm"

	// Outline draws only the boundary of the mesh instead of every face.
	Outline bool
}

// OBJToSVG draws a flat mesh.  The drawing is moved so that its bounding
// box starts at the origin, and the y axis is flipped to point down.
func OBJToSVG(w io.Writer, r io.Reader, opt OBJOptions) error {
	m, err := obj.Read(r)
	if err != nil {
		return fmt.Errorf("reading OBJ: %w", err)
	}

	var polys []planar.Polyline
	if opt.Outline {
		polys = m.Outline()
	} else {
		polys = m.Polygons()
	}

	bb := m.Bounds()
	toPage := func(v vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: v.X - bb.LLx, Y: bb.URy - v.Y}
	}

	sw := svg.NewWriter(w, bb.URx-bb.LLx, bb.URy-bb.LLy, opt.Unit)
	for _, p := range polys {
		sw.Path(p.Map(toPage), svg.LineStyle)
	}
	geotk.Logger().Info("wrote SVG", "paths", len(polys))
	return sw.Close()
}
