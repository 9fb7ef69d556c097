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

package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2/xml"

	"seehuhn.de/go/geotk/internal/numfmt"
	"seehuhn.de/go/geotk/planar"
)

// LineStyle is the style used for paths written by [Writer.Path].
const LineStyle = "fill:none;stroke:#000000;stroke-width:0.1;" +
	"stroke-miterlimit:4;stroke-dasharray:none"

// Writer writes an SVG document with Inkscape layers.
//
// Errors are sticky: after the first write error all further calls do
// nothing, and the error is reported by [Writer.Close].
type Writer struct {
	w      io.Writer
	err    error
	layers []int // indices of the open layers
	next   []int // number of sublayers started, per nesting level
	buf    []byte
}

// NewWriter writes the document header and returns a writer for the
// document body.  width and height are given in unit, which is also
// the unit of the user coordinate system.
func NewWriter(w io.Writer, width, height float64, unit string) *Writer {
	sw := &Writer{w: w, next: []int{0}}
	wd, ht := numfmt.Float(width), numfmt.Float(height)
	sw.printf(`<svg
  xmlns:svg="http://www.w3.org/2000/svg"
  xmlns="http://www.w3.org/2000/svg"
  xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"
  xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"
  width="%s%s"
  height="%s%s"
  viewBox="0 0 %s %s"
>
  <sodipodi:namedview
    inkscape:document-units=%s
    units=%s
  />
`, wd, unit, ht, unit, wd, ht, sw.quote(unit), sw.quote(unit))
	return sw
}

// BeginLayer opens an Inkscape layer.  Layers may be nested.
func (sw *Writer) BeginLayer(label string) {
	level := len(sw.layers)
	idx := sw.next[level]
	sw.next[level]++

	id := "layer"
	for _, l := range sw.layers {
		id += fmt.Sprintf("-%d", l)
	}
	id += fmt.Sprintf("-%d", idx)

	indent := sw.indent()
	sw.printf("%s<g\n%s    inkscape:label=%s\n%s    inkscape:groupmode=\"layer\"\n%s    id=\"%s\"\n%s    style=\"display:inline\"\n%s    >\n",
		indent, indent, sw.quote(label), indent, indent, id, indent, indent)

	sw.layers = append(sw.layers, idx)
	sw.next = append(sw.next, 0)
}

// EndLayer closes the innermost open layer.
func (sw *Writer) EndLayer() {
	if len(sw.layers) == 0 {
		return
	}
	sw.layers = sw.layers[:len(sw.layers)-1]
	sw.next = sw.next[:len(sw.next)-1]
	sw.printf("%s</g>\n", sw.indent())
}

// Path writes p as a path element.  Polylines with fewer than two points
// are skipped.
func (sw *Writer) Path(p planar.Polyline, style string) {
	d := PathD(p)
	if d == "" {
		return
	}
	sw.printf("%s<path style=%s d=\"%s\"/>\n", sw.indent(), sw.quote(style), d)
}

// Close closes all open layers and writes the document footer.
// It returns the first error encountered while writing.
func (sw *Writer) Close() error {
	for len(sw.layers) > 0 {
		sw.EndLayer()
	}
	sw.printf("</svg>\n")
	return sw.err
}

func (sw *Writer) indent() string {
	return strings.Repeat("  ", len(sw.layers)+1)
}

func (sw *Writer) quote(s string) string {
	s = xmlText.Replace(s)
	return string(xml.EscapeAttrVal(&sw.buf, []byte(s)))
}

var xmlText = strings.NewReplacer("&", "&amp;", "<", "&lt;")

func (sw *Writer) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

// PathD returns the "d" attribute for a polyline.  Closed polylines end
// in "Z" instead of repeating the first point.  Polylines with fewer
// than two points give the empty string.
func PathD(p planar.Polyline) string {
	if len(p) < 2 {
		return ""
	}
	closed := p.Closed()
	if closed {
		p = p.Open()
	}

	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString("L ")
		}
		b.WriteString(numfmt.Float(v.X))
		b.WriteByte(' ')
		b.WriteString(numfmt.Float(v.Y))
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}
