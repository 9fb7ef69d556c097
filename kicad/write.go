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

package kicad

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/internal/numfmt"
	"seehuhn.de/go/geotk/planar"
	"seehuhn.de/go/geotk/segment"
	"seehuhn.de/go/geotk/svg"
)

// Page size of the SVG output, in millimeters (A4 landscape).
const (
	PageWidth  = 297
	PageHeight = 210
)

// WriteSVG writes the paths as an SVG drawing with one layer per board
// layer and one sublayer per net.
func WriteSVG(w io.Writer, layers []LayerPaths) error {
	sw := svg.NewWriter(w, PageWidth, PageHeight, "mm")
	for _, lp := range layers {
		sw.BeginLayer(lp.Layer)
		for _, np := range lp.Nets {
			sw.BeginLayer(strconv.Itoa(np.Net))
			for _, p := range np.Paths {
				sw.Path(p, svg.LineStyle)
			}
			sw.EndLayer()
		}
		sw.EndLayer()
	}
	return sw.Close()
}

// TraceStyle gives the properties of newly written traces.
type TraceStyle struct {
	Width float64 // track width in mm
	Layer string
	Net   int
}

// DefaultTraceStyle is used for the zero fields of a [TraceStyle].
var DefaultTraceStyle = TraceStyle{
	Width: 0.25,
	Layer: "F.Cu",
	Net:   0,
}

func (s TraceStyle) withDefaults() TraceStyle {
	if s.Width <= 0 {
		s.Width = DefaultTraceStyle.Width
	}
	if s.Layer == "" {
		s.Layer = DefaultTraceStyle.Layer
	}
	return s
}

// ReplaceTraces copies the PCB file from r to w, replacing the traces on
// the layer and net given by style with segments along paths.
//
// The new segments are written where the first trace of the file was.
// If the file has no traces, they are written before the closing
// parenthesis at the end of the file.
func ReplaceTraces(w io.Writer, r io.Reader, paths []planar.Polyline, style TraceStyle) error {
	style = style.withDefaults()

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return err
	}

	insertAt := -1
	for i, line := range lines {
		if isTraceLine(line) {
			insertAt = i
			break
		}
	}
	if insertAt < 0 {
		insertAt = len(lines)
		for i := len(lines) - 1; i >= 0; i-- {
			if strings.TrimSpace(lines[i]) == ")" {
				insertAt = i
				break
			}
		}
	}

	out := bufio.NewWriter(w)
	removed, added := 0, 0
	for i, line := range lines {
		if i == insertAt {
			added = writeSegments(out, paths, style)
		}
		if isTraceLine(line) {
			t, err := ParseTrace(strings.TrimSpace(line))
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			if t.Layer == style.Layer && t.Net == style.Net {
				removed++
				continue
			}
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	if insertAt == len(lines) {
		added = writeSegments(out, paths, style)
	}
	geotk.Logger().Info("replaced traces",
		"layer", style.Layer, "net", style.Net, "removed", removed, "added", added)

	return out.Flush()
}

func writeSegments(out *bufio.Writer, paths []planar.Polyline, style TraceStyle) int {
	n := 0
	for _, p := range paths {
		// Each segment runs from a vertex back to its predecessor.
		for i := 1; i < len(p); i++ {
			a, b := p[i], p[i-1]
			fmt.Fprintf(out, "  (segment (start %.3f %.3f) (end %.3f %.3f) (width %s) (layer %s) (net %d))\n",
				a.X, a.Y, b.X, b.Y, numfmt.Float(style.Width), style.Layer, style.Net)
			n++
		}
	}
	return n
}

// WriteGrLines writes board outline records on the Edge.Cuts layer.
func WriteGrLines(w io.Writer, segs []segment.Segment) error {
	out := bufio.NewWriter(w)
	for _, s := range segs {
		fmt.Fprintf(out, "  (gr_line (start %s %s) (end %s %s) (layer Edge.Cuts) (width 0.2))\n",
			numfmt.Float(s.A.X), numfmt.Float(s.A.Y), numfmt.Float(s.B.X), numfmt.Float(s.B.Y))
	}
	geotk.Logger().Info("wrote board outline", "lines", len(segs))
	return out.Flush()
}
