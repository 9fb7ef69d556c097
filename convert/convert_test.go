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

package convert

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geotk/flatten"
	"seehuhn.de/go/geotk/gcode"
	"seehuhn.de/go/geotk/kicad"
	"seehuhn.de/go/geotk/obj"
	"seehuhn.de/go/geotk/preview"
	"seehuhn.de/go/geotk/svgpath"
)

const drawing = `<svg xmlns="http://www.w3.org/2000/svg">
  <path d="M 0,0 L 10,0 L 10,10"/>
</svg>`

func TestSVGToGcode(t *testing.T) {
	conf := &gcode.Config{ZMill: gcode.Float(-1), ZSafety: gcode.Float(2)}
	buf := &bytes.Buffer{}
	require.NoError(t, SVGToGcode(buf, strings.NewReader(drawing), conf, Options{}))

	want := `G90
G0 Z2
G0 X0 Y0
G1 Z-1
G1 X10 Y0
G1 X10 Y-10
G1 Z2
`
	assert.Equal(t, want, buf.String())
}

func TestSVGToOBJ(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, SVGToOBJ(buf, strings.NewReader(drawing), Options{}))
	assert.Equal(t, "g\nv 0 0 0\nv 10 0 0\nv 10 -10 0\nf 1 2 3\n", buf.String())

	m, err := obj.Read(buf)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 3)
}

func TestSVGToSCAD(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, SVGToSCAD(buf, strings.NewReader(drawing), Options{}))
	assert.Equal(t, "polygon(points=[[0, 0], [10, 0], [10, 10]], paths=[[0, 1, 2]]);\n", buf.String())
}

func TestSVGSteps(t *testing.T) {
	arc := `<svg><path d="M 0,10 A 10,10 0 0 0 10,0"/></svg>`
	buf := &bytes.Buffer{}
	opt := Options{Steps: flatten.Steps{Angle: 45}}
	require.NoError(t, SVGToSCAD(buf, strings.NewReader(arc), opt))
	assert.Equal(t, 2, strings.Count(buf.String(), "], ["), buf.String())
}

func TestStrict(t *testing.T) {
	bad := `<svg><path d="M 0,0 L 1,1 L 2"/></svg>`

	buf := &bytes.Buffer{}
	require.NoError(t, SVGToSCAD(buf, strings.NewReader(bad), Options{}))
	assert.Equal(t, "polygon(points=[[0, 0], [1, 1]], paths=[[0, 1]]);\n", buf.String())

	err := SVGToSCAD(&bytes.Buffer{}, strings.NewReader(bad), Options{Strict: true})
	assert.ErrorIs(t, err, svgpath.ErrTruncated)
}

const twoQuads = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 2 0 0
v 2 1 0
f 1 2 3 4
f 2 5 6 3
`

func TestOBJToSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, OBJToSVG(buf, strings.NewReader(twoQuads), OBJOptions{Unit: "mm", Outline: true}))
	out := buf.String()
	assert.Contains(t, out, `width="2mm"`)
	assert.Contains(t, out, `height="1mm"`)
	assert.Contains(t, out, `d="M 0 1 L 1 1 L 2 1 L 2 0 L 1 0 L 0 0 Z"`)
	assert.Equal(t, 1, strings.Count(out, "<path"))

	buf.Reset()
	require.NoError(t, OBJToSVG(buf, strings.NewReader(twoQuads), OBJOptions{}))
	assert.Equal(t, 2, strings.Count(buf.String(), "<path"))
}

const board = `(kicad_pcb (version 4)
  (segment (start 0 0) (end 1 0) (width 0.25) (layer F.Cu) (net 1))
  (segment (start 1 1) (end 1 0) (width 0.25) (layer F.Cu) (net 1))
)
`

func TestKicadToSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, KicadToSVG(buf, strings.NewReader(board), kicad.Filter{}))
	out := buf.String()
	assert.Contains(t, out, `inkscape:label="F.Cu"`)
	assert.Contains(t, out, `inkscape:label="1"`)
	assert.Contains(t, out, `d="M 0 0 L 1 0 L 1 1"`)

	buf.Reset()
	require.NoError(t, KicadToSVG(buf, strings.NewReader(board), kicad.Filter{Layers: []string{"B.Cu"}}))
	assert.NotContains(t, buf.String(), "<path")
}

func TestSVGToKicad(t *testing.T) {
	buf := &bytes.Buffer{}
	style := kicad.TraceStyle{Net: 1}
	require.NoError(t, SVGToKicad(buf, strings.NewReader(drawing), strings.NewReader(board), style, Options{}))

	want := `(kicad_pcb (version 4)
  (segment (start 10.000 0.000) (end 0.000 0.000) (width 0.25) (layer F.Cu) (net 1))
  (segment (start 10.000 10.000) (end 10.000 0.000) (width 0.25) (layer F.Cu) (net 1))
)
`
	assert.Equal(t, want, buf.String())
}

func TestDXFToKicad(t *testing.T) {
	src := "  0\nSECTION\n  2\nENTITIES\n" +
		"  0\nLINE\n  8\n0\n 10\n1\n 20\n2\n 11\n3\n 21\n4\n" +
		"  0\nENDSEC\n  0\nEOF\n"
	buf := &bytes.Buffer{}
	require.NoError(t, DXFToKicad(buf, strings.NewReader(src)))
	assert.Equal(t, "  (gr_line (start 1 -2) (end 3 -4) (layer Edge.Cuts) (width 0.2))\n", buf.String())
}

func TestSVGToPNG(t *testing.T) {
	buf := &bytes.Buffer{}
	popt := preview.Options{Width: 40, Height: 30}
	require.NoError(t, SVGToPNG(buf, strings.NewReader(drawing), popt, Options{}))
	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}
