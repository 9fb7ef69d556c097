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

// Package obj reads and writes flat Wavefront OBJ meshes.
//
// Only the vertex positions and faces are used.  The z coordinate of
// vertices is ignored on input and written as zero.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/internal/numfmt"
	"seehuhn.de/go/geotk/planar"
	"seehuhn.de/go/geotk/segment"
)

// ErrSyntax indicates a malformed OBJ file.
var ErrSyntax = errors.New("OBJ syntax error")

// Mesh is a list of polygonal faces over a shared vertex list.
type Mesh struct {
	Vertices []vec.Vec2
	Faces    [][]int // 0-based indices into Vertices
}

// Write writes every polyline as one face.  Vertices are not shared
// between faces.
func Write(w io.Writer, paths []planar.Polyline) error {
	out := bufio.NewWriter(w)

	out.WriteString("g\n")
	nv := 0
	for _, p := range paths {
		for _, v := range p {
			fmt.Fprintf(out, "v %s %s 0\n", numfmt.Float(v.X), numfmt.Float(v.Y))
			nv++
		}
	}
	next := 1
	for _, p := range paths {
		out.WriteString("f")
		for range p {
			out.WriteByte(' ')
			out.WriteString(strconv.Itoa(next))
			next++
		}
		out.WriteByte('\n')
	}
	geotk.Logger().Info("wrote OBJ mesh", "vertices", nv, "faces", len(paths))

	return out.Flush()
}

// Read reads a mesh.  Lines ending in a backslash are joined with the
// following line, and "#" starts a comment.  Group, object, normal,
// texture and material statements are ignored.
func Read(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)

	lineNo := 0
	var pending string
	for sc.Scan() {
		lineNo++
		line := pending + sc.Text()
		pending = ""
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if trimmed := strings.TrimRight(line, " \t\r"); strings.HasSuffix(trimmed, "\\") {
			pending = trimmed[:len(trimmed)-1] + " "
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		var err error
		switch fields[0] {
		case "v":
			err = m.vertex(fields[1:])
		case "f":
			err = m.face(fields[1:])
		case "g", "o", "s", "vn", "vt", "vp", "usemtl", "mtllib":
			// not needed for flat geometry
		default:
			err = fmt.Errorf("unknown statement %q", fields[0])
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if pending != "" {
		return nil, fmt.Errorf("%w: line %d: continuation at end of file", ErrSyntax, lineNo)
	}

	geotk.Logger().Info("read OBJ mesh", "vertices", len(m.Vertices), "faces", len(m.Faces))
	return m, nil
}

func (m *Mesh) vertex(args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("vertex with %d coordinates", len(args))
	}
	var xyz [3]float64
	for i := range xyz {
		x, err := parseFloat(args[i])
		if err != nil {
			return err
		}
		xyz[i] = x
	}
	if xyz[2] != 0 {
		geotk.Logger().Debug("vertex not in the z=0 plane", "z", xyz[2])
	}
	m.Vertices = append(m.Vertices, vec.Vec2{X: xyz[0], Y: xyz[1]})
	return nil
}

func (m *Mesh) face(args []string) error {
	face := make([]int, 0, len(args))
	for _, a := range args {
		// v, v/vt, v//vn or v/vt/vn
		if i := strings.IndexByte(a, '/'); i >= 0 {
			a = a[:i]
		}
		idx, n := tdstrconv.ParseInt([]byte(a))
		if n == 0 || n != len(a) {
			return fmt.Errorf("invalid vertex index %q", a)
		}
		k := int(idx)
		switch {
		case k > 0:
			k--
		case k < 0:
			k += len(m.Vertices) // relative to the current end
		default:
			return errors.New("vertex index 0")
		}
		if k < 0 || k >= len(m.Vertices) {
			return fmt.Errorf("vertex index %d out of range", idx)
		}
		face = append(face, k)
	}
	m.Faces = append(m.Faces, face)
	return nil
}

func parseFloat(s string) (float64, error) {
	x, n := tdstrconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return x, nil
}

// Bounds returns the bounding box of all vertices.
func (m *Mesh) Bounds() rect.Rect {
	var b planar.Bounds
	for _, v := range m.Vertices {
		b.Add(v)
	}
	return b.Rect()
}

// Polygon returns the closed polyline through the vertices of a face.
func (m *Mesh) Polygon(face []int) planar.Polyline {
	if len(face) == 0 {
		return nil
	}
	res := make(planar.Polyline, 0, len(face)+1)
	for _, k := range face {
		res = append(res, m.Vertices[k])
	}
	return append(res, res[0])
}

// Polygons returns one closed polyline per face.
func (m *Mesh) Polygons() []planar.Polyline {
	res := make([]planar.Polyline, 0, len(m.Faces))
	for _, f := range m.Faces {
		if p := m.Polygon(f); p != nil {
			res = append(res, p)
		}
	}
	return res
}

// Outline returns the boundary of the mesh, with the edges shared by
// adjacent faces removed.
func (m *Mesh) Outline() []planar.Polyline {
	var res []planar.Polyline
	for _, loop := range segment.Boundary(m.Faces) {
		p := make(planar.Polyline, len(loop))
		for i, k := range loop {
			p[i] = m.Vertices[k]
		}
		res = append(res, p)
	}
	return res
}
