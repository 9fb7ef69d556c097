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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/affine"
	"seehuhn.de/go/geotk/flatten"
	"seehuhn.de/go/geotk/planar"
	"seehuhn.de/go/geotk/svgpath"
)

// Options controls how [Walk] converts a document.
type Options struct {
	Steps flatten.Steps

	// InvertY negates the y coordinate after all transforms are applied.
	InvertY bool

	// Strict makes the first invalid shape abort the walk.  Otherwise
	// invalid shapes are logged and whatever geometry was converted
	// before the error is kept.
	Strict bool
}

// Shape is one polyline extracted from a document.
type Shape struct {
	Layer  string // innermost enclosing layer, or ""
	ID     string // id of the source element, or ""
	Points planar.Polyline
}

// state is the context inherited from the ancestors of a node.
type state struct {
	ctm   matrix.Matrix
	layer string
}

type walker struct {
	opt Options
	cfg flatten.Config
	out []Shape
}

// Read parses an SVG document and converts its shapes.
func Read(r io.Reader, opt Options) ([]Shape, error) {
	root, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Walk(root, opt)
}

// Walk traverses the element tree rooted at root and returns the
// flattened shapes in document order.
func Walk(root *Node, opt Options) ([]Shape, error) {
	w := &walker{
		opt: opt,
		cfg: opt.Steps.Config(),
	}
	err := w.node(root, state{ctm: matrix.Identity})
	return w.out, err
}

// Polylines returns the points of all shapes.
func Polylines(shapes []Shape) []planar.Polyline {
	res := make([]planar.Polyline, len(shapes))
	for i, s := range shapes {
		res[i] = s.Points
	}
	return res
}

// Layers groups the polylines of shapes by layer name.  The layer names
// are returned in order of first appearance.
func Layers(shapes []Shape) ([]string, map[string][]planar.Polyline) {
	var names []string
	byLayer := make(map[string][]planar.Polyline)
	for _, s := range shapes {
		if _, seen := byLayer[s.Layer]; !seen {
			names = append(names, s.Layer)
		}
		byLayer[s.Layer] = append(byLayer[s.Layer], s.Points)
	}
	return names, byLayer
}

func (w *walker) node(n *Node, st state) error {
	log := geotk.Logger()

	if hidden(n) {
		log.Debug("skipping hidden element", "element", n.Name, "id", id(n))
		return nil
	}

	if t, ok := n.Get("transform"); ok {
		m, err := affine.Parse(t)
		if err != nil {
			log.Warn("ignoring transform", "element", n.Name, "id", id(n), "error", err)
		} else {
			st.ctm = affine.Compose(st.ctm, m)
		}
	}

	switch n.LocalName() {
	case "svg":
		return w.children(n, st)
	case "g":
		if mode, _ := n.Get("inkscape:groupmode"); mode == "layer" {
			label, ok := n.Get("inkscape:label")
			if !ok {
				label = id(n)
			}
			st.layer = label
		}
		return w.children(n, st)
	case "path":
		d, _ := n.Get("d")
		polys, err := svgpath.Flatten(d, w.cfg)
		w.add(n, st, polys)
		return w.check(n, err)
	case "circle":
		cx, ok1 := length(n, "cx", 0)
		cy, ok2 := length(n, "cy", 0)
		r, ok3 := length(n, "r", 0)
		if !ok1 || !ok2 || !ok3 {
			return w.check(n, fmt.Errorf("%w: circle geometry", svgpath.ErrBadNumber))
		}
		if r <= 0 {
			log.Debug("skipping empty circle", "id", id(n))
			return nil
		}
		polys, err := svgpath.Interpret(svgpath.Circle(cx, cy, r), w.cfg)
		w.add(n, st, polys)
		return w.check(n, err)
	default:
		log.Debug("skipping element", "element", n.Name, "id", id(n))
		return nil
	}
}

func (w *walker) children(n *Node, st state) error {
	for _, c := range n.Children {
		if err := w.node(c, st); err != nil {
			return err
		}
	}
	return nil
}

// check decides whether a shape error ends the walk.
func (w *walker) check(n *Node, err error) error {
	if err == nil {
		return nil
	}
	if w.opt.Strict {
		return fmt.Errorf("%s %q: %w", n.LocalName(), id(n), err)
	}
	geotk.Logger().Warn("invalid shape", "element", n.Name, "id", id(n), "error", err)
	return nil
}

func (w *walker) add(n *Node, st state, polys []planar.Polyline) {
	for _, p := range polys {
		if len(p) < 2 {
			continue
		}
		pts := p.Map(func(v vec.Vec2) vec.Vec2 {
			v = affine.Apply(st.ctm, v)
			if w.opt.InvertY {
				v.Y = -v.Y
			}
			return v
		})
		w.out = append(w.out, Shape{
			Layer:  st.layer,
			ID:     id(n),
			Points: pts,
		})
	}
}

func id(n *Node) string {
	s, _ := n.Get("id")
	return s
}
