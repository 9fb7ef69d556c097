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
	"slices"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/planar"
	"seehuhn.de/go/geotk/segment"
)

// Trace is a straight track segment on a copper layer.
type Trace struct {
	segment.Segment
	Width float64
	Layer string
	Net   int
}

// ParseTrace parses a "(segment ...)" record.
func ParseTrace(s string) (Trace, error) {
	e, err := ParseExpr(s)
	if err != nil {
		return Trace{}, err
	}
	if e.Head() != "segment" {
		return Trace{}, fmt.Errorf("%w: expected segment, got %q", ErrSyntax, e.Head())
	}

	var t Trace
	point := func(name string) (vec.Vec2, error) {
		sub, ok := e.Find(name)
		if !ok {
			return vec.Vec2{}, fmt.Errorf("%w: segment without %s", ErrSyntax, name)
		}
		x, err := sub.Float(1)
		if err != nil {
			return vec.Vec2{}, err
		}
		y, err := sub.Float(2)
		if err != nil {
			return vec.Vec2{}, err
		}
		return vec.Vec2{X: x, Y: y}, nil
	}
	if t.A, err = point("start"); err != nil {
		return Trace{}, err
	}
	if t.B, err = point("end"); err != nil {
		return Trace{}, err
	}
	if sub, ok := e.Find("width"); ok {
		if t.Width, err = sub.Float(1); err != nil {
			return Trace{}, err
		}
	}
	if sub, ok := e.Find("layer"); ok && len(sub.List) > 1 {
		t.Layer = sub.List[1].Atom
	}
	if sub, ok := e.Find("net"); ok {
		net, err := sub.Float(1)
		if err != nil {
			return Trace{}, err
		}
		t.Net = int(net)
	}
	return t, nil
}

// isTraceLine reports whether a line of a PCB file holds a track segment.
func isTraceLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "(segment ")
}

// ReadTraces returns all track segments of a PCB file, in file order.
// Each segment must be on a line of its own.
func ReadTraces(r io.Reader) ([]Trace, error) {
	var res []Trace
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if !isTraceLine(line) {
			continue
		}
		t, err := ParseTrace(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		res = append(res, t)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Filter selects traces.  Empty lists select everything.
type Filter struct {
	Layers []string
	Nets   []int
}

// Match reports whether t is selected.
func (f Filter) Match(t Trace) bool {
	if len(f.Layers) > 0 && !slices.Contains(f.Layers, t.Layer) {
		return false
	}
	if len(f.Nets) > 0 && !slices.Contains(f.Nets, t.Net) {
		return false
	}
	return true
}

// NetPaths holds the joined tracks of one net.
type NetPaths struct {
	Net   int
	Paths []planar.Polyline
}

// LayerPaths holds the nets of one layer.
type LayerPaths struct {
	Layer string
	Nets  []NetPaths
}

// Group selects traces, groups them by layer and then by net, and joins
// the segments of every group into paths.  Layers and nets appear in the
// order in which they are first seen.
func Group(traces []Trace, f Filter) []LayerPaths {
	type key struct {
		layer string
		net   int
	}
	var layers []string
	nets := make(map[string][]int)
	segs := make(map[key][]segment.Segment)
	for _, t := range traces {
		if !f.Match(t) {
			continue
		}
		if _, seen := nets[t.Layer]; !seen {
			layers = append(layers, t.Layer)
		}
		k := key{t.Layer, t.Net}
		if _, seen := segs[k]; !seen {
			nets[t.Layer] = append(nets[t.Layer], t.Net)
		}
		segs[k] = append(segs[k], t.Segment)
	}

	res := make([]LayerPaths, 0, len(layers))
	for _, layer := range layers {
		lp := LayerPaths{Layer: layer}
		for _, net := range nets[layer] {
			paths := segment.Join(segs[key{layer, net}])
			lp.Nets = append(lp.Nets, NetPaths{Net: net, Paths: paths})
			geotk.Logger().Debug("joined net", "layer", layer, "net", net, "paths", len(paths))
		}
		res = append(res, lp)
	}
	return res
}

// Extract reads the traces of a PCB file and joins them into paths.
func Extract(r io.Reader, f Filter) ([]LayerPaths, error) {
	traces, err := ReadTraces(r)
	if err != nil {
		return nil, err
	}
	return Group(traces, f), nil
}
