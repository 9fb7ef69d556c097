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

package segment

import (
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/planar"
)

// Segment is an undirected line segment.
type Segment struct {
	A, B vec.Vec2
}

// Join chains segments with shared endpoints into paths.
//
// Each path is grown at its end and, when the end has no more unused
// segments, at its start.  A path whose end returns to its start is
// finished as a closed polygon, with the first point repeated at the end.
// Every segment is used exactly once.  Endpoints are matched exactly.
func Join(segs []Segment) []planar.Polyline {
	nodes := newMultimap[vec.Vec2, int]()
	for i, s := range segs {
		nodes.Add(s.A, i)
		nodes.Add(s.B, i)
	}

	// follow consumes an unused segment at p and returns its other end.
	follow := func(p vec.Vec2) (vec.Vec2, bool) {
		i, ok := nodes.PopFront(p)
		if !ok {
			return vec.Vec2{}, false
		}
		s := segs[i]
		other := s.B
		if s.A != p {
			other = s.A
		}
		nodes.Remove(other, i)
		return other, true
	}

	var res []planar.Polyline
	var p planar.Polyline
	for nodes.Len() > 0 {
		if len(p) == 0 {
			first, _ := nodes.First()
			p = planar.Polyline{first}
		}

		start, end := p[0], p[len(p)-1]
		if len(p) > 1 && start == end {
			res = append(res, p)
			p = nil
			continue
		}

		if next, ok := follow(end); ok {
			p = append(p, next)
			continue
		}
		if prev, ok := follow(start); ok {
			p = slices.Insert(p, 0, prev)
			continue
		}

		res = append(res, p)
		p = nil
	}
	if len(p) > 0 {
		res = append(res, p)
	}
	return res
}
