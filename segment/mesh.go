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

// Edge is a directed mesh edge which occurs Count times on the boundary.
type Edge struct {
	From, To int
	Count    int
}

type vertexPair struct {
	lo, hi int
}

// BoundaryEdges returns the edges of the outline of a mesh.
//
// Faces are cyclic lists of vertex indices.  For every edge of every face,
// a count on the unordered vertex pair is incremented if the edge runs
// from the lower to the higher index, and decremented otherwise.
// Consecutive repeats of a vertex are skipped.  Edges shared by two faces
// with opposite orientation cancel.  The remaining edges are returned in
// the order in which their vertex pairs were first seen, oriented by the
// sign of their count.
//
// Using the index order as a proxy for orientation is only correct if all
// faces of the mesh are wound consistently.
func BoundaryEdges(faces [][]int) []Edge {
	counts := make(map[vertexPair]int)
	var order []vertexPair
	add := func(from, to int) {
		pair := vertexPair{min(from, to), max(from, to)}
		if _, seen := counts[pair]; !seen {
			order = append(order, pair)
		}
		if to > from {
			counts[pair]++
		} else {
			counts[pair]--
		}
	}

	for _, face := range faces {
		if len(face) == 0 {
			continue
		}
		cursor := face[0]
		for _, v := range face[1:] {
			if v == cursor {
				continue
			}
			add(cursor, v)
			cursor = v
		}
		if cursor != face[0] {
			add(cursor, face[0])
		}
	}

	var res []Edge
	for _, pair := range order {
		switch c := counts[pair]; {
		case c > 0:
			res = append(res, Edge{From: pair.lo, To: pair.hi, Count: c})
		case c < 0:
			res = append(res, Edge{From: pair.hi, To: pair.lo, Count: -c})
		}
	}
	return res
}

// Boundary returns the outline polygons of a mesh given by its faces.
// See [BoundaryEdges] for how the outline edges are found.
//
// Closed polygons repeat their first vertex at the end.  If the mesh is
// not manifold, chaining stops where an edge has no successor and the
// result contains an open path.
func Boundary(faces [][]int) [][]int {
	return Chain(BoundaryEdges(faces))
}

// Chain links directed edges into paths.  Each path starts at the
// earliest unused edge start and follows successor edges until it returns
// to its start or no successor is left.
func Chain(edges []Edge) [][]int {
	succ := newMultimap[int, int]()
	for _, e := range edges {
		for range e.Count {
			succ.Add(e.From, e.To)
		}
	}

	var res [][]int
	var poly []int
	for succ.Len() > 0 {
		if len(poly) == 0 {
			first, _ := succ.First()
			next, _ := succ.PopFront(first)
			poly = []int{first, next}
		} else if poly[0] == poly[len(poly)-1] {
			res = append(res, poly)
			poly = nil
			continue
		}

		next, ok := succ.PopFront(poly[len(poly)-1])
		if !ok {
			res = append(res, poly)
			poly = nil
			continue
		}
		poly = append(poly, next)
	}
	if len(poly) > 0 {
		res = append(res, poly)
	}
	return res
}
