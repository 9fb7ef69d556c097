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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundary(t *testing.T) {
	cases := []struct {
		name  string
		faces [][]int
		want  [][]int
	}{
		{
			name:  "adjoining_quads",
			faces: [][]int{{1, 2, 3, 4}, {2, 5, 6, 3}},
			want:  [][]int{{1, 2, 5, 6, 3, 4, 1}},
		},
		{
			name:  "two_triangles",
			faces: [][]int{{1, 2, 3}, {1, 3, 4}},
			want:  [][]int{{1, 2, 3, 4, 1}},
		},
		{
			name:  "explicitly_closed_faces",
			faces: [][]int{{1, 2, 3, 1}, {1, 3, 4, 1}},
			want:  [][]int{{1, 2, 3, 4, 1}},
		},
		{
			name:  "disjoint",
			faces: [][]int{{1, 2, 3}, {4, 5, 6}},
			want:  [][]int{{1, 2, 3, 1}, {4, 5, 6, 4}},
		},
		{
			name:  "fan",
			faces: [][]int{{1, 2, 3}, {1, 3, 4}, {1, 4, 2}},
			want:  [][]int{{2, 3, 4, 2}},
		},
		{
			name:  "repeated_vertex",
			faces: [][]int{{1, 1, 2, 3}},
			want:  [][]int{{1, 2, 3, 1}},
		},
		{
			name:  "degenerate",
			faces: [][]int{{1, 2}, {}, {7}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Boundary(tc.faces))
		})
	}
}

func TestBoundaryEdgesCancelShared(t *testing.T) {
	edges := BoundaryEdges([][]int{{1, 2, 3, 4}, {2, 5, 6, 3}})
	for _, e := range edges {
		shared := e.From == 2 && e.To == 3 || e.From == 3 && e.To == 2
		assert.False(t, shared, "shared edge 2-3 must cancel")
	}
	assert.Equal(t, []Edge{
		{From: 1, To: 2, Count: 1},
		{From: 3, To: 4, Count: 1},
		{From: 4, To: 1, Count: 1},
		{From: 2, To: 5, Count: 1},
		{From: 5, To: 6, Count: 1},
		{From: 6, To: 3, Count: 1},
	}, edges)
}

func TestChainOpen(t *testing.T) {
	// a missing edge leaves an open path instead of failing
	got := Chain([]Edge{
		{From: 1, To: 2, Count: 1},
		{From: 2, To: 3, Count: 1},
		{From: 7, To: 8, Count: 2},
	})
	assert.Equal(t, [][]int{{1, 2, 3}, {7, 8}, {7, 8}}, got)
}
