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

package scad

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/planar"
)

func TestWritePolygon(t *testing.T) {
	paths := []planar.Polyline{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
		{},
		{{X: 2.5, Y: 1}, vec.Vec2{X: -1, Y: 1}},
	}
	buf := &bytes.Buffer{}
	require.NoError(t, WritePolygon(buf, paths))
	want := "polygon(points=[[0, 0], [10, 0], [0, 10], [2.5, 1], [-1, 1]], paths=[[0, 1, 2], [3, 4]]);\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePolygonEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WritePolygon(buf, nil))
	assert.Equal(t, "polygon(points=[], paths=[]);\n", buf.String())
}
