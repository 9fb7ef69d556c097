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

package affine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func assertPoint(t *testing.T, want, got vec.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestCompose(t *testing.T) {
	// translate after scale
	m := Compose(Translate(10, 0), Scale(2, 2))
	assertPoint(t, vec.Vec2{X: 12, Y: 2}, Apply(m, vec.Vec2{X: 1, Y: 1}))

	// scale after translate
	m = Compose(Scale(2, 2), Translate(10, 0))
	assertPoint(t, vec.Vec2{X: 22, Y: 2}, Apply(m, vec.Vec2{X: 1, Y: 1}))

	assert.Equal(t, Scale(3, 4), Compose(matrix.Identity, Scale(3, 4)))
	assert.Equal(t, Scale(3, 4), Compose(Scale(3, 4), matrix.Identity))
}

func TestRotate(t *testing.T) {
	assertPoint(t, vec.Vec2{X: 0, Y: 1}, Apply(Rotate(90), vec.Vec2{X: 1, Y: 0}))
	assertPoint(t, vec.Vec2{X: 1, Y: 2}, Apply(RotateAbout(90, 1, 1), vec.Vec2{X: 2, Y: 1}))
	assertPoint(t, vec.Vec2{X: 1, Y: 1}, Apply(RotateAbout(37, 1, 1), vec.Vec2{X: 1, Y: 1}))
}

func TestParse(t *testing.T) {
	p := vec.Vec2{X: 1, Y: 2}
	cases := []struct {
		in   string
		want vec.Vec2
	}{
		{"", vec.Vec2{X: 1, Y: 2}},
		{"translate(10)", vec.Vec2{X: 11, Y: 2}},
		{"translate(10, -5)", vec.Vec2{X: 11, Y: -3}},
		{"translate(10 -5)", vec.Vec2{X: 11, Y: -3}},
		{"scale(3)", vec.Vec2{X: 3, Y: 6}},
		{"scale(2,.5)", vec.Vec2{X: 2, Y: 1}},
		{"rotate(90)", vec.Vec2{X: -2, Y: 1}},
		{"rotate(180 1 1)", vec.Vec2{X: 1, Y: 0}},
		{"matrix(1,0,0,1,5,6)", vec.Vec2{X: 6, Y: 8}},
		{"matrix(0 1 -1 0 0 0)", vec.Vec2{X: -2, Y: 1}},
		{"translate(10,0) scale(2)", vec.Vec2{X: 12, Y: 4}},
		{"scale(2), translate(10,0)", vec.Vec2{X: 22, Y: 4}},
		{"  translate( 1e1 , 0 )  ", vec.Vec2{X: 11, Y: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			m, err := Parse(tc.in)
			require.NoError(t, err)
			assertPoint(t, tc.want, Apply(m, p))
		})
	}
}

func TestParseUnsupported(t *testing.T) {
	for _, in := range []string{
		"skewX(30)",
		"rotate(10, 1)",
		"matrix(1,2,3)",
		"translate(a)",
		"scale(2",
		"translate 10",
		"(1)",
	} {
		t.Run(in, func(t *testing.T) {
			m, err := Parse(in)
			assert.ErrorIs(t, err, ErrUnsupported)
			assert.Equal(t, matrix.Identity, m)
		})
	}
}
