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

package planar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestVectorHelpers(t *testing.T) {
	assert.Equal(t, 5.0, Dist(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 4, Y: 5}))
	assert.Equal(t, vec.Vec2{X: 0, Y: 1}, Normalize(vec.Vec2{X: 0, Y: 7}))
	assert.Equal(t, vec.Vec2{}, Normalize(vec.Vec2{}))
	assert.Equal(t, vec.Vec2{X: -2, Y: 1}, Perp(vec.Vec2{X: 1, Y: 2}))
	assert.InDelta(t, math.Pi/2, Angle(vec.Vec2{X: 0, Y: 3}), 1e-12)
	assert.Equal(t, vec.Vec2{X: 2, Y: 3}, Lerp(vec.Vec2{X: 0, Y: 2}, vec.Vec2{X: 4, Y: 4}, 0.5))
}

func TestSignedAngle(t *testing.T) {
	x := vec.Vec2{X: 1, Y: 0}
	y := vec.Vec2{X: 0, Y: 1}
	assert.InDelta(t, math.Pi/2, SignedAngle(x, y), 1e-12)
	assert.InDelta(t, -math.Pi/2, SignedAngle(y, x), 1e-12)
	assert.InDelta(t, 90, AngleBetween(y, x), 1e-12)
	assert.InDelta(t, 180, AngleBetween(x, vec.Vec2{X: -3, Y: 0}), 1e-12)
	assert.Zero(t, AngleBetween(x, vec.Vec2{}))
}

func TestPolar(t *testing.T) {
	p := Polar(vec.Vec2{X: 1, Y: 1}, 2, math.Pi)
	assert.InDelta(t, -1, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
}

func TestPolylineClosed(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 1, Y: 0}
	c := vec.Vec2{X: 1, Y: 1}

	cases := []struct {
		name string
		p    Polyline
		want bool
	}{
		{"empty", nil, false},
		{"back_and_forth", Polyline{a, b, a}, false},
		{"triangle", Polyline{a, b, c, a}, true},
		{"open", Polyline{a, b, c, b}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Closed())
		})
	}

	assert.Equal(t, Polyline{a, b, c}, Polyline{a, b, c, a}.Open())
	assert.Equal(t, Polyline{a, b, a}, Polyline{a, b, a}.Open())
}

func TestPolylineMapLength(t *testing.T) {
	p := Polyline{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 0}}
	assert.Equal(t, 9.0, p.Length())

	q := p.Map(func(v vec.Vec2) vec.Vec2 { return v.Mul(2) })
	assert.Equal(t, 18.0, q.Length())
	assert.Equal(t, vec.Vec2{X: 3, Y: 4}, p[1], "Map must not modify its receiver")
}

func TestBounds(t *testing.T) {
	var b Bounds
	assert.True(t, b.IsEmpty())
	assert.Equal(t, rect.Rect{}, b.Rect())

	b.Add(vec.Vec2{X: 2, Y: -1})
	b.AddPolyline(Polyline{{X: -3, Y: 4}, {X: 1, Y: 1}})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, rect.Rect{LLx: -3, LLy: -1, URx: 2, URy: 4}, b.Rect())
}
