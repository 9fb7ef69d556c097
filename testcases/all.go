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

// Package testcases holds reference paths together with the polylines
// they flatten to.
//
// The expected points follow from the subdivision rules of package
// flatten and are given to four decimal places.  Some cases also record
// the output of the older Python geotk flattener, which uses a different
// split criterion.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/flatten"
)

// Tolerance is the maximal distance between an expected and a computed
// point.
const Tolerance = 1e-3

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"arc":       arcCases,
	"cubic":     cubicCases,
	"quadratic": quadraticCases,
	"circle":    circleCases,
}

const quarterArc = "M 0 10 A 10 10 0 0 0 10 0"

var arcCases = []TestCase{
	{
		Name: "direct",
		D:    quarterArc,
		Want: []vec.Vec2{pt(0, 10), pt(10, 0)},
	},
	{
		Name:  "dist5",
		D:     quarterArc,
		Steps: flatten.Steps{Dist: 5},
		Want:  []vec.Vec2{pt(0, 10), pt(5, 8.6603), pt(8.6603, 5), pt(10, 0)},
	},
	{
		Name:  "angle45",
		D:     quarterArc,
		Steps: flatten.Steps{Angle: 45},
		Want:  []vec.Vec2{pt(0, 10), pt(7.0711, 7.0711), pt(10, 0)},
	},
	{
		Name:  "angle30",
		D:     quarterArc,
		Steps: flatten.Steps{Angle: 30},
		Want:  []vec.Vec2{pt(0, 10), pt(5, 8.6603), pt(8.6603, 5), pt(10, 0)},
	},
	{
		Name:  "sweep",
		D:     "M 0 10 A 10 10 0 0 1 10 0",
		Steps: flatten.Steps{Dist: 5},
		Want:  []vec.Vec2{pt(0, 10), pt(1.3397, 5), pt(5, 1.3397), pt(10, 0)},
	},
	{
		Name:  "large",
		D:     "M 0 10 A 10 10 0 1 0 10 0",
		Steps: flatten.Steps{Angle: 60},
		Want: []vec.Vec2{
			pt(0, 10), pt(6.1732, 19.2388), pt(17.0711, 17.0711),
			pt(19.2388, 6.1732), pt(10, 0),
		},
	},
	{
		Name:  "large_sweep",
		D:     "M 0 10 A 10 10 0 1 1 10 0",
		Steps: flatten.Steps{Angle: 60},
		Want: []vec.Vec2{
			pt(0, 10), pt(-9.2388, 3.8268), pt(-7.0711, -7.0711),
			pt(3.8268, -9.2388), pt(10, 0),
		},
	},
	{
		Name:  "min",
		D:     quarterArc,
		Steps: flatten.Steps{Dist: 1, Min: 5},
		Want: []vec.Vec2{
			pt(0, 10), pt(3.8268, 9.2388), pt(7.0711, 7.0711),
			pt(9.2388, 3.8268), pt(10, 0),
		},
	},
}

const wave = "M 0 5 C 5 10 10 0 15 5"

var cubicCases = []TestCase{
	{
		Name: "direct",
		D:    wave,
		Want: []vec.Vec2{pt(0, 5), pt(15, 5)},
	},
	{
		Name:  "dist3",
		D:     wave,
		Steps: flatten.Steps{Dist: 3},
		Want: []vec.Vec2{
			pt(0, 5), pt(3.75, 6.4062), pt(7.5, 5), pt(11.25, 3.5938), pt(15, 5),
		},
	},
	{
		Name:  "angle20",
		D:     wave,
		Steps: flatten.Steps{Angle: 20},
		Want: []vec.Vec2{
			pt(0, 5), pt(3.75, 6.4062), pt(7.5, 5), pt(11.25, 3.5938), pt(15, 5),
		},
		Reference: []vec.Vec2{
			pt(0, 5), pt(1.88, 6.23), pt(3.75, 6.41), pt(7.5, 5), pt(11.25, 3.59),
			pt(13.12, 3.77), pt(15, 5),
		},
	},
	{
		Name:  "angle10",
		D:     wave,
		Steps: flatten.Steps{Angle: 10},
		Want: []vec.Vec2{
			pt(0, 5), pt(1.875, 6.2305), pt(3.75, 6.4062), pt(5.625, 5.8789),
			pt(7.5, 5), pt(9.375, 4.1211), pt(11.25, 3.5938), pt(13.125, 3.7695),
			pt(15, 5),
		},
	},
	{
		Name:  "min3",
		D:     wave,
		Steps: flatten.Steps{Dist: 1, Min: 3},
		Want: []vec.Vec2{
			pt(0, 5), pt(1.875, 6.2305), pt(3.75, 6.4062), pt(5.625, 5.8789),
			pt(7.5, 5), pt(9.375, 4.1211), pt(11.25, 3.5938), pt(13.125, 3.7695),
			pt(15, 5),
		},
	},
	{
		Name:  "chain",
		D:     wave + " C 20 10 25 0 30 5",
		Steps: flatten.Steps{Dist: 3},
		Want: []vec.Vec2{
			pt(0, 5), pt(3.75, 6.4062), pt(7.5, 5), pt(11.25, 3.5938), pt(15, 5),
			pt(18.75, 6.4062), pt(22.5, 5), pt(26.25, 3.5938), pt(30, 5),
		},
	},
}

var quadraticCases = []TestCase{
	{
		Name:  "dist3",
		D:     "M 0 10 Q 5 15 10 5",
		Steps: flatten.Steps{Dist: 3},
		Want: []vec.Vec2{
			pt(0, 10), pt(2.5, 11.5625), pt(5, 11.25), pt(7.5, 9.0625),
			pt(8.75, 7.2656), pt(10, 5),
		},
	},
	{
		Name:  "chain",
		D:     "M 0 10 Q 5 15 10 5 q 5 15 10 -5",
		Steps: flatten.Steps{Angle: 15},
		Want: []vec.Vec2{
			pt(0, 10), pt(2.5, 11.5625), pt(5, 11.25), pt(7.5, 9.0625),
			pt(10, 5), pt(12.5, 10.3125), pt(13.75, 11.3281), pt(14.375, 11.4258),
			pt(15, 11.25), pt(16.25, 10.0781), pt(17.5, 7.8125), pt(20, 0),
		},
		Reference: []vec.Vec2{
			pt(0, 10), pt(1.25, 11.02), pt(2.5, 11.56), pt(3.75, 11.64),
			pt(4.38, 11.5), pt(5, 11.25), pt(6.25, 10.39), pt(7.5, 9.06),
			pt(10, 5), pt(11.25, 8.2), pt(11.88, 9.39), pt(12.5, 10.31),
			pt(12.81, 10.67), pt(13.12, 10.96), pt(13.44, 11.18), pt(13.75, 11.33),
			pt(14.06, 11.41), pt(14.38, 11.43), pt(15, 11.25), pt(17.5, 7.81),
			pt(20, 0),
		},
	},
}

var circleCases = []TestCase{
	{
		Name: "angle45",
		D: "M 5 0 A 5 5 0 0 1 0 5 A 5 5 0 0 1 -5 0" +
			" A 5 5 0 0 1 0 -5 A 5 5 0 0 1 5 0",
		Steps: flatten.Steps{Angle: 45},
		Want: []vec.Vec2{
			pt(5, 0), pt(3.5355, 3.5355), pt(0, 5), pt(-3.5355, 3.5355),
			pt(-5, 0), pt(-3.5355, -3.5355), pt(0, -5), pt(3.5355, -3.5355),
			pt(5, 0),
		},
	},
}
