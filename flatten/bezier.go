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

package flatten

import "seehuhn.de/go/geom/vec"

// Cubic flattens the cubic Bézier curve with start point p0, control
// points p1 and p2, and endpoint p3.  The result excludes p0.
func Cubic(p0, p1, p2, p3 vec.Vec2, cfg Config) []vec.Vec2 {
	pos := func(t float64) vec.Vec2 {
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		return p0.Mul(omt * omt * omt).
			Add(p1.Mul(3 * omt * omt * t)).
			Add(p2.Mul(3 * omt * t * t)).
			Add(p3.Mul(t * t * t))
	}
	tangent := func(t float64) vec.Vec2 {
		// B'(t) = 3(1-t)²(P1-P0) + 6(1-t)t(P2-P1) + 3t²(P3-P2)
		omt := 1 - t
		return p1.Sub(p0).Mul(3 * omt * omt).
			Add(p2.Sub(p1).Mul(6 * omt * t)).
			Add(p3.Sub(p2).Mul(3 * t * t))
	}
	return Curve(pos, tangent, cfg)
}

// Quadratic flattens the quadratic Bézier curve with start point p0,
// control point p1 and endpoint p2.  The result excludes p0.
func Quadratic(p0, p1, p2 vec.Vec2, cfg Config) []vec.Vec2 {
	pos := func(t float64) vec.Vec2 {
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		return p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
	}
	tangent := func(t float64) vec.Vec2 {
		// B'(t) = 2(1-t)(P1-P0) + 2t(P2-P1)
		return p1.Sub(p0).Mul(2 * (1 - t)).Add(p2.Sub(p1).Mul(2 * t))
	}
	return Curve(pos, tangent, cfg)
}
