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

// Package planar provides the 2D primitives shared by the geotk packages:
// vector helpers on top of [vec.Vec2], polylines, and bounding boxes.
package planar

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Dist returns the Euclidean distance between a and b.
func Dist(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func Normalize(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Perp returns v rotated by 90 degrees counter-clockwise.
func Perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the direction of v in radians, in the range [-π, π].
func Angle(v vec.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// SignedAngle returns the angle in radians by which u must be rotated
// counter-clockwise to point in the direction of v, in the range [-π, π].
func SignedAngle(u, v vec.Vec2) float64 {
	cross := u.X*v.Y - u.Y*v.X
	return math.Atan2(cross, u.Dot(v))
}

// AngleBetween returns the unsigned angle between u and v in degrees.
// If either vector is zero, the direction is undefined and 0 is returned.
func AngleBetween(u, v vec.Vec2) float64 {
	if u == (vec.Vec2{}) || v == (vec.Vec2{}) {
		return 0
	}
	return math.Abs(SignedAngle(u, v)) * 180 / math.Pi
}

// Polar returns the point at distance r from c in direction a (radians).
func Polar(c vec.Vec2, r, a float64) vec.Vec2 {
	return vec.Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
