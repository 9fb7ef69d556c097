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

// Package affine parses SVG transform attributes and composes the
// resulting affine maps.
//
// Transforms are represented as [matrix.Matrix] values {a, b, c, d, e, f},
// mapping (x, y) to (a*x + c*y + e, b*x + d*y + f).  This is the same
// layout as the SVG "matrix(a,b,c,d,e,f)" syntax, and corresponds to the
// 3×3 homogeneous matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
package affine

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Compose returns the transform which first applies child and then parent.
// As a product of homogeneous matrices this is parent·child.
func Compose(parent, child matrix.Matrix) matrix.Matrix {
	p, c := parent, child
	return matrix.Matrix{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// Apply maps the point v through m.
func Apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// Translate returns the transform which shifts points by (tx, ty).
func Translate(tx, ty float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns the transform which scales x by sx and y by sy.
func Scale(sx, sy float64) matrix.Matrix {
	return matrix.Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns the transform which rotates by deg degrees about the
// origin.  In the y-down coordinate system of SVG, positive angles turn
// clockwise on screen.
func Rotate(deg float64) matrix.Matrix {
	s, c := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{c, s, -s, c, 0, 0}
}

// RotateAbout returns the transform which rotates by deg degrees about
// the pivot (cx, cy).
func RotateAbout(deg, cx, cy float64) matrix.Matrix {
	m := Compose(Translate(cx, cy), Rotate(deg))
	return Compose(m, Translate(-cx, -cy))
}
