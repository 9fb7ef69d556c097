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

package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/flatten"
)

// TestCase defines a single flattening test.
type TestCase struct {
	Name  string        // lowercase a-z, digits and _ only
	D     string        // SVG path data
	Steps flatten.Steps // resolution used for flattening
	Want  []vec.Vec2    // expected polyline, including the start point

	// Reference, if set, is the polyline the older Python geotk
	// flattener produced for the same input.  It differs from Want in
	// the choice of intervals to split and is kept for comparison only.
	Reference []vec.Vec2
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
