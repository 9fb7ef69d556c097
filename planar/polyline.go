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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polyline is an ordered sequence of points.
type Polyline []vec.Vec2

// Closed reports whether the polyline is a closed polygon.
// This is the case if it has more than three points and the first and
// last points are identical.
func (p Polyline) Closed() bool {
	return len(p) > 3 && p[0] == p[len(p)-1]
}

// Open returns the polyline without the repeated final point of a closed
// polygon.  Open polylines are returned unchanged.
func (p Polyline) Open() Polyline {
	if p.Closed() {
		return p[:len(p)-1]
	}
	return p
}

// Map returns a new polyline with f applied to every point.
func (p Polyline) Map(f func(vec.Vec2) vec.Vec2) Polyline {
	res := make(Polyline, len(p))
	for i, pt := range p {
		res[i] = f(pt)
	}
	return res
}

// Length returns the total length of all segments.
func (p Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(p); i++ {
		l += Dist(p[i-1], p[i])
	}
	return l
}

// Bounds accumulates the bounding box of a set of points.
// The zero value is an empty box.
type Bounds struct {
	r     rect.Rect
	valid bool
}

// Add extends the box to include v.
func (b *Bounds) Add(v vec.Vec2) {
	if !b.valid {
		b.r = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
		b.valid = true
		return
	}
	b.r.LLx = min(b.r.LLx, v.X)
	b.r.LLy = min(b.r.LLy, v.Y)
	b.r.URx = max(b.r.URx, v.X)
	b.r.URy = max(b.r.URy, v.Y)
}

// AddPolyline extends the box to include all points of p.
func (b *Bounds) AddPolyline(p Polyline) {
	for _, v := range p {
		b.Add(v)
	}
}

// IsEmpty reports whether no points have been added.
func (b *Bounds) IsEmpty() bool {
	return !b.valid
}

// Rect returns the accumulated bounding box.
// For an empty box, the zero rectangle is returned.
func (b *Bounds) Rect() rect.Rect {
	return b.r
}
