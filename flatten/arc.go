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

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/planar"
)

// ErrArcRadius indicates an arc whose radius is smaller than half the
// distance between its endpoints.
var ErrArcRadius = errors.New("arc radius too small")

const (
	// radiusSlack is the relative amount by which the radius may fall
	// short of half the chord before an arc is rejected.
	radiusSlack = 1e-9

	// endpointTolerance is the largest distance between the last sampled
	// point and the arc endpoint for which the two are merged.
	endpointTolerance = 1e-6
)

// Arc flattens an SVG elliptical arc from p0 to p1.
//
// Only circular arcs are supported.  If rx and ry differ, the arc is
// replaced by a straight line to p1.  A zero radius also gives a straight
// line.  The rotation argument only matters for ellipses and is ignored.
//
// The returned points exclude p0 and end exactly at p1.
// If the radius is smaller than half the distance between p0 and p1, an
// error wrapping [ErrArcRadius] is returned.
func Arc(p0 vec.Vec2, rx, ry, rotation float64, large, sweep bool, p1 vec.Vec2, cfg Config) ([]vec.Vec2, error) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || p0 == p1 {
		return []vec.Vec2{p1}, nil
	}
	if rx != ry {
		geotk.Logger().Warn("elliptical arc replaced by a straight line",
			"rx", rx, "ry", ry, "rotation", rotation)
		return []vec.Vec2{p1}, nil
	}
	r := rx

	chord := p1.Sub(p0)
	h := chord.Length() / 2
	if r < h {
		if h-r > radiusSlack*max(1, h) {
			return nil, fmt.Errorf("%w: radius %g, half chord %g", ErrArcRadius, r, h)
		}
		r = h
	}

	// The center lies on the perpendicular bisector of the chord, on the
	// left of the direction p0→p1 iff exactly one of the flags is set.
	mid := planar.Lerp(p0, p1, 0.5)
	n := planar.Perp(planar.Normalize(chord))
	d := math.Sqrt(max(r*r-h*h, 0))
	if large == sweep {
		d = -d
	}
	c := mid.Add(n.Mul(d))

	a0 := planar.Angle(p0.Sub(c))
	delta := planar.Angle(p1.Sub(c)) - a0
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	const eps = 1e-9
	switch {
	case large && math.Abs(delta) < math.Pi-eps:
		delta -= math.Copysign(2*math.Pi, delta)
	case !large && math.Abs(delta) > math.Pi+eps:
		delta -= math.Copysign(2*math.Pi, delta)
	}

	count := arcSegments(math.Abs(delta), r, cfg)
	res := make([]vec.Vec2, 0, count+1)
	for i := 1; i <= count; i++ {
		a := a0 + delta*float64(i)/float64(count)
		res = append(res, planar.Polar(c, r, a))
	}

	last := res[len(res)-1]
	if planar.Dist(last, p1) <= endpointTolerance {
		res[len(res)-1] = p1
	} else {
		geotk.Logger().Warn("arc does not reach its endpoint",
			"last", last, "end", p1)
		res = append(res, p1)
	}
	return res, nil
}

// arcSegments returns the number of segments used for an arc of the given
// angle (in radians) and radius.
func arcSegments(angle, r float64, cfg Config) int {
	n := 1
	if cfg.MaxDist > 0 {
		n = max(n, int(math.Ceil(angle*r/cfg.MaxDist)))
	}
	if cfg.MaxAngle > 0 {
		n = max(n, int(math.Ceil(angle*180/math.Pi/cfg.MaxAngle)))
	}
	if cfg.MinDist > 0 {
		n = max(1, min(n, int(math.Ceil(angle*r/cfg.MinDist))))
	}
	return n
}
