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

// Package flatten approximates curves by polylines.
//
// Cubic and quadratic Bézier curves are subdivided recursively until every
// chord is short enough and the tangent direction changes little enough
// along each piece.  Circular arcs are sampled at equal angular steps.
//
// The limits are given as [Steps], in the units used on the command line,
// and converted into a [Config] before use.
package flatten

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/planar"
)

// maxDepth bounds the recursion when no minimum step is set.
// At a cusp the tangent flips direction on arbitrarily small intervals,
// so the angle criterion alone never terminates there.
const maxDepth = 16

// Steps describes the requested resolution of the output.
// A zero field means that the corresponding limit is not used.
type Steps struct {
	Min   float64 // chords at or below this length are never split
	Dist  float64 // target spacing between output points
	Angle float64 // target change of direction between segments, in degrees
}

// IsZero reports whether no limits are set.  In this case curves are
// replaced by straight lines between their endpoints.
func (s Steps) IsZero() bool {
	return s == Steps{}
}

// Config returns the effective limits for the given steps.
// Steps are specified as a grid spacing; the limits for the length and
// turning angle of individual segments are larger by a factor of √2.
func (s Steps) Config() Config {
	return Config{
		MinDist:  s.Min,
		MaxDist:  s.Dist * math.Sqrt2,
		MaxAngle: s.Angle * math.Sqrt2,
	}
}

// Config holds the limits used by the flattening functions.
// A zero field means that the corresponding limit is not used.
type Config struct {
	MinDist  float64
	MaxDist  float64
	MaxAngle float64 // in degrees
}

// Curve flattens the parametric curve pos(t), t ∈ [0, 1], with derivative
// tangent(t).
//
// The returned points exclude the start point pos(0) and always end with
// pos(1).  Without limits, only pos(1) is returned.
func Curve(pos, tangent func(t float64) vec.Vec2, cfg Config) []vec.Vec2 {
	f := &flattener{
		pos:     pos,
		tangent: tangent,
		cfg:     cfg,
	}
	f.subdivide(0, 1, pos(0), pos(1), 0, math.Inf(1))
	return f.out
}

type flattener struct {
	pos     func(float64) vec.Vec2
	tangent func(float64) vec.Vec2
	cfg     Config
	out     []vec.Vec2
}

// subdivide appends the points for the interval [ta, tb] to f.out.
// The point pa = pos(ta) has already been emitted by the caller.
// parentDev is the tangent deviation measured on the enclosing interval,
// or +Inf if it was not measured.
func (f *flattener) subdivide(ta, tb float64, pa, pb vec.Vec2, depth int, parentDev float64) {
	chord := planar.Dist(pa, pb)
	tm := (ta + tb) / 2

	split := false
	dev := math.Inf(1)
	pm := f.pos(tm)
	if depth < maxDepth && (f.cfg.MinDist <= 0 || chord > f.cfg.MinDist) {
		if f.cfg.MaxDist > 0 && chord > f.cfg.MaxDist {
			split = true
		}
		if !split && f.cfg.MaxAngle > 0 {
			dev = f.deviation(ta, tm, tb, pa, pm, pb)
			// Once the first two splits have corrected the initial change
			// of direction, intervals whose deviation grows are accepted.
			if dev > f.cfg.MaxAngle && !(depth >= 2 && dev > parentDev) {
				split = true
			}
		}
	}

	if !split {
		f.out = append(f.out, pb)
		return
	}

	f.subdivide(ta, tm, pa, pm, depth+1, dev)
	f.subdivide(tm, tb, pm, pb, depth+1, dev)
}

// deviation returns the larger of the angles (in degrees) between the
// tangent at the midpoint and the tangents at the two interval ends.
//
// Where the tangent vanishes, as at a cusp, the direction of the
// neighbouring chord is used instead: pm-pa at ta, pb-pa at tm and pb-pm
// at tb.
func (f *flattener) deviation(ta, tm, tb float64, pa, pm, pb vec.Vec2) float64 {
	mid := f.direction(tm, pb.Sub(pa))
	return max(
		planar.AngleBetween(mid, f.direction(ta, pm.Sub(pa))),
		planar.AngleBetween(mid, f.direction(tb, pb.Sub(pm))),
	)
}

func (f *flattener) direction(t float64, chord vec.Vec2) vec.Vec2 {
	if v := f.tangent(t); v != (vec.Vec2{}) {
		return v
	}
	return chord
}
