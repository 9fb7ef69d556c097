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

package svgpath

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/flatten"
	"seehuhn.de/go/geotk/planar"
)

// Flatten parses the path data d and converts it into polylines.
// On error, the polylines completed before the error are returned
// together with the error.
func Flatten(d string, cfg flatten.Config) ([]planar.Polyline, error) {
	cmds, perr := Parse(d)
	res, err := Interpret(cmds, cfg)
	if err != nil {
		return res, err
	}
	return res, perr
}

// Interpret runs the commands and returns one polyline per subpath.
//
// The cursor starts at the origin.  Every command appends its absolute
// endpoint (and, for curves, the intermediate points of the flattened
// curve) to the current subpath.  A move-to starts a new subpath.  A
// close-path appends the first point of the subpath, unless the subpath
// already ends there, and the next drawing command starts a new subpath
// at that point.
//
// If a command fails, the points collected so far are returned together
// with the error, and the remaining commands are not run.
func Interpret(cmds []Command, cfg flatten.Config) ([]planar.Polyline, error) {
	ip := &interpreter{cfg: cfg}
	for i, cmd := range cmds {
		if err := ip.run(cmd); err != nil {
			ip.flush()
			return ip.out, fmt.Errorf("command %d (%c): %w", i, cmd.Letter(), err)
		}
	}
	ip.flush()
	return ip.out, nil
}

type interpreter struct {
	cfg     flatten.Config
	cursor  vec.Vec2
	current planar.Polyline
	out     []planar.Polyline
}

func (ip *interpreter) run(cmd Command) error {
	if n := cmd.Kind.Arity(); n < 0 || len(cmd.Args) != n {
		return fmt.Errorf("%w: %s with %d operands", ErrTruncated, cmd.Kind, len(cmd.Args))
	}

	a := cmd.Args
	abs := func(x, y float64) vec.Vec2 {
		if cmd.Relative {
			return vec.Vec2{X: ip.cursor.X + x, Y: ip.cursor.Y + y}
		}
		return vec.Vec2{X: x, Y: y}
	}

	switch cmd.Kind {
	case MoveTo:
		ip.flush()
		p := abs(a[0], a[1])
		ip.current = planar.Polyline{p}
		ip.cursor = p
	case LineTo:
		ip.emit(abs(a[0], a[1]))
	case HorizontalLineTo:
		x := a[0]
		if cmd.Relative {
			x += ip.cursor.X
		}
		ip.emit(vec.Vec2{X: x, Y: ip.cursor.Y})
	case VerticalLineTo:
		y := a[0]
		if cmd.Relative {
			y += ip.cursor.Y
		}
		ip.emit(vec.Vec2{X: ip.cursor.X, Y: y})
	case ClosePath:
		if len(ip.current) == 0 {
			return nil
		}
		// Z repeats the start point, unless the subpath already ends
		// there, so that a closed polyline carries it exactly twice.
		start := ip.current[0]
		if ip.current[len(ip.current)-1] != start {
			ip.current = append(ip.current, start)
		}
		ip.cursor = start
		ip.flush()
	case CubicTo:
		c1, c2, p := abs(a[0], a[1]), abs(a[2], a[3]), abs(a[4], a[5])
		ip.emit(flatten.Cubic(ip.cursor, c1, c2, p, ip.cfg)...)
	case QuadraticTo:
		c, p := abs(a[0], a[1]), abs(a[2], a[3])
		ip.emit(flatten.Quadratic(ip.cursor, c, p, ip.cfg)...)
	case ArcTo:
		p := abs(a[5], a[6])
		pts, err := flatten.Arc(ip.cursor, a[0], a[1], a[2], a[3] != 0, a[4] != 0, p, ip.cfg)
		if err != nil {
			return err
		}
		ip.emit(pts...)
	}
	return nil
}

// emit appends points to the current subpath, starting a new subpath at
// the cursor if needed.  The last point becomes the new cursor.
func (ip *interpreter) emit(pts ...vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	if len(ip.current) == 0 {
		ip.current = planar.Polyline{ip.cursor}
	}
	ip.current = append(ip.current, pts...)
	ip.cursor = pts[len(pts)-1]
}

func (ip *interpreter) flush() {
	if len(ip.current) > 0 {
		ip.out = append(ip.out, ip.current)
	}
	ip.current = nil
}
