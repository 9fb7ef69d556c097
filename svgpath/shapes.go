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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/flatten"
)

// Circle returns the commands for a circle with center (cx, cy) and
// radius r.  The circle starts and ends at (cx+r, cy) and is made of four
// quarter arcs.
func Circle(cx, cy, r float64) []Command {
	arc := func(x, y float64) Command {
		return Command{Kind: ArcTo, Args: []float64{r, r, 0, 0, 1, x, y}}
	}
	return []Command{
		{Kind: MoveTo, Args: []float64{cx + r, cy}},
		arc(cx, cy+r),
		arc(cx-r, cy),
		arc(cx, cy-r),
		arc(cx+r, cy),
	}
}

// ToPath converts commands into a [path.Data], keeping Bézier curves
// intact.  Arcs are flattened using cfg.
func ToPath(cmds []Command, cfg flatten.Config) (*path.Data, error) {
	res := &path.Data{}
	var cursor, start vec.Vec2
	open := false
	ensureOpen := func() {
		if !open {
			res = res.MoveTo(cursor)
			start = cursor
			open = true
		}
	}

	for _, cmd := range cmds {
		if n := cmd.Kind.Arity(); n < 0 || len(cmd.Args) != n {
			return nil, ErrTruncated
		}
		a := cmd.Args
		abs := func(x, y float64) vec.Vec2 {
			if cmd.Relative {
				return vec.Vec2{X: cursor.X + x, Y: cursor.Y + y}
			}
			return vec.Vec2{X: x, Y: y}
		}

		switch cmd.Kind {
		case MoveTo:
			cursor = abs(a[0], a[1])
			open = false
			ensureOpen()
		case LineTo:
			ensureOpen()
			cursor = abs(a[0], a[1])
			res = res.LineTo(cursor)
		case HorizontalLineTo:
			ensureOpen()
			if cmd.Relative {
				cursor.X += a[0]
			} else {
				cursor.X = a[0]
			}
			res = res.LineTo(cursor)
		case VerticalLineTo:
			ensureOpen()
			if cmd.Relative {
				cursor.Y += a[0]
			} else {
				cursor.Y = a[0]
			}
			res = res.LineTo(cursor)
		case ClosePath:
			if open {
				res = res.Close()
				cursor = start
				open = false
			}
		case CubicTo:
			ensureOpen()
			c1, c2, p := abs(a[0], a[1]), abs(a[2], a[3]), abs(a[4], a[5])
			res = res.CubeTo(c1, c2, p)
			cursor = p
		case QuadraticTo:
			ensureOpen()
			c, p := abs(a[0], a[1]), abs(a[2], a[3])
			res = res.QuadTo(c, p)
			cursor = p
		case ArcTo:
			ensureOpen()
			p := abs(a[5], a[6])
			pts, err := flatten.Arc(cursor, a[0], a[1], a[2], a[3] != 0, a[4] != 0, p, cfg)
			if err != nil {
				return nil, err
			}
			for _, q := range pts {
				res = res.LineTo(q)
			}
			cursor = p
		}
	}
	return res, nil
}
