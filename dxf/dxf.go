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

// Package dxf reads LINE entities from DXF drawings.
package dxf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/segment"
)

var (
	// ErrSyntax indicates that the file is not a sequence of group code
	// and value pairs.
	ErrSyntax = errors.New("DXF syntax error")

	// ErrMissingCode indicates a LINE entity without one of its
	// coordinates.
	ErrMissingCode = errors.New("DXF line is missing a coordinate")

	// ErrDuplicateCode indicates a LINE entity with a coordinate given
	// twice.
	ErrDuplicateCode = errors.New("DXF line has a duplicate coordinate")
)

// group codes of the LINE coordinates used here
var lineCodes = []int{10, 20, 11, 21}

// Options controls how lines are read.
type Options struct {
	// KeepY disables the inversion of the y axis.  DXF drawings have the
	// y axis pointing up.
	KeepY bool
}

// Read returns the LINE entities of a DXF file in file order.  Other
// entities are ignored, as are all group codes of a LINE other than the
// start and end coordinates.
func Read(r io.Reader, opt Options) ([]segment.Segment, error) {
	var res []segment.Segment
	var cur map[int]float64 // coordinates of the LINE being read, or nil
	curLine := 0

	finish := func() error {
		if cur == nil {
			return nil
		}
		for _, c := range lineCodes {
			if _, ok := cur[c]; !ok {
				return fmt.Errorf("%w: code %d in LINE at line %d", ErrMissingCode, c, curLine)
			}
		}
		s := segment.Segment{
			A: vec.Vec2{X: cur[10], Y: cur[20]},
			B: vec.Vec2{X: cur[11], Y: cur[21]},
		}
		if !opt.KeepY {
			s.A.Y = -s.A.Y
			s.B.Y = -s.B.Y
		}
		res = append(res, s)
		cur = nil
		return nil
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		codeText := strings.TrimSpace(sc.Text())
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: group code %q at line %d has no value", ErrSyntax, codeText, lineNo)
		}
		lineNo++
		value := strings.TrimSpace(sc.Text())

		code, n := strconv.ParseInt([]byte(codeText))
		if n == 0 || n != len(codeText) {
			return nil, fmt.Errorf("%w: invalid group code %q at line %d", ErrSyntax, codeText, lineNo-1)
		}

		if code == 0 {
			if err := finish(); err != nil {
				return nil, err
			}
			if value == "LINE" {
				cur = make(map[int]float64, 4)
				curLine = lineNo
			}
			continue
		}
		if cur == nil {
			continue
		}

		switch code {
		case 10, 20, 11, 21:
			if _, dup := cur[int(code)]; dup {
				return nil, fmt.Errorf("%w: code %d at line %d", ErrDuplicateCode, code, lineNo-1)
			}
			x, n := strconv.ParseFloat([]byte(value))
			if n == 0 || n != len(value) {
				return nil, fmt.Errorf("%w: invalid number %q at line %d", ErrSyntax, value, lineNo)
			}
			cur[int(code)] = x
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := finish(); err != nil {
		return nil, err
	}

	geotk.Logger().Info("read DXF lines", "count", len(res))
	return res, nil
}
