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

package affine

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/matrix"
)

// ErrUnsupported is returned by [Parse] for transform syntax which is
// malformed or not supported.
var ErrUnsupported = errors.New("unsupported transform")

// Parse parses the value of an SVG transform attribute.
//
// The supported functions are matrix(a,b,c,d,e,f), translate(x[,y]),
// scale(sx[,sy]) and rotate(θ[,cx,cy]).  A list of functions is composed
// from left to right, so that the rightmost function is applied to points
// first.  An empty string gives the identity.
//
// On error, the identity is returned together with an error wrapping
// [ErrUnsupported].
func Parse(s string) (matrix.Matrix, error) {
	b := []byte(s)
	m := matrix.Identity
	pos := skipSpace(b, 0)
	for pos < len(b) {
		start := pos
		for pos < len(b) && isNameByte(b[pos]) {
			pos++
		}
		name := string(b[start:pos])
		if name == "" {
			return matrix.Identity, fmt.Errorf("%w: unexpected %q at offset %d", ErrUnsupported, b[pos], pos)
		}

		pos = skipSpace(b, pos)
		if pos >= len(b) || b[pos] != '(' {
			return matrix.Identity, fmt.Errorf("%w: missing '(' after %q", ErrUnsupported, name)
		}
		args, next, err := parseArgs(b, pos+1)
		if err != nil {
			return matrix.Identity, fmt.Errorf("%s: %w", name, err)
		}
		pos = next

		f, err := function(name, args)
		if err != nil {
			return matrix.Identity, err
		}
		m = Compose(m, f)

		pos = skipSpace(b, pos)
		if pos < len(b) && b[pos] == ',' {
			pos = skipSpace(b, pos+1)
		}
	}
	return m, nil
}

func function(name string, args []float64) (matrix.Matrix, error) {
	n := len(args)
	switch {
	case name == "matrix" && n == 6:
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
	case name == "translate" && n == 1:
		return Translate(args[0], 0), nil
	case name == "translate" && n == 2:
		return Translate(args[0], args[1]), nil
	case name == "scale" && n == 1:
		return Scale(args[0], args[0]), nil
	case name == "scale" && n == 2:
		return Scale(args[0], args[1]), nil
	case name == "rotate" && n == 1:
		return Rotate(args[0]), nil
	case name == "rotate" && n == 3:
		return RotateAbout(args[0], args[1], args[2]), nil
	}
	return matrix.Identity, fmt.Errorf("%w: %s with %d arguments", ErrUnsupported, name, n)
}

// parseArgs reads a comma or space separated number list up to the
// closing parenthesis.  It returns the offset after the parenthesis.
func parseArgs(b []byte, pos int) ([]float64, int, error) {
	var args []float64
	for {
		pos = skipSpace(b, pos)
		if pos >= len(b) {
			return nil, pos, fmt.Errorf("%w: missing ')'", ErrUnsupported)
		}
		if b[pos] == ')' {
			return args, pos + 1, nil
		}
		if len(args) > 0 && b[pos] == ',' {
			pos = skipSpace(b, pos+1)
		}
		x, n := strconv.ParseFloat(b[pos:])
		if n == 0 {
			return nil, pos, fmt.Errorf("%w: bad number at offset %d", ErrUnsupported, pos)
		}
		args = append(args, x)
		pos += n
	}
}

func skipSpace(b []byte, pos int) int {
	for pos < len(b) && isSpace(b[pos]) {
		pos++
	}
	return pos
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
