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

	"github.com/tdewolff/parse/v2/strconv"
)

// Parse splits SVG path data into commands.
//
// A command letter applies to all operand groups which follow it.  As in
// SVG, extra coordinate pairs after a move-to are line-tos.  The arc flags
// may be written without separators ("a5 5 0 015 5").
//
// If the data is malformed, Parse returns the commands before the error
// together with a [*SyntaxError].
func Parse(d string) ([]Command, error) {
	s := &scanner{b: []byte(d)}
	var cmds []Command
	for {
		s.skipSeparators()
		if s.pos >= len(s.b) {
			return cmds, nil
		}

		c := s.b[s.pos]
		if !isLetter(c) {
			if isNumberStart(c) {
				return cmds, s.errorf(ErrBadNumber, "number %q without a command", s.rest())
			}
			return cmds, s.errorf(ErrUnknownCommand, "unexpected %q", c)
		}

		kind := Kind(c &^ 0x20)
		rel := c >= 'a'
		if kind.Arity() < 0 {
			return cmds, s.errorf(ErrUnknownCommand, "%q", c)
		}
		s.pos++

		if kind == ClosePath {
			cmds = append(cmds, Command{Kind: ClosePath, Relative: rel})
			continue
		}

		for first := true; ; first = false {
			s.skipSeparators()
			if !first && (s.pos >= len(s.b) || !isNumberStart(s.b[s.pos])) {
				break
			}
			args, err := s.group(kind)
			if err != nil {
				return cmds, err
			}
			k := kind
			if kind == MoveTo && !first {
				k = LineTo
			}
			cmds = append(cmds, Command{Kind: k, Relative: rel, Args: args})
		}
	}
}

type scanner struct {
	b   []byte
	pos int
}

// group reads one operand group for a command of the given kind.
func (s *scanner) group(kind Kind) ([]float64, error) {
	args := make([]float64, kind.Arity())
	for i := range args {
		s.skipSeparators()
		if s.pos >= len(s.b) || isLetter(s.b[s.pos]) {
			return nil, s.errorf(ErrTruncated, "%s needs %d operands, got %d",
				kind, len(args), i)
		}

		if kind == ArcTo && (i == 3 || i == 4) {
			switch s.b[s.pos] {
			case '0':
				args[i] = 0
			case '1':
				args[i] = 1
			default:
				return nil, s.errorf(ErrBadNumber, "invalid arc flag %q", s.b[s.pos])
			}
			s.pos++
			continue
		}

		x, n := strconv.ParseFloat(s.b[s.pos:])
		if n == 0 {
			return nil, s.errorf(ErrBadNumber, "%q", s.rest())
		}
		args[i] = x
		s.pos += n
	}
	return args, nil
}

// skipSeparators skips white space and at most one comma.
func (s *scanner) skipSeparators() {
	comma := false
	for s.pos < len(s.b) {
		switch c := s.b[s.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
		case c == ',' && !comma:
			comma = true
		default:
			return
		}
		s.pos++
	}
}

// rest returns a short excerpt of the input at the current position,
// for error messages.
func (s *scanner) rest() string {
	end := min(len(s.b), s.pos+10)
	return string(s.b[s.pos:end])
}

func (s *scanner) errorf(kind error, format string, args ...any) error {
	return &SyntaxError{
		Offset: s.pos,
		Err:    fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}
