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

// Package svgpath interprets SVG path data.
//
// [Parse] splits a "d" attribute into typed commands, and [Interpret]
// runs the commands, turning them into polylines.  Curves and arcs are
// flattened using package [seehuhn.de/go/geotk/flatten].
//
// The supported commands are M, L, H, V, Z, C, Q and A, in both their
// absolute (upper case) and relative (lower case) forms.
package svgpath

import (
	"errors"
	"fmt"
)

// Kind identifies a path command.  The value is the upper case command
// letter.
type Kind byte

// These are the supported path commands.
const (
	MoveTo           Kind = 'M'
	LineTo           Kind = 'L'
	HorizontalLineTo Kind = 'H'
	VerticalLineTo   Kind = 'V'
	ClosePath        Kind = 'Z'
	CubicTo          Kind = 'C'
	QuadraticTo      Kind = 'Q'
	ArcTo            Kind = 'A'
)

// Arity returns the number of operands of one operand group.
// For unsupported kinds, -1 is returned.
func (k Kind) Arity() int {
	switch k {
	case MoveTo, LineTo:
		return 2
	case HorizontalLineTo, VerticalLineTo:
		return 1
	case ClosePath:
		return 0
	case CubicTo:
		return 6
	case QuadraticTo:
		return 4
	case ArcTo:
		return 7
	default:
		return -1
	}
}

func (k Kind) String() string {
	return string(rune(k))
}

// Command is a single path command with one group of operands.
// Repeated operand groups in the path data give one Command each.
type Command struct {
	Kind     Kind
	Relative bool
	Args     []float64
}

// Letter returns the command letter as it appears in path data.
func (c Command) Letter() byte {
	if c.Relative {
		return byte(c.Kind) + 'a' - 'A'
	}
	return byte(c.Kind)
}

// These errors are wrapped by [SyntaxError].
var (
	ErrUnknownCommand = errors.New("unknown path command")
	ErrBadNumber      = errors.New("invalid number")
	ErrTruncated      = errors.New("incomplete operand group")
)

// SyntaxError reports malformed path data.
type SyntaxError struct {
	Offset int // byte offset in the path data
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("path data, offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
