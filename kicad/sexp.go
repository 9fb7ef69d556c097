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

// Package kicad reads and writes the track and board outline records of
// KiCad PCB files.
package kicad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrSyntax indicates malformed KiCad data.
var ErrSyntax = errors.New("KiCad syntax error")

// Expr is an S-expression.  It is either an atom or a list.
type Expr struct {
	Atom   string
	List   []Expr
	IsList bool
}

// ParseExpr parses a single S-expression.  Double quoted atoms are
// supported, but escape sequences inside quotes are not.
func ParseExpr(s string) (Expr, error) {
	p := &exprParser{s: s}
	p.skipSpace()
	e, err := p.expr()
	if err != nil {
		return Expr{}, err
	}
	p.skipSpace()
	if p.pos < len(p.s) {
		return Expr{}, p.errorf("trailing data")
	}
	return e, nil
}

// Head returns the first atom of a list, or "" if there is none.
func (e Expr) Head() string {
	if !e.IsList || len(e.List) == 0 || e.List[0].IsList {
		return ""
	}
	return e.List[0].Atom
}

// Find returns the first sub-list whose head is name.
func (e Expr) Find(name string) (Expr, bool) {
	for _, c := range e.List {
		if c.Head() == name {
			return c, true
		}
	}
	return Expr{}, false
}

// Float returns the i-th element of a list as a number.
func (e Expr) Float(i int) (float64, error) {
	if i >= len(e.List) || e.List[i].IsList {
		return 0, fmt.Errorf("%w: (%s) has no number at position %d", ErrSyntax, e.Head(), i)
	}
	a := e.List[i].Atom
	x, n := strconv.ParseFloat([]byte(a))
	if n == 0 || n != len(a) {
		return 0, fmt.Errorf("%w: invalid number %q", ErrSyntax, a)
	}
	return x, nil
}

// String formats the expression on a single line.
func (e Expr) String() string {
	if !e.IsList {
		return e.Atom
	}
	parts := make([]string, len(e.List))
	for i, c := range e.List {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

type exprParser struct {
	s   string
	pos int
}

func (p *exprParser) expr() (Expr, error) {
	if p.pos >= len(p.s) {
		return Expr{}, p.errorf("unexpected end of input")
	}
	switch p.s[p.pos] {
	case '(':
		p.pos++
		e := Expr{IsList: true}
		for {
			p.skipSpace()
			if p.pos >= len(p.s) {
				return Expr{}, p.errorf("missing ')'")
			}
			if p.s[p.pos] == ')' {
				p.pos++
				return e, nil
			}
			c, err := p.expr()
			if err != nil {
				return Expr{}, err
			}
			e.List = append(e.List, c)
		}
	case ')':
		return Expr{}, p.errorf("unexpected ')'")
	case '"':
		end := strings.IndexByte(p.s[p.pos+1:], '"')
		if end < 0 {
			return Expr{}, p.errorf("unterminated string")
		}
		atom := p.s[p.pos+1 : p.pos+1+end]
		p.pos += end + 2
		return Expr{Atom: atom}, nil
	default:
		start := p.pos
		for p.pos < len(p.s) && !isDelim(p.s[p.pos]) {
			p.pos++
		}
		return Expr{Atom: p.s[start:p.pos]}, nil
	}
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.s) && isSpace(p.s[p.pos]) {
		p.pos++
	}
}

func (p *exprParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelim(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == '"'
}
