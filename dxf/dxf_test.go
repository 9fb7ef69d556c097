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

package dxf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/segment"
)

func drawing(entities ...string) string {
	return "  0\nSECTION\n  2\nENTITIES\n" + strings.Join(entities, "") + "  0\nENDSEC\n  0\nEOF\n"
}

func line(x0, y0, x1, y1 string) string {
	return "  0\nLINE\n  8\n0\n 10\n" + x0 + "\n 20\n" + y0 + "\n 30\n0.0\n 11\n" + x1 + "\n 21\n" + y1 + "\n 31\n0.0\n"
}

func TestRead(t *testing.T) {
	circle := "  0\nCIRCLE\n  8\n0\n 10\n5\n 20\n5\n 40\n1\n"
	src := drawing(line("0", "0", "10", "0"), circle, line("10.0", "0.0", "10", "-2.5"))

	segs, err := Read(strings.NewReader(src), Options{})
	require.NoError(t, err)
	want := []segment.Segment{
		{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 10, Y: 0}},
		{A: vec.Vec2{X: 10, Y: 0}, B: vec.Vec2{X: 10, Y: 2.5}},
	}
	assert.Equal(t, want, segs)

	segs, err = Read(strings.NewReader(src), Options{KeepY: true})
	require.NoError(t, err)
	assert.Equal(t, -2.5, segs[1].B.Y)
}

func TestReadCRLF(t *testing.T) {
	src := strings.ReplaceAll(drawing(line("1", "2", "3", "4")), "\n", "\r\n")
	segs, err := Read(strings.NewReader(src), Options{KeepY: true})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, vec.Vec2{X: 3, Y: 4}, segs[0].B)
}

func TestReadErrors(t *testing.T) {
	missing := "  0\nLINE\n 10\n0\n 20\n0\n 11\n1\n"
	_, err := Read(strings.NewReader(drawing(missing)), Options{})
	assert.ErrorIs(t, err, ErrMissingCode)

	dup := "  0\nLINE\n 10\n0\n 20\n0\n 11\n1\n 21\n1\n 10\n2\n"
	_, err = Read(strings.NewReader(drawing(dup)), Options{})
	assert.ErrorIs(t, err, ErrDuplicateCode)

	_, err = Read(strings.NewReader(drawing(line("0", "x", "1", "1"))), Options{})
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Read(strings.NewReader("  0\nSECTION\n  2"), Options{})
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Read(strings.NewReader("zero\nSECTION\n"), Options{})
	assert.ErrorIs(t, err, ErrSyntax)
}
