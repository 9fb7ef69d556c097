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

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geotk"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		verbose, quiet int
		want           slog.Level
	}{
		{0, 0, slog.LevelWarn},
		{1, 0, slog.LevelInfo},
		{2, 0, slog.LevelDebug},
		{5, 0, slog.LevelDebug},
		{0, 1, slog.LevelError},
		{0, 3, slog.LevelError},
		{1, 1, slog.LevelWarn},
	}
	for _, c := range cases {
		g := &globalFlags{verbose: c.verbose, quiet: c.quiet}
		assert.Equal(t, c.want, g.level(), "-v x%d -q x%d", c.verbose, c.quiet)
	}
}

// run executes the command line with the given arguments and returns
// standard output and standard error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { geotk.SetLogger(nil) })

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSVG2SCAD(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.svg")
	require.NoError(t, os.WriteFile(in, []byte(`<svg><path d="M 0,0 L 3,4"/></svg>`), 0o644))

	stdout, _, err := run(t, "", "svg2scad", in)
	require.NoError(t, err)
	assert.Equal(t, "polygon(points=[[0, 0], [3, 4]], paths=[[0, 1]]);\n", stdout)

	out := filepath.Join(dir, "out.scad")
	_, _, err = run(t, "", "svg2scad", in, out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(data))
}

func TestStdinAndSteps(t *testing.T) {
	svg := `<svg><path d="M 0,10 A 10,10 0 0 0 10,0"/></svg>`
	stdout, _, err := run(t, svg, "svg2obj", "-A", "45", "-")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(stdout, "\nv "))
}

func TestSVG2Gcode(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "machine.toml")
	require.NoError(t, os.WriteFile(conf, []byte("z-mill = -1\nz-safety = 2\nfeedrate = 100\n"), 0o644))

	stdout, _, err := run(t, `<svg><path d="M 0,0 L 1,0"/></svg>`, "svg2gcode", conf, "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "G90\nF100\nG0 Z2\n"), stdout)
}

func TestWarningsAndStrict(t *testing.T) {
	bad := `<svg><path id="p1" d="M 0,0 L 1"/></svg>`

	_, stderr, err := run(t, bad, "svg2scad", "-")
	require.NoError(t, err)
	assert.Contains(t, stderr, "invalid shape")

	_, stderr, err = run(t, bad, "-q", "svg2scad", "-")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = run(t, bad, "--strict", "svg2scad", "-")
	assert.Error(t, err)
}

func TestKicad2SVGFilter(t *testing.T) {
	pcb := "(kicad_pcb\n" +
		"  (segment (start 0 0) (end 1 0) (width 0.25) (layer F.Cu) (net 1))\n" +
		"  (segment (start 0 0) (end 0 1) (width 0.25) (layer B.Cu) (net 2))\n" +
		")\n"
	stdout, _, err := run(t, pcb, "kicad2svg", "-l", "B.Cu", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, `inkscape:label="B.Cu"`)
	assert.NotContains(t, stdout, `inkscape:label="F.Cu"`)
}

func TestMissingArgs(t *testing.T) {
	_, _, err := run(t, "", "svg2gcode", "only-one")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		stdout, _, err := run(t, "", flag)
		require.NoError(t, err)
		assert.Contains(t, stdout, geotk.Version, flag)
	}
}
