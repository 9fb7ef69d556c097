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

package gcode

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/planar"
)

func square() []planar.Polyline {
	return []planar.Polyline{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		{},
	}
}

func TestWriteLayered(t *testing.T) {
	conf := &Config{
		ZMill:       Float(-2),
		ZSafety:     Float(5),
		Feedrate:    Float(300),
		ZLayerDepth: Float(1.5),
		ZMaterial:   Float(0),
	}
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, square(), conf))

	want := `G90
F300
G0 Z5
G0 X0 Y0
G1 Z-1.5
G1 X1 Y0
G1 X1 Y1
G1 Z5
G0 X0 Y0
G1 Z-2
G1 X1 Y0
G1 X1 Y1
G1 Z5
`
	assert.Equal(t, want, buf.String())
}

func TestWriteSinglePass(t *testing.T) {
	conf := &Config{ZMill: Float(-1), ZSafety: Float(2)}
	buf := &bytes.Buffer{}
	paths := []planar.Polyline{{vec.Vec2{X: 0.5, Y: -0.25}, vec.Vec2{X: 2, Y: 3}}}
	require.NoError(t, Write(buf, paths, conf))

	want := `G90
G0 Z2
G0 X0.5 Y-0.25
G1 Z-1
G1 X2 Y3
G1 Z2
`
	assert.Equal(t, want, buf.String())
}

func TestWriteRoundsPassDepth(t *testing.T) {
	conf := &Config{
		ZMill:       Float(0.3),
		ZSafety:     Float(1),
		ZLayerDepth: Float(0.1),
		ZMaterial:   Float(0),
	}
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, square()[:1], conf))

	var depths []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "G1 Z") && line != "G1 Z1" {
			depths = append(depths, line)
		}
	}
	assert.Equal(t, []string{"G1 Z0.1", "G1 Z0.2", "G1 Z0.3"}, depths)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		conf Config
		ok   bool
	}{
		{Config{ZMill: Float(0), ZSafety: Float(1)}, true},
		{Config{ZSafety: Float(1)}, false},
		{Config{ZMill: Float(0)}, false},
		{Config{ZMill: Float(0), ZSafety: Float(1), ZLayerDepth: Float(0)}, false},
	}
	for i, c := range cases {
		err := c.conf.Validate()
		if c.ok {
			assert.NoError(t, err, "case %d", i)
		} else {
			assert.ErrorIs(t, err, ErrConfig, "case %d", i)
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	inputs := map[string]string{
		".json": `{"z-mill": -1, "z-safety": 5, "feedrate": 200, "z-layer-depth": 0.5, "z-material": 0}`,
		".yaml": "z-mill: -1\nz-safety: 5\nfeedrate: 200\nz-layer-depth: 0.5\nz-material: 0\n",
		".toml": "z-mill = -1\nz-safety = 5\nfeedrate = 200\nz-layer-depth = 0.5\nz-material = 0\n",
	}
	for format, text := range inputs {
		t.Run(format, func(t *testing.T) {
			conf, err := DecodeConfig(strings.NewReader(text), format)
			require.NoError(t, err)
			assert.Equal(t, -1.0, *conf.ZMill)
			assert.Equal(t, 5.0, *conf.ZSafety)
			assert.Equal(t, 200.0, *conf.Feedrate)
			assert.Equal(t, 0.5, *conf.ZLayerDepth)
			assert.Equal(t, 0.0, *conf.ZMaterial)
		})
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("{}"), ".ini")
	assert.ErrorIs(t, err, ErrConfig)

	_, err = DecodeConfig(strings.NewReader("z-mill: [1"), ".yaml")
	assert.ErrorIs(t, err, ErrConfig)

	_, err = DecodeConfig(strings.NewReader(`{"z-mill": 1}`), ".json")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoadConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "machine.yml")
	require.NoError(t, os.WriteFile(fname, []byte("z-mill: -0.2\nz-safety: 3\n"), 0o644))

	conf, err := LoadConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, -0.2, *conf.ZMill)
	assert.Nil(t, conf.Feedrate)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
