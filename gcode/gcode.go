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
	"bufio"
	"io"
	"math"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/internal/numfmt"
	"seehuhn.de/go/geotk/planar"
)

// Write writes G-code which mills along all paths.
//
// The material between ZMaterial and ZMill is removed in passes of at
// most ZLayerDepth.  In every pass, each path is entered from the safety
// height, followed at the pass depth, and left by returning to the safety
// height.
func Write(w io.Writer, paths []planar.Polyline, conf *Config) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	log := geotk.Logger()

	zMill := *conf.ZMill
	zSafety := *conf.ZSafety
	zMaterial := zMill
	if conf.ZMaterial != nil {
		zMaterial = *conf.ZMaterial
	}
	materialDepth := zMill - zMaterial
	dir := sign(materialDepth)
	materialDepth = math.Abs(materialDepth)
	layerStep := materialDepth
	if conf.ZLayerDepth != nil {
		layerStep = *conf.ZLayerDepth
	}

	out := bufio.NewWriter(w)
	cmd := func(code string, words ...word) {
		writeLine(out, code, words...)
	}
	log.Debug("milling setup", "material-depth", materialDepth, "layer-depth", layerStep)

	cmd("G90")
	if conf.Feedrate != nil {
		cmd("F" + numfmt.Fixed(*conf.Feedrate, precision))
	}
	cmd("G0", word{'Z', zSafety})

	passes := 0
	layerDepth := 0.0
	for {
		layerDepth += layerStep
		cut := min(materialDepth, layerDepth)
		target := zMaterial + dir*cut
		log.Info("milling pass", "pass", passes+1, "cut-depth", cut, "z", target)

		for _, p := range paths {
			if len(p) == 0 {
				continue
			}
			cmd("G0", word{'X', p[0].X}, word{'Y', p[0].Y})
			cmd("G1", word{'Z', target})
			for _, v := range p[1:] {
				cmd("G1", word{'X', v.X}, word{'Y', v.Y})
			}
			cmd("G1", word{'Z', zSafety})
		}
		passes++

		if layerDepth >= materialDepth {
			break
		}
	}
	log.Debug("wrote G-code", "paths", len(paths), "passes", passes)

	return out.Flush()
}

// precision is the number of decimal places written.  This hides the
// rounding noise of the accumulated pass depths.
const precision = 6

// word is a parameter of a G-code command, like "X1.5".
type word struct {
	letter byte
	value  float64
}

func writeLine(out *bufio.Writer, code string, words ...word) {
	out.WriteString(code)
	for _, w := range words {
		out.WriteByte(' ')
		out.WriteByte(w.letter)
		out.WriteString(numfmt.Fixed(w.value, precision))
	}
	out.WriteByte('\n')
}

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
