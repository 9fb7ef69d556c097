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

// Command export writes the flattening test cases to JSON, for use by
// external reference implementations.
// Run from the geotk module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/geotk/testcases"
)

func main() {
	var out struct {
		Tolerance float64        `json:"tolerance"`
		TestCases []jsonTestCase `json:"testcases"`
	}
	out.Tolerance = testcases.Tolerance

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name  string      `json:"name"`
	D     string      `json:"d"`
	Steps jsonSteps   `json:"steps"`
	Want  [][]float64 `json:"want"`

	Reference [][]float64 `json:"reference,omitempty"`
}

type jsonSteps struct {
	Min   float64 `json:"min,omitempty"`
	Dist  float64 `json:"dist,omitempty"`
	Angle float64 `json:"angle,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	return jsonTestCase{
		Name: category + "_" + tc.Name,
		D:    tc.D,
		Steps: jsonSteps{
			Min:   tc.Steps.Min,
			Dist:  tc.Steps.Dist,
			Angle: tc.Steps.Angle,
		},
		Want:      pointsToJSON(tc.Want),
		Reference: pointsToJSON(tc.Reference),
	}
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, pt := range pts {
		res[i] = []float64{pt.X, pt.Y}
	}
	return res
}
