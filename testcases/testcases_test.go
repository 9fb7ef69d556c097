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

package testcases_test

import (
	"maps"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geotk/planar"
	"seehuhn.de/go/geotk/svgpath"
	"seehuhn.de/go/geotk/testcases"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			assert.Regexp(t, validName, tc.Name)
			key := category + "_" + tc.Name
			assert.False(t, seen[key], "duplicate test case %s", key)
			seen[key] = true
		}
	}
}

func TestFlatten(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				got, err := svgpath.Flatten(tc.D, tc.Steps.Config())
				require.NoError(t, err)
				require.Len(t, got, 1)
				require.Len(t, got[0], len(tc.Want), "%v", got[0])
				for i, want := range tc.Want {
					assert.LessOrEqual(t, planar.Dist(got[0][i], want), testcases.Tolerance,
						"point %d: got %v, want %v", i, got[0][i], want)
				}
			})
		}
	}
}

func TestReference(t *testing.T) {
	const refTolerance = 0.01 // older values were rounded to two places
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Reference == nil {
				continue
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				ref, want := tc.Reference, tc.Want
				assert.NotEqual(t, len(want), len(ref))
				assert.LessOrEqual(t, planar.Dist(ref[0], want[0]), refTolerance)
				assert.LessOrEqual(t, planar.Dist(ref[len(ref)-1], want[len(want)-1]), refTolerance)
			})
		}
	}
}
