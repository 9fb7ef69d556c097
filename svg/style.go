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

package svg

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/tdewolff/parse/v2/strconv"

	"seehuhn.de/go/geotk"
)

// properties returns the presentation properties of n, with declarations
// from the style attribute taking precedence over attributes.
func properties(n *Node) map[string]string {
	props := make(map[string]string)
	for _, name := range []string{"display", "visibility"} {
		if v, ok := n.Get(name); ok {
			props[name] = strings.TrimSpace(v)
		}
	}

	style, ok := n.Get("style")
	if !ok || strings.TrimSpace(style) == "" {
		return props
	}
	// declarations are only complete once terminated
	if !strings.HasSuffix(strings.TrimSpace(style), ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		geotk.Logger().Warn("invalid style attribute", "style", style, "error", err)
	}
	for _, d := range decls {
		if d.Property != "" {
			props[strings.ToLower(d.Property)] = d.Value
		}
	}
	return props
}

// hidden reports whether n and its descendants are not rendered.
func hidden(n *Node) bool {
	props := properties(n)
	if props["display"] == "none" {
		return true
	}
	switch props["visibility"] {
	case "hidden", "collapse":
		return true
	}
	return false
}

// length parses a numeric attribute.  Units are ignored.
// Missing attributes give the default value def.
func length(n *Node, name string, def float64) (float64, bool) {
	s, ok := n.Get(name)
	if !ok {
		return def, true
	}
	b := []byte(strings.TrimSpace(s))
	x, k := strconv.ParseFloat(b)
	if k == 0 {
		return def, false
	}
	return x, true
}
