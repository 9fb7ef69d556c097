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

// Package svg reads and writes the subset of SVG used by geotk.
//
// [Parse] builds a lightweight element tree from an SVG document, and
// [Walk] traverses the tree, accumulating transforms, layers and
// visibility, and turns paths and circles into polylines.  [Writer]
// produces SVG files with Inkscape layers.
package svg

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// ErrNoRoot is returned by [Parse] if the input contains no element.
var ErrNoRoot = errors.New("no root element")

// Node is an element of an SVG document.
type Node struct {
	Name     string // qualified name, for example "path" or "svg:g"
	Attrs    []Attr
	Children []*Node
}

// Attr is an attribute of an element.  The value has quotes removed and
// entities decoded.
type Attr struct {
	Name  string
	Value string
}

// Get returns the value of the named attribute.
func (n *Node) Get(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// LocalName returns the element name without namespace prefix.
func (n *Node) LocalName() string {
	if i := strings.IndexByte(n.Name, ':'); i >= 0 {
		return n.Name[i+1:]
	}
	return n.Name
}

// Parse reads an XML document and returns its root element.
// Text, comments and processing instructions are discarded.
func Parse(r io.Reader) (*Node, error) {
	l := xml.NewLexer(parse.NewInput(r))

	var root *Node
	var stack []*Node
	inPI := false
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return nil, fmt.Errorf("svg: %w", err)
			}
			if root == nil {
				return nil, ErrNoRoot
			}
			return root, nil

		case xml.StartTagPIToken:
			inPI = true
		case xml.StartTagClosePIToken:
			inPI = false

		case xml.StartTagToken:
			n := &Node{Name: string(l.Text())}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)

		case xml.AttributeToken:
			if inPI || len(stack) == 0 {
				continue
			}
			n := stack[len(stack)-1]
			n.Attrs = append(n.Attrs, Attr{
				Name:  string(l.Text()),
				Value: attrValue(l.AttrVal()),
			})

		case xml.StartTagCloseVoidToken:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.EndTagToken:
			name := string(l.Text())
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].Name == name {
					stack = stack[:i]
					break
				}
			}
		}
	}
}

func attrValue(b []byte) string {
	if len(b) >= 2 && (b[0] == '"' || b[0] == '\'') && b[len(b)-1] == b[0] {
		b = b[1 : len(b)-1]
	}
	return html.UnescapeString(string(b))
}
