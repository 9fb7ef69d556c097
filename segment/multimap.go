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

// Package segment rebuilds paths from unordered collections of line
// segments.
//
// [Join] chains undirected segments, as found in the trace lists of PCB
// files, into maximal paths.  [Boundary] extracts the outline of a mesh
// from its faces by cancelling the edges shared between adjacent faces and
// chaining the remaining directed edges into polygons.
//
// Whenever a choice has to be made, the earliest inserted candidate is
// taken, so that the output only depends on the order of the input.
package segment

// multimap maps keys to lists of values, and remembers the order in which
// keys were inserted.  A key is removed as soon as its list becomes empty.
type multimap[K comparable, V comparable] struct {
	vals  map[K][]V
	pos   map[K]int // index of the live entry in order
	order []K
	head  int // entries before head are all dead
}

func newMultimap[K comparable, V comparable]() *multimap[K, V] {
	return &multimap[K, V]{
		vals: make(map[K][]V),
		pos:  make(map[K]int),
	}
}

// Len returns the number of keys.
func (m *multimap[K, V]) Len() int {
	return len(m.vals)
}

// Add appends v to the list for k.
func (m *multimap[K, V]) Add(k K, v V) {
	if _, ok := m.vals[k]; !ok {
		m.pos[k] = len(m.order)
		m.order = append(m.order, k)
	}
	m.vals[k] = append(m.vals[k], v)
}

// First returns the earliest inserted key which is still present.
func (m *multimap[K, V]) First() (K, bool) {
	for m.head < len(m.order) {
		k := m.order[m.head]
		if _, live := m.vals[k]; live && m.pos[k] == m.head {
			return k, true
		}
		m.head++
	}
	var zero K
	return zero, false
}

// PopFront removes and returns the first value for k.
func (m *multimap[K, V]) PopFront(k K) (V, bool) {
	list, ok := m.vals[k]
	if !ok {
		var zero V
		return zero, false
	}
	v := list[0]
	m.set(k, list[1:])
	return v, true
}

// Remove removes the first occurrence of v from the list for k.
func (m *multimap[K, V]) Remove(k K, v V) bool {
	list := m.vals[k]
	for i, w := range list {
		if w == v {
			m.set(k, append(list[:i:i], list[i+1:]...))
			return true
		}
	}
	return false
}

func (m *multimap[K, V]) set(k K, list []V) {
	if len(list) == 0 {
		delete(m.vals, k)
		delete(m.pos, k)
		return
	}
	m.vals[k] = list
}
