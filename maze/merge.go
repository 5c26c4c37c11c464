// SPDX-License-Identifier: MIT
// Package: ringmaze/maze
//
// merge.go — border collection with O(1) predecessor/successor lookups.
//
// Contract:
//   • At most one open border of a given type starts (or ends) at any
//     coordinate, so a (type, coordinate) key identifies it uniquely.
//   • Closed borders are final and never indexed.
//   • list() returns live borders in emission order; a merged border counts
//     as emitted when the merge happens.

package maze

import "github.com/katalvlaran/ringmaze/circular"

type borderKey struct {
	typ BorderType
	at  circular.Coordinate
}

type borderSet struct {
	items   []Border
	live    []bool
	byStart map[borderKey]int
	byEnd   map[borderKey]int
	size    int
}

func newBorderSet(capacity int) *borderSet {
	return &borderSet{
		items:   make([]Border, 0, capacity),
		live:    make([]bool, 0, capacity),
		byStart: make(map[borderKey]int, capacity),
		byEnd:   make(map[borderKey]int, capacity),
	}
}

// merge adds the wall start→end, absorbing a same-type border ending at start
// and a same-type border starting at end. If both are the same border the
// result is closed.
func (s *borderSet) merge(start, end circular.Coordinate) Border {
	typ := Border{Start: start, End: end}.Type()
	if i, ok := s.byEnd[borderKey{typ, start}]; ok {
		start = s.items[i].Start
		s.remove(i)
	}
	if i, ok := s.byStart[borderKey{typ, end}]; ok {
		end = s.items[i].End
		s.remove(i)
	}
	b := Border{Start: start, End: end}
	s.push(b)
	return b
}

func (s *borderSet) push(b Border) {
	i := len(s.items)
	s.items = append(s.items, b)
	s.live = append(s.live, true)
	s.size++
	if b.IsClosed() {
		return
	}
	typ := b.Type()
	s.byStart[borderKey{typ, b.Start}] = i
	s.byEnd[borderKey{typ, b.End}] = i
}

func (s *borderSet) remove(i int) {
	b := s.items[i]
	typ := b.Type()
	delete(s.byStart, borderKey{typ, b.Start})
	delete(s.byEnd, borderKey{typ, b.End})
	s.live[i] = false
	s.size--
}

// count returns the number of live borders.
func (s *borderSet) count() int { return s.size }

func (s *borderSet) list() []Border {
	out := make([]Border, 0, s.size)
	for i, b := range s.items {
		if s.live[i] {
			out = append(out, b)
		}
	}
	return out
}
