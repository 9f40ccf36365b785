package pair

import (
	"cmp"
	"slices"
)

// Set is a collection of pairs deduplicated by Key, so a pair and its
// mirror image occupy one slot. The zero value is not usable; call NewSet.
//
// Set is not safe for concurrent use.
type Set struct {
	items map[Key]NumberPair
}

// NewSet returns an empty Set, optionally seeded with ps.
func NewSet(ps ...NumberPair) Set {
	s := Set{items: make(map[Key]NumberPair, len(ps))}
	for _, p := range ps {
		s.Add(p)
	}

	return s
}

// Add inserts p. It reports whether p was new; an existing entry with the
// same Key is kept.
func (s Set) Add(p NumberPair) bool {
	k := p.Key()
	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = p

	return true
}

// AddAll inserts every pair of other.
func (s Set) AddAll(other Set) {
	for k, p := range other.items {
		if _, ok := s.items[k]; !ok {
			s.items[k] = p
		}
	}
}

// Contains reports whether p (or its mirror) is present.
func (s Set) Contains(p NumberPair) bool {
	_, ok := s.items[p.Key()]

	return ok
}

// Len returns the number of distinct pairs.
func (s Set) Len() int { return len(s.items) }

// Clear removes every pair, keeping the allocated storage.
func (s Set) Clear() { clear(s.items) }

// Each calls fn for every pair in unspecified order.
func (s Set) Each(fn func(NumberPair)) {
	for _, p := range s.items {
		fn(p)
	}
}

// Slice returns the pairs ordered by First ascending.
func (s Set) Slice() []NumberPair {
	out := s.values()
	slices.SortFunc(out, func(a, b NumberPair) int {
		return cmp.Compare(a.First(), b.First())
	})

	return out
}

// SortedByResult returns the pairs ordered by Result descending; equal
// results are ordered by First ascending so the output is deterministic.
func (s Set) SortedByResult() []NumberPair {
	out := s.values()
	slices.SortFunc(out, func(a, b NumberPair) int {
		if c := b.Compare(a); c != 0 {
			return c
		}

		return cmp.Compare(a.First(), b.First())
	})

	return out
}

func (s Set) values() []NumberPair {
	out := make([]NumberPair, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}

	return out
}
