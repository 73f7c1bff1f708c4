package hex

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of positions.
type Set[T Number] map[Position[T]]struct{}

// NewSet creates a set holding the given positions.
func NewSet[T Number](positions ...Position[T]) Set[T] {
	s := make(Set[T], len(positions))
	for _, p := range positions {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p.
func (s Set[T]) Add(p Position[T]) {
	s[p] = struct{}{}
}

// Has reports whether p is in the set.
func (s Set[T]) Has(p Position[T]) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of positions in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Sorted returns the positions ordered by r, then q.
func (s Set[T]) Sorted() []Position[T] {
	out := make([]Position[T], 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	SortPositions(out)
	return out
}

// SortPositions orders positions by r, then q.
func SortPositions[T Number](ps []Position[T]) {
	slices.SortFunc(ps, func(a, b Position[T]) int {
		if c := cmp.Compare(a.R, b.R); c != 0 {
			return c
		}
		return cmp.Compare(a.Q, b.Q)
	})
}
