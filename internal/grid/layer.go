// Package grid provides sparse hex layers keyed by position, with the
// spatial queries (pathfinding, field of view, field of move) that run over
// boolean "blocked" layers.
//
// A layer is a plain value container: readers may share one that is not being
// mutated, but all mutation must be serialized by the owner.
package grid

import (
	"fmt"
	"iter"
	"maps"

	"github.com/talgya/hexgrid/internal/hex"
)

// Layer maps hex positions to per-cell data.
// Only positions explicitly stored are members; a missing position is a
// different state from one holding the zero value.
type Layer[D any, T hex.Number] struct {
	cells map[hex.Position[T]]D
}

// New creates an empty layer.
func New[D any, T hex.Number]() *Layer[D, T] {
	return &Layer[D, T]{cells: make(map[hex.Position[T]]D)}
}

// NewFromRange creates a layer holding every position within distance
// rng-1 of center, each set to D's zero value. A range of 1 yields the
// center alone, a range of N yields 1+3N(N-1) cells, and 0 yields nothing.
func NewFromRange[D any, T hex.Number](rng int, center hex.Position[T]) *Layer[D, T] {
	l := New[D, T]()

	radius := rng - 1
	var zero D
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			s := -q - r
			// Cube coordinate constraint: |s| <= radius
			if s < -radius || s > radius {
				continue
			}
			pos := hex.New(hex.FromInt[T](q), hex.FromInt[T](r)).Add(center)
			l.cells[pos] = zero
		}
	}
	return l
}

// Get returns the data at pos and whether pos is a member.
func (l *Layer[D, T]) Get(pos hex.Position[T]) (D, bool) {
	d, ok := l.cells[pos]
	return d, ok
}

// Has reports whether pos is a member of the layer.
func (l *Layer[D, T]) Has(pos hex.Position[T]) bool {
	_, ok := l.cells[pos]
	return ok
}

// Mutate applies fn to the data stored at pos in place.
// It returns false, without calling fn, if pos is not a member.
func (l *Layer[D, T]) Mutate(pos hex.Position[T], fn func(d *D)) bool {
	d, ok := l.cells[pos]
	if !ok {
		return false
	}
	fn(&d)
	l.cells[pos] = d
	return true
}

// Set stores data at pos, inserting pos if needed.
// It returns the previous data and whether there was any.
func (l *Layer[D, T]) Set(pos hex.Position[T], data D) (D, bool) {
	if l.cells == nil {
		l.cells = make(map[hex.Position[T]]D)
	}
	prev, ok := l.cells[pos]
	l.cells[pos] = data
	return prev, ok
}

// Delete removes pos and returns the data it held, if it was a member.
func (l *Layer[D, T]) Delete(pos hex.Position[T]) (D, bool) {
	prev, ok := l.cells[pos]
	if ok {
		delete(l.cells, pos)
	}
	return prev, ok
}

// Positions returns the member positions in no particular order.
// The layer must not be mutated while the sequence is being ranged over.
func (l *Layer[D, T]) Positions() iter.Seq[hex.Position[T]] {
	return maps.Keys(l.cells)
}

// Data returns the stored values in no particular order.
func (l *Layer[D, T]) Data() iter.Seq[D] {
	return maps.Values(l.cells)
}

// All returns position/data pairs in no particular order.
func (l *Layer[D, T]) All() iter.Seq2[hex.Position[T], D] {
	return maps.All(l.cells)
}

// MutateAll applies fn to every cell's data in place.
func (l *Layer[D, T]) MutateAll(fn func(pos hex.Position[T], d *D)) {
	for pos, d := range l.cells {
		fn(pos, &d)
		l.cells[pos] = d
	}
}

// Len returns the number of member positions.
func (l *Layer[D, T]) Len() int {
	return len(l.cells)
}

// IsEmpty reports whether the layer has no members.
func (l *Layer[D, T]) IsEmpty() bool {
	return len(l.cells) == 0
}

// Clear removes every member.
func (l *Layer[D, T]) Clear() {
	clear(l.cells)
}

// Clone returns a shallow copy of the layer.
func (l *Layer[D, T]) Clone() *Layer[D, T] {
	return &Layer[D, T]{cells: maps.Clone(l.cells)}
}

// And returns the positions that are members of both layers.
func (l *Layer[D, T]) And(other *Layer[D, T]) hex.Set[T] {
	result := make(hex.Set[T])
	for pos := range l.cells {
		if other.Has(pos) {
			result.Add(pos)
		}
	}
	return result
}

// Or returns the positions that are members of either layer.
func (l *Layer[D, T]) Or(other *Layer[D, T]) hex.Set[T] {
	result := make(hex.Set[T], len(l.cells)+len(other.cells))
	for pos := range l.cells {
		result.Add(pos)
	}
	for pos := range other.cells {
		result.Add(pos)
	}
	return result
}

// Xor returns the positions that are members of exactly one of the layers.
func (l *Layer[D, T]) Xor(other *Layer[D, T]) hex.Set[T] {
	result := make(hex.Set[T])
	for pos := range l.cells {
		if !other.Has(pos) {
			result.Add(pos)
		}
	}
	for pos := range other.cells {
		if !l.Has(pos) {
			result.Add(pos)
		}
	}
	return result
}

// String returns a summary of the layer.
func (l *Layer[D, T]) String() string {
	return fmt.Sprintf("Layer(cells=%d)", len(l.cells))
}
