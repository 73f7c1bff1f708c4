package hex

import (
	"iter"
	"slices"
)

// Ring walks the positions at an exact distance from a center.
// Obtain one with Position.Ring; every call starts a fresh walk.
type Ring[T Number] struct {
	current   Position[T]
	direction Direction
	radius    int
	index     int
}

// Ring returns the hex ring of the given radius around p.
// The walk starts radius steps DownLeft of p and moves radius steps in each
// direction from Right through DownRight, yielding 6·radius positions.
// A radius of 0 yields p alone; negative radii are treated as 0.
func (p Position[T]) Ring(radius int) *Ring[T] {
	radius = max(radius, 0)
	return &Ring[T]{
		current:   p.Add(Vector[T](DownLeft).MulScalar(FromInt[T](radius))),
		direction: Right,
		radius:    radius,
	}
}

// Next returns the next position of the ring, or false once it is exhausted.
func (it *Ring[T]) Next() (Position[T], bool) {
	if it.radius == 0 {
		if it.index > 0 {
			return Position[T]{}, false
		}
		it.index++
		return it.current, true
	}
	if it.index >= it.radius {
		if it.direction == DownRight {
			return Position[T]{}, false
		}
		it.direction = it.direction.Next()
		it.index = 0
	}
	result := it.current
	it.current = it.current.Step(it.direction)
	it.index++
	return result, true
}

// Len returns the number of positions left to yield.
func (it *Ring[T]) Len() int {
	if it.radius == 0 {
		return 1 - it.index
	}
	return (6-int(it.direction))*it.radius - it.index
}

// All returns the remaining positions as a sequence.
// The cursor itself is not advanced, so the sequence can be ranged over repeatedly.
func (it *Ring[T]) All() iter.Seq[Position[T]] {
	snapshot := *it
	return func(yield func(Position[T]) bool) {
		c := snapshot
		for p, ok := c.Next(); ok; p, ok = c.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Collect returns the remaining positions as a slice.
func (it *Ring[T]) Collect() []Position[T] {
	return slices.Collect(it.All())
}

// Spiral walks a center followed by its rings of increasing radius.
type Spiral[T Number] struct {
	origin  Position[T]
	current Ring[T]
	radius  int
	index   int
}

// Spiral returns p followed by the rings of radius 1 through radius,
// 1 + 3·radius·(radius+1) positions in all.
func (p Position[T]) Spiral(radius int) *Spiral[T] {
	return &Spiral[T]{
		origin:  p,
		current: *p.Ring(1),
		radius:  max(radius, 0),
	}
}

// Next returns the next position of the spiral, or false once it is exhausted.
func (it *Spiral[T]) Next() (Position[T], bool) {
	// The origin comes first.
	if it.index == 0 {
		it.index++
		return it.origin, true
	}
	if it.index > it.radius {
		return Position[T]{}, false
	}
	result, ok := it.current.Next()
	if !ok && it.index < it.radius {
		it.index++
		it.current = *it.origin.Ring(it.index)
		result, ok = it.current.Next()
	}
	return result, ok
}

// Len returns the number of positions left to yield.
func (it *Spiral[T]) Len() int {
	if it.index == 0 {
		return 1 + 3*it.radius*(it.radius+1)
	}
	if it.index > it.radius {
		return 0
	}
	n := it.current.Len()
	for k := it.index + 1; k <= it.radius; k++ {
		n += 6 * k
	}
	return n
}

// All returns the remaining positions as a sequence without advancing the cursor.
func (it *Spiral[T]) All() iter.Seq[Position[T]] {
	snapshot := *it
	return func(yield func(Position[T]) bool) {
		c := snapshot
		for p, ok := c.Next(); ok; p, ok = c.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Collect returns the remaining positions as a slice.
func (it *Spiral[T]) Collect() []Position[T] {
	return slices.Collect(it.All())
}

// Line walks the hexes on the straight segment between two positions.
type Line[T Number] struct {
	start    Position[T]
	end      Position[T]
	maxIndex int
	index    int
}

// LineTo returns the distance(p, other)+1 hexes from p to other, both included.
// Each sample is interpolated at t = i/distance and snapped with AxialRound.
func (p Position[T]) LineTo(other Position[T]) *Line[T] {
	return &Line[T]{
		start:    p,
		end:      other,
		maxIndex: int(ToFloat32(Distance(p, other))),
	}
}

// Next returns the next position of the line, or false once it is exhausted.
func (it *Line[T]) Next() (Position[T], bool) {
	if it.index > it.maxIndex {
		return Position[T]{}, false
	}
	if it.start == it.end || it.maxIndex == 0 {
		it.index++
		return it.start, true
	}

	t := float32(it.index) / float32(it.maxIndex)
	q, r := HexLerp(it.start, it.end, t)
	it.index++
	return AxialRound[T](q, r), true
}

// Len returns the number of positions left to yield.
func (it *Line[T]) Len() int {
	return it.maxIndex + 1 - it.index
}

// All returns the remaining positions as a sequence without advancing the cursor.
func (it *Line[T]) All() iter.Seq[Position[T]] {
	snapshot := *it
	return func(yield func(Position[T]) bool) {
		c := snapshot
		for p, ok := c.Next(); ok; p, ok = c.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Collect returns the remaining positions as a slice.
func (it *Line[T]) Collect() []Position[T] {
	return slices.Collect(it.All())
}
