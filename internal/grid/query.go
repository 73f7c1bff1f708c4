package grid

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/talgya/hexgrid/internal/hex"
)

// ErrNotInLayer is the panic value (wrapped) raised when a query is given a
// position the layer does not contain. This is a caller bug, not a data error.
var ErrNotInLayer = errors.New("position not in layer")

// Unlimited disables the range check in FieldOfView.
const Unlimited = -1

// NeighborsUnblocked returns the neighbors of pos that are members of l and
// not blocked, in direction order. In a boolean layer true means blocked,
// and positions missing from the layer count as blocked too.
func NeighborsUnblocked[T hex.Number](l *Layer[bool, T], pos hex.Position[T]) []hex.Position[T] {
	result := make([]hex.Position[T], 0, 6)
	for _, n := range hex.Neighbors(pos) {
		if blocked, ok := l.cells[n]; ok && !blocked {
			result = append(result, n)
		}
	}
	return result
}

// Pathfinding returns the shortest path from from to to, both included,
// moving only through unblocked members of l.
//
// When to cannot be reached the result is the single position [to]; use
// FindPath to tell that case apart. Pathfinding panics if from or to is not
// a member of l, unless they are equal.
func Pathfinding[T hex.Number](l *Layer[bool, T], from, to hex.Position[T]) []hex.Position[T] {
	path, _ := FindPath(l, from, to)
	return path
}

// FindPath runs the same A* search as Pathfinding and also reports whether
// to was reached.
func FindPath[T hex.Number](l *Layer[bool, T], from, to hex.Position[T]) ([]hex.Position[T], bool) {
	if from == to {
		return []hex.Position[T]{from}, true
	}
	if !l.Has(from) || !l.Has(to) {
		panic(fmt.Errorf("pathfinding from %v to %v: %w", from, to, ErrNotInLayer))
	}

	open := &frontier[T]{}
	seq := 0
	push := func(pos hex.Position[T], priority float64) {
		heap.Push(open, frontierItem[T]{pos: pos, priority: priority, seq: seq})
		seq++
	}

	cameFrom := map[hex.Position[T]]hex.Position[T]{}
	costSoFar := map[hex.Position[T]]int{from: 0}
	closed := map[hex.Position[T]]bool{}
	push(from, 0)

	for open.Len() > 0 {
		current := heap.Pop(open).(frontierItem[T]).pos
		if closed[current] {
			continue
		}
		closed[current] = true
		if current == to {
			break
		}

		for _, next := range NeighborsUnblocked(l, current) {
			if closed[next] {
				continue
			}
			newCost := costSoFar[current] + 1
			if old, ok := costSoFar[next]; ok && old <= newCost {
				continue
			}
			costSoFar[next] = newCost
			cameFrom[next] = current
			push(next, float64(newCost)+float64(hex.Distance(next, to)))
		}
	}

	if _, ok := cameFrom[to]; !ok {
		return []hex.Position[T]{to}, false
	}

	path := []hex.Position[T]{to}
	for current := to; current != from; {
		current = cameFrom[current]
		path = append(path, current)
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// FieldOfView returns the members of l visible from center.
//
// A position is visible when it lies within maxRange of center (a negative
// maxRange means no limit) and every hex on the interpolated line from center
// up to, but not including, the position is a member of l and not blocked.
// The target itself is not checked, so blocking cells can be seen; a blocked
// or missing center sees nothing. For float coordinates the distance is
// truncated toward zero before the range check.
func FieldOfView[T hex.Number](l *Layer[bool, T], center hex.Position[T], maxRange int) hex.Set[T] {
	visible := make(hex.Set[T])

	for pos := range l.cells {
		if maxRange >= 0 && int64(hex.Distance(pos, center)) > int64(maxRange) {
			continue
		}
		if lineClear(l, center, pos) {
			visible.Add(pos)
		}
	}
	return visible
}

// lineClear reports whether every hex from from up to, but not including, to
// is an unblocked member of l. When from == to the single hex is checked.
func lineClear[T hex.Number](l *Layer[bool, T], from, to hex.Position[T]) bool {
	line := from.LineTo(to)
	last := line.Len() - 1
	for i := 0; i <= last; i++ {
		p, _ := line.Next()
		if i == last && last > 0 {
			continue
		}
		if blocked, ok := l.cells[p]; !ok || blocked {
			return false
		}
	}
	return true
}

// FieldOfMove returns every position reachable from pos in at most rng steps
// through unblocked members of l. pos itself is always included.
func FieldOfMove[T hex.Number](l *Layer[bool, T], pos hex.Position[T], rng int) hex.Set[T] {
	visited := hex.NewSet(pos)
	fringe := []hex.Position[T]{pos}

	for k := 1; k <= rng && len(fringe) > 0; k++ {
		next := make([]hex.Position[T], 0, len(fringe)*6)
		for _, p := range fringe {
			for _, n := range NeighborsUnblocked(l, p) {
				if visited.Has(n) {
					continue
				}
				visited.Add(n)
				next = append(next, n)
			}
		}
		fringe = next
	}
	return visited
}

// frontier is a min-heap on priority; equal priorities pop in push order.
type frontierItem[T hex.Number] struct {
	pos      hex.Position[T]
	priority float64
	seq      int
}

type frontier[T hex.Number] []frontierItem[T]

func (f frontier[T]) Len() int { return len(f) }
func (f frontier[T]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}
func (f frontier[T]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier[T]) Push(x any)   { *f = append(*f, x.(frontierItem[T])) }
func (f *frontier[T]) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}
