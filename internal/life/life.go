// Package life runs a Conway-style cellular automaton on a hex layer.
//
// Rules: a live cell survives only with exactly two live neighbors; a dead
// cell with exactly two live neighbors comes alive. Positions outside the
// layer count as dead.
package life

import (
	"math/rand"

	"github.com/talgya/hexgrid/internal/grid"
	"github.com/talgya/hexgrid/internal/hex"
)

// Change summarises one generation step.
type Change struct {
	Births int `json:"births"`
	Deaths int `json:"deaths"`
}

// NewBoard creates an all-dead board of the given range around the origin.
func NewBoard[T hex.Number](size int) *grid.Layer[bool, T] {
	return grid.NewFromRange[bool](size, hex.Origin[T]())
}

// Seed sets every position of the origin's spiral of the given radius to
// alive with probability prob, dead otherwise. Positions outside the board
// are added to it.
func Seed[T hex.Number](board *grid.Layer[bool, T], radius int, prob float64, rng *rand.Rand) {
	for pos := range hex.Origin[T]().Spiral(radius).All() {
		board.Set(pos, rng.Float64() < prob)
	}
}

// LiveNeighbors counts the live cells adjacent to pos.
func LiveNeighbors[T hex.Number](board *grid.Layer[bool, T], pos hex.Position[T]) int {
	n := 0
	for _, nb := range hex.Neighbors(pos) {
		if alive, _ := board.Get(nb); alive {
			n++
		}
	}
	return n
}

// Next applies the rules to a single cell.
func Next(alive bool, liveNeighbors int) bool {
	switch {
	case alive && liveNeighbors != 2:
		return false
	case !alive && liveNeighbors == 2:
		return true
	default:
		return alive
	}
}

// Step computes the next generation. The result starts as a fresh board of
// the given size and then receives every position of the current board, so
// the key set of a board seeded through Seed is preserved.
func Step[T hex.Number](board *grid.Layer[bool, T], size int) *grid.Layer[bool, T] {
	next := NewBoard[T](size)
	for pos, alive := range board.All() {
		next.Set(pos, Next(alive, LiveNeighbors(board, pos)))
	}
	return next
}

// Alive counts the live cells on the board.
func Alive[T hex.Number](board *grid.Layer[bool, T]) int {
	n := 0
	for alive := range board.Data() {
		if alive {
			n++
		}
	}
	return n
}

// Compare counts the cells that came alive and died between two boards.
func Compare[T hex.Number](prev, next *grid.Layer[bool, T]) Change {
	var c Change
	for pos, alive := range next.All() {
		was, _ := prev.Get(pos)
		switch {
		case alive && !was:
			c.Births++
		case !alive && was:
			c.Deaths++
		}
	}
	return c
}
