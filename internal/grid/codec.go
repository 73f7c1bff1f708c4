package grid

import (
	"encoding/json"
	"fmt"

	"github.com/talgya/hexgrid/internal/hex"
)

// Cell is one position/data pair of a layer.
type Cell[D any, T hex.Number] struct {
	Pos  hex.Position[T]
	Data D
}

// Cells returns the layer content ordered by r, then q.
func (l *Layer[D, T]) Cells() []Cell[D, T] {
	positions := make([]hex.Position[T], 0, len(l.cells))
	for pos := range l.cells {
		positions = append(positions, pos)
	}
	hex.SortPositions(positions)

	cells := make([]Cell[D, T], len(positions))
	for i, pos := range positions {
		cells[i] = Cell[D, T]{Pos: pos, Data: l.cells[pos]}
	}
	return cells
}

// FromCells builds a layer from cells. A position may appear only once.
func FromCells[D any, T hex.Number](cells []Cell[D, T]) (*Layer[D, T], error) {
	l := New[D, T]()
	for _, c := range cells {
		if _, dup := l.Set(c.Pos, c.Data); dup {
			return nil, fmt.Errorf("duplicate cell %v", c.Pos)
		}
	}
	return l, nil
}

type cellJSON[D any, T hex.Number] struct {
	Q    T `json:"q"`
	R    T `json:"r"`
	Data D `json:"data"`
}

// MarshalJSON encodes the layer as an array of {"q", "r", "data"} objects.
func (l *Layer[D, T]) MarshalJSON() ([]byte, error) {
	cells := l.Cells()
	out := make([]cellJSON[D, T], len(cells))
	for i, c := range cells {
		out[i] = cellJSON[D, T]{Q: c.Pos.Q, R: c.Pos.R, Data: c.Data}
	}
	return json.Marshal(out)
}

// UnmarshalJSON replaces the layer content with the decoded cells.
func (l *Layer[D, T]) UnmarshalJSON(b []byte) error {
	var in []cellJSON[D, T]
	if err := json.Unmarshal(b, &in); err != nil {
		return fmt.Errorf("decode layer: %w", err)
	}

	cells := make([]Cell[D, T], len(in))
	for i, c := range in {
		cells[i] = Cell[D, T]{Pos: hex.New(c.Q, c.R), Data: c.Data}
	}
	decoded, err := FromCells(cells)
	if err != nil {
		return fmt.Errorf("decode layer: %w", err)
	}
	l.cells = decoded.cells
	return nil
}
