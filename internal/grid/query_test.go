package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexgrid/internal/hex"
)

func openLayer(rng int) *Layer[bool, int] {
	return NewFromRange[bool, int](rng, hex.Origin[int]())
}

func assertConnected(t *testing.T, l *Layer[bool, int], path []hex.Position[int]) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, hex.Distance(path[i-1], path[i]), "step %d", i)
		blocked, ok := l.Get(path[i])
		assert.True(t, ok)
		assert.False(t, blocked)
	}
}

func TestNeighborsUnblocked(t *testing.T) {
	l := openLayer(3)
	assert.Len(t, NeighborsUnblocked(l, hex.Origin[int]()), 6)

	l.Delete(hex.Origin[int]())
	l.Set(hex.New(1, 0), true)

	got := NeighborsUnblocked(l, hex.New(1, 1))
	assert.Equal(t, []hex.Position[int]{{Q: 2, R: 0}, {Q: 0, R: 1}, {Q: 0, R: 2}}, got)
}

func TestPathfindingOpen(t *testing.T) {
	l := openLayer(3)
	from, to := hex.New(0, 0), hex.New(0, 2)

	path := Pathfinding(l, from, to)
	assert.Len(t, path, hex.Distance(from, to)+1)
	assert.Equal(t, []hex.Position[int]{{Q: 0, R: 0}, {Q: 0, R: 1}, {Q: 0, R: 2}}, path)
}

func TestPathfindingAroundObstacles(t *testing.T) {
	l := openLayer(3)
	l.Set(hex.New(-1, 1), true)
	l.Set(hex.New(1, -1), true)
	l.Set(hex.New(1, 0), true)
	l.Set(hex.New(0, 1), true)

	path := Pathfinding(l, hex.New(0, 0), hex.New(0, 2))
	assert.Equal(t, []hex.Position[int]{
		{Q: 0, R: 0}, {Q: -1, R: 0}, {Q: -2, R: 1}, {Q: -2, R: 2}, {Q: -1, R: 2}, {Q: 0, R: 2},
	}, path)
	assertConnected(t, l, path)
}

func TestPathfindingShortest(t *testing.T) {
	l := openLayer(6)
	for _, p := range []hex.Position[int]{{Q: 0, R: 1}, {Q: 1, R: 1}, {Q: 2, R: 0}, {Q: -1, R: 2}, {Q: -2, R: 2}, {Q: 3, R: -1}} {
		l.Set(p, true)
	}

	from := hex.New(0, 0)
	for to := range l.Positions() {
		if blocked, _ := l.Get(to); blocked || to == from {
			continue
		}
		path, ok := FindPath(l, from, to)
		require.True(t, ok, "path to %v", to)
		assert.Equal(t, from, path[0])
		assert.Equal(t, to, path[len(path)-1])
		assertConnected(t, l, path)
		assert.GreaterOrEqual(t, len(path), hex.Distance(from, to)+1)

		// Every cell one step short of the path length must be out of reach.
		reach := FieldOfMove(l, from, len(path)-2)
		assert.False(t, reach.Has(to), "path to %v is not the shortest", to)
	}
}

func TestPathfindingUnreachable(t *testing.T) {
	l := openLayer(4)
	target := hex.New(2, 0)
	for _, n := range hex.Neighbors(target) {
		l.Set(n, true)
	}

	path, ok := FindPath(l, hex.Origin[int](), target)
	assert.False(t, ok)
	assert.Equal(t, []hex.Position[int]{target}, path)
	assert.Equal(t, []hex.Position[int]{target}, Pathfinding(l, hex.Origin[int](), target))
}

func TestPathfindingSamePosition(t *testing.T) {
	l := openLayer(1)
	outside := hex.New(7, 7)
	assert.Equal(t, []hex.Position[int]{outside}, Pathfinding(l, outside, outside))
}

func TestPathfindingOutsideLayer(t *testing.T) {
	l := openLayer(2)
	assert.Panics(t, func() { Pathfinding(l, hex.Origin[int](), hex.New(5, 5)) })
	assert.Panics(t, func() { Pathfinding(l, hex.New(5, 5), hex.Origin[int]()) })
}

func TestFieldOfMove(t *testing.T) {
	l := openLayer(3)
	start := hex.Origin[int]()

	assert.Equal(t, 19, FieldOfMove(l, start, 2).Len())
	assert.Equal(t, 1, FieldOfMove(l, start, 0).Len())

	l.Set(hex.New(0, 1), true)
	l.Set(hex.New(1, 0), true)
	l.Set(hex.New(0, -2), true)

	reach := FieldOfMove(l, start, 2)
	assert.Equal(t, 13, reach.Len())
	assert.False(t, reach.Has(hex.New(0, 1)))
	assert.True(t, reach.Has(start))
}

func TestFieldOfMoveStopsAtLayerEdge(t *testing.T) {
	l := openLayer(2)
	assert.Equal(t, 7, FieldOfMove(l, hex.Origin[int](), 10).Len())
}

func TestFieldOfView(t *testing.T) {
	l := openLayer(6)
	for _, p := range []hex.Position[int]{{Q: 0, R: 1}, {Q: 1, R: 0}, {Q: -2, R: 0}, {Q: -2, R: 1}, {Q: 0, R: -2}} {
		l.Set(p, true)
	}
	center := hex.Origin[int]()

	all := FieldOfView(l, center, Unlimited)
	assert.True(t, all.Has(center))
	assert.True(t, all.Has(hex.New(-1, 0)))
	assert.True(t, all.Has(hex.New(0, 1)), "blocking cells are themselves visible")
	assert.False(t, all.Has(hex.New(0, 2)), "hidden behind (0, 1)")
	assert.False(t, all.Has(hex.New(2, 0)), "hidden behind (1, 0)")
	assert.False(t, all.Has(hex.New(0, -3)), "hidden behind (0, -2)")
	assert.True(t, all.Has(hex.New(-1, -1)))
	assert.True(t, all.Has(hex.New(3, -3)))

	ranged := FieldOfView(l, center, 2)
	assert.True(t, ranged.Has(hex.New(-1, -1)))
	assert.False(t, ranged.Has(hex.New(3, -3)))
	for pos := range ranged {
		assert.LessOrEqual(t, hex.Distance(center, pos), 2)
		assert.True(t, all.Has(pos))
	}
}

func TestFieldOfViewOpen(t *testing.T) {
	l := openLayer(4)
	assert.Equal(t, l.Len(), FieldOfView(l, hex.Origin[int](), Unlimited).Len())
	assert.Equal(t, 7, FieldOfView(l, hex.Origin[int](), 1).Len())
}

func TestFieldOfViewHoles(t *testing.T) {
	l := openLayer(4)
	l.Delete(hex.New(1, 0))
	visible := FieldOfView(l, hex.Origin[int](), Unlimited)
	assert.False(t, visible.Has(hex.New(1, 0)), "not a member")
	assert.False(t, visible.Has(hex.New(2, 0)), "missing cells block sight")
}

func TestFieldOfViewBlockedCenter(t *testing.T) {
	center := hex.Origin[int]()

	l := openLayer(3)
	l.Set(center, true)
	assert.Zero(t, FieldOfView(l, center, Unlimited).Len(), "blocked center sees nothing")

	l = openLayer(3)
	l.Delete(center)
	assert.Zero(t, FieldOfView(l, center, Unlimited).Len(), "missing center sees nothing")

	l = openLayer(3)
	assert.Equal(t, []hex.Position[int]{center}, FieldOfView(l, center, 0).Sorted())
}

func TestFieldOfViewFloatRangeTruncates(t *testing.T) {
	center := hex.Origin[float64]()
	far := hex.New(2.5, 0.0)

	l := New[bool, float64]()
	l.Set(center, false)
	l.Set(hex.New(1.0, 0.0), false)
	l.Set(far, false)

	assert.True(t, FieldOfView(l, center, 2).Has(far), "distance 2.5 truncates to 2")
	assert.False(t, FieldOfView(l, center, 1).Has(far))
}
