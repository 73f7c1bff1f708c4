package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingOrder(t *testing.T) {
	got := Origin[int]().Ring(1).Collect()
	want := []Position[int]{{-1, 1}, {0, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, 0}}
	assert.Equal(t, want, got)
}

func TestRingSize(t *testing.T) {
	center := New(2, -5)
	for radius := 1; radius <= 6; radius++ {
		ring := center.Ring(radius)
		require.Equal(t, 6*radius, ring.Len())

		got := ring.Collect()
		require.Len(t, got, 6*radius)
		assert.Equal(t, 6*radius, NewSet(got...).Len(), "ring positions must be distinct")
		for _, p := range got {
			assert.Equal(t, radius, Distance(center, p))
		}
		assert.Equal(t, center.Add(Vector[int](DownLeft).MulScalar(radius)), got[0])
	}
}

func TestRingZeroRadius(t *testing.T) {
	center := New(4, 4)
	assert.Equal(t, []Position[int]{center}, center.Ring(0).Collect())
	assert.Equal(t, []Position[int]{center}, center.Ring(-3).Collect())
}

func TestRingCursor(t *testing.T) {
	ring := Origin[int]().Ring(2)
	seen := 0
	for _, ok := ring.Next(); ok; _, ok = ring.Next() {
		seen++
		assert.Equal(t, 12-seen, ring.Len())
	}
	assert.Equal(t, 12, seen)

	_, ok := ring.Next()
	assert.False(t, ok)
}

func TestSpiral(t *testing.T) {
	center := New(-1, 3)
	for radius := 0; radius <= 5; radius++ {
		spiral := center.Spiral(radius)
		want := 1 + 3*radius*(radius+1)
		require.Equal(t, want, spiral.Len())

		got := spiral.Collect()
		require.Len(t, got, want)
		assert.Equal(t, center, got[0])

		expected := []Position[int]{center}
		for k := 1; k <= radius; k++ {
			expected = append(expected, center.Ring(k).Collect()...)
		}
		assert.Equal(t, expected, got)
	}
}

func TestSpiralLenWhileWalking(t *testing.T) {
	spiral := Origin[int]().Spiral(3)
	total := spiral.Len()
	for i := 1; i <= total; i++ {
		_, ok := spiral.Next()
		require.True(t, ok)
		assert.Equal(t, total-i, spiral.Len())
	}
	_, ok := spiral.Next()
	assert.False(t, ok)
}

func TestIteratorsRestartable(t *testing.T) {
	spiral := Origin[int]().Spiral(2)
	first := spiral.Collect()
	second := spiral.Collect()
	assert.Equal(t, first, second)
	assert.Len(t, first, 19)

	line := New(0, 0).LineTo(New(3, -1))
	count := 0
	for range line.All() {
		count++
	}
	for range line.All() {
		count++
	}
	assert.Equal(t, 8, count)
}

func TestLineTo(t *testing.T) {
	a := New(0, 0)
	b := New(-2, -1)
	got := a.LineTo(b).Collect()
	require.Len(t, got, 4)
	assert.Equal(t, a, got[0])
	assert.Equal(t, b, got[3])

	c := New(3, -2)
	assert.Equal(t, []Position[int]{c}, c.LineTo(c).Collect())
}

func TestLineToStraight(t *testing.T) {
	center := New(1, 1)
	for _, d := range Directions {
		end := center.Add(Vector[int](d).MulScalar(4))
		got := center.LineTo(end).Collect()
		require.Len(t, got, 5)
		for i, p := range got {
			assert.Equal(t, center.Add(Vector[int](d).MulScalar(i)), p)
		}
	}
}

func TestLineToLength(t *testing.T) {
	from := New(0, 0)
	for _, to := range from.Spiral(5).Collect() {
		got := from.LineTo(to).Collect()
		require.Len(t, got, Distance(from, to)+1)
		assert.Equal(t, from, got[0])
		assert.Equal(t, to, got[len(got)-1])
	}
}
