package hex

import (
	"fmt"
	"math"
)

// Position is a point on the hex grid in axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Position[T Number] struct {
	Q T `json:"q"`
	R T `json:"r"`
}

// New creates a position from its axial coordinates.
func New[T Number](q, r T) Position[T] {
	return Position[T]{Q: q, R: r}
}

// Origin returns (0, 0).
func Origin[T Number]() Position[T] {
	return Position[T]{}
}

// S returns the implicit third cube coordinate.
func (p Position[T]) S() T {
	return -p.Q - p.R
}

// String renders the position as "(q, r)".
func (p Position[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Q, p.R)
}

// Add returns p + o, component-wise.
func (p Position[T]) Add(o Position[T]) Position[T] {
	return Position[T]{Q: p.Q + o.Q, R: p.R + o.R}
}

// Sub returns p - o, component-wise.
func (p Position[T]) Sub(o Position[T]) Position[T] {
	return Position[T]{Q: p.Q - o.Q, R: p.R - o.R}
}

// Mul returns p * o, component-wise.
func (p Position[T]) Mul(o Position[T]) Position[T] {
	return Position[T]{Q: p.Q * o.Q, R: p.R * o.R}
}

// Div returns p / o, component-wise.
func (p Position[T]) Div(o Position[T]) Position[T] {
	return Position[T]{Q: p.Q / o.Q, R: p.R / o.R}
}

// Rem returns p % o, component-wise.
func (p Position[T]) Rem(o Position[T]) Position[T] {
	return Position[T]{Q: Rem(p.Q, o.Q), R: Rem(p.R, o.R)}
}

// AddScalar adds k to both coordinates.
func (p Position[T]) AddScalar(k T) Position[T] {
	return Position[T]{Q: p.Q + k, R: p.R + k}
}

// SubScalar subtracts k from both coordinates.
func (p Position[T]) SubScalar(k T) Position[T] {
	return Position[T]{Q: p.Q - k, R: p.R - k}
}

// MulScalar scales p by k.
func (p Position[T]) MulScalar(k T) Position[T] {
	return Position[T]{Q: p.Q * k, R: p.R * k}
}

// DivScalar divides both coordinates by k.
func (p Position[T]) DivScalar(k T) Position[T] {
	return Position[T]{Q: p.Q / k, R: p.R / k}
}

// RemScalar takes the remainder of both coordinates by k.
func (p Position[T]) RemScalar(k T) Position[T] {
	return Position[T]{Q: Rem(p.Q, k), R: Rem(p.R, k)}
}

// Neg returns (-q, -r).
func (p Position[T]) Neg() Position[T] {
	return Position[T]{Q: -p.Q, R: -p.R}
}

// Distance returns the hex distance between p and o.
func (p Position[T]) Distance(o Position[T]) T {
	return Distance(p, o)
}

// Distance returns the hex distance between two positions:
// the max of the three absolute differences in cube coordinates.
func Distance[T Number](a, b Position[T]) T {
	dq := Abs(a.Q - b.Q)
	dr := Abs(a.R - b.R)
	ds := Abs(a.S() - b.S())
	return Max(Max(dq, dr), ds)
}

// Rotation rotates p counter-clockwise around the origin by 60° n times.
// n is taken modulo 6, so negative values rotate clockwise.
func (p Position[T]) Rotation(n int) Position[T] {
	n %= 6
	if n < 0 {
		n += 6
	}
	for ; n > 0; n-- {
		p = Position[T]{Q: -p.R, R: p.Q + p.R}
	}
	return p
}

// Reflect returns the central symmetry of p through the origin.
func (p Position[T]) Reflect() Position[T] {
	return Position[T]{Q: -p.Q, R: -p.R}
}

var sqrt3 = float32(math.Sqrt(3))

// ToPixel converts p to 2D cartesian coordinates for a hex of unit size:
// x = √3·q + √3/2·r, y = 3/2·r.
func (p Position[T]) ToPixel() (x, y float32) {
	q, r := float32(p.Q), float32(p.R)
	x = float32(math.FMA(float64(sqrt3), float64(q), float64(sqrt3/2*r)))
	y = 3.0 / 2.0 * r
	return x, y
}
