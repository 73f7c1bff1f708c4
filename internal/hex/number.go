// Package hex provides axial hex-grid coordinates and the geometry built on them.
// Positions use axial coordinates (q, r); the third cube coordinate s = -q - r
// is always implied.
package hex

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types usable as a coordinate.
// Signed integers of any width and floating point types qualify.
type Number interface {
	constraints.Signed | constraints.Float
}

// MinusOne returns -1 as T.
func MinusOne[T Number]() T { return T(-1) }

// Zero returns 0 as T.
func Zero[T Number]() T { return T(0) }

// One returns 1 as T.
func One[T Number]() T { return T(1) }

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Abs returns the absolute value of a.
func Abs[T Number](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// Rem returns the remainder of a / b, truncated toward zero.
// Integer kinds panic on a zero divisor like the % operator does.
func Rem[T Number](a, b T) T {
	if isFloat[T]() {
		return T(math.Mod(float64(a), float64(b)))
	}
	return T(int64(a) % int64(b))
}

// FromInt converts a non-negative count (a size or radius) into T.
func FromInt[T Number](v int) T {
	return T(v)
}

// ToFloat32 converts v to float32. Precision may be lost.
func ToFloat32[T Number](v T) float32 {
	return float32(v)
}

// FromFloat32 converts v to T, truncating toward zero for integer kinds.
func FromFloat32[T Number](v float32) T {
	return T(v)
}

// isFloat reports whether T is a floating point kind.
func isFloat[T Number]() bool {
	return T(1)/T(2) != 0
}
