package hex

import "math"

// AxialRound converts a fractional axial coordinate to the hex containing it.
// Each cube component is rounded independently; the one with the largest
// rounding error is then recomputed from the other two so q + r + s = 0.
// Ties fall through to correcting s.
func AxialRound[T Number](q, r float32) Position[T] {
	s := -q - r

	rq, rr, rs := round32(q), round32(r), round32(s)
	qDiff, rDiff, sDiff := abs32(rq-q), abs32(rr-r), abs32(rs-s)

	switch {
	case qDiff > rDiff && qDiff > sDiff:
		rq = -rr - rs
	case rDiff > sDiff:
		rr = -rq - rs
	}
	return Position[T]{Q: T(rq), R: T(rr)}
}

// Lerp linearly interpolates between a and b: a·(1-t) + b·t.
func Lerp(a, b, t float32) float32 {
	bt := b * t
	return float32(math.FMA(float64(a), float64(1-t), float64(bt)))
}

// HexLerp interpolates between two positions in continuous axial space.
func HexLerp[T Number](a, b Position[T], t float32) (q, r float32) {
	return Lerp(float32(a.Q), float32(b.Q), t), Lerp(float32(a.R), float32(b.R), t)
}

// round32 rounds half away from zero.
func round32(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
