package grid

import "github.com/talgya/hexgrid/internal/hex"

// NoiseFunc samples a 2D noise field at cartesian coordinates.
type NoiseFunc func(x, y float64) float64

// InitNoise overwrites every cell of l with fn sampled at the cell's pixel
// coordinates.
func InitNoise[T hex.Number](l *Layer[float64, T], fn NoiseFunc) {
	l.MutateAll(func(pos hex.Position[T], d *float64) {
		x, y := pos.ToPixel()
		*d = fn(float64(x), float64(y))
	})
}
