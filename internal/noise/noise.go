// Package noise samples layered simplex noise for procedural hex layers.
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexgrid/internal/grid"
	"github.com/talgya/hexgrid/internal/hex"
)

// Fractal holds multi-octave noise parameters.
type Fractal struct {
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`   // Base frequency of the first octave
	Persistence float64 `yaml:"persistence"` // Amplitude multiplier per octave
	Lacunarity  float64 `yaml:"lacunarity"`  // Frequency multiplier per octave
}

// DefaultFractal returns a reasonable starting configuration.
func DefaultFractal() Fractal {
	return Fractal{
		Seed:        12345,
		Octaves:     2,
		Frequency:   0.2,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Func returns a sampler for f. Output lies in [-1, 1].
func (f Fractal) Func() grid.NoiseFunc {
	n := opensimplex.New(f.Seed)
	return func(x, y float64) float64 {
		return octaveNoise(n, x, y, f.Octaves, f.Frequency, f.Persistence, f.Lacunarity)
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence, lacunarity float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}

// Heightmap creates a layer of radius rng-1 around center filled with f.
func Heightmap[T hex.Number](f Fractal, rng int, center hex.Position[T]) *grid.Layer[float64, T] {
	l := grid.NewFromRange[float64](rng, center)
	grid.InitNoise(l, f.Func())
	return l
}

// Blocked derives an obstacle layer: cells at or above level are blocked.
func Blocked[T hex.Number](heights *grid.Layer[float64, T], level float64) *grid.Layer[bool, T] {
	out := grid.New[bool, T]()
	for pos, h := range heights.All() {
		out.Set(pos, h >= level)
	}
	return out
}
