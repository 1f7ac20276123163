package sample

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
)

// Option configures Noise.
type Option func(*noiseConfig)

type noiseConfig struct {
	frequency   float64
	octaves     int
	persistence float64
}

// Default noise parameters: broad features that still vary inside a small
// sample.
const (
	DefaultFrequency   = 0.18
	DefaultOctaves     = 3
	DefaultPersistence = 0.5
)

// WithFrequency sets the base noise frequency per cell. Panics if f <= 0.
func WithFrequency(f float64) Option {
	if !(f > 0) {
		panic(fmt.Sprintf("sample: WithFrequency(%v)", f))
	}
	return func(c *noiseConfig) { c.frequency = f }
}

// WithOctaves sets how many noise layers are summed. Panics if n < 1.
func WithOctaves(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sample: WithOctaves(%d)", n))
	}
	return func(c *noiseConfig) { c.octaves = n }
}

// WithPersistence sets the amplitude ratio between octaves. Panics outside (0,1].
func WithPersistence(p float64) Option {
	if !(p > 0 && p <= 1) {
		panic(fmt.Sprintf("sample: WithPersistence(%v)", p))
	}
	return func(c *noiseConfig) { c.persistence = p }
}

// Noise synthesizes a hexagonal sample of the given radius from layered
// simplex noise. The normalized noise value of each cell is split into
// len(levels) equal bands; band i maps to levels[i], so levels should be
// ordered low to high (water before mountains).
// The same radius, seed, levels and options always give the same grid.
func Noise[T any](radius int, seed int64, levels []T, opts ...Option) (*grid.Grid[layout.Hexagonal, T], error) {
	l, err := layout.NewHexagonal(radius)
	if err != nil {
		return nil, fmt.Errorf("sample: noise: %w", err)
	}
	if len(levels) == 0 {
		return nil, ErrInvalidLevels
	}
	cfg := noiseConfig{
		frequency:   DefaultFrequency,
		octaves:     DefaultOctaves,
		persistence: DefaultPersistence,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	src := opensimplex.NewNormalized(seed)
	return grid.FromFunc(l, func(c hex.Coord) T {
		x, y := cartesian(c)
		v := octave(src, x, y, cfg)
		i := int(v * float64(len(levels)))
		return levels[min(max(i, 0), len(levels)-1)]
	}), nil
}

// cartesian places c on the plane with unit distance between neighbors.
func cartesian(c hex.Coord) (float64, float64) {
	return float64(c.Q) + float64(c.R)*0.5, float64(c.R) * math.Sqrt(3) / 2
}

// octave sums cfg.octaves layers of noise, doubling the frequency each time,
// and renormalizes to [0,1).
func octave(src opensimplex.Noise, x, y float64, cfg noiseConfig) float64 {
	total, amplitude, norm := 0.0, 1.0, 0.0
	f := cfg.frequency
	for i := 0; i < cfg.octaves; i++ {
		total += src.Eval2(x*f, y*f) * amplitude
		norm += amplitude
		amplitude *= cfg.persistence
		f *= 2
	}
	return total / norm
}
