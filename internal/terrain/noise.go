package terrain

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sampler is a deterministic 2D coherent-noise source. For a fixed
// seed the same coordinates must always yield the same value, and the
// value must lie in [-1, 1].
type Sampler interface {
	Sample(x, z float64) float64
}

// NewSampler builds the sampler selected by name. Supported names are
// "perlin" and "opensimplex".
func NewSampler(name string, seed int64) (Sampler, error) {
	switch name {
	case "perlin":
		return NewPerlinSampler(seed), nil
	case "opensimplex":
		return NewOpenSimplexSampler(seed), nil
	}
	return nil, fmt.Errorf("terrain: unknown noise algorithm %q", name)
}

// PerlinSampler wraps aquilax/go-perlin. This matches the noise model
// the terrain shape was tuned for.
type PerlinSampler struct {
	p *perlin.Perlin
}

func NewPerlinSampler(seed int64) *PerlinSampler {
	// alpha/beta/octaves tuned for gentle rolling terrain.
	return &PerlinSampler{p: perlin.NewPerlin(2, 2, 3, seed)}
}

func (s *PerlinSampler) Sample(x, z float64) float64 {
	return clamp(s.p.Noise2D(x, z))
}

// OpenSimplexSampler layers several octaves of OpenSimplex noise into
// a single bounded sample.
type OpenSimplexSampler struct {
	noise       opensimplex.Noise32
	octaves     int
	lacunarity  float64
	persistence float64
}

func NewOpenSimplexSampler(seed int64) *OpenSimplexSampler {
	return &OpenSimplexSampler{
		noise:       opensimplex.New32(seed),
		octaves:     4,
		lacunarity:  1.5,
		persistence: 0.5,
	}
}

func (s *OpenSimplexSampler) Sample(x, z float64) float64 {
	total := 0.0
	norm := 0.0
	amplitude := 1.0
	for i := 0; i < s.octaves; i++ {
		total += float64(s.noise.Eval2(float32(x), float32(z))) * amplitude
		norm += amplitude
		x *= s.lacunarity
		z *= s.lacunarity
		amplitude *= s.persistence
	}
	return clamp(total / norm)
}

// Constant is a sampler that ignores its coordinates. Used to build
// flat worlds in tests.
type Constant float64

func (c Constant) Sample(x, z float64) float64 {
	return float64(c)
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
