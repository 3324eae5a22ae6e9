package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

func TestNewSampler(t *testing.T) {
	s, err := NewSampler("perlin", 1)
	require.NoError(t, err)
	assert.IsType(t, &PerlinSampler{}, s)

	s, err = NewSampler("opensimplex", 1)
	require.NoError(t, err)
	assert.IsType(t, &OpenSimplexSampler{}, s)

	_, err = NewSampler("white", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "white")
}

func TestSamplerBounds(t *testing.T) {
	samplers := map[string]Sampler{
		"perlin":      NewPerlinSampler(7),
		"opensimplex": NewOpenSimplexSampler(7),
	}
	for name, s := range samplers {
		for x := -40; x <= 40; x++ {
			for z := -40; z <= 40; z++ {
				n := s.Sample(float64(x)*0.13, float64(z)*0.13)
				require.GreaterOrEqual(t, n, -1.0, "%s at (%d, %d)", name, x, z)
				require.LessOrEqual(t, n, 1.0, "%s at (%d, %d)", name, x, z)
			}
		}
	}
}

func TestSamplerDeterministic(t *testing.T) {
	a := NewPerlinSampler(42)
	b := NewPerlinSampler(42)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			assert.Equal(t, a.Sample(float64(x)*0.1, float64(z)*0.1), b.Sample(float64(x)*0.1, float64(z)*0.1))
		}
	}
}

func TestSurfaceHeight(t *testing.T) {
	assert.Equal(t, 0, SurfaceHeight(-1))
	assert.Equal(t, 15, SurfaceHeight(0))
	assert.Equal(t, 30, SurfaceHeight(1))
}

// surfaceOf finds the first air level of a generated column.
func surfaceOf(g *world.BlockGrid, x, z int) int {
	for y := 0; y < world.ChunkHeight; y++ {
		if g[x][y][z].Type == world.Air {
			return y
		}
	}
	return world.ChunkHeight
}

func TestGenerateFlatWorld(t *testing.T) {
	gen := NewGenerator(Constant(0), 0)
	g := gen.Generate(0, 0)
	for x := 0; x < world.ChunkWidth; x++ {
		for z := 0; z < world.ChunkDepth; z++ {
			for y := 0; y < world.ChunkHeight; y++ {
				want := world.Air
				if y < 15 {
					want = world.Grass
				}
				require.Equal(t, want, g[x][y][z].Type, "block (%d, %d, %d)", x, y, z)
			}
		}
	}

	allAir := NewGenerator(Constant(-1), 0).Generate(0, 0)
	assert.Equal(t, 0, surfaceOf(allAir, 0, 0))

	allGrass := NewGenerator(Constant(1), 0).Generate(0, 0)
	assert.Equal(t, world.ChunkHeight, surfaceOf(allGrass, 0, 0))
}

func TestGenerateDeterministic(t *testing.T) {
	gen := NewGenerator(NewPerlinSampler(9), 0.1)
	a := gen.Generate(16, 32)
	b := gen.Generate(16, 32)
	assert.Equal(t, a, b)
}

func TestGenerateSamplesGlobalCoordinates(t *testing.T) {
	sampler := NewPerlinSampler(3)
	gen := NewGenerator(sampler, 0.1)

	// every column's surface must match a direct sampler evaluation at
	// the global block coordinate, regardless of which chunk owns it
	for _, offset := range [][2]int{{0, 0}, {0, 16}, {16, 0}, {240, 240}} {
		g := gen.Generate(offset[0], offset[1])
		for x := 0; x < world.ChunkWidth; x++ {
			for z := 0; z < world.ChunkDepth; z++ {
				n := sampler.Sample(float64(x+offset[0])*0.1, float64(z+offset[1])*0.1)
				require.Equal(t, SurfaceHeight(n), surfaceOf(g, x, z),
					"chunk offset %v column (%d, %d)", offset, x, z)
			}
		}
	}
}

func TestAdjacentChunksAgreeOnSeams(t *testing.T) {
	sampler := NewPerlinSampler(11)
	gen := NewGenerator(sampler, 0.1)

	left := gen.Generate(0, 0)
	right := gen.Generate(0, 16)

	// the last column of one chunk and the first of the next are
	// adjacent global columns; both must match the same global samples
	for x := 0; x < world.ChunkWidth; x++ {
		nLast := sampler.Sample(float64(x)*0.1, 15*0.1)
		nFirst := sampler.Sample(float64(x)*0.1, 16*0.1)
		assert.Equal(t, SurfaceHeight(nLast), surfaceOf(left, x, 15))
		assert.Equal(t, SurfaceHeight(nFirst), surfaceOf(right, x, 0))
	}
}
