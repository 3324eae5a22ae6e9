// Package terrain turns coherent noise into dense chunk block grids.
package terrain

import (
	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

// DefaultScale is the noise frequency applied to global block
// coordinates before sampling.
const DefaultScale = 0.1

// Generator produces chunk block grids from a noise sampler. It has no
// failure mode: every call yields a full grid.
type Generator struct {
	sampler Sampler
	scale   float64
}

func NewGenerator(sampler Sampler, scale float64) *Generator {
	if scale == 0 {
		scale = DefaultScale
	}
	return &Generator{sampler: sampler, scale: scale}
}

// SurfaceHeight maps a noise value in [-1, 1] to a terrain column
// height in [0, ChunkHeight].
func SurfaceHeight(n float64) int {
	h := float64(world.ChunkHeight)
	return int(n*h*0.5 + h*0.5)
}

// Generate fills a chunk grid for the given world offset in block
// units. The sampler is always evaluated at global coordinates
// (chunk offset plus local index), so laterally adjacent chunks agree
// on their shared boundary columns without any communication.
func (g *Generator) Generate(row, col int) *world.BlockGrid {
	grid := new(world.BlockGrid)
	for x := 0; x < world.ChunkWidth; x++ {
		for z := 0; z < world.ChunkDepth; z++ {
			n := g.sampler.Sample(float64(x+row)*g.scale, float64(z+col)*g.scale)
			surface := SurfaceHeight(n)
			for y := 0; y < world.ChunkHeight; y++ {
				if y < surface {
					grid[x][y][z] = world.NewBlock(world.Grass)
				} else {
					grid[x][y][z] = world.NewBlock(world.Air)
				}
			}
		}
	}
	return grid
}
