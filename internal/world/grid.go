package world

import "fmt"

// Lattice extents in chunks.
const (
	GridSize   = 16
	ChunkCount = GridSize * GridSize
)

// Direction identifies one of the four lateral neighbors of a chunk.
type Direction uint8

const (
	Front Direction = iota // x minus, chunk index i-16
	Back                   // x plus, chunk index i+16
	Left                   // z plus, chunk index i+1
	Right                  // z minus, chunk index i-1
)

func (d Direction) String() string {
	switch d {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// WorldOffset returns the world-space block offset of chunk slot i:
// row along x, col along z.
func WorldOffset(i int) (row, col int) {
	return (i / GridSize) * ChunkWidth, (i % GridSize) * ChunkDepth
}

// NeighborIndex resolves the chunk slot adjacent to i in the given
// direction. The second result is false when the neighbor would fall
// off the lattice; the arithmetic never wraps.
func NeighborIndex(i int, dir Direction) (int, bool) {
	switch dir {
	case Front:
		if i-GridSize < 0 {
			return 0, false
		}
		return i - GridSize, true
	case Back:
		if i+GridSize >= ChunkCount {
			return 0, false
		}
		return i + GridSize, true
	case Left:
		if (i+1)%GridSize == 0 {
			return 0, false
		}
		return i + 1, true
	case Right:
		if i%GridSize == 0 {
			return 0, false
		}
		return i - 1, true
	}
	return 0, false
}

// ChunkIndexAt maps a world block coordinate to the chunk slot that
// owns it. Coordinates outside the lattice are an error, never a wrap.
func ChunkIndexAt(wx, wz int) (int, error) {
	if wx < 0 || wx >= GridSize*ChunkWidth || wz < 0 || wz >= GridSize*ChunkDepth {
		return 0, fmt.Errorf("world: block position (%d, %d) outside the chunk lattice", wx, wz)
	}
	return wz/ChunkDepth + GridSize*(wx/ChunkWidth), nil
}

// Neighbors carries the lateral neighbor grids needed to mesh one
// chunk. A nil entry means the chunk sits at the world edge on that
// side.
type Neighbors struct {
	XNeg *BlockGrid // front neighbor
	XPos *BlockGrid // back neighbor
	ZPos *BlockGrid // left neighbor
	ZNeg *BlockGrid // right neighbor
}

// Generator produces the dense block grid of a chunk from its world
// offset in block units.
type Generator interface {
	Generate(row, col int) *BlockGrid
}

// BuildFunc builds the mesh of chunk slot i from its blocks and its
// lateral neighbor grids.
type BuildFunc func(i int, blocks *BlockGrid, nb Neighbors) (Mesh, error)

// Grid owns the fixed 16x16 chunk lattice. All chunk data is written
// during Generate and BuildMeshes; afterwards the grid is read-only.
type Grid struct {
	chunks [ChunkCount]Chunk
}

func NewGrid() *Grid {
	return &Grid{}
}

// Generate fills every chunk slot with blocks. Meshing is a separate
// pass because a chunk's mesh needs the already generated grids of up
// to four neighbors.
func (g *Grid) Generate(gen Generator) error {
	for i := range g.chunks {
		row, col := WorldOffset(i)
		g.chunks[i].Blocks = gen.Generate(row, col)
	}
	for i := range g.chunks {
		if g.chunks[i].Blocks == nil {
			return fmt.Errorf("world: generation left chunk %d empty", i)
		}
	}
	return nil
}

// BuildMeshes builds one mesh per chunk, handing each builder call the
// chunk's lateral neighbor grids. Generate must have completed first.
func (g *Grid) BuildMeshes(build BuildFunc) error {
	for i := range g.chunks {
		if g.chunks[i].Blocks == nil {
			return fmt.Errorf("world: chunk %d has no blocks; generate before meshing", i)
		}
	}
	for i := range g.chunks {
		m, err := build(i, g.chunks[i].Blocks, g.neighbors(i))
		if err != nil {
			return fmt.Errorf("world: build mesh for chunk %d: %w", i, err)
		}
		g.chunks[i].Mesh = m
	}
	return nil
}

func (g *Grid) neighbors(i int) Neighbors {
	var nb Neighbors
	if j, ok := NeighborIndex(i, Front); ok {
		nb.XNeg = g.chunks[j].Blocks
	}
	if j, ok := NeighborIndex(i, Back); ok {
		nb.XPos = g.chunks[j].Blocks
	}
	if j, ok := NeighborIndex(i, Left); ok {
		nb.ZPos = g.chunks[j].Blocks
	}
	if j, ok := NeighborIndex(i, Right); ok {
		nb.ZNeg = g.chunks[j].Blocks
	}
	return nb
}

// Chunk returns the chunk at slot i, bounds-checked.
func (g *Grid) Chunk(i int) (*Chunk, error) {
	if i < 0 || i >= ChunkCount {
		return nil, fmt.Errorf("world: chunk index %d out of range", i)
	}
	return &g.chunks[i], nil
}

// Meshes returns every chunk mesh in slot order for the draw pass.
func (g *Grid) Meshes() []Mesh {
	meshes := make([]Mesh, 0, ChunkCount)
	for i := range g.chunks {
		if g.chunks[i].Mesh != nil {
			meshes = append(meshes, g.chunks[i].Mesh)
		}
	}
	return meshes
}
