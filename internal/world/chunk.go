package world

// Chunk extents in blocks.
const (
	ChunkWidth  = 16
	ChunkHeight = 30
	ChunkDepth  = 16
)

// BlockGrid is the dense block storage of one chunk, indexed [x][y][z].
type BlockGrid [ChunkWidth][ChunkHeight][ChunkDepth]Block

// In reports whether a local coordinate lies inside the chunk extents.
func (g *BlockGrid) In(x, y, z int) bool {
	return x >= 0 && x < ChunkWidth && y >= 0 && y < ChunkHeight && z >= 0 && z < ChunkDepth
}

// At returns the block at a local coordinate, or an Air block when the
// coordinate is outside the chunk extents.
func (g *BlockGrid) At(x, y, z int) Block {
	if !g.In(x, y, z) {
		return Block{}
	}
	return g[x][y][z]
}

// Mesh is the opaque GPU geometry handle owned by a chunk. The world
// never inspects it beyond its element count; the rendering
// collaborator produces and draws it.
type Mesh interface {
	Elements() int32
}

// Chunk is one cell of the world lattice: its generated blocks and the
// mesh built from them. Both are written once during world assembly
// and immutable afterwards.
type Chunk struct {
	Blocks *BlockGrid
	Mesh   Mesh
}
