// Package mesh builds renderable triangle geometry from chunk block
// grids, culling every face whose neighbor occludes it.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

const (
	verticesPerFace = 4
	indicesPerFace  = 6
)

// Vertex is one corner of an emitted block face.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// Data is the CPU-side geometry of one chunk, ready for upload.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
}

// FaceCount returns the number of emitted faces.
func (d *Data) FaceCount() int {
	return len(d.Indices) / indicesPerFace
}

// faceCorners holds the four corner offsets of each face relative to
// the block center, ordered to match SpriteUV and the index winding.
var faceCorners = [6][verticesPerFace]mgl32.Vec3{
	FaceTop:    {{-0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}},
	FaceBottom: {{0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}},
	FaceLeft:   {{-0.5, -0.5, 0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, 0.5}},
	FaceRight:  {{0.5, -0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, -0.5}},
	FaceFront:  {{0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}},
	FaceBack:   {{-0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}},
}

var allFaces = [6]Face{FaceTop, FaceBottom, FaceLeft, FaceRight, FaceFront, FaceBack}

// BuildChunk turns one chunk's block grid into triangle geometry. The
// chunk's world offset is baked into the vertex positions so the draw
// pass needs no per-chunk transform. Neighbor grids supply boundary
// occlusion lookups; where a neighbor is missing (world edge) the
// boundary face is treated as occluded and suppressed.
func BuildChunk(blocks *world.BlockGrid, xOffset, zOffset float32, nb world.Neighbors) (*Data, error) {
	d := &Data{}
	for x := 0; x < world.ChunkWidth; x++ {
		for y := 0; y < world.ChunkHeight; y++ {
			for z := 0; z < world.ChunkDepth; z++ {
				b := blocks[x][y][z]
				if b.Type == world.Air {
					continue
				}
				pos := mgl32.Vec3{float32(x) + xOffset, float32(y), float32(z) + zOffset}
				grassAbove := y+1 < world.ChunkHeight && blocks[x][y+1][z].Type == world.Grass

				for _, f := range allFaces {
					neighbor, ok := resolveNeighbor(blocks, nb, x, y, z, f)
					if !ok || neighbor.Type != world.Air {
						continue
					}
					// grass-above only drives lateral sprite choice.
					above := grassAbove
					if f == FaceTop || f == FaceBottom {
						above = false
					}
					if err := d.emitFace(f, b.Type, pos, above); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return d, nil
}

// resolveNeighbor reads the block on the far side of a face. Inside
// the chunk it reads directly; across a lateral boundary it reads the
// mirrored column of the neighbor grid. The second result is false
// when no block exists there (vertical world bounds, or a lateral
// boundary with no neighbor chunk).
func resolveNeighbor(blocks *world.BlockGrid, nb world.Neighbors, x, y, z int, f Face) (world.Block, bool) {
	switch f {
	case FaceTop:
		if y+1 < world.ChunkHeight {
			return blocks[x][y+1][z], true
		}
	case FaceBottom:
		if y > 0 {
			return blocks[x][y-1][z], true
		}
	case FaceLeft:
		if x > 0 {
			return blocks[x-1][y][z], true
		}
		if nb.XNeg != nil {
			return nb.XNeg[world.ChunkWidth-1][y][z], true
		}
	case FaceRight:
		if x+1 < world.ChunkWidth {
			return blocks[x+1][y][z], true
		}
		if nb.XPos != nil {
			return nb.XPos[0][y][z], true
		}
	case FaceFront:
		if z+1 < world.ChunkDepth {
			return blocks[x][y][z+1], true
		}
		if nb.ZPos != nil {
			return nb.ZPos[x][y][0], true
		}
	case FaceBack:
		if z > 0 {
			return blocks[x][y][z-1], true
		}
		if nb.ZNeg != nil {
			return nb.ZNeg[x][y][world.ChunkDepth-1], true
		}
	}
	return world.Block{}, false
}

func (d *Data) emitFace(f Face, t world.BlockType, pos mgl32.Vec3, grassAbove bool) error {
	uvs, err := FaceUVs(t, f, grassAbove)
	if err != nil {
		return err
	}
	base := uint32(len(d.Vertices))
	for i := 0; i < verticesPerFace; i++ {
		d.Vertices = append(d.Vertices, Vertex{
			Position: pos.Add(faceCorners[f][i]),
			UV:       uvs[i],
		})
	}
	// Two triangles per face, wound to front-face outward on every
	// side.
	d.Indices = append(d.Indices, base+3, base+2, base, base+1, base+2, base+3)
	return nil
}
