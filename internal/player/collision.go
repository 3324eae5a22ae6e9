package player

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

// Direction identifies a horizontal collision probe slot.
type Direction uint8

const (
	DirRight Direction = iota // toward the z-minus neighbor block
	DirLeft
	DirFront
	DirBack
)

// probeFunc inspects the blocks on one side of the player and reports
// whether the pending displacement must be rejected outright.
type probeFunc func(c *Controller, grid *world.Grid, move mgl32.Vec3) (bool, error)

// probes is the collision coverage table. Only the right-hand probe is
// implemented; the other three directions are open slots so coverage
// can grow without touching the update loop.
var probes = map[Direction]probeFunc{
	DirRight: probeRight,
}

// probeRight rejects z-negative motion when the player presses against
// the block column one cell to its right. Both the feet-level and
// head-level blocks are probed; across a chunk boundary the right
// neighbor chunk supplies the mirrored column.
func probeRight(c *Controller, grid *world.Grid, move mgl32.Vec3) (bool, error) {
	if move.Z() >= -motionEpsilon || c.localPos.Z() >= collideThreshold {
		return false, nil
	}
	ly := c.worldPos[1]
	if ly-1 < 0 || ly >= world.ChunkHeight {
		return false, nil
	}
	i, err := world.ChunkIndexAt(c.worldPos[0], c.worldPos[2])
	if err != nil {
		return false, err
	}
	cur, err := grid.Chunk(i)
	if err != nil {
		return false, err
	}
	lx := c.worldPos[0] % world.ChunkWidth
	lz := c.worldPos[2] % world.ChunkDepth

	var feet, head world.Block
	if lz-1 < 0 {
		ri, ok := world.NeighborIndex(i, world.Right)
		if !ok {
			return false, fmt.Errorf("player: collision probe crosses the world edge at chunk %d", i)
		}
		rc, err := grid.Chunk(ri)
		if err != nil {
			return false, err
		}
		feet = rc.Blocks[lx][ly-1][world.ChunkDepth-1]
		head = rc.Blocks[lx][ly][world.ChunkDepth-1]
	} else {
		feet = cur.Blocks[lx][ly-1][lz-1]
		head = cur.Blocks[lx][ly][lz-1]
	}
	return feet.Solid || head.Solid, nil
}
