// Package player integrates input into first-person movement against
// the world grid: voxel collision, gravity and camera orientation.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jax-Hax/Minecraft-Clone/internal/camera"
	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

const (
	// collideThreshold is how close the local offset must be to the
	// probed boundary before motion toward it can be rejected.
	collideThreshold = 0.1
	// motionEpsilon filters out displacement components too small to
	// push the player into a wall.
	motionEpsilon = 0.01

	// safeHalfPi keeps the pitch just under +-90 degrees so the view
	// matrix never degenerates.
	safeHalfPi = float32(math.Pi/2 - 0.0001)
)

// Key identifies a movement input consumed by the controller. The
// windowing layer maps physical keys onto these.
type Key uint8

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyJump
)

// Controller is the stateful first-person actor. Each frame it
// consumes accumulated input, resolves collision and gravity against
// the (read-only) world grid, and publishes the camera position as
// worldPos + localPos.
type Controller struct {
	amountForward  float32
	amountBackward float32
	amountLeft     float32
	amountRight    float32

	rotateH float32
	rotateV float32

	speed       float32
	sensitivity float32
	fallSpeed   float32

	jump       bool
	jumpAmount float32

	// localPos is the fractional in-block offset, each axis kept in
	// [-1, 1); worldPos is the integer block coordinate. Splitting the
	// two keeps float precision bounded and block indexing trivial.
	localPos mgl32.Vec3
	worldPos [3]int
}

func New(speed, sensitivity, fallSpeed float32) *Controller {
	return &Controller{
		speed:       speed,
		sensitivity: sensitivity,
		fallSpeed:   fallSpeed,
		localPos:    mgl32.Vec3{0.5, 0.5, 0},
		worldPos:    [3]int{30, 29, 30},
	}
}

// SetPosition moves the player to an explicit block coordinate with a
// fractional in-block offset.
func (c *Controller) SetPosition(worldPos [3]int, localPos mgl32.Vec3) {
	c.worldPos = worldPos
	c.localPos = localPos
}

// WorldPos returns the integer block coordinate.
func (c *Controller) WorldPos() [3]int {
	return c.worldPos
}

// LocalPos returns the fractional in-block offset.
func (c *Controller) LocalPos() mgl32.Vec3 {
	return c.localPos
}

// Position returns the continuous player position, worldPos + localPos.
func (c *Controller) Position() mgl32.Vec3 {
	return mgl32.Vec3{
		c.localPos.X() + float32(c.worldPos[0]),
		c.localPos.Y() + float32(c.worldPos[1]),
		c.localPos.Z() + float32(c.worldPos[2]),
	}
}

// ProcessKey records a key-state transition.
func (c *Controller) ProcessKey(k Key, pressed bool) {
	amount := float32(0)
	if pressed {
		amount = 1
	}
	switch k {
	case KeyForward:
		c.amountForward = amount
	case KeyBackward:
		c.amountBackward = amount
	case KeyLeft:
		c.amountLeft = amount
	case KeyRight:
		c.amountRight = amount
	case KeyJump:
		if pressed {
			c.jump = true
			c.jumpAmount = 1
		}
	}
}

// ProcessMouse accumulates raw mouse deltas captured since the last
// update.
func (c *Controller) ProcessMouse(dx, dy float64) {
	c.rotateH += float32(dx)
	c.rotateV += float32(dy)
}

// Update advances the player by dt seconds and publishes the camera
// state. The grid is only read, never mutated. Out-of-lattice chunk
// lookups surface as errors; the frame loop treats them as fatal.
func (c *Controller) Update(cam *camera.Camera, dt float32, grid *world.Grid) error {
	// Movement basis from the camera yaw only; pitch never leaks into
	// horizontal movement.
	sy, cy := math.Sincos(float64(cam.Yaw))
	forward := mgl32.Vec3{float32(cy), 0, float32(sy)}.Normalize()
	right := mgl32.Vec3{float32(-sy), 0, float32(cy)}.Normalize()

	forwardAm := forward.Mul((c.amountForward - c.amountBackward) * c.speed * dt)
	rightAm := right.Mul((c.amountRight - c.amountLeft) * c.speed * dt)
	move := forwardAm.Add(rightAm)

	blocked := false
	for _, probe := range probes {
		hit, err := probe(c, grid, move)
		if err != nil {
			return err
		}
		if hit {
			blocked = true
		}
	}
	if !blocked {
		c.localPos = c.localPos.Add(move)
	}
	c.normalize(0)
	c.normalize(2)

	// Gravity: fall while the block two cells below the feet is air.
	falling, err := c.standingOverAir(grid)
	if err != nil {
		return err
	}
	if falling {
		c.localPos[1] -= c.fallSpeed * dt
		c.normalize(1)
	} else if c.jump {
		c.localPos[1] += c.jumpAmount
		c.normalize(1)
	}
	c.jump = false

	// Rotation. The accumulated deltas are consumed even when no mouse
	// event arrived this frame, otherwise stale rotation reapplies.
	cam.Yaw += c.rotateH * c.sensitivity * dt
	cam.Pitch -= c.rotateV * c.sensitivity * dt
	c.rotateH = 0
	c.rotateV = 0
	if cam.Pitch < -safeHalfPi {
		cam.Pitch = -safeHalfPi
	} else if cam.Pitch > safeHalfPi {
		cam.Pitch = safeHalfPi
	}

	cam.Position = c.Position()
	return nil
}

// normalize transfers whole-block overflow of one local axis into the
// integer world coordinate, keeping the local offset in [-1, 1).
func (c *Controller) normalize(axis int) {
	for c.localPos[axis] >= 1 {
		c.localPos[axis]--
		c.worldPos[axis]++
	}
	for c.localPos[axis] < -1 {
		c.localPos[axis]++
		c.worldPos[axis]--
	}
}

// standingOverAir reads the block two cells below the player's feet in
// the current chunk. Below the grid floor nothing can be fallen
// through; above the ceiling there is nothing to stand on.
func (c *Controller) standingOverAir(grid *world.Grid) (bool, error) {
	i, err := world.ChunkIndexAt(c.worldPos[0], c.worldPos[2])
	if err != nil {
		return false, err
	}
	cur, err := grid.Chunk(i)
	if err != nil {
		return false, err
	}
	lx := c.worldPos[0] % world.ChunkWidth
	ly := c.worldPos[1] - 2
	lz := c.worldPos[2] % world.ChunkDepth
	if ly < 0 {
		return false, nil
	}
	if ly >= world.ChunkHeight {
		return true, nil
	}
	return cur.Blocks[lx][ly][lz].Type == world.Air, nil
}
