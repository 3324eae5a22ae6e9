package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jax-Hax/Minecraft-Clone/internal/camera"
	"github.com/Jax-Hax/Minecraft-Clone/internal/terrain"
	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

// flatWorld builds a full lattice with grass below y=15 everywhere.
func flatWorld(t *testing.T) *world.Grid {
	t.Helper()
	g := world.NewGrid()
	require.NoError(t, g.Generate(terrain.NewGenerator(terrain.Constant(0), 0.1)))
	return g
}

// grounded puts the controller on the flat surface, feet at y=16 so
// the block two below is grass.
func grounded(c *Controller) {
	c.SetPosition([3]int{30, 16, 30}, mgl32.Vec3{0.5, 0.5, 0.5})
}

func TestGravityFallsOverAir(t *testing.T) {
	grid := flatWorld(t)
	cam := &camera.Camera{}
	c := New(10, 1, 30)
	c.SetPosition([3]int{30, 25, 30}, mgl32.Vec3{0.5, 0.5, 0.5})

	before := c.Position()
	require.NoError(t, c.Update(cam, 0.1, grid))
	after := c.Position()

	assert.InDelta(t, before.Y()-3, after.Y(), 1e-4)
	assert.Equal(t, before.X(), after.X())
	assert.Equal(t, before.Z(), after.Z())
	assert.Equal(t, after, cam.Position)
}

func TestGravityStopsOnGround(t *testing.T) {
	grid := flatWorld(t)
	cam := &camera.Camera{}
	c := New(10, 1, 30)
	grounded(c)

	before := c.Position()
	require.NoError(t, c.Update(cam, 0.1, grid))
	assert.Equal(t, before, c.Position())
}

func TestJumpOnGround(t *testing.T) {
	grid := flatWorld(t)
	cam := &camera.Camera{}
	c := New(10, 1, 30)
	grounded(c)

	c.ProcessKey(KeyJump, true)
	before := c.Position()
	require.NoError(t, c.Update(cam, 0.01, grid))
	assert.InDelta(t, before.Y()+1, c.Position().Y(), 1e-4)

	// the jump key is consumed; the next frame it falls back down
	require.NoError(t, c.Update(cam, 0.01, grid))
	assert.Less(t, c.Position().Y(), before.Y()+1)
}

func TestMovementFollowsYaw(t *testing.T) {
	grid := flatWorld(t)
	c := New(10, 1, 30)
	grounded(c)

	// yaw pi/2 looks down +z
	cam := &camera.Camera{Yaw: float32(math.Pi / 2)}
	c.ProcessKey(KeyForward, true)
	before := c.Position()
	require.NoError(t, c.Update(cam, 0.05, grid))
	after := c.Position()

	assert.InDelta(t, before.Z()+0.5, after.Z(), 1e-3)
	assert.InDelta(t, before.X(), after.X(), 1e-3)
}

func TestBoundaryTransferKeepsLocalOffsetBounded(t *testing.T) {
	grid := flatWorld(t)
	c := New(10, 1, 30)
	c.SetPosition([3]int{30, 16, 30}, mgl32.Vec3{0.5, 0.5, 0.9})

	cam := &camera.Camera{Yaw: float32(math.Pi / 2)}
	c.ProcessKey(KeyForward, true)
	before := c.Position()
	require.NoError(t, c.Update(cam, 0.05, grid))

	assert.Equal(t, 31, c.WorldPos()[2])
	local := c.LocalPos()
	assert.GreaterOrEqual(t, local.Z(), float32(-1))
	assert.Less(t, local.Z(), float32(1))
	// position is continuous across the block transfer
	assert.InDelta(t, before.Z()+0.5, c.Position().Z(), 1e-3)
}

func TestRotationConsumedOnce(t *testing.T) {
	grid := flatWorld(t)
	cam := &camera.Camera{}
	c := New(10, 1, 30)
	grounded(c)

	c.ProcessMouse(100, 0)
	require.NoError(t, c.Update(cam, 0.01, grid))
	assert.InDelta(t, float32(1), cam.Yaw, 1e-4)

	// no new mouse input: yaw must hold
	require.NoError(t, c.Update(cam, 0.01, grid))
	assert.InDelta(t, float32(1), cam.Yaw, 1e-4)
}

func TestPitchClamped(t *testing.T) {
	grid := flatWorld(t)
	cam := &camera.Camera{}
	c := New(10, 1, 30)
	grounded(c)

	c.ProcessMouse(0, -1e6)
	require.NoError(t, c.Update(cam, 0.1, grid))
	assert.Less(t, cam.Pitch, float32(math.Pi/2))
	assert.InDelta(t, float32(math.Pi/2), cam.Pitch, 1e-3)

	c.ProcessMouse(0, 1e6)
	require.NoError(t, c.Update(cam, 0.1, grid))
	assert.Greater(t, cam.Pitch, -float32(math.Pi/2))
}

func TestCollisionBlocksAgainstWall(t *testing.T) {
	grid := flatWorld(t)
	c := New(10, 1, 30)
	// feet at surface level: the block one to the right at feet height
	// is solid grass
	c.SetPosition([3]int{30, 15, 30}, mgl32.Vec3{0.5, 0.5, 0.05})

	// yaw -pi/2 looks down -z
	cam := &camera.Camera{Yaw: -float32(math.Pi / 2)}
	c.ProcessKey(KeyForward, true)
	require.NoError(t, c.Update(cam, 0.05, grid))

	assert.Equal(t, float32(0.05), c.LocalPos().Z())
	assert.Equal(t, 30, c.WorldPos()[2])
}

func TestCollisionOnlyNearBoundary(t *testing.T) {
	grid := flatWorld(t)
	c := New(10, 1, 30)
	c.SetPosition([3]int{30, 15, 30}, mgl32.Vec3{0.5, 0.5, 0.5})

	cam := &camera.Camera{Yaw: -float32(math.Pi / 2)}
	c.ProcessKey(KeyForward, true)
	require.NoError(t, c.Update(cam, 0.05, grid))

	assert.InDelta(t, float32(0), c.LocalPos().Z(), 1e-3)
}

func TestCollisionAboveTerrainIgnored(t *testing.T) {
	grid := flatWorld(t)
	c := New(10, 1, 30)
	// well above the surface: nothing to press against
	c.SetPosition([3]int{30, 25, 30}, mgl32.Vec3{0.5, 0.5, 0.05})

	cam := &camera.Camera{Yaw: -float32(math.Pi / 2)}
	c.ProcessKey(KeyForward, true)
	require.NoError(t, c.Update(cam, 0.05, grid))
	assert.Less(t, c.LocalPos().Z(), float32(0.05))
}

func TestCollisionProbeAtWorldEdgeFails(t *testing.T) {
	grid := flatWorld(t)
	c := New(10, 1, 30)
	// z=0 sits in a chunk with no right neighbor
	c.SetPosition([3]int{30, 15, 0}, mgl32.Vec3{0.5, 0.5, 0.05})

	cam := &camera.Camera{Yaw: -float32(math.Pi / 2)}
	c.ProcessKey(KeyForward, true)
	err := c.Update(cam, 0.05, grid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "world edge")
}

func TestUpdateOutsideLatticeFails(t *testing.T) {
	grid := flatWorld(t)
	cam := &camera.Camera{}
	c := New(10, 1, 30)
	c.SetPosition([3]int{300, 16, 30}, mgl32.Vec3{0.5, 0.5, 0.5})

	require.Error(t, c.Update(cam, 0.01, grid))
}
