package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

func TestSpriteUVInUnitSquare(t *testing.T) {
	for i := 0; i < AtlasGridSize*AtlasGridSize; i++ {
		uvs := SpriteUV(i)
		for c, uv := range uvs {
			assert.GreaterOrEqual(t, uv.X(), float32(0), "sprite %d corner %d", i, c)
			assert.LessOrEqual(t, uv.X(), float32(1), "sprite %d corner %d", i, c)
			assert.GreaterOrEqual(t, uv.Y(), float32(0), "sprite %d corner %d", i, c)
			assert.LessOrEqual(t, uv.Y(), float32(1), "sprite %d corner %d", i, c)
		}
	}
}

func TestSpriteUVCorners(t *testing.T) {
	uvs := SpriteUV(2)
	const s = 1.0 / 16
	assert.Equal(t, float32(2*s), uvs[0].X())
	assert.Equal(t, float32(0), uvs[0].Y())
	assert.Equal(t, float32(3*s), uvs[1].X())
	assert.Equal(t, float32(s), uvs[1].Y())

	// second row wraps
	uvs = SpriteUV(17)
	assert.Equal(t, float32(s), uvs[0].X())
	assert.Equal(t, float32(s), uvs[0].Y())
}

func TestGrassFaceSprites(t *testing.T) {
	top, err := FaceUVs(world.Grass, FaceTop, false)
	require.NoError(t, err)
	assert.Equal(t, SpriteUV(3), top)

	bottom, err := FaceUVs(world.Grass, FaceBottom, false)
	require.NoError(t, err)
	assert.Equal(t, SpriteUV(1), bottom)

	for _, f := range []Face{FaceLeft, FaceRight, FaceFront, FaceBack} {
		side, err := FaceUVs(world.Grass, f, false)
		require.NoError(t, err)
		assert.Equal(t, SpriteUV(2), side, "exposed %s side", f)

		buried, err := FaceUVs(world.Grass, f, true)
		require.NoError(t, err)
		assert.Equal(t, SpriteUV(1), buried, "covered %s side", f)
	}

	// grassAbove only affects lateral faces
	top, err = FaceUVs(world.Grass, FaceTop, true)
	require.NoError(t, err)
	assert.Equal(t, SpriteUV(3), top)
}

func TestUnmappedBlockTypes(t *testing.T) {
	for _, bt := range []world.BlockType{world.Air, world.Water, world.Stone} {
		_, err := FaceUVs(bt, FaceTop, false)
		require.Error(t, err, "%s", bt)
		var ube *UnsupportedBlockError
		require.True(t, errors.As(err, &ube), "%s", bt)
		assert.Equal(t, bt, ube.Type)
		assert.Equal(t, FaceTop, ube.Face)
	}
}
