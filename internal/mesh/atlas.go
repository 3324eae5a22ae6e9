package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

// Face identifies one of the six cube faces of a block.
type Face uint8

const (
	FaceTop Face = iota
	FaceBottom
	FaceLeft  // x minus
	FaceRight // x plus
	FaceFront // z plus
	FaceBack  // z minus
)

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	}
	return fmt.Sprintf("face(%d)", uint8(f))
}

// AtlasGridSize is the number of equal square sprites per atlas row
// and column.
const AtlasGridSize = 16

const spriteSize = 1.0 / float32(AtlasGridSize)

// Sprite slots reserved for grass terrain.
const (
	spriteDirt      = 1
	spriteGrassSide = 2
	spriteGrassTop  = 3
)

// UnsupportedBlockError reports a block type with no face-sprite
// mapping. Meshing stops rather than silently mis-rendering such a
// block.
type UnsupportedBlockError struct {
	Type world.BlockType
	Face Face
}

func (e *UnsupportedBlockError) Error() string {
	return fmt.Sprintf("mesh: no atlas mapping for %s block (%s face)", e.Type, e.Face)
}

// SpriteUV returns the four UV corners of an atlas sprite, in the
// winding order of the per-face vertex corner templates.
func SpriteUV(index int) [4]mgl32.Vec2 {
	row := index / AtlasGridSize
	col := index % AtlasGridSize
	minX := float32(col) * spriteSize
	maxX := minX + spriteSize
	minY := float32(row) * spriteSize
	maxY := minY + spriteSize
	return [4]mgl32.Vec2{
		{minX, minY},
		{maxX, maxY},
		{minX, maxY},
		{maxX, minY},
	}
}

// FaceUVs maps block type and face to the sprite UV corners of the
// emitted face. grassAbove selects between the bare-dirt and
// side-grown-grass sprites on lateral faces; top and bottom ignore it.
// The switch is exhaustive over BlockType: Water and Stone are
// deliberately unsupported until the atlas reserves slots for them,
// and Air never reaches the mapper.
func FaceUVs(t world.BlockType, f Face, grassAbove bool) ([4]mgl32.Vec2, error) {
	switch t {
	case world.Grass:
		switch f {
		case FaceTop:
			return SpriteUV(spriteGrassTop), nil
		case FaceBottom:
			return SpriteUV(spriteDirt), nil
		case FaceLeft, FaceRight, FaceFront, FaceBack:
			if grassAbove {
				return SpriteUV(spriteDirt), nil
			}
			return SpriteUV(spriteGrassSide), nil
		}
	case world.Air, world.Water, world.Stone:
	}
	return [4]mgl32.Vec2{}, &UnsupportedBlockError{Type: t, Face: f}
}
