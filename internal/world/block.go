package world

import "fmt"

// BlockType identifies the material of a single voxel.
type BlockType uint8

const (
	Air BlockType = iota
	Water
	Grass
	Stone
)

func (t BlockType) String() string {
	switch t {
	case Air:
		return "air"
	case Water:
		return "water"
	case Grass:
		return "grass"
	case Stone:
		return "stone"
	}
	return fmt.Sprintf("blocktype(%d)", uint8(t))
}

// Block is one voxel cell. Solid is derived from the type when the
// block is constructed; Air is never solid. Water and Stone are
// placeholders in the current rule set and count as non-solid.
type Block struct {
	Type  BlockType
	Solid bool
}

// NewBlock builds a block with its solidity derived from the type.
func NewBlock(t BlockType) Block {
	return Block{Type: t, Solid: t == Grass}
}
