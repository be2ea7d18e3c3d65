package implementations

import (
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/world/block"
)

// Stone описывает обычный твёрдый блок. Всё поведение берёт из block.Base
type Stone struct {
	block.Base
}

// NewStone создаёт дескриптор камня
func NewStone() *Stone {
	box := cube.FullBox
	return &Stone{Base: block.NewBase(block.Properties{
		ID:              StoneID,
		UniqueName:      "stone",
		TranslationKey:  "tile.stone.name",
		FallbackName:    "Stone",
		Solid:           true,
		Hardness:        1.5,
		BlastResistance: 6.0,
		BBox:            &box,
	})}
}
