package implementations

import (
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/world/block"
)

// Dirt описывает землю, на которую распространяется трава
type Dirt struct {
	block.Base
}

func NewDirt() *Dirt {
	box := cube.FullBox
	return &Dirt{Base: block.NewBase(block.Properties{
		ID:              DirtID,
		UniqueName:      "dirt",
		TranslationKey:  "tile.dirt.name",
		FallbackName:    "Dirt",
		Solid:           true,
		Hardness:        0.5,
		BlastResistance: 2.5,
		BBox:            &box,
	})}
}
