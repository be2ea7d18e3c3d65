package implementations

import "github.com/annel0/voxelcore/internal/world/block"

// Идентификаторы семейств эталонного каталога
const (
	AirID      block.ID = block.DefaultAirID
	StoneID    block.ID = 1
	GrassID    block.ID = 2
	DirtID     block.ID = 3
	SandID     block.ID = 4
	FenceID    block.ID = 85
	TrapdoorID block.ID = 96
)
