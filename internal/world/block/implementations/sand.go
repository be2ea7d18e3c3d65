package implementations

import (
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/world/block"
)

// Sand описывает песок, падающий в любую нетвёрдую ячейку под собой
type Sand struct {
	block.Base
}

func NewSand() *Sand {
	box := cube.FullBox
	return &Sand{Base: block.NewBase(block.Properties{
		ID:              SandID,
		UniqueName:      "sand",
		TranslationKey:  "tile.sand.name",
		FallbackName:    "Sand",
		Solid:           true,
		Hardness:        0.5,
		BlastResistance: 2.5,
		BBox:            &box,
	})}
}

// OnNeighbourUpdate сдвигает песок на одну ячейку вниз, если под ним пусто.
// Дальнейшее падение продолжает каскад обновлений соседей.
func (s *Sand) OnNeighbourUpdate(pos, _ block.Position) bool {
	below := pos.Side(cube.FaceDown)
	if below.Type().Solid() {
		return false
	}
	below.SetType(s)
	pos.SetType(pos.World().Registry().Air())
	return true
}
