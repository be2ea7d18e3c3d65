package implementations

import (
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/world/block"
)

// Grass описывает траву. На случайном тике накрытая непрозрачным блоком трава
// превращается в землю, а открытая распространяется на соседнюю землю.
type Grass struct {
	block.Base
}

func NewGrass() *Grass {
	box := cube.FullBox
	return &Grass{Base: block.NewBase(block.Properties{
		ID:              GrassID,
		UniqueName:      "grass",
		TranslationKey:  "tile.grass.name",
		FallbackName:    "Grass",
		Solid:           true,
		Hardness:        0.6,
		BlastResistance: 3.0,
		BBox:            &box,
	})}
}

// OnRandomUpdate обновляет траву: увядание или распространение
func (g *Grass) OnRandomUpdate(pos block.Position) bool {
	dirt, err := pos.World().Registry().Resolve(DirtID, 0)
	if err != nil {
		return false
	}

	if !pos.Side(cube.FaceUp).Type().Transparent() {
		pos.SetType(dirt)
		return true
	}

	// Распространяемся на первую землю, над которой есть свет
	for _, face := range horizontalFaces {
		side := pos.Side(face)
		if side.Type().ID() != DirtID {
			continue
		}
		if side.Side(cube.FaceUp).Type().Transparent() {
			side.SetType(g)
			return true
		}
	}
	return false
}
