package implementations

import (
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/world/block"
)

const fenceOffset = 0.375

var horizontalFaces = []cube.Face{cube.FaceNorth, cube.FaceSouth, cube.FaceWest, cube.FaceEast}

// Fence описывает забор. Локальный бокс задаёт столб высотой 1.5; в мире бокс
// растягивается к соседним заборам и непрозрачным твёрдым блокам.
type Fence struct {
	block.Base
}

func NewFence() *Fence {
	post := cube.Box(fenceOffset, 0, fenceOffset, 1-fenceOffset, 1.5, 1-fenceOffset)
	return &Fence{Base: block.NewBase(block.Properties{
		ID:              FenceID,
		UniqueName:      "fence",
		TranslationKey:  "tile.fence.name",
		FallbackName:    "Fence",
		Solid:           true,
		Transparent:     true,
		Hardness:        2.0,
		BlastResistance: 15.0,
		BBox:            &post,
	})}
}

// BBoxAt учитывает соединения с соседями. Без мира возвращает столб.
func (f *Fence) BBoxAt(pos block.Position) (cube.BBox, bool) {
	box, _ := f.BBox()
	if pos.World() != nil {
		for _, face := range horizontalFaces {
			if f.connectsTo(pos.Side(face).Type()) {
				box = box.ExtendTowards(face, fenceOffset)
			}
		}
	}
	return box.Translate(pos.Float()), true
}

func (f *Fence) connectsTo(t block.Type) bool {
	return t.ID() == f.ID() || (t.Solid() && !t.Transparent())
}
