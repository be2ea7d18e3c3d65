package implementations

import (
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"
)

// Биты meta люка: 0-1 сторона петель, 0x4 верхняя половина, 0x8 открыт
const (
	trapdoorTopBit  block.Meta = 0x4
	trapdoorOpenBit block.Meta = 0x8

	trapdoorThickness = 0.1875
)

// Trapdoor описывает люк. Каждая из 16 meta имеет отдельный дескриптор со своим
// боксом; взаимодействие переключает бит открытия.
type Trapdoor struct {
	block.Base
}

// NewTrapdoors создаёт все 16 вариантов люка
func NewTrapdoors() []*Trapdoor {
	out := make([]*Trapdoor, 0, int(block.MaxMeta)+1)
	for m := block.Meta(0); m <= block.MaxMeta; m++ {
		box := trapdoorBox(m)
		out = append(out, &Trapdoor{Base: block.NewBase(block.Properties{
			ID:              TrapdoorID,
			Meta:            m,
			UniqueName:      "trapdoor",
			TranslationKey:  "tile.trapdoor.name",
			FallbackName:    "Trapdoor",
			Solid:           true,
			Transparent:     true,
			Hardness:        3.0,
			BlastResistance: 15.0,
			BBox:            &box,
		})})
	}
	return out
}

// Open сообщает, открыт ли люк
func (t *Trapdoor) Open() bool {
	return t.Meta()&trapdoorOpenBit != 0
}

// Top сообщает, прикреплён ли люк к верхней половине ячейки
func (t *Trapdoor) Top() bool {
	return t.Meta()&trapdoorTopBit != 0
}

// Hinge возвращает сторону, к которой прижат открытый люк
func (t *Trapdoor) Hinge() cube.Face {
	return trapdoorHinge(t.Meta())
}

// OnInteract открывает или закрывает люк заменой дескриптора в позиции
func (t *Trapdoor) OnInteract(pos block.Position, _ block.Item, _ cube.Face, _ mgl64.Vec3, _ block.Entity) bool {
	toggled, err := pos.World().Registry().Resolve(t.ID(), t.Meta()^trapdoorOpenBit)
	if err != nil {
		return false
	}
	pos.SetType(toggled)
	return true
}

func trapdoorHinge(m block.Meta) cube.Face {
	return cube.FaceNorth + cube.Face(m&0x3)
}

func trapdoorBox(m block.Meta) cube.BBox {
	const t = trapdoorThickness
	if m&trapdoorOpenBit == 0 {
		if m&trapdoorTopBit != 0 {
			return cube.Box(0, 1-t, 0, 1, 1, 1)
		}
		return cube.Box(0, 0, 0, 1, t, 1)
	}
	switch trapdoorHinge(m) {
	case cube.FaceNorth:
		return cube.Box(0, 0, 0, 1, 1, t)
	case cube.FaceSouth:
		return cube.Box(0, 0, 1-t, 1, 1, 1)
	case cube.FaceWest:
		return cube.Box(0, 0, 0, t, 1, 1)
	default:
		return cube.Box(1-t, 0, 0, 1, 1, 1)
	}
}
