package block

import (
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// Item — предмет в руке действующего лица. Ядро его не интерпретирует,
// nil означает пустую руку.
type Item interface{}

// Entity — источник действия. nil означает анонимное действие мира.
type Entity interface{}

// Behaviour определяет хуки, которые вызывает симуляция мира.
// Каждый хук может менять мир (но не дескриптор) и возвращает true,
// если что-то изменилось: по этому флагу вызывающий решает, оповещать ли
// соседей, перерисовывать и сохранять.
type Behaviour interface {
	// OnInteract вызывается при использовании блока (правый клик).
	// hit — точка попадания внутри ячейки, каждая компонента в [0,1].
	OnInteract(pos Position, item Item, face cube.Face, hit mgl64.Vec3, source Entity) bool

	// OnStartBreak вызывается в начале разрушения, до удаления блока
	OnStartBreak(pos Position, item Item, face cube.Face, hit mgl64.Vec3, source Entity) bool

	// OnBreak вызывается по завершении разрушения
	OnBreak(pos Position, item Item, source Entity) bool

	// OnNeighbourUpdate вызывается, когда сменился тип соседней позиции
	OnNeighbourUpdate(pos, neighbour Position) bool

	// OnRandomUpdate вызывается планировщиком тиков для случайных позиций
	OnRandomUpdate(pos Position) bool
}

// OnInteract по умолчанию ничего не делает
func (b Base) OnInteract(Position, Item, cube.Face, mgl64.Vec3, Entity) bool {
	return false
}

// OnStartBreak по умолчанию ничего не делает
func (b Base) OnStartBreak(Position, Item, cube.Face, mgl64.Vec3, Entity) bool {
	return false
}

// OnBreak по умолчанию заменяет блок каноническим воздухом регистра мира.
// Изменение происходит всегда, поэтому результат — true.
func (b Base) OnBreak(pos Position, _ Item, _ Entity) bool {
	pos.SetType(pos.World().Registry().Air())
	return true
}

// OnNeighbourUpdate по умолчанию ничего не делает
func (b Base) OnNeighbourUpdate(Position, Position) bool {
	return false
}

// OnRandomUpdate по умолчанию ничего не делает
func (b Base) OnRandomUpdate(Position) bool {
	return false
}
