package block

import (
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/vec"
)

// World определяет интерфейс хранилища мира, через который блоки читают
// и меняют состояние позиций. Хранилище держит только пары (id, meta);
// дескрипторы разрешаются через его регистр.
type World interface {
	// Registry возвращает замороженный регистр типов этого мира
	Registry() *Registry

	// State возвращает пару (id, meta) в позиции
	State(pos vec.Vec3) State

	// SetState записывает пару (id, meta) в позицию
	SetState(pos vec.Vec3, s State)
}

// Position связывает координаты блока с миром, которому они принадлежат.
// Значение передаётся в хуки по значению и не хранится в дескрипторах.
type Position struct {
	vec.Vec3
	world World
}

// NewPosition привязывает координаты к миру
func NewPosition(w World, p vec.Vec3) Position {
	return Position{Vec3: p, world: w}
}

// At сокращает NewPosition до отдельных координат
func At(w World, x, y, z int) Position {
	return NewPosition(w, vec.Vec3{X: x, Y: y, Z: z})
}

// World возвращает мир позиции. Может быть nil для позиций вне мира
// (например, при запросе статической геометрии).
func (p Position) World() World {
	return p.world
}

// Coords возвращает голые координаты
func (p Position) Coords() vec.Vec3 {
	return p.Vec3
}

// Side возвращает соседнюю позицию через грань
func (p Position) Side(f cube.Face) Position {
	return Position{Vec3: p.Vec3.Add(f.Offset()), world: p.world}
}

// Neighbours возвращает шесть соседей в порядке cube.Faces()
func (p Position) Neighbours() []Position {
	faces := cube.Faces()
	out := make([]Position, 0, len(faces))
	for _, f := range faces {
		out = append(out, p.Side(f))
	}
	return out
}

// State возвращает пару (id, meta), хранящуюся в позиции
func (p Position) State() State {
	return p.world.State(p.Vec3)
}

// Type разрешает текущий тип позиции. Незарегистрированная пара
// заменяется Registry.Unknown().
func (p Position) Type() Type {
	return p.world.Registry().ResolveOrUnknown(p.world.State(p.Vec3))
}

// SetType записывает тип в позицию
func (p Position) SetType(t Type) {
	p.world.SetState(p.Vec3, t.base().State())
}
