package world

import (
	"sync"

	"github.com/annel0/voxelcore/internal/config"
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world/block"
)

// Grid реализует простое хранилище мира в памяти: карта позиций в пары (id, meta).
// Незаданные позиции считаются каноническим воздухом регистра.
type Grid struct {
	mu       sync.RWMutex
	registry *block.Registry
	blocks   map[vec.Vec3]block.State
	writes   uint64
}

// NewGrid создаёт пустой мир над замороженным регистром
func NewGrid(reg *block.Registry) *Grid {
	return &Grid{
		registry: reg,
		blocks:   make(map[vec.Vec3]block.State),
	}
}

// Registry возвращает регистр мира
func (g *Grid) Registry() *block.Registry {
	return g.registry
}

func (g *Grid) air() block.State {
	if air := g.registry.Air(); air != nil {
		return air.State()
	}
	return block.State{ID: block.DefaultAirID}
}

// State возвращает пару (id, meta) в позиции
func (g *Grid) State(pos vec.Vec3) block.State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if s, ok := g.blocks[pos]; ok {
		return s
	}
	return g.air()
}

// SetState записывает пару в позицию. Воздух не хранится.
func (g *Grid) SetState(pos vec.Vec3, s block.State) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.writes++
	if s == g.air() {
		delete(g.blocks, pos)
		return
	}
	g.blocks[pos] = s
}

// Position привязывает координаты к этому миру
func (g *Grid) Position(pos vec.Vec3) block.Position {
	return block.NewPosition(g, pos)
}

// Len возвращает число непустых позиций
func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.blocks)
}

// Writes возвращает число вызовов SetState
func (g *Grid) Writes() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.writes
}

// RegistryConfig переводит конфигурацию блоков в ключи регистра
func RegistryConfig(c config.BlocksConfig) block.RegistryConfig {
	return block.RegistryConfig{
		Air:     block.State{ID: block.ID(c.AirID), Meta: block.Meta(c.AirMeta)},
		Unknown: block.State{ID: block.ID(c.UnknownID), Meta: block.Meta(c.UnknownMeta)},
	}
}
