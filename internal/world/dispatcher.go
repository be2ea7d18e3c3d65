package world

import (
	"math"

	"github.com/annel0/voxelcore/internal/config"
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/logging"
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"
)

type hook uint8

const (
	hookInteract hook = iota
	hookStartBreak
	hookBreak
	hookNeighbourUpdate
	hookRandomUpdate
)

func (h hook) String() string {
	switch h {
	case hookInteract:
		return "interact"
	case hookStartBreak:
		return "start_break"
	case hookBreak:
		return "break"
	case hookNeighbourUpdate:
		return "neighbour_update"
	case hookRandomUpdate:
		return "random_update"
	default:
		return "unknown"
	}
}

// neighbourUpdate описывает отложенный вызов OnNeighbourUpdate для target,
// вызванный изменением в source
type neighbourUpdate struct {
	target vec.Vec3
	source vec.Vec3
}

// Dispatcher разрешает тип блока в позиции и вызывает его хуки.
// Если хук сообщил об изменении, диспетчер оповещает шесть соседей и
// продолжает каскад от каждого изменившегося соседа в пределах лимита.
//
// Диспетчер не синхронизирует вызовы: тик мира должен выполняться
// в одном потоке или сериализовать изменения одного региона сам.
type Dispatcher struct {
	world   block.World
	cfg     config.DispatchConfig
	metrics *Metrics
	log     *logging.Logger
}

// NewDispatcher создаёт диспетчер для мира. metrics может быть nil.
func NewDispatcher(w block.World, cfg config.DispatchConfig, metrics *Metrics) *Dispatcher {
	return &Dispatcher{
		world:   w,
		cfg:     cfg,
		metrics: metrics,
		log:     logging.GetComponentLogger("dispatch"),
	}
}

// TypeAt возвращает позицию и её тип; незарегистрированная пара
// заменяется заглушкой регистра с предупреждением в лог.
func (d *Dispatcher) TypeAt(pos vec.Vec3) (block.Position, block.Type) {
	p := block.NewPosition(d.world, pos)
	reg := d.world.Registry()
	state := d.world.State(pos)

	t, err := reg.ResolveState(state)
	if err != nil {
		d.metrics.observeUnknown()
		d.log.Warn("⚠️ %v в %s, используется заглушка %s", err, pos, reg.Unknown().State())
		t = reg.Unknown()
	}
	return p, t
}

// Interact вызывает OnInteract для блока в позиции
func (d *Dispatcher) Interact(pos vec.Vec3, item block.Item, face cube.Face, hit mgl64.Vec3, source block.Entity) bool {
	p, t := d.TypeAt(pos)
	changed := t.OnInteract(p, item, face, clampHit(hit), source)
	return d.finish(hookInteract, pos, changed)
}

// StartBreak вызывает OnStartBreak для блока в позиции
func (d *Dispatcher) StartBreak(pos vec.Vec3, item block.Item, face cube.Face, hit mgl64.Vec3, source block.Entity) bool {
	p, t := d.TypeAt(pos)
	changed := t.OnStartBreak(p, item, face, clampHit(hit), source)
	return d.finish(hookStartBreak, pos, changed)
}

// Break вызывает OnBreak для блока в позиции
func (d *Dispatcher) Break(pos vec.Vec3, item block.Item, source block.Entity) bool {
	p, t := d.TypeAt(pos)
	changed := t.OnBreak(p, item, source)
	if changed {
		d.log.Debug("Блок %q разрушен в %s", t.UniqueName(), pos)
	}
	return d.finish(hookBreak, pos, changed)
}

// NeighbourUpdate сообщает блоку в pos об изменении в neighbour
func (d *Dispatcher) NeighbourUpdate(pos, neighbour vec.Vec3) bool {
	p, t := d.TypeAt(pos)
	changed := t.OnNeighbourUpdate(p, block.NewPosition(d.world, neighbour))
	return d.finish(hookNeighbourUpdate, pos, changed)
}

// RandomUpdate вызывает OnRandomUpdate. Позиции выбирает планировщик тиков.
func (d *Dispatcher) RandomUpdate(pos vec.Vec3) bool {
	p, t := d.TypeAt(pos)
	changed := t.OnRandomUpdate(p)
	return d.finish(hookRandomUpdate, pos, changed)
}

// BBoxAt возвращает бокс блока в позиции для физики
func (d *Dispatcher) BBoxAt(pos vec.Vec3) (cube.BBox, bool) {
	p, t := d.TypeAt(pos)
	return t.BBoxAt(p)
}

// CollisionBoxes собирает боксы блоков, пересекающие area. Ячейка ниже
// области тоже проверяется: боксы выше единицы (заборы) выступают вверх.
func (d *Dispatcher) CollisionBoxes(area cube.BBox) []cube.BBox {
	lo, hi := area.Min(), area.Max()

	var out []cube.BBox
	for x := int(math.Floor(lo[0])); x < int(math.Ceil(hi[0])); x++ {
		for y := int(math.Floor(lo[1])) - 1; y < int(math.Ceil(hi[1])); y++ {
			for z := int(math.Floor(lo[2])); z < int(math.Ceil(hi[2])); z++ {
				p, t := d.TypeAt(vec.Vec3{X: x, Y: y, Z: z})
				box, ok := t.BBoxAt(p)
				if ok && box.IntersectsWith(area) {
					out = append(out, box)
				}
			}
		}
	}
	return out
}

func (d *Dispatcher) finish(h hook, pos vec.Vec3, changed bool) bool {
	d.metrics.observeHook(h, changed)
	if changed {
		d.propagate(pos)
	}
	return changed
}

// propagate обходит соседей в ширину. Каждый вызов OnNeighbourUpdate
// расходует единицу лимита; остаток очереди при исчерпании отбрасывается.
func (d *Dispatcher) propagate(origin vec.Vec3) {
	if !d.cfg.PropagateNeighbourUpdates {
		return
	}

	limit := d.cfg.GetMaxCascade()
	queue := enqueueNeighbours(nil, origin)
	for done := 0; len(queue) > 0; done++ {
		if done == limit {
			d.metrics.observeTruncated()
			d.log.Warn("Каскад обновлений от %s оборван после %d вызовов, отброшено %d", origin, limit, len(queue))
			return
		}

		u := queue[0]
		queue = queue[1:]

		p, t := d.TypeAt(u.target)
		changed := t.OnNeighbourUpdate(p, block.NewPosition(d.world, u.source))
		d.metrics.observeHook(hookNeighbourUpdate, changed)
		if changed {
			queue = enqueueNeighbours(queue, u.target)
		}
	}
}

func enqueueNeighbours(queue []neighbourUpdate, source vec.Vec3) []neighbourUpdate {
	for _, f := range cube.Faces() {
		queue = append(queue, neighbourUpdate{target: source.Add(f.Offset()), source: source})
	}
	return queue
}

// clampHit приводит точку попадания в [0,1]; NaN становится 0
func clampHit(hit mgl64.Vec3) mgl64.Vec3 {
	for i := range hit {
		if math.IsNaN(hit[i]) {
			hit[i] = 0
		}
		hit[i] = mgl64.Clamp(hit[i], 0, 1)
	}
	return hit
}
