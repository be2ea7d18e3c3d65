package world

import (
	"math"
	"testing"

	"github.com/annel0/voxelcore/internal/config"
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world/block"
	"github.com/annel0/voxelcore/internal/world/block/implementations"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder запоминает аргументы OnInteract
type recorder struct {
	block.Base
	hits    []mgl64.Vec3
	sources []block.Entity
}

func (r *recorder) OnInteract(_ block.Position, _ block.Item, _ cube.Face, hit mgl64.Vec3, source block.Entity) bool {
	r.hits = append(r.hits, hit)
	r.sources = append(r.sources, source)
	return false
}

// exploding паникует в OnRandomUpdate
type exploding struct {
	block.Base
}

func (exploding) OnRandomUpdate(block.Position) bool {
	panic("boom")
}

type testEnv struct {
	grid     *Grid
	disp     *Dispatcher
	metrics  *Metrics
	recorder *recorder
}

func newTestEnv(t *testing.T, cfg config.DispatchConfig) *testEnv {
	t.Helper()
	reg := block.NewRegistry(block.DefaultRegistryConfig())
	require.NoError(t, implementations.RegisterDefaults(reg))

	rec := &recorder{Base: block.NewBase(block.Properties{ID: 200, UniqueName: "recorder"})}
	require.NoError(t, reg.Register(rec))
	require.NoError(t, reg.Register(&exploding{Base: block.NewBase(block.Properties{ID: 201, UniqueName: "exploding"})}))
	require.NoError(t, reg.Freeze())

	grid := NewGrid(reg)
	metrics := NewMetrics(prometheus.NewRegistry())
	return &testEnv{
		grid:     grid,
		disp:     NewDispatcher(grid, cfg, metrics),
		metrics:  metrics,
		recorder: rec,
	}
}

func (e *testEnv) set(t *testing.T, id block.ID, meta block.Meta, pos vec.Vec3) {
	t.Helper()
	typ, err := e.grid.Registry().Resolve(id, meta)
	require.NoError(t, err)
	e.grid.SetState(pos, typ.State())
}

func defaultDispatch() config.DispatchConfig {
	return config.Default().Dispatch
}

func TestDispatcher_BreakStone(t *testing.T) {
	env := newTestEnv(t, defaultDispatch())
	pos := vec.Vec3{X: 1, Y: 2, Z: 3}
	env.set(t, implementations.StoneID, 0, pos)

	assert.True(t, env.disp.Break(pos, nil, nil))
	assert.Equal(t, block.State{ID: implementations.AirID}, env.grid.State(pos))
	assert.Equal(t, 0, env.grid.Len())

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.hookCalls.WithLabelValues("break")))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.hookChanges.WithLabelValues("break")))
	// шесть соседей оповещены и ничего не изменили
	assert.Equal(t, 6.0, testutil.ToFloat64(env.metrics.hookCalls.WithLabelValues("neighbour_update")))
	assert.Equal(t, 0.0, testutil.ToFloat64(env.metrics.hookChanges.WithLabelValues("neighbour_update")))
}

func TestDispatcher_UnknownPairUsesFallback(t *testing.T) {
	env := newTestEnv(t, defaultDispatch())
	pos := vec.Vec3{X: 5}
	env.grid.SetState(pos, block.State{ID: 4000, Meta: 2})

	_, typ := env.disp.TypeAt(pos)
	assert.Same(t, env.grid.Registry().Unknown(), typ)

	box, ok := env.disp.BBoxAt(pos)
	require.True(t, ok, "заглушка занимает полную ячейку")
	assert.Equal(t, mgl64.Vec3{6, 1, 1}, box.Max())

	assert.True(t, env.disp.Break(pos, nil, nil), "неизвестный блок ломается как обычный")
	assert.Equal(t, block.State{}, env.grid.State(pos))
	assert.Equal(t, 3.0, testutil.ToFloat64(env.metrics.unknown))
}

func TestDispatcher_SandCascade(t *testing.T) {
	env := newTestEnv(t, defaultDispatch())
	env.set(t, implementations.StoneID, 0, vec.Vec3{Y: 0})
	env.set(t, implementations.DirtID, 0, vec.Vec3{Y: 2})
	env.set(t, implementations.SandID, 0, vec.Vec3{Y: 3})

	require.True(t, env.disp.Break(vec.Vec3{Y: 2}, nil, nil))

	assert.Equal(t, implementations.SandID, env.grid.State(vec.Vec3{Y: 1}).ID, "песок должен упасть на камень")
	assert.Equal(t, implementations.AirID, env.grid.State(vec.Vec3{Y: 2}).ID)
	assert.Equal(t, implementations.AirID, env.grid.State(vec.Vec3{Y: 3}).ID)
	assert.Equal(t, 2.0, testutil.ToFloat64(env.metrics.hookChanges.WithLabelValues("neighbour_update")))
	assert.Zero(t, testutil.ToFloat64(env.metrics.truncated))
}

func TestDispatcher_CascadeLimit(t *testing.T) {
	cfg := defaultDispatch()
	cfg.MaxCascade = 20
	env := newTestEnv(t, cfg)
	env.set(t, implementations.DirtID, 0, vec.Vec3{Y: 100})
	env.set(t, implementations.SandID, 0, vec.Vec3{Y: 101})

	// под песком бездна: каскад обрывается лимитом
	require.True(t, env.disp.Break(vec.Vec3{Y: 100}, nil, nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.truncated))
	assert.Equal(t, 20.0, testutil.ToFloat64(env.metrics.hookCalls.WithLabelValues("neighbour_update")))
	assert.Equal(t, 1, env.grid.Len(), "песок остаётся в мире одним блоком")
}

func TestDispatcher_PropagationDisabled(t *testing.T) {
	cfg := defaultDispatch()
	cfg.PropagateNeighbourUpdates = false
	env := newTestEnv(t, cfg)
	env.set(t, implementations.DirtID, 0, vec.Vec3{Y: 2})
	env.set(t, implementations.SandID, 0, vec.Vec3{Y: 3})

	require.True(t, env.disp.Break(vec.Vec3{Y: 2}, nil, nil))
	assert.Equal(t, implementations.SandID, env.grid.State(vec.Vec3{Y: 3}).ID, "без оповещения песок висит")

	// явное оповещение роняет его на одну ячейку
	assert.True(t, env.disp.NeighbourUpdate(vec.Vec3{Y: 3}, vec.Vec3{Y: 2}))
	assert.Equal(t, implementations.SandID, env.grid.State(vec.Vec3{Y: 2}).ID)
}

func TestDispatcher_InteractPassesActorsAndClampsHit(t *testing.T) {
	env := newTestEnv(t, defaultDispatch())
	pos := vec.Vec3{X: -2}
	env.set(t, 200, 0, pos)
	writes := env.grid.Writes()

	type player struct{ name string }
	source := &player{name: "alex"}

	assert.False(t, env.disp.Interact(pos, nil, cube.FaceUp, mgl64.Vec3{0.25, 1.5, -0.5}, source))
	assert.False(t, env.disp.StartBreak(pos, nil, cube.FaceUp, mgl64.Vec3{}, nil))

	require.Len(t, env.recorder.hits, 1)
	assert.Equal(t, mgl64.Vec3{0.25, 1, 0}, env.recorder.hits[0])
	assert.Same(t, source, env.recorder.sources[0])
	assert.Equal(t, writes, env.grid.Writes(), "хуки без изменений не трогают мир")
	assert.Zero(t, testutil.ToFloat64(env.metrics.hookCalls.WithLabelValues("neighbour_update")))
}

func TestDispatcher_InteractTrapdoor(t *testing.T) {
	env := newTestEnv(t, defaultDispatch())
	pos := vec.Vec3{Y: 1}
	env.set(t, implementations.TrapdoorID, 0, pos)

	closedBox, _ := env.disp.BBoxAt(pos)
	assert.True(t, env.disp.Interact(pos, nil, cube.FaceUp, mgl64.Vec3{0.5, 0.1, 0.5}, nil))
	assert.Equal(t, block.Meta(0x8), env.grid.State(pos).Meta)

	openBox, _ := env.disp.BBoxAt(pos)
	assert.False(t, closedBox.ApproxEqual(openBox), "открытый люк меняет форму")
}

func TestDispatcher_RandomUpdate(t *testing.T) {
	env := newTestEnv(t, defaultDispatch())
	env.set(t, implementations.GrassID, 0, vec.Vec3{})
	env.set(t, implementations.StoneID, 0, vec.Vec3{Y: 1})

	assert.True(t, env.disp.RandomUpdate(vec.Vec3{}))
	assert.Equal(t, implementations.DirtID, env.grid.State(vec.Vec3{}).ID)

	assert.False(t, env.disp.RandomUpdate(vec.Vec3{Y: 1}))
}

func TestDispatcher_HookPanicPropagates(t *testing.T) {
	env := newTestEnv(t, defaultDispatch())
	env.set(t, 201, 0, vec.Vec3{})

	assert.PanicsWithValue(t, "boom", func() {
		env.disp.RandomUpdate(vec.Vec3{})
	})
}

func TestDispatcher_CollisionBoxes(t *testing.T) {
	env := newTestEnv(t, defaultDispatch())
	for x := -1; x <= 1; x++ {
		for z := -1; z <= 1; z++ {
			env.set(t, implementations.StoneID, 0, vec.Vec3{X: x, Y: -1, Z: z})
		}
	}
	env.set(t, implementations.FenceID, 0, vec.Vec3{X: 1, Y: 0, Z: 0})

	// бокс игрока стоит на полу, верхняя часть забора выступает в соседнюю ячейку
	area := cube.Box(0.2, 0, 0.2, 0.8, 1.8, 0.8)
	assert.Empty(t, env.disp.CollisionBoxes(area))

	touching := cube.Box(0.2, -0.1, 0.2, 0.8, 1.7, 0.8)
	assert.Len(t, env.disp.CollisionBoxes(touching), 1, "пол под ногами")

	wide := cube.Box(-0.5, 1.2, -0.5, 1.5, 2, 0.5)
	boxes := env.disp.CollisionBoxes(wide)
	require.Len(t, boxes, 1, "на высоте 1.2 выступает только забор")
	assert.InDelta(t, 1.5, boxes[0].Max()[1], 1e-9)
}

func TestDispatcher_InteractMapsNaNHitToZero(t *testing.T) {
	env := newTestEnv(t, defaultDispatch())
	pos := vec.Vec3{Z: 4}
	env.set(t, 200, 0, pos)

	env.disp.Interact(pos, nil, cube.FaceNorth, mgl64.Vec3{math.NaN(), 0.5, math.Inf(1)}, nil)

	require.Len(t, env.recorder.hits, 1)
	assert.Equal(t, mgl64.Vec3{0, 0.5, 1}, env.recorder.hits[0])
}

func TestDispatcher_CollisionBoxesCountsUnknown(t *testing.T) {
	env := newTestEnv(t, defaultDispatch())
	env.grid.SetState(vec.Vec3{}, block.State{ID: 4000})

	boxes := env.disp.CollisionBoxes(cube.Box(0.2, 0.2, 0.2, 0.8, 0.8, 0.8))
	require.Len(t, boxes, 1, "заглушка твёрдая")
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.unknown))
}
