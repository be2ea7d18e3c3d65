package block

import (
	"testing"

	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorld реализует World для тестирования
type mockWorld struct {
	reg    *Registry
	blocks map[vec.Vec3]State
	writes int
}

func newMockWorld(reg *Registry) *mockWorld {
	return &mockWorld{reg: reg, blocks: make(map[vec.Vec3]State)}
}

func (m *mockWorld) Registry() *Registry { return m.reg }

func (m *mockWorld) State(pos vec.Vec3) State {
	if s, ok := m.blocks[pos]; ok {
		return s
	}
	return m.reg.Air().State()
}

func (m *mockWorld) SetState(pos vec.Vec3, s State) {
	m.writes++
	m.blocks[pos] = s
}

type testType struct {
	Base
}

func newTestType(p Properties) *testType {
	return &testType{Base: NewBase(p)}
}

func stoneProps() Properties {
	box := cube.FullBox
	return Properties{
		ID:              1,
		UniqueName:      "stone",
		TranslationKey:  "tile.stone.name",
		FallbackName:    "Stone",
		Solid:           true,
		Hardness:        1.5,
		BlastResistance: 6.0,
		BBox:            &box,
	}
}

func airProps(id ID) Properties {
	return Properties{
		ID:             id,
		UniqueName:     "air",
		TranslationKey: "tile.air.name",
		FallbackName:   "Air",
		Transparent:    true,
	}
}

// newStoneWorld строит регистр {air 0:0, stone 1:0} и мир над ним
func newStoneWorld(t *testing.T) (*mockWorld, *testType, *testType) {
	t.Helper()
	air, stone := newTestType(airProps(0)), newTestType(stoneProps())

	reg := NewRegistry(DefaultRegistryConfig())
	require.NoError(t, reg.Register(air))
	require.NoError(t, reg.Register(stone))
	require.NoError(t, reg.Freeze())

	return newMockWorld(reg), air, stone
}

func TestBase_Accessors(t *testing.T) {
	stone := newTestType(stoneProps())

	assert.Equal(t, ID(1), stone.ID())
	assert.Equal(t, Meta(0), stone.Meta())
	assert.Equal(t, State{ID: 1}, stone.State())
	assert.Equal(t, "stone", stone.UniqueName())
	assert.Equal(t, "tile.stone.name", stone.TranslationKey())
	assert.Equal(t, "Stone", stone.FallbackName())
	assert.True(t, stone.Solid())
	assert.False(t, stone.Transparent())
	assert.Equal(t, 1.5, stone.Hardness())
	assert.Equal(t, 6.0, stone.BlastResistance())

	box, ok := stone.BBox()
	require.True(t, ok)
	assert.Equal(t, cube.FullBox, box)
}

func TestBase_IdentityIsFixedAtConstruction(t *testing.T) {
	for id := ID(0); id < 4; id++ {
		for m := Meta(0); m <= MaxMeta; m++ {
			p := stoneProps()
			p.ID, p.Meta = id, m
			typ := newTestType(p)

			assert.Equal(t, id, typ.ID())
			assert.Equal(t, m, typ.Meta())
		}
	}
}

func TestBase_PropertiesAreCopied(t *testing.T) {
	p := stoneProps()
	typ := newTestType(p)

	// изменение исходных свойств не влияет на дескриптор
	*p.BBox = cube.Box(0, 0, 0, 0.5, 0.5, 0.5)
	p.Hardness = 100

	box, _ := typ.BBox()
	assert.Equal(t, cube.FullBox, box)
	assert.Equal(t, 1.5, typ.Hardness())
}

func TestBBoxAt_TranslatesLocalBox(t *testing.T) {
	slabBox := cube.Box(0, 0, 0, 1, 0.5, 1)
	p := stoneProps()
	p.BBox = &slabBox
	slab := newTestType(p)

	positions := []vec.Vec3{{}, {X: 10, Y: 5, Z: 20}, {X: -3, Y: 0, Z: 7}, {X: 1 << 20, Y: -64, Z: -1}}
	for _, pos := range positions {
		box, ok := slab.BBoxAt(NewPosition(nil, pos))
		require.True(t, ok)
		assert.Equal(t, slabBox.Min().Add(pos.Float()), box.Min(), "позиция %s", pos)
		assert.Equal(t, slabBox.Max().Add(pos.Float()), box.Max(), "позиция %s", pos)
	}
}

func TestBBoxAt_NoBoxMeansAbsentEverywhere(t *testing.T) {
	air := newTestType(airProps(0))

	for _, pos := range []vec.Vec3{{}, {X: 10, Y: 5, Z: 20}, {X: -1, Y: -1, Z: -1}} {
		_, ok := air.BBoxAt(NewPosition(nil, pos))
		assert.False(t, ok)
	}
}

func TestStoneScenario(t *testing.T) {
	w, air, stone := newStoneWorld(t)
	pos := At(w, 3, 4, 5)
	pos.SetType(stone)

	assert.True(t, stone.OnBreak(pos, nil, nil), "OnBreak по умолчанию всегда сообщает об изменении")
	assert.Equal(t, State{ID: 0}, w.State(pos.Coords()))
	assert.Same(t, air, pos.Type())

	box, ok := stone.BBoxAt(At(w, 10, 5, 20))
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{10, 5, 20}, box.Min())
	assert.Equal(t, mgl64.Vec3{11, 6, 21}, box.Max())
}

func TestAirScenario_NonZeroID(t *testing.T) {
	air := newTestType(airProps(2))
	reg := NewRegistry(RegistryConfig{Air: State{ID: 2}, Unknown: State{ID: 248}})
	require.NoError(t, reg.Register(air))
	require.NoError(t, reg.Freeze())

	assert.Same(t, air, reg.Air())
	assert.False(t, air.Solid())
	assert.True(t, air.Transparent())
	assert.Zero(t, air.Hardness())
	assert.Zero(t, air.BlastResistance())

	w := newMockWorld(reg)
	_, ok := air.BBoxAt(At(w, 7, 8, 9))
	assert.False(t, ok)

	_, err := CollisionBox(air, At(w, 7, 8, 9))
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestOnBreak_WithActors(t *testing.T) {
	w, _, stone := newStoneWorld(t)
	pos := At(w, 0, 0, 0)

	type pickaxe struct{}
	type player struct{ name string }

	pos.SetType(stone)
	assert.True(t, stone.OnBreak(pos, pickaxe{}, &player{name: "steve"}))
	assert.Equal(t, w.reg.Air().State(), pos.State())
}

func TestDefaultHooks_NoEffect(t *testing.T) {
	w, _, stone := newStoneWorld(t)
	pos := At(w, 1, 2, 3)
	pos.SetType(stone)
	writes := w.writes

	hit := mgl64.Vec3{0.5, 0.75, 0.25}
	assert.False(t, stone.OnInteract(pos, nil, cube.FaceUp, hit, nil))
	assert.False(t, stone.OnStartBreak(pos, nil, cube.FaceNorth, hit, nil))
	assert.False(t, stone.OnNeighbourUpdate(pos, pos.Side(cube.FaceDown)))
	assert.False(t, stone.OnRandomUpdate(pos))

	assert.Equal(t, writes, w.writes, "хуки по умолчанию не должны менять мир")
	assert.Equal(t, stone.State(), pos.State())
}

func TestCollisionBox(t *testing.T) {
	w, _, stone := newStoneWorld(t)

	box, err := CollisionBox(stone, At(w, 1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, box.Max())
}

func TestPosition_Navigation(t *testing.T) {
	w, _, stone := newStoneWorld(t)
	pos := At(w, 0, 10, 0)

	assert.Equal(t, vec.Vec3{Y: 9}, pos.Side(cube.FaceDown).Coords())
	assert.Same(t, w, pos.Side(cube.FaceEast).World().(*mockWorld))

	neighbours := pos.Neighbours()
	require.Len(t, neighbours, 6)
	for _, n := range neighbours {
		assert.Equal(t, 1, n.ManhattanTo(pos.Coords()))
	}

	pos.Side(cube.FaceUp).SetType(stone)
	assert.Same(t, stone, pos.Side(cube.FaceUp).Type())
}

func TestPosition_TypeFallsBackToUnknown(t *testing.T) {
	w, _, _ := newStoneWorld(t)
	w.blocks[vec.Vec3{}] = State{ID: 77, Meta: 3}

	typ := At(w, 0, 0, 0).Type()
	assert.Equal(t, "unknown", typ.UniqueName())
	assert.Same(t, w.reg.Unknown(), typ)
}
