package block

import (
	"fmt"
	"math"

	"github.com/annel0/voxelcore/internal/cube"
)

// ID идентифицирует семейство блоков в регистре
type ID uint16

// Meta выбирает вариант внутри семейства (цвет, ориентация). Занимает 4 бита.
type Meta uint8

// MaxMeta — наибольшее допустимое значение Meta
const MaxMeta Meta = 0x0F

// State — пара (id, meta), которую мир хранит для каждой позиции
type State struct {
	ID   ID
	Meta Meta
}

// String форматирует пару как id:meta
func (s State) String() string {
	return fmt.Sprintf("%d:%d", s.ID, s.Meta)
}

// Type описывает один вариант (id, meta) блока. Экземпляр является flyweight:
// один на все позиции мира с этой парой, поэтому позиционного состояния
// в нём нет. Всё, что зависит от окружения, приходит через Position.
//
// Любая реализация обязана встраивать Base.
type Type interface {
	ID() ID
	// Meta возвращает вариант (damage) блока
	Meta() Meta
	State() State

	UniqueName() string
	TranslationKey() string
	FallbackName() string

	Solid() bool
	Transparent() bool
	Hardness() float64
	BlastResistance() float64

	// BBox возвращает локальный бокс в ячейке (0,0,0)-(1,1,1).
	// false означает, что блок не имеет объёма для коллизий.
	BBox() (cube.BBox, bool)
	// BBoxAt возвращает бокс в мировых координатах позиции.
	BBoxAt(pos Position) (cube.BBox, bool)

	Behaviour

	base() Base
}

// Properties задаёт неизменяемые свойства дескриптора при конструировании
type Properties struct {
	ID             ID
	Meta           Meta
	UniqueName     string
	TranslationKey string
	FallbackName   string

	Solid           bool
	Transparent     bool
	Hardness        float64
	BlastResistance float64

	// BBox == nil означает блок без объёма (воздух, нематериальные декорации)
	BBox *cube.BBox
}

// Base хранит свойства дескриптора и реализует поведение по умолчанию.
// Семейства встраивают Base и переопределяют только нужные хуки.
type Base struct {
	id             ID
	meta           Meta
	uniqueName     string
	translationKey string
	fallbackName   string

	solid           bool
	transparent     bool
	hardness        float64
	blastResistance float64

	box    cube.BBox
	hasBox bool
}

// NewBase создаёт Base из свойств. Инварианты проверяются при регистрации.
func NewBase(p Properties) Base {
	b := Base{
		id:              p.ID,
		meta:            p.Meta,
		uniqueName:      p.UniqueName,
		translationKey:  p.TranslationKey,
		fallbackName:    p.FallbackName,
		solid:           p.Solid,
		transparent:     p.Transparent,
		hardness:        p.Hardness,
		blastResistance: p.BlastResistance,
	}
	if p.BBox != nil {
		b.box, b.hasBox = *p.BBox, true
	}
	return b
}

func (b Base) ID() ID                   { return b.id }
func (b Base) Meta() Meta               { return b.meta }
func (b Base) State() State             { return State{ID: b.id, Meta: b.meta} }
func (b Base) UniqueName() string       { return b.uniqueName }
func (b Base) TranslationKey() string   { return b.translationKey }
func (b Base) FallbackName() string     { return b.fallbackName }
func (b Base) Solid() bool              { return b.solid }
func (b Base) Transparent() bool        { return b.transparent }
func (b Base) Hardness() float64        { return b.hardness }
func (b Base) BlastResistance() float64 { return b.blastResistance }

// BBox возвращает локальный бокс
func (b Base) BBox() (cube.BBox, bool) {
	return b.box, b.hasBox
}

// BBoxAt смещает локальный бокс на координаты позиции. Для типа без
// бокса возвращает false для любой позиции.
func (b Base) BBoxAt(pos Position) (cube.BBox, bool) {
	if !b.hasBox {
		return cube.BBox{}, false
	}
	return b.box.Translate(pos.Float()), true
}

func (b Base) base() Base { return b }

func (b Base) validate() error {
	fail := func(reason string) error {
		return &InvalidPropertiesError{State: b.State(), Name: b.uniqueName, Reason: reason}
	}
	switch {
	case b.uniqueName == "":
		return fail("empty unique name")
	case b.meta > MaxMeta:
		return fail(fmt.Sprintf("meta %d does not fit in 4 bits", b.meta))
	case math.IsNaN(b.hardness) || b.hardness < 0:
		return fail(fmt.Sprintf("hardness %v must be a non-negative number", b.hardness))
	case math.IsNaN(b.blastResistance) || b.blastResistance < 0:
		return fail(fmt.Sprintf("blast resistance %v must be a non-negative number", b.blastResistance))
	}
	return nil
}

// CollisionBox возвращает бокс типа в позиции или ErrInvalidGeometry,
// если у типа нет объёма.
func CollisionBox(t Type, pos Position) (cube.BBox, error) {
	box, ok := t.BBoxAt(pos)
	if !ok {
		return cube.BBox{}, fmt.Errorf("%w: %s %s", ErrInvalidGeometry, t.UniqueName(), t.State())
	}
	return box, nil
}
