package block

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/logging"
)

// Ключи по умолчанию для канонического воздуха и заглушки неизвестных блоков
const (
	DefaultAirID     ID = 0
	DefaultUnknownID ID = 248
)

// RegistryConfig задаёт служебные ключи регистра
type RegistryConfig struct {
	// Air задаёт пару, которой OnBreak по умолчанию заменяет разрушенный блок
	Air State
	// Unknown задаёт пару заглушки для незарегистрированных пар. Если под ней
	// ничего не зарегистрировано, Freeze ставит встроенную заглушку.
	Unknown State
}

// DefaultRegistryConfig возвращает конфигурацию с ключами по умолчанию
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		Air:     State{ID: DefaultAirID},
		Unknown: State{ID: DefaultUnknownID},
	}
}

// Registry сопоставляет пары (id, meta) дескрипторам. Заполняется один раз
// при старте, после Freeze доступен только на чтение и не требует блокировок.
type Registry struct {
	mu     sync.RWMutex
	frozen atomic.Bool

	cfg   RegistryConfig
	types map[State]Type
	// names хранит вариант с наименьшей meta для каждого уникального имени
	names map[string]Type

	air      Type
	fallback Type

	log *logging.Logger
}

// NewRegistry создаёт пустой регистр
func NewRegistry(cfg RegistryConfig) *Registry {
	return &Registry{
		cfg:      cfg,
		types:    make(map[State]Type),
		names:    make(map[string]Type),
		fallback: newUnknownType(cfg.Unknown),
		log:      logging.GetComponentLogger("blocks"),
	}
}

// Register добавляет дескриптор в регистр. Возвращает
// *DuplicateRegistrationError при конфликте ключа или имени,
// *InvalidPropertiesError при нарушении инвариантов свойств и
// ErrRegistryFrozen после Freeze.
func (r *Registry) Register(t Type) error {
	if t == nil {
		return fmt.Errorf("block: register nil type")
	}
	b := t.base()
	key := b.State()
	if t.ID() != key.ID || t.Meta() != key.Meta || t.State() != key {
		return fmt.Errorf("%w: %q declares %d:%d, base holds %s",
			ErrIdentityOverride, b.UniqueName(), t.ID(), t.Meta(), key)
	}
	if err := b.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		r.log.Warn("Попытка регистрации %q %s после заморозки регистра", b.UniqueName(), key)
		return ErrRegistryFrozen
	}
	return r.insert(t)
}

// insert вызывается под r.mu. Ключ берётся из Base.
func (r *Registry) insert(t Type) error {
	key, name := t.base().State(), t.UniqueName()
	if existing, ok := r.types[key]; ok {
		return &DuplicateRegistrationError{State: key, Name: name, Existing: existing}
	}
	if existing, ok := r.names[name]; ok {
		if existing.ID() != key.ID {
			return &DuplicateRegistrationError{State: key, Name: name, Existing: existing}
		}
		if key.Meta < existing.Meta() {
			r.names[name] = t
		}
	} else {
		r.names[name] = t
	}
	r.types[key] = t
	r.log.Trace("Зарегистрирован блок %q %s", name, key)
	return nil
}

// Freeze завершает инициализацию. Требует зарегистрированный воздух;
// если заглушка неизвестных блоков не зарегистрирована, ставит встроенную.
// Повторный вызов ничего не делает.
func (r *Registry) Freeze() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return nil
	}
	air, ok := r.types[r.cfg.Air]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAirNotRegistered, r.cfg.Air)
	}
	if registered, ok := r.types[r.cfg.Unknown]; ok {
		r.fallback = registered
	} else if err := r.insert(r.fallback); err != nil {
		return fmt.Errorf("install unknown block: %w", err)
	}
	r.air = air
	r.frozen.Store(true)

	r.log.Info("🧱 Регистр блоков заморожен: %d типов, воздух %s, заглушка %s",
		len(r.types), r.cfg.Air, r.fallback.State())
	return nil
}

// Frozen сообщает, завершена ли инициализация
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

func (r *Registry) lookup(key State) (Type, bool) {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	t, ok := r.types[key]
	return t, ok
}

// Resolve возвращает дескриптор для пары или *UnknownTypeError
func (r *Registry) Resolve(id ID, meta Meta) (Type, error) {
	return r.ResolveState(State{ID: id, Meta: meta})
}

// ResolveState делает то же, что Resolve, для State
func (r *Registry) ResolveState(s State) (Type, error) {
	t, ok := r.lookup(s)
	if !ok {
		return nil, &UnknownTypeError{State: s}
	}
	return t, nil
}

// ResolveOrUnknown разрешает пару, подставляя заглушку при промахе
func (r *Registry) ResolveOrUnknown(s State) Type {
	if t, ok := r.lookup(s); ok {
		return t
	}
	return r.Unknown()
}

// ByName возвращает вариант семейства с наименьшей meta по уникальному имени
func (r *Registry) ByName(name string) (Type, bool) {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	t, ok := r.names[name]
	return t, ok
}

// ByNameMeta разрешает вариант семейства по имени и meta, как в командах
// выдачи предметов вида "trapdoor:8"
func (r *Registry) ByNameMeta(name string, meta Meta) (Type, error) {
	family, ok := r.ByName(name)
	if !ok {
		return nil, fmt.Errorf("block: no type named %q", name)
	}
	return r.Resolve(family.ID(), meta)
}

// Air возвращает канонический воздух. До Freeze может вернуть nil,
// если воздух ещё не зарегистрирован.
func (r *Registry) Air() Type {
	if r.frozen.Load() {
		return r.air
	}
	t, _ := r.lookup(r.cfg.Air)
	return t
}

// Unknown возвращает заглушку для незарегистрированных пар
func (r *Registry) Unknown() Type {
	if r.frozen.Load() {
		return r.fallback
	}
	if t, ok := r.lookup(r.cfg.Unknown); ok {
		return t
	}
	return r.fallback
}

// Types возвращает все дескрипторы, упорядоченные по (id, meta)
func (r *Registry) Types() []Type {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	out := make([]Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].State(), out[j].State()
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.Meta < b.Meta
	})
	return out
}

// Len возвращает число зарегистрированных дескрипторов
func (r *Registry) Len() int {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	return len(r.types)
}

// unknownType реализует встроенную заглушку: твёрдая полная ячейка
type unknownType struct {
	Base
}

func newUnknownType(s State) *unknownType {
	box := cube.FullBox
	return &unknownType{Base: NewBase(Properties{
		ID:              s.ID,
		Meta:            s.Meta,
		UniqueName:      "unknown",
		TranslationKey:  "tile.unknown.name",
		FallbackName:    "Unknown",
		Solid:           true,
		Hardness:        0,
		BlastResistance: 0,
		BBox:            &box,
	})}
}
