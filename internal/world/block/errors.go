package block

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry возвращается при запросе бокса у типа без объёма.
	// Ошибка восстановимая: вызывающий считает блок непроходимым объёмом нуля.
	ErrInvalidGeometry = errors.New("block: type has no bounding box")

	// ErrRegistryFrozen возвращается при регистрации после Freeze
	ErrRegistryFrozen = errors.New("block: registry is frozen")

	// ErrIdentityOverride возвращается, если тип подменяет ID()/Meta(),
	// заданные при конструировании Base
	ErrIdentityOverride = errors.New("block: type overrides identity fixed by Base")

	// ErrAirNotRegistered возвращается из Freeze, если канонический воздух не зарегистрирован
	ErrAirNotRegistered = errors.New("block: canonical air type is not registered")
)

// UnknownTypeError сообщает, что для пары (id, meta) нет дескриптора.
// Вызывающий подставляет Registry.Unknown() и продолжает тик.
type UnknownTypeError struct {
	State State
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("block: unknown type %s", e.State)
}

// DuplicateRegistrationError сообщает, что два дескриптора претендуют на один ключ
// или одно уникальное имя. Фатальна для инициализации.
type DuplicateRegistrationError struct {
	State    State
	Name     string
	Existing Type
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("block: %q %s conflicts with registered %q %s",
		e.Name, e.State, e.Existing.UniqueName(), e.Existing.State())
}

// InvalidPropertiesError сообщает о нарушении инвариантов свойств дескриптора
type InvalidPropertiesError struct {
	State  State
	Name   string
	Reason string
}

func (e *InvalidPropertiesError) Error() string {
	return fmt.Sprintf("block: invalid properties of %q %s: %s", e.Name, e.State, e.Reason)
}
