package implementations

import (
	"fmt"

	"github.com/annel0/voxelcore/internal/world/block"
)

// Defaults возвращает дескрипторы эталонного каталога
func Defaults() []block.Type {
	types := []block.Type{
		NewAir(),
		NewStone(),
		NewGrass(),
		NewDirt(),
		NewSand(),
		NewFence(),
	}
	for _, t := range NewTrapdoors() {
		types = append(types, t)
	}
	return types
}

// RegisterDefaults регистрирует эталонный каталог в reg
func RegisterDefaults(reg *block.Registry) error {
	for _, t := range Defaults() {
		if err := reg.Register(t); err != nil {
			return fmt.Errorf("register %s: %w", t.UniqueName(), err)
		}
	}
	return nil
}

// NewDefaultRegistry создаёт и замораживает регистр с эталонным каталогом
func NewDefaultRegistry(cfg block.RegistryConfig) (*block.Registry, error) {
	reg := block.NewRegistry(cfg)
	if err := RegisterDefaults(reg); err != nil {
		return nil, err
	}
	if err := reg.Freeze(); err != nil {
		return nil, err
	}
	return reg, nil
}
