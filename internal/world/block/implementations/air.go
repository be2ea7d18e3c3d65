package implementations

import "github.com/annel0/voxelcore/internal/world/block"

// Air описывает пустоту без объёма: прозрачна и ломается мгновенно
type Air struct {
	block.Base
}

// NewAir создаёт дескриптор воздуха
func NewAir() *Air {
	return &Air{Base: block.NewBase(block.Properties{
		ID:             AirID,
		UniqueName:     "air",
		TranslationKey: "tile.air.name",
		FallbackName:   "Air",
		Transparent:    true,
	})}
}
