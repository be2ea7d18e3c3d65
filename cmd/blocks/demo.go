package main

import (
	"fmt"
	"io"

	"github.com/annel0/voxelcore/internal/config"
	"github.com/annel0/voxelcore/internal/cube"
	"github.com/annel0/voxelcore/internal/logging"
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world"
	"github.com/annel0/voxelcore/internal/world/block"
	"github.com/annel0/voxelcore/internal/world/block/implementations"
	"github.com/go-gl/mathgl/mgl64"
)

// runDemo прогоняет хуки эталонных блоков через диспетчер на пустом мире:
// разрушение камня, осыпание песка, открытие люка и увядание травы.
func runDemo(out io.Writer, reg *block.Registry, cfg config.DispatchConfig, metrics *world.Metrics) error {
	grid := world.NewGrid(reg)
	disp := world.NewDispatcher(grid, cfg, metrics)

	place := func(id block.ID, meta block.Meta, pos vec.Vec3) error {
		t, err := reg.Resolve(id, meta)
		if err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		grid.SetState(pos, t.State())
		return nil
	}

	steps := []struct {
		id   block.ID
		meta block.Meta
		pos  vec.Vec3
	}{
		{implementations.StoneID, 0, vec.Vec3{Y: 0}},
		{implementations.DirtID, 0, vec.Vec3{Y: 2}},
		{implementations.SandID, 0, vec.Vec3{Y: 3}},
		{implementations.StoneID, 0, vec.Vec3{X: 5, Y: 0}},
		{implementations.TrapdoorID, 0, vec.Vec3{X: -5, Y: 0}},
		{implementations.GrassID, 0, vec.Vec3{Z: 5}},
		{implementations.StoneID, 0, vec.Vec3{Y: 1, Z: 5}},
	}
	for _, s := range steps {
		if err := place(s.id, s.meta, s.pos); err != nil {
			return err
		}
	}

	logging.Info("▶️ Демонстрационный прогон диспетчера")

	disp.Break(vec.Vec3{X: 5}, nil, nil)
	fmt.Fprintf(out, "break stone (5,0,0): %s\n", grid.State(vec.Vec3{X: 5}))

	disp.Break(vec.Vec3{Y: 2}, nil, nil)
	fmt.Fprintf(out, "break dirt (0,2,0): sand now at (0,1,0) = %s\n", grid.State(vec.Vec3{Y: 1}))

	disp.Interact(vec.Vec3{X: -5}, nil, cube.FaceUp, mgl64.Vec3{0.5, 0.2, 0.5}, nil)
	fmt.Fprintf(out, "interact trapdoor (-5,0,0): %s\n", grid.State(vec.Vec3{X: -5}))

	disp.RandomUpdate(vec.Vec3{Z: 5})
	fmt.Fprintf(out, "random update grass (0,0,5): %s\n", grid.State(vec.Vec3{Z: 5}))
	return nil
}
