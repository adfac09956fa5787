package gen

import (
	"tileroam/internal/core"
	"tileroam/internal/world"
)

func build(size core.Size, ground func(i int) world.Tile) world.World {
	fields := make([]world.Field, size.Cells())
	for i := range fields {
		fields[i] = world.GroundField(ground(i))
	}
	w, _ := world.New(size, fields)
	return w
}

// GrassWorld covers every cell with grass.
func GrassWorld(size core.Size) world.World {
	w, _ := world.Filled(size, world.Grass)
	return w
}

// ScatterWorld draws each cell independently from the Tree/Stone/Grass
// weights.
func ScatterWorld(size core.Size, p Params, rng *core.RNG) world.World {
	total := p.TreeWeight + p.StoneWeight + p.GrassWeight
	return build(size, func(int) world.Tile {
		if total <= 0 {
			return world.Grass
		}
		roll := rng.IntN(total)
		switch {
		case roll < p.TreeWeight:
			return world.Tree
		case roll < p.TreeWeight+p.StoneWeight:
			return world.Stone
		default:
			return world.Grass
		}
	})
}

// InitialWorld turns a fixed fraction of cells, chosen without replacement,
// to Stone and leaves the rest Grass.
func InitialWorld(size core.Size, stoneFraction float64, rng *core.RNG) world.World {
	n := size.Cells()
	stoneFraction = min(max(stoneFraction, 0), 1)
	stones := make([]bool, n)
	for _, i := range rng.Perm(n)[:int(float64(n)*stoneFraction)] {
		stones[i] = true
	}
	return build(size, func(i int) world.Tile {
		if stones[i] {
			return world.Stone
		}
		return world.Grass
	})
}

// CellularWorld smooths an InitialWorld with the given number of
// CellularAutomata passes.
func CellularWorld(size core.Size, p Params, rng *core.RNG) world.World {
	w := InitialWorld(size, p.StoneFraction, rng)
	for i := 0; i < p.Iterations; i++ {
		w = CellularAutomata(w)
	}
	return w
}
