package gen

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"tileroam/internal/core"
	"tileroam/internal/world"
)

// Perlin octave settings.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = int32(3)
)

// noiseFunc returns values in [-1, 1].
type noiseFunc func(x, y float64) float64

// noiseWorld thresholds a noise field into Stone, Tree and Grass.
func noiseWorld(size core.Size, p Params, noise noiseFunc) world.World {
	return build(size, func(i int) world.Tile {
		x, y := size.Coord(i)
		v := (noise(float64(x)*p.NoiseScale, float64(y)*p.NoiseScale) + 1) / 2
		switch {
		case v >= p.StoneCutoff:
			return world.Stone
		case v >= p.TreeLow && v < p.TreeHigh:
			return world.Tree
		default:
			return world.Grass
		}
	})
}

// PerlinWorld builds terrain from Perlin noise seeded by rng.
func PerlinWorld(size core.Size, p Params, rng *core.RNG) world.World {
	pn := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, rng.Int64())
	return noiseWorld(size, p, pn.Noise2D)
}

// SimplexWorld builds terrain from a two-octave OpenSimplex sum.
func SimplexWorld(size core.Size, p Params, rng *core.RNG) world.World {
	coarse := opensimplex.New(rng.Int64())
	fine := opensimplex.New(rng.Int64())
	return noiseWorld(size, p, func(x, y float64) float64 {
		return 0.75*coarse.Eval2(x, y) + 0.25*fine.Eval2(2*x, 2*y)
	})
}
