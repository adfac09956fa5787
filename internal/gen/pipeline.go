package gen

import (
	"errors"
	"fmt"
	"sort"

	"tileroam/internal/core"
	"tileroam/internal/world"
)

// ErrUnknownPipeline reports a pipeline name that was never registered.
var ErrUnknownPipeline = errors.New("gen: unknown pipeline")

// Pipeline builds a world of the given size.
type Pipeline func(size core.Size, p Params, rng *core.RNG) world.World

var registry = map[string]Pipeline{}

// Register makes a pipeline available by name. Later registrations win.
func Register(name string, p Pipeline) {
	registry[name] = p
}

// Pipelines returns the registered names in sorted order.
func Pipelines() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the pipeline registered under name.
func Lookup(name string) (Pipeline, error) {
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPipeline, name)
	}
	return p, nil
}

// Generate validates cfg and runs its pipeline.
func Generate(cfg Config, rng *core.RNG) (world.World, error) {
	if err := cfg.Validate(); err != nil {
		return world.World{}, err
	}
	p, err := Lookup(cfg.Pipeline)
	if err != nil {
		return world.World{}, err
	}
	size, err := core.NewSize(cfg.Width, cfg.Height)
	if err != nil {
		return world.World{}, err
	}
	return p(size, cfg.Params, rng), nil
}

func init() {
	Register("cellular", func(size core.Size, p Params, rng *core.RNG) world.World {
		return Erosion(CellularWorld(size, p, rng))
	})
	Register("initial", func(size core.Size, p Params, rng *core.RNG) world.World {
		return InitialWorld(size, p.StoneFraction, rng)
	})
	Register("scatter", ScatterWorld)
	Register("grass", func(size core.Size, _ Params, _ *core.RNG) world.World {
		return GrassWorld(size)
	})
	// The demo map has a fixed size and ignores the requested one.
	Register("demo", func(core.Size, Params, *core.RNG) world.World {
		return DemoWorld()
	})
	Register("perlin", PerlinWorld)
	Register("simplex", SimplexWorld)
}
