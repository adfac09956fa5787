package gen

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/multierr"

	"tileroam/internal/world"
)

// ErrInvalidConfig marks every violation reported by Config.Validate.
var ErrInvalidConfig = errors.New("gen: invalid config")

// Params holds the tunable knobs of the generation pipelines.
type Params struct {
	// Iterations of the cellular smoothing pass.
	Iterations int
	// StoneFraction of cells turned to Stone by the initial world.
	StoneFraction float64

	TreeWeight  int
	StoneWeight int
	GrassWeight int

	// NoiseScale maps grid coordinates into noise space.
	NoiseScale float64
	// Normalized noise at or above StoneCutoff becomes Stone, values in
	// [TreeLow, TreeHigh) become Tree.
	StoneCutoff float64
	TreeLow     float64
	TreeHigh    float64
}

// Config selects a pipeline and the world it produces.
type Config struct {
	Width  int
	Height int

	Seed     int64
	Pipeline string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    world.DefaultSize.W,
		Height:   world.DefaultSize.H,
		Seed:     1337,
		Pipeline: "cellular",
		Params: Params{
			Iterations:    3,
			StoneFraction: 0.55,
			TreeWeight:    4,
			StoneWeight:   1,
			GrassWeight:   27,
			NoiseScale:    0.12,
			StoneCutoff:   0.68,
			TreeLow:       0.30,
			TreeHigh:      0.38,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; range checks belong to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	setInt(cfg, "w", &c.Width)
	setInt(cfg, "h", &c.Height)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pipeline"]; ok && v != "" {
		c.Pipeline = v
	}
	setInt(cfg, "iterations", &c.Params.Iterations)
	setFloat(cfg, "stone_fraction", &c.Params.StoneFraction)
	setInt(cfg, "tree_weight", &c.Params.TreeWeight)
	setInt(cfg, "stone_weight", &c.Params.StoneWeight)
	setInt(cfg, "grass_weight", &c.Params.GrassWeight)
	setFloat(cfg, "noise_scale", &c.Params.NoiseScale)
	setFloat(cfg, "stone_cutoff", &c.Params.StoneCutoff)
	setFloat(cfg, "tree_low", &c.Params.TreeLow)
	setFloat(cfg, "tree_high", &c.Params.TreeHigh)
	return c
}

func setInt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setFloat(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
}

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var err error
	bad := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}
	p := c.Params
	if c.Width <= 0 || c.Height <= 0 {
		bad("size %dx%d must be positive", c.Width, c.Height)
	}
	if p.Iterations < 0 {
		bad("iterations %d is negative", p.Iterations)
	}
	if p.StoneFraction < 0 || p.StoneFraction > 1 {
		bad("stone_fraction %v outside [0,1]", p.StoneFraction)
	}
	if p.TreeWeight < 0 || p.StoneWeight < 0 || p.GrassWeight < 0 {
		bad("scatter weights must not be negative")
	} else if p.TreeWeight+p.StoneWeight+p.GrassWeight == 0 {
		bad("scatter weights sum to zero")
	}
	if p.NoiseScale <= 0 {
		bad("noise_scale %v must be positive", p.NoiseScale)
	}
	if p.TreeLow > p.TreeHigh {
		bad("tree_low %v above tree_high %v", p.TreeLow, p.TreeHigh)
	}
	for _, v := range []float64{p.StoneCutoff, p.TreeLow, p.TreeHigh} {
		if v < 0 || v > 1 {
			bad("noise threshold %v outside [0,1]", v)
		}
	}
	return err
}
