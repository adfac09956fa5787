package app

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"tileroam/internal/config"
	"tileroam/internal/engine"
)

// Config represents the command-line parameters for the window frontend.
type Config struct {
	ConfigPath string
	Pipeline   string
	Width      int
	Height     int
	Seed       int64
	Scale      int
	TPS        int
	Delay      time.Duration
	HUDWidth   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 12, TPS: 60, Delay: 150 * time.Millisecond, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet. Zero-valued world
// flags defer to the config file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML run file")
	fs.StringVar(&c.Pipeline, "pipeline", c.Pipeline, "world generation pipeline")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for world generation")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "delay between automatic steps")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 to hide")
}

// Overrides returns the world flags that were set, keyed like gen.FromMap.
func (c *Config) Overrides() map[string]string {
	out := map[string]string{}
	if c.Pipeline != "" {
		out["pipeline"] = c.Pipeline
	}
	if c.Width > 0 {
		out["w"] = itoa(int64(c.Width))
	}
	if c.Height > 0 {
		out["h"] = itoa(int64(c.Height))
	}
	if c.Seed != 0 {
		out["seed"] = itoa(c.Seed)
	}
	return out
}

// NewGame loads the run file, applies flag overrides and builds the game.
func (c *Config) NewGame(logger *log.Logger) (*engine.Game, error) {
	file, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	for k, v := range c.Overrides() {
		file.Generation[k] = v
	}
	game, err := engine.NewGame(file.Gen(), logger)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return game, nil
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }
