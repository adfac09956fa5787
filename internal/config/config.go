// Package config loads the optional YAML run file shared by the runners.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"tileroam/internal/gen"
	"tileroam/internal/world"
)

// EnvPath names the variable consulted when Load gets an empty path.
const EnvPath = "TILEROAM_CONFIG"

// ErrInvalid marks every violation reported by File.Validate.
var ErrInvalid = errors.New("config: invalid value")

// File is the on-disk run description.
type File struct {
	// Generation holds gen.FromMap keys such as "w", "pipeline" or
	// "iterations".
	Generation map[string]string `yaml:"generation"`
	Run        RunConfig         `yaml:"run"`
	Metrics    MetricsConfig     `yaml:"metrics"`
}

// RunConfig drives the headless runner.
type RunConfig struct {
	Ticks      int            `yaml:"ticks"`
	DelayMS    int            `yaml:"delay_ms"`
	Cadence    int            `yaml:"cadence"`
	FrameEvery int            `yaml:"frame_every"`
	Spawn      map[string]int `yaml:"spawn"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the settings used when no file is given.
func Default() *File {
	return &File{
		Generation: map[string]string{},
		Run: RunConfig{
			Ticks:      200,
			DelayMS:    0,
			Cadence:    2,
			FrameEvery: 50,
			Spawn:      map[string]int{"orc": 2, "troll": 2, "goblin": 1, "mimic": 1},
		},
	}
}

// Load reads path, falling back to $TILEROAM_CONFIG. With neither set it
// returns Default(). Keys missing from the file keep their defaults.
func Load(path string) (*File, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return Default(), nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default() and validates the result. A spawn
// table in the file replaces the default one.
func Parse(data []byte) (*File, error) {
	f := Default()
	defaultSpawn := f.Run.Spawn
	f.Run.Spawn = nil
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if f.Generation == nil {
		f.Generation = map[string]string{}
	}
	if f.Run.Spawn == nil {
		f.Run.Spawn = defaultSpawn
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Gen builds the generation config.
func (f *File) Gen() gen.Config { return gen.FromMap(f.Generation) }

// Delay is the wall-clock pause between headless ticks.
func (f *File) Delay() time.Duration { return time.Duration(f.Run.DelayMS) * time.Millisecond }

// Spawns maps species to how many to spawn, in a stable order.
func (f *File) Spawns() []SpawnCount {
	names := make([]string, 0, len(f.Run.Spawn))
	for name := range f.Run.Spawn {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]SpawnCount, 0, len(names))
	for _, name := range names {
		t, _ := world.ParseTile(name)
		out = append(out, SpawnCount{Species: t, Count: f.Run.Spawn[name]})
	}
	return out
}

// SpawnCount is one line of the spawn table.
type SpawnCount struct {
	Species world.Tile
	Count   int
}

// Validate reports every invalid field at once, including the generation
// settings.
func (f *File) Validate() error {
	var err error
	if f.Run.Ticks < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: run.ticks %d is negative", ErrInvalid, f.Run.Ticks))
	}
	if f.Run.DelayMS < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: run.delay_ms %d is negative", ErrInvalid, f.Run.DelayMS))
	}
	if f.Run.Cadence < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: run.cadence %d below 1", ErrInvalid, f.Run.Cadence))
	}
	if f.Run.FrameEvery < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: run.frame_every %d is negative", ErrInvalid, f.Run.FrameEvery))
	}
	for name, n := range f.Run.Spawn {
		t, ok := world.ParseTile(name)
		if !ok || !t.IsSpecies() {
			err = multierr.Append(err, fmt.Errorf("%w: run.spawn: unknown species %q", ErrInvalid, name))
		}
		if n < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: run.spawn.%s %d is negative", ErrInvalid, name, n))
		}
	}
	return multierr.Append(err, f.Gen().Validate())
}
