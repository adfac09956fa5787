package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"tileroam/internal/gen"
	"tileroam/internal/world"
)

func TestLoadWithoutPathUsesDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
	assert.Equal(t, gen.DefaultConfig(), f.Gen())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
generation:
  w: "40"
  h: "20"
  pipeline: simplex
  seed: "9"
run:
  ticks: 10
  delay_ms: 25
  spawn:
    goblin: 3
    orc: 1
metrics:
  addr: ":2112"
`), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	cfg := f.Gen()
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, "simplex", cfg.Pipeline)
	assert.Equal(t, int64(9), cfg.Seed)

	assert.Equal(t, 10, f.Run.Ticks)
	assert.Equal(t, 2, f.Run.Cadence, "unset keys keep defaults")
	assert.Equal(t, 25*time.Millisecond, f.Delay())
	assert.Equal(t, ":2112", f.Metrics.Addr)
	assert.Equal(t, []SpawnCount{{Species: world.Goblin, Count: 3}, {Species: world.Orc, Count: 1}}, f.Spawns())
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run:\n  ticks: 3\n"), 0o644))
	t.Setenv(EnvPath, path)

	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, f.Run.Ticks)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Parse([]byte("run: [unterminated"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidateAggregates(t *testing.T) {
	_, err := Parse([]byte(`
generation:
  w: "0"
run:
  ticks: -1
  cadence: 0
  spawn:
    dragon: 1
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, gen.ErrInvalidConfig)
	assert.Len(t, multierr.Errors(err), 4)
}
