package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tileroam/internal/engine"
	"tileroam/internal/gen"
	"tileroam/internal/world"
)

func newGame(t *testing.T, pipeline string) *engine.Game {
	t.Helper()
	cfg := gen.DefaultConfig()
	cfg.Width, cfg.Height = 12, 8
	cfg.Pipeline = pipeline
	g, err := engine.NewGame(cfg, nil)
	require.NoError(t, err)
	return g
}

func TestCollectorTracksGame(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	g := newGame(t, "grass")
	g.Observe(c)

	for _, s := range []world.Tile{world.Orc, world.Orc, world.Troll} {
		_, err := g.Spawn(s, engine.CadenceFast)
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		g.Step()
	}

	assert.Equal(t, 5.0, testutil.ToFloat64(c.ticks))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.spawns.WithLabelValues("Orc")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.spawns.WithLabelValues("Troll")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.entities))
	assert.Positive(t, testutil.ToFloat64(c.moves))

	g.Reset(0)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.resets))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.entities))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.passableRatio))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.regions))
}

func TestCollectorFollowsKillAllAndPasses(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	g := newGame(t, "scatter")
	g.Observe(c)

	for i := 0; i < 3; i++ {
		_, err := g.Spawn(world.Goblin, engine.CadenceFast)
		require.NoError(t, err)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(c.entities))
	g.KillAll()
	assert.Equal(t, 0.0, testutil.ToFloat64(c.entities))

	require.NoError(t, g.ApplyPass(gen.PassCellular))
	require.NoError(t, g.ApplyPass(gen.PassGnubbels))
	want := gen.Measure(g.State().World)
	assert.Equal(t, want.PassableRatio, testutil.ToFloat64(c.passableRatio))
	assert.Equal(t, float64(want.Regions), testutil.ToFloat64(c.regions))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.passes.WithLabelValues(gen.PassCellular.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.passes.WithLabelValues(gen.PassGnubbels.String())))
}

func TestHandlerServesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	c.OnStep(1, engine.StepReport{Entities: 2, Moved: 1})

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "tileroam_ticks_total 1")
	assert.Contains(t, rec.Body.String(), "tileroam_entities 2")
}
