package engine

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tileroam/internal/core"
	"tileroam/internal/gen"
	"tileroam/internal/movement"
	"tileroam/internal/world"
)

func mustRows(t *testing.T, rows ...string) world.World {
	t.Helper()
	w, err := world.FromRows(rows...)
	require.NoError(t, err)
	return w
}

func walker(t *testing.T, id string, tile world.Tile, at world.Coordinate, cadence int, mv movement.Movement) Entity {
	t.Helper()
	acting, err := NewActingState(cadence)
	require.NoError(t, err)
	return Entity{ID: id, Tile: tile, Coordinate: at, State: acting, Movement: mv}
}

func stateWith(w world.World, entities ...Entity) GameState {
	for _, e := range entities {
		w = w.Place(e.Coordinate, e.Tile)
	}
	return GameState{World: w, Entities: entities}
}

func TestActingStateIsCyclic(t *testing.T) {
	for ticks := 1; ticks <= 5; ticks++ {
		start, err := NewActingState(ticks)
		require.NoError(t, err)
		s := start
		acts := 0
		for i := 0; i < ticks; i++ {
			s = s.Tick()
			if s.CanAct() {
				acts++
			}
			assert.GreaterOrEqual(t, s.Current, 1)
			assert.LessOrEqual(t, s.Current, ticks)
		}
		assert.Equal(t, start, s, "period %d", ticks)
		assert.Equal(t, 1, acts, "period %d", ticks)
	}
}

func TestNewActingStateRejectsZero(t *testing.T) {
	_, err := NewActingState(0)
	assert.ErrorIs(t, err, ErrInvalidCadence)
}

func TestBouncingCorridorEndToEnd(t *testing.T) {
	w := mustRows(t,
		"###",
		"...",
		"###",
	)
	orc := walker(t, "O0", world.Orc, world.Coordinate{X: 0, Y: 1}, 1, movement.Bouncing{Last: world.Right})
	state := stateWith(w, orc)
	rng := core.NewRNG(1)

	want := []world.Coordinate{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	lasts := []world.Move{world.Right, world.Right, world.Left, world.Left}
	for i := range want {
		state, _ = Step(state, rng)
		e := state.Entities[0]
		assert.Equal(t, want[i], e.Coordinate, "step %d", i+1)
		assert.Equal(t, lasts[i], e.Movement.(movement.Bouncing).Last, "step %d", i+1)
		assert.Equal(t, world.Orc, state.World.At(e.Coordinate).Base)
	}
	assert.Equal(t, 1, state.World.Count(world.Field.Occupied))
	for x := 0; x < 3; x++ {
		assert.Equal(t, world.StompedGrass, state.World.At(world.Coordinate{X: x, Y: 1}).Ground, "x=%d", x)
	}
}

func TestEarlierEntityClaimsContestedCell(t *testing.T) {
	w := mustRows(t, "...")
	left := walker(t, "O0", world.Orc, world.Coordinate{X: 0, Y: 0}, 1, movement.Bouncing{Last: world.Right})
	right := walker(t, "T1", world.Troll, world.Coordinate{X: 2, Y: 0}, 1, movement.Bouncing{Last: world.Left})
	middle := world.Coordinate{X: 1, Y: 0}

	next, report := Step(stateWith(w, left, right), core.NewRNG(1))
	assert.Equal(t, middle, next.Entities[0].Coordinate)
	assert.Equal(t, right.Coordinate, next.Entities[1].Coordinate)
	assert.Equal(t, world.Orc, next.World.At(middle).Base)
	assert.Equal(t, 1, report.Moved)
	assert.Equal(t, 2, report.Acted)

	next, _ = Step(stateWith(w, right, left), core.NewRNG(1))
	assert.Equal(t, middle, next.Entities[0].Coordinate)
	assert.Equal(t, left.Coordinate, next.Entities[1].Coordinate)
	assert.Equal(t, world.Troll, next.World.At(middle).Base)
}

func TestCadenceGatesMovement(t *testing.T) {
	w := mustRows(t, "..........")
	orc := walker(t, "O0", world.Orc, world.Coordinate{X: 0, Y: 0}, 3, movement.Bouncing{Last: world.Right})
	state := stateWith(w, orc)
	rng := core.NewRNG(1)

	moves := 0
	for i := 0; i < 9; i++ {
		var r StepReport
		state, r = Step(state, rng)
		moves += r.Moved
	}
	assert.Equal(t, 3, moves)
	assert.Equal(t, world.Coordinate{X: 3, Y: 0}, state.Entities[0].Coordinate)
}

func TestCadenceActsOnMultiplesFromCreation(t *testing.T) {
	w := mustRows(t, "................")
	orc := walker(t, "O0", world.Orc, world.Coordinate{X: 0, Y: 0}, CadenceSlow, movement.Bouncing{Last: world.Right})
	state := stateWith(w, orc)
	rng := core.NewRNG(1)

	var acted []int
	for step := 1; step <= 12; step++ {
		var r StepReport
		state, r = Step(state, rng)
		if r.Acted > 0 {
			acted = append(acted, step)
		}
	}
	assert.Equal(t, []int{4, 8, 12}, acted)
	assert.Equal(t, world.Coordinate{X: 3, Y: 0}, state.Entities[0].Coordinate)
}

func TestStepReportsTrampling(t *testing.T) {
	w := mustRows(t, ".;.")
	orc := walker(t, "O0", world.Orc, world.Coordinate{X: 0, Y: 0}, 1, movement.Bouncing{Last: world.Right})
	state := stateWith(w, orc)
	rng := core.NewRNG(1)

	state, r := Step(state, rng)
	assert.Equal(t, 1, r.Trampled)
	_, r = Step(state, rng)
	assert.Equal(t, 1, r.Moved)
	assert.Zero(t, r.Trampled, "empty ground stays as it is")
}

func TestStepLeavesInputUntouched(t *testing.T) {
	w := mustRows(t, "...")
	orc := walker(t, "O0", world.Orc, world.Coordinate{X: 0, Y: 0}, 1, movement.Bouncing{Last: world.Right})
	state := stateWith(w, orc)
	before := state.World.Fields()

	_, _ = Step(state, core.NewRNG(1))
	assert.Equal(t, before, state.World.Fields())
	assert.Equal(t, orc.Coordinate, state.Entities[0].Coordinate)
}

func TestStepCountsSwitches(t *testing.T) {
	w := mustRows(t, ".....", ".....", ".....")
	mimic := walker(t, "M0", world.Mimic, world.Coordinate{X: 2, Y: 1}, 1,
		movement.Switching{Active: movement.Bouncing{}, Count: movement.SwitchAfter})
	_, r := Step(stateWith(w, mimic), core.NewRNG(4))
	assert.Equal(t, 1, r.Switched)
}

func TestSpawnPlacesEntity(t *testing.T) {
	state := GameState{World: mustRows(t, "#.#", "###")}
	rng := core.NewRNG(1)

	next, e, err := Spawn(state, world.Troll, CadenceNormal, rng)
	require.NoError(t, err)
	assert.Equal(t, "T0", e.ID)
	assert.Equal(t, world.Coordinate{X: 1, Y: 0}, e.Coordinate)
	assert.Equal(t, ActingState{Ticks: 2, Current: 2}, e.State)
	assert.Equal(t, movement.KindKeepOn, e.Movement.Kind())
	assert.Equal(t, world.Troll, next.World.At(e.Coordinate).Base)
	assert.Empty(t, state.Entities, "input state unchanged")

	_, _, err = Spawn(next, world.Orc, CadenceFast, rng)
	assert.ErrorIs(t, err, world.ErrNoSpawnableCell)
}

func TestSpawnStrategiesPerSpecies(t *testing.T) {
	want := map[world.Tile]movement.Kind{
		world.Orc:    movement.KindBouncing,
		world.Troll:  movement.KindKeepOn,
		world.Goblin: movement.KindSurroundObject,
		world.Mimic:  movement.KindSwitching,
	}
	state := GameState{World: mustRows(t, "....", "....")}
	rng := core.NewRNG(2)
	for i, s := range world.Species {
		var e Entity
		var err error
		state, e, err = Spawn(state, s, CadenceSlow, rng)
		require.NoError(t, err)
		assert.Equal(t, want[s], e.Movement.Kind())
		assert.Equal(t, s.Symbol()+string(rune('0'+i)), e.ID)
	}
	assert.Len(t, state.Entities, 4)
}

func TestSpawnErrors(t *testing.T) {
	state := GameState{World: mustRows(t, "...")}
	rng := core.NewRNG(1)

	_, _, err := Spawn(state, world.Stone, 1, rng)
	assert.ErrorIs(t, err, ErrUnknownSpecies)
	_, _, err = Spawn(state, world.Orc, 0, rng)
	assert.ErrorIs(t, err, ErrInvalidCadence)

	full := GameState{World: mustRows(t, "#*#")}
	after, _, err := Spawn(full, world.Goblin, 1, rng)
	assert.ErrorIs(t, err, world.ErrNoSpawnableCell)
	assert.Equal(t, full, after)
}

func TestKillAllRestoresTerrain(t *testing.T) {
	state := GameState{World: mustRows(t, "......", "......")}
	rng := core.NewRNG(9)
	var err error
	for _, s := range world.Species {
		state, _, err = Spawn(state, s, 1, rng)
		require.NoError(t, err)
	}
	for i := 0; i < 20; i++ {
		state, _ = Step(state, rng)
	}

	cleared := KillAll(state)
	assert.Empty(t, cleared.Entities)
	assert.Zero(t, cleared.World.Count(world.Field.Occupied))
	assert.Zero(t, cleared.World.Count(func(f world.Field) bool { return f.Ground == world.StompedGrass }))
}

type recorder struct {
	resets []string
	spawns []string
	steps  []int
	kills  int
	passes []gen.Pass
}

func (r *recorder) OnReset(pipeline string, _ world.World) { r.resets = append(r.resets, pipeline) }
func (r *recorder) OnSpawn(e Entity)                       { r.spawns = append(r.spawns, e.ID) }
func (r *recorder) OnStep(tick int, _ StepReport)          { r.steps = append(r.steps, tick) }
func (r *recorder) OnKillAll()                             { r.kills++ }
func (r *recorder) OnPass(p gen.Pass, _ world.World)       { r.passes = append(r.passes, p) }

func newTestGame(t *testing.T, pipeline string) (*Game, *bytes.Buffer) {
	t.Helper()
	cfg := gen.DefaultConfig()
	cfg.Width, cfg.Height = 20, 10
	cfg.Pipeline = pipeline
	var buf bytes.Buffer
	g, err := NewGame(cfg, log.New(&buf, "", 0))
	require.NoError(t, err)
	return g, &buf
}

func TestGameResetIsDeterministic(t *testing.T) {
	g, logs := newTestGame(t, "scatter")
	first := append([]uint8(nil), g.Cells()...)
	assert.Contains(t, logs.String(), "reset pipeline=scatter seed=1337")

	_, err := g.Spawn(world.Orc, 1)
	require.NoError(t, err)
	g.Step()
	g.Reset(0)

	assert.Equal(t, first, g.Cells())
	assert.Empty(t, g.State().Entities)
	assert.Zero(t, g.Tick())

	g.Reset(42)
	assert.Equal(t, int64(42), g.Seed())
}

func TestGameCellsShowOccupants(t *testing.T) {
	g, _ := newTestGame(t, "grass")
	e, err := g.Spawn(world.Goblin, 1)
	require.NoError(t, err)

	idx := e.Coordinate.Index(g.Size())
	assert.Equal(t, uint8(world.Goblin), g.Cells()[idx])
	assert.Equal(t, g.Size().Cells(), len(g.Cells()))
	assert.Equal(t, g.Size().Cells()-1, countCells(g.Cells(), uint8(world.Grass)))
}

func countCells(cells []uint8, v uint8) int {
	n := 0
	for _, c := range cells {
		if c == v {
			n++
		}
	}
	return n
}

func TestGameNotifiesObservers(t *testing.T) {
	g, _ := newTestGame(t, "grass")
	rec := &recorder{}
	g.Observe(rec)

	_, err := g.Spawn(world.Orc, 1)
	require.NoError(t, err)
	g.Step()
	g.Step()
	require.NoError(t, g.ApplyPass(gen.PassErosion))
	require.Error(t, g.ApplyPass(gen.Pass(99)))
	g.KillAll()
	require.NoError(t, g.Regenerate("scatter"))

	assert.Equal(t, []string{"O0"}, rec.spawns)
	assert.Equal(t, []int{1, 2}, rec.steps)
	assert.Equal(t, []gen.Pass{gen.PassErosion}, rec.passes)
	assert.Equal(t, 1, rec.kills)
	assert.Equal(t, []string{"scatter"}, rec.resets)
	assert.Equal(t, "scatter", g.Config().Pipeline)
}

func TestGameCommands(t *testing.T) {
	g, logs := newTestGame(t, "grass")
	for i := 0; i < 3; i++ {
		_, err := g.Spawn(world.Troll, CadenceFast)
		require.NoError(t, err)
	}
	g.Step()
	assert.Equal(t, 3, g.LastReport().Acted)

	require.NoError(t, g.ApplyPass(gen.PassDilation))
	assert.Len(t, g.State().Entities, 3, "passes keep entities")

	g.KillAll()
	assert.Empty(t, g.State().Entities)
	assert.Zero(t, countCells(g.Cells(), uint8(world.Troll)))

	assert.ErrorIs(t, g.Regenerate("nope"), gen.ErrUnknownPipeline)
	assert.ErrorIs(t, g.ApplyPass(gen.Pass(99)), gen.ErrUnknownPass)

	_, err := g.Spawn(world.Grass, 1)
	assert.ErrorIs(t, err, ErrUnknownSpecies)
	assert.Contains(t, logs.String(), "spawn Grass")
}

func TestGameParameters(t *testing.T) {
	g, _ := newTestGame(t, "grass")
	_, err := g.Spawn(world.Mimic, 1)
	require.NoError(t, err)

	snap := g.Parameters()
	p, ok := snap.Lookup("count_M")
	require.True(t, ok)
	assert.Equal(t, "1", p.Value)
	p, ok = snap.Lookup("pipeline")
	require.True(t, ok)
	assert.Equal(t, "grass", p.Value)
	p, ok = snap.Lookup("w")
	require.True(t, ok)
	assert.Equal(t, "20", p.Value)
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := gen.DefaultConfig()
	cfg.Width = -1
	_, err := NewGame(cfg, nil)
	assert.ErrorIs(t, err, gen.ErrInvalidConfig)

	cfg = gen.DefaultConfig()
	cfg.Pipeline = "lava"
	_, err = NewGame(cfg, nil)
	assert.ErrorIs(t, err, gen.ErrUnknownPipeline)
}
