package engine

import (
	"fmt"
	"log"
	"strconv"

	"tileroam/internal/core"
	"tileroam/internal/gen"
	"tileroam/internal/world"
)

// Observer receives notifications after the game changes state. Callbacks
// run synchronously on the caller's goroutine.
type Observer interface {
	OnReset(pipeline string, w world.World)
	OnSpawn(e Entity)
	OnStep(tick int, r StepReport)
	OnKillAll()
	OnPass(p gen.Pass, w world.World)
}

// Game owns the current GameState and the random source driving it. It is
// not safe for concurrent use; frontends serialize calls.
type Game struct {
	cfg    gen.Config
	rng    *core.RNG
	seed   int64
	tick   int
	state  GameState
	cells  []uint8
	last   StepReport
	logger *log.Logger

	observers []Observer
}

// NewGame validates cfg and generates the first world. A nil logger logs
// through log.Default().
func NewGame(cfg gen.Config, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := gen.Lookup(cfg.Pipeline); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{cfg: cfg, logger: logger}
	g.Reset(cfg.Seed)
	return g, nil
}

// Observe registers o for future notifications.
func (g *Game) Observe(o Observer) {
	g.observers = append(g.observers, o)
}

// Name returns the simulation identifier.
func (g *Game) Name() string { return "tileroam" }

// Size reports the grid dimensions of the current world.
func (g *Game) Size() core.Size { return g.state.World.Size() }

// State returns the current snapshot.
func (g *Game) State() GameState { return g.state }

// Tick returns how many steps ran since the last reset.
func (g *Game) Tick() int { return g.tick }

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 { return g.seed }

// LastReport returns the summary of the most recent step.
func (g *Game) LastReport() StepReport { return g.last }

// Config returns the generation settings in effect.
func (g *Game) Config() gen.Config { return g.cfg }

// Reset regenerates the world from seed and drops every entity. A zero seed
// reuses the configured one.
func (g *Game) Reset(seed int64) {
	if seed == 0 {
		seed = g.cfg.Seed
	}
	g.seed = seed
	g.rng = core.NewRNG(seed)
	w, err := gen.Generate(g.cfg, g.rng)
	if err != nil {
		// cfg was validated on construction and by Regenerate.
		panic(fmt.Sprintf("engine: generate %q: %v", g.cfg.Pipeline, err))
	}
	g.tick = 0
	g.last = StepReport{}
	g.setState(GameState{World: w})
	g.logger.Printf("reset pipeline=%s seed=%d size=%dx%d", g.cfg.Pipeline, seed, w.Size().W, w.Size().H)
	for _, o := range g.observers {
		o.OnReset(g.cfg.Pipeline, w)
	}
}

// Regenerate switches to another pipeline and resets with the current seed.
func (g *Game) Regenerate(pipeline string) error {
	if _, err := gen.Lookup(pipeline); err != nil {
		return err
	}
	g.cfg.Pipeline = pipeline
	g.Reset(g.seed)
	return nil
}

// Step advances the simulation by one tick.
func (g *Game) Step() {
	next, report := Step(g.state, g.rng)
	g.tick++
	g.last = report
	g.setState(next)
	if report.Switched > 0 {
		g.logger.Printf("tick %d: %d walker(s) switched strategy", g.tick, report.Switched)
	}
	for _, o := range g.observers {
		o.OnStep(g.tick, report)
	}
}

// Spawn adds an entity of species acting every cadence ticks.
func (g *Game) Spawn(species world.Tile, cadence int) (Entity, error) {
	next, e, err := Spawn(g.state, species, cadence, g.rng)
	if err != nil {
		g.logger.Printf("spawn %v: %v", species, err)
		return Entity{}, err
	}
	g.setState(next)
	for _, o := range g.observers {
		o.OnSpawn(e)
	}
	return e, nil
}

// KillAll removes every entity and regrows trampled grass.
func (g *Game) KillAll() {
	g.setState(KillAll(g.state))
	for _, o := range g.observers {
		o.OnKillAll()
	}
}

// ApplyPass runs one post-processing pass over the current world. Entities
// keep their cells.
func (g *Game) ApplyPass(p gen.Pass) error {
	w, err := gen.Apply(g.state.World, p)
	if err != nil {
		return err
	}
	g.setState(GameState{World: w, Entities: g.state.Entities})
	for _, o := range g.observers {
		o.OnPass(p, w)
	}
	return nil
}

// Cells returns one display code per cell: the occupant if any, otherwise
// the ground. The slice is reused between calls.
func (g *Game) Cells() []uint8 { return g.cells }

func (g *Game) setState(s GameState) {
	g.state = s
	n := s.World.Len()
	if cap(g.cells) < n {
		g.cells = make([]uint8, n)
	}
	g.cells = g.cells[:n]
	for i := 0; i < n; i++ {
		g.cells[i] = uint8(s.World.Field(i).Visible())
	}
}

// Parameters reports the current settings and population for the HUD.
func (g *Game) Parameters() core.ParameterSnapshot {
	p := g.cfg.Params
	size := g.Size()
	population := []core.Parameter{
		intParam("tick", "Tick", g.tick),
		intParam("entities", "Entities", len(g.state.Entities)),
	}
	for _, s := range world.Species {
		population = append(population, intParam("count_"+s.Symbol(), s.String()+"s", g.state.Count(s)))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				int64Param("seed", "Seed", g.seed),
				stringParam("pipeline", "Pipeline", g.cfg.Pipeline),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				intParam("iterations", "Iterations", p.Iterations),
				floatParam("stone_fraction", "Stone fraction", p.StoneFraction),
				floatParam("noise_scale", "Noise scale", p.NoiseScale),
			},
		},
		{Name: "Population", Params: population},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}

var (
	_ core.Sim               = (*Game)(nil)
	_ core.ParameterProvider = (*Game)(nil)
)
