// Package metrics exports simulation counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tileroam/internal/engine"
	"tileroam/internal/gen"
	"tileroam/internal/world"
)

const namespace = "tileroam"

// Collector implements engine.Observer and keeps Prometheus metrics current.
type Collector struct {
	ticks    prometheus.Counter
	moves    prometheus.Counter
	trampled prometheus.Counter
	switches prometheus.Counter
	resets   prometheus.Counter
	spawns   *prometheus.CounterVec
	passes   *prometheus.CounterVec

	entities      prometheus.Gauge
	passableRatio prometheus.Gauge
	regions       prometheus.Gauge
}

// New creates the collector and registers it with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation steps run.",
		}),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Entity moves to a different cell.",
		}),
		trampled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trampled_total",
			Help:      "Grass cells stomped by departing entities.",
		}),
		switches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strategy_switches_total",
			Help:      "Strategy replacements by switching walkers.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Worlds generated.",
		}),
		spawns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spawns_total",
			Help:      "Entities spawned, by species.",
		}, []string{"species"}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_total",
			Help:      "Post-processing passes applied to a running world, by pass.",
		}, []string{"pass"}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Entities alive.",
		}),
		passableRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "world_passable_ratio",
			Help:      "Share of passable cells in the current world.",
		}),
		regions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "world_regions",
			Help:      "Connected open regions in the current world.",
		}),
	}
	reg.MustRegister(c.ticks, c.moves, c.trampled, c.switches, c.resets, c.spawns, c.passes,
		c.entities, c.passableRatio, c.regions)
	return c
}

// OnReset implements engine.Observer.
func (c *Collector) OnReset(_ string, w world.World) {
	c.resets.Inc()
	c.entities.Set(0)
	c.measure(w)
}

// OnSpawn implements engine.Observer.
func (c *Collector) OnSpawn(e engine.Entity) {
	c.spawns.WithLabelValues(e.Tile.String()).Inc()
	c.entities.Inc()
}

// OnStep implements engine.Observer.
func (c *Collector) OnStep(_ int, r engine.StepReport) {
	c.ticks.Inc()
	c.moves.Add(float64(r.Moved))
	c.trampled.Add(float64(r.Trampled))
	c.switches.Add(float64(r.Switched))
	c.entities.Set(float64(r.Entities))
}

// OnKillAll implements engine.Observer.
func (c *Collector) OnKillAll() {
	c.entities.Set(0)
}

// OnPass implements engine.Observer.
func (c *Collector) OnPass(p gen.Pass, w world.World) {
	c.passes.WithLabelValues(p.String()).Inc()
	c.measure(w)
}

func (c *Collector) measure(w world.World) {
	s := gen.Measure(w)
	c.passableRatio.Set(s.PassableRatio)
	c.regions.Set(float64(s.Regions))
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

var _ engine.Observer = (*Collector)(nil)
