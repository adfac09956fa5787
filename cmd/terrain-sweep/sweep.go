package main

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/multierr"

	"tileroam/internal/core"
	"tileroam/internal/gen"
)

type scenario struct {
	pipeline      string
	iterations    int
	stoneFraction float64
	seed          int64
}

func (s scenario) String() string {
	return fmt.Sprintf("pipeline=%s iterations=%d stone=%.2f seed=%d", s.pipeline, s.iterations, s.stoneFraction, s.seed)
}

type scenarioResult struct {
	scenario scenario
	stats    gen.Stats
	// score is the share of the map inside the largest open region.
	score float64
}

func (r scenarioResult) String() string {
	return fmt.Sprintf("score=%.3f passable=%.2f regions=%d largest=%d %s",
		r.score, r.stats.PassableRatio, r.stats.Regions, r.stats.LargestRegion, r.scenario)
}

var (
	iterationOptions = []int{1, 2, 3, 4, 5}
	stoneOptions     = []float64{0.45, 0.50, 0.55}
)

// grid expands pipelines into scenarios. Only the cellular pipelines vary
// iterations and stone fraction.
func grid(pipelines []string, seeds int) []scenario {
	var out []scenario
	for _, p := range pipelines {
		iters, stones := []int{0}, []float64{0}
		switch p {
		case "cellular":
			iters, stones = iterationOptions, stoneOptions
		case "initial":
			stones = stoneOptions
		}
		for _, it := range iters {
			for _, st := range stones {
				for s := 1; s <= seeds; s++ {
					out = append(out, scenario{pipeline: p, iterations: it, stoneFraction: st, seed: int64(s)})
				}
			}
		}
	}
	return out
}

func runScenario(base gen.Config, sc scenario) (scenarioResult, error) {
	cfg := base
	cfg.Pipeline = sc.pipeline
	cfg.Seed = sc.seed
	if sc.iterations > 0 {
		cfg.Params.Iterations = sc.iterations
	}
	if sc.stoneFraction > 0 {
		cfg.Params.StoneFraction = sc.stoneFraction
	}
	w, err := gen.Generate(cfg, core.NewRNG(sc.seed))
	if err != nil {
		return scenarioResult{scenario: sc}, fmt.Errorf("%s: %w", sc, err)
	}
	stats := gen.Measure(w)
	res := scenarioResult{scenario: sc, stats: stats}
	if stats.Cells > 0 {
		res.score = float64(stats.LargestRegion) / float64(stats.Cells)
	}
	return res, nil
}

// sweep runs every scenario on a pool of workers and returns the results
// best first. Each worker owns its RNG and world values.
func sweep(base gen.Config, scenarios []scenario, workers int) ([]scenarioResult, error) {
	if workers < 1 {
		workers = 1
	}
	type outcome struct {
		res scenarioResult
		err error
	}
	jobs := make(chan scenario)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, err := runScenario(base, sc)
				results <- outcome{res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []scenarioResult
	var err error
	for o := range results {
		if o.err != nil {
			err = multierr.Append(err, o.err)
			continue
		}
		all = append(all, o.res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].scenario.String() < all[j].scenario.String()
	})
	return all, err
}
