package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"tileroam/internal/config"
	"tileroam/internal/engine"
	"tileroam/internal/gen"
	"tileroam/internal/render"
)

// summary is what a run reports when it finishes.
type summary struct {
	Ticks    int
	Entities int
	Moves    int
	Stats    gen.Stats
}

func (s summary) String() string {
	return fmt.Sprintf("ticks=%d entities=%d moves=%d passable=%.2f regions=%d",
		s.Ticks, s.Entities, s.Moves, s.Stats.PassableRatio, s.Stats.Regions)
}

// run builds a game from file, spawns the configured population and steps it,
// writing a frame to out every FrameEvery ticks and once at the end.
func run(file *config.File, obs engine.Observer, out io.Writer, logger *log.Logger) (summary, error) {
	game, err := engine.NewGame(file.Gen(), logger)
	if err != nil {
		return summary{}, err
	}
	if obs != nil {
		game.Observe(obs)
		obs.OnReset(game.Config().Pipeline, game.State().World)
	}
	for _, sc := range file.Spawns() {
		for i := 0; i < sc.Count; i++ {
			if _, err := game.Spawn(sc.Species, file.Run.Cadence); err != nil {
				// A full map only limits the population.
				break
			}
		}
	}

	var s summary
	frame := func() error {
		return render.WriteFrame(out, fmt.Sprintf("tick %d", game.Tick()), game.State().World)
	}
	if err := frame(); err != nil {
		return s, err
	}
	for t := 0; t < file.Run.Ticks; t++ {
		if d := file.Delay(); d > 0 {
			time.Sleep(d)
		}
		game.Step()
		s.Moves += game.LastReport().Moved
		if every := file.Run.FrameEvery; every > 0 && game.Tick()%every == 0 && game.Tick() != file.Run.Ticks {
			if err := frame(); err != nil {
				return s, err
			}
		}
	}
	if file.Run.Ticks > 0 {
		if err := frame(); err != nil {
			return s, err
		}
	}

	s.Ticks = game.Tick()
	s.Entities = len(game.State().Entities)
	s.Stats = gen.Measure(game.State().World)
	return s, nil
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }
