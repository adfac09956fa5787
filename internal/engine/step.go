package engine

import (
	"tileroam/internal/core"
	"tileroam/internal/movement"
)

// StepReport summarizes one tick for observers.
type StepReport struct {
	Entities int
	Acted    int
	Moved    int
	Trampled int
	// Switched counts Switching walkers that replaced their strategy.
	Switched int
}

// Step advances every entity by one tick. Entities act one after another in
// storage order, each seeing the world as already changed by the ones before
// it, so an earlier entity wins a contested cell.
func Step(state GameState, rng *core.RNG) (GameState, StepReport) {
	w := state.World
	entities := make([]Entity, 0, len(state.Entities))
	report := StepReport{Entities: len(state.Entities)}

	for _, old := range state.Entities {
		next := old
		next.State = old.State.Tick()
		if next.State.CanAct() && old.Movement != nil {
			report.Acted++
			next.Movement, next.Coordinate = old.Movement.Next(w, old.Coordinate, rng)
			if sw, ok := next.Movement.(movement.Switching); ok && sw.Count == 0 {
				report.Switched++
			}
		}
		if next.Coordinate != old.Coordinate {
			report.Moved++
			if g := w.At(old.Coordinate).Ground; g.Trampled() != g {
				report.Trampled++
			}
		}
		w = w.Update(old.Coordinate, next.Coordinate, next.Tile)
		entities = append(entities, next)
	}

	return GameState{World: w, Entities: entities}, report
}
