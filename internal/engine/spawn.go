package engine

import (
	"fmt"
	"strconv"

	"tileroam/internal/core"
	"tileroam/internal/world"
)

// Spawn adds one entity of species at a random free cell. The returned state
// is unchanged from the input when an error is reported.
func Spawn(state GameState, species world.Tile, cadence int, rng *core.RNG) (GameState, Entity, error) {
	mv, err := initialMovement(species)
	if err != nil {
		return state, Entity{}, err
	}
	acting, err := NewActingState(cadence)
	if err != nil {
		return state, Entity{}, err
	}
	start, err := state.World.StartCoordinate(rng)
	if err != nil {
		return state, Entity{}, fmt.Errorf("spawn %v: %w", species, err)
	}

	e := Entity{
		ID:         species.Symbol() + strconv.Itoa(len(state.Entities)),
		Tile:       species,
		Coordinate: start,
		State:      acting,
		Movement:   mv,
	}
	entities := make([]Entity, 0, len(state.Entities)+1)
	entities = append(entities, state.Entities...)
	entities = append(entities, e)
	return GameState{World: state.World.Place(start, species), Entities: entities}, e, nil
}

// KillAll drops every entity and restores trampled terrain.
func KillAll(state GameState) GameState {
	return GameState{World: state.World.ClearEntities()}
}
