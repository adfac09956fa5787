package engine

import (
	"tileroam/internal/movement"
	"tileroam/internal/world"
)

// Entity is one roaming agent. It owns its movement strategy outright.
type Entity struct {
	ID         string
	Tile       world.Tile
	Coordinate world.Coordinate
	State      ActingState
	Movement   movement.Movement
}

// GameState is the unit of snapshotting: a world and the entities on it,
// in the order they act.
type GameState struct {
	World    world.World
	Entities []Entity
}

// Fields returns the cells a renderer paints, in row-major order.
func (s GameState) Fields() []world.Field { return s.World.Fields() }

// Count returns how many entities of the given species are alive.
func (s GameState) Count(species world.Tile) int {
	n := 0
	for _, e := range s.Entities {
		if e.Tile == species {
			n++
		}
	}
	return n
}
