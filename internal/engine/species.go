package engine

import (
	"errors"
	"fmt"

	"tileroam/internal/movement"
	"tileroam/internal/world"
)

// ErrUnknownSpecies reports a spawn request for a tile that is not a species.
var ErrUnknownSpecies = errors.New("engine: unknown species")

// Cadence presets offered by frontends.
const (
	CadenceFast   = 1
	CadenceNormal = 2
	CadenceSlow   = 4
)

// initialMovement returns the strategy a freshly spawned entity starts with.
func initialMovement(species world.Tile) (movement.Movement, error) {
	switch species {
	case world.Orc:
		return movement.Bouncing{Last: world.Stay}, nil
	case world.Troll:
		return movement.KeepOn{Last: world.Stay}, nil
	case world.Goblin:
		return movement.NewSurroundObject(world.Up, world.Left), nil
	case world.Mimic:
		return movement.NewSwitching(movement.Bouncing{Last: world.Stay}), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownSpecies, species)
	}
}
