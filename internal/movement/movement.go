// Package movement implements the strategies that steer entities.
//
// A strategy is a value. Next never mutates its receiver: it returns the
// successor strategy alongside the chosen coordinate, and the caller stores
// that successor on the entity. Snapshots of entities therefore carry a
// complete, independent copy of each strategy's memory.
package movement

import (
	"tileroam/internal/core"
	"tileroam/internal/world"
)

// Terrain is the view of the world a strategy needs.
type Terrain interface {
	IsPassable(c world.Coordinate) bool
}

// Kind names a strategy.
type Kind uint8

const (
	KindBouncing Kind = iota
	KindKeepOn
	KindSurroundObject
	KindSwitching
)

func (k Kind) String() string {
	switch k {
	case KindBouncing:
		return "bouncing"
	case KindKeepOn:
		return "keep-on"
	case KindSurroundObject:
		return "surround-object"
	case KindSwitching:
		return "switching"
	default:
		return "unknown"
	}
}

// Movement computes the next coordinate of an entity standing on current.
type Movement interface {
	Kind() Kind
	Next(t Terrain, current world.Coordinate, rng *core.RNG) (Movement, world.Coordinate)
}

// firstPassable returns the first move in order whose destination is
// passable, or Stay when none is.
func firstPassable(t Terrain, current world.Coordinate, order []world.Move) world.Move {
	for _, m := range order {
		if t.IsPassable(current.Add(m)) {
			return m
		}
	}
	return world.Stay
}
