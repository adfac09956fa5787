package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidCadence reports an acting cadence below one tick.
var ErrInvalidCadence = errors.New("engine: cadence must be at least 1 tick")

// ActingState gates how often an entity consults its movement strategy.
// Current runs from 1 to Ticks; the entity acts on the last tick of each
// cycle, so a cadence of 1 acts every tick and a cadence of 4 every fourth.
// Step ticks before checking, so a cadence of 4 acts on its 4th, 8th and
// 12th step after creation.
type ActingState struct {
	Ticks   int
	Current int
}

// NewActingState returns a fresh cycle of the given length. It starts on
// the last position so the first Tick opens position 1.
func NewActingState(ticks int) (ActingState, error) {
	if ticks < 1 {
		return ActingState{}, fmt.Errorf("%w: got %d", ErrInvalidCadence, ticks)
	}
	return ActingState{Ticks: ticks, Current: ticks}, nil
}

// CanAct reports whether this is the acting tick of the cycle.
func (s ActingState) CanAct() bool { return s.Current == s.Ticks }

// Tick advances one position, wrapping to 1 after the last.
func (s ActingState) Tick() ActingState {
	if s.Current < s.Ticks {
		return ActingState{Ticks: s.Ticks, Current: s.Current + 1}
	}
	return ActingState{Ticks: s.Ticks, Current: 1}
}
