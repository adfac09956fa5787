package movement

import (
	"tileroam/internal/core"
	"tileroam/internal/world"
)

// SwitchAfter is how many consultations a Switching walker sticks with one
// strategy.
const SwitchAfter = 100

// Switching delegates to one strategy and swaps it for a fresh random one
// after SwitchAfter consultations. The replaced strategy's memory is dropped.
type Switching struct {
	Active Movement
	Count  int
}

// NewSwitching starts with initial as the active strategy.
func NewSwitching(initial Movement) Switching {
	return Switching{Active: initial}
}

// Kind implements Movement.
func (Switching) Kind() Kind { return KindSwitching }

// Next implements Movement.
func (s Switching) Next(t Terrain, current world.Coordinate, rng *core.RNG) (Movement, world.Coordinate) {
	s.Count++
	if s.Count > SwitchAfter {
		s.Count = 0
		s.Active = core.Pick(rng, switchPool())
	}
	if s.Active == nil {
		s.Active = Bouncing{}
	}
	next, c := s.Active.Next(t, current, rng)
	s.Active = next
	return s, c
}

func switchPool() []Movement {
	return []Movement{
		Bouncing{Last: world.Up},
		KeepOn{Last: world.Right},
		NewSurroundObject(world.Left, world.Right),
	}
}
