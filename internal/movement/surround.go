package movement

import (
	"github.com/zyedidia/generic/mapset"

	"tileroam/internal/core"
	"tileroam/internal/world"
)

// Mode is the phase of a SurroundObject walker.
type Mode uint8

const (
	// Searching bounces around until something deflects it.
	Searching Mode = iota
	// Surrounding follows the wall that deflected it.
	Surrounding
)

func (m Mode) String() string {
	if m == Surrounding {
		return "surrounding"
	}
	return "searching"
}

const windowSize = 4

// SurroundObject bounces until it hits an obstacle, then walks along it
// keeping the obstacle on one side. Four distinct moves in a row mean it has
// turned around empty space and lost the wall, so it goes back to searching.
type SurroundObject struct {
	LastMove world.Move
	LastWall world.Move
	Mode     Mode
	// Window holds the most recent moves while surrounding, oldest first.
	Window   []world.Move
	Searcher Bouncing
}

// NewSurroundObject returns a searching walker heading in lastMove.
func NewSurroundObject(lastMove, lastWall world.Move) SurroundObject {
	return SurroundObject{
		LastMove: lastMove,
		LastWall: lastWall,
		Mode:     Searching,
		Searcher: Bouncing{Last: lastMove},
	}
}

// Kind implements Movement.
func (SurroundObject) Kind() Kind { return KindSurroundObject }

// Next implements Movement.
func (s SurroundObject) Next(t Terrain, current world.Coordinate, rng *core.RNG) (Movement, world.Coordinate) {
	if s.Mode == Surrounding && s.loopClosed() {
		s.Mode = Searching
		s.Window = nil
	}
	if s.Mode == Searching {
		searcher, move := s.Searcher.step(t, current, rng)
		s.Searcher = searcher
		if move == s.LastMove {
			return s, current.Add(move)
		}
		s.LastWall = s.LastMove
		s.LastMove = core.Pick(rng, s.LastWall.Orthogonal())
		s.Mode = Surrounding
	}
	return s.surround(t, current)
}

func (s SurroundObject) surround(t Terrain, current world.Coordinate) (Movement, world.Coordinate) {
	ahead := t.IsPassable(current.Add(s.LastMove))
	wall := t.IsPassable(current.Add(s.LastWall))
	dest := current

	switch {
	case ahead && !wall:
		dest = current.Add(s.LastMove)
	case wall:
		prev := s.LastMove
		s.LastMove = s.LastWall
		s.LastWall = prev.Reverse()
		dest = current.Add(s.LastMove)
	case !ahead && t.IsPassable(current.Add(s.LastWall.Reverse())):
		prevWall := s.LastWall
		s.LastWall = s.LastMove
		s.LastMove = prevWall.Reverse()
		dest = current.Add(s.LastMove)
	default:
		s.LastMove = s.LastMove.Reverse()
		s.LastWall = s.LastWall.Reverse()
		if t.IsPassable(current.Add(s.LastMove)) {
			dest = current.Add(s.LastMove)
		}
	}
	s.Window = pushWindow(s.Window, s.LastMove)
	return s, dest
}

func (s SurroundObject) loopClosed() bool {
	seen := mapset.New[world.Move]()
	for _, m := range s.Window {
		seen.Put(m)
	}
	return seen.Size() == windowSize
}

// pushWindow appends m into a fresh slice, dropping the oldest move once
// the window is full. The input slice is never written.
func pushWindow(window []world.Move, m world.Move) []world.Move {
	if len(window) == windowSize {
		window = window[1:]
	}
	out := make([]world.Move, 0, windowSize)
	out = append(out, window...)
	return append(out, m)
}
