package gen

import (
	"errors"
	"fmt"
	"strings"

	"tileroam/internal/world"
)

// ErrUnknownPass reports a pass name ParsePass does not recognise.
var ErrUnknownPass = errors.New("gen: unknown pass")

// Pass names one of the post-processing transforms.
type Pass uint8

const (
	PassCellular Pass = iota
	PassErosion
	PassDilation
	PassGnubbels
)

var passNames = [...]string{"cellular", "erosion", "dilation", "gnubbels"}

// Passes lists every pass in declaration order.
var Passes = []Pass{PassCellular, PassErosion, PassDilation, PassGnubbels}

func (p Pass) String() string {
	if int(p) < len(passNames) {
		return passNames[p]
	}
	return fmt.Sprintf("Pass(%d)", uint8(p))
}

// ParsePass matches a pass by name, case-insensitively.
func ParsePass(name string) (Pass, error) {
	for i, n := range passNames {
		if strings.EqualFold(n, name) {
			return Pass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPass, name)
}

// Apply runs pass p over w.
func Apply(w world.World, p Pass) (world.World, error) {
	switch p {
	case PassCellular:
		return CellularAutomata(w), nil
	case PassErosion:
		return Erosion(w), nil
	case PassDilation:
		return Dilation(w), nil
	case PassGnubbels:
		return RemoveGnubbels(w), nil
	default:
		return w, fmt.Errorf("%w: %v", ErrUnknownPass, p)
	}
}

// Every pass below reads only the input snapshot and rewrites ground. An
// occupant keeps its cell.

func withGround(f world.Field, t world.Tile) world.Field {
	return world.Field{Ground: t, Base: f.Base}
}

func grassNeighbours(w world.World, neighbours []int) int {
	n := 0
	for _, i := range neighbours {
		if w.Field(i).Ground == world.Grass {
			n++
		}
	}
	return n
}

// CellularAutomata sets a cell to Stone when more than four of its eight
// neighbours are blocked, and to Grass otherwise. Off-grid counts as blocked.
func CellularAutomata(w world.World) world.World {
	return w.Map(func(i int, f world.Field) world.Field {
		if w.BlockedNeighbours(i) > 4 {
			return withGround(f, world.Stone)
		}
		return withGround(f, world.Grass)
	})
}

// Erosion turns every non-grass cell touching grass into grass.
func Erosion(w world.World) world.World {
	return w.Map(func(i int, f world.Field) world.Field {
		if f.Ground != world.Grass && grassNeighbours(w, world.Neighbours(w.Size(), i)) > 0 {
			return withGround(f, world.Grass)
		}
		return f
	})
}

// Dilation turns every grass cell touching non-grass into stone. It is not
// the inverse of Erosion.
func Dilation(w world.World) world.World {
	return w.Map(func(i int, f world.Field) world.Field {
		if f.Ground != world.Grass {
			return f
		}
		in := world.Neighbours(w.Size(), i)
		if grassNeighbours(w, in) < len(in) {
			return withGround(f, world.Stone)
		}
		return f
	})
}

// RemoveGnubbels clears non-grass cells with more than two grass cells among
// their four orthogonal neighbours.
func RemoveGnubbels(w world.World) world.World {
	return w.Map(func(i int, f world.Field) world.Field {
		if f.Ground != world.Grass && grassNeighbours(w, world.NeighboursFour(w.Size(), i)) > 2 {
			return withGround(f, world.Grass)
		}
		return f
	})
}
