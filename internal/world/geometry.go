package world

import "tileroam/internal/core"

// Coordinate addresses a cell. It may lie off the grid; callers check
// with World.InBounds before indexing.
type Coordinate struct {
	X, Y int
}

// Of converts a linear index back into a Coordinate for the given size.
func Of(size core.Size, index int) Coordinate {
	x, y := size.Coord(index)
	return Coordinate{X: x, Y: y}
}

// Index returns the linear index of c within size.
func (c Coordinate) Index(size core.Size) int { return size.Index(c.X, c.Y) }

// Add applies a move. The result may leave the grid.
func (c Coordinate) Add(m Move) Coordinate {
	dx, dy := m.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Move is one step in one of the eight compass directions, or Stay.
type Move uint8

const (
	Stay Move = iota
	Up
	UpRight
	UpLeft
	Down
	DownRight
	DownLeft
	Right
	Left
)

var moveNames = [...]string{"Stay", "Up", "UpRight", "UpLeft", "Down", "DownRight", "DownLeft", "Right", "Left"}

var moveDeltas = [...][2]int{
	Stay:      {0, 0},
	Up:        {0, -1},
	UpRight:   {1, -1},
	UpLeft:    {-1, -1},
	Down:      {0, 1},
	DownRight: {1, 1},
	DownLeft:  {-1, 1},
	Right:     {1, 0},
	Left:      {-1, 0},
}

// Moves lists the eight non-Stay directions in declaration order.
var Moves = []Move{Up, UpRight, UpLeft, Down, DownRight, DownLeft, Right, Left}

// OrthogonalMoves lists the four axis-aligned directions.
var OrthogonalMoves = []Move{Up, Down, Right, Left}

func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}
	return "Move(?)"
}

// Delta returns the (dx, dy) offset of the move.
func (m Move) Delta() (int, int) {
	if int(m) >= len(moveDeltas) {
		return 0, 0
	}
	d := moveDeltas[m]
	return d[0], d[1]
}

// Reverse returns the opposite of an axis-aligned move. Stay and the
// diagonals have no reverse and map to Stay.
func (m Move) Reverse() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return Stay
	}
}

// Orthogonal returns the two directions perpendicular to an axis-aligned
// move, or just Stay for anything else.
func (m Move) Orthogonal() []Move {
	switch m {
	case Up, Down:
		return []Move{Right, Left}
	case Right, Left:
		return []Move{Up, Down}
	default:
		return []Move{Stay}
	}
}

// Neighbours returns the in-bounds indices one non-Stay move away from index.
func Neighbours(size core.Size, index int) []int {
	return neighboursVia(size, index, Moves)
}

// NeighboursFour is Neighbours restricted to the four orthogonal directions.
func NeighboursFour(size core.Size, index int) []int {
	return neighboursVia(size, index, OrthogonalMoves)
}

func neighboursVia(size core.Size, index int, moves []Move) []int {
	c := Of(size, index)
	out := make([]int, 0, len(moves))
	for _, m := range moves {
		n := c.Add(m)
		if size.Contains(n.X, n.Y) {
			out = append(out, n.Index(size))
		}
	}
	return out
}
