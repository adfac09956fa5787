// Package world holds the immutable tile grid entities roam on.
//
// A World is a value: every operation that changes a cell returns a new
// World and leaves the receiver untouched, so a snapshot handed to a
// renderer can be read while the next one is computed.
package world

import (
	"errors"
	"fmt"

	"tileroam/internal/core"
)

// DefaultSize matches the classic 80x25 text screen.
var DefaultSize = core.Size{W: 80, H: 25}

var (
	// ErrNoSpawnableCell reports that no free cell with spawnable ground exists.
	ErrNoSpawnableCell = errors.New("world: no spawnable cell")
	// ErrFieldCount reports a field slice that does not cover the grid.
	ErrFieldCount = errors.New("world: field count does not match size")
)

// World is an immutable snapshot of every field on the grid.
type World struct {
	size   core.Size
	fields []Field
}

// New builds a World from fields laid out in row-major order. The slice is
// copied.
func New(size core.Size, fields []Field) (World, error) {
	if _, err := core.NewSize(size.W, size.H); err != nil {
		return World{}, err
	}
	if len(fields) != size.Cells() {
		return World{}, fmt.Errorf("%w: got %d fields for %dx%d", ErrFieldCount, len(fields), size.W, size.H)
	}
	return World{size: size, fields: append([]Field(nil), fields...)}, nil
}

// Filled returns a World whose ground is t everywhere.
func Filled(size core.Size, t Tile) (World, error) {
	if _, err := core.NewSize(size.W, size.H); err != nil {
		return World{}, err
	}
	fields := make([]Field, size.Cells())
	for i := range fields {
		fields[i] = GroundField(t)
	}
	return World{size: size, fields: fields}, nil
}

// FromRows parses equally long symbol rows (see FieldsFromSymbols).
func FromRows(rows ...string) (World, error) {
	if len(rows) == 0 {
		return World{}, core.ErrInvalidSize
	}
	size := core.Size{W: len(rows[0]), H: len(rows)}
	fields := make([]Field, 0, size.Cells())
	for _, row := range rows {
		fields = append(fields, FieldsFromSymbols(row)...)
	}
	return New(size, fields)
}

// Size returns the grid dimensions.
func (w World) Size() core.Size { return w.size }

// Len returns the number of fields.
func (w World) Len() int { return len(w.fields) }

// Fields returns a copy of every field in row-major order.
func (w World) Fields() []Field { return append([]Field(nil), w.fields...) }

// Field returns the field at a linear index.
func (w World) Field(index int) Field { return w.fields[index] }

// InBounds reports whether c lies on the grid.
func (w World) InBounds(c Coordinate) bool { return w.size.Contains(c.X, c.Y) }

// At returns the field at c. Reaching off the grid is a programming error.
func (w World) At(c Coordinate) Field {
	if !w.InBounds(c) {
		panic(fmt.Sprintf("world: coordinate %v outside %dx%d", c, w.size.W, w.size.H))
	}
	return w.fields[c.Index(w.size)]
}

// IsPassable reports whether an entity may move onto c: the cell must be on
// the grid, unoccupied and on walkable ground.
func (w World) IsPassable(c Coordinate) bool {
	if !w.InBounds(c) {
		return false
	}
	return w.fields[c.Index(w.size)].Passable()
}

// Update moves occupant from one cell to another in a single copy. The
// destination gets the occupant; a distinct origin is vacated and its grass
// trampled. When from == to only the occupant is written.
func (w World) Update(from, to Coordinate, occupant Tile) World {
	fields := append([]Field(nil), w.fields...)
	toIdx := to.Index(w.size)
	if from != to {
		fromIdx := from.Index(w.size)
		fields[fromIdx] = Field{Ground: fields[fromIdx].Ground.Trampled(), Base: Empty}
	}
	fields[toIdx].Base = occupant
	return World{size: w.size, fields: fields}
}

// Place puts occupant on c without vacating anything.
func (w World) Place(c Coordinate, occupant Tile) World {
	fields := append([]Field(nil), w.fields...)
	fields[c.Index(w.size)].Base = occupant
	return World{size: w.size, fields: fields}
}

// ClearEntities drops every occupant and regrows trampled grass.
func (w World) ClearEntities() World {
	return w.Map(func(_ int, f Field) Field {
		return Field{Ground: f.Ground.Restored(), Base: Empty}
	})
}

// Map builds a new World from fn applied to every field of the receiver.
// fn only ever sees the receiver's fields, never partially mapped output.
func (w World) Map(fn func(index int, f Field) Field) World {
	fields := make([]Field, len(w.fields))
	for i, f := range w.fields {
		fields[i] = fn(i, f)
	}
	return World{size: w.size, fields: fields}
}

// Count returns how many fields satisfy pred.
func (w World) Count(pred func(Field) bool) int {
	n := 0
	for _, f := range w.fields {
		if pred(f) {
			n++
		}
	}
	return n
}

// StartCoordinate picks a uniformly random free cell with spawnable ground.
func (w World) StartCoordinate(rng *core.RNG) (Coordinate, error) {
	candidates := make([]int, 0, len(w.fields))
	for i, f := range w.fields {
		if !f.Occupied() && f.Ground.Spawnable() {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return Coordinate{}, ErrNoSpawnableCell
	}
	return Of(w.size, core.Pick(rng, candidates)), nil
}

// BlockedNeighbours counts the Moore neighbours of index that are off the
// grid or not grass. Off-grid cells count so map edges act as walls.
func (w World) BlockedNeighbours(index int) int {
	in := Neighbours(w.size, index)
	blocked := len(Moves) - len(in)
	for _, n := range in {
		if w.fields[n].Ground != Grass {
			blocked++
		}
	}
	return blocked
}
