package world

// Field is one grid cell: static terrain plus the current occupant.
type Field struct {
	Ground Tile
	Base   Tile
}

// GroundField returns an unoccupied field with the given terrain.
func GroundField(t Tile) Field { return Field{Ground: t, Base: Empty} }

// Occupied reports whether an entity stands on the field.
func (f Field) Occupied() bool { return f.Base != Empty }

// Passable reports whether an entity may step onto the field.
func (f Field) Passable() bool { return !f.Occupied() && f.Ground.Walkable() }

// Visible is the tile a renderer should show: the occupant if any, else the ground.
func (f Field) Visible() Tile {
	if f.Occupied() {
		return f.Base
	}
	return f.Ground
}

// FieldsFromSymbols parses one map row: '.' grass, '#' stone, '*' tree,
// anything else empty ground.
func FieldsFromSymbols(symbols string) []Field {
	out := make([]Field, 0, len(symbols))
	for _, r := range symbols {
		switch r {
		case '.':
			out = append(out, GroundField(Grass))
		case '#':
			out = append(out, GroundField(Stone))
		case '*':
			out = append(out, GroundField(Tree))
		default:
			out = append(out, GroundField(Empty))
		}
	}
	return out
}
