package world

import "strings"

// Tile enumerates both terrain kinds (ground) and occupants (base).
type Tile uint8

const (
	Empty Tile = iota
	Grass
	StompedGrass
	Stone
	Tree
	Orc
	Troll
	Goblin
	Mimic

	tileCount
)

var tileNames = [...]string{"Empty", "Grass", "StompedGrass", "Stone", "Tree", "Orc", "Troll", "Goblin", "Mimic"}

var tileSymbols = [...]string{"", ";", ".", "^", "*", "O", "T", "G", "M"}

// Tiles lists every tile kind.
func Tiles() []Tile {
	out := make([]Tile, tileCount)
	for i := range out {
		out[i] = Tile(i)
	}
	return out
}

// Species lists the tiles that stand for an entity.
var Species = []Tile{Orc, Troll, Goblin, Mimic}

func (t Tile) String() string {
	if t < tileCount {
		return tileNames[t]
	}
	return "Tile(?)"
}

// Symbol is the single-glyph rendering of the tile.
func (t Tile) Symbol() string {
	if t < tileCount {
		return tileSymbols[t]
	}
	return "?"
}

// Walkable reports whether an entity may stand on ground of this kind.
func (t Tile) Walkable() bool {
	switch t {
	case Empty, Grass, StompedGrass:
		return true
	default:
		return false
	}
}

// Spawnable reports whether a new entity may be placed on ground of this kind.
func (t Tile) Spawnable() bool {
	switch t {
	case Empty, Grass, StompedGrass:
		return true
	default:
		return false
	}
}

// IsSpecies reports whether the tile stands for an entity.
func (t Tile) IsSpecies() bool {
	switch t {
	case Orc, Troll, Goblin, Mimic:
		return true
	default:
		return false
	}
}

// Trampled is the ground left behind when an entity walks off it.
func (t Tile) Trampled() Tile {
	if t == Grass {
		return StompedGrass
	}
	return t
}

// Restored undoes Trampled.
func (t Tile) Restored() Tile {
	if t == StompedGrass {
		return Grass
	}
	return t
}

// ParseTile matches a tile by name, case-insensitively.
func ParseTile(name string) (Tile, bool) {
	for i, n := range tileNames {
		if strings.EqualFold(n, name) {
			return Tile(i), true
		}
	}
	return Empty, false
}
