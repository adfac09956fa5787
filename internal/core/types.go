package core

import "errors"

// ErrInvalidSize reports a grid with a non-positive dimension.
var ErrInvalidSize = errors.New("core: grid dimensions must be positive")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// NewSize validates the dimensions and returns the corresponding Size.
func NewSize(w, h int) (Size, error) {
	if w <= 0 || h <= 0 {
		return Size{}, ErrInvalidSize
	}
	return Size{W: w, H: h}, nil
}

// Cells reports the number of cells covered by the grid.
func (s Size) Cells() int { return s.W * s.H }

// Contains reports whether (x, y) lies on the grid. There is no wraparound.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Index returns the row-major linear index for (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Coord is the inverse of Index for in-bounds indices.
func (s Size) Coord(i int) (int, int) { return i % s.W, i / s.W }

// Sim defines the minimal contract a frontend drives.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
