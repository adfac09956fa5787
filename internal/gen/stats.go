package gen

import (
	"github.com/zyedidia/generic/mapset"

	"tileroam/internal/world"
)

// Stats describes the shape of a generated world.
type Stats struct {
	Cells         int
	Counts        map[world.Tile]int
	PassableRatio float64
	// Regions counts 4-connected groups of passable cells.
	Regions       int
	LargestRegion int
}

// Measure walks w once for tile counts and flood-fills its open regions.
func Measure(w world.World) Stats {
	s := Stats{Cells: w.Len(), Counts: make(map[world.Tile]int)}
	if s.Cells == 0 {
		return s
	}
	open := 0
	for i := 0; i < w.Len(); i++ {
		f := w.Field(i)
		s.Counts[f.Ground]++
		if f.Passable() {
			open++
		}
	}
	s.PassableRatio = float64(open) / float64(s.Cells)

	visited := mapset.New[int]()
	for i := 0; i < w.Len(); i++ {
		if visited.Has(i) || !w.Field(i).Passable() {
			continue
		}
		s.Regions++
		size := 0
		stack := []int{i}
		visited.Put(i)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, n := range world.NeighboursFour(w.Size(), cur) {
				if visited.Has(n) || !w.Field(n).Passable() {
					continue
				}
				visited.Put(n)
				stack = append(stack, n)
			}
		}
		s.LargestRegion = max(s.LargestRegion, size)
	}
	return s
}
