package gen

import "tileroam/internal/world"

var demoRows = []string{
	".....##.........",
	".....#......####",
	".....#..........",
	"................",
	".......###......",
	"*.....#####.....",
	"......####......",
	"................",
	".......**.......",
	"......*****.....",
	"....***...****..",
	".....**..***....",
	"..........****..",
	".......#........",
	".......###......",
	".......#.###....",
}

// DemoWorld is a fixed 16x16 map for demos and tests.
func DemoWorld() world.World {
	w, err := world.FromRows(demoRows...)
	if err != nil {
		panic("gen: malformed demo map: " + err.Error())
	}
	return w
}
