package movement

import (
	"tileroam/internal/core"
	"tileroam/internal/world"
)

// keepOnTiers holds three fallback tiers per previous move: ahead, sideways
// and behind. Each tier is shuffled independently before scanning.
var keepOnTiers = map[world.Move][][]world.Move{
	world.Up: {
		{world.Up, world.UpLeft, world.UpRight},
		{world.Left, world.Right},
		{world.Down, world.DownLeft, world.DownRight},
	},
	world.Down: {
		{world.Down, world.DownLeft, world.DownRight},
		{world.Left, world.Right},
		{world.Up, world.UpLeft, world.UpRight},
	},
	world.Right: {
		{world.Right, world.UpRight, world.DownRight},
		{world.Up, world.Down},
		{world.Left, world.UpLeft, world.DownLeft},
	},
	world.Left: {
		{world.Left, world.UpLeft, world.DownLeft},
		{world.Up, world.Down},
		{world.Right, world.UpRight, world.DownRight},
	},
	world.UpRight: {
		{world.Up, world.UpRight, world.Right},
		{world.UpLeft, world.DownRight},
		{world.Down, world.DownLeft, world.Left},
	},
	world.DownLeft: {
		{world.Down, world.DownLeft, world.Left},
		{world.UpLeft, world.DownRight},
		{world.Up, world.UpRight, world.Right},
	},
	world.UpLeft: {
		{world.Up, world.UpLeft, world.Left},
		{world.UpRight, world.DownLeft},
		{world.Down, world.DownRight, world.Right},
	},
	world.DownRight: {
		{world.Down, world.DownRight, world.Right},
		{world.UpRight, world.DownLeft},
		{world.Up, world.UpLeft, world.Left},
	},
	world.Stay: {
		world.Moves,
	},
}

// KeepOn drifts in its current heading, tolerating diagonal drift, and
// only turns back when nothing ahead or beside it is open.
type KeepOn struct {
	Last world.Move
}

// Kind implements Movement.
func (KeepOn) Kind() Kind { return KindKeepOn }

// Next implements Movement.
func (k KeepOn) Next(t Terrain, current world.Coordinate, rng *core.RNG) (Movement, world.Coordinate) {
	move := firstPassable(t, current, keepOnOrder(k.Last, rng))
	return KeepOn{Last: move}, current.Add(move)
}

func keepOnOrder(last world.Move, rng *core.RNG) []world.Move {
	tiers := keepOnTiers[last]
	var order []world.Move
	for _, tier := range tiers {
		order = append(order, core.Shuffled(rng, tier)...)
	}
	return order
}
