package movement

import (
	"tileroam/internal/core"
	"tileroam/internal/world"
)

// bouncingPriorities holds, per previous move, the candidate scan orders.
// One of them is picked at random each step.
var bouncingPriorities = map[world.Move][][]world.Move{
	world.Up: {
		{world.Up, world.Right, world.Left, world.Down},
		{world.Up, world.Left, world.Right, world.Down},
	},
	world.Down: {
		{world.Down, world.Right, world.Left, world.Up},
		{world.Down, world.Left, world.Right, world.Up},
	},
	world.Right: {
		{world.Right, world.Up, world.Down, world.Left},
		{world.Right, world.Down, world.Up, world.Left},
	},
	world.Left: {
		{world.Left, world.Up, world.Down, world.Right},
		{world.Left, world.Down, world.Up, world.Right},
	},
	world.Stay: {
		{world.Up, world.Down, world.Right, world.Left},
	},
}

// Bouncing keeps going in a straight line and reflects off obstacles like a
// billiard ball, only reversing when both sides are blocked.
type Bouncing struct {
	Last world.Move
}

// Kind implements Movement.
func (Bouncing) Kind() Kind { return KindBouncing }

// Next implements Movement.
func (b Bouncing) Next(t Terrain, current world.Coordinate, rng *core.RNG) (Movement, world.Coordinate) {
	next, move := b.step(t, current, rng)
	return next, current.Add(move)
}

func (b Bouncing) step(t Terrain, current world.Coordinate, rng *core.RNG) (Bouncing, world.Move) {
	orders, ok := bouncingPriorities[b.Last]
	if !ok {
		orders = bouncingPriorities[world.Stay]
	}
	move := firstPassable(t, current, core.Pick(rng, orders))
	return Bouncing{Last: move}, move
}
