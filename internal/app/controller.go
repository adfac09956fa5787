package app

import (
	"errors"
	"strconv"
	"time"

	"tileroam/internal/core"
	"tileroam/internal/engine"
	"tileroam/internal/gen"
	"tileroam/internal/world"
)

// ErrQuit is returned by Controller.Apply for CmdQuit.
var ErrQuit = errors.New("app: quit requested")

// Command is one user action bound to a key.
type Command uint8

const (
	CmdStep Command = iota
	CmdToggleAuto
	CmdSpawnOrc
	CmdSpawnTroll
	CmdSpawnGoblin
	CmdSpawnMimic
	CmdKillAll
	CmdReset
	CmdReseed
	CmdCellular
	CmdErosion
	CmdDilation
	CmdGnubbels
	CmdFaster
	CmdSlower
	CmdQuit
)

var commandNames = [...]string{
	"step", "toggle-auto", "spawn-orc", "spawn-troll", "spawn-goblin", "spawn-mimic",
	"kill-all", "reset", "reseed", "cellular", "erosion", "dilation", "gnubbels",
	"faster", "slower", "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "Command(" + strconv.Itoa(int(c)) + ")"
}

// Modifier selects the spawn cadence.
type Modifier uint8

const (
	ModNone Modifier = iota
	// ModShift spawns slow walkers.
	ModShift
	// ModCtrl spawns fast walkers.
	ModCtrl
)

// Cadence maps a modifier to acting ticks.
func (m Modifier) Cadence() int {
	switch m {
	case ModShift:
		return engine.CadenceSlow
	case ModCtrl:
		return engine.CadenceFast
	default:
		return engine.CadenceNormal
	}
}

const (
	minDelay = 10 * time.Millisecond
	maxDelay = 2 * time.Second
)

var spawnCommands = map[Command]world.Tile{
	CmdSpawnOrc:    world.Orc,
	CmdSpawnTroll:  world.Troll,
	CmdSpawnGoblin: world.Goblin,
	CmdSpawnMimic:  world.Mimic,
}

var passCommands = map[Command]gen.Pass{
	CmdCellular: gen.PassCellular,
	CmdErosion:  gen.PassErosion,
	CmdDilation: gen.PassDilation,
	CmdGnubbels: gen.PassGnubbels,
}

// Controller turns commands into engine calls and owns the stepping clock.
// It holds no simulation logic of its own.
type Controller struct {
	game  *engine.Game
	clock *core.FixedStep
	auto  bool
}

// NewController drives game, stepping automatically every delay.
func NewController(game *engine.Game, delay time.Duration) *Controller {
	return &Controller{game: game, clock: core.NewFixedStep(delay), auto: true}
}

// Game returns the driven game.
func (c *Controller) Game() *engine.Game { return c.game }

// Auto reports whether the clock steps the game.
func (c *Controller) Auto() bool { return c.auto }

// Delay returns the automatic step delay.
func (c *Controller) Delay() time.Duration { return c.clock.Delay() }

// Apply performs cmd. Spawn failures are returned; the game is unchanged.
func (c *Controller) Apply(cmd Command, mod Modifier, now time.Time) error {
	if species, ok := spawnCommands[cmd]; ok {
		_, err := c.game.Spawn(species, mod.Cadence())
		return err
	}
	if pass, ok := passCommands[cmd]; ok {
		return c.game.ApplyPass(pass)
	}
	switch cmd {
	case CmdStep:
		c.game.Step()
	case CmdToggleAuto:
		c.auto = !c.auto
	case CmdKillAll:
		c.game.KillAll()
	case CmdReset:
		c.game.Reset(c.game.Seed())
	case CmdReseed:
		c.game.Reset(now.UnixNano())
	case CmdFaster:
		c.clock.SetDelay(max(c.clock.Delay()/2, minDelay))
	case CmdSlower:
		c.clock.SetDelay(min(c.clock.Delay()*2, maxDelay))
	case CmdQuit:
		return ErrQuit
	}
	return nil
}

// Advance steps the game when automatic stepping is on and the clock is due.
func (c *Controller) Advance(now time.Time) bool {
	if !c.auto || !c.clock.ShouldStep(now) {
		return false
	}
	c.game.Step()
	return true
}
