//go:build ebiten

package app

import (
	"errors"
	"log"
	"time"

	"tileroam/internal/render"
	"tileroam/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCommands = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyN, CmdStep},
	{ebiten.KeyM, CmdStep},
	{ebiten.KeySpace, CmdToggleAuto},
	{ebiten.Key1, CmdSpawnOrc},
	{ebiten.Key2, CmdSpawnTroll},
	{ebiten.Key3, CmdSpawnGoblin},
	{ebiten.Key4, CmdSpawnMimic},
	{ebiten.KeyK, CmdKillAll},
	{ebiten.KeyR, CmdReset},
	{ebiten.KeyS, CmdReseed},
	{ebiten.KeyC, CmdCellular},
	{ebiten.KeyE, CmdErosion},
	{ebiten.KeyD, CmdDilation},
	{ebiten.KeyG, CmdGnubbels},
	{ebiten.KeyEqual, CmdFaster},
	{ebiten.KeyNumpadAdd, CmdFaster},
	{ebiten.KeyMinus, CmdSlower},
	{ebiten.KeyNumpadSubtract, CmdSlower},
	{ebiten.KeyQ, CmdQuit},
	{ebiten.KeyEscape, CmdQuit},
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	logger  *log.Logger

	scale    int
	hudWidth int
}

// New constructs a Game for the provided controller.
func New(ctl *Controller, scale, hudWidth int, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	size := ctl.Game().Size()
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(size.W, size.H, render.Palette()),
		hud:      ui.NewHUD(ctl.Game(), hudWidth),
		logger:   logger,
		scale:    scale,
		hudWidth: hudWidth,
	}
}

func modifier() Modifier {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		return ModShift
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		return ModCtrl
	default:
		return ModNone
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	now := time.Now()
	for _, kc := range keyCommands {
		if !inpututil.IsKeyJustPressed(kc.key) {
			continue
		}
		err := g.ctl.Apply(kc.cmd, modifier(), now)
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		if err != nil {
			g.logger.Printf("%v: %v", kc.cmd, err)
		}
	}
	g.ctl.Advance(now)
	g.hud.Update(g.ctl.Auto(), g.ctl.Delay())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Game().Cells(), g.scale)
	s := g.ctl.Game().Size()
	g.hud.Draw(screen, s.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.Game().Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
