//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tileroam/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := cfg.NewGame(nil)
	if err != nil {
		log.Fatal(err)
	}
	ctl := app.NewController(game, cfg.Delay)
	window := app.New(ctl, cfg.Scale, cfg.HUDWidth, nil)
	size := game.Size()

	ebiten.SetWindowTitle("tileroam: " + game.Config().Pipeline)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(window); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
