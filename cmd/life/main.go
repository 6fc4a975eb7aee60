//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gol-ca/internal/app"
	"gol-ca/internal/core"
	_ "gol-ca/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(cfg.SimOptions())
	if cfg.Seed != 0 {
		sim.Reset(cfg.Seed)
	}
	session, err := app.AsSession(sim)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("gol-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
