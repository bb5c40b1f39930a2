//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pengine/internal/app"
	"pengine/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world := sim.NewWithConfig(cfg.SimConfig())
	game := app.New(world, cfg.TPS, cfg.Seed)

	ebiten.SetWindowTitle("pengine")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
