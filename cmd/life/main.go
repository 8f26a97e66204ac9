//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifelike/internal/app"
	_ "lifelike/internal/engines/conv"
	_ "lifelike/internal/engines/direct"
	_ "lifelike/internal/engines/fft"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	engine, err := cfg.NewEngine()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(engine, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("lifelike — " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(engine.NumX()*cfg.Scale, engine.NumY()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
