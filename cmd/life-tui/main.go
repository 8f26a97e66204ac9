package main

import (
	"flag"
	"log"
	"os"

	"lifelike/internal/app"
	_ "lifelike/internal/engines/conv"
	_ "lifelike/internal/engines/direct"
	_ "lifelike/internal/engines/fft"
	"lifelike/internal/tui"
)

func main() {
	fs := flag.NewFlagSet("life-tui", flag.ExitOnError)
	generations := fs.Int("generations", 0, "stop after this many generations (0 runs until quit)")

	cfg, err := app.ParseFlags(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	engine, err := cfg.NewEngine()
	if err != nil {
		log.Fatal(err)
	}

	ui, err := tui.New(engine)
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Run(*generations, cfg.TPS); err != nil {
		log.Fatal(err)
	}
}
