package main

import (
	"flag"
	"log"
	"os"
	"time"

	"lifelike/internal/app"
	_ "lifelike/internal/engines/conv"
	_ "lifelike/internal/engines/direct"
	_ "lifelike/internal/engines/fft"
	"lifelike/internal/render"
)

func main() {
	fs := flag.NewFlagSet("life-gif", flag.ExitOnError)
	output := fs.String("o", "life.gif", "output GIF path")
	frames := fs.Int("frames", 10, "number of generations to render")
	delay := fs.Duration("delay", 500*time.Millisecond, "time per frame")

	cfg, err := app.ParseFlags(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	engine, err := cfg.NewEngine()
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	err = render.WriteGIF(f, engine, *frames, *delay, cfg.Scale, func(frame int) {
		if (frame+1)%10 == 0 || frame+1 == *frames {
			log.Printf("rendered %d/%d generations", frame+1, *frames)
		}
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("saved %d generations of %dx%d %s to %s in %v",
		*frames, engine.NumX(), engine.NumY(), engine.Name(), *output, time.Since(start).Round(time.Millisecond))
}
