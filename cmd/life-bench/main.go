// life-bench times every registered stepping engine over a sweep of
// grid sizes, checking along the way that the engines agree on every
// generation they produce from identical seeds.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"lifelike/internal/app"
	"lifelike/internal/core"
	_ "lifelike/internal/engines/conv"
	_ "lifelike/internal/engines/direct"
	_ "lifelike/internal/engines/fft"
)

func main() {
	fs := flag.NewFlagSet("life-bench", flag.ExitOnError)
	sizes := fs.String("sizes", "64,128,256", "comma-separated square grid sides to sweep")
	generations := fs.Int("generations", 20, "generations to time per engine")

	cfg, err := app.ParseFlags(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if *generations < 1 {
		log.Fatal("generations must be at least 1")
	}

	sides, err := parseSizes(*sizes)
	if err != nil {
		log.Fatal(err)
	}

	rule, err := cfg.BuildRule()
	if err != nil {
		log.Fatal(err)
	}

	names := core.EngineNames()
	fmt.Printf("rule S%s/B%s maxstate=%d %s, density %.2f, seed %d, %d generations\n\n",
		cfg.Rule.Survival, cfg.Rule.Birth, cfg.Rule.MaxState, rule.Neighbor, cfg.Density, cfg.Seed, *generations)
	fmt.Printf("%8s", "size")
	for _, name := range names {
		fmt.Printf("  %14s", name)
	}
	fmt.Println()

	for _, side := range sides {
		results := make(map[string][]uint8, len(names))
		fmt.Printf("%7dpx", side)
		for _, name := range names {
			engine, err := buildEngine(name, side, rule, cfg.Density, cfg.Seed)
			if err != nil {
				log.Fatal(err)
			}
			start := time.Now()
			for i := 0; i < *generations; i++ {
				engine.Step()
			}
			perStep := time.Since(start) / time.Duration(*generations)
			fmt.Printf("  %14s", perStep.Round(time.Microsecond))
			results[name] = append([]uint8(nil), engine.Cells()...)
		}
		fmt.Println()

		base := results[names[0]]
		for _, name := range names[1:] {
			if !bytes.Equal(base, results[name]) {
				log.Fatalf("engines %s and %s disagree after %d generations on %dx%d",
					names[0], name, *generations, side, side)
			}
		}
	}
}

func buildEngine(name string, side int, rule core.Rule, density float64, seed int64) (core.Engine, error) {
	grid, err := core.NewGrid(side, side)
	if err != nil {
		return nil, err
	}
	engine, err := core.Engines()[name](grid, rule, density)
	if err != nil {
		return nil, err
	}
	engine.Reset(seed)
	return engine, nil
}

func parseSizes(s string) ([]int, error) {
	var sides []int
	for _, part := range strings.Split(s, ",") {
		side, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || side < 1 {
			return nil, fmt.Errorf("bad grid side %q", part)
		}
		sides = append(sides, side)
	}
	return sides, nil
}
