// Package direct steps the automaton the literal way: every cell's
// neighbors are counted individually against the previous generation.
// Cost is O(W*H) per generation with a small constant; cells are
// independent, so the scan is parallelized over horizontal bands.
package direct

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"lifelike/internal/core"
)

// Engine is the direct-update stepping strategy.
type Engine struct {
	rule    core.Rule
	density float64
	cur     *core.Grid
	nxt     *core.Grid
	workers int
}

// New takes ownership of the initial grid and prepares the back buffer.
func New(g *core.Grid, r core.Rule, density float64) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("direct: %w: nil grid", core.ErrBadDimensions)
	}
	nxt, err := core.NewGrid(g.W, g.H)
	if err != nil {
		return nil, fmt.Errorf("direct: %w", err)
	}
	return &Engine{
		rule:    r,
		density: density,
		cur:     g,
		nxt:     nxt,
		workers: runtime.NumCPU(),
	}, nil
}

// Name identifies the strategy.
func (e *Engine) Name() string { return "direct" }

// NumX returns the grid width.
func (e *Engine) NumX() int { return e.cur.W }

// NumY returns the grid height.
func (e *Engine) NumY() int { return e.cur.H }

// MaxState returns the alive-state value of the engine's rule.
func (e *Engine) MaxState() uint8 { return e.rule.MaxState }

// Cell returns the current state at (x, y).
func (e *Engine) Cell(x, y int) (uint8, bool) { return e.cur.Cell(x, y) }

// Cells exposes the current generation row-major.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// Reset refills the field with a Bernoulli draw per cell.
func (e *Engine) Reset(seed int64) {
	core.FillBernoulli(core.NewRNG(seed), e.cur.Cells(), e.density, e.rule.MaxState)
}

// Step computes the next generation into the back buffer and swaps.
// Workers only read the previous generation and write disjoint bands of
// the back buffer, so no locking is needed.
func (e *Engine) Step() {
	w, h := e.cur.W, e.cur.H
	src, dst := e.cur, e.nxt.Cells()
	srcCells := src.Cells()

	bands := e.workers
	if bands > h {
		bands = h
	}
	if bands < 1 {
		bands = 1
	}
	rowsPerBand := (h + bands - 1) / bands

	var eg errgroup.Group
	for y0 := 0; y0 < h; y0 += rowsPerBand {
		y1 := y0 + rowsPerBand
		if y1 > h {
			y1 = h
		}
		first, last := y0, y1
		eg.Go(func() error {
			for y := first; y < last; y++ {
				row := y * w
				for x := 0; x < w; x++ {
					count := core.CountLivingNeighbors(src, x, y, e.rule)
					dst[row+x] = e.rule.Next(srcCells[row+x], count)
				}
			}
			return nil
		})
	}
	// Band workers cannot fail; Wait is only the join point.
	_ = eg.Wait()

	e.cur, e.nxt = e.nxt, e.cur
}

func init() {
	core.RegisterEngine("direct", func(g *core.Grid, r core.Rule, density float64) (core.Engine, error) {
		return New(g, r, density)
	})
}
