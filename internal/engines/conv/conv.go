// Package conv steps the automaton by spatial convolution: the 0/1
// is-alive mask of the grid is convolved with the adjacency kernel under
// zero padding, which yields every cell's neighbor count in one pass,
// and the rule is then applied pointwise over the count plane. Zero
// padding contributes no alive votes outside the grid, so the result
// matches open-boundary neighbor counting exactly.
package conv

import (
	"fmt"

	"lifelike/internal/core"
)

// Engine is the spatial-convolution stepping strategy.
type Engine struct {
	rule    core.Rule
	density float64
	cur     *core.Grid
	nxt     *core.Grid
	kernel  [3][3]int
	mask    []uint8
	counts  []int
}

// New takes ownership of the initial grid and prepares the scratch
// planes reused by every step.
func New(g *core.Grid, r core.Rule, density float64) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("conv: %w: nil grid", core.ErrBadDimensions)
	}
	nxt, err := core.NewGrid(g.W, g.H)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}
	n := g.W * g.H
	return &Engine{
		rule:    r,
		density: density,
		cur:     g,
		nxt:     nxt,
		kernel:  core.AdjacencyKernel(r.Neighbor),
		mask:    make([]uint8, n),
		counts:  make([]int, n),
	}, nil
}

// Name identifies the strategy.
func (e *Engine) Name() string { return "conv" }

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

// Step builds the alive mask, convolves it into the count plane and
// applies the rule pointwise into the back buffer, then swaps.
func (e *Engine) Step() {
	w, h := e.cur.W, e.cur.H
	src := e.cur.Cells()
	dst := e.nxt.Cells()

	alive := e.rule.MaxState
	for i, v := range src {
		if v == alive {
			e.mask[i] = 1
		} else {
			e.mask[i] = 0
		}
	}

	e.convolve(w, h)

	for i, v := range src {
		dst[i] = e.rule.Next(v, e.counts[i])
	}

	e.cur, e.nxt = e.nxt, e.cur
}

// convolve correlates the mask with the 3x3 adjacency kernel. Positions
// outside the grid are zero padded: they are skipped entirely, which is
// the same thing since they would contribute zero.
func (e *Engine) convolve(w, h int) {
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			sum := 0
			for ky := 0; ky < 3; ky++ {
				ny := y + ky - 1
				if ny < 0 || ny >= h {
					continue
				}
				nrow := ny * w
				for kx := 0; kx < 3; kx++ {
					k := e.kernel[ky][kx]
					if k == 0 {
						continue
					}
					nx := x + kx - 1
					if nx < 0 || nx >= w {
						continue
					}
					sum += k * int(e.mask[nrow+nx])
				}
			}
			e.counts[row+x] = sum
		}
	}
}

func init() {
	core.RegisterEngine("conv", func(g *core.Grid, r core.Rule, density float64) (core.Engine, error) {
		return New(g, r, density)
	})
}
